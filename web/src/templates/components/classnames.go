package components

import (
	"strings"

	"github.com/samber/lo"
)

// ClassNames joins class tokens into a single class attribute value.
// Empty arguments are skipped, and a token that appears more than once is kept
// at its first position only.
func ClassNames(classes ...string) string {
	var tokens []string
	for _, c := range classes {
		tokens = append(tokens, strings.Fields(c)...)
	}
	return strings.Join(lo.Uniq(tokens), " ")
}
