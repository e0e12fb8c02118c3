package content

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Registration only fails for an empty tag or a nil function.
	_ = v.RegisterValidation("destination", func(fl validator.FieldLevel) bool {
		return IsDestination(fl.Field().String())
	})
	return v
}

// IsDestination reports whether href is an absolute URL, a mailto URI or an
// in-page anchor.
func IsDestination(href string) bool {
	if strings.HasPrefix(href, "#") {
		return true
	}
	u, err := url.Parse(href)
	if err != nil {
		return false
	}
	switch strings.ToLower(u.Scheme) {
	case "mailto":
		return u.Opaque != ""
	case "http", "https":
		return u.Host != ""
	}
	return false
}

// Validate checks the content for problems a renderer would not notice, such
// as malformed link destinations. The returned error wraps ErrInvalidContent and
// lists every failing field.
func Validate(c PageContent) error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalidContent, err)
	}

	problems := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		problems = append(problems, fmt.Sprintf("%s failed %q (value %v)", fe.Namespace(), fe.Tag(), fe.Value()))
	}
	return fmt.Errorf("%w: %s", ErrInvalidContent, strings.Join(problems, "; "))
}
