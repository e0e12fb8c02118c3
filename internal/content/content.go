// Package content holds the data of the site's pages, separate from the
// components that lay them out.
package content

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
	"gopkg.in/yaml.v3"
)

var (
	ErrContentNotFound = errors.New("content file not found")
	ErrInvalidContent  = errors.New("invalid page content")
)

// PageMetadata is surfaced to the document head.
type PageMetadata struct {
	Title       string `yaml:"title" json:"title" validate:"required"`
	Description string `yaml:"description" json:"description"`
}

// IconKind names the glyph shown in front of a link.
type IconKind string

const (
	IconInstagram IconKind = "instagram"
	IconLinkedIn  IconKind = "linkedin"
	IconMail      IconKind = "mail"
)

// LinkEntry is a single (destination, icon, label) tuple of the link list.
type LinkEntry struct {
	Href  string   `yaml:"href" validate:"required,destination"`
	Icon  IconKind `yaml:"icon" validate:"oneof=instagram linkedin mail"`
	Label string   `yaml:"label" validate:"required"`
	Class string   `yaml:"class"`
}

// LanguageFact is one line of the Languages block, e.g. a proficiency level and
// the languages spoken at that level.
type LanguageFact struct {
	Level     string       `yaml:"level" validate:"required"`
	Languages LanguageList `yaml:"languages" validate:"min=1"`
}

// LanguageList is a list of language tags written as BCP 47 codes in content
// files.
type LanguageList []language.Tag

// UnmarshalYAML parses a sequence of codes such as "es" or "en-GB".
func (l *LanguageList) UnmarshalYAML(node *yaml.Node) error {
	var codes []string
	if err := node.Decode(&codes); err != nil {
		return err
	}
	tags := make(LanguageList, 0, len(codes))
	for _, code := range codes {
		tag, err := language.Parse(code)
		if err != nil {
			return fmt.Errorf("language %q: %w", code, err)
		}
		tags = append(tags, tag)
	}
	*l = tags
	return nil
}

// Label renders the fact as "<level>: <language> / <language>" using English
// display names.
func (f LanguageFact) Label() string {
	namer := display.English.Tags()
	names := make([]string, 0, len(f.Languages))
	for _, tag := range f.Languages {
		names = append(names, namer.Name(tag))
	}
	return f.Level + ": " + strings.Join(names, " / ")
}

// Portrait is the profile image shown next to the biography.
type Portrait struct {
	Src string `yaml:"src" validate:"required"`
	Alt string `yaml:"alt"`
}

// PageContent is everything the About page displays.
type PageContent struct {
	Metadata         PageMetadata   `yaml:"metadata"`
	Heading          string         `yaml:"heading" validate:"required"`
	Paragraphs       []string       `yaml:"paragraphs" validate:"dive,required"`
	Portrait         Portrait       `yaml:"portrait"`
	Links            []LinkEntry    `yaml:"links" validate:"dive"`
	LanguagesHeading string         `yaml:"languages_heading"`
	Languages        []LanguageFact `yaml:"languages" validate:"dive"`
}
