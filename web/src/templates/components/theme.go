package components

import "strings"

// Theme selects one of the two literal class sets used by the page.
type Theme string

const (
	Light Theme = "light"
	Dark  Theme = "dark"
)

// ThemeClasses holds the theme dependent class tokens of every themed element.
type ThemeClasses struct {
	Body      string
	Heading   string
	Prose     string
	Link      string
	Portrait  string
	Divider   string
	Languages string
	LangIcon  string
	Toggle    string
}

var lightClasses = ThemeClasses{
	Body:      "bg-zinc-50 text-zinc-800",
	Heading:   "text-zinc-800",
	Prose:     "text-zinc-600",
	Link:      "text-zinc-800 hover:text-teal-500",
	Portrait:  "bg-zinc-100",
	Divider:   "border-zinc-100",
	Languages: "text-zinc-800",
	LangIcon:  "text-zinc-200",
	Toggle:    "text-zinc-500 hover:text-teal-500",
}

var darkClasses = ThemeClasses{
	Body:      "bg-black text-zinc-200",
	Heading:   "text-zinc-100",
	Prose:     "text-zinc-400",
	Link:      "text-zinc-200 hover:text-teal-500",
	Portrait:  "bg-zinc-800",
	Divider:   "border-zinc-700/40",
	Languages: "text-zinc-200",
	LangIcon:  "text-zinc-800",
	Toggle:    "text-zinc-400 hover:text-teal-400",
}

// ParseTheme converts a user supplied value into a Theme.
// The second return value is false when the value names no known theme.
func ParseTheme(s string) (Theme, bool) {
	switch Theme(strings.ToLower(strings.TrimSpace(s))) {
	case Light:
		return Light, true
	case Dark:
		return Dark, true
	}
	return Light, false
}

// Classes returns the class set for the theme. Unknown themes fall back to Light.
func (t Theme) Classes() ThemeClasses {
	if t == Dark {
		return darkClasses
	}
	return lightClasses
}

// Toggle returns the opposite theme.
func (t Theme) Toggle() Theme {
	if t == Dark {
		return Light
	}
	return Dark
}

func (t Theme) String() string {
	return string(t)
}
