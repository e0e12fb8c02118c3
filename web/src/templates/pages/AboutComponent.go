package pages

import (
	"strings"

	"github.com/mgarciagodoy/portfolio/internal/content"
	"github.com/mgarciagodoy/portfolio/web/src/templates/components"
	"github.com/samber/lo"
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"
)

// AboutMetadata is the document head record of the About page.
func AboutMetadata() content.PageMetadata {
	return content.About().Metadata
}

// AboutContent renders the built-in About page in the light theme.
func AboutContent() cmp.Node {
	return About(content.About(), components.Light)
}

// About lays out the About page: portrait, biography, and the link list
// followed by the Languages block.
func About(c content.PageContent, theme components.Theme) cmp.Node {
	tc := theme.Classes()

	return components.Container("mt-16 sm:mt-32",
		g.Div(
			g.Class("grid grid-cols-1 gap-y-16 lg:grid-cols-2 lg:grid-rows-[auto_1fr] lg:gap-y-12"),
			g.Div(
				g.Class("lg:pl-20"),
				g.Div(
					g.Class("max-w-xs px-2.5 lg:max-w-none"),
					components.Portrait(c.Portrait.Src, c.Portrait.Alt, theme),
				),
			),
			g.Div(
				g.Class("lg:order-first lg:row-span-2"),
				g.H1(
					g.Class(components.ClassNames("text-4xl font-bold tracking-tight sm:text-5xl", tc.Heading)),
					cmp.Text(c.Heading),
				),
				g.Div(
					g.Class(components.ClassNames("mt-6 space-y-7 text-base", tc.Prose)),
					cmp.Map(c.Paragraphs, func(p string) cmp.Node {
						return g.P(cmp.Text(p))
					}),
				),
			),
			g.Div(
				g.Class("lg:pl-20"),
				g.Ul(
					cmp.Attr("role", "list"),
					cmp.Map(c.Links, func(l content.LinkEntry) cmp.Node {
						return linkEntry(l, theme)
					}),
					languages(c, theme),
				),
			),
		),
	)
}

func linkEntry(l content.LinkEntry, theme components.Theme) cmp.Node {
	class := l.Class
	if lo.Contains(strings.Fields(class), "border-t") {
		class = components.ClassNames(class, theme.Classes().Divider)
	}
	return components.LinkItem(components.LinkItemProps{
		Href:  l.Href,
		Icon:  iconFor(l.Icon),
		Class: class,
		Theme: theme,
	}, cmp.Text(l.Label))
}

func iconFor(kind content.IconKind) components.IconRenderer {
	switch kind {
	case content.IconInstagram:
		return components.InstagramIcon
	case content.IconLinkedIn:
		return components.LinkedInIcon
	case content.IconMail:
		return components.MailIcon
	}
	return nil
}

// languages renders the proficiency facts as plain list text, not as links.
func languages(c content.PageContent, theme components.Theme) cmp.Node {
	tc := theme.Classes()

	return g.Li(
		g.Class(components.ClassNames("mt-8 flex flex-col border-t pt-8 text-base font-medium", tc.Divider)),
		g.Div(
			g.Class(components.ClassNames("group flex", tc.Languages)),
			components.LanguageIcon.Render(components.ClassNames("h-6 w-6 flex-none", tc.LangIcon)),
			g.Span(g.Class("ml-4"), cmp.Text(c.LanguagesHeading)),
		),
		g.Ol(
			g.Class("ml-10 mt-1 text-sm"),
			cmp.Map(c.Languages, func(f content.LanguageFact) cmp.Node {
				return g.Li(g.Class("mt-1"), cmp.Text(f.Label()))
			}),
		),
	)
}
