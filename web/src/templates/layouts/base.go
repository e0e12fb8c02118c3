package layouts

import (
	"github.com/mgarciagodoy/portfolio/internal/content"
	"github.com/mgarciagodoy/portfolio/web/src/templates/components"
	"golang.org/x/text/language"
	cmp "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	c "maragu.dev/gomponents/components"
	g "maragu.dev/gomponents/html"
)

const htmxSrc = "https://unpkg.com/htmx.org@2.0.4"

// Base wraps a page body in the HTML document. The metadata fills the title
// and description of the document head. An empty path leaves out the theme
// toggle, since a static copy of the page cannot switch themes by query.
func Base(meta content.PageMetadata, theme components.Theme, path string, body ...cmp.Node) cmp.Node {
	tc := theme.Classes()

	return c.HTML5(c.HTML5Props{
		Title:       CalculateTitle(meta.Title),
		Description: meta.Description,
		Language:    language.English.String(),
		Head: []cmp.Node{
			g.Link(g.Rel("stylesheet"), g.Href("/static/css/site.css")),
			g.Script(g.Src(htmxSrc), g.Defer()),
		},
		Body: []cmp.Node{
			g.Class(components.ClassNames("flex h-full flex-col", tc.Body)),
			cmp.Attr("data-theme", theme.String()),
			themeToggle(theme, path),
			g.Main(g.Class("flex-auto"), cmp.Group(body)),
		},
	})
}

// themeToggle swaps the page body for the same page in the other theme.
func themeToggle(theme components.Theme, path string) cmp.Node {
	if path == "" {
		return nil
	}
	next := path + "?theme=" + theme.Toggle().String()

	return g.Div(
		g.Class("flex justify-end px-4 pt-6 sm:px-8"),
		g.A(
			g.Href(next),
			hx.Get(next),
			hx.Target("body"),
			hx.Select("body"),
			hx.Swap("outerHTML"),
			hx.PushURL("true"),
			g.Class(components.ClassNames("text-sm font-medium transition", theme.Classes().Toggle)),
			cmp.Textf("Switch to %s theme", theme.Toggle()),
		),
	)
}
