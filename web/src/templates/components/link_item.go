package components

import (
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"
)

const (
	linkItemClass = "flex"
	linkClass     = "group flex text-sm font-medium transition"
	linkIconClass = "h-6 w-6 flex-none fill-zinc-500 transition group-hover:fill-teal-500"
	linkLabelGap  = "ml-4"
)

// LinkItemProps configures a single entry of a link list.
type LinkItemProps struct {
	// Href is written to the anchor unmodified. It is not validated here.
	Href string
	Icon IconRenderer
	// Class is merged in front of the default list item classes.
	Class string
	Theme Theme
}

// LinkItem renders one list entry: an icon followed by a label, both inside a
// single anchor.
func LinkItem(props LinkItemProps, children ...cmp.Node) cmp.Node {
	var icon cmp.Node
	if props.Icon != nil {
		icon = props.Icon.Render(linkIconClass)
	}

	return g.Li(
		g.Class(ClassNames(props.Class, linkItemClass)),
		g.A(
			g.Href(props.Href),
			g.Class(ClassNames(linkClass, props.Theme.Classes().Link)),
			icon,
			g.Span(g.Class(linkLabelGap), cmp.Group(children)),
		),
	)
}
