package components

import (
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"
)

// Container is the page frame shared by every page body.
func Container(class string, children ...cmp.Node) cmp.Node {
	return g.Div(
		g.Class(ClassNames("sm:px-8", class)),
		g.Div(
			g.Class("mx-auto w-full max-w-7xl lg:px-8"),
			g.Div(
				g.Class("relative px-4 sm:px-8 lg:px-12"),
				g.Div(g.Class("mx-auto max-w-2xl lg:max-w-5xl"), cmp.Group(children)),
			),
		),
	)
}

// PortraitSizes is the responsive sizes hint of the portrait image.
const PortraitSizes = "(min-width: 1024px) 32rem, 20rem"

// Portrait renders the responsive, decorative profile photo.
func Portrait(src, alt string, theme Theme) cmp.Node {
	return g.Img(
		g.Src(src),
		g.Alt(alt),
		cmp.Attr("sizes", PortraitSizes),
		cmp.Attr("loading", "lazy"),
		cmp.Attr("decoding", "async"),
		g.Class(ClassNames("aspect-square rotate-3 rounded-2xl object-cover", theme.Classes().Portrait)),
	)
}
