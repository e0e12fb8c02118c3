package components

import (
	cmp "maragu.dev/gomponents"
)

// IconRenderer renders an icon glyph. The style qualifier becomes the class
// attribute of the rendered svg element.
type IconRenderer interface {
	Render(styleQualifier string) cmp.Node
}

// IconFunc adapts an ordinary function to the IconRenderer interface.
type IconFunc func(styleQualifier string) cmp.Node

// Render calls f(styleQualifier).
func (f IconFunc) Render(styleQualifier string) cmp.Node {
	return f(styleQualifier)
}

const (
	instagramPath = "M12 3c-2.444 0-2.75.01-3.71.054-.959.044-1.613.196-2.185.418A4.412 4.412 0 0 0 4.51 4.511c-.5.5-.809 1.002-1.039 1.594-.222.572-.374 1.226-.418 2.184C3.01 9.25 3 9.556 3 12s.01 2.75.054 3.71c.044.959.196 1.613.418 2.185.23.592.538 1.094 1.039 1.595.5.5 1.002.808 1.594 1.038.572.222 1.226.374 2.184.418C9.25 20.99 9.556 21 12 21s2.75-.01 3.71-.054c.959-.044 1.613-.196 2.185-.419a4.412 4.412 0 0 0 1.595-1.038c.5-.5.808-1.002 1.038-1.594.222-.572.374-1.226.418-2.184.044-.96.054-1.267.054-3.711s-.01-2.75-.054-3.71c-.044-.959-.196-1.613-.419-2.185A4.412 4.412 0 0 0 19.49 4.51c-.5-.5-1.002-.809-1.594-1.039-.572-.222-1.226-.374-2.184-.418C14.75 3.01 14.444 3 12 3Zm0 1.622c2.403 0 2.688.009 3.637.052.877.04 1.354.187 1.67.31.421.163.72.358 1.036.673.315.315.51.615.673 1.035.123.317.27.794.31 1.671.043.95.052 1.234.052 3.637s-.009 2.688-.052 3.637c-.04.877-.187 1.354-.31 1.67-.163.421-.358.72-.673 1.036a2.79 2.79 0 0 1-1.035.673c-.317.123-.794.27-1.671.31-.95.043-1.234.052-3.637.052s-2.688-.009-3.637-.052c-.877-.04-1.354-.187-1.67-.31a2.789 2.789 0 0 1-1.036-.673 2.79 2.79 0 0 1-.673-1.035c-.123-.317-.27-.794-.31-1.671-.043-.95-.052-1.234-.052-3.637s.009-2.688.052-3.637c.04-.877.187-1.354.31-1.67.163-.421.358-.72.673-1.036.315-.315.615-.51 1.035-.673.317-.123.794-.27 1.671-.31.95-.043 1.234-.052 3.637-.052Z M12 15a3 3 0 1 1 0-6 3 3 0 0 1 0 6Zm0-7.622a4.622 4.622 0 1 0 0 9.244 4.622 4.622 0 0 0 0-9.244Zm5.884-.182a1.08 1.08 0 1 1-2.16 0 1.08 1.08 0 0 1 2.16 0Z"
	linkedInPath  = "M18.335 18.339H15.67v-4.177c0-.996-.02-2.278-1.39-2.278-1.389 0-1.601 1.084-1.601 2.205v4.25h-2.666V9.75h2.56v1.17h.035c.358-.674 1.228-1.387 2.528-1.387 2.7 0 3.2 1.778 3.2 4.091v4.715zM7.003 8.575a1.546 1.546 0 01-1.548-1.549 1.548 1.548 0 111.547 1.549zm1.336 9.764H5.666V9.75H8.34v8.589zM19.67 3H4.329C3.593 3 3 3.58 3 4.297v15.406C3 20.42 3.594 21 4.328 21h15.338C20.4 21 21 20.42 21 19.703V4.297C21 3.58 20.4 3 19.666 3h.003z"
	mailPath      = "M6 5a3 3 0 0 0-3 3v8a3 3 0 0 0 3 3h12a3 3 0 0 0 3-3V8a3 3 0 0 0-3-3H6Zm.245 2.187a.75.75 0 0 0-.99 1.126l6.25 5.5a.75.75 0 0 0 .99 0l6.25-5.5a.75.75 0 0 0-.99-1.126L12 12.251 6.245 7.187Z"
	languagePath  = "M7.5 8.25h9m-9 3H12m-9.75 1.51c0 1.6 1.123 2.994 2.707 3.227 1.129.166 2.27.293 3.423.379.35.026.67.21.865.501L12 21l2.755-4.133a1.14 1.14 0 0 1 .865-.501 48.172 48.172 0 0 0 3.423-.379c1.584-.233 2.707-1.626 2.707-3.228V6.741c0-1.602-1.123-2.995-2.707-3.228A48.394 48.394 0 0 0 12 3c-2.392 0-4.744.175-7.043.513C3.373 3.746 2.25 5.14 2.25 6.741v6.018Z"
)

var (
	InstagramIcon IconRenderer = IconFunc(func(class string) cmp.Node {
		return filledIcon(class, instagramPath, false)
	})

	LinkedInIcon IconRenderer = IconFunc(func(class string) cmp.Node {
		return filledIcon(class, linkedInPath, false)
	})

	MailIcon IconRenderer = IconFunc(func(class string) cmp.Node {
		return filledIcon(class, mailPath, true)
	})

	// LanguageIcon is the outlined chat bubble shown next to the Languages heading.
	LanguageIcon IconRenderer = IconFunc(func(class string) cmp.Node {
		return cmp.El("svg",
			cmp.Attr("xmlns", "http://www.w3.org/2000/svg"),
			cmp.Attr("fill", "none"),
			cmp.Attr("viewBox", "0 0 24 24"),
			cmp.Attr("stroke-width", "1.5"),
			cmp.Attr("stroke", "currentColor"),
			cmp.Attr("aria-hidden", "true"),
			cmp.If(class != "", cmp.Attr("class", class)),
			cmp.El("path",
				cmp.Attr("stroke-linecap", "round"),
				cmp.Attr("stroke-linejoin", "round"),
				cmp.Attr("d", languagePath),
			),
		)
	})
)

func filledIcon(class, d string, evenOdd bool) cmp.Node {
	return cmp.El("svg",
		cmp.Attr("viewBox", "0 0 24 24"),
		cmp.Attr("aria-hidden", "true"),
		cmp.If(class != "", cmp.Attr("class", class)),
		cmp.El("path",
			cmp.If(evenOdd, cmp.Attr("fill-rule", "evenodd")),
			cmp.If(evenOdd, cmp.Attr("clip-rule", "evenodd")),
			cmp.Attr("d", d),
		),
	)
}
