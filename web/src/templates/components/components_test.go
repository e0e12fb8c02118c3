package components_test

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/mgarciagodoy/portfolio/web/src/templates/components"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	cmp "maragu.dev/gomponents"
)

func render(t *testing.T, n cmp.Node) *goquery.Document {
	t.Helper()
	var buf strings.Builder
	require.NoError(t, n.Render(&buf))
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(buf.String()))
	require.NoError(t, err)
	return doc
}

func TestClassNames(t *testing.T) {
	tests := []struct {
		name    string
		classes []string
		want    string
	}{
		{name: "no qualifier", classes: []string{"", "flex"}, want: "flex"},
		{name: "qualifier", classes: []string{"mt-4", "flex"}, want: "mt-4 flex"},
		{name: "multi token qualifier", classes: []string{"mt-8 border-t pt-8", "flex"}, want: "mt-8 border-t pt-8 flex"},
		{name: "duplicate token", classes: []string{"flex mt-4", "flex"}, want: "flex mt-4"},
		{name: "extra whitespace", classes: []string{"  mt-4  ", "", " flex"}, want: "mt-4 flex"},
		{name: "nothing", classes: nil, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := components.ClassNames(tt.classes...)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, components.ClassNames(tt.classes...), "composing twice must give the same result")
		})
	}
}

func TestParseTheme(t *testing.T) {
	theme, ok := components.ParseTheme("Dark")
	assert.True(t, ok)
	assert.Equal(t, components.Dark, theme)

	theme, ok = components.ParseTheme(" light ")
	assert.True(t, ok)
	assert.Equal(t, components.Light, theme)

	theme, ok = components.ParseTheme("sepia")
	assert.False(t, ok)
	assert.Equal(t, components.Light, theme)
}

func TestThemeClasses(t *testing.T) {
	light := components.Light.Classes()
	dark := components.Dark.Classes()

	assert.NotEqual(t, light, dark)
	assert.Equal(t, components.Light, components.Dark.Toggle())
	assert.Equal(t, components.Dark, components.Light.Toggle())
	assert.Equal(t, light, components.Theme("unknown").Classes())

	for _, set := range []components.ThemeClasses{light, dark} {
		for _, class := range []string{set.Body, set.Heading, set.Prose, set.Link, set.Portrait, set.Divider, set.Languages, set.LangIcon, set.Toggle} {
			assert.NotContains(t, class, "dark:", "theme class sets must not encode dark variants")
		}
	}
}

func TestIcons(t *testing.T) {
	icons := map[string]components.IconRenderer{
		"instagram": components.InstagramIcon,
		"linkedin":  components.LinkedInIcon,
		"mail":      components.MailIcon,
		"language":  components.LanguageIcon,
	}

	for name, icon := range icons {
		t.Run(name, func(t *testing.T) {
			doc := render(t, icon.Render("h-6 w-6"))

			svg := doc.Find("svg")
			require.Equal(t, 1, svg.Length())
			class, _ := svg.Attr("class")
			assert.Equal(t, "h-6 w-6", class)
			hidden, _ := svg.Attr("aria-hidden")
			assert.Equal(t, "true", hidden)
			assert.Equal(t, 1, svg.Find("path").Length())
		})
	}
}

func TestIconFunc(t *testing.T) {
	var got string
	icon := components.IconFunc(func(class string) cmp.Node {
		got = class
		return cmp.Text("*")
	})

	doc := render(t, components.LinkItem(components.LinkItemProps{Href: "#", Icon: icon}, cmp.Text("x")))

	assert.Equal(t, "h-6 w-6 flex-none fill-zinc-500 transition group-hover:fill-teal-500", got)
	assert.Contains(t, doc.Find("a").Text(), "*")
}

func TestLinkItem(t *testing.T) {
	tests := []struct {
		name      string
		props     components.LinkItemProps
		wantClass string
	}{
		{
			name:      "default classes",
			props:     components.LinkItemProps{Href: "#", Icon: components.InstagramIcon},
			wantClass: "flex",
		},
		{
			name:      "with qualifier",
			props:     components.LinkItemProps{Href: "https://example.com/a?b=c&d=e", Icon: components.LinkedInIcon, Class: "mt-4"},
			wantClass: "mt-4 flex",
		},
		{
			name:      "mailto",
			props:     components.LinkItemProps{Href: "mailto:someone@example.com", Icon: components.MailIcon, Class: "mt-8 border-t pt-8"},
			wantClass: "mt-8 border-t pt-8 flex",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := render(t, components.LinkItem(tt.props, cmp.Text("label")))

			li := doc.Find("li")
			require.Equal(t, 1, li.Length())
			class, _ := li.Attr("class")
			assert.Equal(t, tt.wantClass, class)

			a := li.Find("a")
			require.Equal(t, 1, a.Length(), "exactly one navigable element")
			href, _ := a.Attr("href")
			assert.Equal(t, tt.props.Href, href)

			assert.Equal(t, 1, a.Find("svg").Length())
			span := a.Find("span.ml-4")
			assert.Equal(t, "label", span.Text())
		})
	}
}

func TestLinkItem_NestedChildren(t *testing.T) {
	doc := render(t, components.LinkItem(
		components.LinkItemProps{Href: "#", Icon: components.MailIcon, Theme: components.Dark},
		cmp.Text("write "), cmp.El("strong", cmp.Text("me")),
	))

	assert.Equal(t, "write me", doc.Find("a span").Text())
	assert.Equal(t, "me", doc.Find("a span strong").Text())

	class, _ := doc.Find("a").Attr("class")
	assert.Contains(t, class, "text-zinc-200")
}

func TestPortrait(t *testing.T) {
	doc := render(t, components.Portrait("/static/images/portrait.jpg", "", components.Light))

	img := doc.Find("img")
	require.Equal(t, 1, img.Length())
	src, _ := img.Attr("src")
	assert.Equal(t, "/static/images/portrait.jpg", src)
	alt, ok := img.Attr("alt")
	assert.True(t, ok, "decorative images still carry an empty alt")
	assert.Empty(t, alt)
	sizes, _ := img.Attr("sizes")
	assert.Equal(t, components.PortraitSizes, sizes)
}

func TestContainer(t *testing.T) {
	doc := render(t, components.Container("mt-16", cmp.El("p", cmp.Text("inside"))))

	class, _ := doc.Find("body > div").First().Attr("class")
	assert.Equal(t, "sm:px-8 mt-16", class)
	assert.Equal(t, "inside", doc.Find("p").Text())
}
