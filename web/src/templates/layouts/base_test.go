package layouts_test

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/mgarciagodoy/portfolio/internal/content"
	"github.com/mgarciagodoy/portfolio/web/src/templates/components"
	"github.com/mgarciagodoy/portfolio/web/src/templates/layouts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	cmp "maragu.dev/gomponents"
)

func TestCalculateTitle(t *testing.T) {
	assert.Equal(t, "About - Mariana Garciagodoy", layouts.CalculateTitle("About"))
	assert.Equal(t, "Mariana Garciagodoy", layouts.CalculateTitle(""))
}

func TestBase(t *testing.T) {
	meta := content.About().Metadata

	var buf strings.Builder
	require.NoError(t, layouts.Base(meta, components.Dark, "/about", cmp.El("p", cmp.Text("body"))).Render(&buf))

	html := buf.String()
	assert.True(t, strings.HasPrefix(html, "<!doctype html>"))

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)

	assert.Equal(t, "About - Mariana Garciagodoy", doc.Find("head title").Text())
	desc, _ := doc.Find(`meta[name="description"]`).Attr("content")
	assert.Equal(t, meta.Description, desc)
	lang, _ := doc.Find("html").Attr("lang")
	assert.Equal(t, "en", lang)

	theme, _ := doc.Find("body").Attr("data-theme")
	assert.Equal(t, "dark", theme)
	assert.Equal(t, "body", doc.Find("main p").Text())

	toggle := doc.Find("a[hx-get]")
	require.Equal(t, 1, toggle.Length())
	hxGet, _ := toggle.Attr("hx-get")
	assert.Equal(t, "/about?theme=light", hxGet)
	href, _ := toggle.Attr("href")
	assert.Equal(t, hxGet, href)
}

func TestBase_WithoutPath(t *testing.T) {
	var buf strings.Builder
	require.NoError(t, layouts.Base(content.About().Metadata, components.Light, "").Render(&buf))

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(buf.String()))
	require.NoError(t, err)
	assert.Equal(t, 0, doc.Find("a[hx-get]").Length())
	assert.Equal(t, 1, doc.Find("main").Length())
}
