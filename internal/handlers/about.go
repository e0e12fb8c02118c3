package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/mgarciagodoy/portfolio/internal/content"
	"github.com/mgarciagodoy/portfolio/internal/view"
	"github.com/mgarciagodoy/portfolio/web/src/templates/components"
	"github.com/mgarciagodoy/portfolio/web/src/templates/layouts"
	"github.com/mgarciagodoy/portfolio/web/src/templates/pages"
)

// ContentSource provides the content to render for a request.
type ContentSource interface {
	Get() content.PageContent
}

// AboutHandler serves the About page.
type AboutHandler struct {
	source       ContentSource
	defaultTheme components.Theme
}

// NewAboutHandler creates a new AboutHandler.
func NewAboutHandler(source ContentSource, defaultTheme components.Theme) *AboutHandler {
	return &AboutHandler{source: source, defaultTheme: defaultTheme}
}

// AboutGet renders the About page in the theme chosen for this request.
func (h *AboutHandler) AboutGet(c echo.Context) error {
	theme := view.ResolveTheme(c, h.defaultTheme)
	pageContent := h.source.Get()

	// 1. Compose the page body from the current content.
	body := pages.About(pageContent, theme)

	// 2. Wrap it in the document layout, which carries the page metadata.
	document := layouts.Base(pageContent.Metadata, theme, c.Path(), body)

	// 3. Render through templ, the renderer's common component type.
	return c.Render(http.StatusOK, "", view.AdaptGomponentToTempl(document))
}

// MetadataGet returns the document head record of the About page as JSON.
func (h *AboutHandler) MetadataGet(c echo.Context) error {
	return c.JSON(http.StatusOK, h.source.Get().Metadata)
}
