package view

import (
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/mgarciagodoy/portfolio/web/src/templates/components"
)

const (
	themeSessionName = "preferences"
	themeKey         = "theme"
	themeQueryParam  = "theme"
)

// ResolveTheme picks the theme for a request: an explicit ?theme= query value
// wins and is remembered in the session, then a remembered value, then fallback.
func ResolveTheme(c echo.Context, fallback components.Theme) components.Theme {
	sess, err := session.Get(themeSessionName, c)

	if theme, ok := components.ParseTheme(c.QueryParam(themeQueryParam)); ok {
		if err == nil {
			sess.Values[themeKey] = theme.String()
			if err := sess.Save(c.Request(), c.Response()); err != nil {
				c.Logger().Warn("failed to save theme preference: ", err)
			}
		}
		return theme
	}

	if err != nil {
		return fallback
	}
	if stored, ok := sess.Values[themeKey].(string); ok {
		if theme, ok := components.ParseTheme(stored); ok {
			return theme
		}
	}
	return fallback
}
