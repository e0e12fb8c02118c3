package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// HomeGet sends visitors of the site root to the About page, keeping any query.
func HomeGet(c echo.Context) error {
	target := "/about"
	if q := c.QueryString(); q != "" {
		target += "?" + q
	}
	return c.Redirect(http.StatusFound, target)
}
