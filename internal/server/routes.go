package server

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/mgarciagodoy/portfolio/internal/handlers"
)

// RegisterRoutes sets up all the application routes.
func (s *Server) RegisterRoutes() {
	s.E.GET("/", handlers.HomeGet)
	s.E.GET("/about", s.aboutHandler.AboutGet)
	s.E.GET("/about/metadata.json", s.aboutHandler.MetadataGet)

	s.E.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})
}
