package server

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/mgarciagodoy/portfolio/internal/config"
	"github.com/mgarciagodoy/portfolio/internal/content"
	"github.com/mgarciagodoy/portfolio/internal/handlers"
	appmiddleware "github.com/mgarciagodoy/portfolio/internal/middleware"
	"github.com/mgarciagodoy/portfolio/internal/rendering"
	"github.com/mgarciagodoy/portfolio/web"
)

// Server holds the dependencies for the HTTP server.
type Server struct {
	E            *echo.Echo
	Cfg          *config.Config
	content      *content.Store
	watcher      *content.Watcher
	aboutHandler *handlers.AboutHandler
}

// New creates a new Server instance. watcher may be nil when hot reload is off.
func New(cfg *config.Config, store *content.Store, watcher *content.Watcher, renderer *rendering.UniversalRenderer) *Server {
	e := echo.New()
	e.HideBanner = true
	e.Renderer = renderer
	setupErrorHandling(e)

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(appmiddleware.Logger)
	e.Use(middleware.Recover())
	e.Use(appmiddleware.RateLimiter(cfg.RateLimit))

	sessionStore := sessions.NewCookieStore([]byte(cfg.SessionSecret))
	sessionStore.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 365, // a year
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   !cfg.IsDevelopment(),
	}
	e.Use(session.Middleware(sessionStore))

	// Serve static assets from disk when configured, otherwise from the binary.
	if cfg.StaticDir != "" {
		e.Static("/static", cfg.StaticDir)
	} else {
		e.StaticFS("/static", echo.MustSubFS(web.FS, "static"))
	}

	return &Server{
		E:            e,
		Cfg:          cfg,
		content:      store,
		watcher:      watcher,
		aboutHandler: handlers.NewAboutHandler(store, cfg.Theme()),
	}
}

// Content is a getter for the server's content store, useful for testing.
func (s *Server) Content() *content.Store {
	return s.content
}
