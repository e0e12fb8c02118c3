package middleware

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/stretchr/testify/assert"
)

func TestLogger(t *testing.T) {
	var logBuffer bytes.Buffer
	originalLogger := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&logBuffer, nil)))
	defer slog.SetDefault(originalLogger)

	e := echo.New()
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: func() string { return "req-123" },
	}))
	e.Use(Logger)

	var fromHandler *slog.Logger
	e.GET("/about", func(c echo.Context) error {
		fromHandler = FromContext(c.Request().Context())
		return c.String(http.StatusOK, "OK")
	})
	e.GET("/missing", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusNotFound)
	})

	t.Run("injects request logger and logs completion", func(t *testing.T) {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/about", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.NotNil(t, fromHandler)
		assert.NotSame(t, slog.Default(), fromHandler)
		assert.Contains(t, logBuffer.String(), "request_id=req-123")
		assert.Contains(t, logBuffer.String(), "path=/about")
		assert.Contains(t, logBuffer.String(), "status=200")
	})

	t.Run("logs final status of failed requests", func(t *testing.T) {
		logBuffer.Reset()
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/missing", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, logBuffer.String(), "status=404")
	})
}

func TestFromContext_Default(t *testing.T) {
	assert.Same(t, slog.Default(), FromContext(context.Background()))
}
