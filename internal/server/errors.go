package server

import (
	"errors"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"
	appmiddleware "github.com/mgarciagodoy/portfolio/internal/middleware"
)

// setupErrorHandling installs the HTTP error handler. HTTP errors are answered
// as they are; anything else is logged with a stack trace and answered with 500.
func setupErrorHandling(e *echo.Echo) {
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var he *echo.HTTPError
		if errors.As(err, &he) {
			e.DefaultHTTPErrorHandler(err, c)
			return
		}

		logger := appmiddleware.FromContext(c.Request().Context())
		logger.Error("Internal Server Error (Unhandled)",
			slog.String("error", err.Error()),
			slog.String("path", c.Request().URL.Path),
			slog.String("stack_trace", string(debug.Stack())),
		)

		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(http.StatusInternalServerError)
			return
		}
		_ = c.String(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
	}
}
