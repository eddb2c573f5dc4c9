package middleware

import (
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// SelectiveTimeoutConfig applies the short timeout to ordinary
// endpoints and the long one to generation endpoints, which block on
// LLM calls and browser rendering.
func SelectiveTimeoutConfig(defaultTimeout, generationTimeout time.Duration) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			timeout := defaultTimeout
			if strings.HasPrefix(c.Request().URL.Path, "/api/v1/resume/") {
				timeout = generationTimeout
			}

			handler := middleware.TimeoutWithConfig(middleware.TimeoutConfig{
				Timeout: timeout,
			})(next)

			return handler(c)
		}
	}
}
