package ratelimit

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dharmasatrya/transitbook/internal/metrics"
	"github.com/dharmasatrya/transitbook/internal/models"
)

// Middleware rejects clients over their limit with 429. Limiter errors let the
// request through.
func Middleware(l Limiter, m *metrics.Registry) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()
			key := c.RealIP()

			allowed, err := l.Allow(ctx, key)
			if err != nil {
				slog.WarnContext(ctx, "rate limiter unavailable", "client", key, "error", err)
				if m != nil {
					m.LimiterErrors.Inc()
				}
				return next(c)
			}

			if !allowed {
				if m != nil {
					m.RateLimited.Inc()
				}
				return c.JSON(http.StatusTooManyRequests, models.ErrorResponse{
					Error:   "rate_limited",
					Message: "Too many requests, slow down",
					Code:    http.StatusTooManyRequests,
				})
			}

			return next(c)
		}
	}
}
