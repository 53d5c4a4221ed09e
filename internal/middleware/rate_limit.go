package middleware

import (
	"fmt"

	"github.com/arjya12/Tourism-Agency-Booking-System/internal/errs"
	"github.com/arjya12/Tourism-Agency-Booking-System/internal/server"

	"github.com/labstack/echo/v4"
)

// RateLimitMiddleware enforces a fixed-window per-client request budget
// backed by Redis. The window counter lives under one key per client IP
// and expires with the window, so no cleanup pass is needed.
type RateLimitMiddleware struct {
	server *server.Server
}

func NewRateLimitMiddleware(s *server.Server) *RateLimitMiddleware {
	return &RateLimitMiddleware{server: s}
}

// Limit returns the enforcing middleware. Redis errors fail open: a
// broken limiter should degrade to unlimited traffic, not an outage.
func (rl *RateLimitMiddleware) Limit() echo.MiddlewareFunc {
	cfg := rl.server.Config.RateLimit

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if cfg == nil || !cfg.Enabled {
				return next(c)
			}

			ctx := c.Request().Context()
			key := fmt.Sprintf("ratelimit:ip:%s", c.RealIP())

			count, err := rl.server.Redis.Incr(ctx, key).Result()
			if err != nil {
				GetLogger(c).Warn().Err(err).Msg("rate limiter unavailable, allowing request")
				return next(c)
			}

			// First hit in the window owns setting the expiry.
			if count == 1 {
				if err := rl.server.Redis.Expire(ctx, key, cfg.Window).Err(); err != nil {
					GetLogger(c).Warn().Err(err).Msg("failed to set rate limit window expiry")
				}
			}

			if count > int64(cfg.Requests) {
				return errs.NewTooManyRequestsError("Too many requests, slow down")
			}

			return next(c)
		}
	}
}
