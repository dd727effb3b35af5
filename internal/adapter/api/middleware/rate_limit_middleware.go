package middleware

import (
	"github.com/labstack/echo/v4"

	"choukette/internal/infrastructure/ratelimit"
	"choukette/pkg/errors"
	"choukette/pkg/logger"
	"choukette/pkg/response"
)

type RateLimitMiddleware struct {
	limiter *ratelimit.RateLimiter
}

func NewRateLimitMiddleware(limiter *ratelimit.RateLimiter) *RateLimitMiddleware {
	return &RateLimitMiddleware{limiter: limiter}
}

// Limit charges one token of action's budget to the client IP.
func (m *RateLimitMiddleware) Limit(action string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ip := c.RealIP()
			allowed, wait := m.limiter.Allow(ip, action)
			if !allowed {
				logger.Warn("RATE LIMIT: %s blocked on %s (retry in %v)", ip, action, wait)
				return response.Error(c, errors.TooManyRequests("Rate limit exceeded", wait))
			}
			return next(c)
		}
	}
}
