package middleware

import (
	"fmt"
	"time"

	"qrupay/internal/infrastructure/cache"

	"github.com/gofiber/fiber/v3"
)

// RateLimitMiddleware throttles unauthenticated emergency lookups per
// client IP with a fixed window in Redis. When Redis is unavailable the
// limiter fails open; the profile ids are unguessable UUIDs, the
// limiter only slows deliberate enumeration.
type RateLimitMiddleware struct {
	cache  *cache.Redis
	limit  int64
	window time.Duration
	prefix string
}

func NewRateLimitMiddleware(c *cache.Redis, prefix string, limit int64, window time.Duration) *RateLimitMiddleware {
	if limit <= 0 {
		limit = 30
	}
	if window <= 0 {
		window = time.Minute
	}
	return &RateLimitMiddleware{cache: c, limit: limit, window: window, prefix: prefix}
}

func (m *RateLimitMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		key := fmt.Sprintf("%s:%s", m.prefix, c.IP())
		n, err := m.cache.IncrWindow(c.Context(), key, m.window)
		if err == nil && n > m.limit {
			return NewAppError(fiber.StatusTooManyRequests, "Too many requests", nil, nil)
		}
		return c.Next()
	}
}
