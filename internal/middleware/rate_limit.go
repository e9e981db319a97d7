package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

// AttemptRateLimit limits attempts per email or IP using Redis if available.
// Applied to login and forgot-password, which are the brute-forceable routes.
func AttemptRateLimit(cache *redis.Client, maxPerMin int) fiber.Handler {
	if maxPerMin <= 0 {
		maxPerMin = 5
	}
	return func(c *fiber.Ctx) error {
		if cache == nil {
			return c.Next() // no-op without Redis
		}
		var req struct {
			Email           string `json:"email"`
			EmailOrUsername string `json:"emailOrUsername"`
		}
		_ = c.BodyParser(&req)
		subject := strings.TrimSpace(req.Email)
		if subject == "" {
			subject = strings.TrimSpace(req.EmailOrUsername)
		}
		if subject == "" {
			subject = c.IP()
		}
		key := "rl:auth:" + c.Path() + ":" + subject
		cnt, err := cache.Incr(c.UserContext(), key).Result()
		if err == nil && cnt == 1 {
			cache.Expire(c.UserContext(), key, time.Minute)
		}
		if err != nil {
			return c.Next() // fail-open on cache errors
		}
		if cnt > int64(maxPerMin) {
			return fiber.NewError(http.StatusTooManyRequests, "too many attempts, try again later")
		}
		return c.Next()
	}
}
