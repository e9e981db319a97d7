package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"

	"github.com/dumovie/dumovie/internal/auth"
	"github.com/dumovie/dumovie/internal/config"
	"github.com/dumovie/dumovie/internal/user"
)

func setupLimitedApp(t *testing.T, max int) *fiber.App {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	cache := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { cache.Close() })

	app := fiber.New()
	app.Post("/login", AttemptRateLimit(cache, max), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func TestAttemptRateLimitBlocksAfterMax(t *testing.T) {
	app := setupLimitedApp(t, 3)

	for i := 0; i < 3; i++ {
		resp, err := app.Test(loginRequest(t))
		if err != nil {
			t.Fatalf("request %d: %v", i, err)
		}
		if resp.StatusCode != fiber.StatusOK {
			t.Fatalf("request %d: expected 200, got %d", i, resp.StatusCode)
		}
	}

	resp, err := app.Test(loginRequest(t))
	if err != nil {
		t.Fatalf("final request: %v", err)
	}
	if resp.StatusCode != fiber.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", resp.StatusCode)
	}
}

func TestAttemptRateLimitSeparatesSubjects(t *testing.T) {
	app := setupLimitedApp(t, 1)

	resp, err := app.Test(loginRequest(t))
	if err != nil {
		t.Fatalf("first request: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	other := httptest.NewRequest(fiber.MethodPost, "/login", strings.NewReader(`{"emailOrUsername":"someone-else"}`))
	other.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err = app.Test(other)
	if err != nil {
		t.Fatalf("other subject: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("other subject must not be limited, got %d", resp.StatusCode)
	}
}

func loginRequest(t *testing.T) *http.Request {
	t.Helper()
	req := httptest.NewRequest(fiber.MethodPost, "/login", strings.NewReader(`{"emailOrUsername":"dudu"}`))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return req
}

func TestJWTAuthGuardsRoutes(t *testing.T) {
	cfg := config.Config{JWTSecret: "test-secret", TokenTTL: time.Hour}

	app := fiber.New()
	app.Get("/protected", JWTAuth(cfg), func(c *fiber.Ctx) error {
		uid, _ := c.Locals("user_id").(string)
		return c.SendString(uid)
	})

	req := httptest.NewRequest(fiber.MethodGet, "/protected", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("no token: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", resp.StatusCode)
	}

	token, err := auth.IssueToken(user.User{ID: "USR001", Username: "dudu", Email: "dudu@example.com"}, cfg.JWTSecret, cfg.TokenTTL)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	req = httptest.NewRequest(fiber.MethodGet, "/protected", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("with token: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 with token, got %d", resp.StatusCode)
	}
}
