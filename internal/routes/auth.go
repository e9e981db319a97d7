package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dumovie/dumovie/internal/auth"
)

// RegisterAuthRoutes wires authentication endpoints. The rate limiter guards
// the two brute-forceable routes.
func RegisterAuthRoutes(r fiber.Router, h *auth.Handler, rateLimiter fiber.Handler) {
	r.Post("/register", h.Register)
	if rateLimiter != nil {
		r.Post("/login", rateLimiter, h.Login)
		r.Post("/forgot-password", rateLimiter, h.ForgotPassword)
	} else {
		r.Post("/login", h.Login)
		r.Post("/forgot-password", h.ForgotPassword)
	}
	r.Post("/reset-password", h.ResetPassword)
}
