package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dumovie/dumovie/internal/preference"
)

// RegisterPreferenceRoutes wires the preference and quiz endpoints behind the
// JWT guard.
func RegisterPreferenceRoutes(r fiber.Router, h *preference.Handler, jwtmw fiber.Handler) {
	api := r.Group("/api", jwtmw)
	api.Post("/preferences", h.Save)
	api.Get("/preferences/:userId", h.Get)

	r.Post("/save-quiz", jwtmw, h.SaveQuiz)
	r.Get("/get-quiz-result", jwtmw, h.QuizResult)
}
