package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dumovie/dumovie/internal/catalog"
)

// RegisterMovieRoutes wires the public catalog browse endpoints.
func RegisterMovieRoutes(r fiber.Router, h *catalog.Handler) {
	movies := r.Group("/movies")
	movies.Get("/trending", h.Trending)
	movies.Get("/upcoming", h.Upcoming)
	movies.Get("/similar/:id", h.Similar)
	movies.Get("/details/:id", h.Details)
	movies.Post("/recommend", h.Recommend)

	r.Get("/search/movie", h.Search)
}
