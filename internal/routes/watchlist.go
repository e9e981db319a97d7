package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dumovie/dumovie/internal/watchlist"
)

// RegisterWatchlistRoutes wires the watchlist endpoints behind the JWT guard.
func RegisterWatchlistRoutes(r fiber.Router, h *watchlist.Handler, jwtmw fiber.Handler) {
	r.Post("/addwatchlist", jwtmw, h.Add)
	r.Get("/watchlist/:user_id", jwtmw, h.List)
	r.Delete("/removewatchlist", jwtmw, h.Remove)
}
