package watchlist

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// Handler exposes watchlist endpoints.
type Handler struct {
	svc *Service
}

// NewHandler constructs a watchlist HTTP handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

type addRequest struct {
	UserID  string `json:"user_id"`
	MovieID string `json:"movie_id"`
}

// Add saves a movie to the user's watchlist.
func (h *Handler) Add(c *fiber.Ctx) error {
	var req addRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	if req.UserID == "" || req.MovieID == "" {
		return fiber.NewError(http.StatusBadRequest, "user_id and movie_id are required")
	}

	entry, err := h.svc.Add(c.UserContext(), req.UserID, req.MovieID)
	if errors.Is(err, ErrDuplicate) {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "Movie already exists in watchlist"})
	}
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to add movie to watchlist"})
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{
		"message": "Movie successfully added to watchlist",
		"watchlist": fiber.Map{
			"watchlist_id": entry.ID,
			"user_id":      entry.UserID,
			"movie_id":     entry.MovieID,
			"title":        entry.Title,
			"poster_path":  entry.PosterPath,
		},
	})
}

type entryResponse struct {
	WatchlistID string `json:"watchlist_id"`
	MovieID     string `json:"movie_id"`
	Title       string `json:"title"`
	PosterPath  string `json:"poster_path"`
}

// List returns the watchlist for the user in the path.
func (h *Handler) List(c *fiber.Ctx) error {
	entries, err := h.svc.List(c.UserContext(), c.Params("user_id"))
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch watchlist"})
	}

	out := make([]entryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, entryResponse{WatchlistID: e.ID, MovieID: e.MovieID, Title: e.Title, PosterPath: e.PosterPath})
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{"watchlist": out})
}

type removeRequest struct {
	UserID  string `json:"user_id"`
	MovieID string `json:"movie_id"`
}

// Remove deletes a movie from the user's watchlist.
func (h *Handler) Remove(c *fiber.Ctx) error {
	var req removeRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}

	err := h.svc.Remove(c.UserContext(), req.UserID, req.MovieID)
	if errors.Is(err, ErrNotFound) {
		return c.Status(http.StatusNotFound).JSON(fiber.Map{"message": "Movie not found in watchlist"})
	}
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to remove movie from watchlist"})
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{"message": "Movie removed from watchlist", "movie_id": req.MovieID})
}
