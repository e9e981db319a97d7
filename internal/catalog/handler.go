package catalog

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// Handler exposes the movie browse and recommendation endpoints.
type Handler struct {
	svc *Service
}

// NewHandler constructs a catalog HTTP handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// Trending returns this week's trending movies.
func (h *Handler) Trending(c *fiber.Ctx) error {
	page, err := h.svc.Trending(c.UserContext())
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch trending movies"})
	}
	return c.Status(http.StatusOK).JSON(page)
}

// Upcoming returns the upcoming-movies page.
func (h *Handler) Upcoming(c *fiber.Ctx) error {
	page, err := h.svc.Upcoming(c.UserContext())
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch upcoming movies"})
	}
	return c.Status(http.StatusOK).JSON(page)
}

// Similar lists movies similar to the one in the path.
func (h *Handler) Similar(c *fiber.Ctx) error {
	movies, err := h.svc.Similar(c.UserContext(), c.Params("id"))
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch similar movies"})
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{"similar": movies})
}

// Search runs a free-text movie search.
func (h *Handler) Search(c *fiber.Ctx) error {
	query := c.Query("query")
	if query == "" {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "Query parameter is required"})
	}
	page, err := h.svc.Search(c.UserContext(), query)
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch movie data"})
	}
	return c.Status(http.StatusOK).JSON(page)
}

// Details returns the full record, capped credits and director for one movie.
func (h *Handler) Details(c *fiber.Ctx) error {
	record, err := h.svc.Movie(c.UserContext(), c.Params("id"))
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch movie data"})
	}
	return c.Status(http.StatusOK).JSON(record)
}

type recommendRequest struct {
	Mood   string `json:"mood"`
	Genre1 string `json:"genre1"`
	Genre2 string `json:"genre2"`
}

// Recommend returns mood/genre-based movie recommendations.
func (h *Handler) Recommend(c *fiber.Ctx) error {
	var req recommendRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	if req.Mood == "" || req.Genre1 == "" || req.Genre2 == "" {
		return fiber.NewError(http.StatusBadRequest, "Mood and two genres are required")
	}

	rec, err := h.svc.Recommend(c.UserContext(), req.Mood, req.Genre1, req.Genre2)
	switch {
	case errors.Is(err, ErrUnknownMood):
		return fiber.NewError(http.StatusBadRequest, "Invalid mood")
	case errors.Is(err, ErrUnknownGenre):
		return fiber.NewError(http.StatusBadRequest, "Invalid genre name(s)")
	case err != nil:
		return fiber.NewError(http.StatusInternalServerError, "Error fetching movies")
	}
	return c.Status(http.StatusOK).JSON(rec)
}
