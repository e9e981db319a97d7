package preference

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// Handler exposes preference and quiz endpoints.
type Handler struct {
	svc *Service
}

// NewHandler constructs a preference HTTP handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

type saveRequest struct {
	UserID string `json:"user_id"`
	Mood   string `json:"mood"`
	Genre1 string `json:"genre1"`
	Genre2 string `json:"genre2"`
}

// Save upserts the caller's mood/genre preference.
func (h *Handler) Save(c *fiber.Ctx) error {
	var req saveRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}

	p, err := h.svc.Save(c.UserContext(), req.UserID, req.Mood, req.Genre1, req.Genre2)
	if errors.Is(err, ErrMissingFields) {
		return fiber.NewError(http.StatusBadRequest, "user_id, mood, genre1 and genre2 are required")
	}
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to save preferences"})
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{"message": "Preferences saved successfully", "data": p})
}

// Get returns the preference for the user in the path, or a 200 null when
// none has been saved yet.
func (h *Handler) Get(c *fiber.Ctx) error {
	p, found, err := h.svc.Get(c.UserContext(), c.Params("userId"))
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to get preferences"})
	}
	if !found {
		return c.Status(http.StatusOK).JSON(nil)
	}
	return c.Status(http.StatusOK).JSON(p)
}

type quizRequest struct {
	UserID string   `json:"userId"`
	Mood   string   `json:"mood"`
	Genres []string `json:"genres"`
}

// SaveQuiz appends a completed quiz to the user's history.
func (h *Handler) SaveQuiz(c *fiber.Ctx) error {
	var req quizRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	if len(req.Genres) < 2 {
		return fiber.NewError(http.StatusBadRequest, "two genres are required")
	}

	if err := h.svc.SaveQuizResult(c.UserContext(), req.UserID, req.Mood, req.Genres[0], req.Genres[1]); err != nil {
		if errors.Is(err, ErrMissingFields) {
			return fiber.NewError(http.StatusBadRequest, "userId and mood are required")
		}
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"message": "Error saving quiz result"})
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{"message": "Quiz result saved"})
}

// QuizResult returns the latest quiz result for the user in the query.
func (h *Handler) QuizResult(c *fiber.Ctx) error {
	result, err := h.svc.LatestQuizResult(c.UserContext(), c.Query("userId"))
	if errors.Is(err, ErrNoQuizResult) {
		return c.Status(http.StatusNotFound).JSON(fiber.Map{})
	}
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"message": "Error retrieving quiz result"})
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{
		"mood":   result.Mood,
		"genre1": result.Genre1,
		"genre2": result.Genre2,
	})
}
