package auth

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/dumovie/dumovie/internal/user"
)

// Handler exposes the authentication endpoints.
type Handler struct {
	svc *Service
}

// NewHandler constructs an auth HTTP handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Register handles new account creation.
func (h *Handler) Register(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	if req.Username == "" || req.Email == "" || req.Password == "" {
		return fiber.NewError(http.StatusBadRequest, "Username, email, and password are required")
	}
	if _, err := h.svc.Register(c.UserContext(), req.Username, req.Email, req.Password); err != nil {
		return mapError(err)
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"message": "User registered successfully"})
}

type loginRequest struct {
	EmailOrUsername string `json:"emailOrUsername"`
	Password        string `json:"password"`
}

// Login verifies credentials and returns a session token with the public user fields.
func (h *Handler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	if req.EmailOrUsername == "" || req.Password == "" {
		return fiber.NewError(http.StatusBadRequest, "Email/Username and password are required")
	}
	result, err := h.svc.Login(c.UserContext(), req.EmailOrUsername, req.Password)
	if err != nil {
		return mapError(err)
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{
		"message": "Login successful",
		"token":   result.Token,
		"user": fiber.Map{
			"user_id":  result.User.ID,
			"username": result.User.Username,
			"email":    result.User.Email,
		},
	})
}

type forgotPasswordRequest struct {
	Email string `json:"email"`
}

// ForgotPassword issues a reset code and emails it to the account owner.
func (h *Handler) ForgotPassword(c *fiber.Ctx) error {
	var req forgotPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	if req.Email == "" {
		return fiber.NewError(http.StatusBadRequest, "Email is required")
	}
	if err := h.svc.ForgotPassword(c.UserContext(), req.Email); err != nil {
		return mapError(err)
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{"message": "OTP sent to your email"})
}

type resetPasswordRequest struct {
	Email       string      `json:"email"`
	OTP         json.Number `json:"otp"`
	NewPassword string      `json:"newPassword"`
}

// ResetPassword consumes a valid code and sets the new password.
func (h *Handler) ResetPassword(c *fiber.Ctx) error {
	var req resetPasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	if req.Email == "" || req.OTP.String() == "" || req.NewPassword == "" {
		return fiber.NewError(http.StatusBadRequest, "All fields are required")
	}
	if err := h.svc.ResetPassword(c.UserContext(), req.Email, req.OTP.String(), req.NewPassword); err != nil {
		return mapError(err)
	}
	return c.Status(http.StatusOK).JSON(fiber.Map{"message": "Password has been reset successfully"})
}

// mapError translates the closed error set into HTTP statuses. Anything
// outside the set is an unclassified internal failure.
func mapError(err error) error {
	switch {
	case errors.Is(err, ErrMissingFields):
		return fiber.NewError(http.StatusBadRequest, "Required fields are missing")
	case errors.Is(err, user.ErrDuplicateUsername):
		return fiber.NewError(http.StatusBadRequest, "Username already exists")
	case errors.Is(err, user.ErrDuplicateEmail):
		return fiber.NewError(http.StatusBadRequest, "Email already registered")
	case errors.Is(err, user.ErrNotFound):
		return fiber.NewError(http.StatusNotFound, "User not found")
	case errors.Is(err, ErrInvalidCredentials):
		return fiber.NewError(http.StatusUnauthorized, "Invalid password")
	case errors.Is(err, ErrInvalidOTP):
		return fiber.NewError(http.StatusBadRequest, "Invalid or expired OTP")
	case errors.Is(err, ErrNotifier):
		return fiber.NewError(http.StatusInternalServerError, "Error sending OTP")
	default:
		return fiber.NewError(http.StatusInternalServerError, "Internal server error")
	}
}
