package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/dumovie/dumovie/internal/config"
	"github.com/dumovie/dumovie/internal/notification"
	"github.com/dumovie/dumovie/internal/otp"
	"github.com/dumovie/dumovie/internal/user"
)

// Sentinel errors for the authentication flows. Repository errors
// (user.ErrNotFound, user.ErrDuplicateUsername, user.ErrDuplicateEmail) pass
// through unchanged so handlers can match on the whole closed set.
var (
	ErrMissingFields      = errors.New("required fields are missing")
	ErrInvalidCredentials = errors.New("invalid password")
	ErrInvalidOTP         = errors.New("invalid or expired OTP")
	ErrNotifier           = errors.New("error sending OTP")
)

// Service orchestrates registration, login and the password-reset protocol.
type Service struct {
	cfg      config.Config
	users    user.Repository
	otps     otp.Store
	notifier notification.Notifier
	logger   *slog.Logger
}

// NewService wires the auth service from its collaborators.
func NewService(cfg config.Config, users user.Repository, otps otp.Store, notifier notification.Notifier, logger *slog.Logger) *Service {
	return &Service{cfg: cfg, users: users, otps: otps, notifier: notifier, logger: logger}
}

// Register creates a new account. No token is issued; the caller logs in
// afterwards. The repository enforces uniqueness again at the storage layer,
// so a concurrent duplicate that slips past the pre-checks still surfaces as
// a duplicate error rather than a corrupt row.
func (s *Service) Register(ctx context.Context, username, email, password string) (string, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	if username == "" || email == "" || password == "" {
		return "", ErrMissingFields
	}

	if _, err := s.users.FindByUsername(ctx, username); err == nil {
		return "", user.ErrDuplicateUsername
	} else if !errors.Is(err, user.ErrNotFound) {
		return "", err
	}
	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return "", user.ErrDuplicateEmail
	} else if !errors.Is(err, user.ErrNotFound) {
		return "", err
	}

	hash, err := HashPassword(password, s.cfg.BcryptCost)
	if err != nil {
		return "", err
	}

	id, err := s.users.NextID(ctx)
	if err != nil {
		return "", err
	}

	u := user.User{
		ID:           id,
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.users.Create(ctx, u); err != nil {
		return "", err
	}

	s.logger.Info("user registered", "user_id", id, "username", username)
	return id, nil
}

// LoginResult carries the issued token and the public user fields.
type LoginResult struct {
	Token string
	User  user.User
}

// Login resolves the handle (email when it contains '@', username otherwise),
// verifies the password and issues a session token. The password hash never
// leaves this boundary.
func (s *Service) Login(ctx context.Context, handle, password string) (LoginResult, error) {
	handle = strings.TrimSpace(handle)
	if handle == "" || password == "" {
		return LoginResult{}, ErrMissingFields
	}

	var (
		u   user.User
		err error
	)
	if strings.Contains(handle, "@") {
		u, err = s.users.FindByEmail(ctx, handle)
	} else {
		u, err = s.users.FindByUsername(ctx, handle)
	}
	if err != nil {
		return LoginResult{}, err
	}

	if !VerifyPassword(password, u.PasswordHash) {
		return LoginResult{}, ErrInvalidCredentials
	}

	token, err := IssueToken(u, s.cfg.JWTSecret, s.cfg.TokenTTL)
	if err != nil {
		return LoginResult{}, err
	}

	u.PasswordHash = nil
	return LoginResult{Token: token, User: u}, nil
}

// ForgotPassword issues a fresh reset code for the email and delivers it via
// the notifier. Delivery failure is reported to the caller, but the issued
// code stays live and consumable; a resend simply replaces it.
func (s *Service) ForgotPassword(ctx context.Context, email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return ErrMissingFields
	}

	if _, err := s.users.FindByEmail(ctx, email); err != nil {
		return err
	}

	code, err := otp.GenerateCode()
	if err != nil {
		return err
	}
	if err := s.otps.Issue(ctx, email, code); err != nil {
		return err
	}

	if err := s.notifier.Send(ctx, notification.PasswordResetMessage(email, code)); err != nil {
		s.logger.Error("otp delivery failed", "email", email, "error", err)
		return fmt.Errorf("%w: %v", ErrNotifier, err)
	}

	s.logger.Info("otp issued", "email", email)
	return nil
}

// ResetPassword consumes a valid code and replaces the account's password
// hash. The code is invalidated only after the update succeeds, so a failed
// update leaves it usable for a retry. A second reset with the same code
// fails verification.
func (s *Service) ResetPassword(ctx context.Context, email, code, newPassword string) error {
	email = strings.TrimSpace(email)
	if email == "" || code == "" || newPassword == "" {
		return ErrMissingFields
	}

	ok, err := s.otps.Verify(ctx, email, code)
	if err != nil {
		return err
	}
	if !ok {
		return ErrInvalidOTP
	}

	hash, err := HashPassword(newPassword, s.cfg.BcryptCost)
	if err != nil {
		return err
	}
	if err := s.users.UpdatePasswordHash(ctx, email, hash); err != nil {
		return err
	}

	if err := s.otps.Invalidate(ctx, email); err != nil {
		return err
	}

	s.logger.Info("password reset", "email", email)
	return nil
}
