package auth

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/dumovie/dumovie/internal/config"
	"github.com/dumovie/dumovie/internal/logging"
	"github.com/dumovie/dumovie/internal/notification"
	"github.com/dumovie/dumovie/internal/otp"
	"github.com/dumovie/dumovie/internal/user"
)

var codePattern = regexp.MustCompile(`>(\d{6})<`)

type captureNotifier struct {
	last notification.Message
	fail bool
}

func (n *captureNotifier) Send(_ context.Context, message notification.Message) error {
	n.last = message
	if n.fail {
		return errors.New("smtp unreachable")
	}
	return nil
}

func extractCode(body string) string {
	m := codePattern.FindStringSubmatch(body)
	if len(m) < 2 {
		return ""
	}
	return m[1]
}

func testConfig() config.Config {
	return config.Config{
		JWTSecret:  "test-secret",
		TokenTTL:   time.Hour,
		OTPTTL:     10 * time.Minute,
		BcryptCost: bcrypt.MinCost,
	}
}

func newTestService(notifier notification.Notifier) *Service {
	return NewService(testConfig(), user.NewMemoryRepository(), otp.NewMemoryStore(10*time.Minute), notifier, logging.Discard())
}

func TestRegisterThenLogin(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(&captureNotifier{})

	id, err := svc.Register(ctx, "dudu", "dudu@example.com", "hunter2")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if id != "USR001" {
		t.Fatalf("expected first identifier USR001, got %s", id)
	}

	result, err := svc.Login(ctx, "dudu", "hunter2")
	if err != nil {
		t.Fatalf("login by username: %v", err)
	}
	if result.Token == "" {
		t.Fatal("expected a token")
	}
	if result.User.PasswordHash != nil {
		t.Fatal("password hash must not leave the service boundary")
	}

	claims, err := VerifyToken(result.Token, "test-secret")
	if err != nil {
		t.Fatalf("verify token: %v", err)
	}
	if claims.UserID != id || claims.Username != "dudu" || claims.Email != "dudu@example.com" {
		t.Fatalf("claims mismatch: %+v", claims)
	}

	// Email-shaped handles dispatch to the email lookup.
	if _, err := svc.Login(ctx, "dudu@example.com", "hunter2"); err != nil {
		t.Fatalf("login by email: %v", err)
	}
}

func TestRegisterDuplicates(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(&captureNotifier{})

	if _, err := svc.Register(ctx, "dudu", "dudu@example.com", "hunter2"); err != nil {
		t.Fatalf("register: %v", err)
	}

	if _, err := svc.Register(ctx, "dudu", "other@example.com", "hunter2"); !errors.Is(err, user.ErrDuplicateUsername) {
		t.Fatalf("expected duplicate username, got %v", err)
	}
	if _, err := svc.Register(ctx, "other", "dudu@example.com", "hunter2"); !errors.Is(err, user.ErrDuplicateEmail) {
		t.Fatalf("expected duplicate email, got %v", err)
	}
}

func TestRegisterMissingFields(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(&captureNotifier{})

	for _, triple := range [][3]string{
		{"", "a@x.com", "pw"},
		{"a", "", "pw"},
		{"a", "a@x.com", ""},
	} {
		if _, err := svc.Register(ctx, triple[0], triple[1], triple[2]); !errors.Is(err, ErrMissingFields) {
			t.Fatalf("expected ErrMissingFields for %v, got %v", triple, err)
		}
	}
}

func TestLoginFailures(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(&captureNotifier{})

	if _, err := svc.Register(ctx, "dudu", "dudu@example.com", "hunter2"); err != nil {
		t.Fatalf("register: %v", err)
	}

	if _, err := svc.Login(ctx, "nobody", "hunter2"); !errors.Is(err, user.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if _, err := svc.Login(ctx, "dudu", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials, got %v", err)
	}
}

func TestForgotThenResetPassword(t *testing.T) {
	ctx := context.Background()
	notifier := &captureNotifier{}
	svc := newTestService(notifier)

	if _, err := svc.Register(ctx, "dudu", "dudu@example.com", "hunter2"); err != nil {
		t.Fatalf("register: %v", err)
	}

	if err := svc.ForgotPassword(ctx, "dudu@example.com"); err != nil {
		t.Fatalf("forgot password: %v", err)
	}
	if notifier.last.To != "dudu@example.com" {
		t.Fatalf("otp sent to wrong recipient: %s", notifier.last.To)
	}
	code := extractCode(notifier.last.Body)
	if code == "" {
		t.Fatalf("no code in notification body: %q", notifier.last.Body)
	}

	if err := svc.ResetPassword(ctx, "dudu@example.com", code, "n3wpass"); err != nil {
		t.Fatalf("reset password: %v", err)
	}

	if _, err := svc.Login(ctx, "dudu", "hunter2"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("old password must stop verifying, got %v", err)
	}
	if _, err := svc.Login(ctx, "dudu", "n3wpass"); err != nil {
		t.Fatalf("new password must verify: %v", err)
	}

	// The code was consumed by the successful reset.
	if err := svc.ResetPassword(ctx, "dudu@example.com", code, "again"); !errors.Is(err, ErrInvalidOTP) {
		t.Fatalf("expected invalid OTP on reuse, got %v", err)
	}
}

func TestForgotPasswordUnknownEmail(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(&captureNotifier{})

	if err := svc.ForgotPassword(ctx, "nobody@example.com"); !errors.Is(err, user.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestForgotPasswordDeliveryFailureKeepsOTP(t *testing.T) {
	ctx := context.Background()
	notifier := &captureNotifier{fail: true}
	svc := newTestService(notifier)

	if _, err := svc.Register(ctx, "dudu", "dudu@example.com", "hunter2"); err != nil {
		t.Fatalf("register: %v", err)
	}

	if err := svc.ForgotPassword(ctx, "dudu@example.com"); !errors.Is(err, ErrNotifier) {
		t.Fatalf("expected notifier error, got %v", err)
	}

	// Delivery is not rolled back: the issued code is still consumable.
	code := extractCode(notifier.last.Body)
	if code == "" {
		t.Fatal("expected a code in the attempted notification")
	}
	if err := svc.ResetPassword(ctx, "dudu@example.com", code, "n3wpass"); err != nil {
		t.Fatalf("reset with surviving code: %v", err)
	}
}

func TestResetPasswordBadCode(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(&captureNotifier{})

	if _, err := svc.Register(ctx, "dudu", "dudu@example.com", "hunter2"); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := svc.ForgotPassword(ctx, "dudu@example.com"); err != nil {
		t.Fatalf("forgot password: %v", err)
	}

	if err := svc.ResetPassword(ctx, "dudu@example.com", "000000", "n3wpass"); !errors.Is(err, ErrInvalidOTP) {
		t.Fatalf("expected invalid OTP, got %v", err)
	}
}

func TestReissueInvalidatesPriorCode(t *testing.T) {
	ctx := context.Background()
	notifier := &captureNotifier{}
	svc := newTestService(notifier)

	if _, err := svc.Register(ctx, "dudu", "dudu@example.com", "hunter2"); err != nil {
		t.Fatalf("register: %v", err)
	}

	if err := svc.ForgotPassword(ctx, "dudu@example.com"); err != nil {
		t.Fatalf("first forgot: %v", err)
	}
	first := extractCode(notifier.last.Body)

	if err := svc.ForgotPassword(ctx, "dudu@example.com"); err != nil {
		t.Fatalf("second forgot: %v", err)
	}
	second := extractCode(notifier.last.Body)

	if first == second {
		t.Skip("codes collided; nothing to assert")
	}
	if err := svc.ResetPassword(ctx, "dudu@example.com", first, "n3wpass"); !errors.Is(err, ErrInvalidOTP) {
		t.Fatalf("first code must be dead after reissue, got %v", err)
	}
	if err := svc.ResetPassword(ctx, "dudu@example.com", second, "n3wpass"); err != nil {
		t.Fatalf("second code must work: %v", err)
	}
}
