// Package otp stores one-time password-reset codes, at most one live code per
// email. Issuing replaces any outstanding code, verification never consumes,
// and invalidation is an explicit, idempotent delete.
package otp

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
)

// Store persists reset codes with a bounded lifetime.
type Store interface {
	// Issue replaces any existing code for email with a fresh one that
	// expires after the store's validity window.
	Issue(ctx context.Context, email, code string) error
	// Verify reports whether code is the live, unexpired code for email.
	// It does not consume the code.
	Verify(ctx context.Context, email, code string) (bool, error)
	// Invalidate deletes the code for email. Deleting an absent code is a no-op.
	Invalidate(ctx context.Context, email string) error
}

// GenerateCode draws a 6-digit numeric code uniformly from [100000, 999999].
func GenerateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", fmt.Errorf("generate otp: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}
