package otp

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "otp:v1:"

// RedisStore keeps codes in Redis. A single SET with expiry is both the
// replace and the validity window, so two live codes for one email can never
// coexist even under concurrent issuance, and expired codes vanish on their own.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore builds a Redis-backed code store with the given validity window.
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func key(email string) string {
	return keyPrefix + email
}

// Issue writes the code with the configured expiry, replacing any prior code.
func (s *RedisStore) Issue(ctx context.Context, email, code string) error {
	if err := s.client.Set(ctx, key(email), code, s.ttl).Err(); err != nil {
		return fmt.Errorf("issue otp: %w", err)
	}
	return nil
}

// Verify compares the submitted code against the live one, if any.
func (s *RedisStore) Verify(ctx context.Context, email, code string) (bool, error) {
	stored, err := s.client.Get(ctx, key(email)).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("verify otp: %w", err)
	}
	return stored == code, nil
}

// Invalidate deletes the code for email.
func (s *RedisStore) Invalidate(ctx context.Context, email string) error {
	if err := s.client.Del(ctx, key(email)).Err(); err != nil {
		return fmt.Errorf("invalidate otp: %w", err)
	}
	return nil
}
