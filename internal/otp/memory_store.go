package otp

import (
	"context"
	"sync"
	"time"
)

type record struct {
	code   string
	expiry time.Time
}

type memoryStore struct {
	mu    sync.Mutex
	codes map[string]record
	ttl   time.Duration
	now   func() time.Time
}

// NewMemoryStore builds an in-memory code store for development and testing.
func NewMemoryStore(ttl time.Duration) Store {
	return &memoryStore{codes: make(map[string]record), ttl: ttl, now: time.Now}
}

func (s *memoryStore) Issue(_ context.Context, email, code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.codes[email] = record{code: code, expiry: s.now().Add(s.ttl)}
	return nil
}

func (s *memoryStore) Verify(_ context.Context, email, code string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.codes[email]
	if !ok || s.now().After(rec.expiry) {
		return false, nil
	}
	return rec.code == code, nil
}

func (s *memoryStore) Invalidate(_ context.Context, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.codes, email)
	return nil
}
