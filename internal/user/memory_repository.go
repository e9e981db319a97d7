package user

import (
	"context"
	"strings"
	"sync"
)

type memoryRepository struct {
	mu    sync.RWMutex
	users map[string]User // keyed by user_id
}

// NewMemoryRepository builds an in-memory user store for development and testing.
func NewMemoryRepository() Repository {
	return &memoryRepository{users: make(map[string]User)}
}

func (r *memoryRepository) Create(_ context.Context, u User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if existing.Username == u.Username {
			return ErrDuplicateUsername
		}
		if existing.Email == u.Email {
			return ErrDuplicateEmail
		}
	}
	r.users[u.ID] = u
	return nil
}

func (r *memoryRepository) NextID(_ context.Context) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var max int64
	for id := range r.users {
		if n := ordinalOf(id); n > max {
			max = n
		}
	}
	return FormatID(max + 1), nil
}

func (r *memoryRepository) FindByUsername(_ context.Context, username string) (User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	username = strings.TrimSpace(username)
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return User{}, ErrNotFound
}

func (r *memoryRepository) FindByEmail(_ context.Context, email string) (User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	email = strings.TrimSpace(email)
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return User{}, ErrNotFound
}

func (r *memoryRepository) UpdatePasswordHash(_ context.Context, email string, hash []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	email = strings.TrimSpace(email)
	for id, u := range r.users {
		if u.Email == email {
			u.PasswordHash = hash
			r.users[id] = u
			return nil
		}
	}
	return ErrNotFound
}
