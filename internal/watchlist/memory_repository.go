package watchlist

import (
	"context"
	"sync"
)

type memoryRepository struct {
	mu      sync.RWMutex
	entries []Entry
}

// NewMemoryRepository builds an in-memory watchlist store for development and testing.
func NewMemoryRepository() Repository {
	return &memoryRepository{}
}

func (r *memoryRepository) Add(_ context.Context, entry Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.entries {
		if e.UserID == entry.UserID && e.MovieID == entry.MovieID {
			return ErrDuplicate
		}
	}
	r.entries = append(r.entries, entry)
	return nil
}

func (r *memoryRepository) ListByUser(_ context.Context, userID string) ([]Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var entries []Entry
	for _, e := range r.entries {
		if e.UserID == userID {
			entries = append(entries, e)
		}
	}
	return entries, nil
}

func (r *memoryRepository) Remove(_ context.Context, userID, movieID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, e := range r.entries {
		if e.UserID == userID && e.MovieID == movieID {
			r.entries = append(r.entries[:i], r.entries[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}
