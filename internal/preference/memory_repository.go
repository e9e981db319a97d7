package preference

import (
	"context"
	"sync"
)

type memoryRepository struct {
	mu      sync.RWMutex
	prefs   map[string]Preference
	results []QuizResult
}

// NewMemoryRepository builds an in-memory preference store for development and testing.
func NewMemoryRepository() Repository {
	return &memoryRepository{prefs: make(map[string]Preference)}
}

func (r *memoryRepository) Save(_ context.Context, p Preference) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.prefs[p.UserID] = p
	return nil
}

func (r *memoryRepository) Get(_ context.Context, userID string) (Preference, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.prefs[userID]
	return p, ok, nil
}

func (r *memoryRepository) AddQuizResult(_ context.Context, result QuizResult) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.results = append(r.results, result)
	return nil
}

func (r *memoryRepository) LatestQuizResult(_ context.Context, userID string) (QuizResult, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := len(r.results) - 1; i >= 0; i-- {
		if r.results[i].UserID == userID {
			return r.results[i], nil
		}
	}
	return QuizResult{}, ErrNoQuizResult
}
