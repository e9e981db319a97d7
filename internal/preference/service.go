package preference

import (
	"context"
	"errors"
	"time"
)

// ErrMissingFields is returned when a save request lacks required input.
var ErrMissingFields = errors.New("required fields are missing")

// Service manages mood/genre preferences and quiz history.
type Service struct {
	repo Repository
}

// NewService creates a preference service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Save upserts the user's preference.
func (s *Service) Save(ctx context.Context, userID, mood, genre1, genre2 string) (Preference, error) {
	if userID == "" || mood == "" || genre1 == "" || genre2 == "" {
		return Preference{}, ErrMissingFields
	}
	p := Preference{UserID: userID, Mood: mood, Genre1: genre1, Genre2: genre2, UpdatedAt: time.Now().UTC()}
	if err := s.repo.Save(ctx, p); err != nil {
		return Preference{}, err
	}
	return p, nil
}

// Get fetches the user's preference; found is false when none has been saved.
func (s *Service) Get(ctx context.Context, userID string) (Preference, bool, error) {
	return s.repo.Get(ctx, userID)
}

// SaveQuizResult appends a completed quiz to the user's history.
func (s *Service) SaveQuizResult(ctx context.Context, userID, mood, genre1, genre2 string) error {
	if userID == "" || mood == "" {
		return ErrMissingFields
	}
	return s.repo.AddQuizResult(ctx, QuizResult{
		UserID:    userID,
		Mood:      mood,
		Genre1:    genre1,
		Genre2:    genre2,
		CreatedAt: time.Now().UTC(),
	})
}

// LatestQuizResult fetches the user's most recent quiz.
func (s *Service) LatestQuizResult(ctx context.Context, userID string) (QuizResult, error) {
	return s.repo.LatestQuizResult(ctx, userID)
}
