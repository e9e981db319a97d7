package watchlist

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/dumovie/dumovie/internal/catalog"
)

// Service manages a user's saved movies, pulling titles and poster art from
// the catalog at save time.
type Service struct {
	repo    Repository
	catalog *catalog.Service
}

// NewService creates a watchlist service.
func NewService(repo Repository, catalogSvc *catalog.Service) *Service {
	return &Service{repo: repo, catalog: catalogSvc}
}

// Add looks the movie up in the catalog and saves it for the user. Saving the
// same movie twice fails with ErrDuplicate.
func (s *Service) Add(ctx context.Context, userID, movieID string) (Entry, error) {
	record, err := s.catalog.Movie(ctx, movieID)
	if err != nil {
		return Entry{}, err
	}

	existing, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return Entry{}, err
	}
	for _, e := range existing {
		if e.MovieID == movieID {
			return Entry{}, ErrDuplicate
		}
	}

	entry := Entry{
		ID:         uuid.NewString(),
		UserID:     userID,
		MovieID:    movieID,
		Title:      record.Details.Title,
		PosterPath: record.Details.PosterURL,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.repo.Add(ctx, entry); err != nil {
		return Entry{}, err
	}
	return entry, nil
}

// List returns all entries for a user.
func (s *Service) List(ctx context.Context, userID string) ([]Entry, error) {
	return s.repo.ListByUser(ctx, userID)
}

// Remove deletes the (user, movie) entry.
func (s *Service) Remove(ctx context.Context, userID, movieID string) error {
	return s.repo.Remove(ctx, userID, movieID)
}
