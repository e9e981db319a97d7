package watchlist

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Sentinel errors surfaced by every Repository implementation.
var (
	ErrDuplicate = errors.New("movie already exists in watchlist")
	ErrNotFound  = errors.New("movie not found in watchlist")
)

// Repository persists watchlist entries.
type Repository interface {
	Add(ctx context.Context, entry Entry) error
	ListByUser(ctx context.Context, userID string) ([]Entry, error)
	Remove(ctx context.Context, userID, movieID string) error
}

// PostgresRepository stores watchlist entries in PostgreSQL.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository builds a repository backed by PostgreSQL.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Add inserts an entry. The (user_id, movie_id) unique constraint backstops
// the service-level duplicate check.
func (r *PostgresRepository) Add(ctx context.Context, entry Entry) error {
	entryID, err := uuid.Parse(entry.ID)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(ctx, `INSERT INTO watchlist (watchlist_id, user_id, movie_id, title, poster_path, created_at)
        VALUES ($1, $2, $3, $4, $5, $6)`, entryID, entry.UserID, entry.MovieID, entry.Title, entry.PosterPath, entry.CreatedAt.UTC())
	return err
}

// ListByUser fetches all entries for a user.
func (r *PostgresRepository) ListByUser(ctx context.Context, userID string) ([]Entry, error) {
	rows, err := r.db.Query(ctx, `SELECT watchlist_id, user_id, movie_id, title, poster_path, created_at
        FROM watchlist WHERE user_id = $1 ORDER BY created_at`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var (
			entry     Entry
			id        uuid.UUID
			createdAt time.Time
		)
		if err := rows.Scan(&id, &entry.UserID, &entry.MovieID, &entry.Title, &entry.PosterPath, &createdAt); err != nil {
			return nil, err
		}
		entry.ID = id.String()
		entry.CreatedAt = createdAt.UTC()
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

// Remove deletes the entry for the (user, movie) pair.
func (r *PostgresRepository) Remove(ctx context.Context, userID, movieID string) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM watchlist WHERE user_id = $1 AND movie_id = $2`, userID, movieID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
