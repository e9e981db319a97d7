package preference

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNoQuizResult is returned when a user has not completed the quiz yet.
var ErrNoQuizResult = errors.New("no quiz result")

// Repository persists preferences and quiz history.
type Repository interface {
	// Save upserts the user's preference row.
	Save(ctx context.Context, p Preference) error
	// Get fetches the user's preference; found is false when none exists.
	Get(ctx context.Context, userID string) (Preference, bool, error)
	// AddQuizResult appends a quiz result.
	AddQuizResult(ctx context.Context, r QuizResult) error
	// LatestQuizResult fetches the most recent quiz result for a user.
	LatestQuizResult(ctx context.Context, userID string) (QuizResult, error)
}

// PostgresRepository stores preferences in PostgreSQL.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository builds a repository backed by PostgreSQL.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Save upserts the preference row for the user.
func (r *PostgresRepository) Save(ctx context.Context, p Preference) error {
	_, err := r.db.Exec(ctx, `INSERT INTO user_preferences (user_id, mood, genre1, genre2, updated_at)
        VALUES ($1, $2, $3, $4, $5)
        ON CONFLICT (user_id) DO UPDATE SET mood = $2, genre1 = $3, genre2 = $4, updated_at = $5`,
		p.UserID, p.Mood, p.Genre1, p.Genre2, p.UpdatedAt.UTC())
	return err
}

// Get fetches the preference row for the user.
func (r *PostgresRepository) Get(ctx context.Context, userID string) (Preference, bool, error) {
	row := r.db.QueryRow(ctx, `SELECT user_id, mood, genre1, genre2, updated_at
        FROM user_preferences WHERE user_id = $1`, userID)
	var (
		p         Preference
		updatedAt time.Time
	)
	if err := row.Scan(&p.UserID, &p.Mood, &p.Genre1, &p.Genre2, &updatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Preference{}, false, nil
		}
		return Preference{}, false, err
	}
	p.UpdatedAt = updatedAt.UTC()
	return p, true, nil
}

// AddQuizResult appends one quiz result row.
func (r *PostgresRepository) AddQuizResult(ctx context.Context, result QuizResult) error {
	_, err := r.db.Exec(ctx, `INSERT INTO recommendations (user_id, mood, genre1, genre2, created_at)
        VALUES ($1, $2, $3, $4, $5)`, result.UserID, result.Mood, result.Genre1, result.Genre2, result.CreatedAt.UTC())
	return err
}

// LatestQuizResult fetches the newest quiz result for the user.
func (r *PostgresRepository) LatestQuizResult(ctx context.Context, userID string) (QuizResult, error) {
	row := r.db.QueryRow(ctx, `SELECT user_id, mood, genre1, genre2, created_at
        FROM recommendations WHERE user_id = $1 ORDER BY created_at DESC LIMIT 1`, userID)
	var (
		result    QuizResult
		createdAt time.Time
	)
	if err := row.Scan(&result.UserID, &result.Mood, &result.Genre1, &result.Genre2, &createdAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return QuizResult{}, ErrNoQuizResult
		}
		return QuizResult{}, err
	}
	result.CreatedAt = createdAt.UTC()
	return result, nil
}
