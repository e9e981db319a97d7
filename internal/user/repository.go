package user

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Sentinel errors surfaced by every Repository implementation.
var (
	ErrNotFound          = errors.New("user not found")
	ErrDuplicateUsername = errors.New("username already exists")
	ErrDuplicateEmail    = errors.New("email already registered")
)

// Repository persists user accounts.
type Repository interface {
	Create(ctx context.Context, u User) error
	NextID(ctx context.Context) (string, error)
	FindByUsername(ctx context.Context, username string) (User, error)
	FindByEmail(ctx context.Context, email string) (User, error)
	UpdatePasswordHash(ctx context.Context, email string, hash []byte) error
}

// PostgresRepository implements Repository using PostgreSQL.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository builds a Postgres-backed user repository.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a new account. Unique violations on username or email come
// back as the matching sentinel error, so the storage layer backstops the
// service-level pre-checks under concurrent registration.
func (r *PostgresRepository) Create(ctx context.Context, u User) error {
	_, err := r.db.Exec(ctx, `INSERT INTO users (user_id, username, email, password_hash, created_at)
        VALUES ($1, $2, $3, $4, $5)`, u.ID, u.Username, u.Email, u.PasswordHash, u.CreatedAt.UTC())
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			if strings.Contains(pgErr.ConstraintName, "email") {
				return ErrDuplicateEmail
			}
			return ErrDuplicateUsername
		}
		return err
	}
	return nil
}

// NextID draws the next ordinal from a dedicated sequence and renders it as a
// display identifier. The sequence avoids the read-then-insert race a
// max-row scan would have under concurrent registration.
func (r *PostgresRepository) NextID(ctx context.Context) (string, error) {
	var ordinal int64
	if err := r.db.QueryRow(ctx, `SELECT nextval('users_seq')`).Scan(&ordinal); err != nil {
		return "", err
	}
	return FormatID(ordinal), nil
}

// FindByUsername fetches an account by exact username match.
func (r *PostgresRepository) FindByUsername(ctx context.Context, username string) (User, error) {
	return r.findBy(ctx, `SELECT user_id, username, email, password_hash, created_at FROM users WHERE username = $1`, strings.TrimSpace(username))
}

// FindByEmail fetches an account by exact email match.
func (r *PostgresRepository) FindByEmail(ctx context.Context, email string) (User, error) {
	return r.findBy(ctx, `SELECT user_id, username, email, password_hash, created_at FROM users WHERE email = $1`, strings.TrimSpace(email))
}

func (r *PostgresRepository) findBy(ctx context.Context, query, arg string) (User, error) {
	row := r.db.QueryRow(ctx, query, arg)
	var (
		u         User
		createdAt time.Time
	)
	if err := row.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &createdAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return User{}, ErrNotFound
		}
		return User{}, err
	}
	u.CreatedAt = createdAt.UTC()
	return u, nil
}

// UpdatePasswordHash replaces the stored hash for the given email.
func (r *PostgresRepository) UpdatePasswordHash(ctx context.Context, email string, hash []byte) error {
	cmd, err := r.db.Exec(ctx, `UPDATE users SET password_hash = $1 WHERE email = $2`, hash, strings.TrimSpace(email))
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
