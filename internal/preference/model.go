package preference

import "time"

// Preference is a user's current mood and genre picks, one row per user.
type Preference struct {
	UserID    string    `json:"user_id"`
	Mood      string    `json:"mood"`
	Genre1    string    `json:"genre1"`
	Genre2    string    `json:"genre2"`
	UpdatedAt time.Time `json:"updated_at"`
}

// QuizResult is one completed recommendation quiz. Results accumulate; only
// the latest is served back.
type QuizResult struct {
	UserID    string    `json:"user_id"`
	Mood      string    `json:"mood"`
	Genre1    string    `json:"genre1"`
	Genre2    string    `json:"genre2"`
	CreatedAt time.Time `json:"created_at"`
}
