package watchlist

import "time"

// Entry is one saved movie on a user's watchlist.
type Entry struct {
	ID         string
	UserID     string
	MovieID    string
	Title      string
	PosterPath string
	CreatedAt  time.Time
}
