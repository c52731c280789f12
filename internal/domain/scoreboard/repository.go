package scoreboard

import "context"

// Repository persists scoreboard entries
type Repository interface {
	// Save stores a new entry
	Save(ctx context.Context, entry *Entry) error
	// Top returns the n best entries, highest points first.
	// Ties are resolved by recency, newest first.
	Top(ctx context.Context, n int) ([]Entry, error)
	// Count returns the total number of recorded entries
	Count(ctx context.Context) (int64, error)
}
