package scoreboard

import (
	"time"

	"github.com/angmar3019/space-defenders/internal/domain/shared"
)

// TopPlaces is the number of entries the scoreboard screen shows.
// The database is seeded with this many zero-point entries on first run
// so the screen always has something to display.
const TopPlaces = 3

// Entry represents one finished run on the scoreboard.
// It is the aggregate root of the scoreboard context.
type Entry struct {
	shared.BaseEntity
	Points     int64     `gorm:"not null;index:idx_scoreboard_rank,priority:1"`
	AchievedAt time.Time `gorm:"not null;index:idx_scoreboard_rank,priority:2"`
}

// TableName returns the table name for GORM
func (Entry) TableName() string {
	return "scoreboard_entries"
}

// NewEntry creates a scoreboard entry for a finished run
func NewEntry(points int64) (*Entry, error) {
	if points < 0 {
		return nil, shared.NewDomainError("NEGATIVE_SCORE", "Score cannot be negative")
	}
	return &Entry{
		BaseEntity: shared.NewBaseEntity(),
		Points:     points,
		AchievedAt: time.Now(),
	}, nil
}
