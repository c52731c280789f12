package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/angmar3019/space-defenders/internal/domain/scoreboard"
	"github.com/angmar3019/space-defenders/internal/domain/shared"
	"gorm.io/gorm"
)

// GormScoreboardRepository implements scoreboard.Repository using GORM
type GormScoreboardRepository struct {
	db *gorm.DB
}

// NewGormScoreboardRepository creates a new GormScoreboardRepository
func NewGormScoreboardRepository(db *gorm.DB) *GormScoreboardRepository {
	return &GormScoreboardRepository{db: db}
}

// Save stores a new scoreboard entry
func (r *GormScoreboardRepository) Save(ctx context.Context, entry *scoreboard.Entry) error {
	if err := r.db.WithContext(ctx).Create(entry).Error; err != nil {
		return fmt.Errorf("failed to save scoreboard entry: %w", err)
	}
	return nil
}

// Top returns the n best entries, highest points first, ties newest first
func (r *GormScoreboardRepository) Top(ctx context.Context, n int) ([]scoreboard.Entry, error) {
	var entries []scoreboard.Entry
	err := r.db.WithContext(ctx).
		Order("points DESC").
		Order("achieved_at DESC").
		Limit(n).
		Find(&entries).Error
	if err != nil {
		return nil, mapError(err)
	}
	return entries, nil
}

// Count returns the total number of recorded entries
func (r *GormScoreboardRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&scoreboard.Entry{}).
		Count(&count).Error
	if err != nil {
		return 0, mapError(err)
	}
	return count, nil
}

// mapError translates GORM errors into domain errors
func mapError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return shared.ErrNotFound
	}
	return err
}
