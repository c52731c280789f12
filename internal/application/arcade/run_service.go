// Package arcade wires the pure simulation to the rest of the application:
// it builds worlds from configuration and records finished runs on the
// scoreboard.
package arcade

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/angmar3019/space-defenders/internal/domain/arcade"
	"github.com/angmar3019/space-defenders/internal/domain/scoreboard"
	"go.uber.org/zap"
)

// RunService manages the lifecycle of game runs
type RunService struct {
	scores scoreboard.Repository
	cfg    arcade.Config
	logger *zap.Logger
}

// NewRunService creates a new RunService
func NewRunService(scores scoreboard.Repository, cfg arcade.Config, logger *zap.Logger) *RunService {
	return &RunService{
		scores: scores,
		cfg:    cfg,
		logger: logger.Named("arcade"),
	}
}

// Config returns the run tunables
func (s *RunService) Config() arcade.Config {
	return s.cfg
}

// StartRun creates a fresh world for a new run
func (s *RunService) StartRun() *arcade.World {
	s.logger.Info("Run started",
		zap.Float64("meteoroid_speed", s.cfg.MeteoroidSpeed),
		zap.Int("spawn_interval_ticks", s.cfg.SpawnInterval),
	)
	return arcade.NewWorld(s.cfg, rand.New(rand.NewSource(time.Now().UnixNano())))
}

// RecordRun persists the score of a finished run on the scoreboard.
// Abandoned runs count the same as lost ones.
func (s *RunService) RecordRun(ctx context.Context, score int64, cause arcade.EndCause) (*scoreboard.Entry, error) {
	entry, err := scoreboard.NewEntry(score)
	if err != nil {
		return nil, fmt.Errorf("invalid run score: %w", err)
	}

	if err := s.scores.Save(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to record run score: %w", err)
	}

	s.logger.Info("Run over",
		zap.String("cause", string(cause)),
		zap.Int64("score", score),
	)
	return entry, nil
}
