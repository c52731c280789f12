package ui

import (
	"context"
	"fmt"

	"github.com/angmar3019/space-defenders/internal/domain/arcade"
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

// GameOverScene shows the achieved score and records it
type GameOverScene struct {
	score      int64
	backButton *Button
}

func NewGameOverScene(app *App, score int64, cause arcade.EndCause) *GameOverScene {
	ebiten.SetWindowTitle("Game Over")
	app.Music.PlayMenu()

	if _, err := app.Runs.RecordRun(context.Background(), score, cause); err != nil {
		app.Log.Error("Failed to record run score", zap.Error(err))
	}

	return &GameOverScene{
		score:      score,
		backButton: newBackButton(app),
	}
}

func (s *GameOverScene) Update(app *App) (Scene, error) {
	app.Backdrop.Update()
	if s.backButton.Update() {
		return NewMenuScene(app), nil
	}
	return nil, nil
}

func (s *GameOverScene) Draw(app *App, screen *ebiten.Image) {
	app.Backdrop.Draw(screen)
	drawText(screen, "Game Over", app.Assets.FontBold, subHeadingSize, 100, 60)
	drawText(screen, fmt.Sprintf("Score: %d", s.score), app.Assets.FontRegular, 40, 100, 200)
	s.backButton.Draw(screen)
}
