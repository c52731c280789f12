package ui

import (
	"context"
	"fmt"

	"github.com/angmar3019/space-defenders/internal/domain/scoreboard"
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

var placeLabels = [scoreboard.TopPlaces]string{"1st", "2nd", "3rd"}

// ScoreboardScene shows the three best runs
type ScoreboardScene struct {
	lines      [scoreboard.TopPlaces]string
	backButton *Button
}

func NewScoreboardScene(app *App) *ScoreboardScene {
	ebiten.SetWindowTitle("Scoreboard")

	s := &ScoreboardScene{
		backButton: newBackButton(app),
	}

	entries, err := app.Scores.TopPlaces(context.Background())
	if err != nil {
		app.Log.Error("Failed to load scoreboard", zap.Error(err))
		entries = make([]scoreboard.Entry, scoreboard.TopPlaces)
	}
	for i := range s.lines {
		s.lines[i] = fmt.Sprintf("%s Place: %d", placeLabels[i], entries[i].Points)
	}
	return s
}

func (s *ScoreboardScene) Update(app *App) (Scene, error) {
	app.Backdrop.Update()
	if s.backButton.Update() {
		return NewMenuScene(app), nil
	}
	return nil, nil
}

func (s *ScoreboardScene) Draw(app *App, screen *ebiten.Image) {
	app.Backdrop.Draw(screen)
	drawText(screen, "Scoreboard", app.Assets.FontBold, subHeadingSize, 100, 60)
	for i, line := range s.lines {
		drawText(screen, line, app.Assets.FontBold, 20, 100, float64(200+i*100))
	}
	s.backButton.Draw(screen)
}

// newBackButton places the shared "Back" button of the sub-screens
func newBackButton(app *App) *Button {
	return NewButton("Back", buttonX, 550, buttonWidth, buttonHeight,
		app.Assets.Button, app.Assets.ButtonHover, app.Assets.FontRegular)
}
