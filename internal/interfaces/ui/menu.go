package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
)

const (
	headingSize    = 90
	subHeadingSize = 60

	buttonX      = 100
	buttonWidth  = 175
	buttonHeight = 55
	buttonStride = 75
)

// MenuScene is the main menu
type MenuScene struct {
	playButton       *Button
	scoreboardButton *Button
	tutorialButton   *Button
	optionsButton    *Button
	quitButton       *Button
}

func NewMenuScene(app *App) *MenuScene {
	ebiten.SetWindowTitle("Menu")
	app.Music.PlayMenu()

	s := &MenuScene{}
	buttons := []struct {
		label  string
		target **Button
	}{
		{"Play", &s.playButton},
		{"Scoreboard", &s.scoreboardButton},
		{"Tutorial", &s.tutorialButton},
		{"Options", &s.optionsButton},
		{"Quit", &s.quitButton},
	}
	for i, b := range buttons {
		y := float64(250 + i*buttonStride)
		*b.target = NewButton(b.label, buttonX, y, buttonWidth, buttonHeight,
			app.Assets.Button, app.Assets.ButtonHover, app.Assets.FontRegular)
	}
	return s
}

func (s *MenuScene) Update(app *App) (Scene, error) {
	app.Backdrop.Update()

	switch {
	case s.playButton.Update():
		return NewPlayingScene(app), nil
	case s.scoreboardButton.Update():
		return NewScoreboardScene(app), nil
	case s.tutorialButton.Update():
		return NewTutorialScene(app), nil
	case s.optionsButton.Update():
		return NewOptionsScene(app), nil
	case s.quitButton.Update():
		app.Log.Info("Game ended via quit button")
		return nil, ebiten.Termination
	}
	return nil, nil
}

func (s *MenuScene) Draw(app *App, screen *ebiten.Image) {
	app.Backdrop.Draw(screen)
	drawText(screen, "Space Defenders", app.Assets.FontBold, headingSize, 100, 60)
	for _, b := range []*Button{s.playButton, s.scoreboardButton, s.tutorialButton, s.optionsButton, s.quitButton} {
		b.Draw(screen)
	}
}
