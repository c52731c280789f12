package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
)

var tutorialLines = []struct {
	text string
	y    float64
}{
	{"Destroy as many meteroids as possible and try to survive as possible.", 250},
	{"The more you destroy meteroids and the longer you survive, the more", 270},
	{"points you get. Have fun!", 290},
	{"W - Up                                  Spacebar - Shoot", 400},
	{"S - Down", 420},
	{"A - Left                                ESC - Exit to menu", 440},
	{"D - Right", 460},
}

// TutorialScene explains the goal and the controls
type TutorialScene struct {
	backButton *Button
}

func NewTutorialScene(app *App) *TutorialScene {
	ebiten.SetWindowTitle("Tutorial")
	return &TutorialScene{backButton: newBackButton(app)}
}

func (s *TutorialScene) Update(app *App) (Scene, error) {
	app.Backdrop.Update()
	if s.backButton.Update() {
		return NewMenuScene(app), nil
	}
	return nil, nil
}

func (s *TutorialScene) Draw(app *App, screen *ebiten.Image) {
	app.Backdrop.Draw(screen)
	drawText(screen, "Tutorial", app.Assets.FontBold, subHeadingSize, 100, 60)
	for _, line := range tutorialLines {
		drawText(screen, line.text, app.Assets.FontBold, 20, 100, line.y)
	}
	s.backButton.Draw(screen)
}
