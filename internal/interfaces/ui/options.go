package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	muteIconX    = 230
	muteIconY    = 190
	muteIconSize = 50
)

// OptionsScene toggles the music
type OptionsScene struct {
	backButton *Button
}

func NewOptionsScene(app *App) *OptionsScene {
	ebiten.SetWindowTitle("Options")
	return &OptionsScene{backButton: newBackButton(app)}
}

func (s *OptionsScene) Update(app *App) (Scene, error) {
	app.Backdrop.Update()
	if s.backButton.Update() {
		return NewMenuScene(app), nil
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		cx, cy := ebiten.CursorPosition()
		if overMuteIcon(cx, cy) {
			app.Music.ToggleMute()
		}
	}
	return nil, nil
}

func overMuteIcon(cx, cy int) bool {
	return cx >= muteIconX && cx < muteIconX+muteIconSize &&
		cy >= muteIconY && cy < muteIconY+muteIconSize
}

func (s *OptionsScene) Draw(app *App, screen *ebiten.Image) {
	app.Backdrop.Draw(screen)
	drawText(screen, "Options", app.Assets.FontBold, subHeadingSize, 100, 60)
	drawText(screen, "Music:", app.Assets.FontBold, 20, 100, 200)

	icon := app.Assets.Unmute
	if app.Music.Muted() {
		icon = app.Assets.Mute
	}
	bounds := icon.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(muteIconSize/float64(bounds.Dx()), muteIconSize/float64(bounds.Dy()))
	op.GeoM.Translate(muteIconX, muteIconY)
	screen.DrawImage(icon, op)

	s.backButton.Draw(screen)
}
