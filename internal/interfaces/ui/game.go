package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene is one screen of the game. Update returns the scene that should run
// on the next tick; returning nil keeps the current scene.
type Scene interface {
	Update(app *App) (Scene, error)
	Draw(app *App, screen *ebiten.Image)
}

// Game drives the active scene. It implements ebiten.Game.
type Game struct {
	app   *App
	scene Scene
}

// NewGame starts at the main menu
func NewGame(app *App) *Game {
	return &Game{
		app:   app,
		scene: NewMenuScene(app),
	}
}

func (g *Game) Update() error {
	g.app.Music.Update()

	next, err := g.scene.Update(g.app)
	if err != nil {
		return err
	}
	if next != nil {
		g.scene = next
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(g.app, screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.app.Cfg.Window.Width, g.app.Cfg.Window.Height
}
