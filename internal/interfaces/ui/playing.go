package ui

import (
	"fmt"

	"github.com/angmar3019/space-defenders/internal/domain/arcade"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Sprite images are larger than the hitboxes, so they are drawn with a
// fixed offset relative to the entity position.
const (
	shipSpriteOffsetX      = 35
	bulletSpriteOffsetX    = -56
	bulletSpriteOffsetY    = -56
	meteoroidSpriteOffsetX = -29
	meteoroidSpriteOffsetY = -32
)

// Exhaust flame positions relative to the ship. The thruster flames sit
// further left and are larger than the idle ones.
var (
	exhaustMoveOffsets  = [2][2]float64{{0, 22}, {0, 44}}
	exhaustStandOffsets = [2][2]float64{{18, 23}, {18, 45}}
)

// PlayingScene runs one game round
type PlayingScene struct {
	world    *arcade.World
	parallax *Parallax
}

func NewPlayingScene(app *App) *PlayingScene {
	ebiten.SetWindowTitle(app.Cfg.Window.Title)
	app.Music.PlayGame()

	return &PlayingScene{
		world:    app.Runs.StartRun(),
		parallax: NewParallax(app.Assets.GameBackground),
	}
}

func (s *PlayingScene) Update(app *App) (Scene, error) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.world.Abort()
	} else {
		s.world.Update(readInput())
	}
	s.parallax.Update()

	if s.world.Over() {
		return NewGameOverScene(app, s.world.Score(), s.world.Cause()), nil
	}
	return nil, nil
}

// readInput samples the movement and fire keys
func readInput() arcade.Input {
	return arcade.Input{
		Up:    ebiten.IsKeyPressed(ebiten.KeyW),
		Down:  ebiten.IsKeyPressed(ebiten.KeyS),
		Left:  ebiten.IsKeyPressed(ebiten.KeyA),
		Right: ebiten.IsKeyPressed(ebiten.KeyD),
		Shoot: ebiten.IsKeyPressed(ebiten.KeySpace),
	}
}

func (s *PlayingScene) Draw(app *App, screen *ebiten.Image) {
	s.parallax.Draw(screen)
	s.drawShip(app, screen)

	for _, b := range s.world.Bullets() {
		drawAt(screen, app.Assets.Bullet[0], b.Rect.X+bulletSpriteOffsetX, b.Rect.Y+bulletSpriteOffsetY)
	}
	for _, m := range s.world.Meteoroids() {
		drawAt(screen, app.Assets.Meteoroid[0], m.Rect.X+meteoroidSpriteOffsetX, m.Rect.Y+meteoroidSpriteOffsetY)
	}
	for _, m := range s.world.Exploding() {
		drawAt(screen, app.Assets.Meteoroid[m.Frame], m.Rect.X+meteoroidSpriteOffsetX, m.Rect.Y+meteoroidSpriteOffsetY)
	}

	drawText(screen, fmt.Sprintf("Score: %d", s.world.Score()), app.Assets.FontRegular, 20, 3, 0)
}

func (s *PlayingScene) drawShip(app *App, screen *ebiten.Image) {
	ship := s.world.Ship()
	frame := ship.ExhaustFrame()

	if ship.Thrusting {
		for _, off := range exhaustMoveOffsets {
			drawAt(screen, app.Assets.ExhaustMove[frame], ship.Rect.X+off[0], ship.Rect.Y+off[1])
		}
	} else {
		for _, off := range exhaustStandOffsets {
			drawAt(screen, app.Assets.ExhaustStand[frame], ship.Rect.X+off[0], ship.Rect.Y+off[1])
		}
	}

	drawAt(screen, app.Assets.Ship[0], ship.Rect.X+shipSpriteOffsetX, ship.Rect.Y)
}

func drawAt(screen, img *ebiten.Image, x, y float64) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x, y)
	screen.DrawImage(img, op)
}
