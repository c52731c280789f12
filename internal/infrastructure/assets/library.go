package assets

import (
	"bytes"
	"fmt"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	text "github.com/hajimehoshi/ebiten/v2/text/v2"
	"go.uber.org/zap"
)

// Sprite target sizes. Sprites are scaled once at load time, never per
// frame.
const (
	shipW, shipH                 = 118, 75
	exhaustMoveW, exhaustMoveH   = 38, 8
	exhaustStandW, exhaustStandH = 20, 6
	bulletW, bulletH             = 128, 128
	meteoroidW, meteoroidH       = 96, 96
)

// Library holds every loaded asset the game needs
type Library struct {
	FontRegular *text.GoTextFaceSource
	FontBold    *text.GoTextFaceSource

	// MenuBackground frames cycle on menu screens; GameBackground holds
	// the parallax layers, slowest first.
	MenuBackground []*ebiten.Image
	GameBackground []*ebiten.Image

	Ship         []*ebiten.Image
	ExhaustMove  []*ebiten.Image
	ExhaustStand []*ebiten.Image
	Bullet       []*ebiten.Image
	// Meteoroid frame 0 is the intact sprite, the rest is the explosion
	Meteoroid []*ebiten.Image

	Button      *ebiten.Image
	ButtonHover *ebiten.Image
	Mute        *ebiten.Image
	Unmute      *ebiten.Image

	MenuMusic []byte
	GameMusic []byte
}

// Load reads all assets from dir. Backgrounds are scaled to the window size.
func Load(dir string, windowW, windowH int, logger *zap.Logger) (*Library, error) {
	log := logger.Named("assets")
	lib := &Library{}

	var err error
	if lib.FontRegular, err = loadFont(filepath.Join(dir, "fonts", "silkscreen-regular.ttf"), log); err != nil {
		return nil, err
	}
	if lib.FontBold, err = loadFont(filepath.Join(dir, "fonts", "silkscreen-bold.ttf"), log); err != nil {
		return nil, err
	}

	if lib.MenuBackground, err = loadImageList(filepath.Join(dir, "menu", "background"), windowW, windowH, log); err != nil {
		return nil, err
	}
	if lib.GameBackground, err = loadImageList(filepath.Join(dir, "game", "background"), windowW, windowH, log); err != nil {
		return nil, err
	}
	if lib.Ship, err = loadImageList(filepath.Join(dir, "game", "ship", "ship"), shipW, shipH, log); err != nil {
		return nil, err
	}
	if lib.ExhaustMove, err = loadImageList(filepath.Join(dir, "game", "ship", "exhaust", "move"), exhaustMoveW, exhaustMoveH, log); err != nil {
		return nil, err
	}
	if lib.ExhaustStand, err = loadImageList(filepath.Join(dir, "game", "ship", "exhaust", "stand"), exhaustStandW, exhaustStandH, log); err != nil {
		return nil, err
	}
	if lib.Bullet, err = loadImageList(filepath.Join(dir, "game", "ship", "shots"), bulletW, bulletH, log); err != nil {
		return nil, err
	}
	if lib.Meteoroid, err = loadImageList(filepath.Join(dir, "game", "meteoroid"), meteoroidW, meteoroidH, log); err != nil {
		return nil, err
	}

	if lib.Button, err = loadImage(filepath.Join(dir, "menu", "buttons", "button.png"), log); err != nil {
		return nil, err
	}
	if lib.ButtonHover, err = loadImage(filepath.Join(dir, "menu", "buttons", "button_hover.png"), log); err != nil {
		return nil, err
	}
	if lib.Mute, err = loadImage(filepath.Join(dir, "menu", "buttons", "mute.png"), log); err != nil {
		return nil, err
	}
	if lib.Unmute, err = loadImage(filepath.Join(dir, "menu", "buttons", "unmute.png"), log); err != nil {
		return nil, err
	}

	if lib.MenuMusic, err = readAsset(filepath.Join(dir, "music", "menu.mp3")); err != nil {
		return nil, err
	}
	log.Info("Music loaded", zap.String("path", filepath.Join(dir, "music", "menu.mp3")))
	if lib.GameMusic, err = readAsset(filepath.Join(dir, "music", "game.mp3")); err != nil {
		return nil, err
	}
	log.Info("Music loaded", zap.String("path", filepath.Join(dir, "music", "game.mp3")))

	if len(lib.Meteoroid) < 2 {
		return nil, fmt.Errorf("meteoroid sprite set needs an intact frame and at least one explosion frame, got %d", len(lib.Meteoroid))
	}

	return lib, nil
}

// ExplosionFrames returns the length of the meteoroid animation
func (l *Library) ExplosionFrames() int {
	return len(l.Meteoroid)
}

// loadImageList loads every image of a directory in order, scaled to w x h
func loadImageList(dir string, w, h int, log *zap.Logger) ([]*ebiten.Image, error) {
	paths, err := listImagePaths(dir)
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("asset directory %s is empty", dir)
	}

	images := make([]*ebiten.Image, 0, len(paths))
	for _, path := range paths {
		img, err := decodeImage(path)
		if err != nil {
			return nil, err
		}
		images = append(images, scaleImage(ebiten.NewImageFromImage(img), w, h))
		log.Info("Image loaded", zap.String("path", path))
	}
	return images, nil
}

// loadImage loads a single image at its native size
func loadImage(path string, log *zap.Logger) (*ebiten.Image, error) {
	img, err := decodeImage(path)
	if err != nil {
		return nil, err
	}
	log.Info("Image loaded", zap.String("path", path))
	return ebiten.NewImageFromImage(img), nil
}

// loadFont parses a TTF file into a face source
func loadFont(path string, log *zap.Logger) (*text.GoTextFaceSource, error) {
	data, err := readAsset(path)
	if err != nil {
		return nil, err
	}
	source, err := text.NewGoTextFaceSource(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse font %s: %w", path, err)
	}
	log.Info("Font loaded", zap.String("path", path))
	return source, nil
}

// scaleImage draws src into a fresh w x h image
func scaleImage(src *ebiten.Image, w, h int) *ebiten.Image {
	bounds := src.Bounds()
	if bounds.Dx() == w && bounds.Dy() == h {
		return src
	}

	dst := ebiten.NewImage(w, h)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(w)/float64(bounds.Dx()), float64(h)/float64(bounds.Dy()))
	dst.DrawImage(src, op)
	return dst
}
