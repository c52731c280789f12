package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// menuFrameTicks is how long each menu background frame is shown
const menuFrameTicks = 6

// parallaxBaseSpeed is the scroll speed of the slowest layer; each deeper
// layer moves half a pixel per tick faster
const parallaxBaseSpeed = 0.5

// MenuBackdrop cycles the animated menu background
type MenuBackdrop struct {
	frames    []*ebiten.Image
	frame     int
	ticksLeft int
}

func NewMenuBackdrop(frames []*ebiten.Image) *MenuBackdrop {
	return &MenuBackdrop{frames: frames, ticksLeft: menuFrameTicks}
}

func (b *MenuBackdrop) Update() {
	b.ticksLeft--
	if b.ticksLeft <= 0 {
		b.frame = (b.frame + 1) % len(b.frames)
		b.ticksLeft = menuFrameTicks
	}
}

func (b *MenuBackdrop) Draw(screen *ebiten.Image) {
	screen.DrawImage(b.frames[b.frame], &ebiten.DrawImageOptions{})
}

// Parallax scrolls stacked background layers leftwards at increasing speeds
type Parallax struct {
	layers []*ebiten.Image
	width  float64
	scroll []float64
}

func NewParallax(layers []*ebiten.Image) *Parallax {
	var width float64
	if len(layers) > 0 {
		width = float64(layers[0].Bounds().Dx())
	}
	return &Parallax{
		layers: layers,
		width:  width,
		scroll: make([]float64, len(layers)),
	}
}

func (p *Parallax) Update() {
	for i := range p.scroll {
		p.scroll[i] -= float64(i+1) * parallaxBaseSpeed
		if p.scroll[i] <= -p.width {
			p.scroll[i] = 0
		}
	}
}

func (p *Parallax) Draw(screen *ebiten.Image) {
	for i, layer := range p.layers {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(p.scroll[i], 0)
		screen.DrawImage(layer, op)

		op = &ebiten.DrawImageOptions{}
		op.GeoM.Translate(p.scroll[i]+p.width, 0)
		screen.DrawImage(layer, op)
	}
}
