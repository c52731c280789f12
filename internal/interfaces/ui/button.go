package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

const buttonLabelSize = 20

// Button is a clickable labelled image. The base image is swapped for the
// hover image while the cursor is over it.
type Button struct {
	label      string
	x, y, w, h float64
	image      *ebiten.Image
	hoverImage *ebiten.Image
	font       *text.GoTextFaceSource
	hovered    bool
}

// NewButton places a w by h button with its top-left corner at (x, y)
func NewButton(label string, x, y, w, h float64, image, hoverImage *ebiten.Image, font *text.GoTextFaceSource) *Button {
	return &Button{
		label:      label,
		x:          x,
		y:          y,
		w:          w,
		h:          h,
		image:      image,
		hoverImage: hoverImage,
		font:       font,
	}
}

// contains reports whether the point (cx, cy) lies inside the button
func (b *Button) contains(cx, cy int) bool {
	fx, fy := float64(cx), float64(cy)
	return fx >= b.x && fx < b.x+b.w && fy >= b.y && fy < b.y+b.h
}

// Update tracks the cursor and reports whether the button was clicked this tick
func (b *Button) Update() bool {
	cx, cy := ebiten.CursorPosition()
	b.hovered = b.contains(cx, cy)
	return b.hovered && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
}

func (b *Button) Draw(screen *ebiten.Image) {
	img := b.image
	if b.hovered && b.hoverImage != nil {
		img = b.hoverImage
	}

	bounds := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(b.w/float64(bounds.Dx()), b.h/float64(bounds.Dy()))
	op.GeoM.Translate(b.x, b.y)
	screen.DrawImage(img, op)

	if b.label != "" {
		tw, th := measureText(b.label, b.font, buttonLabelSize)
		drawText(screen, b.label, b.font, buttonLabelSize, b.x+(b.w-tw)/2, b.y+(b.h-th)/2)
	}
}
