package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// drawText renders s in white with its top-left corner at (x, y)
func drawText(screen *ebiten.Image, s string, src *text.GoTextFaceSource, size, x, y float64) {
	face := &text.GoTextFace{Source: src, Size: size}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(color.White)
	text.Draw(screen, s, face, op)
}

// measureText returns the rendered size of a single line of s
func measureText(s string, src *text.GoTextFaceSource, size float64) (float64, float64) {
	face := &text.GoTextFace{Source: src, Size: size}
	return text.Measure(s, face, face.Size)
}
