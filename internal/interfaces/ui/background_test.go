package ui

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
)

func TestMenuBackdropCyclesFrames(t *testing.T) {
	b := &MenuBackdrop{frames: make([]*ebiten.Image, 3), ticksLeft: menuFrameTicks}

	for tick := 1; tick <= menuFrameTicks-1; tick++ {
		b.Update()
		assert.Equal(t, 0, b.frame, "frame should hold until the interval elapses")
	}

	b.Update()
	assert.Equal(t, 1, b.frame)

	for i := 0; i < 2*menuFrameTicks; i++ {
		b.Update()
	}
	assert.Equal(t, 0, b.frame, "frame index should wrap around")
}

func TestParallaxScrollSpeeds(t *testing.T) {
	p := &Parallax{width: 1280, scroll: make([]float64, 3)}

	p.Update()

	assert.Equal(t, -0.5, p.scroll[0])
	assert.Equal(t, -1.0, p.scroll[1])
	assert.Equal(t, -1.5, p.scroll[2])
}

func TestParallaxScrollWraps(t *testing.T) {
	p := &Parallax{width: 10, scroll: []float64{-9.75}}

	p.Update()

	assert.Equal(t, 0.0, p.scroll[0], "scroll should reset after a full layer width")
}
