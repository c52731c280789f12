package arcade

import "math/rand"

// Meteoroid flies in from the right edge of the window. Once hit it plays
// its explosion animation while drifting on, then disappears.
type Meteoroid struct {
	Rect Rect

	// Frame indexes the meteoroid sprite set: 0 is the intact sprite,
	// higher frames are the explosion animation.
	Frame int
}

// SpawnMeteoroid creates a meteoroid just past the right window edge at a
// random height inside the spawn margins
func SpawnMeteoroid(rng *rand.Rand, width, height float64) *Meteoroid {
	y := spawnMargin + rng.Float64()*(height-2*spawnMargin)
	return &Meteoroid{
		Rect: NewRect(width, y, MeteoroidWidth, MeteoroidHeight),
	}
}

// Move advances the meteoroid one tick to the left
func (m *Meteoroid) Move(speed float64) {
	m.Rect.X -= speed
}

// Exploding reports whether the meteoroid has been hit
func (m *Meteoroid) Exploding() bool {
	return m.Frame > 0
}

// Hit starts the explosion animation
func (m *Meteoroid) Hit() {
	m.Frame = 1
}

// AdvanceExplosion steps the explosion animation by one frame and reports
// whether the last frame has been shown. Intact meteoroids are unaffected.
func (m *Meteoroid) AdvanceExplosion(frameCount int) (done bool) {
	if m.Frame+1 >= frameCount {
		return true
	}
	if m.Frame > 0 {
		m.Frame++
	}
	return false
}

// Offscreen reports whether the meteoroid has left the play field past the
// left reap margin
func (m *Meteoroid) Offscreen() bool {
	return m.Rect.X <= -reapMargin+reapWallWidth
}
