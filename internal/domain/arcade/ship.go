package arcade

// Ship is the player vessel. It moves inside the window and tracks its
// exhaust animation state.
type Ship struct {
	Rect Rect

	// Thrusting is true while the ship moves horizontally; the exhaust is
	// drawn with the larger "move" frame set then.
	Thrusting bool

	moveFrame  int
	standFrame int
}

// NewShip places the ship at the left side of the window with its hitbox
// top on the vertical center line
func NewShip(width, height float64) *Ship {
	return &Ship{
		Rect: NewRect(100, height/2, ShipWidth, ShipHeight),
	}
}

// Move applies one tick of movement for the held directions.
//
// Each direction checks the pre-move position against its bound and then
// moves, so the ship can overshoot an edge by one step and stays
// recoverable from the overshoot.
func (s *Ship) Move(in Input, speed, width, height float64) {
	s.Thrusting = in.Left || in.Right

	if in.Left && s.Rect.X >= 0 {
		s.Rect.X -= speed
	}
	if in.Right && s.Rect.X <= width-moveBoundMargin {
		s.Rect.X += speed
	}
	if in.Up && s.Rect.Y >= 0 {
		s.Rect.Y -= speed
	}
	if in.Down && s.Rect.Y <= height-moveBoundMargin {
		s.Rect.Y += speed
	}
}

// AdvanceAnimation steps the exhaust animation by one frame
func (s *Ship) AdvanceAnimation() {
	if s.Thrusting {
		s.moveFrame = (s.moveFrame + 1) % ExhaustFrames
	} else {
		s.standFrame = (s.standFrame + 1) % ExhaustFrames
	}
}

// ExhaustFrame returns the current frame index of the active exhaust set
func (s *Ship) ExhaustFrame() int {
	if s.Thrusting {
		return s.moveFrame
	}
	return s.standFrame
}

// Shoot spawns a bullet at the front of the ship
func (s *Ship) Shoot() *Bullet {
	return NewBullet(s.Rect.X, s.Rect.Y)
}
