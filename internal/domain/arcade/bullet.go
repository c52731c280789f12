package arcade

// Bullet is a projectile fired by the ship, travelling right
type Bullet struct {
	Rect Rect
}

// NewBullet spawns a bullet at the muzzle offset of a ship positioned at (x, y)
func NewBullet(x, y float64) *Bullet {
	return &Bullet{
		Rect: NewRect(x+140, y+30, BulletWidth, BulletHeight),
	}
}

// Move advances the bullet one tick to the right
func (b *Bullet) Move(speed float64) {
	b.Rect.X += speed
}

// Offscreen reports whether the bullet has left the play field past the
// right reap margin
func (b *Bullet) Offscreen(width float64) bool {
	return b.Rect.X+b.Rect.W >= width+reapMargin
}
