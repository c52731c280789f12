package arcade

// Rect is an axis-aligned rectangle in world coordinates
type Rect struct {
	X float64
	Y float64
	W float64
	H float64
}

// NewRect creates a rectangle at the given position with the given size
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Intersects reports whether r and other overlap
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.X+other.W &&
		r.X+r.W > other.X &&
		r.Y < other.Y+other.H &&
		r.Y+r.H > other.Y
}

// Contains reports whether the point (x, y) lies inside r
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}
