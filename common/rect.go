package common

// Rect is an axis-aligned rectangle in world pixels, anchored at its top-left.
type Rect struct {
	X, Y          float32
	Width, Height float32
}

// Intersects reports whether r and other overlap. Edges that merely touch do
// not count as an overlap (half-open test).
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.X+other.Width &&
		r.X+r.Width > other.X &&
		r.Y < other.Y+other.Height &&
		r.Y+r.Height > other.Y
}
