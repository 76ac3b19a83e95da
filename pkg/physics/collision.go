// pkg/physics/collision.go
package physics

// Rect represents an axis-aligned rectangular area
type Rect struct {
	Center Vector2D
	Width  float64
	Height float64
}

// Contains reports whether point lies inside the rectangle (edges included).
func (r Rect) Contains(point Vector2D) bool {
	return point.X >= r.Center.X-r.Width/2 &&
		point.X <= r.Center.X+r.Width/2 &&
		point.Y >= r.Center.Y-r.Height/2 &&
		point.Y <= r.Center.Y+r.Height/2
}

// HitBox returns a square centered on center extending tolerance in each
// direction along both axes.
func HitBox(center Vector2D, tolerance float64) Rect {
	return Rect{Center: center, Width: 2 * tolerance, Height: 2 * tolerance}
}

// Hits reports whether a projectile at pos (pixels) is within tolerance
// pixels of target on both axes.
func Hits(pos, target Vector2D, tolerance float64) bool {
	return HitBox(target, tolerance).Contains(pos)
}
