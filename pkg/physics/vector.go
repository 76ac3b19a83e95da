// pkg/physics/vector.go
package physics

import "math"

// Vector2D is a 2D vector with a horizontal (X) and vertical (Y) component.
// Positions are in meters and velocities in meters/second; Y grows upward.
type Vector2D struct {
	X float64
	Y float64
}

// Add returns the sum of two vectors
func (v Vector2D) Add(other Vector2D) Vector2D {
	return Vector2D{
		X: v.X + other.X,
		Y: v.Y + other.Y,
	}
}

// Sub returns the difference between two vectors
func (v Vector2D) Sub(other Vector2D) Vector2D {
	return Vector2D{
		X: v.X - other.X,
		Y: v.Y - other.Y,
	}
}

// Scale multiplies the vector by a scalar value
func (v Vector2D) Scale(factor float64) Vector2D {
	return Vector2D{
		X: v.X * factor,
		Y: v.Y * factor,
	}
}

// Length returns the magnitude of the vector
func (v Vector2D) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Distance returns the distance between two vectors
func (v Vector2D) Distance(other Vector2D) float64 {
	return v.Sub(other).Length()
}

// MirrorX returns the vector reflected across the vertical axis.
func (v Vector2D) MirrorX() Vector2D {
	return Vector2D{X: -v.X, Y: v.Y}
}

// FromElevation builds a vector of the given magnitude pointing along a
// launcher elevation, where 0 is straight up and π/2 is level to the right.
func FromElevation(a Angle, magnitude float64) Vector2D {
	return Vector2D{
		X: magnitude * a.Dx(),
		Y: magnitude * a.Dy(),
	}
}
