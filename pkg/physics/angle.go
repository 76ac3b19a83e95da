package physics

import "math"

// Angle is a direction in radians measured clockwise from straight up.
// Values outside [0, 2π) are kept as-is until Normalize is called, so
// launch code can tell a negative (leftward) angle from its wrapped twin.
type Angle float64

// Common launcher directions
const (
	Up    Angle = 0
	Right Angle = math.Pi / 2
	Down  Angle = math.Pi
	Left  Angle = math.Pi + math.Pi/2
)

// FromDegrees converts degrees to an Angle.
func FromDegrees(degrees float64) Angle {
	return Angle(2 * math.Pi * (degrees / 360))
}

// Radians returns the raw radian value.
func (a Angle) Radians() float64 {
	return float64(a)
}

// Degrees returns the raw value in degrees.
func (a Angle) Degrees() float64 {
	return float64(a) / (2 * math.Pi) * 360
}

// Normalize wraps the angle into [0, 2π).
func (a Angle) Normalize() Angle {
	r := math.Mod(float64(a), 2*math.Pi)
	if r < 0 {
		r += 2 * math.Pi
	}
	if r >= 2*math.Pi {
		r = 0
	}
	return Angle(r)
}

// DisplayDegrees returns the angle in degrees normalized to [-180, 180),
// so leftward aims read as negative.
func (a Angle) DisplayDegrees() float64 {
	d := a.Normalize().Degrees()
	if d >= 180 {
		d -= 360
	}
	return d
}

// Dx is the horizontal component of a unit vector along the angle.
func (a Angle) Dx() float64 {
	return math.Sin(float64(a))
}

// Dy is the vertical component of a unit vector along the angle.
func (a Angle) Dy() float64 {
	return math.Cos(float64(a))
}

// IsRight reports whether the angle aims into the upper-right quadrant.
func (a Angle) IsRight() bool {
	r := float64(a)
	return r > 0 && r <= math.Pi/2
}

// IsLeft reports whether the angle aims into the upper-left quadrant.
func (a Angle) IsLeft() bool {
	r := float64(a)
	return r >= math.Pi+math.Pi/2 && r < 2*math.Pi
}

// Add returns the angle offset by delta radians without wrapping.
func (a Angle) Add(delta float64) Angle {
	return a + Angle(delta)
}
