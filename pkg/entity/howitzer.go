// pkg/entity/howitzer.go
package entity

import (
	"math"
	"math/rand/v2"

	"github.com/opd-ai/go-howitzer/pkg/physics"
)

// DefaultMuzzleVelocity is the M777 muzzle velocity in m/s.
const DefaultMuzzleVelocity = 827.0

// DefaultElevation points the barrel 45 degrees to the right.
const DefaultElevation = physics.Angle(math.Pi / 4)

// Howitzer is the gun. Its position is in meters, its elevation in radians
// clockwise from straight up.
type Howitzer struct {
	id             ID
	position       physics.Vector2D
	elevation      physics.Angle
	muzzleVelocity float64
}

// NewHowitzer creates a howitzer at the origin aimed at DefaultElevation
func NewHowitzer() *Howitzer {
	return &Howitzer{
		id:             GenerateID(),
		elevation:      DefaultElevation,
		muzzleVelocity: DefaultMuzzleVelocity,
	}
}

// GetID returns the howitzer's identifier
func (h *Howitzer) GetID() ID {
	return h.id
}

// Position returns the gun position in meters
func (h *Howitzer) Position() physics.Vector2D {
	return h.position
}

// SetPosition moves the gun
func (h *Howitzer) SetPosition(pos physics.Vector2D) {
	h.position = pos
}

// Elevation returns the barrel angle
func (h *Howitzer) Elevation() physics.Angle {
	return h.elevation
}

// SetElevation aims the barrel, wrapping into [0, 2π)
func (h *Howitzer) SetElevation(a physics.Angle) {
	h.elevation = a.Normalize()
}

// MuzzleVelocity returns the speed of a round leaving the barrel
func (h *Howitzer) MuzzleVelocity() float64 {
	return h.muzzleVelocity
}

// SetMuzzleVelocity changes the launch speed; non-positive values are ignored
func (h *Howitzer) SetMuzzleVelocity(v float64) {
	if v > 0 {
		h.muzzleVelocity = v
	}
}

// MuzzleVector returns the launch velocity for the current elevation
func (h *Howitzer) MuzzleVector() physics.Vector2D {
	return physics.FromElevation(h.elevation, h.muzzleVelocity)
}

// Rotate turns the barrel clockwise by delta radians, wrapping at 2π.
func (h *Howitzer) Rotate(delta float64) {
	h.elevation = h.elevation.Add(delta).Normalize()
}

// Raise moves the barrel toward vertical by delta radians (away from it when
// delta is negative). There is no wraparound and no clamp.
func (h *Howitzer) Raise(delta float64) {
	if h.elevation.Radians() <= math.Pi {
		h.elevation = h.elevation.Add(-delta)
	} else {
		h.elevation = h.elevation.Add(delta)
	}
}

// GeneratePosition places the gun at a random column between 10% and 90% of
// the board width, at ground level zero. upperRight is in meters.
func (h *Howitzer) GeneratePosition(upperRight physics.Vector2D, rng *rand.Rand) {
	h.position = physics.Vector2D{
		X: upperRight.X * (0.1 + 0.8*rng.Float64()),
		Y: 0,
	}
}

// Render draws the gun
func (h *Howitzer) Render(r Renderer) {
	r.RenderHowitzer(h)
}
