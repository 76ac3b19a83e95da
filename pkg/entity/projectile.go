// pkg/entity/projectile.go
package entity

import (
	"iter"

	"github.com/opd-ai/go-howitzer/pkg/flight"
	"github.com/opd-ai/go-howitzer/pkg/physics"
)

// Defaults for an M795 155mm round.
const (
	DefaultProjectileMass   = 46.7     // kg
	DefaultProjectileRadius = 0.077545 // m
)

// Projectile is a round in flight. It is grounded while its flight path is
// empty and flying once fired.
type Projectile struct {
	id     ID
	mass   float64
	radius float64
	path   *flight.Path
}

// NewProjectile creates a grounded projectile whose flight path keeps at most
// historyCap states (0 keeps them all).
func NewProjectile(historyCap int) *Projectile {
	return &Projectile{
		id:     GenerateID(),
		mass:   DefaultProjectileMass,
		radius: DefaultProjectileRadius,
		path:   flight.NewPath(historyCap),
	}
}

// GetID returns the projectile's identifier
func (p *Projectile) GetID() ID {
	return p.id
}

// Mass returns the projectile mass in kilograms
func (p *Projectile) Mass() float64 {
	return p.mass
}

// Radius returns the projectile radius in meters
func (p *Projectile) Radius() float64 {
	return p.radius
}

// SetMass overrides the mass until the next Reset
func (p *Projectile) SetMass(mass float64) {
	p.mass = mass
}

// SetRadius overrides the radius until the next Reset
func (p *Projectile) SetRadius(radius float64) {
	p.radius = radius
}

// Fire launches the projectile from pos at the given simulation time. A
// negative angle mirrors the launch horizontally. Firing a projectile that
// is already flying starts a new flight. Fire clears the history only: a
// SetMass or SetRadius override stays in effect until Reset.
func (p *Projectile) Fire(pos physics.Vector2D, time float64, angle physics.Angle, velocity physics.Vector2D) {
	p.path.Clear()
	if angle < 0 {
		velocity = velocity.MirrorX()
	}
	p.path.Append(physics.KinematicState{
		Position: pos,
		Velocity: velocity,
		Time:     time,
	})
}

// Advance moves the projectile forward by timeStep seconds. It does nothing
// while grounded.
func (p *Projectile) Advance(timeStep float64) {
	last, ok := p.path.Last()
	if !ok {
		return
	}
	p.path.Append(physics.Advance(last, timeStep, p.mass, p.radius))
}

// Reset grounds the projectile and restores the default mass and radius.
func (p *Projectile) Reset() {
	p.path.Clear()
	p.mass = DefaultProjectileMass
	p.radius = DefaultProjectileRadius
}

// IsFlying reports whether the projectile has been fired and not reset
func (p *Projectile) IsFlying() bool {
	return !p.path.Empty()
}

// Last returns the newest kinematic state
func (p *Projectile) Last() (physics.KinematicState, bool) {
	return p.path.Last()
}

// History returns a snapshot of the flight path, oldest first
func (p *Projectile) History() []physics.KinematicState {
	return p.path.States()
}

// Path yields the position of every retained state, oldest first
func (p *Projectile) Path() iter.Seq[physics.Vector2D] {
	return p.path.Positions()
}

// Position returns the current position, or the origin while grounded
func (p *Projectile) Position() physics.Vector2D {
	last, _ := p.path.Last()
	return last.Position
}

// Altitude returns the current height in meters
func (p *Projectile) Altitude() float64 {
	return p.Position().Y
}

// FlightDistance returns the current horizontal coordinate in meters
func (p *Projectile) FlightDistance() float64 {
	return p.Position().X
}

// Speed returns the current speed in meters per second
func (p *Projectile) Speed() float64 {
	last, _ := p.path.Last()
	return last.Speed()
}

// CurrentTime returns the simulation time of the newest state
func (p *Projectile) CurrentTime() float64 {
	last, _ := p.path.Last()
	return last.Time
}

// FlightDuration returns the time spanned by the retained states
func (p *Projectile) FlightDuration() float64 {
	if p.path.Len() < 2 {
		return 0
	}
	first, _ := p.path.First()
	last, _ := p.path.Last()
	return last.Time - first.Time
}

// Render draws the trail, newest point with age 0.
func (p *Projectile) Render(r Renderer) {
	n := p.path.Len()
	for i, s := range p.path.All() {
		r.RenderProjectile(s.Position, n-1-i)
	}
}
