package physics

// KinematicState is one instant of a flight: where the round is, how fast
// it is moving and the simulation time in seconds. States are values; each
// integration step produces a new one.
type KinematicState struct {
	Position Vector2D
	Velocity Vector2D
	Time     float64
}

// Speed returns the magnitude of the velocity.
func (s KinematicState) Speed() float64 {
	return s.Velocity.Length()
}

// Altitude returns the vertical position.
func (s KinematicState) Altitude() float64 {
	return s.Position.Y
}
