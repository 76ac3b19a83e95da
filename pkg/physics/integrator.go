package physics

// DragComponents resolves a drag deceleration magnitude into horizontal and
// vertical parts for the given velocity. The horizontal part carries its own
// sign (opposing motion); the vertical part has the sign of the vertical
// velocity and is subtracted from gravity by the caller. A resting round has
// no drag.
func DragComponents(velocity Vector2D, deceleration float64) (horizontal, vertical float64) {
	speed := velocity.Length()
	if speed == 0 {
		return 0, 0
	}
	horizontal = -deceleration * (velocity.X / speed)
	vertical = deceleration * (velocity.Y / speed)
	return horizontal, vertical
}

// Advance integrates one step of flight under altitude-dependent gravity
// and drag for a round of the given mass (kg) and radius (m). Accelerations
// are sampled once at the current state; positions move with the old
// velocity plus the half-step acceleration term before velocity is updated.
func Advance(current KinematicState, timeStep, mass, radius float64) KinematicState {
	altitude := current.Position.Y
	speed := current.Velocity.Length()

	coefficient := DragCoefficient(MachNumber(speed, altitude))
	force := DragForce(AirDensity(altitude), coefficient, radius, speed)
	dragH, dragV := DragComponents(current.Velocity, DragDeceleration(force, mass))

	g := Gravity(altitude)
	ax := dragH
	ay := g - dragV

	next := KinematicState{Time: current.Time + timeStep}
	next.Position.X = current.Position.X + current.Velocity.X*timeStep + 0.5*ax*timeStep*timeStep
	next.Position.Y = current.Position.Y + current.Velocity.Y*timeStep + 0.5*ay*timeStep*timeStep
	next.Velocity.X = current.Velocity.X + ax*timeStep
	next.Velocity.Y = current.Velocity.Y + ay*timeStep
	return next
}
