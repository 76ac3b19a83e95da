// pkg/physics/drag.go
package physics

import "math"

// dragTable maps Mach number to the drag coefficient of an M795 round.
var dragTable = table{
	{0.300, 0.1629},
	{0.500, 0.1659},
	{0.700, 0.2031},
	{0.890, 0.2597},
	{0.920, 0.3010},
	{0.960, 0.3287},
	{0.980, 0.4002},
	{1.000, 0.4258},
	{1.020, 0.4335},
	{1.060, 0.4483},
	{1.240, 0.4064},
	{1.530, 0.3663},
	{1.990, 0.2897},
	{2.870, 0.2297},
	{2.890, 0.2306},
	{5.000, 0.2656},
}

// DragCoefficient returns the dimensionless drag coefficient for a Mach
// number. Subsonic speeds below the table (including a resting round) use
// the first entry.
func DragCoefficient(mach float64) float64 {
	return dragTable.lookup(mach)
}

// MachNumber returns speed as a fraction of the speed of sound at altitude.
func MachNumber(speed, altitude float64) float64 {
	sound := SpeedOfSound(altitude)
	if sound <= 0 {
		return 0
	}
	return speed / sound
}

// CrossSectionArea returns the frontal area in m² of a round of the given radius.
func CrossSectionArea(radius float64) float64 {
	return math.Pi * radius * radius
}

// DragForce returns the drag force in newtons:
//
//	F = ½ ρ c A v²
func DragForce(density, coefficient, radius, speed float64) float64 {
	return 0.5 * density * coefficient * CrossSectionArea(radius) * speed * speed
}

// DragDeceleration converts a drag force into deceleration for a mass in kg.
func DragDeceleration(force, mass float64) float64 {
	if mass <= 0 {
		return 0
	}
	return force / mass
}
