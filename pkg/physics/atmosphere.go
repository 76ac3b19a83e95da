// pkg/physics/atmosphere.go
package physics

// Standard-atmosphere tables keyed by altitude in meters.
var (
	densityTable = table{
		{0, 1.2250000},
		{1000, 1.1120000},
		{2000, 1.0070000},
		{3000, 0.9093000},
		{4000, 0.8194000},
		{5000, 0.7364000},
		{6000, 0.6601000},
		{7000, 0.5900000},
		{8000, 0.5258000},
		{9000, 0.4671000},
		{10000, 0.4135000},
		{15000, 0.1948000},
		{20000, 0.0889100},
		{25000, 0.0400800},
		{30000, 0.0184100},
		{40000, 0.0039960},
		{50000, 0.0010270},
		{60000, 0.0003097},
		{70000, 0.0000828},
		{80000, 0.0000185},
	}

	speedOfSoundTable = table{
		{0, 340},
		{1000, 336},
		{2000, 332},
		{3000, 328},
		{4000, 324},
		{5000, 320},
		{6000, 316},
		{7000, 312},
		{8000, 308},
		{9000, 303},
		{10000, 299},
		{15000, 295},
		{20000, 295},
		{25000, 295},
		{30000, 305},
		{40000, 324},
		{50000, 337},
		{60000, 319},
		{70000, 289},
		{80000, 269},
	}

	gravityTable = table{
		{0, -9.807},
		{1000, -9.804},
		{2000, -9.801},
		{3000, -9.797},
		{4000, -9.794},
		{5000, -9.791},
		{6000, -9.788},
		{7000, -9.785},
		{8000, -9.782},
		{9000, -9.779},
		{10000, -9.776},
		{15000, -9.761},
		{20000, -9.745},
		{25000, -9.730},
	}
)

// AirDensity returns the air density in kg/m³ at the given altitude in meters.
// Altitudes below sea level or above the table clamp to the nearest entry.
func AirDensity(altitude float64) float64 {
	return densityTable.lookup(altitude)
}

// SpeedOfSound returns the local speed of sound in m/s at the given altitude.
func SpeedOfSound(altitude float64) float64 {
	return speedOfSoundTable.lookup(altitude)
}

// Gravity returns the gravitational acceleration in m/s² at the given
// altitude. The value is negative: it is added to vertical velocity.
func Gravity(altitude float64) float64 {
	return gravityTable.lookup(altitude)
}
