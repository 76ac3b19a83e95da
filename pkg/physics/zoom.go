package physics

// DefaultMetersPerPixel is the board scale used when none is configured.
const DefaultMetersPerPixel = 40.0

// Zoom converts between world meters and screen pixels. It is passed to
// whatever needs the conversion instead of living in shared state.
type Zoom struct {
	MetersPerPixel float64
}

// NewZoom returns a Zoom, falling back to DefaultMetersPerPixel for
// non-positive scales.
func NewZoom(metersPerPixel float64) Zoom {
	if metersPerPixel <= 0 {
		metersPerPixel = DefaultMetersPerPixel
	}
	return Zoom{MetersPerPixel: metersPerPixel}
}

// Pixels converts a meter value to pixels.
func (z Zoom) Pixels(meters float64) float64 {
	return meters / z.MetersPerPixel
}

// Meters converts a pixel value to meters.
func (z Zoom) Meters(pixels float64) float64 {
	return pixels * z.MetersPerPixel
}

// ToPixels converts a world position to pixel coordinates.
func (z Zoom) ToPixels(pos Vector2D) Vector2D {
	return Vector2D{X: z.Pixels(pos.X), Y: z.Pixels(pos.Y)}
}

// ToMeters converts pixel coordinates to a world position.
func (z Zoom) ToMeters(px Vector2D) Vector2D {
	return Vector2D{X: z.Meters(px.X), Y: z.Meters(px.Y)}
}
