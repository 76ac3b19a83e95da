// pkg/entity/ground.go
package entity

import (
	"iter"
	"math"
	"math/rand/v2"

	"github.com/opd-ai/go-howitzer/pkg/physics"
)

// DefaultHitTolerancePixels is how close, on both axes, a round must land to
// the target to count as a hit.
const DefaultHitTolerancePixels = 10.0

const (
	minTerrainFraction = 0.05 // lowest terrain as a fraction of board height
	maxTerrainFraction = 0.45
	maxSlopeChange     = 0.6 // pixels per column per column
	maxSlope           = 2.5 // pixels per column
	flatColumns        = 3   // half-width of the pads under the gun and target
)

// Ground is the terrain: one surface elevation in meters per pixel column,
// plus a target sitting on the surface.
type Ground struct {
	id         ID
	width      int
	height     int
	zoom       physics.Zoom
	elevations []float64
	targetCol  int
}

// NewGround creates flat terrain for a board of width×height pixels
func NewGround(width, height int, zoom physics.Zoom) *Ground {
	width = max(width, 1)
	height = max(height, 1)
	return &Ground{
		id:         GenerateID(),
		width:      width,
		height:     height,
		zoom:       zoom,
		elevations: make([]float64, width),
	}
}

// GetID returns the ground's identifier
func (g *Ground) GetID() ID {
	return g.id
}

// Position returns the target position, the only point of interest on the
// terrain
func (g *Ground) Position() physics.Vector2D {
	return g.Target()
}

// Width returns the board width in pixels
func (g *Ground) Width() int {
	return g.width
}

// Height returns the board height in pixels
func (g *Ground) Height() int {
	return g.height
}

// Zoom returns the board scale
func (g *Ground) Zoom() physics.Zoom {
	return g.zoom
}

// UpperRight returns the top right corner of the board in meters
func (g *Ground) UpperRight() physics.Vector2D {
	return g.zoom.ToMeters(physics.Vector2D{X: float64(g.width), Y: float64(g.height)})
}

// Reset generates new rolling terrain and a new target at least a third of
// the board away from the howitzer, then sets the howitzer on the surface.
func (g *Ground) Reset(howitzer *Howitzer, rng *rand.Rand) {
	gunCol := g.column(howitzer.Position().X)
	g.targetCol = g.pickTargetColumn(gunCol, rng)

	low := float64(g.height) * minTerrainFraction
	high := float64(g.height) * maxTerrainFraction
	y := low + (high-low)*rng.Float64()
	slope := 0.0
	for col := range g.elevations {
		if g.onPad(col, gunCol) || g.onPad(col, g.targetCol) {
			slope = 0
		} else {
			slope += (rng.Float64()*2 - 1) * maxSlopeChange
			slope = math.Max(-maxSlope, math.Min(maxSlope, slope))
		}
		y += slope
		if y < low || y > high {
			y = math.Max(low, math.Min(high, y))
			slope = -slope
		}
		g.elevations[col] = g.zoom.Meters(y)
	}

	pos := howitzer.Position()
	pos.Y = g.elevations[gunCol]
	howitzer.SetPosition(pos)
}

// ElevationMeters returns the surface height under the horizontal coordinate
// of pos. Positions off the board use the nearest edge column.
func (g *Ground) ElevationMeters(pos physics.Vector2D) float64 {
	return g.elevations[g.column(pos.X)]
}

// Target returns the target position in meters
func (g *Ground) Target() physics.Vector2D {
	return physics.Vector2D{
		X: g.zoom.Meters(float64(g.targetCol)),
		Y: g.elevations[g.targetCol],
	}
}

// HitsTarget reports whether pos is within tolerance pixels of the target on
// both axes.
func (g *Ground) HitsTarget(pos physics.Vector2D, tolerance float64) bool {
	return physics.Hits(g.zoom.ToPixels(pos), g.zoom.ToPixels(g.Target()), tolerance)
}

// Columns yields the surface elevation in meters for each pixel column
func (g *Ground) Columns() iter.Seq2[int, float64] {
	return func(yield func(int, float64) bool) {
		for col, e := range g.elevations {
			if !yield(col, e) {
				return
			}
		}
	}
}

// Render draws the terrain and target
func (g *Ground) Render(r Renderer) {
	r.RenderGround(g)
}

func (g *Ground) column(x float64) int {
	col := int(math.Floor(g.zoom.Pixels(x)))
	return max(0, min(g.width-1, col))
}

func (g *Ground) onPad(col, center int) bool {
	return col >= center-flatColumns && col <= center+flatColumns
}

func (g *Ground) pickTargetColumn(gunCol int, rng *rand.Rand) int {
	minGap := g.width / 3
	var candidates []int
	for col := 0; col < g.width; col++ {
		if abs(col-gunCol) >= minGap {
			candidates = append(candidates, col)
		}
	}
	if len(candidates) == 0 {
		// boards narrower than three columns; use the far edge
		if gunCol < g.width/2 {
			return g.width - 1
		}
		return 0
	}
	return candidates[rng.IntN(len(candidates))]
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
