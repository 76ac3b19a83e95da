package entity

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/opd-ai/go-howitzer/pkg/physics"
)

func newTestBoard(seed uint64) (*Ground, *Howitzer, *rand.Rand) {
	rng := rand.New(rand.NewPCG(seed, seed+1))
	g := NewGround(700, 500, physics.NewZoom(40))
	h := NewHowitzer()
	h.GeneratePosition(g.UpperRight(), rng)
	g.Reset(h, rng)
	return g, h, rng
}

func TestGround_UpperRight(t *testing.T) {
	g := NewGround(700, 500, physics.NewZoom(40))
	if got := g.UpperRight(); got != (physics.Vector2D{X: 28000, Y: 20000}) {
		t.Errorf("UpperRight() = %v, want {28000 20000}", got)
	}
}

func TestGround_ResetTerrainWithinBoard(t *testing.T) {
	for seed := uint64(0); seed < 20; seed++ {
		g, _, _ := newTestBoard(seed)
		top := g.Zoom().Meters(float64(g.Height()))
		count := 0
		for col, e := range g.Columns() {
			if e < 0 || e > top {
				t.Fatalf("seed %d column %d elevation %v outside [0, %v]", seed, col, e, top)
			}
			count++
		}
		if count != g.Width() {
			t.Errorf("Columns() yielded %d, want %d", count, g.Width())
		}
	}
}

func TestGround_ResetPlacesHowitzerOnSurface(t *testing.T) {
	g, h, _ := newTestBoard(7)
	if got, want := h.Position().Y, g.ElevationMeters(h.Position()); got != want {
		t.Errorf("howitzer altitude = %v, want surface %v", got, want)
	}
}

func TestGround_TargetFarFromHowitzer(t *testing.T) {
	for seed := uint64(0); seed < 50; seed++ {
		g, h, _ := newTestBoard(seed)
		gap := math.Abs(g.Zoom().Pixels(g.Target().X - h.Position().X))
		if gap < float64(g.Width()/3)-1 {
			t.Fatalf("seed %d target %v px from howitzer, want at least a third of %d", seed, gap, g.Width())
		}
		if g.Target().Y != g.ElevationMeters(g.Target()) {
			t.Fatalf("seed %d target not on surface", seed)
		}
	}
}

func TestGround_ElevationMetersClampsToBoard(t *testing.T) {
	g, _, _ := newTestBoard(3)
	first, last := 0.0, 0.0
	for col, e := range g.Columns() {
		if col == 0 {
			first = e
		}
		last = e
	}

	tests := []struct {
		name string
		x    float64
		want float64
	}{
		{"left_of_board", -5000, first},
		{"right_of_board", 1e9, last},
		{"origin", 0, first},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := g.ElevationMeters(physics.Vector2D{X: tt.x}); got != tt.want {
				t.Errorf("ElevationMeters(%v) = %v, want %v", tt.x, got, tt.want)
			}
		})
	}
}

func TestGround_HitsTarget(t *testing.T) {
	g, _, _ := newTestBoard(11)
	target := g.Target()
	px := g.Zoom().MetersPerPixel

	tests := []struct {
		name string
		pos  physics.Vector2D
		want bool
	}{
		{"on_target", target, true},
		{"within_tolerance", target.Add(physics.Vector2D{X: 9 * px, Y: -9 * px}), true},
		{"too_far_right", target.Add(physics.Vector2D{X: 11 * px}), false},
		{"too_high", target.Add(physics.Vector2D{Y: 11 * px}), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := g.HitsTarget(tt.pos, DefaultHitTolerancePixels); got != tt.want {
				t.Errorf("HitsTarget(%v) = %v, want %v", tt.pos, got, tt.want)
			}
		})
	}
}

func TestGround_TinyBoard(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 1))
	g := NewGround(0, 0, physics.NewZoom(40))
	h := NewHowitzer()
	g.Reset(h, rng)

	if g.Width() != 1 || g.Height() != 1 {
		t.Errorf("board = %dx%d, want 1x1", g.Width(), g.Height())
	}
	_ = g.Target()
	_ = g.ElevationMeters(physics.Vector2D{X: 123})
}

func TestGround_Render(t *testing.T) {
	g, _, _ := newTestBoard(1)
	r := &MockRenderer{}
	g.Render(r)
	if len(r.GroundCalls) != 1 || r.GroundCalls[0] != g {
		t.Errorf("RenderGround calls = %v, want one call with the ground", r.GroundCalls)
	}
}
