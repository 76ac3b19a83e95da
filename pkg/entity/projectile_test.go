// pkg/entity/projectile_test.go
package entity

import (
	"math"
	"testing"

	"github.com/opd-ai/go-howitzer/pkg/flight"
	"github.com/opd-ai/go-howitzer/pkg/physics"
)

const tolerance = 0.001

func near(a, b float64) bool {
	return math.Abs(a-b) <= tolerance
}

func TestNewProjectile_Grounded(t *testing.T) {
	p := NewProjectile(flight.DefaultCapacity)

	if p.IsFlying() {
		t.Error("IsFlying() = true for new projectile")
	}
	if p.Mass() != DefaultProjectileMass {
		t.Errorf("Mass() = %v, want %v", p.Mass(), DefaultProjectileMass)
	}
	if p.Radius() != DefaultProjectileRadius {
		t.Errorf("Radius() = %v, want %v", p.Radius(), DefaultProjectileRadius)
	}
	if _, ok := p.Last(); ok {
		t.Error("Last() ok on grounded projectile")
	}
}

func TestProjectile_GroundedQueriesAreZero(t *testing.T) {
	p := NewProjectile(flight.DefaultCapacity)

	tests := []struct {
		name string
		got  float64
	}{
		{"Altitude", p.Altitude()},
		{"FlightDistance", p.FlightDistance()},
		{"Speed", p.Speed()},
		{"CurrentTime", p.CurrentTime()},
		{"FlightDuration", p.FlightDuration()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != 0 {
				t.Errorf("%s() = %v, want 0", tt.name, tt.got)
			}
		})
	}
	if p.Position() != (physics.Vector2D{}) {
		t.Errorf("Position() = %v, want origin", p.Position())
	}
}

func TestProjectile_Fire(t *testing.T) {
	tests := []struct {
		name  string
		angle physics.Angle
		wantX float64
	}{
		{"right", physics.FromDegrees(90), 100},
		{"negative_angle_mirrors", physics.FromDegrees(-90), -100},
		{"straight_up", physics.Up, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewProjectile(flight.DefaultCapacity)
			p.Fire(physics.Vector2D{X: 111, Y: 222}, 1.0, tt.angle, physics.Vector2D{X: 100, Y: 0})

			if !p.IsFlying() {
				t.Fatal("IsFlying() = false after Fire")
			}
			last, ok := p.Last()
			if !ok {
				t.Fatal("Last() not ok after Fire")
			}
			if last.Position != (physics.Vector2D{X: 111, Y: 222}) {
				t.Errorf("position = %v, want {111 222}", last.Position)
			}
			if last.Velocity.X != tt.wantX || last.Velocity.Y != 0 {
				t.Errorf("velocity = %v, want {%v 0}", last.Velocity, tt.wantX)
			}
			if last.Time != 1.0 {
				t.Errorf("time = %v, want 1", last.Time)
			}
			if len(p.History()) != 1 {
				t.Errorf("History() len = %d, want 1", len(p.History()))
			}
		})
	}
}

func TestProjectile_FireRestartsFlight(t *testing.T) {
	p := NewProjectile(flight.DefaultCapacity)
	p.SetMass(20)
	p.Fire(physics.Vector2D{}, 0, physics.Up, physics.Vector2D{Y: 100})
	for i := 0; i < 5; i++ {
		p.Advance(1)
	}

	p.Fire(physics.Vector2D{X: 5}, 50, physics.Up, physics.Vector2D{Y: 10})

	if got := len(p.History()); got != 1 {
		t.Errorf("History() len after refire = %d, want 1", got)
	}
	if p.CurrentTime() != 50 {
		t.Errorf("CurrentTime() = %v, want 50", p.CurrentTime())
	}
	if p.Mass() != 20 {
		t.Errorf("Mass() = %v, want override 20 kept across refire", p.Mass())
	}
}

func TestProjectile_AdvanceWhileGroundedIsNoop(t *testing.T) {
	p := NewProjectile(flight.DefaultCapacity)
	p.Advance(1)
	p.Advance(0.5)

	if p.IsFlying() {
		t.Error("Advance() on grounded projectile started a flight")
	}
}

func TestProjectile_Advance(t *testing.T) {
	p := NewProjectile(flight.DefaultCapacity)
	p.Fire(physics.Vector2D{X: 100, Y: 200}, 100, physics.Right, physics.Vector2D{X: 50})
	p.Advance(1)

	last, _ := p.Last()
	want := physics.Advance(physics.KinematicState{
		Position: physics.Vector2D{X: 100, Y: 200},
		Velocity: physics.Vector2D{X: 50},
		Time:     100,
	}, 1, DefaultProjectileMass, DefaultProjectileRadius)

	if last != want {
		t.Errorf("state after Advance = %v, want %v", last, want)
	}
	if !near(p.FlightDistance(), 149.9505) {
		t.Errorf("FlightDistance() = %v, want 149.9505", p.FlightDistance())
	}
	if !near(p.Altitude(), 195.0968) {
		t.Errorf("Altitude() = %v, want 195.0968", p.Altitude())
	}
	if p.CurrentTime() != 101 {
		t.Errorf("CurrentTime() = %v, want 101", p.CurrentTime())
	}
	if p.FlightDuration() != 1 {
		t.Errorf("FlightDuration() = %v, want 1", p.FlightDuration())
	}
	if !near(p.Speed(), last.Velocity.Length()) {
		t.Errorf("Speed() = %v, want %v", p.Speed(), last.Velocity.Length())
	}
}

func TestProjectile_TimeIsMonotonic(t *testing.T) {
	p := NewProjectile(0)
	p.Fire(physics.Vector2D{}, 0, physics.FromDegrees(45), physics.FromElevation(physics.FromDegrees(45), DefaultMuzzleVelocity))

	const step = 0.5
	for i := 1; i <= 40; i++ {
		p.Advance(step)
		if got, want := p.CurrentTime(), float64(i)*step; got != want {
			t.Fatalf("after %d steps CurrentTime() = %v, want %v", i, got, want)
		}
	}
	if got := len(p.History()); got != 41 {
		t.Errorf("unbounded History() len = %d, want 41", got)
	}
}

func TestProjectile_HistoryCap(t *testing.T) {
	p := NewProjectile(10)
	p.Fire(physics.Vector2D{}, 0, physics.Up, physics.Vector2D{Y: 500})
	for i := 0; i < 30; i++ {
		p.Advance(1)
	}

	history := p.History()
	if len(history) != 10 {
		t.Fatalf("History() len = %d, want 10", len(history))
	}
	if history[0].Time != 21 || history[9].Time != 30 {
		t.Errorf("retained times [%v..%v], want [21..30]", history[0].Time, history[9].Time)
	}
	// duration only spans retained states once the first has been evicted
	if p.FlightDuration() != 9 {
		t.Errorf("FlightDuration() = %v, want 9", p.FlightDuration())
	}
}

func TestProjectile_Reset(t *testing.T) {
	p := NewProjectile(flight.DefaultCapacity)
	p.SetMass(99)
	p.SetRadius(0.5)
	p.Fire(physics.Vector2D{X: 10, Y: 300}, 5, physics.Right, physics.Vector2D{X: 300})
	p.Advance(1)

	p.Reset()

	if p.IsFlying() {
		t.Error("IsFlying() = true after Reset")
	}
	if p.Altitude() != 0 {
		t.Errorf("Altitude() = %v after Reset, want 0", p.Altitude())
	}
	if p.Mass() != DefaultProjectileMass || p.Radius() != DefaultProjectileRadius {
		t.Errorf("mass/radius = %v/%v after Reset, want defaults", p.Mass(), p.Radius())
	}

	// resetting a grounded projectile is harmless
	p.Reset()
	if p.IsFlying() {
		t.Error("IsFlying() = true after second Reset")
	}
}

func TestProjectile_PathAndRender(t *testing.T) {
	p := NewProjectile(flight.DefaultCapacity)
	p.Fire(physics.Vector2D{X: 0, Y: 10}, 0, physics.Right, physics.Vector2D{X: 100, Y: 50})
	p.Advance(0.1)
	p.Advance(0.1)

	var positions []physics.Vector2D
	for pos := range p.Path() {
		positions = append(positions, pos)
	}
	if len(positions) != 3 {
		t.Fatalf("Path() yielded %d positions, want 3", len(positions))
	}
	if positions[0] != (physics.Vector2D{X: 0, Y: 10}) {
		t.Errorf("first position = %v, want launch point", positions[0])
	}

	r := &MockRenderer{}
	p.Render(r)
	if len(r.ProjectileCalls) != 3 {
		t.Fatalf("RenderProjectile called %d times, want 3", len(r.ProjectileCalls))
	}
	for i, call := range r.ProjectileCalls {
		if call.Position != positions[i] {
			t.Errorf("call %d position = %v, want %v", i, call.Position, positions[i])
		}
		if want := 2 - i; call.Age != want {
			t.Errorf("call %d age = %d, want %d", i, call.Age, want)
		}
	}
}

func TestProjectile_RenderGrounded(t *testing.T) {
	r := &MockRenderer{}
	NewProjectile(flight.DefaultCapacity).Render(r)
	if len(r.ProjectileCalls) != 0 {
		t.Errorf("grounded projectile rendered %d points", len(r.ProjectileCalls))
	}
}

func TestProjectile_IndependentHistories(t *testing.T) {
	a := NewProjectile(flight.DefaultCapacity)
	b := NewProjectile(flight.DefaultCapacity)
	a.Fire(physics.Vector2D{}, 0, physics.Up, physics.Vector2D{Y: 10})

	if b.IsFlying() {
		t.Error("firing one projectile affected another")
	}
	if a.GetID() == b.GetID() {
		t.Errorf("projectiles share ID %d", a.GetID())
	}
}
