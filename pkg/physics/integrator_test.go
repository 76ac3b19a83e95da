package physics

import (
	"math"
	"testing"
)

const (
	testMass   = 46.7
	testRadius = 0.077545
	tolerance  = 0.001
)

func near(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func assertState(t *testing.T, got, want KinematicState) {
	t.Helper()
	if !near(got.Position.X, want.Position.X, tolerance) || !near(got.Position.Y, want.Position.Y, tolerance) {
		t.Errorf("position = %v, want %v", got.Position, want.Position)
	}
	if !near(got.Velocity.X, want.Velocity.X, tolerance) || !near(got.Velocity.Y, want.Velocity.Y, tolerance) {
		t.Errorf("velocity = %v, want %v", got.Velocity, want.Velocity)
	}
	if got.Time != want.Time {
		t.Errorf("time = %v, want %v", got.Time, want.Time)
	}
}

func TestDragComponents_ZeroSpeed(t *testing.T) {
	h, v := DragComponents(Vector2D{}, 12.5)
	if h != 0 || v != 0 {
		t.Errorf("DragComponents(rest) = (%v, %v), want (0, 0)", h, v)
	}
}

func TestDragComponents_OpposeMotion(t *testing.T) {
	tests := []struct {
		name     string
		velocity Vector2D
		wantH    float64
		wantV    float64
	}{
		{"right", Vector2D{X: 10}, -2, 0},
		{"left", Vector2D{X: -10}, 2, 0},
		{"up", Vector2D{Y: 10}, 0, 2},
		{"down", Vector2D{Y: -10}, 0, -2},
		{"diagonal", Vector2D{X: 3, Y: 4}, -1.2, 1.6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, v := DragComponents(tt.velocity, 2)
			if !near(h, tt.wantH, epsilon) || !near(v, tt.wantV, epsilon) {
				t.Errorf("DragComponents() = (%v, %v), want (%v, %v)", h, v, tt.wantH, tt.wantV)
			}
		})
	}
}

func TestAdvance_ZeroTimeStepIsIdentity(t *testing.T) {
	states := []KinematicState{
		{Position: Vector2D{X: 100, Y: 200}, Velocity: Vector2D{}, Time: 100},
		{Position: Vector2D{X: 100, Y: 200}, Velocity: Vector2D{X: 50, Y: 40}, Time: 3},
		{Position: Vector2D{X: -5, Y: 9000}, Velocity: Vector2D{X: -700, Y: -300}, Time: 0},
	}

	for _, s := range states {
		if got := Advance(s, 0, testMass, testRadius); got != s {
			t.Errorf("Advance(%v, 0) = %v, want unchanged", s, got)
		}
	}
}

func TestAdvance_Fall(t *testing.T) {
	start := KinematicState{Position: Vector2D{X: 100, Y: 200}, Time: 100}
	got := Advance(start, 1, testMass, testRadius)

	assertState(t, got, KinematicState{
		Position: Vector2D{X: 100, Y: 195.0968}, // 200 + 0*1 + .5(-9.8064)*1*1
		Velocity: Vector2D{X: 0, Y: -9.8064},
		Time:     101,
	})
	if got.Position.X != 100 || got.Velocity.X != 0 {
		t.Errorf("resting fall drifted horizontally: %v", got)
	}
}

func TestAdvance_Horizontal(t *testing.T) {
	start := KinematicState{Position: Vector2D{X: 100, Y: 200}, Velocity: Vector2D{X: 50}, Time: 100}
	got := Advance(start, 1, testMass, testRadius)

	// Mach 0.147 sits below the drag table, c = 0.1629, ρ(200m) = 1.2024:
	// a = ½ ρ c A v² / m ≈ 0.0990 m/s²
	assertState(t, got, KinematicState{
		Position: Vector2D{X: 149.9505, Y: 195.0968},
		Velocity: Vector2D{X: 49.9010, Y: -9.8064},
		Time:     101,
	})

	decel := DragDeceleration(DragForce(AirDensity(200), DragCoefficient(MachNumber(50, 200)), testRadius, 50), testMass)
	if !near(got.Velocity.X, 50-decel, 1e-9) {
		t.Errorf("horizontal velocity = %v, want %v", got.Velocity.X, 50-decel)
	}
	if !near(got.Position.X, 150-0.5*decel, 1e-9) {
		t.Errorf("horizontal position = %v, want %v", got.Position.X, 150-0.5*decel)
	}
	// horizontal motion adds nothing vertically
	if !near(got.Velocity.Y, Gravity(200), 1e-12) {
		t.Errorf("vertical velocity = %v, want gravity only %v", got.Velocity.Y, Gravity(200))
	}
}

func TestAdvance_Up(t *testing.T) {
	start := KinematicState{Position: Vector2D{X: 100, Y: 200}, Velocity: Vector2D{Y: 100}, Time: 100}
	got := Advance(start, 1, testMass, testRadius)

	// drag ≈ 0.3962 m/s² adds to gravity while climbing
	assertState(t, got, KinematicState{
		Position: Vector2D{X: 100, Y: 294.8987},
		Velocity: Vector2D{X: 0, Y: 89.7974},
		Time:     101,
	})
}

func TestAdvance_Diagonal(t *testing.T) {
	tests := []struct {
		name  string
		start KinematicState
		want  KinematicState
	}{
		{
			name:  "up_and_across",
			start: KinematicState{Position: Vector2D{X: 100, Y: 200}, Velocity: Vector2D{X: 50, Y: 40}, Time: 100},
			want: KinematicState{
				Position: Vector2D{X: 149.9366, Y: 235.0461},
				Velocity: Vector2D{X: 49.8732, Y: 30.0921},
				Time:     101,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertState(t, Advance(tt.start, 1, testMass, testRadius), tt.want)
		})
	}
}

func TestAdvance_DragSlowsDescent(t *testing.T) {
	down := KinematicState{Position: Vector2D{X: 100, Y: 200}, Velocity: Vector2D{X: 50, Y: -40}, Time: 100}
	got := Advance(down, 1, testMass, testRadius)

	vacuum := -40 + Gravity(200)
	if got.Velocity.Y <= vacuum {
		t.Errorf("descending velocity = %v, want drag to keep it above %v", got.Velocity.Y, vacuum)
	}
	if got.Velocity.X >= 50 {
		t.Errorf("horizontal velocity = %v, want drag to slow it below 50", got.Velocity.X)
	}
}

func TestAdvance_TimeIsMonotonic(t *testing.T) {
	s := KinematicState{Position: Vector2D{Y: 10}, Velocity: FromElevation(FromDegrees(45), 827)}
	const step = 0.5
	for i := 0; i < 200; i++ {
		next := Advance(s, step, testMass, testRadius)
		if next.Time != s.Time+step {
			t.Fatalf("step %d: time = %v, want %v", i, next.Time, s.Time+step)
		}
		s = next
	}
}

func TestAdvance_HeavierRoundLosesLessSpeed(t *testing.T) {
	start := KinematicState{Velocity: Vector2D{X: 800}}
	light := Advance(start, 1, 10, testRadius)
	heavy := Advance(start, 1, 100, testRadius)
	if heavy.Velocity.X <= light.Velocity.X {
		t.Errorf("heavy round vx = %v, light vx = %v; want heavy faster", heavy.Velocity.X, light.Velocity.X)
	}
}

func BenchmarkAdvance(b *testing.B) {
	s := KinematicState{Velocity: FromElevation(FromDegrees(45), 827)}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s = Advance(s, 0.01, testMass, testRadius)
	}
}
