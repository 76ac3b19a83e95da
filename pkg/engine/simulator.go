// pkg/engine/simulator.go
package engine

import (
	"context"
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/opd-ai/go-howitzer/pkg/config"
	"github.com/opd-ai/go-howitzer/pkg/entity"
	"github.com/opd-ai/go-howitzer/pkg/event"
	"github.com/opd-ai/go-howitzer/pkg/input"
	"github.com/opd-ai/go-howitzer/pkg/logging"
	"github.com/opd-ai/go-howitzer/pkg/physics"
)

// Outcome is what happened to the projectile during one Advance
type Outcome int

const (
	OutcomeIdle   Outcome = iota // nothing in the air
	OutcomeFlying                // still in the air
	OutcomeLanded                // hit the ground away from the target
	OutcomeHit                   // hit the target
)

func (o Outcome) String() string {
	switch o {
	case OutcomeFlying:
		return "flying"
	case OutcomeLanded:
		return "landed"
	case OutcomeHit:
		return "hit"
	default:
		return "idle"
	}
}

// Simulator runs one howitzer, its terrain and a single projectile. It is
// driven by the caller, one Update and one Advance per frame, and is not
// safe for concurrent use.
type Simulator struct {
	Config     *config.SimulationConfig
	EventBus   *event.Bus
	Ground     *entity.Ground
	Howitzer   *entity.Howitzer
	Projectile *entity.Projectile

	Shots int
	Hits  int

	time       float64 // simulation seconds, advances only while a round flies
	launchTime float64
	rng        *rand.Rand
	ctx        context.Context // carries the run's correlation ID
	logger     *logging.Logger
}

// NewSimulator creates a simulator with a fresh board. A nil bus or logger
// gets a private bus or a discarding logger.
func NewSimulator(cfg *config.SimulationConfig, bus *event.Bus, logger *logging.Logger) *Simulator {
	if bus == nil {
		bus = event.NewEventBus()
	}
	if logger == nil {
		logger = logging.Discard()
	}

	seed := cfg.Rules.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}

	howitzer := entity.NewHowitzer()
	howitzer.SetMuzzleVelocity(cfg.Howitzer.MuzzleVelocity)

	s := &Simulator{
		Config:     cfg,
		EventBus:   bus,
		Ground:     entity.NewGround(cfg.Screen.Width, cfg.Screen.Height, cfg.Zoom()),
		Howitzer:   howitzer,
		Projectile: entity.NewProjectile(cfg.Physics.HistoryCap),
		rng:        rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		ctx:        logging.WithCorrelationID(context.Background(), ""),
		logger:     logger.WithComponent("simulator"),
	}
	s.NewBoard()
	return s
}

// RunID returns the correlation ID stamped on every entry this simulator logs
func (s *Simulator) RunID() string {
	return logging.GetCorrelationID(s.ctx)
}

// Time returns the simulation clock in seconds
func (s *Simulator) Time() float64 {
	return s.time
}

// NewBoard grounds the projectile, moves the howitzer and regenerates the
// terrain and target.
func (s *Simulator) NewBoard() {
	s.Projectile.Reset()
	s.Howitzer.GeneratePosition(s.Ground.UpperRight(), s.rng)
	s.Ground.Reset(s.Howitzer, s.rng)

	gun, target := s.Howitzer.Position(), s.Ground.Target()
	s.logger.Info(s.ctx, "new board",
		"howitzer_x", gun.X,
		"howitzer_y", gun.Y,
		"target_x", target.X,
		"target_y", target.Y,
	)
	s.EventBus.Publish(event.NewResetEvent(s, gun.X, gun.Y, target.X, target.Y))
}

// Update applies one frame of input: aiming always, firing only while the
// projectile is grounded.
func (s *Simulator) Update(ui input.Interface) {
	step := s.Config.Howitzer
	if ui.IsRight() {
		s.Howitzer.Rotate(step.RotateStep)
	}
	if ui.IsLeft() {
		s.Howitzer.Rotate(-step.RotateStep)
	}
	if ui.IsUp() {
		s.Howitzer.Raise(step.RaiseStep)
	}
	if ui.IsDown() {
		s.Howitzer.Raise(-step.RaiseStep)
	}

	if ui.IsFire() && !s.Projectile.IsFlying() {
		s.Fire()
	}
}

// Fire launches a round from the howitzer at its current elevation. It does
// nothing while a round is already in the air.
func (s *Simulator) Fire() {
	if s.Projectile.IsFlying() {
		return
	}

	s.Projectile.SetMass(s.Config.Projectile.Mass)
	s.Projectile.SetRadius(s.Config.Projectile.Radius)
	// MuzzleVector already points where the barrel does; a normalized angle
	// never mirrors it again.
	s.Projectile.Fire(s.Howitzer.Position(), s.time, s.Howitzer.Elevation().Normalize(), s.Howitzer.MuzzleVector())
	s.launchTime = s.time
	s.Shots++

	pos := s.Projectile.Position()
	s.logger.Info(s.ctx, "projectile fired",
		"projectile_id", s.Projectile.GetID(),
		"elevation_deg", s.Howitzer.Elevation().DisplayDegrees(),
		"muzzle_velocity", s.Howitzer.MuzzleVelocity(),
		"sim_time", s.time,
	)
	s.EventBus.Publish(event.NewProjectileEvent(event.ProjectileFired, s,
		uint64(s.Projectile.GetID()), pos.X, pos.Y, s.Projectile.Speed(), s.time, 0))
}

// Advance moves a flying projectile one time step and resolves impacts. A
// round inside the target box counts as a hit even if it is also below the
// surface.
func (s *Simulator) Advance() Outcome {
	if !s.Projectile.IsFlying() {
		return OutcomeIdle
	}

	dt := s.Config.Physics.TimeStep
	s.Projectile.Advance(dt)
	s.time += dt

	pos := s.Projectile.Position()
	s.logger.Debug(s.ctx, "projectile advanced",
		"x", pos.X,
		"y", pos.Y,
		"speed", s.Projectile.Speed(),
		"sim_time", s.time,
	)

	switch {
	case s.Ground.HitsTarget(pos, s.Config.Rules.HitTolerancePixels):
		s.Hits++
		s.impact(event.TargetHit, "target hit")
		s.NewBoard()
		return OutcomeHit
	case pos.Y <= s.Ground.ElevationMeters(pos):
		s.impact(event.ProjectileLanded, "projectile landed")
		s.Projectile.Reset()
		return OutcomeLanded
	default:
		return OutcomeFlying
	}
}

// Tick runs Update then Advance
func (s *Simulator) Tick(ui input.Interface) Outcome {
	s.Update(ui)
	return s.Advance()
}

func (s *Simulator) impact(eventType event.Type, msg string) {
	pos := s.Projectile.Position()
	hang := s.HangTime()
	s.logger.Info(s.ctx, msg,
		"projectile_id", s.Projectile.GetID(),
		"x", pos.X,
		"y", pos.Y,
		"speed", s.Projectile.Speed(),
		"hang_time", hang,
		"shots", s.Shots,
		"hits", s.Hits,
	)
	s.EventBus.Publish(event.NewProjectileEvent(eventType, s,
		uint64(s.Projectile.GetID()), pos.X, pos.Y, s.Projectile.Speed(), s.time, hang))
}

// HangTime returns the seconds the current round has been in the air
func (s *Simulator) HangTime() float64 {
	if !s.Projectile.IsFlying() {
		return 0
	}
	return s.Projectile.CurrentTime() - s.launchTime
}

// Distance returns the horizontal distance from the gun to the round
func (s *Simulator) Distance() float64 {
	if !s.Projectile.IsFlying() {
		return 0
	}
	return math.Abs(s.Projectile.FlightDistance() - s.Howitzer.Position().X)
}

// Status returns the readout lines, one decimal place each.
func (s *Simulator) Status() []string {
	if !s.Projectile.IsFlying() {
		return []string{
			fmt.Sprintf("Angle: %.1f°", s.Howitzer.Elevation().DisplayDegrees()),
		}
	}
	return []string{
		fmt.Sprintf("Altitude: %.1f m", s.Projectile.Altitude()),
		fmt.Sprintf("Speed: %.1f m/s", s.Projectile.Speed()),
		fmt.Sprintf("Distance: %.1f m", s.Distance()),
		fmt.Sprintf("Hang Time: %.1f s", s.HangTime()),
	}
}

// Draw renders one frame
func (s *Simulator) Draw(r entity.Renderer) {
	r.Clear()
	for _, e := range s.Entities() {
		e.Render(r)
	}
	r.RenderStatus(s.Status())
	r.Present()
}

// Entities returns the board contents in draw order
func (s *Simulator) Entities() []entity.Entity {
	return []entity.Entity{s.Ground, s.Howitzer, s.Projectile}
}

// Zoom returns the board scale
func (s *Simulator) Zoom() physics.Zoom {
	return s.Ground.Zoom()
}
