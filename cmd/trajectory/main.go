// cmd/trajectory/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"math"
	"os"

	"github.com/opd-ai/go-howitzer/pkg/config"
	"github.com/opd-ai/go-howitzer/pkg/entity"
	"github.com/opd-ai/go-howitzer/pkg/logging"
	"github.com/opd-ai/go-howitzer/pkg/physics"
	"github.com/opd-ai/go-howitzer/pkg/report"
)

// Summary describes a finished flight
type Summary struct {
	Range       float64
	Apex        float64
	HangTime    float64
	ImpactSpeed float64
	Steps       int
}

func main() {
	defaults, err := config.LoadConfigFromEnv()
	logger := logging.NewLogger().WithComponent("trajectory")
	ctx := context.Background()
	if err != nil {
		logger.Error(ctx, "Invalid environment configuration", err)
		os.Exit(1)
	}

	angle := flag.Float64("angle", 45, "Elevation in degrees clockwise from vertical (negative fires left)")
	velocity := flag.Float64("velocity", defaults.Howitzer.MuzzleVelocity, "Muzzle velocity in m/s")
	mass := flag.Float64("mass", defaults.Projectile.Mass, "Projectile mass in kg")
	radius := flag.Float64("radius", defaults.Projectile.Radius, "Projectile radius in m")
	step := flag.Float64("step", defaults.Physics.TimeStep, "Time step in seconds")
	altitude := flag.Float64("altitude", 0, "Launch altitude in m")
	maxTime := flag.Float64("max-time", 600, "Give up after this many simulated seconds")
	csvPath := flag.String("csv", "-", "CSV output file, '-' for stdout")
	imagePath := flag.String("plot", "", "Optional plot image (png, svg or pdf)")
	flag.Parse()

	if *step <= 0 || *mass <= 0 || *radius <= 0 {
		logger.Error(ctx, "Step, mass and radius must be positive", nil,
			"step", *step, "mass", *mass, "radius", *radius)
		os.Exit(2)
	}

	states, summary := fly(*angle, *velocity, *mass, *radius, *step, *altitude, *maxTime)
	logger.Info(ctx, "Flight complete",
		"range_m", summary.Range,
		"apex_m", summary.Apex,
		"hang_time_s", summary.HangTime,
		"impact_speed_mps", summary.ImpactSpeed,
		"steps", summary.Steps,
	)

	if err := writeCSV(*csvPath, states); err != nil {
		logger.Error(ctx, "Failed to write CSV", err, "csv_path", *csvPath)
		os.Exit(1)
	}

	if *imagePath != "" {
		traj := report.Trajectory{
			Title:  fmt.Sprintf("%.1f° at %.0f m/s", *angle, *velocity),
			States: states,
		}
		if err := report.SaveImage(*imagePath, traj); err != nil {
			logger.Error(ctx, "Failed to save plot", err, "plot_path", *imagePath)
			os.Exit(1)
		}
		logger.Info(ctx, "Saved plot", "plot_path", *imagePath)
	}
}

// fly fires one round from (0, altitude) and advances it until it drops
// below the launch altitude or maxTime passes. The whole path is kept.
// A negative angle fires the mirror image of the positive one.
func fly(degrees, velocity, mass, radius, step, altitude, maxTime float64) ([]physics.KinematicState, Summary) {
	p := entity.NewProjectile(0)
	p.SetMass(mass)
	p.SetRadius(radius)
	launch := physics.FromElevation(physics.FromDegrees(math.Abs(degrees)), velocity)
	p.Fire(physics.Vector2D{Y: altitude}, 0, physics.FromDegrees(degrees), launch)

	summary := Summary{Apex: altitude}
	for p.CurrentTime() < maxTime {
		p.Advance(step)
		summary.Steps++
		summary.Apex = max(summary.Apex, p.Altitude())
		if p.Altitude() <= altitude {
			break
		}
	}

	summary.Range = p.FlightDistance()
	summary.HangTime = p.CurrentTime()
	summary.ImpactSpeed = p.Speed()
	return p.History(), summary
}

func writeCSV(path string, states []physics.KinematicState) error {
	if path == "-" {
		return report.WriteCSV(os.Stdout, states)
	}
	return report.SaveCSV(path, states)
}
