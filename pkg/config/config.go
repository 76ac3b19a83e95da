// pkg/config/config.go
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/opd-ai/go-howitzer/pkg/entity"
	"github.com/opd-ai/go-howitzer/pkg/flight"
	"github.com/opd-ai/go-howitzer/pkg/physics"
)

// ErrInvalidConfig is wrapped by every validation failure
var ErrInvalidConfig = errors.New("invalid configuration")

// SimulationConfig contains configuration for a howitzer simulation
type SimulationConfig struct {
	Screen     ScreenConfig     `json:"screen"`
	Physics    PhysicsConfig    `json:"physics"`
	Projectile ProjectileConfig `json:"projectile"`
	Howitzer   HowitzerConfig   `json:"howitzer"`
	Rules      RulesConfig      `json:"rules"`
	Display    DisplayConfig    `json:"display"`
}

// ScreenConfig is the board size in pixels
type ScreenConfig struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// PhysicsConfig contains integrator settings
type PhysicsConfig struct {
	MetersPerPixel float64 `json:"metersPerPixel"`
	TimeStep       float64 `json:"timeStep"`   // seconds of flight per tick
	HistoryCap     int     `json:"historyCap"` // 0 keeps the whole flight path
}

// ProjectileConfig describes the round
type ProjectileConfig struct {
	Mass   float64 `json:"mass"`   // kg
	Radius float64 `json:"radius"` // m
}

// HowitzerConfig describes the gun and how fast it is aimed
type HowitzerConfig struct {
	MuzzleVelocity float64 `json:"muzzleVelocity"` // m/s
	RotateStep     float64 `json:"rotateStep"`     // radians per tick
	RaiseStep      float64 `json:"raiseStep"`      // radians per tick
}

// RulesConfig contains scoring rules
type RulesConfig struct {
	HitTolerancePixels float64 `json:"hitTolerancePixels"`
	Seed               uint64  `json:"seed"` // 0 picks a random board
}

// DisplayConfig contains front-end settings
type DisplayConfig struct {
	FrameRate int  `json:"frameRate"`
	Sound     bool `json:"sound"`
}

// Zoom returns the configured board scale
func (c *SimulationConfig) Zoom() physics.Zoom {
	return physics.NewZoom(c.Physics.MetersPerPixel)
}

// LoadConfig loads a configuration from a file. Fields missing from the
// file keep their defaults.
func LoadConfig(path string) (*SimulationConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// SaveConfig saves a configuration to a file
func SaveConfig(config *SimulationConfig, path string) error {
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// DefaultConfig returns a default simulation configuration
func DefaultConfig() *SimulationConfig {
	return &SimulationConfig{
		Screen: ScreenConfig{
			Width:  700,
			Height: 500,
		},
		Physics: PhysicsConfig{
			MetersPerPixel: physics.DefaultMetersPerPixel,
			TimeStep:       0.5,
			HistoryCap:     flight.DefaultCapacity,
		},
		Projectile: ProjectileConfig{
			Mass:   entity.DefaultProjectileMass,
			Radius: entity.DefaultProjectileRadius,
		},
		Howitzer: HowitzerConfig{
			MuzzleVelocity: entity.DefaultMuzzleVelocity,
			RotateStep:     0.05,
			RaiseStep:      0.003,
		},
		Rules: RulesConfig{
			HitTolerancePixels: entity.DefaultHitTolerancePixels,
		},
		Display: DisplayConfig{
			FrameRate: 30,
			Sound:     true,
		},
	}
}

// ValidationError reports the first field that failed validation
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%v: %s = %v: %s", ErrInvalidConfig, e.Field, e.Value, e.Message)
}

// Unwrap lets errors.Is match ErrInvalidConfig
func (e *ValidationError) Unwrap() error {
	return ErrInvalidConfig
}

// Validate checks every field range
func (c *SimulationConfig) Validate() error {
	checks := []struct {
		ok      bool
		field   string
		value   interface{}
		message string
	}{
		{c.Screen.Width >= 50 && c.Screen.Width <= 10000, "Screen.Width", c.Screen.Width, "must be between 50 and 10000"},
		{c.Screen.Height >= 50 && c.Screen.Height <= 10000, "Screen.Height", c.Screen.Height, "must be between 50 and 10000"},
		{c.Physics.MetersPerPixel > 0, "Physics.MetersPerPixel", c.Physics.MetersPerPixel, "must be positive"},
		{c.Physics.TimeStep > 0 && c.Physics.TimeStep <= 10, "Physics.TimeStep", c.Physics.TimeStep, "must be in (0, 10] seconds"},
		{c.Physics.HistoryCap >= 0, "Physics.HistoryCap", c.Physics.HistoryCap, "must not be negative"},
		{c.Projectile.Mass > 0, "Projectile.Mass", c.Projectile.Mass, "must be positive"},
		{c.Projectile.Radius > 0, "Projectile.Radius", c.Projectile.Radius, "must be positive"},
		{c.Howitzer.MuzzleVelocity > 0, "Howitzer.MuzzleVelocity", c.Howitzer.MuzzleVelocity, "must be positive"},
		{c.Howitzer.RotateStep >= 0, "Howitzer.RotateStep", c.Howitzer.RotateStep, "must not be negative"},
		{c.Howitzer.RaiseStep >= 0, "Howitzer.RaiseStep", c.Howitzer.RaiseStep, "must not be negative"},
		{c.Rules.HitTolerancePixels >= 0, "Rules.HitTolerancePixels", c.Rules.HitTolerancePixels, "must not be negative"},
		{c.Display.FrameRate >= 1 && c.Display.FrameRate <= 240, "Display.FrameRate", c.Display.FrameRate, "must be between 1 and 240"},
	}

	for _, check := range checks {
		if !check.ok {
			return &ValidationError{Field: check.field, Value: check.value, Message: check.message}
		}
	}
	return nil
}
