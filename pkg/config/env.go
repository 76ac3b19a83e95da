// pkg/config/env.go
package config

import (
	"os"
	"strconv"
)

// Environment variables read by ApplyEnvironmentOverrides
const (
	EnvTimeStep       = "HOWITZER_TIME_STEP"
	EnvHistoryCap     = "HOWITZER_HISTORY_CAP"
	EnvMetersPerPixel = "HOWITZER_METERS_PER_PIXEL"
	EnvMuzzleVelocity = "HOWITZER_MUZZLE_VELOCITY"
	EnvFrameRate      = "HOWITZER_FRAME_RATE"
	EnvSound          = "HOWITZER_SOUND"
	EnvSeed           = "HOWITZER_SEED"
)

// ApplyEnvironmentOverrides replaces config fields with any HOWITZER_*
// variables that are set, then validates the result. Unparseable values
// are ignored.
func ApplyEnvironmentOverrides(config *SimulationConfig) error {
	config.Physics.TimeStep = getEnvAsFloatOrDefault(EnvTimeStep, config.Physics.TimeStep)
	config.Physics.HistoryCap = getEnvAsIntOrDefault(EnvHistoryCap, config.Physics.HistoryCap)
	config.Physics.MetersPerPixel = getEnvAsFloatOrDefault(EnvMetersPerPixel, config.Physics.MetersPerPixel)
	config.Howitzer.MuzzleVelocity = getEnvAsFloatOrDefault(EnvMuzzleVelocity, config.Howitzer.MuzzleVelocity)
	config.Display.FrameRate = getEnvAsIntOrDefault(EnvFrameRate, config.Display.FrameRate)
	config.Display.Sound = getEnvAsBoolOrDefault(EnvSound, config.Display.Sound)
	config.Rules.Seed = uint64(getEnvAsIntOrDefault(EnvSeed, int(config.Rules.Seed)))

	return config.Validate()
}

// LoadConfigFromEnv returns the defaults with environment overrides applied
func LoadConfigFromEnv() (*SimulationConfig, error) {
	config := DefaultConfig()
	if err := ApplyEnvironmentOverrides(config); err != nil {
		return nil, err
	}
	return config, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value, err := strconv.Atoi(getEnvOrDefault(key, "")); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsFloatOrDefault(key string, defaultValue float64) float64 {
	if value, err := strconv.ParseFloat(getEnvOrDefault(key, ""), 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBoolOrDefault(key string, defaultValue bool) bool {
	if value, err := strconv.ParseBool(getEnvOrDefault(key, "")); err == nil {
		return value
	}
	return defaultValue
}
