// Package config provides YAML-based configuration loading for the drift
// simulation.
package config

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-drift/internal/core"
	"github.com/vovakirdan/tui-drift/internal/engine"
	"github.com/vovakirdan/tui-drift/internal/grid"
)

// Config is the full simulation configuration.
type Config struct {
	Grid   GridConfig   `yaml:"grid"`
	Engine EngineConfig `yaml:"engine"`
	Seed   SeedConfig   `yaml:"seed"`
	Driver DriverConfig `yaml:"driver"`
	Tilt   TiltConfig   `yaml:"tilt"`
}

// GridConfig sets the board dimensions.
type GridConfig struct {
	Rows    int `yaml:"rows"`
	Columns int `yaml:"columns"`
}

// EngineConfig selects the edge policy.
type EngineConfig struct {
	Policy string `yaml:"policy"` // "clamp" or "rail"
}

// SeedConfig selects how the grid is populated.
type SeedConfig struct {
	Pattern string  `yaml:"pattern"`
	Density float64 `yaml:"density"` // Used by random patterns, 0.0 - 1.0
	Value   int64   `yaml:"value"`   // RNG seed, 0 = time-based
}

// DriverConfig sets the pacing of the step loop.
type DriverConfig struct {
	Interval time.Duration `yaml:"interval"`
}

// TiltConfig tunes the orientation sources.
type TiltConfig struct {
	DeadZone     float64 `yaml:"dead_zone"`     // Degrees treated as level
	SweepDegrees float64 `yaml:"sweep_degrees"` // Autopilot rotation per tick
}

// Validate checks the configuration for values the simulation cannot run.
func (c Config) Validate() error {
	if c.Grid.Rows <= 0 || c.Grid.Columns <= 0 {
		return fmt.Errorf("config: grid %dx%d: %w", c.Grid.Rows, c.Grid.Columns, grid.ErrInvalidDimension)
	}
	if _, err := engine.ParsePolicy(c.Engine.Policy); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.Seed.Pattern == "" {
		return fmt.Errorf("config: seed pattern is empty")
	}
	if c.Seed.Density < 0 || c.Seed.Density > 1 {
		return fmt.Errorf("config: seed density %v outside [0, 1]", c.Seed.Density)
	}
	if c.Driver.Interval <= 0 {
		return fmt.Errorf("config: driver interval %v must be positive", c.Driver.Interval)
	}
	if c.Tilt.DeadZone < 0 {
		return fmt.Errorf("config: tilt dead zone %v must not be negative", c.Tilt.DeadZone)
	}
	return nil
}

// Runtime converts the file configuration into the settings handed to the
// simulation on reset.
func (c Config) Runtime() core.RuntimeConfig {
	rc := core.DefaultConfig()
	rc.Rows = c.Grid.Rows
	rc.Columns = c.Grid.Columns
	rc.Policy = c.Engine.Policy
	rc.Pattern = c.Seed.Pattern
	rc.Density = c.Seed.Density
	rc.Seed = c.Seed.Value
	rc.Interval = c.Driver.Interval
	rc.Sweep = c.Tilt.SweepDegrees
	return rc
}
