package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/drift.yaml
var defaultYAML []byte

// DefaultConfig returns the hard-coded defaults, matching the embedded YAML.
func DefaultConfig() Config {
	return Config{
		Grid: GridConfig{
			Rows:    16,
			Columns: 9,
		},
		Engine: EngineConfig{
			Policy: "rail",
		},
		Seed: SeedConfig{
			Pattern: "center",
			Density: 0.15,
		},
		Driver: DriverConfig{
			Interval: 71 * time.Millisecond,
		},
		Tilt: TiltConfig{
			SweepDegrees: 6,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
