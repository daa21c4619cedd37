package core

import "time"

// RuntimeConfig is handed to the simulation on every reset. The platform
// fills it from the loaded configuration and the terminal size.
type RuntimeConfig struct {
	Rows     int           // Grid rows
	Columns  int           // Grid columns
	Policy   string        // Engine edge policy name
	Pattern  string        // Seed pattern name
	Density  float64       // Fill probability for random patterns
	Seed     int64         // RNG seed, 0 means time-based
	Interval time.Duration // Time between steps
	Sweep    float64       // Degrees per tick when the autopilot sweep is on
	ScreenW  int           // Screen width in characters
	ScreenH  int           // Screen height in characters
}

// DefaultConfig is a 16x9 grid seeded with a single centre particle,
// stepped about 14 times per second.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		Rows:     16,
		Columns:  9,
		Policy:   "rail",
		Pattern:  "center",
		Density:  0.15,
		Interval: time.Second / 14,
		Sweep:    6,
		ScreenW:  80,
		ScreenH:  24,
	}
}

// StepResult is returned by each simulation tick.
type StepResult struct {
	Tick  uint64
	Count int
}
