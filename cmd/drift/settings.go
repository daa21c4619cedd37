package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-drift/internal/config"
	"github.com/vovakirdan/tui-drift/internal/core"
)

// overrides holds the global flags the user actually set.
type overrides struct {
	rows, columns *int
	policy        *string
	pattern       *string
	density       *float64
	fps           *int
	seed          *int64
}

// collectOverrides reads the changed global flags.
func collectOverrides(cmd *cobra.Command) overrides {
	var o overrides
	fs := cmd.Flags()
	if fs.Changed("rows") {
		o.rows = &flagRows
	}
	if fs.Changed("columns") {
		o.columns = &flagColumns
	}
	if fs.Changed("policy") {
		o.policy = &flagPolicy
	}
	if fs.Changed("pattern") {
		o.pattern = &flagPattern
	}
	if fs.Changed("density") {
		o.density = &flagDensity
	}
	if fs.Changed("fps") {
		o.fps = &flagFPS
	}
	if fs.Changed("seed") {
		o.seed = &flagSeed
	}
	return o
}

// apply writes the overrides into cfg and validates the result.
func (o overrides) apply(cfg *config.Config) error {
	if o.rows != nil {
		cfg.Grid.Rows = *o.rows
	}
	if o.columns != nil {
		cfg.Grid.Columns = *o.columns
	}
	if o.policy != nil {
		cfg.Engine.Policy = *o.policy
	}
	if o.pattern != nil {
		cfg.Seed.Pattern = *o.pattern
	}
	if o.density != nil {
		cfg.Seed.Density = *o.density
	}
	if o.fps != nil {
		if *o.fps <= 0 {
			return fmt.Errorf("fps must be positive, got %d", *o.fps)
		}
		cfg.Driver.Interval = time.Second / time.Duration(*o.fps)
	}
	if o.seed != nil {
		cfg.Seed.Value = *o.seed
	}
	return cfg.Validate()
}

// loadSettings loads the config file and applies the command line on top.
func loadSettings(cmd *cobra.Command) (config.Config, core.RuntimeConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, core.RuntimeConfig{}, err
	}
	if err := collectOverrides(cmd).apply(&cfg); err != nil {
		return cfg, core.RuntimeConfig{}, err
	}
	return cfg, cfg.Runtime(), nil
}

// newLogger builds the drift logger. Interactive sessions must not write to
// the terminal they draw on, so they log to --log-file or nowhere.
// The returned close func releases the log file, if any.
func newLogger(interactive bool) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	var w io.Writer = os.Stderr
	if interactive {
		w = io.Discard
	}
	closeFn := func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		w = f
		closeFn = func() { _ = f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "drift",
		Level:           level,
	})
	return logger, closeFn, nil
}
