// drift is a terminal sand-tray: live cells slide across a grid toward the
// direction it is tilted, one step at a time, without ever merging or
// disappearing.
//
// Usage:
//
//	drift play               - Interactive simulation (arrow keys tilt the grid)
//	drift run                - Headless run with a fixed tilt or autopilot
//	drift patterns           - List seed patterns
//	drift bench              - Step many random grids concurrently
//	drift orient             - Map device angles onto a tilt vector
//
// Global flags:
//
//	--config <path>   - YAML config (default search: ~/.drift/config.yaml, ./configs/drift.yaml)
//	--rows, --columns - Grid dimensions
//	--policy <name>   - Edge policy: clamp or rail
//	--pattern <name>  - Seed pattern
//	--fps <rate>      - Steps per second
//	--seed <value>    - RNG seed for reproducible runs
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	// Import patterns to register them
	_ "github.com/vovakirdan/tui-drift/internal/patterns"
)

var (
	// Global flags
	flagConfig   string
	flagRows     int
	flagColumns  int
	flagPolicy   string
	flagPattern  string
	flagDensity  float64
	flagFPS      int
	flagSeed     int64
	flagLogLevel string
	flagLogFile  string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "drift",
	Short: "Drift - tilt a grid of particles in your terminal",
	Long: `Drift simulates particles on a grid that slide toward the direction
the grid is tilted. Particles never overlap, never leave the grid and are
never lost.

Available commands:
  play      - Interactive simulation
  run       - Headless run, prints frames and checks conservation
  patterns  - List seed patterns
  bench     - Step many random grids concurrently
  orient    - Map device angles onto a tilt vector

Examples:
  drift play
  drift play --fit --pattern scatter --density 0.3
  drift run --steps 50 --orient 1,1 --every 10
  drift bench --grids 64 --steps 500
  drift orient --alpha 120 --beta 10 --gamma -30`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagConfig, "config", "", "Path to config YAML")
	pf.IntVar(&flagRows, "rows", 0, "Grid rows (overrides config)")
	pf.IntVar(&flagColumns, "columns", 0, "Grid columns (overrides config)")
	pf.StringVar(&flagPolicy, "policy", "", "Edge policy: clamp or rail (overrides config)")
	pf.StringVar(&flagPattern, "pattern", "", "Seed pattern (overrides config)")
	pf.Float64Var(&flagDensity, "density", 0, "Fill probability for random patterns (overrides config)")
	pf.IntVar(&flagFPS, "fps", 0, "Steps per second (overrides config)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	pf.StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(patternsCmd)
	rootCmd.AddCommand(benchCmd)
	rootCmd.AddCommand(orientCmd)
}
