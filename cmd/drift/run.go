package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-drift/internal/core"
	"github.com/vovakirdan/tui-drift/internal/engine"
	"github.com/vovakirdan/tui-drift/internal/grid"
	"github.com/vovakirdan/tui-drift/internal/patterns"
	"github.com/vovakirdan/tui-drift/internal/sim"
	"github.com/vovakirdan/tui-drift/internal/tilt"
)

// errNotConserved is returned when a step changes the particle count.
var errNotConserved = errors.New("particle count changed")

var (
	flagSteps  int
	flagEvery  int
	flagOrient string
	flagSweep  bool
	flagFrom   string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the simulation headless",
	Long: `Step the simulation without a terminal UI and print the grid as text.

The tilt is fixed (--orient x,y, default up-right) or driven by the
autopilot sweep (--sweep). The command fails if the particle count ever
changes.

Examples:
  drift run --steps 40
  drift run --orient 1,1 --every 5
  drift run --sweep --pattern scatter --density 0.3 --steps 500
  drift run --policy clamp --orient 0,1 --pattern rain
  drift run --from board.txt --orient 1,1 --every 1

A --from file holds one grid row per line, '#' or 'o' for a particle and
'.' for an empty cell. It replaces the seed pattern and grid size.`,
	Args: cobra.NoArgs,
	RunE: runRun,
}

func init() {
	runCmd.Flags().IntVar(&flagSteps, "steps", 100, "Number of steps")
	runCmd.Flags().IntVar(&flagEvery, "every", 0, "Print the grid every N steps (0 = final grid only)")
	runCmd.Flags().StringVar(&flagOrient, "orient", "", "Fixed tilt as x,y with components in -1..1")
	runCmd.Flags().BoolVar(&flagSweep, "sweep", false, "Use the autopilot sweep instead of a fixed tilt")
	runCmd.Flags().StringVar(&flagFrom, "from", "", "Start from a text grid file instead of a seed pattern")
}

func runRun(cmd *cobra.Command, _ []string) error {
	_, rc, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	logger, closeLog, err := newLogger(false)
	if err != nil {
		return err
	}
	defer closeLog()

	var src tilt.Source = tilt.Fixed(sim.StartOrientation)
	switch {
	case flagSweep && flagOrient != "":
		return fmt.Errorf("--orient and --sweep are mutually exclusive")
	case flagSweep:
		src = tilt.NewSweep(rc.Sweep)
	case flagOrient != "":
		o, err := engine.ParseOrientation(flagOrient)
		if err != nil {
			return err
		}
		src = tilt.Fixed(o)
	}

	var start *grid.Grid
	if flagFrom != "" {
		data, err := os.ReadFile(flagFrom)
		if err != nil {
			return fmt.Errorf("failed to read grid %s: %w", flagFrom, err)
		}
		if start, err = grid.Parse(string(data)); err != nil {
			return fmt.Errorf("failed to parse grid %s: %w", flagFrom, err)
		}
	}

	_, err = runHeadless(cmd.Context(), os.Stdout, rc, start, src, flagSteps, flagEvery, logger)
	return err
}

// runReport summarises a headless run.
type runReport struct {
	Seed  int64
	Steps int
	Count int
	Final *grid.Grid
}

// runHeadless steps start, or a grid seeded from rc when start is nil, with
// orientations from src and writes frames to w. It stops at the first step
// that changes the count.
func runHeadless(ctx context.Context, w io.Writer, rc core.RuntimeConfig, start *grid.Grid, src tilt.Source, steps, every int, logger *log.Logger) (runReport, error) {
	if steps < 0 {
		return runReport{}, fmt.Errorf("steps must not be negative, got %d", steps)
	}

	policy, err := engine.ParsePolicy(rc.Policy)
	if err != nil {
		return runReport{}, err
	}
	e, err := engine.New(policy)
	if err != nil {
		return runReport{}, err
	}
	if rc.Seed == 0 {
		rc.Seed = time.Now().UnixNano()
	}
	g := start
	if g == nil {
		if g, err = seededGrid(rc); err != nil {
			return runReport{}, err
		}
	} else {
		rc.Rows, rc.Columns, rc.Pattern = g.Rows(), g.Columns(), "file"
	}

	report := runReport{Seed: rc.Seed, Count: g.Count(), Final: g}
	logger.Info("headless run",
		"rows", rc.Rows, "columns", rc.Columns, "policy", policy,
		"pattern", rc.Pattern, "seed", rc.Seed, "count", report.Count, "steps", steps)

	fmt.Fprintf(w, "%dx%d  policy %s  pattern %s  seed %d  particles %d\n",
		rc.Rows, rc.Columns, policy, rc.Pattern, rc.Seed, report.Count)
	if every > 0 {
		printFrame(w, "step 0", g)
	}

	var o engine.Orientation
	for step := 1; step <= steps; step++ {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		o = src.Next()
		next, err := e.Step(g, o)
		if err != nil {
			return report, fmt.Errorf("step %d: %w", step, err)
		}
		g = next
		report.Steps = step
		report.Final = g

		if n := g.Count(); n != report.Count {
			logger.Error("particle count changed", "tick", step, "before", report.Count, "after", n)
			printFrame(w, stepHeader(step, o), g)
			return report, fmt.Errorf("step %d: %d -> %d: %w", step, report.Count, n, errNotConserved)
		}
		if every > 0 && step%every == 0 {
			printFrame(w, stepHeader(step, o), g)
		}
	}

	if every <= 0 || steps%every != 0 {
		header := "step 0"
		if report.Steps > 0 {
			header = stepHeader(report.Steps, o)
		}
		printFrame(w, header, g)
	}
	fmt.Fprintf(w, "final: %d particles after %d steps\n", g.Count(), report.Steps)
	logger.Debug("headless run finished", "steps", report.Steps, "count", g.Count())
	return report, nil
}

func seededGrid(rc core.RuntimeConfig) (*grid.Grid, error) {
	g, err := grid.New(rc.Rows, rc.Columns)
	if err != nil {
		return nil, err
	}
	if err := patterns.Apply(rc.Pattern, g, rc.Seed, rc.Density); err != nil {
		return nil, err
	}
	return g, nil
}

func stepHeader(step int, o engine.Orientation) string {
	return fmt.Sprintf("step %d  tilt %s", step, o)
}

func printFrame(w io.Writer, header string, g *grid.Grid) {
	fmt.Fprintf(w, "\n%s\n%s\n", header, g)
}
