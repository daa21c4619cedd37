package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-drift/internal/engine"
	"github.com/vovakirdan/tui-drift/internal/tilt"
)

var (
	flagAlpha    float64
	flagBeta     float64
	flagGamma    float64
	flagDeadZone float64
	flagTable    float64
)

var orientCmd = &cobra.Command{
	Use:   "orient",
	Short: "Map device angles onto a tilt vector",
	Long: `Print the tilt vector the engine would receive for a device
orientation sample (alpha, beta, gamma in degrees).

With --dead-zone, a device lying within that many degrees of flat maps to
the level vector, which only the clamp policy accepts.
With --table N, alpha is swept from 0 to 360 in N degree increments.

Examples:
  drift orient --alpha 120
  drift orient --alpha 30 --beta 45 --gamma -20
  drift orient --beta 2 --gamma 1 --dead-zone 5
  drift orient --table 45`,
	Args: cobra.NoArgs,
	RunE: runOrient,
}

func init() {
	orientCmd.Flags().Float64Var(&flagAlpha, "alpha", 0, "Compass heading in degrees")
	orientCmd.Flags().Float64Var(&flagBeta, "beta", 0, "Front-back tilt in degrees")
	orientCmd.Flags().Float64Var(&flagGamma, "gamma", 0, "Left-right tilt in degrees")
	orientCmd.Flags().Float64Var(&flagDeadZone, "dead-zone", 0, "Degrees from flat treated as level (overrides config)")
	orientCmd.Flags().Float64Var(&flagTable, "table", 0, "Print a table sweeping alpha in these increments")
}

func runOrient(cmd *cobra.Command, _ []string) error {
	cfg, _, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	m := tilt.Mapper{DeadZone: cfg.Tilt.DeadZone}
	if cmd.Flags().Changed("dead-zone") {
		if flagDeadZone < 0 {
			return fmt.Errorf("dead zone must not be negative, got %v", flagDeadZone)
		}
		m.DeadZone = flagDeadZone
	}

	a := tilt.Angles{Alpha: flagAlpha, Beta: flagBeta, Gamma: flagGamma}
	if flagTable > 0 {
		printOrientTable(os.Stdout, m, a, flagTable)
		return nil
	}
	printOrient(os.Stdout, m, a)
	return nil
}

func printOrient(w io.Writer, m tilt.Mapper, a tilt.Angles) {
	o := m.Map(a)
	fmt.Fprintf(w, "alpha %.1f  beta %.1f  gamma %.1f\n", a.Alpha, a.Beta, a.Gamma)
	fmt.Fprintf(w, "heading %.1f  tilt %s  %s\n", a.Heading(), o, describe(o))
}

func printOrientTable(w io.Writer, m tilt.Mapper, a tilt.Angles, step float64) {
	fmt.Fprintf(w, "beta %.1f  gamma %.1f\n\n", a.Beta, a.Gamma)
	fmt.Fprintf(w, "  %6s  %7s  %-12s  %s\n", "alpha", "heading", "tilt", "direction")
	for alpha := 0.0; alpha < 360; alpha += step {
		a.Alpha = alpha
		o := m.Map(a)
		fmt.Fprintf(w, "  %6.1f  %7.1f  %-12s  %s\n", alpha, a.Heading(), o, describe(o))
	}
}

// describe names an orientation, for example "down-right" or "level".
func describe(o engine.Orientation) string {
	var v, h string
	switch o.Y {
	case -1:
		v = "up"
	case 1:
		v = "down"
	}
	switch o.X {
	case -1:
		h = "left"
	case 1:
		h = "right"
	}
	switch {
	case v != "" && h != "":
		return v + "-" + h
	case v != "":
		return v
	case h != "":
		return h
	default:
		return "level"
	}
}
