package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-drift/internal/platform/tui"
	"github.com/vovakirdan/tui-drift/internal/sim"
)

var flagFit bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Run the interactive simulation",
	Long: `Start the simulation in the terminal.

Controls:
  Arrows/hjkl/wasd - Tilt the grid
  .                - Level (clamp policy only)
  T                - Toggle autopilot sweep
  Space/P          - Pause
  R                - Reseed
  ?                - Show all keys
  Ctrl+S           - Save a text screenshot
  Q/Esc/Ctrl+C     - Quit

Examples:
  drift play
  drift play --fit
  drift play --pattern rain --policy clamp
  drift play --config ./my-drift.yaml --log-file drift.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagFit, "fit", false, "Size the grid to fill the terminal")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	_, rc, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(true)
	if err != nil {
		return err
	}
	defer closeLog()

	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rc.ScreenW = w
		rc.ScreenH = h
	}
	if flagFit {
		rc.Rows, rc.Columns = tui.FitGrid(rc.ScreenW, rc.ScreenH)
	}

	s := sim.New(logger)
	if err := s.Reset(rc); err != nil {
		return err
	}

	return tui.Run(s, tui.Options{Fit: flagFit}, logger)
}
