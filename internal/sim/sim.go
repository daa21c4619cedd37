// Package sim drives the drift engine: it owns the current grid, reads
// tilt input and swaps in each step's result. Rendering and pacing are left
// to the platform.
package sim

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-drift/internal/core"
	"github.com/vovakirdan/tui-drift/internal/engine"
	"github.com/vovakirdan/tui-drift/internal/grid"
	"github.com/vovakirdan/tui-drift/internal/patterns"
	"github.com/vovakirdan/tui-drift/internal/tilt"
)

// StartOrientation is the tilt a fresh simulation starts with: up and to
// the right.
var StartOrientation = engine.Orientation{X: 1, Y: -1}

// State is a snapshot of the simulation for the HUD and for callers.
type State struct {
	Tick        uint64
	Count       int
	Orientation engine.Orientation
	Policy      engine.EdgePolicy
	Paused      bool
	Sweeping    bool
}

// Simulation is not safe for concurrent use; the platform calls it from a
// single loop.
type Simulation struct {
	cfg    core.RuntimeConfig
	engine *engine.Engine
	grid   *grid.Grid
	held   *tilt.State
	sweep  *tilt.Sweep
	logger *log.Logger

	tick     uint64
	count    int
	last     engine.Orientation
	paused   bool
	sweeping bool
}

// New creates an unstarted simulation. Call Reset before stepping.
// A nil logger discards output.
func New(logger *log.Logger) *Simulation {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Simulation{logger: logger}
}

// Reset builds a new engine and grid from cfg and seeds the grid.
// A zero cfg.Seed is replaced by a time-based seed.
func (s *Simulation) Reset(cfg core.RuntimeConfig) error {
	policy, err := engine.ParsePolicy(cfg.Policy)
	if err != nil {
		return err
	}
	e, err := engine.New(policy)
	if err != nil {
		return err
	}
	g, err := grid.New(cfg.Rows, cfg.Columns)
	if err != nil {
		return err
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if err := patterns.Apply(cfg.Pattern, g, cfg.Seed, cfg.Density); err != nil {
		return err
	}

	s.cfg = cfg
	s.engine = e
	s.grid = g
	s.held = tilt.NewState(StartOrientation)
	s.sweep = tilt.NewSweep(cfg.Sweep)
	s.tick = 0
	s.count = g.Count()
	s.last = StartOrientation
	s.paused = false
	s.sweeping = false

	s.logger.Info("simulation reset",
		"rows", cfg.Rows, "columns", cfg.Columns,
		"policy", policy, "pattern", cfg.Pattern, "count", s.count)
	return nil
}

// Resize replaces the grid with an all-dead one of the new dimensions and
// reseeds it with the configured pattern.
func (s *Simulation) Resize(rows, columns int) error {
	if s.grid == nil {
		return fmt.Errorf("sim: resize before reset")
	}
	g, err := s.grid.Resize(rows, columns)
	if err != nil {
		return err
	}
	s.cfg.Rows, s.cfg.Columns = rows, columns
	if err := patterns.Apply(s.cfg.Pattern, g, s.cfg.Seed, s.cfg.Density); err != nil {
		return err
	}
	s.grid = g
	s.count = g.Count()
	s.logger.Debug("grid resized", "rows", rows, "columns", columns, "count", s.count)
	return nil
}

// Step applies the frame's input and, unless paused, advances the grid by
// one engine step.
func (s *Simulation) Step(in core.InputFrame) core.StepResult {
	s.applyInput(in)

	if s.paused {
		return core.StepResult{Tick: s.tick, Count: s.count}
	}

	o := s.held.Next()
	if s.sweeping {
		o = s.sweep.Next()
	}

	next := s.engine.MustStep(s.grid, o)
	if n := next.Count(); n != s.count {
		s.logger.Error("particle count changed", "tick", s.tick, "before", s.count, "after", n)
		s.count = n
	}
	s.grid = next
	s.last = o
	s.tick++

	return core.StepResult{Tick: s.tick, Count: s.count}
}

func (s *Simulation) applyInput(in core.InputFrame) {
	if in.Has(core.ActionPause) {
		s.paused = !s.paused
	}
	if in.Has(core.ActionSweep) {
		s.sweeping = !s.sweeping
	}
	if in.Has(core.ActionReseed) {
		s.reseed()
	}

	if in.Has(core.ActionTiltUp) {
		s.held.TiltY(-1)
	}
	if in.Has(core.ActionTiltDown) {
		s.held.TiltY(1)
	}
	if in.Has(core.ActionTiltLeft) {
		s.held.TiltX(-1)
	}
	if in.Has(core.ActionTiltRight) {
		s.held.TiltX(1)
	}
	if in.Has(core.ActionLevel) {
		// The rail policy has no level axis.
		if s.engine.Policy() == engine.PolicyRail {
			s.logger.Debug("level tilt ignored under rail policy")
		} else {
			s.held.Level()
		}
	}
}

// reseed clears the grid and seeds it again with a fresh seed.
func (s *Simulation) reseed() {
	s.cfg.Seed++
	g, _ := grid.New(s.grid.Rows(), s.grid.Columns())
	if err := patterns.Apply(s.cfg.Pattern, g, s.cfg.Seed, s.cfg.Density); err != nil {
		s.logger.Error("reseed failed", "pattern", s.cfg.Pattern, "error", err)
		return
	}
	s.grid = g
	s.count = g.Count()
	s.logger.Info("grid reseeded", "count", s.count)
}

// Grid returns the current grid. Callers must not modify it.
func (s *Simulation) Grid() *grid.Grid {
	return s.grid
}

// Config returns the runtime configuration in effect.
func (s *Simulation) Config() core.RuntimeConfig {
	return s.cfg
}

// State returns a snapshot of the simulation.
func (s *Simulation) State() State {
	st := State{
		Tick:        s.tick,
		Count:       s.count,
		Orientation: s.last,
		Paused:      s.paused,
		Sweeping:    s.sweeping,
	}
	if s.engine != nil {
		st.Policy = s.engine.Policy()
	}
	return st
}
