package tilt

import (
	"math"

	"github.com/vovakirdan/tui-drift/internal/engine"
)

// Source produces the orientation for the next step.
type Source interface {
	Next() engine.Orientation
}

// State is a keyboard-held tilt. Each axis keeps its last pressed direction
// until changed. The zero value is level.
type State struct {
	o engine.Orientation
}

// NewState returns a State starting at o.
func NewState(o engine.Orientation) *State {
	return &State{o: o}
}

// TiltX sets the horizontal axis to -1, 0 or 1.
func (s *State) TiltX(dir int) {
	s.o.X = sign(dir)
}

// TiltY sets the vertical axis to -1, 0 or 1.
func (s *State) TiltY(dir int) {
	s.o.Y = sign(dir)
}

// Level resets both axes to zero.
func (s *State) Level() {
	s.o = engine.Level
}

// Next returns the held orientation.
func (s *State) Next() engine.Orientation {
	return s.o
}

// Sweep simulates a device slowly spinning on a table: alpha advances by
// Step degrees on every call and the sample is mapped through FromAngles.
type Sweep struct {
	Step  float64
	alpha float64
}

// NewSweep returns a sweep starting at alpha 0.
func NewSweep(step float64) *Sweep {
	return &Sweep{Step: step}
}

// Next advances the sweep and returns the mapped orientation.
func (s *Sweep) Next() engine.Orientation {
	o := FromAngles(Angles{Alpha: s.alpha})
	s.alpha = math.Mod(s.alpha+s.Step, 360)
	return o
}

// Fixed always returns the same orientation.
type Fixed engine.Orientation

// Next returns the fixed orientation.
func (f Fixed) Next() engine.Orientation {
	return engine.Orientation(f)
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
