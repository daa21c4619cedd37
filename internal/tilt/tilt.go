// Package tilt turns raw orientation input into the discrete vector the
// engine consumes. Device angles, held keys and an automatic sweep are all
// orientation sources.
package tilt

import (
	"math"

	"github.com/vovakirdan/tui-drift/internal/engine"
)

// Angles is a device orientation sample in degrees, using the usual
// alpha (compass), beta (front/back) and gamma (left/right) convention.
type Angles struct {
	Alpha float64
	Beta  float64
	Gamma float64
}

// Heading collapses a sample into a single screen heading in [0, 360).
func (a Angles) Heading() float64 {
	angle := -(a.Alpha + a.Beta*a.Gamma/90)
	angle -= math.Floor(angle/360) * 360
	return angle
}

// FromAngles maps a sample onto an orientation with both axes non-zero.
// Headings in [270, 360) or [0, 90] pull toward higher rows; headings in
// [180, 360) pull toward higher columns.
func FromAngles(a Angles) engine.Orientation {
	h := a.Heading()

	o := engine.Orientation{X: -1, Y: -1}
	if h >= 270 || h <= 90 {
		o.Y = 1
	}
	if h >= 180 && h <= 360 {
		o.X = 1
	}
	return o
}

// Mapper maps samples with an optional dead zone. When both beta and gamma
// are within DeadZone degrees of flat the device is treated as level and
// the zero vector is returned; this only suits the clamp policy.
type Mapper struct {
	DeadZone float64
}

// Map converts a sample to an orientation.
func (m Mapper) Map(a Angles) engine.Orientation {
	if m.DeadZone > 0 && math.Abs(a.Beta) < m.DeadZone && math.Abs(a.Gamma) < m.DeadZone {
		return engine.Level
	}
	return FromAngles(a)
}
