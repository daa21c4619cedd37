// Package engine implements the directional stepping rule that drifts
// particles across a grid.
//
// A step scans live cells in row-major order and claims destinations in a
// next grid that is built incrementally, so earlier cells win contested
// destinations. A destination outside the grid never wraps: the particle
// simply does not move on that axis.
package engine

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/vovakirdan/tui-drift/internal/grid"
)

// Errors re-exported so callers of the engine need not import grid.
var (
	ErrInvalidDimension = grid.ErrInvalidDimension
	ErrInvalidArgument  = grid.ErrInvalidArgument
)

// EdgePolicy selects how a particle behaves against the horizontal boundary
// it is travelling toward.
type EdgePolicy string

const (
	// PolicyClamp applies the general per-axis rule everywhere. Level axes
	// (0) are allowed.
	PolicyClamp EdgePolicy = "clamp"

	// PolicyRail treats the boundary column in the direction of horizontal
	// travel as a rail: a particle on it only tries to move vertically.
	// Both orientation components must be non-zero.
	PolicyRail EdgePolicy = "rail"
)

// Policies lists the supported edge policies.
func Policies() []EdgePolicy {
	return []EdgePolicy{PolicyClamp, PolicyRail}
}

// ParsePolicy converts a policy name into an EdgePolicy.
func ParsePolicy(s string) (EdgePolicy, error) {
	switch EdgePolicy(s) {
	case PolicyClamp:
		return PolicyClamp, nil
	case PolicyRail:
		return PolicyRail, nil
	default:
		return "", errors.Wrapf(ErrInvalidArgument, "engine: unknown edge policy %q, want one of %v", s, Policies())
	}
}

// Engine advances grids. It holds no state between steps, so a single
// Engine may be shared by goroutines stepping independent grids.
type Engine struct {
	policy EdgePolicy
}

// New returns an engine using the given edge policy.
func New(policy EdgePolicy) (*Engine, error) {
	if _, err := ParsePolicy(string(policy)); err != nil {
		return nil, err
	}
	return &Engine{policy: policy}, nil
}

// Policy returns the engine's edge policy.
func (e *Engine) Policy() EdgePolicy {
	return e.policy
}

// Accepts validates an orientation against the engine's policy.
func (e *Engine) Accepts(o Orientation) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if e.policy == PolicyRail && (o.X == 0 || o.Y == 0) {
		return errors.Wrapf(ErrInvalidArgument, "engine: rail policy needs non-zero axes, got %s", o)
	}
	return nil
}

// Step returns the next state of cur under orientation o. cur is not
// modified; the returned grid is fully built before it is returned.
func (e *Engine) Step(cur *grid.Grid, o Orientation) (*grid.Grid, error) {
	if err := cur.Validate(); err != nil {
		return nil, err
	}
	if err := e.Accepts(o); err != nil {
		return nil, err
	}

	next, err := grid.New(cur.Rows(), cur.Columns())
	if err != nil {
		return nil, err
	}

	cur.Each(func(row, col int) {
		r, c := e.destination(cur, next, row, col, o)
		next.Set(r, c, true)
	})

	return next, nil
}

// MustStep is like Step but panics on invalid input. Use it only where the
// grid and orientation have already been validated.
func (e *Engine) MustStep(cur *grid.Grid, o Orientation) *grid.Grid {
	next, err := e.Step(cur, o)
	if err != nil {
		panic(fmt.Sprintf("engine: %v", err))
	}
	return next
}

// destination resolves where the particle at (row, col) ends up.
// A cell counts as occupied if it is alive in cur or already claimed in next.
func (e *Engine) destination(cur, next *grid.Grid, row, col int, o Orientation) (int, int) {
	occupied := func(r, c int) bool {
		return cur.Get(r, c) || next.Get(r, c)
	}

	if e.policy == PolicyRail && !cur.InBounds(row, col+o.X) {
		r := row + o.Y
		if cur.InBounds(r, col) && !occupied(r, col) {
			return r, col
		}
		return row, col
	}

	destRow, destCol := row, col
	if o.Y != 0 && cur.InBounds(row+o.Y, col) {
		destRow = row + o.Y
	}
	if o.X != 0 && cur.InBounds(row, col+o.X) {
		destCol = col + o.X
	}

	// Vertical first: the single-axis vertical target decides whether the
	// particle may leave its row at all.
	if destRow != row && occupied(destRow, col) {
		destRow = row
	}

	if destCol != col && occupied(destRow, destCol) {
		destCol = col
	}

	return destRow, destCol
}
