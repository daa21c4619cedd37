package engine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Orientation is the direction particles prefer to move along each axis
// during one step. X moves toward higher columns when positive, Y moves
// toward higher rows when positive. Each component is -1, 0 or 1.
type Orientation struct {
	X int
	Y int
}

// Level is the orientation with no preferred movement on either axis.
var Level = Orientation{}

// Validate checks that both components are in {-1, 0, 1}.
func (o Orientation) Validate() error {
	if !unit(o.X) || !unit(o.Y) {
		return errors.Wrapf(ErrInvalidArgument, "engine: orientation %s out of range", o)
	}
	return nil
}

// IsLevel reports whether both axes are zero.
func (o Orientation) IsLevel() bool {
	return o.X == 0 && o.Y == 0
}

// String returns a compact representation such as "(x=1,y=-1)".
func (o Orientation) String() string {
	return fmt.Sprintf("(x=%d,y=%d)", o.X, o.Y)
}

// ParseOrientation parses "x,y", for example "1,-1" or "0,1".
func ParseOrientation(s string) (Orientation, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return Orientation{}, errors.Wrapf(ErrInvalidArgument, "engine: orientation %q: want x,y", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return Orientation{}, errors.Wrapf(ErrInvalidArgument, "engine: orientation %q: bad x", s)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return Orientation{}, errors.Wrapf(ErrInvalidArgument, "engine: orientation %q: bad y", s)
	}
	o := Orientation{X: x, Y: y}
	if err := o.Validate(); err != nil {
		return Orientation{}, err
	}
	return o, nil
}

func unit(v int) bool {
	return v >= -1 && v <= 1
}
