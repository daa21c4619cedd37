// Package grid holds the rectangular alive/dead cell state that the drift
// engine advances. It has no knowledge of movement rules.
package grid

import (
	"strings"

	"github.com/pkg/errors"
)

// Error taxonomy shared with the engine package.
var (
	// ErrInvalidDimension is returned when rows or columns are not positive.
	ErrInvalidDimension = errors.New("invalid dimension")
	// ErrInvalidArgument is returned for malformed input such as ragged rows.
	ErrInvalidArgument = errors.New("invalid argument")
)

// Grid is a rows x columns board of particles.
// cells[r][c] == true means a particle occupies that cell.
type Grid struct {
	rows    int
	columns int
	cells   [][]bool
}

// New allocates an all-dead grid.
func New(rows, columns int) (*Grid, error) {
	if rows <= 0 || columns <= 0 {
		return nil, errors.Wrapf(ErrInvalidDimension, "grid: rows=%d columns=%d", rows, columns)
	}
	cells := make([][]bool, rows)
	for r := range cells {
		cells[r] = make([]bool, columns)
	}
	return &Grid{rows: rows, columns: columns, cells: cells}, nil
}

// FromRows builds a grid from an existing cell matrix. The matrix is copied.
// Every row must have the same, non-zero length.
func FromRows(cells [][]bool) (*Grid, error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, errors.Wrap(ErrInvalidDimension, "grid: empty cell matrix")
	}
	g, err := New(len(cells), len(cells[0]))
	if err != nil {
		return nil, err
	}
	for r, row := range cells {
		if len(row) != g.columns {
			return nil, errors.Wrapf(ErrInvalidArgument,
				"grid: row %d has %d columns, want %d", r, len(row), g.columns)
		}
		copy(g.cells[r], row)
	}
	return g, nil
}

// Parse builds a grid from a picture: one line per row, '#' or 'o' for a
// particle and '.' for an empty cell. Surrounding whitespace and blank lines
// are ignored.
func Parse(s string) (*Grid, error) {
	var cells [][]bool
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		row := make([]bool, 0, len(line))
		for _, ch := range line {
			switch ch {
			case '#', 'o':
				row = append(row, true)
			case '.':
				row = append(row, false)
			default:
				return nil, errors.Wrapf(ErrInvalidArgument, "grid: row %d: unexpected %q", len(cells), ch)
			}
		}
		cells = append(cells, row)
	}
	return FromRows(cells)
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Columns returns the number of columns.
func (g *Grid) Columns() int { return g.columns }

// InBounds reports whether (row, col) lies inside the grid.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.columns
}

// Get returns the state of a cell. Out-of-bounds cells read as dead.
func (g *Grid) Get(row, col int) bool {
	if !g.InBounds(row, col) {
		return false
	}
	return g.cells[row][col]
}

// Set changes the state of a cell. Out-of-bounds writes are ignored.
func (g *Grid) Set(row, col int, alive bool) {
	if !g.InBounds(row, col) {
		return
	}
	g.cells[row][col] = alive
}

// Count returns the number of live cells.
func (g *Grid) Count() int {
	n := 0
	for _, row := range g.cells {
		for _, alive := range row {
			if alive {
				n++
			}
		}
	}
	return n
}

// Resize returns a fresh all-dead grid with the new dimensions.
// Prior occupancy is not preserved.
func (g *Grid) Resize(rows, columns int) (*Grid, error) {
	return New(rows, columns)
}

// Clear kills every cell in place.
func (g *Grid) Clear() {
	for r := range g.cells {
		clear(g.cells[r])
	}
}

// Validate checks the rectangular invariant. A grid built through this
// package always passes; the check guards zero values and hand-built grids.
func (g *Grid) Validate() error {
	if g == nil {
		return errors.Wrap(ErrInvalidArgument, "grid: nil grid")
	}
	if g.rows <= 0 || g.columns <= 0 {
		return errors.Wrapf(ErrInvalidDimension, "grid: rows=%d columns=%d", g.rows, g.columns)
	}
	if len(g.cells) != g.rows {
		return errors.Wrapf(ErrInvalidArgument, "grid: %d rows stored, want %d", len(g.cells), g.rows)
	}
	for r, row := range g.cells {
		if len(row) != g.columns {
			return errors.Wrapf(ErrInvalidArgument,
				"grid: row %d has %d columns, want %d", r, len(row), g.columns)
		}
	}
	return nil
}

// Clone returns a deep copy.
func (g *Grid) Clone() *Grid {
	cells := make([][]bool, g.rows)
	for r := range cells {
		cells[r] = make([]bool, g.columns)
		copy(cells[r], g.cells[r])
	}
	return &Grid{rows: g.rows, columns: g.columns, cells: cells}
}

// Equal reports whether two grids have the same dimensions and occupancy.
func (g *Grid) Equal(other *Grid) bool {
	if g.rows != other.rows || g.columns != other.columns {
		return false
	}
	for r := range g.cells {
		for c := range g.cells[r] {
			if g.cells[r][c] != other.cells[r][c] {
				return false
			}
		}
	}
	return true
}

// Each calls fn for every live cell in row-major order.
func (g *Grid) Each(fn func(row, col int)) {
	for r, row := range g.cells {
		for c, alive := range row {
			if alive {
				fn(r, c)
			}
		}
	}
}

// String renders the grid with '#' for particles and '.' for empty cells.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.rows * (g.columns + 1))
	for r, row := range g.cells {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for _, alive := range row {
			if alive {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
	}
	return sb.String()
}
