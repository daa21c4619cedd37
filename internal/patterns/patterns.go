// Package patterns holds the built-in seed patterns. Importing it registers
// them with the registry.
package patterns

import (
	"fmt"
	"math/rand/v2"

	"github.com/vovakirdan/tui-drift/internal/grid"
	"github.com/vovakirdan/tui-drift/internal/registry"
)

func init() {
	registry.Register("center", func() registry.Pattern { return Center{} })
	registry.Register("scatter", func() registry.Pattern { return Scatter{} })
	registry.Register("rain", func() registry.Pattern { return Rain{} })
	registry.Register("column", func() registry.Pattern { return Column{} })
}

// NewRNG returns a deterministic generator for the given seed.
func NewRNG(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), 0))
}

// Apply looks up a pattern by ID and seeds g with it.
func Apply(id string, g *grid.Grid, seed int64, density float64) error {
	p, err := registry.Create(id)
	if err != nil {
		return err
	}
	if density < 0 || density > 1 {
		return fmt.Errorf("patterns: density %v outside [0, 1]", density)
	}
	p.Seed(g, NewRNG(seed), density)
	return nil
}

// Center places a single particle in the middle of the grid.
type Center struct{}

func (Center) ID() string    { return "center" }
func (Center) Title() string { return "Single particle in the centre" }

func (Center) Seed(g *grid.Grid, _ *rand.Rand, _ float64) {
	g.Set(g.Rows()/2, g.Columns()/2, true)
}

// Scatter fills each cell independently with probability density.
type Scatter struct{}

func (Scatter) ID() string    { return "scatter" }
func (Scatter) Title() string { return "Random sparse fill" }

func (Scatter) Seed(g *grid.Grid, rng *rand.Rand, density float64) {
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Columns(); c++ {
			if rng.Float64() < density {
				g.Set(r, c, true)
			}
		}
	}
}

// Rain fills the top row.
type Rain struct{}

func (Rain) ID() string    { return "rain" }
func (Rain) Title() string { return "Full top row" }

func (Rain) Seed(g *grid.Grid, _ *rand.Rand, _ float64) {
	for c := 0; c < g.Columns(); c++ {
		g.Set(0, c, true)
	}
}

// Column fills the middle column.
type Column struct{}

func (Column) ID() string    { return "column" }
func (Column) Title() string { return "Full middle column" }

func (Column) Seed(g *grid.Grid, _ *rand.Rand, _ float64) {
	mid := g.Columns() / 2
	for r := 0; r < g.Rows(); r++ {
		g.Set(r, mid, true)
	}
}
