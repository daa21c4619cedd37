package patterns

import (
	"testing"

	"github.com/vovakirdan/tui-drift/internal/grid"
	"github.com/vovakirdan/tui-drift/internal/registry"
)

func newGrid(t *testing.T, rows, columns int) *grid.Grid {
	t.Helper()
	g, err := grid.New(rows, columns)
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func TestBuiltinsRegistered(t *testing.T) {
	for _, id := range []string{"center", "scatter", "rain", "column"} {
		if !registry.Exists(id) {
			t.Errorf("pattern %q not registered", id)
		}
	}
}

func TestCenter(t *testing.T) {
	tests := []struct {
		rows, columns int
		row, col      int
	}{
		{16, 9, 8, 4}, // the default canvas
		{3, 3, 1, 1},
		{1, 1, 0, 0},
		{4, 6, 2, 3},
	}

	for _, tc := range tests {
		g := newGrid(t, tc.rows, tc.columns)
		if err := Apply("center", g, 0, 0); err != nil {
			t.Fatal(err)
		}
		if g.Count() != 1 || !g.Get(tc.row, tc.col) {
			t.Errorf("%dx%d: center seeded\n%s\nexpected (%d,%d)", tc.rows, tc.columns, g, tc.row, tc.col)
		}
	}
}

func TestScatterDeterministic(t *testing.T) {
	a := newGrid(t, 20, 20)
	b := newGrid(t, 20, 20)
	if err := Apply("scatter", a, 42, 0.3); err != nil {
		t.Fatal(err)
	}
	if err := Apply("scatter", b, 42, 0.3); err != nil {
		t.Fatal(err)
	}
	if !a.Equal(b) {
		t.Error("scatter with the same seed should produce the same grid")
	}

	// 400 cells at 30% should land well away from the extremes
	if n := a.Count(); n < 60 || n > 180 {
		t.Errorf("scatter density 0.3 produced %d of 400 cells", n)
	}

	empty := newGrid(t, 10, 10)
	_ = Apply("scatter", empty, 1, 0)
	if empty.Count() != 0 {
		t.Errorf("density 0 produced %d cells", empty.Count())
	}

	full := newGrid(t, 10, 10)
	_ = Apply("scatter", full, 1, 1)
	if full.Count() != 100 {
		t.Errorf("density 1 produced %d cells", full.Count())
	}
}

func TestRainAndColumn(t *testing.T) {
	g := newGrid(t, 5, 7)
	if err := Apply("rain", g, 0, 0); err != nil {
		t.Fatal(err)
	}
	if g.Count() != 7 {
		t.Errorf("rain Count() = %d, expected 7", g.Count())
	}
	for c := 0; c < 7; c++ {
		if !g.Get(0, c) {
			t.Errorf("rain missing (0,%d)", c)
		}
	}

	g = newGrid(t, 5, 7)
	if err := Apply("column", g, 0, 0); err != nil {
		t.Fatal(err)
	}
	if g.Count() != 5 {
		t.Errorf("column Count() = %d, expected 5", g.Count())
	}
	for r := 0; r < 5; r++ {
		if !g.Get(r, 3) {
			t.Errorf("column missing (%d,3)", r)
		}
	}
}

func TestApplyErrors(t *testing.T) {
	g := newGrid(t, 3, 3)
	if err := Apply("nope", g, 0, 0); err == nil {
		t.Error("unknown pattern should fail")
	}
	if err := Apply("scatter", g, 0, 1.5); err == nil {
		t.Error("density above 1 should fail")
	}
}
