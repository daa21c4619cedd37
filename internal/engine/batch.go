package engine

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/tui-drift/internal/grid"
)

// StepAll steps independent grids concurrently with the same orientation.
// The result at index i is the next state of grids[i]. Grids must not alias
// each other. The first error cancels the remaining work.
func (e *Engine) StepAll(ctx context.Context, grids []*grid.Grid, o Orientation) ([]*grid.Grid, error) {
	if err := e.Accepts(o); err != nil {
		return nil, err
	}

	out := make([]*grid.Grid, len(grids))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, cur := range grids {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			next, err := e.Step(cur, o)
			if err != nil {
				return err
			}
			out[i] = next
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
