package vm

import (
	"context"
	"fmt"

	"github.com/npillmayer/arithm"
	"golang.org/x/sync/errgroup"
)

// Sample runs prog at steps+1 equidistant points from `from` to `to`,
// inclusive, and returns the points (t, f(t)) in ascending order of t.
// The work is split among a number of worker goroutines. If ctx is cancelled,
// Sample stops early and returns the context's error.
func Sample(ctx context.Context, prog *Program, from, to float64, steps, workers int) ([]arithm.Pair, error) {
	if prog == nil {
		return nil, ErrNoProgramToExecute
	}
	if steps < 1 {
		return nil, fmt.Errorf("cannot sample with %d steps", steps)
	}
	if workers < 1 {
		return nil, fmt.Errorf("cannot sample with %d workers", workers)
	}
	n := steps + 1
	if workers > n {
		workers = n
	}
	points := make([]arithm.Pair, n)
	delta := (to - from) / float64(steps)
	egroup, ctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		w := w
		egroup.Go(func() error {
			stack := make([]float64, prog.depth)
			// worker w computes every workers-th point
			for i := w; i < n; i += workers {
				if err := ctx.Err(); err != nil {
					return err
				}
				t := from + float64(i)*delta
				if i == steps {
					t = to
				}
				points[i] = arithm.P(t, prog.exec(t, stack))
			}
			return nil
		})
	}
	if err := egroup.Wait(); err != nil {
		tracer().Infof("sampling %s cancelled: %v", prog.source, err)
		return nil, err
	}
	tracer().Debugf("sampled %s at %d points with %d workers", prog.source, n, workers)
	return points, nil
}
