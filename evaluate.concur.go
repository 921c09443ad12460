package swinv

import (
	"context"
	"fmt"

	"github.com/gosuri/uiprogress"
	"golang.org/x/sync/errgroup"
)

// Evaluate maps a global model vector (length ny*nx*nz) to the global data
// vector (length ny*nx*nper). One independent job per node, dispatched over
// a bounded worker pool; each result is placed by node index into its own
// slice of the output, never by completion order. A node failure aborts the
// whole batch: a missing node would corrupt the fixed-length concatenation.
func (fo *ForwardOperator) Evaluate(M []float64) ([]float64, error) {
	nn := fo.Nodes()
	if len(M) != nn*fo.nz {
		return nil, fmt.Errorf("swinv.Evaluate: model vector length %d, expected ny*nx*nz=%d", len(M), nn*fo.nz)
	}

	prog := uiprogress.New() // per-call instance; the package singleton cannot restart
	prog.Start()
	bar := prog.AddBar(nn).AppendCompleted().PrependElapsed()
	defer prog.Stop()

	D := make([]float64, nn*fo.nper)
	eg, ctx := errgroup.WithContext(context.Background())
	eg.SetLimit(fo.nwrkrs)
	for n := 0; n < nn; n++ {
		n := n
		m := append([]float64(nil), M[n*fo.nz:(n+1)*fo.nz]...) // node's own slice, by value
		eg.Go(func() error {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			d, err := fo.thrys[n].Forward(m)
			if err != nil {
				return fmt.Errorf("node %d (%d,%d): %v", n, n/fo.nx, n%fo.nx, err)
			}
			copy(D[n*fo.nper:(n+1)*fo.nper], d)
			bar.Incr()
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, fmt.Errorf("swinv.Evaluate: %v", err)
	}
	return D, nil
}
