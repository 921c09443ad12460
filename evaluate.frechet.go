package swinv

import (
	"context"
	"fmt"

	"github.com/ctessum/sparse"
	"github.com/gosuri/uiprogress"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"
)

// FrechetDerivatives assembles the global sparse jacobian G of shape
// (ny*nx*nper, ny*nx*nz). Each node's dense finite-difference block lands at
// rows [n*nper,(n+1)*nper) and columns [n*nz,(n+1)*nz); nodes are physically
// independent so G is exactly block-diagonal across nodes. Blocks are
// collected into an index-addressed buffer, then the matrix is built in one
// pass from accumulated coordinate triples.
func (fo *ForwardOperator) FrechetDerivatives(M []float64) (*sparse.SparseArray, error) {
	nn := fo.Nodes()
	if len(M) != nn*fo.nz {
		return nil, fmt.Errorf("swinv.FrechetDerivatives: model vector length %d, expected ny*nx*nz=%d", len(M), nn*fo.nz)
	}

	prog := uiprogress.New() // per-call instance; the package singleton cannot restart
	prog.Start()
	bar := prog.AddBar(nn).AppendCompleted().PrependElapsed()
	defer prog.Stop()

	fds := make([]*mat.Dense, nn)
	eg, ctx := errgroup.WithContext(context.Background())
	eg.SetLimit(fo.nwrkrs)
	for n := 0; n < nn; n++ {
		n := n
		m := append([]float64(nil), M[n*fo.nz:(n+1)*fo.nz]...)
		eg.Go(func() error {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			fd, err := fo.thrys[n].FrechetDerivatives(m)
			if err != nil {
				return fmt.Errorf("node %d (%d,%d): %v", n, n/fo.nx, n%fo.nx, err)
			}
			fds[n] = fd
			bar.Incr()
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, fmt.Errorf("swinv.FrechetDerivatives: %v", err)
	}

	// accumulate coordinate triples in node order, then fill in one pass
	rows := make([]int, 0, nn*fo.nper*fo.nz)
	cols := make([]int, 0, nn*fo.nper*fo.nz)
	dats := make([]float64, 0, nn*fo.nper*fo.nz)
	for n, fd := range fds {
		for i := 0; i < fo.nper; i++ {
			for j := 0; j < fo.nz; j++ {
				rows = append(rows, n*fo.nper+i)
				cols = append(cols, n*fo.nz+j)
				dats = append(dats, fd.At(i, j))
			}
		}
	}
	G := sparse.ZerosSparse(nn*fo.nper, nn*fo.nz)
	for k, v := range dats {
		if v != 0. {
			G.Set(v, rows[k], cols[k])
		}
	}
	return G, nil
}
