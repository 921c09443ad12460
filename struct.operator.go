package swinv

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// ForwardOperator stitches the independent node theories into one global
// nonlinear operator: a global model vector (all nodes' parameters, row-major
// over grid cells (y,x)) maps to a global data vector (all nodes' dispersion
// samples) and, on request, to a global block-diagonal sparse jacobian.
// Node index n corresponds to grid cell (n/nx, n%nx) everywhere; this
// ordering is load-bearing for concatenation and block placement.
type ForwardOperator struct {
	thrys            []*Theory
	ny, nx, nz, nper int
	nwrkrs           int
}

// NewForwardOperator deserializes the per-node descriptor pairs (row-major
// node order) into theories, in parallel, preserving order. Each node's
// free-parameter count must equal nz and its sample count nper.
func NewForwardOperator(parstrs, dcstrs []string, ny, nx, nz, nper int, solver DispersionSolver, nwrkrs int) (*ForwardOperator, error) {
	nn := ny * nx
	if len(parstrs) != nn || len(dcstrs) != nn {
		return nil, fmt.Errorf("swinv.NewForwardOperator: %d nodes declared, %d parameterizer and %d datacoder strings", nn, len(parstrs), len(dcstrs))
	}
	if nwrkrs <= 0 {
		nwrkrs = runtime.GOMAXPROCS(0)
	}

	fo := ForwardOperator{
		thrys:  make([]*Theory, nn),
		ny:     ny,
		nx:     nx,
		nz:     nz,
		nper:   nper,
		nwrkrs: nwrkrs,
	}
	eg, ctx := errgroup.WithContext(context.Background())
	eg.SetLimit(nwrkrs)
	for n := 0; n < nn; n++ {
		n := n
		eg.Go(func() error {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			t, err := NewTheory(parstrs[n], dcstrs[n], solver)
			if err != nil {
				return fmt.Errorf("node %d (%d,%d): %v", n, n/nx, n%nx, err)
			}
			if np := len(t.Par.Mmean()); np != nz {
				return fmt.Errorf("node %d (%d,%d): %d free parameters, expected nz=%d", n, n/nx, n%nx, np, nz)
			}
			if t.Dc.N() != nper {
				return fmt.Errorf("node %d (%d,%d): %d data samples, expected nper=%d", n, n/nx, n%nx, t.Dc.N(), nper)
			}
			fo.thrys[n] = t
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, fmt.Errorf("swinv.NewForwardOperator: %v", err)
	}
	return &fo, nil
}

// Nodes is the node count ny*nx.
func (fo *ForwardOperator) Nodes() int { return fo.ny * fo.nx }

// Theory returns node n's forward model.
func (fo *ForwardOperator) Theory(n int) *Theory { return fo.thrys[n] }

// Dims returns (ny, nx, nz, nper).
func (fo *ForwardOperator) Dims() (ny, nx, nz, nper int) { return fo.ny, fo.nx, fo.nz, fo.nper }
