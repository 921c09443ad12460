package swinv

import (
	"fmt"

	"github.com/maseology/swinv/param"
	"github.com/maseology/swinv/surf"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// A DispersionSolver converts a layered depth model into dispersion values
// along the sample axis of a curve (external physics routine).
type DispersionSolver interface {
	Disperse(ztop, vp, vs, rh []float64, c *surf.Curve) ([]float64, error)
}

// Theory is one node's forward model: the pairing of a parameterizer and a
// datacoder around the dispersion solver. Stateless; reused for every
// evaluation of its node.
type Theory struct {
	Par    param.Parameterizer
	Dc     *surf.Datacoder
	Solver DispersionSolver
}

// NewTheory deserializes a (parameterizer, datacoder) descriptor pair.
func NewTheory(parstr, dcstr string, solver DispersionSolver) (*Theory, error) {
	p, err := param.LoadString(parstr)
	if err != nil {
		return nil, fmt.Errorf("swinv.NewTheory: %v", err)
	}
	dc, err := surf.ParseDatacoder(dcstr)
	if err != nil {
		return nil, fmt.Errorf("swinv.NewTheory: %v", err)
	}
	return &Theory{Par: p, Dc: dc, Solver: solver}, nil
}

// Forward evaluates the whitened data vector for a free parameter vector m.
func (t *Theory) Forward(m []float64) ([]float64, error) {
	ztop, vp, vs, rh := t.Par.Inverse(m)
	values, err := t.Solver.Disperse(ztop, vp, vs, rh, t.Dc.Curve)
	if err != nil {
		return nil, err
	}
	return t.Dc.Encode(values)
}

// FrechetDerivatives builds the local jacobian d(data)/d(m) by forward
// finite differences, one column per free parameter, stepped by the
// parameterizer's per-type deltas.
func (t *Theory) FrechetDerivatives(m []float64) (*mat.Dense, error) {
	g0, err := t.Forward(m)
	if err != nil {
		return nil, err
	}
	deltas := t.Par.FrechetDeltas()
	fd := mat.NewDense(len(g0), len(deltas), nil)
	mj := make([]float64, len(m))
	col := make([]float64, len(g0))
	for j, dm := range deltas {
		copy(mj, m)
		mj[j] += dm
		gj, err := t.Forward(mj)
		if err != nil {
			return nil, err
		}
		floats.SubTo(col, gj, g0)
		floats.Scale(1./dm, col)
		fd.SetCol(j, col)
	}
	return fd, nil
}
