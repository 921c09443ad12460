package swinv

import (
	"fmt"
	"math"

	"github.com/maseology/swinv/surf"
)

// DatacoderStrings builds one serialized datacoder per node, in row-major
// node order: a fundamental-mode rayleigh phase-velocity curve over the
// domain's period axis with the node's observed values and uncertainties.
func (d *Domain) DatacoderStrings() ([]string, error) {
	nn := d.Nodes()
	strs := make([]string, nn)
	for n := 0; n < nn; n++ {
		v := d.Phasevel[n*d.Nper : (n+1)*d.Nper]
		dv := d.Phunc[n*d.Nper : (n+1)*d.Nper]
		c := surf.NewCurve("R", "C", 0, d.Periods, v, dv)
		if _, err := surf.NewDatacoder(c); err != nil {
			iy, jx := d.NodeCell(n)
			return nil, fmt.Errorf("swinv.DatacoderStrings: node %d (%d,%d): %v", n, iy, jx, err)
		}
		strs[n] = c.String()
	}
	return strs, nil
}

// Target concatenates the whitened observed data and its uncertainty in node
// order: Dobs of length ny*nx*nper and Dunc = CDinv^-1/2.
func (d *Domain) Target() (dobs, dunc []float64, err error) {
	strs, err := d.DatacoderStrings()
	if err != nil {
		return nil, nil, err
	}
	dobs = make([]float64, 0, d.Nodes()*d.Nper)
	dunc = make([]float64, 0, d.Nodes()*d.Nper)
	for _, s := range strs {
		dc, err := surf.ParseDatacoder(s)
		if err != nil {
			return nil, nil, fmt.Errorf("swinv.Target: %v", err)
		}
		db, cdinv := dc.Target()
		dobs = append(dobs, db...)
		for _, ci := range cdinv {
			dunc = append(dunc, 1./math.Sqrt(ci))
		}
	}
	return dobs, dunc, nil
}
