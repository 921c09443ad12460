package surf

import (
	"fmt"
	"math"
)

// Datacoder converts physical dispersion values to and from the whitened
// numerical representation used by the solver and the differentiation
// routine. Encoding is lognormal: d = ln(v), with the data covariance
// derived from the relative uncertainties.
type Datacoder struct {
	*Curve
}

// NewDatacoder wraps a curve, requiring strictly positive values and
// uncertainties so the log transform is defined.
func NewDatacoder(c *Curve) (*Datacoder, error) {
	for i, v := range c.Value {
		if !(v > 0.) {
			return nil, fmt.Errorf("surf.NewDatacoder: non-positive value %g at sample %d", v, i)
		}
		if !(c.Dvalue[i] > 0.) {
			return nil, fmt.Errorf("surf.NewDatacoder: non-positive uncertainty %g at sample %d", c.Dvalue[i], i)
		}
	}
	return &Datacoder{Curve: c}, nil
}

// ParseDatacoder deserializes a datacoder descriptor string.
func ParseDatacoder(s string) (*Datacoder, error) {
	c, err := ParseCurve(s)
	if err != nil {
		return nil, err
	}
	return NewDatacoder(c)
}

// Encode whitens physical values into the data vector. Non-positive values
// have no log transform and are rejected rather than propagated as NaN.
func (dc *Datacoder) Encode(values []float64) ([]float64, error) {
	d := make([]float64, len(values))
	for i, v := range values {
		if !(v > 0.) {
			return nil, fmt.Errorf("surf.Encode: non-positive value %g at sample %d", v, i)
		}
		d[i] = math.Log(v)
	}
	return d, nil
}

// Decode recovers physical values from a data vector.
func (dc *Datacoder) Decode(d []float64) []float64 {
	v := make([]float64, len(d))
	for i, di := range d {
		v[i] = math.Exp(di)
	}
	return v
}

// Target returns the whitened observed data and the diagonal of the inverse
// data covariance, CDinv = (v/dv)^2 under the lognormal transform.
func (dc *Datacoder) Target() (dobs, cdinv []float64) {
	dobs, _ = dc.Encode(dc.Value) // values validated at construction
	cdinv = make([]float64, len(dc.Value))
	for i := range dc.Value {
		s := dc.Dvalue[i] / dc.Value[i]
		cdinv[i] = 1. / (s * s)
	}
	return
}
