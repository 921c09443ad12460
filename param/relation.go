package param

import (
	"fmt"

	"github.com/traefik/yaegi/interp"
	"github.com/traefik/yaegi/stdlib"
)

// RelationKind fixes the reference input and sanity bounds applied when a
// relation is compiled.
type RelationKind int

const (
	VelocityLaw RelationKind = iota // e.g. VP=f(VS); must return strictly positive values
	DensityLaw                      // e.g. RH=f(VP); must return values >= 1
	RatioLaw                        // e.g. VP/VS=f(Z); must return strictly positive values
)

// Relation is a named empirical scalar law compiled from a serialized Go
// function literal, used to eliminate free parameters (e.g. density as a
// function of velocity). Compilation validates that the expression is a
// single-valued func(float64) float64 and that it returns a physically sane
// value for a canonical reference input.
type Relation struct {
	Name string
	Expr string
	fn   func(float64) float64
}

// NewRelation compiles and validates a scalar law.
func NewRelation(name, expr string, kind RelationKind) (*Relation, error) {
	i := interp.New(interp.Options{})
	if err := i.Use(stdlib.Symbols); err != nil {
		return nil, fmt.Errorf("relation %s: %v", name, err)
	}
	// bind the literal to a name; a bare literal evaluates to *interface{}
	v, err := i.Eval("f := " + expr + "; f")
	if err != nil {
		return nil, fmt.Errorf("could not execute %s: %v", name, err)
	}
	fn, ok := v.Interface().(func(float64) float64)
	if !ok {
		return nil, fmt.Errorf("relation %s must be a func(float64) float64, got %T", name, v.Interface())
	}
	r := &Relation{Name: name, Expr: expr, fn: fn}

	y, err := r.tryAt(referenceInput)
	if err != nil {
		return nil, fmt.Errorf("could not execute %s: %v", name, err)
	}
	switch kind {
	case VelocityLaw, RatioLaw:
		if !(y > 0.) {
			return nil, fmt.Errorf("relation %s must return positive numbers (got %g)", name, y)
		}
	case DensityLaw:
		if !(y >= 1.) {
			return nil, fmt.Errorf("relation %s must return numbers >= 1 (got %g)", name, y)
		}
	}
	return r, nil
}

const referenceInput = 1.0

// tryAt evaluates the law, converting any panic raised by the interpreted
// expression into an error.
func (r *Relation) tryAt(x float64) (y float64, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("%v", p)
		}
	}()
	return r.fn(x), nil
}

// At evaluates the law at a single input.
func (r *Relation) At(x float64) float64 { return r.fn(x) }

// AtEach evaluates the law element-wise, returning a slice of identical shape.
func (r *Relation) AtEach(xs []float64) []float64 {
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = r.fn(x)
	}
	return ys
}
