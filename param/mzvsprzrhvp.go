package param

import "fmt"

// zvsprzrhvp: interface depths and shear velocity free; VP from a
// depth-dependent ratio law, density from a velocity law.
type zvsprzrhvp struct {
	pbase
	ckeys []string
	cdel  []float64
	prz   *Relation // VP/VS=f(Z)
	rhvp  *Relation // RH=f(VP)
}

// NewZVSPRzRHvp builds the law-based depth+VS parameterizer with
// VP=VS*PRz(z) and RH=RHvp(VP).
func NewZVSPRzRHvp(f *File) (Parameterizer, error) {
	n := f.Nlayer
	ckeys := zkeys(n)
	ckeys = append(ckeys, lkeys("VS", n)...)
	b, err := newBase(f, TypeZVSPRzRHvp, ckeys)
	if err != nil {
		return nil, err
	}
	prz, err := NewRelation("PRz", f.Laws["PRz"], RatioLaw)
	if err != nil {
		return nil, err
	}
	rhvp, err := NewRelation("RHvp", f.Laws["RHvp"], DensityLaw)
	if err != nil {
		return nil, err
	}
	cdel := repeat(dz, n-1)
	cdel = append(cdel, repeat(dvs, n)...)
	return &zvsprzrhvp{pbase: b, ckeys: ckeys, cdel: cdel, prz: prz, rhvp: rhvp}, nil
}

func (p *zvsprzrhvp) Keys() []string           { return p.maskKeys(p.ckeys) }
func (p *zvsprzrhvp) FrechetDeltas() []float64 { return p.maskDeltas(p.cdel) }

// Forward ignores VP and RH, which are not parameters of this model.
func (p *zvsprzrhvp) Forward(ztop, vp, vs, rh []float64) []float64 {
	n := p.nlayer
	full := make([]float64, 2*n-1)
	encodeDepths(full, ztop)
	copy(full[n-1:], vs)
	return p.mask(full)
}

func (p *zvsprzrhvp) Inverse(m []float64) (ztop, vp, vs, rh []float64) {
	n := p.nlayer
	full := p.fill(m)
	ztop = decodeDepths(full, n)
	vs = full[n-1 : 2*n-1]
	pr := p.prz.AtEach(zmid(ztop))
	vp = make([]float64, n)
	for i := range vp {
		vp[i] = vs[i] * pr[i]
	}
	rh = p.rhvp.AtEach(vp)
	return
}

// Boundaries falls back to the generic envelope: the depth-dependent laws
// are not propagated through the reinterpolation, which makes the result a
// known approximation for this variant.
func (p *zvsprzrhvp) Boundaries() *Boundaries {
	fmt.Printf(" boundaries not specialized for %s, using the generic envelope\n", TypeZVSPRzRHvp)
	return genericBoundaries(p)
}
