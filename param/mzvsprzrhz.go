package param

import "fmt"

// zvsprzrhz: interface depths and shear velocity free; VP from a
// depth-dependent ratio law, density from a depth law.
type zvsprzrhz struct {
	pbase
	ckeys []string
	cdel  []float64
	prz   *Relation // VP/VS=f(Z)
	rhz   *Relation // RH=f(Z)
}

// NewZVSPRzRHz builds the law-based depth+VS parameterizer with
// VP=VS*PRz(z) and RH=RHz(z).
func NewZVSPRzRHz(f *File) (Parameterizer, error) {
	n := f.Nlayer
	ckeys := zkeys(n)
	ckeys = append(ckeys, lkeys("VS", n)...)
	b, err := newBase(f, TypeZVSPRzRHz, ckeys)
	if err != nil {
		return nil, err
	}
	prz, err := NewRelation("PRz", f.Laws["PRz"], RatioLaw)
	if err != nil {
		return nil, err
	}
	rhz, err := NewRelation("RHz", f.Laws["RHz"], DensityLaw)
	if err != nil {
		return nil, err
	}
	cdel := repeat(dz, n-1)
	cdel = append(cdel, repeat(dvs, n)...)
	return &zvsprzrhz{pbase: b, ckeys: ckeys, cdel: cdel, prz: prz, rhz: rhz}, nil
}

func (p *zvsprzrhz) Keys() []string           { return p.maskKeys(p.ckeys) }
func (p *zvsprzrhz) FrechetDeltas() []float64 { return p.maskDeltas(p.cdel) }

// Forward ignores VP and RH, which are not parameters of this model.
func (p *zvsprzrhz) Forward(ztop, vp, vs, rh []float64) []float64 {
	n := p.nlayer
	full := make([]float64, 2*n-1)
	encodeDepths(full, ztop)
	copy(full[n-1:], vs)
	return p.mask(full)
}

func (p *zvsprzrhz) Inverse(m []float64) (ztop, vp, vs, rh []float64) {
	n := p.nlayer
	full := p.fill(m)
	ztop = decodeDepths(full, n)
	vs = full[n-1 : 2*n-1]
	zm := zmid(ztop)
	pr := p.prz.AtEach(zm)
	vp = make([]float64, n)
	for i := range vp {
		vp[i] = vs[i] * pr[i]
	}
	rh = p.rhz.AtEach(zm)
	return
}

// Boundaries falls back to the generic envelope; see zvsprzrhvp.
func (p *zvsprzrhz) Boundaries() *Boundaries {
	fmt.Printf(" boundaries not specialized for %s, using the generic envelope\n", TypeZVSPRzRHz)
	return genericBoundaries(p)
}
