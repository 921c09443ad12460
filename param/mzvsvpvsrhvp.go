package param

import "math"

// zvsvpvsrhvp: interface depths and shear velocity free; VP from a velocity
// law of VS, density from a velocity law of VP. This is the variant used for
// node-wise theory operators built around a pointwise prior.
type zvsvpvsrhvp struct {
	pbase
	ckeys []string
	cdel  []float64
	vpvs  *Relation // VP=f(VS)
	rhvp  *Relation // RH=f(VP)
}

// NewZVSVPvsRHvp builds the law-based depth+VS parameterizer with
// VP=VPvs(VS) and RH=RHvp(VP).
func NewZVSVPvsRHvp(f *File) (Parameterizer, error) {
	n := f.Nlayer
	ckeys := zkeys(n)
	ckeys = append(ckeys, lkeys("VS", n)...)
	b, err := newBase(f, TypeZVSVPvsRHvp, ckeys)
	if err != nil {
		return nil, err
	}
	vpvs, err := NewRelation("VPvs", f.Laws["VPvs"], VelocityLaw)
	if err != nil {
		return nil, err
	}
	rhvp, err := NewRelation("RHvp", f.Laws["RHvp"], DensityLaw)
	if err != nil {
		return nil, err
	}
	cdel := repeat(dz, n-1)
	cdel = append(cdel, repeat(dvs, n)...)
	return &zvsvpvsrhvp{pbase: b, ckeys: ckeys, cdel: cdel, vpvs: vpvs, rhvp: rhvp}, nil
}

func (p *zvsvpvsrhvp) Keys() []string           { return p.maskKeys(p.ckeys) }
func (p *zvsvpvsrhvp) FrechetDeltas() []float64 { return p.maskDeltas(p.cdel) }

// Forward ignores VP and RH, which are not parameters of this model.
func (p *zvsvpvsrhvp) Forward(ztop, vp, vs, rh []float64) []float64 {
	n := p.nlayer
	full := make([]float64, 2*n-1)
	encodeDepths(full, ztop)
	copy(full[n-1:], vs)
	return p.mask(full)
}

func (p *zvsvpvsrhvp) Inverse(m []float64) (ztop, vp, vs, rh []float64) {
	n := p.nlayer
	full := p.fill(m)
	ztop = decodeDepths(full, n)
	vs = full[n-1 : 2*n-1]
	vp = p.vpvs.AtEach(vs)
	rh = p.rhvp.AtEach(vp)
	return
}

// Boundaries propagates the laws through the envelope: the VS envelopes are
// built first, then VPvs/RHvp are applied to each envelope independently,
// which is exact for monotonic laws.
func (p *zvsvpvsrhvp) Boundaries() *Boundaries {
	ztopSup, _, vsLow, _ := p.Inverse(p.minf)
	ztopInf, _, vsHgh, _ := p.Inverse(p.msup)
	z := mergeDepths(ztopInf, ztopSup)

	b := Boundaries{
		VsLow:  stairsExtreme(z, ztopInf, ztopSup, vsLow, math.Min),
		VsHigh: stairsExtreme(z, ztopInf, ztopSup, vsHgh, math.Max),
	}
	b.VpLow = Profile{Z: z, V: p.vpvs.AtEach(b.VsLow.V)}
	b.VpHigh = Profile{Z: z, V: p.vpvs.AtEach(b.VsHigh.V)}
	// cross recombination: the law's implied ratio falls as VS rises, so the
	// same-envelope ratio would not bracket the mean
	b.PrLow = ratioProfile(b.VpLow, b.VsHigh)
	b.PrHigh = ratioProfile(b.VpHigh, b.VsLow)
	b.RhLow = Profile{Z: z, V: p.rhvp.AtEach(b.VpLow.V)}
	b.RhHigh = Profile{Z: z, V: p.rhvp.AtEach(b.VpHigh.V)}
	return &b
}
