package param

import "math"

// zvsprrh: interface depths, shear velocity, VP/VS ratio and density are all
// free per layer.
type zvsprrh struct {
	pbase
	ckeys []string
	cdel  []float64
}

// NewZVSPRRH builds the fully-free depth+VS+ratio+density parameterizer.
func NewZVSPRRH(f *File) (Parameterizer, error) {
	n := f.Nlayer
	ckeys := zkeys(n)
	ckeys = append(ckeys, lkeys("VS", n)...)
	ckeys = append(ckeys, lkeys("PR", n)...)
	ckeys = append(ckeys, lkeys("RH", n)...)
	b, err := newBase(f, TypeZVSPRRH, ckeys)
	if err != nil {
		return nil, err
	}
	cdel := repeat(dz, n-1)
	cdel = append(cdel, repeat(dvs, n)...)
	cdel = append(cdel, repeat(dpr, n)...)
	cdel = append(cdel, repeat(drh, n)...)
	return &zvsprrh{pbase: b, ckeys: ckeys, cdel: cdel}, nil
}

func (p *zvsprrh) Keys() []string           { return p.maskKeys(p.ckeys) }
func (p *zvsprrh) FrechetDeltas() []float64 { return p.maskDeltas(p.cdel) }

func (p *zvsprrh) Forward(ztop, vp, vs, rh []float64) []float64 {
	n := p.nlayer
	full := make([]float64, 4*n-1)
	encodeDepths(full, ztop)
	for i := 0; i < n; i++ {
		full[n-1+i] = vs[i]
		full[2*n-1+i] = vp[i] / vs[i]
		full[3*n-1+i] = rh[i]
	}
	return p.mask(full)
}

func (p *zvsprrh) Inverse(m []float64) (ztop, vp, vs, rh []float64) {
	n := p.nlayer
	full := p.fill(m)
	ztop = decodeDepths(full, n)
	vs = full[n-1 : 2*n-1]
	pr := full[2*n-1 : 3*n-1]
	rh = full[3*n-1 : 4*n-1]
	vp = make([]float64, n)
	for i := range vp {
		vp[i] = pr[i] * vs[i]
	}
	return
}

// Boundaries reinterpolates the ratio directly since it is a free quantity
// here; VP envelopes are then recombined from the ratio and VS envelopes.
func (p *zvsprrh) Boundaries() *Boundaries {
	ztopSup, vpLow, vsLow, rhLow := p.Inverse(p.minf)
	ztopInf, vpHgh, vsHgh, rhHgh := p.Inverse(p.msup)
	n := p.nlayer
	prLow, prHgh := make([]float64, n), make([]float64, n)
	for i := 0; i < n; i++ {
		prLow[i] = vpLow[i] / vsLow[i] // recovers the PR candidates at their bounds
		prHgh[i] = vpHgh[i] / vsHgh[i]
	}
	z := mergeDepths(ztopInf, ztopSup)

	b := Boundaries{
		VsLow:  stairsExtreme(z, ztopInf, ztopSup, vsLow, math.Min),
		VsHigh: stairsExtreme(z, ztopInf, ztopSup, vsHgh, math.Max),
		RhLow:  stairsExtreme(z, ztopInf, ztopSup, rhLow, math.Min),
		RhHigh: stairsExtreme(z, ztopInf, ztopSup, rhHgh, math.Max),
		PrLow:  stairsExtreme(z, ztopInf, ztopSup, prLow, math.Min),
		PrHigh: stairsExtreme(z, ztopInf, ztopSup, prHgh, math.Max),
	}
	b.VpLow = productProfile(b.PrLow, b.VsLow)
	b.VpHigh = productProfile(b.PrHigh, b.VsHigh)
	return &b
}
