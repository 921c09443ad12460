package param

// zvsvprh: interface depths, shear velocity, compressional velocity and
// density are all free per layer.
type zvsvprh struct {
	pbase
	ckeys []string
	cdel  []float64
}

// NewZVSVPRH builds the fully-free depth+VS+VP+density parameterizer.
func NewZVSVPRH(f *File) (Parameterizer, error) {
	n := f.Nlayer
	ckeys := zkeys(n)
	ckeys = append(ckeys, lkeys("VS", n)...)
	ckeys = append(ckeys, lkeys("VP", n)...)
	ckeys = append(ckeys, lkeys("RH", n)...)
	b, err := newBase(f, TypeZVSVPRH, ckeys)
	if err != nil {
		return nil, err
	}
	cdel := repeat(dz, n-1)
	cdel = append(cdel, repeat(dvs, n)...)
	cdel = append(cdel, repeat(dvp, n)...)
	cdel = append(cdel, repeat(drh, n)...)
	return &zvsvprh{pbase: b, ckeys: ckeys, cdel: cdel}, nil
}

func (p *zvsvprh) Keys() []string           { return p.maskKeys(p.ckeys) }
func (p *zvsvprh) FrechetDeltas() []float64 { return p.maskDeltas(p.cdel) }

func (p *zvsvprh) Forward(ztop, vp, vs, rh []float64) []float64 {
	n := p.nlayer
	full := make([]float64, 4*n-1)
	encodeDepths(full, ztop)
	for i := 0; i < n; i++ {
		full[n-1+i] = vs[i]
		full[2*n-1+i] = vp[i]
		full[3*n-1+i] = rh[i]
	}
	return p.mask(full)
}

func (p *zvsvprh) Inverse(m []float64) (ztop, vp, vs, rh []float64) {
	n := p.nlayer
	full := p.fill(m)
	ztop = decodeDepths(full, n)
	vs = full[n-1 : 2*n-1]
	vp = full[2*n-1 : 3*n-1]
	rh = full[3*n-1 : 4*n-1]
	return
}

func (p *zvsvprh) Boundaries() *Boundaries { return genericBoundaries(p) }
