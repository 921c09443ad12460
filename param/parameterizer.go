package param

import (
	"fmt"
)

// Parameterizer type tags, as declared by the TYPE metadata field.
const (
	TypeZVSPRRH     = "mZVSPRRH"     // free: depths, VS, VP/VS, RH
	TypeZVSVPRH     = "mZVSVPRH"     // free: depths, VS, VP, RH
	TypeZVSPRzRHvp  = "mZVSPRzRHvp"  // free: depths, VS; VP=VS*PRz(z), RH=RHvp(VP)
	TypeZVSPRzRHz   = "mZVSPRzRHz"   // free: depths, VS; VP=VS*PRz(z), RH=RHz(z)
	TypeZVSVPvsRHvp = "mZVSVPvsRHvp" // free: depths, VS; VP=VPvs(VS), RH=RHvp(VP)
)

// default offsets used for the frechet derivatives, per physical type
const (
	dz  = 0.001 // km
	dvp = 0.01  // km/s
	dvs = 0.01  // km/s
	dpr = 0.01  // no dimension (vp/vs)
	drh = 0.01  // g/cm3
)

// A Parameterizer is the bijection between a layered depth model and the
// compact vector of free parameters presented to the sampler/optimizer.
// Layer interface depths are encoded negated so that deeper interfaces carry
// larger negative values; rows whose bounds collapse (VINF==VSUP) are locked
// out of the free vector and always reproduce their default value.
type Parameterizer interface {
	// Forward maps a full depth model to the free parameter vector.
	Forward(ztop, vp, vs, rh []float64) []float64
	// Inverse reconstructs the full depth model from a free parameter
	// vector; exact left-inverse of Forward on the free subspace.
	Inverse(m []float64) (ztop, vp, vs, rh []float64)
	// Keys names the free parameters, in Forward order.
	Keys() []string
	// FrechetDeltas gives one finite-difference step per free parameter.
	FrechetDeltas() []float64
	// Boundaries derives the envelope profiles spanned by the bounds.
	Boundaries() *Boundaries
	Nlayer() int
	Mmean() []float64
	Minf() []float64
	Msup() []float64
	Mstd() []float64
	fmt.Stringer
}

// Boundaries holds the physically-consistent envelope profiles of a
// parameterization, all sharing one merged breakpoint depth axis.
type Boundaries struct {
	VpLow, VpHigh Profile
	VsLow, VsHigh Profile
	RhLow, RhHigh Profile
	PrLow, PrHigh Profile
}

// New dispatches a parameterizer from the TYPE tag of a parsed file.
func New(f *File) (Parameterizer, error) {
	switch f.Type {
	case TypeZVSPRRH:
		return NewZVSPRRH(f)
	case TypeZVSVPRH:
		return NewZVSVPRH(f)
	case TypeZVSPRzRHvp:
		return NewZVSPRzRHvp(f)
	case TypeZVSPRzRHz:
		return NewZVSPRzRHz(f)
	case TypeZVSVPvsRHvp:
		return NewZVSVPvsRHvp(f)
	}
	return nil, fmt.Errorf("param.New: unknown TYPE '%s'", f.Type)
}

// LoadString deserializes a parameterizer descriptor string.
func LoadString(s string) (Parameterizer, error) {
	f, err := ParseString(s)
	if err != nil {
		return nil, err
	}
	return New(f)
}

// Load reads and dispatches a parameterization file on disk.
func Load(fp string) (Parameterizer, error) {
	f, err := ReadFile(fp)
	if err != nil {
		return nil, err
	}
	return New(f)
}

// pbase carries the bound-derived state common to every variant: the
// candidate arena and the explicit index list of its free entries.
type pbase struct {
	f        *File
	nlayer   int
	free     []int     // candidate indices with VINF < VSUP
	mdefault []float64 // full arena; midpoint of bounds, fills locked entries
	mmean    []float64 // free entries only
	minf     []float64
	msup     []float64
	mstd     []float64
}

// newBase validates the candidate table against the variant contract and
// derives the masked bound arrays. A TYPE tag mismatch is a programmer
// error and aborts construction.
func newBase(f *File, typ string, ckeys []string) (pbase, error) {
	if f.Type != typ {
		panic(fmt.Sprintf("param: TYPE mismatch, file declares '%s', constructing %s", f.Type, typ))
	}
	if len(f.Keys) != len(ckeys) {
		return pbase{}, fmt.Errorf("param %s: expected %d candidate rows for NLAYER=%d, got %d", typ, len(ckeys), f.Nlayer, len(f.Keys))
	}
	for i, k := range f.Keys {
		if k != ckeys[i] {
			return pbase{}, fmt.Errorf("param %s: row %d key '%s', expected '%s'", typ, i, k, ckeys[i])
		}
	}

	b := pbase{f: f, nlayer: f.Nlayer}
	b.mdefault = make([]float64, len(f.Keys))
	for i := range f.Keys {
		b.mdefault[i] = 0.5 * (f.Vinf[i] + f.Vsup[i])
		if f.Vinf[i] < f.Vsup[i] {
			b.free = append(b.free, i)
		}
	}
	if len(b.free) == 0 {
		fmt.Printf(" Warning: all parameters are locked (%s)\n", typ)
	}
	b.mmean = make([]float64, len(b.free))
	b.minf = make([]float64, len(b.free))
	b.msup = make([]float64, len(b.free))
	b.mstd = make([]float64, len(b.free))
	for i, j := range b.free {
		b.mmean[i] = b.mdefault[j]
		b.minf[i] = f.Vinf[j]
		b.msup[i] = f.Vsup[j]
		b.mstd[i] = 0.5 * (f.Vsup[j] - f.Vinf[j])
	}
	return b, nil
}

func (b *pbase) Nlayer() int      { return b.nlayer }
func (b *pbase) Mmean() []float64 { return b.mmean }
func (b *pbase) Minf() []float64  { return b.minf }
func (b *pbase) Msup() []float64  { return b.msup }
func (b *pbase) Mstd() []float64  { return b.mstd }
func (b *pbase) String() string   { return b.f.String() }

// mask extracts the free entries from a full candidate vector.
func (b *pbase) mask(full []float64) []float64 {
	m := make([]float64, len(b.free))
	for i, j := range b.free {
		m[i] = full[j]
	}
	return m
}

// fill rebuilds the full candidate vector, locked entries from mdefault.
func (b *pbase) fill(m []float64) []float64 {
	if len(m) != len(b.free) {
		panic(fmt.Sprintf("param: model vector length %d, expected %d", len(m), len(b.free)))
	}
	full := append([]float64(nil), b.mdefault...)
	for i, j := range b.free {
		full[j] = m[i]
	}
	return full
}

// maskKeys/maskDeltas keep key and step-size order aligned with Forward.
func (b *pbase) maskKeys(ckeys []string) []string {
	ks := make([]string, len(b.free))
	for i, j := range b.free {
		ks[i] = ckeys[j]
	}
	return ks
}

func (b *pbase) maskDeltas(cdel []float64) []float64 {
	return b.mask(cdel)
}

// decodeDepths recovers ZTOP from the leading negated-depth candidates.
func decodeDepths(full []float64, nlayer int) []float64 {
	ztop := make([]float64, nlayer)
	for i := 1; i < nlayer; i++ {
		ztop[i] = -full[i-1]
	}
	return ztop
}

// encodeDepths writes -ZTOP[1:] into the leading candidate positions.
func encodeDepths(full, ztop []float64) {
	for i := 1; i < len(ztop); i++ {
		full[i-1] = -ztop[i]
	}
}

// candidate key generators, one per key block
func zkeys(n int) []string {
	ks := make([]string, n-1)
	for i := 1; i < n; i++ {
		ks[i-1] = fmt.Sprintf("-Z%d", i)
	}
	return ks
}

func lkeys(prfx string, n int) []string {
	ks := make([]string, n)
	for i := 0; i < n; i++ {
		ks[i] = fmt.Sprintf("%s%d", prfx, i)
	}
	return ks
}

func repeat(v float64, n int) []float64 {
	vs := make([]float64, n)
	for i := range vs {
		vs[i] = v
	}
	return vs
}
