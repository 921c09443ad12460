package param

import "math"

// stairsExtreme reinterpolates one value profile from both bounding depth
// axes onto the merged axis z and keeps the pointwise extreme. The extreme
// parameter vectors are not themselves physical models, so neither bounding
// axis can be trusted alone.
func stairsExtreme(z, zinf, zsup, v []float64, which func(a, b float64) float64) Profile {
	v1 := Profile{Z: zinf, V: v}.Stairs(z)
	v2 := Profile{Z: zsup, V: v}.Stairs(z)
	out := make([]float64, len(z))
	for i := range z {
		out[i] = which(v1[i], v2[i])
	}
	return Profile{Z: z, V: out}
}

// genericBoundaries derives envelope profiles from the bound vectors alone:
// invert the all-lower-bounds and all-upper-bounds vectors, merge their
// interface sets, reinterpolate each quantity from both bounding models and
// take the pointwise extremes. The VP/VS envelope is recombined from the
// extremal VP and VS envelopes (a low ratio pairs the low numerator with the
// high denominator) rather than reinterpolated directly.
func genericBoundaries(p Parameterizer) *Boundaries {
	ztopSup, vpLow, vsLow, rhLow := p.Inverse(p.Minf()) // deepest interfaces: -Z bounds are negated
	ztopInf, vpHgh, vsHgh, rhHgh := p.Inverse(p.Msup())
	z := mergeDepths(ztopInf, ztopSup)

	b := Boundaries{
		VpLow:  stairsExtreme(z, ztopInf, ztopSup, vpLow, math.Min),
		VpHigh: stairsExtreme(z, ztopInf, ztopSup, vpHgh, math.Max),
		VsLow:  stairsExtreme(z, ztopInf, ztopSup, vsLow, math.Min),
		VsHigh: stairsExtreme(z, ztopInf, ztopSup, vsHgh, math.Max),
		RhLow:  stairsExtreme(z, ztopInf, ztopSup, rhLow, math.Min),
		RhHigh: stairsExtreme(z, ztopInf, ztopSup, rhHgh, math.Max),
	}
	b.PrLow = ratioProfile(b.VpLow, b.VsHigh)
	b.PrHigh = ratioProfile(b.VpHigh, b.VsLow)
	return &b
}

func ratioProfile(num, den Profile) Profile {
	v := make([]float64, len(num.V))
	for i := range v {
		v[i] = num.V[i] / den.V[i]
	}
	return Profile{Z: num.Z, V: v}
}

func productProfile(a, b Profile) Profile {
	v := make([]float64, len(a.V))
	for i := range v {
		v[i] = a.V[i] * b.V[i]
	}
	return Profile{Z: a.Z, V: v}
}
