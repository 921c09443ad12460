package param

import (
	"fmt"
	"sort"
)

// Profile is a piecewise-constant layered depth profile: Z[i] is the top
// depth of layer i (Z[0]=0), V[i] its value. The last layer is a half-space.
type Profile struct{ Z, V []float64 }

// Stairs reinterpolates the profile onto a new depth axis, holding each
// layer's value constant down to the next layer top.
func (p Profile) Stairs(z []float64) []float64 {
	v := make([]float64, len(z))
	for i, zi := range z {
		j := sort.SearchFloat64s(p.Z, zi)
		if j == len(p.Z) || p.Z[j] > zi {
			j-- // zi sits within layer j
		}
		if j < 0 {
			j = 0
		}
		v[i] = p.V[j]
	}
	return v
}

// mergeDepths builds the sorted union of two interface-depth sets.
func mergeDepths(a, b []float64) []float64 {
	z := make([]float64, 0, len(a)+len(b))
	z = append(z, a...)
	z = append(z, b...)
	sort.Float64s(z)
	out := z[:1]
	for _, zi := range z[1:] {
		if zi != out[len(out)-1] {
			out = append(out, zi)
		}
	}
	return out
}

// DepthModel is a layered earth model: per-layer top depth, compressional
// velocity, shear velocity and density, half-space last.
type DepthModel struct{ Ztop, Vp, Vs, Rh []float64 }

// Check verifies the structural invariants of the model.
func (dm *DepthModel) Check() error {
	n := len(dm.Ztop)
	if len(dm.Vp) != n || len(dm.Vs) != n || len(dm.Rh) != n {
		return fmt.Errorf("param.DepthModel: inconsistent layer counts %d %d %d %d", n, len(dm.Vp), len(dm.Vs), len(dm.Rh))
	}
	if n == 0 || dm.Ztop[0] != 0. {
		return fmt.Errorf("param.DepthModel: ZTOP must begin at 0")
	}
	for i := 1; i < n; i++ {
		if dm.Ztop[i] <= dm.Ztop[i-1] {
			return fmt.Errorf("param.DepthModel: ZTOP must strictly increase (layer %d)", i)
		}
	}
	return nil
}

// zmid returns representative mid-layer depths, extrapolating half a layer
// thickness into the half-space.
func zmid(ztop []float64) []float64 {
	n := len(ztop)
	zm := make([]float64, n)
	for i := 0; i < n-1; i++ {
		zm[i] = 0.5 * (ztop[i] + ztop[i+1])
	}
	zm[n-1] = 1.5 * ztop[n-1]
	return zm
}
