package swinv

import (
	"fmt"
	"testing"

	"github.com/maseology/swinv/surf"
	"github.com/stretchr/testify/require"
)

// meanSolver is a stand-in physics routine: phase velocity is the layer
// average of vs, with small vp and basement-depth terms and a period ramp.
// Deterministic, so node outputs can be checked against direct evaluation.
type meanSolver struct{}

func (meanSolver) Disperse(ztop, vp, vs, rh []float64, c *surf.Curve) ([]float64, error) {
	var sv, sp float64
	for j := range vs {
		sv += vs[j]
		sp += vp[j]
	}
	nl := float64(len(vs))
	out := make([]float64, c.N())
	for i, per := range c.Period {
		out[i] = sv/nl + 0.01*sp/nl + 0.05*per - 0.02*ztop[len(ztop)-1]
	}
	return out, nil
}

// haltSolver fails whenever the top layer exceeds the velocity cap.
type haltSolver struct{ vscap float64 }

func (h haltSolver) Disperse(ztop, vp, vs, rh []float64, c *surf.Curve) ([]float64, error) {
	if vs[0] > h.vscap {
		return nil, fmt.Errorf("mode not found at vs=%g", vs[0])
	}
	return meanSolver{}.Disperse(ztop, vp, vs, rh, c)
}

// testGrid builds per-node descriptor pairs for a 2-layer model with free
// interface depth and shear velocities (nz=3 free parameters, nper=2). Node
// priors are staggered so every node's model differs.
func testGrid(t *testing.T, ny, nx int) (parstrs, dcstrs []string, M []float64) {
	t.Helper()
	nn := ny * nx
	for n := 0; n < nn; n++ {
		vs := 1.4 + 0.05*float64(n)
		parstrs = append(parstrs, fmt.Sprintf(`#met NLAYER = 2
#met TYPE = 'mZVSPRRH'
#fld KEY VINF VSUP
-Z1 -1.5 -0.5
VS0 %g %g
VS1 %g %g
PR0 1.8 1.8
PR1 1.8 1.8
RH0 2.2 2.2
RH1 2.2 2.2
`, vs-0.5, vs+0.5, vs-0.5, vs+0.5))
		dcstrs = append(dcstrs, fmt.Sprintf("SURF96 R C X 0 1 %g 0.1\nSURF96 R C X 0 2 %g 0.1\n", 2.8+0.01*float64(n), 3.0+0.01*float64(n)))
		M = append(M, -1.0, vs, vs)
	}
	return
}

func TestNewForwardOperatorValidation(t *testing.T) {
	parstrs, dcstrs, _ := testGrid(t, 2, 3)

	_, err := NewForwardOperator(parstrs[:5], dcstrs, 2, 3, 3, 2, meanSolver{}, 4)
	require.Error(t, err, "descriptor count must equal ny*nx")

	_, err = NewForwardOperator(parstrs, dcstrs, 2, 3, 3, 3, meanSolver{}, 4)
	require.Error(t, err, "sample count must equal nper")
	require.Contains(t, err.Error(), "node ")

	_, err = NewForwardOperator(parstrs, dcstrs, 2, 3, 4, 2, meanSolver{}, 4)
	require.Error(t, err, "free parameter count must equal nz")
}

func TestEvaluate(t *testing.T) {
	parstrs, dcstrs, M := testGrid(t, 2, 3)
	fo, err := NewForwardOperator(parstrs, dcstrs, 2, 3, 3, 2, meanSolver{}, 4)
	require.NoError(t, err)

	D, err := fo.Evaluate(M)
	require.NoError(t, err)
	require.Len(t, D, 2*3*2)

	// each node's slice of the concatenation matches its own theory,
	// independent of completion order
	for n := 0; n < fo.Nodes(); n++ {
		d, err := fo.Theory(n).Forward(M[n*3 : (n+1)*3])
		require.NoError(t, err)
		require.Equal(t, d, D[n*2:(n+1)*2], "node %d", n)
	}

	_, err = fo.Evaluate(M[:len(M)-1])
	require.Error(t, err, "model vector length must be ny*nx*nz")
}

func TestEvaluateAbortsOnNodeFailure(t *testing.T) {
	parstrs, dcstrs, M := testGrid(t, 2, 3)

	// nodes 4 and 5 sit above the cap; the batch must fail, not return a
	// partially filled concatenation
	fo, err := NewForwardOperator(parstrs, dcstrs, 2, 3, 3, 2, haltSolver{vscap: 1.55}, 4)
	require.NoError(t, err)
	_, err = fo.Evaluate(M)
	require.Error(t, err)
	require.Contains(t, err.Error(), "node ")
}

func TestFrechetDerivativesBlockDiagonal(t *testing.T) {
	ny, nx, nz, nper := 2, 3, 3, 2
	parstrs, dcstrs, M := testGrid(t, ny, nx)
	fo, err := NewForwardOperator(parstrs, dcstrs, ny, nx, nz, nper, meanSolver{}, 4)
	require.NoError(t, err)

	G, err := fo.FrechetDerivatives(M)
	require.NoError(t, err)
	require.Equal(t, []int{ny * nx * nper, ny * nx * nz}, G.Shape)

	for row := 0; row < ny*nx*nper; row++ {
		for col := 0; col < ny*nx*nz; col++ {
			if row/nper != col/nz {
				require.Zero(t, G.Get(row, col), "off-block (%d,%d)", row, col)
			}
		}
	}

	// diagonal blocks match each node's local jacobian
	for n := 0; n < ny*nx; n++ {
		fd, err := fo.Theory(n).FrechetDerivatives(M[n*nz : (n+1)*nz])
		require.NoError(t, err)
		for i := 0; i < nper; i++ {
			for j := 0; j < nz; j++ {
				require.InDelta(t, fd.At(i, j), G.Get(n*nper+i, n*nz+j), 1e-12, "block %d (%d,%d)", n, i, j)
			}
		}
	}
}

func TestTheoryFrechetAgainstAnalytic(t *testing.T) {
	parstrs, dcstrs, M := testGrid(t, 1, 1)
	thry, err := NewTheory(parstrs[0], dcstrs[0], meanSolver{})
	require.NoError(t, err)

	m := M[:3]
	fd, err := thry.FrechetDerivatives(m)
	require.NoError(t, err)

	// under meanSolver, v = (1+0.01*pr)*mean(vs) + 0.05*per - 0.02*z1 with
	// pr locked at 1.8, and the data are ln(v)
	ztop, vp, vs, _ := thry.Par.Inverse(m)
	for i, per := range thry.Dc.Period {
		v := (vs[0]+vs[1])/2. + 0.01*(vp[0]+vp[1])/2. + 0.05*per - 0.02*ztop[1]
		require.InDelta(t, 0.02/v, fd.At(i, 0), 1e-3, "d lnv/d(-Z1) at period %g", per) // z1 = -m[0]
		require.InDelta(t, (1.+0.01*1.8)/2./v, fd.At(i, 1), 1e-3, "d lnv/dVS0 at period %g", per)
		require.InDelta(t, (1.+0.01*1.8)/2./v, fd.At(i, 2), 1e-3, "d lnv/dVS1 at period %g", per)
	}
}

func TestRepeatedOperatorCalls(t *testing.T) {
	parstrs, dcstrs, M := testGrid(t, 2, 2)
	fo, err := NewForwardOperator(parstrs, dcstrs, 2, 2, 3, 2, meanSolver{}, 2)
	require.NoError(t, err)

	// successive calls on one operator are independent; progress reporting
	// must not leak state between them
	D1, err := fo.Evaluate(M)
	require.NoError(t, err)
	D2, err := fo.Evaluate(M)
	require.NoError(t, err)
	require.Equal(t, D1, D2)
	_, err = fo.FrechetDerivatives(M)
	require.NoError(t, err)
}

// flatSolver returns a constant, including non-positive values.
type flatSolver struct{ v float64 }

func (f flatSolver) Disperse(ztop, vp, vs, rh []float64, c *surf.Curve) ([]float64, error) {
	out := make([]float64, c.N())
	for i := range out {
		out[i] = f.v
	}
	return out, nil
}

func TestForwardRejectsNonPositiveSolverOutput(t *testing.T) {
	parstrs, dcstrs, _ := testGrid(t, 1, 1)
	thry, err := NewTheory(parstrs[0], dcstrs[0], flatSolver{v: 0.})
	require.NoError(t, err)
	_, err = thry.Forward(thry.Par.Mmean())
	require.Error(t, err, "a non-positive dispersion value has no log transform")
}

func TestFrechetDerivativesAbortsOnNodeFailure(t *testing.T) {
	parstrs, dcstrs, M := testGrid(t, 2, 2)
	// the frechet step perturbs vs upward, pushing node 3 (vs=1.55) over
	fo, err := NewForwardOperator(parstrs, dcstrs, 2, 2, 3, 2, haltSolver{vscap: 1.555}, 2)
	require.NoError(t, err)
	_, err = fo.FrechetDerivatives(M)
	require.Error(t, err)
	require.Contains(t, err.Error(), "node ")
}
