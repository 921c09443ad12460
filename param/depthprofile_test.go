package param

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStairs(t *testing.T) {
	p := Profile{Z: []float64{0., 1., 3.}, V: []float64{10., 20., 30.}}
	got := p.Stairs([]float64{0., 0.5, 1., 2.9, 3., 99.})
	require.Equal(t, []float64{10., 10., 20., 20., 30., 30.}, got)
}

func TestMergeDepths(t *testing.T) {
	z := mergeDepths([]float64{0., 1., 2.}, []float64{0., 1.5, 2.})
	require.Equal(t, []float64{0., 1., 1.5, 2.}, z)
}

func TestDepthModelCheck(t *testing.T) {
	dm := DepthModel{
		Ztop: []float64{0., 1.},
		Vp:   []float64{2.7, 2.7},
		Vs:   []float64{1.5, 1.5},
		Rh:   []float64{2.2, 2.2},
	}
	require.NoError(t, dm.Check())

	dm.Ztop = []float64{0.5, 1.}
	require.Error(t, dm.Check(), "ZTOP must begin at 0")

	dm.Ztop = []float64{0., 0.}
	require.Error(t, dm.Check(), "ZTOP must strictly increase")

	dm.Ztop = []float64{0.}
	require.Error(t, dm.Check(), "layer counts must agree")
}

func TestZmid(t *testing.T) {
	require.Equal(t, []float64{0.5, 1.5, 3.}, zmid([]float64{0., 1., 2.}))
}
