package param

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRelation(t *testing.T) {
	r, err := NewRelation("VPvs", LawVPvs, VelocityLaw)
	require.NoError(t, err)
	require.InDelta(t, 2.4582, r.At(1.), 1e-4) // 0.9409+2.0947-0.8206+0.2683-0.0251

	ys := r.AtEach([]float64{1., 2., 3.})
	require.Len(t, ys, 3)
	require.Equal(t, r.At(2.), ys[1])
}

func TestRelationValidation(t *testing.T) {
	_, err := NewRelation("bad", "func(x float64) float64 { return }", VelocityLaw)
	require.Error(t, err, "malformed expression must fail to compile")

	_, err = NewRelation("notscalar", "func(x float64) []float64 { return []float64{x} }", VelocityLaw)
	require.Error(t, err, "must return a single floating value")

	_, err = NewRelation("negative", "func(x float64) float64 { return -x }", VelocityLaw)
	require.Error(t, err, "velocity law must be strictly positive")

	_, err = NewRelation("light", "func(x float64) float64 { return 0.5*x }", DensityLaw)
	require.Error(t, err, "density law must return values >= 1")

	_, err = NewRelation("ok", "func(x float64) float64 { return 1.0 + 0.1*x }", DensityLaw)
	require.NoError(t, err)
}
