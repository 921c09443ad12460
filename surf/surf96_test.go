package surf

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCurveRoundTrip(t *testing.T) {
	c := NewCurve("R", "C", 0,
		[]float64{1., 2., 5.},
		[]float64{2.8, 3.0, 3.2},
		[]float64{0.28, 0.3, 0.32})
	c2, err := ParseCurve(c.String())
	require.NoError(t, err)
	require.Equal(t, c, c2)
}

func TestParseCurveErrors(t *testing.T) {
	_, err := ParseCurve("")
	require.Error(t, err, "no records")

	_, err = ParseCurve("SURF96 R C X 0 1.0 2.8")
	require.Error(t, err, "truncated record")

	_, err = ParseCurve("DISP96 R C X 0 1.0 2.8 0.28")
	require.Error(t, err, "wrong record tag")

	_, err = ParseCurve("SURF96 R C X zero 1.0 2.8 0.28")
	require.Error(t, err, "bad mode")
}
