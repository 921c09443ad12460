package swinv

import (
	"math"
	"path/filepath"
	"strings"
	"testing"

	"github.com/maseology/swinv/param"
	"github.com/stretchr/testify/require"
)

func testDomain() *Domain {
	return &Domain{
		Ny: 2, Nx: 2, Nz: 3, Nper: 2,
		X:       []float64{0., 1.},
		Y:       []float64{0., 1.},
		Ztop:    []float64{0., 0.5, 1.5},
		Zmid:    []float64{0.25, 1., 2.25},
		Periods: []float64{1., 2.},
		Mprior: []float64{
			1.5, 1.75, 2., // node 0
			1.5, 1.75, 2.25,
			1.25, 1.5, 2.,
			1.25, 1.75, 2.25,
		},
		Munc:     []float64{.25, .25, .25, .25, .25, .25, .25, .25, .25, .25, .25, .25},
		Phasevel: []float64{2.75, 3., 2.75, 3., 2.5, 2.75, 2.5, 3.},
		Phunc:    []float64{.25, .25, .25, .25, .25, .25, .25, .25},
	}
}

func TestDomainCheck(t *testing.T) {
	d := testDomain()
	require.NoError(t, d.Check())
	require.Equal(t, 4, d.Nodes())
	iy, jx := d.NodeCell(3)
	require.Equal(t, 1, iy)
	require.Equal(t, 1, jx)

	d.Mprior = d.Mprior[:10]
	require.Error(t, d.Check(), "cube length must be ny*nx*nz")

	d = testDomain()
	d.Ztop = []float64{0.5, 1., 1.5}
	require.Error(t, d.Check(), "ZTOP must begin at 0")

	d = testDomain()
	d.Ztop = []float64{0., 1., 1.}
	require.Error(t, d.Check(), "ZTOP must strictly increase")
}

func TestDomainSaveLoad(t *testing.T) {
	// fixture values are float32-exact so the .bin round trip is lossless
	d := testDomain()
	prfx := filepath.Join(t.TempDir(), "stage-") // stage-x.bin etc.
	require.NoError(t, d.Save(prfx))

	d2, err := LoadDomain(prfx)
	require.NoError(t, err)
	require.Equal(t, d, d2)

	_, err = LoadDomain(filepath.Join(t.TempDir(), "nothing-"))
	require.Error(t, err)
}

func TestDomainGobRoundTrip(t *testing.T) {
	d := testDomain()
	fp := filepath.Join(t.TempDir(), "domain.gob")
	require.NoError(t, d.SaveGob(fp))
	d2, err := LoadGobDomain(fp)
	require.NoError(t, err)
	require.Equal(t, d, d2)
}

func TestParameterizerStrings(t *testing.T) {
	d := testDomain()
	strs, err := d.ParameterizerStrings()
	require.NoError(t, err)
	require.Len(t, strs, d.Nodes())

	for n, s := range strs {
		p, err := param.LoadString(s)
		require.NoError(t, err, "node %d", n)

		// free space is exactly the nz shear velocities, centred on the prior
		require.Len(t, p.Keys(), d.Nz)
		for _, k := range p.Keys() {
			require.True(t, strings.HasPrefix(k, "VS"), k)
		}
		require.InDeltaSlice(t, d.Mprior[n*d.Nz:(n+1)*d.Nz], p.Mmean(), 1e-12, "node %d", n)

		// interface depths stay locked to the domain's depth axis
		ztop, _, vs, _ := p.Inverse(p.Mmean())
		require.Equal(t, d.Ztop, ztop, "node %d", n)
		require.InDeltaSlice(t, d.Mprior[n*d.Nz:(n+1)*d.Nz], vs, 1e-12, "node %d", n)
	}
}

func TestDatacoderStringsAndTarget(t *testing.T) {
	d := testDomain()
	strs, err := d.DatacoderStrings()
	require.NoError(t, err)
	require.Len(t, strs, d.Nodes())

	dobs, dunc, err := d.Target()
	require.NoError(t, err)
	require.Len(t, dobs, d.Nodes()*d.Nper)
	require.Len(t, dunc, d.Nodes()*d.Nper)
	for i := range dobs {
		require.InDelta(t, math.Log(d.Phasevel[i]), dobs[i], 1e-12)
		require.InDelta(t, d.Phunc[i]/d.Phasevel[i], dunc[i], 1e-12)
	}

	d.Phasevel[3] = 0.
	_, err = d.DatacoderStrings()
	require.Error(t, err)
	require.Contains(t, err.Error(), "node 1")
}
