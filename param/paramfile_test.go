package param

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	f, err := ParseString(`#met NLAYER = 2
#met TYPE = 'mZVSPRRH'
#fld KEY VINF VSUP
-Z1 -1.5 -0.5
VS0 1.0 2.0
VS1 1.0 2.0
PR0 1.8 1.8
PR1 1.8 1.8
RH0 2.2 2.2
RH1 2.2 2.2
`)
	require.NoError(t, err)
	require.Equal(t, 2, f.Nlayer)
	require.Equal(t, TypeZVSPRRH, f.Type)
	require.Equal(t, []string{"-Z1", "VS0", "VS1", "PR0", "PR1", "RH0", "RH1"}, f.Keys)
	require.Equal(t, -1.5, f.Vinf[0])
	require.Equal(t, 1.8, f.Vsup[3])
}

func TestParseValidation(t *testing.T) {
	for _, tc := range []struct {
		name string
		s    string
	}{
		{"missing NLAYER", "#met TYPE = 'mZVSPRRH'\nVS0 1.0 2.0\n"},
		{"missing TYPE", "#met NLAYER = 2\nVS0 1.0 2.0\n"},
		{"repeated key", "#met NLAYER = 2\n#met TYPE = 'mZVSPRRH'\nVS0 1.0 2.0\nVS0 1.0 2.0\n"},
		{"inverted bounds", "#met NLAYER = 2\n#met TYPE = 'mZVSPRRH'\nVS0 2.0 1.0\n"},
		{"bad row", "#met NLAYER = 2\n#met TYPE = 'mZVSPRRH'\nVS0 1.0\n"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseString(tc.s)
			require.Error(t, err)
		})
	}
}

func TestReadFile(t *testing.T) {
	f, err := Template(TypeZVSPRRH, 3., 3)
	require.NoError(t, err)
	fp := filepath.Join(t.TempDir(), "nodes.param")
	require.NoError(t, os.WriteFile(fp, []byte(f.String()), 0644))

	f2, err := ReadFile(fp)
	require.NoError(t, err)
	require.Equal(t, f, f2)

	_, err = ReadFile(filepath.Join(t.TempDir(), "missing.param"))
	require.Error(t, err)
}

func TestFileRoundTrip(t *testing.T) {
	for _, typ := range []string{TypeZVSPRRH, TypeZVSVPRH, TypeZVSPRzRHvp, TypeZVSPRzRHz, TypeZVSVPvsRHvp} {
		f, err := Template(typ, 3., 5)
		require.NoError(t, err)
		f2, err := ParseString(f.String())
		require.NoError(t, err)
		require.Equal(t, f, f2, typ)
	}
}
