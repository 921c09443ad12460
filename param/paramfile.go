package param

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/maseology/mmio"
)

// File holds a parsed parameterization file: a metadata block declaring the
// layer count, the parameterizer type and any named relation expressions,
// followed by one row of bounds per candidate parameter.
//
//	#met NLAYER = 7
//	#met TYPE = 'mZVSVPvsRHvp'
//	#met VPvs = 'func(vs float64) float64 { return ... }'
//	#fld KEY VINF VSUP
//	-Z1 -0.33 -0.33
//	VS0 0.21 3.25
//	...
type File struct {
	Nlayer int
	Type   string
	Laws   map[string]string // named relation expressions found in the metadata block
	Keys   []string
	Vinf   []float64
	Vsup   []float64
}

// Parse reads a parameterization from raw text lines and validates it.
func Parse(lns []string) (*File, error) {
	f := File{Nlayer: -1, Laws: map[string]string{}}
	for _, ln := range lns {
		ln = strings.TrimSpace(ln)
		switch {
		case len(ln) == 0:
		case strings.HasPrefix(ln, "#met"):
			kv := strings.SplitN(strings.TrimSpace(ln[4:]), "=", 2)
			if len(kv) != 2 {
				return nil, fmt.Errorf("param.Parse: bad metadata line '%s'", ln)
			}
			k, v := strings.TrimSpace(kv[0]), strings.Trim(strings.TrimSpace(kv[1]), "'")
			switch k {
			case "NLAYER":
				n, err := strconv.Atoi(v)
				if err != nil {
					return nil, fmt.Errorf("param.Parse: NLAYER: %v", err)
				}
				f.Nlayer = n
			case "TYPE":
				f.Type = v
			default:
				f.Laws[k] = v
			}
		case strings.HasPrefix(ln, "#"): // #fld/#unt/#fmt headers
		default:
			c := strings.Fields(ln)
			if len(c) != 3 {
				return nil, fmt.Errorf("param.Parse: bad data row '%s'", ln)
			}
			vinf, err := strconv.ParseFloat(c[1], 64)
			if err != nil {
				return nil, fmt.Errorf("param.Parse: VINF '%s': %v", c[1], err)
			}
			vsup, err := strconv.ParseFloat(c[2], 64)
			if err != nil {
				return nil, fmt.Errorf("param.Parse: VSUP '%s': %v", c[2], err)
			}
			f.Keys = append(f.Keys, c[0])
			f.Vinf = append(f.Vinf, vinf)
			f.Vsup = append(f.Vsup, vsup)
		}
	}
	if err := f.check(); err != nil {
		return nil, err
	}
	return &f, nil
}

// ParseString parses a serialized parameterization descriptor.
func ParseString(s string) (*File, error) { return Parse(strings.Split(s, "\n")) }

// ReadFile parses a parameterization file on disk.
func ReadFile(fp string) (*File, error) {
	lns, err := mmio.ReadTextLines(fp)
	if err != nil {
		return nil, fmt.Errorf("param.ReadFile: %v", err)
	}
	return Parse(lns)
}

func (f *File) check() error {
	if f.Nlayer < 1 {
		return fmt.Errorf("param: NLAYER not found in file metadata")
	}
	if len(f.Type) == 0 {
		return fmt.Errorf("param: TYPE not found in file metadata")
	}
	seen := make(map[string]bool, len(f.Keys))
	for _, k := range f.Keys {
		if seen[k] {
			return fmt.Errorf("param: repeated entry '%s' in column KEY", k)
		}
		seen[k] = true
	}
	for i := range f.Keys {
		if f.Vinf[i] > f.Vsup[i] {
			return fmt.Errorf("param: VSUP cannot be lower than VINF (row %s)", f.Keys[i])
		}
	}
	return nil
}

// String re-serializes the file losslessly so that a parameterizer can be
// round-tripped across process boundaries as a descriptor string.
func (f *File) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "#met NLAYER = %d\n", f.Nlayer)
	fmt.Fprintf(&b, "#met TYPE = '%s'\n", f.Type)
	for _, k := range lawOrder(f.Type) {
		if expr, ok := f.Laws[k]; ok {
			fmt.Fprintf(&b, "#met %s = '%s'\n", k, expr)
		}
	}
	b.WriteString("#fld KEY VINF VSUP\n")
	for i, k := range f.Keys {
		fmt.Fprintf(&b, "%s %g %g\n", k, f.Vinf[i], f.Vsup[i])
	}
	return b.String()
}

// lawOrder fixes the serialization order of the relation expressions per type.
func lawOrder(typ string) []string {
	switch typ {
	case TypeZVSPRzRHvp:
		return []string{"PRz", "RHvp"}
	case TypeZVSPRzRHz:
		return []string{"PRz", "RHz"}
	case TypeZVSVPvsRHvp:
		return []string{"VPvs", "RHvp"}
	}
	return nil
}
