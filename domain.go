package swinv

import "fmt"

// LoadDomain collects the staged grid arrays sharing a file prefix:
// dimension files nynxnz.bin and nynxnper.bin (int32), then one little-endian
// float32 array per axis and cube. Dimensions are asserted against array
// lengths before any reshaping.
func LoadDomain(mdlprfx string) (*Domain, error) {
	dims, err := readInts(mdlprfx + "nynxnz.bin")
	if err != nil {
		return nil, fmt.Errorf("swinv.LoadDomain: %v", err)
	}
	if len(dims) != 3 {
		return nil, fmt.Errorf("swinv.LoadDomain: nynxnz holds %d values, expected 3", len(dims))
	}
	dims2, err := readInts(mdlprfx + "nynxnper.bin")
	if err != nil {
		return nil, fmt.Errorf("swinv.LoadDomain: %v", err)
	}
	if len(dims2) != 3 {
		return nil, fmt.Errorf("swinv.LoadDomain: nynxnper holds %d values, expected 3", len(dims2))
	}
	if dims[0] != dims2[0] || dims[1] != dims2[1] {
		return nil, fmt.Errorf("swinv.LoadDomain: grid dimensions disagree, (%d,%d) vs (%d,%d)", dims[0], dims[1], dims2[0], dims2[1])
	}

	d := Domain{
		Ny:   int(dims[0]),
		Nx:   int(dims[1]),
		Nz:   int(dims[2]),
		Nper: int(dims2[2]),
	}
	for _, a := range []struct {
		fp  string
		dst *[]float64
	}{
		{"x.bin", &d.X},
		{"y.bin", &d.Y},
		{"ztop.bin", &d.Ztop},
		{"zmid.bin", &d.Zmid},
		{"periods.bin", &d.Periods},
		{"mprior.bin", &d.Mprior},
		{"munc.bin", &d.Munc},
		{"phasevel.bin", &d.Phasevel},
		{"phunc.bin", &d.Phunc},
	} {
		v, err := readFloats(mdlprfx + a.fp)
		if err != nil {
			return nil, fmt.Errorf("swinv.LoadDomain: %v", err)
		}
		*a.dst = v
	}
	if err := d.Check(); err != nil {
		return nil, err
	}
	return &d, nil
}

// Save writes the staged grid arrays under a file prefix, the inverse of
// LoadDomain.
func (d *Domain) Save(mdlprfx string) error {
	if err := d.Check(); err != nil {
		return err
	}
	if err := writeInts(mdlprfx+"nynxnz.bin", []int32{int32(d.Ny), int32(d.Nx), int32(d.Nz)}); err != nil {
		return err
	}
	if err := writeInts(mdlprfx+"nynxnper.bin", []int32{int32(d.Ny), int32(d.Nx), int32(d.Nper)}); err != nil {
		return err
	}
	for _, a := range []struct {
		fp string
		v  []float64
	}{
		{"x.bin", d.X},
		{"y.bin", d.Y},
		{"ztop.bin", d.Ztop},
		{"zmid.bin", d.Zmid},
		{"periods.bin", d.Periods},
		{"mprior.bin", d.Mprior},
		{"munc.bin", d.Munc},
		{"phasevel.bin", d.Phasevel},
		{"phunc.bin", d.Phunc},
	} {
		if err := writeFloats(mdlprfx+a.fp, a.v); err != nil {
			return err
		}
	}
	return nil
}
