package swinv

import (
	"encoding/gob"
	"fmt"
	"os"
)

// Domain carries the grid arrays persisted between pipeline stages: node
// axes, depth axes, the prior shear-velocity cube with its uncertainty, and
// the observed phase-velocity cube with its uncertainty. Cubes are stored
// flat in row-major node order: element (iy, jx, k) sits at (iy*nx+jx)*n+k.
type Domain struct {
	Ny, Nx, Nz, Nper int
	X, Y             []float64 // node axes [km]
	Ztop, Zmid       []float64 // layer top/mid depths [km]
	Periods          []float64 // dispersion period axis [s]
	Mprior, Munc     []float64 // prior vs cube and uncertainty, ny*nx*nz [km/s]
	Phasevel, Phunc  []float64 // observed phase velocity cube and uncertainty, ny*nx*nper [km/s]
}

// Nodes is the node count ny*nx.
func (d *Domain) Nodes() int { return d.Ny * d.Nx }

// NodeCell converts a node index to its grid cell (row-major over (y,x)).
func (d *Domain) NodeCell(n int) (iy, jx int) { return n / d.Nx, n % d.Nx }

// Check asserts that the declared dimensions agree with the array lengths.
func (d *Domain) Check() error {
	chk := func(name string, got, want int) error {
		if got != want {
			return fmt.Errorf("swinv.Domain: %s length %d, expected %d", name, got, want)
		}
		return nil
	}
	if d.Ny < 1 || d.Nx < 1 || d.Nz < 2 || d.Nper < 1 {
		return fmt.Errorf("swinv.Domain: bad dimensions (%d,%d,%d,%d)", d.Ny, d.Nx, d.Nz, d.Nper)
	}
	for _, c := range []struct {
		name string
		got  int
		want int
	}{
		{"X", len(d.X), d.Nx},
		{"Y", len(d.Y), d.Ny},
		{"ZTOP", len(d.Ztop), d.Nz},
		{"ZMID", len(d.Zmid), d.Nz},
		{"PERIODS", len(d.Periods), d.Nper},
		{"MPRIOR", len(d.Mprior), d.Ny * d.Nx * d.Nz},
		{"MUNC", len(d.Munc), d.Ny * d.Nx * d.Nz},
		{"PHASEVEL", len(d.Phasevel), d.Ny * d.Nx * d.Nper},
		{"PHUNC", len(d.Phunc), d.Ny * d.Nx * d.Nper},
	} {
		if err := chk(c.name, c.got, c.want); err != nil {
			return err
		}
	}
	if d.Ztop[0] != 0. {
		return fmt.Errorf("swinv.Domain: ZTOP must begin at 0")
	}
	for i := 1; i < d.Nz; i++ {
		if d.Ztop[i] <= d.Ztop[i-1] {
			return fmt.Errorf("swinv.Domain: ZTOP must strictly increase (layer %d)", i)
		}
	}
	return nil
}

// SaveGob snapshots the domain.
func (d *Domain) SaveGob(fp string) error {
	f, err := os.Create(fp)
	if err != nil {
		return fmt.Errorf(" domain.SaveGob %v", err)
	}
	if err := gob.NewEncoder(f).Encode(d); err != nil {
		return fmt.Errorf(" domain.SaveGob %v", err)
	}
	f.Close()
	return nil
}

// LoadGobDomain recovers a snapshot domain.
func LoadGobDomain(fp string) (*Domain, error) {
	var d Domain
	f, err := os.Open(fp)
	if err != nil {
		return nil, err
	}
	if err := gob.NewDecoder(f).Decode(&d); err != nil {
		return nil, err
	}
	f.Close()
	if err := d.Check(); err != nil {
		return nil, err
	}
	return &d, nil
}
