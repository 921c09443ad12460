package swinv

import (
	"fmt"
	"strings"

	"github.com/maseology/swinv/param"
)

// vsBracket is the half-window set about the prior shear velocity of each
// layer, such that the parameterizer MMEAN reproduces the prior exactly.
const vsBracket = 0.01 // km/s

// ParameterizerStrings builds one serialized parameterizer per node, in
// row-major node order: a law-based mZVSVPvsRHvp description with all
// interface depths locked to the domain's depth axis and each layer's shear
// velocity bracketed about the node's prior profile.
func (d *Domain) ParameterizerStrings() ([]string, error) {
	var hdr strings.Builder
	fmt.Fprintf(&hdr, "#met NLAYER = %d\n", d.Nz)
	fmt.Fprintf(&hdr, "#met TYPE = '%s'\n", param.TypeZVSVPvsRHvp)
	fmt.Fprintf(&hdr, "#met VPvs = '%s'\n", param.LawVPvs)
	fmt.Fprintf(&hdr, "#met RHvp = '%s'\n", param.LawRHvp)
	hdr.WriteString("#fld KEY VINF VSUP\n")
	for i := 1; i < d.Nz; i++ {
		// VINF==VSUP locks the interface depths in the theory operator
		fmt.Fprintf(&hdr, "-Z%d %g %g\n", i, -d.Ztop[i], -d.Ztop[i])
	}

	nn := d.Nodes()
	strs := make([]string, nn)
	for n := 0; n < nn; n++ {
		var b strings.Builder
		b.WriteString(hdr.String())
		for k := 0; k < d.Nz; k++ {
			vs := d.Mprior[n*d.Nz+k]
			fmt.Fprintf(&b, "VS%d %g %g\n", k, vs-vsBracket, vs+vsBracket)
		}
		strs[n] = b.String()
	}

	// sanity: the first descriptor must round-trip into a parameterizer
	// whose free space is exactly the nz shear velocities
	p, err := param.LoadString(strs[0])
	if err != nil {
		return nil, fmt.Errorf("swinv.ParameterizerStrings: %v", err)
	}
	if len(p.Mmean()) != d.Nz {
		return nil, fmt.Errorf("swinv.ParameterizerStrings: %d free parameters, expected nz=%d", len(p.Mmean()), d.Nz)
	}
	return strs, nil
}
