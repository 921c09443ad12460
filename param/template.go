package param

import (
	"fmt"

	"github.com/maseology/mmaths"
)

// canonical polynomial laws (Brocher-style) used by the law-based templates
const (
	LawVPvs = "func(vs float64) float64 { return 0.9409 + 2.0947*vs - 0.8206*vs*vs + 0.2683*vs*vs*vs - 0.0251*vs*vs*vs*vs }"
	LawRHvp = "func(vp float64) float64 { return 1.6612*vp - 0.4721*vp*vp + 0.0671*vp*vp*vp - 0.0043*vp*vp*vp*vp + 0.000106*vp*vp*vp*vp*vp }"
	LawPRz  = "func(z float64) float64 { return 1.75 + 0.4/(1.0+z) }"
	LawRHz  = "func(z float64) float64 { return 1.9 + 0.04*z }"
)

// default bound windows per physical quantity
var (
	vsWindow = [2]float64{0.1, 3.5} // km/s
	vpWindow = [2]float64{0.3, 7.0} // km/s
	prWindow = [2]float64{1.6, 2.2}
	rhWindow = [2]float64{1.8, 3.0} // g/cm3
)

// Template produces a ready-to-edit parameter-file description for a
// variant, spanning nlayer layers (half-space included) down to zbot km.
// Each interface gets a window of half a layer spacing about its nominal
// depth; physical quantities get generous default windows.
func Template(typ string, zbot float64, nlayer int) (*File, error) {
	if nlayer < 2 {
		return nil, fmt.Errorf("param.Template: need NLAYER >= 2, got %d", nlayer)
	}
	if zbot <= 0. {
		return nil, fmt.Errorf("param.Template: need a positive depth extent, got %g", zbot)
	}
	f := File{Nlayer: nlayer, Type: typ, Laws: map[string]string{}}
	addrow := func(k string, vinf, vsup float64) {
		f.Keys = append(f.Keys, k)
		f.Vinf = append(f.Vinf, vinf)
		f.Vsup = append(f.Vsup, vsup)
	}
	h := 0.5 * zbot / float64(nlayer-1)
	for i := 1; i < nlayer; i++ {
		zi := mmaths.LinearTransform(0., zbot, float64(i)/float64(nlayer-1))
		addrow(fmt.Sprintf("-Z%d", i), -(zi + h), -(zi - h))
	}
	addblock := func(prfx string, w [2]float64) {
		for i := 0; i < nlayer; i++ {
			addrow(fmt.Sprintf("%s%d", prfx, i), w[0], w[1])
		}
	}
	addblock("VS", vsWindow)

	switch typ {
	case TypeZVSPRRH:
		addblock("PR", prWindow)
		addblock("RH", rhWindow)
	case TypeZVSVPRH:
		addblock("VP", vpWindow)
		addblock("RH", rhWindow)
	case TypeZVSPRzRHvp:
		f.Laws["PRz"] = LawPRz
		f.Laws["RHvp"] = LawRHvp
	case TypeZVSPRzRHz:
		f.Laws["PRz"] = LawPRz
		f.Laws["RHz"] = LawRHz
	case TypeZVSVPvsRHvp:
		f.Laws["VPvs"] = LawVPvs
		f.Laws["RHvp"] = LawRHvp
	default:
		return nil, fmt.Errorf("param.Template: unknown TYPE '%s'", typ)
	}
	if err := f.check(); err != nil {
		return nil, err
	}
	return &f, nil
}
