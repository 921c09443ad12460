// Package surf holds surf96-style dispersion curve records and the
// lognormal datacoder that whitens them for the inversion.
package surf

import (
	"fmt"
	"strconv"
	"strings"
)

// Curve is a set of dispersion samples at surf96 format: one row per
// (wave, type, mode, period) observation with value and uncertainty.
type Curve struct {
	Wave   []string // "R" rayleigh, "L" love
	Type   []string // "C" phase, "U" group
	Flag   []string
	Mode   []int
	Period []float64 // s
	Value  []float64 // km/s
	Dvalue []float64 // km/s
}

// NewCurve assembles a single-wave single-type curve over a period axis.
func NewCurve(wave, typ string, mode int, periods, values, dvalues []float64) *Curve {
	n := len(periods)
	c := Curve{
		Wave:   make([]string, n),
		Type:   make([]string, n),
		Flag:   make([]string, n),
		Mode:   make([]int, n),
		Period: periods,
		Value:  values,
		Dvalue: dvalues,
	}
	for i := 0; i < n; i++ {
		c.Wave[i] = wave
		c.Type[i] = typ
		c.Flag[i] = "X"
		c.Mode[i] = mode
	}
	return &c
}

// ParseCurve unpacks dispersion samples from their serialized form.
func ParseCurve(s string) (*Curve, error) {
	var c Curve
	for _, ln := range strings.Split(s, "\n") {
		ln = strings.TrimSpace(ln)
		if len(ln) == 0 {
			continue
		}
		f := strings.Fields(ln)
		if len(f) != 8 || f[0] != "SURF96" {
			return nil, fmt.Errorf("surf.ParseCurve: bad record '%s'", ln)
		}
		mode, err := strconv.Atoi(f[4])
		if err != nil {
			return nil, fmt.Errorf("surf.ParseCurve: mode '%s': %v", f[4], err)
		}
		per, err := strconv.ParseFloat(f[5], 64)
		if err != nil {
			return nil, fmt.Errorf("surf.ParseCurve: period '%s': %v", f[5], err)
		}
		val, err := strconv.ParseFloat(f[6], 64)
		if err != nil {
			return nil, fmt.Errorf("surf.ParseCurve: value '%s': %v", f[6], err)
		}
		dval, err := strconv.ParseFloat(f[7], 64)
		if err != nil {
			return nil, fmt.Errorf("surf.ParseCurve: dvalue '%s': %v", f[7], err)
		}
		c.Wave = append(c.Wave, f[1])
		c.Type = append(c.Type, f[2])
		c.Flag = append(c.Flag, f[3])
		c.Mode = append(c.Mode, mode)
		c.Period = append(c.Period, per)
		c.Value = append(c.Value, val)
		c.Dvalue = append(c.Dvalue, dval)
	}
	if len(c.Period) == 0 {
		return nil, fmt.Errorf("surf.ParseCurve: no records")
	}
	return &c, nil
}

// String serializes the curve for transport across process boundaries.
func (c *Curve) String() string {
	var b strings.Builder
	for i := range c.Period {
		fmt.Fprintf(&b, "SURF96 %s %s %s %d %g %g %g\n", c.Wave[i], c.Type[i], c.Flag[i], c.Mode[i], c.Period[i], c.Value[i], c.Dvalue[i])
	}
	return b.String()
}

// N is the number of dispersion samples.
func (c *Curve) N() int { return len(c.Period) }
