package swinv

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/maseology/mmaths"
	"github.com/maseology/mmio"
	"github.com/maseology/montecarlo/smpln"
	mrg63k3a "github.com/maseology/goRNG/MRG63k3a"
	"github.com/maseology/swinv/param"
)

// GenerateSamples draws a latin hypercube ensemble of n parameter vectors
// over the free space of a parameterizer, every free parameter spanning its
// (VINF, VSUP) window. When outdirprfx is given the unit sample space is
// saved as csv for later audit.
func GenerateSamples(p param.Parameterizer, n int, outdirprfx string) [][]float64 {
	minf, msup := p.Minf(), p.Msup()
	np := len(minf)

	rng := rand.New(mrg63k3a.New())
	rng.Seed(time.Now().UnixNano())
	sp := smpln.NewLHC(rng, n, np, false)

	ms := make([][]float64, n)
	for k := 0; k < n; k++ {
		m := make([]float64, np)
		for j := 0; j < np; j++ {
			m[j] = mmaths.LinearTransform(minf[j], msup[j], sp.U[j][k])
		}
		ms[k] = m
	}

	if len(outdirprfx) > 0 { // save sample space
		lns := make([]string, n)
		for k := 0; k < n; k++ {
			lns[k] = fmt.Sprint(k)
			for j := 0; j < np; j++ {
				lns[k] += fmt.Sprintf(",%f", sp.U[j][k])
			}
		}
		mmio.WriteLines(outdirprfx+"samplespace.csv", lns)
	}
	return ms
}
