package swinv

import (
	"fmt"
	"math/rand"
	"runtime"
	"time"

	"github.com/maseology/glbopt"
	"github.com/maseology/mmaths"
	"github.com/maseology/objfunc"
	mrg63k3a "github.com/maseology/goRNG/MRG63k3a"
)

// InvertNode searches one node's free parameter space by shuffled complex
// evolution against the node's own observed curve, minimizing the rms
// whitened-data misfit. Solver failures inside the search are penalized
// rather than aborted, since trial models may be non-physical.
func InvertNode(t *Theory, verbose bool) (m []float64, of float64) {
	minf, msup := t.Par.Minf(), t.Par.Msup()
	np := len(minf)
	dobs, _ := t.Dc.Target()

	rng := rand.New(mrg63k3a.New())
	rng.Seed(time.Now().UnixNano())

	toM := func(u []float64) []float64 {
		m := make([]float64, np)
		for j := range u {
			m[j] = mmaths.LinearTransform(minf[j], msup[j], u[j])
		}
		return m
	}
	gen := func(u []float64) float64 {
		d, err := t.Forward(toM(u))
		if err != nil {
			return 9999. // non-physical trial model
		}
		return objfunc.RMSE(dobs, d)
	}

	if verbose {
		fmt.Println(" optimizing..")
	}
	uFinal, _ := glbopt.SCE(runtime.GOMAXPROCS(0), np, rng, gen, true)
	m = toM(uFinal)
	of = gen(uFinal)
	if verbose {
		fmt.Printf("\nfinal parameters: %v\n RMSE: %.5f\n", m, of)
	}
	return m, of
}
