package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"

	"github.com/maseology/mmio"
	"github.com/maseology/swinv"
)

// Stages the per-node theory descriptors for a gridded dispersion inversion:
// loads the domain arrays, builds the parameterizer/datacoder strings and
// writes the whitened observation vectors. The physics solver is bound by
// the caller of the swinv library; this stage is solver-free.
func main() {
	mdlPrfx := flag.String("prfx", "./maupasacq.", "grid array file prefix")
	flag.Parse()

	fmt.Println("")
	tt := mmio.NewTimer()
	defer tt.Lap(fmt.Sprintf("\nRun complete. n processes: %v", runtime.GOMAXPROCS(0)))

	// load data
	dom, err := swinv.LoadDomain(*mdlPrfx)
	if err != nil {
		log.Fatalf(" swinv load error: %v", err)
	}
	tt.Print("Domain load complete\n")
	fmt.Printf(" grid: ny %d  nx %d  nz %d  nper %d  (%d nodes)\n", dom.Ny, dom.Nx, dom.Nz, dom.Nper, dom.Nodes())

	// build per-node descriptors
	pstrs, err := dom.ParameterizerStrings()
	if err != nil {
		log.Fatalf(" swinv parameterizer error: %v", err)
	}
	dstrs, err := dom.DatacoderStrings()
	if err != nil {
		log.Fatalf(" swinv datacoder error: %v", err)
	}
	mmio.WriteLines(*mdlPrfx+"parameterizer_strings.txt", pstrs)
	mmio.WriteLines(*mdlPrfx+"datacoder_strings.txt", dstrs)
	tt.Print("Descriptor build complete\n")

	// whitened observations
	dobs, dunc, err := dom.Target()
	if err != nil {
		log.Fatalf(" swinv target error: %v", err)
	}
	if err := swinv.WriteFloats(*mdlPrfx+"dobs.bin", dobs); err != nil {
		log.Fatalf(" swinv write error: %v", err)
	}
	if err := swinv.WriteFloats(*mdlPrfx+"dunc.bin", dunc); err != nil {
		log.Fatalf(" swinv write error: %v", err)
	}
	tt.Print("Observation staging complete\n")
}
