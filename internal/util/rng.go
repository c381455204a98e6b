package util

import "math/rand/v2"

// New returns a PCG-backed generator. Seed 0 is mapped to 1 so a zero-valued
// setting still yields a reproducible stream.
func New(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = 1
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Derive returns the generator for the i-th run of a batch seeded with seed.
func Derive(seed uint64, i int) *rand.Rand {
	return New(seed + uint64(i)*7919)
}
