package pet

import "math/rand/v2"

// Rand is the random source used for every probabilistic decision.
type Rand interface {
	Float64() float64
	IntN(n int) int
}

// NewRand returns a seeded random source. A zero seed draws a random one.
func NewRand(seed uint64) Rand {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
