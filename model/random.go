package model

import (
	"math/rand/v2"
	"time"
)

// NewRand returns a PCG-backed generator. A zero seed is replaced by the
// current time so that unconfigured runs differ.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewPCG(uint64(seed), 0))
}

// RandomFill returns a FillFunc that marks a cell alive with the given
// probability. A density of 0.5 is uniform over alive and dead.
func RandomFill(rng *rand.Rand, density float64) FillFunc {
	return func() bool {
		return rng.Float64() < density
	}
}
