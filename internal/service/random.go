package service

import (
	"math/rand/v2"
	"time"
)

// Rand draws a uniform integer in [0, n).
type Rand interface {
	IntN(n int) int
}

// NewRand returns a PCG source for the seed, or a time-seeded one when seed is 0.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	return rand.New(rand.NewPCG(seed, seed>>32|seed<<32))
}
