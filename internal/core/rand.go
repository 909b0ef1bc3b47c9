package core

import (
	"math/rand"
	"time"
)

// Rand is the random source consumed by stochastic simulation code.
// *rand.Rand satisfies it; tests may substitute a scripted sequence.
type Rand interface {
	// Intn returns a value in [0, n).
	Intn(n int) int
}

// ResolveSeed returns seed, or a time-based nonzero seed when seed is 0.
// Record the returned value to reproduce a run.
func ResolveSeed(seed int64) int64 {
	if seed != 0 {
		return seed
	}
	if seed = time.Now().UnixNano(); seed == 0 {
		seed = 1
	}
	return seed
}

// NewRand returns a seeded generator. A zero seed uses the current time.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(ResolveSeed(seed)))
}
