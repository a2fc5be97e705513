// Package chance provides the single randomness abstraction every
// probability-driven game rule draws from.
package chance

import (
	"math/rand/v2"
	"time"
)

// Source is the randomness provider for terrain, treasure, toughness,
// item breakage, brawls and digging.
//
// A game session shares one Source. Implementations need not be safe for
// concurrent use.
type Source interface {
	// Intn returns a non-negative random int in [0, n).
	//
	// Precondition: n > 0.
	Intn(n int) int
	// Float64 returns a random float in [0.0, 1.0).
	Float64() float64
}

// Between returns a uniform int in [lo, hi].
//
// Precondition: lo <= hi.
func Between(src Source, lo, hi int) int {
	return lo + src.Intn(hi-lo+1)
}

type seededSource struct {
	rng *rand.Rand
}

// NewSeeded returns a Source backed by a PCG generator. A zero seed picks
// one from the clock.
func NewSeeded(seed int64) Source {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &seededSource{rng: rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15))}
}

func (s *seededSource) Intn(n int) int {
	if n <= 0 {
		panic("chance: Intn called with n <= 0")
	}
	return s.rng.IntN(n)
}

func (s *seededSource) Float64() float64 {
	return s.rng.Float64()
}
