// Package rng provides seeded, hierarchical random number generation.
// A Rand is constructed from a string seed; independent child streams are
// derived with SeedNew, so the same parent seed and suffix always reproduce
// the same stream. This property underpins all procedural generation.
package rng

import (
	"hash/fnv"
	"math/rand/v2"
)

// Rand is a deterministic random source derived from a string seed.
type Rand struct {
	seed string
	src  *rand.Rand
}

// New creates a Rand from a string seed.
func New(seed string) *Rand {
	// Non-cryptographic PRNG is intentional for deterministic generation.
	// #nosec G404
	return &Rand{
		seed: seed,
		src:  rand.New(rand.NewPCG(seedWord(seed, "a"), seedWord(seed, "b"))),
	}
}

// seedWord hashes the seed string with a salt into one PCG state word.
func seedWord(seed, salt string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(seed))
	_, _ = h.Write([]byte{':'})
	_, _ = h.Write([]byte(salt))
	return h.Sum64()
}

// SeedNew derives an independent child stream. The child depends only on
// the parent's seed string and the suffix, never on how many values have
// been drawn from the parent.
func (r *Rand) SeedNew(suffix string) *Rand {
	return New(r.seed + ":" + suffix)
}

// InitialSeed returns the seed string this Rand was constructed from.
func (r *Rand) InitialSeed() string {
	return r.seed
}

// Float returns a random float64 in [0, 1).
func (r *Rand) Float() float64 {
	return r.src.Float64()
}

// FloatRange returns a random float64 in [min, max).
func (r *Rand) FloatRange(min, max float64) float64 {
	return min + r.src.Float64()*(max-min)
}

// IntRange returns a random integer in [min, max] inclusive.
func (r *Rand) IntRange(min, max int) int {
	if max <= min {
		return min
	}
	return min + r.src.IntN(max-min+1)
}

// Index returns a random index in [0, n). n must be positive.
func (r *Rand) Index(n int) int {
	if n <= 0 {
		return 0
	}
	return r.src.IntN(n)
}

// Choice returns a uniformly random element of items.
// Callers weight a choice by repeating elements in the slice.
// Returns the zero value for an empty slice.
func Choice[T any](r *Rand, items []T) T {
	var zero T
	if len(items) == 0 {
		return zero
	}
	return items[r.Index(len(items))]
}
