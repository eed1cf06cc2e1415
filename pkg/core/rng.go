package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// WrapRNG adopts an existing generator, typically one owned by a test.
func WrapRNG(r *rand.Rand) *RNG {
	if r == nil {
		return NewRNG(0)
	}
	return &RNG{r: r}
}

// Bool returns true with probability one half.
func (r *RNG) Bool() bool {
	return r.r.IntN(2) == 1
}

// Reseed restarts the sequence from seed.
func (r *RNG) Reseed(seed int64) {
	r.r = rand.New(rand.NewPCG(uint64(seed), 0))
}
