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

// Uint15 returns a value in [0, 0x7fff], the range of a classic C rand().
// Callers mask the result further to pick grid coordinates and amplitudes.
func (r *RNG) Uint15() int {
	return int(r.r.Uint32() & 0x7fff)
}

// Seed restarts the generator from seed.
func (r *RNG) Seed(seed int64) {
	r.r = rand.New(rand.NewPCG(uint64(seed), 0))
}
