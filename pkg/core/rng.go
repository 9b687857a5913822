package core

import "math/rand/v2"

// RNG derives per-session seeds from one master seed, so a run of games is
// reproducible from a single number and any one game from its own seed.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Seed returns the next session seed.
func (r *RNG) Seed() uint64 {
	return r.r.Uint64()
}

// Stream returns the generator a session seeded with seed draws food from.
func Stream(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, 0))
}
