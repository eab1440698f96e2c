package core

import "math/rand/v2"

// RNG is a locally scoped deterministic generator. Each grid owns its own
// instance so no global random state is shared between worlds.
type RNG struct {
	r    *rand.Rand
	seed int64
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0)), seed: seed}
}

// Seed reports the seed the RNG was created with.
func (r *RNG) Seed() int64 { return r.seed }

// Odd draws one value and reports whether it is odd.
func (r *RNG) Odd() bool {
	return r.r.Uint64()&1 == 1
}

// FillOdd draws one value per element, in order, and stores 1 for odd draws
// and 0 for even ones.
func (r *RNG) FillOdd(buf []uint8) {
	for i := range buf {
		buf[i] = uint8(r.r.Uint64() & 1)
	}
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }
