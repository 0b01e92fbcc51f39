package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return NewStream(seed, 0)
}

// NewStream creates a deterministic RNG for one of many independent streams
// sharing a seed. Streams with different ids never share state, so each batch
// job can draw from its own stream without coordinating with the others.
func NewStream(seed int64, stream uint64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), stream))}
}

// Float64 returns a uniform value in [0, 1).
func (r *RNG) Float64() float64 {
	return r.r.Float64()
}

// Symmetric returns a uniform value in [-1, 1).
func (r *RNG) Symmetric() float64 {
	return r.r.Float64()*2 - 1
}

// Fill overwrites buf with uniform values in [0, 1).
func (r *RNG) Fill(buf []float64) {
	for i := range buf {
		buf[i] = r.r.Float64()
	}
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }
