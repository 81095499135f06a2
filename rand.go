package cloudgen

import (
	"math/rand/v2"
)

// Rand is the source of all randomness used to generate a scene. Two Rands
// created with the same seed produce the same sequence of values.
//
// A Rand is not safe for concurrent use. Generate independent scenes with
// independent Rands.
type Rand struct {
	src   *rand.Rand
	draws int
}

// NewRand returns a generator seeded with seed.
func NewRand(seed uint64) *Rand {
	return &Rand{
		src: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

// Float64 returns a uniformly distributed value in [0, 1).
func (r *Rand) Float64() float64 {
	r.draws++
	return r.src.Float64()
}

// Uniform returns a uniformly distributed value between lo and hi. For lo ≤ hi
// the result lies in [lo, hi].
func (r *Rand) Uniform(lo, hi float64) float64 {
	v := lo + (hi-lo)*r.Float64()
	// Rounding can push the result past hi when the range is wide.
	return min(max(v, min(lo, hi)), max(lo, hi))
}

// Draws returns the number of values drawn from r so far.
func (r *Rand) Draws() int {
	return r.draws
}
