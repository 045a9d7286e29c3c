package generation

import "math/rand"

// Random is the pseudorandom stream owned by one generation session. Every
// stage draws from it in a fixed order, so the draw sequence is part of what a
// seed reproduces.
type Random struct {
	r *rand.Rand
}

// NewRandom returns a stream seeded with seed.
func NewRandom(seed int64) *Random {
	return &Random{r: rand.New(rand.NewSource(seed))}
}

// Uniform returns an integer in [0, n).
func (r *Random) Uniform(n int) int {
	return r.r.Intn(n)
}

// UniformRange returns an integer in [lo, hi).
func (r *Random) UniformRange(lo, hi int) int {
	return lo + r.r.Intn(hi-lo)
}

// Bernoulli returns true with probability p.
func (r *Random) Bernoulli(p float64) bool {
	return r.r.Float64() < p
}

// Coin is a fair Bernoulli trial.
func (r *Random) Coin() bool {
	return r.Bernoulli(0.5)
}
