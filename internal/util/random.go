package util

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// pcgStream selects the PCG stream; the seed picks the state within it.
const pcgStream = 0x5eed5eed

// Sampler wraps a seeded random source. One Sampler is created per run and
// passed to every generator in order, so a fixed seed reproduces the whole
// dataset.
type Sampler struct {
	rng *rand.Rand
}

// NewSampler creates a sampler seeded with seed.
func NewSampler(seed int64) *Sampler {
	return &Sampler{rng: rand.New(rand.NewPCG(uint64(seed), pcgStream))}
}

// Float64 returns a value in [0, 1).
func (s *Sampler) Float64() float64 {
	return s.rng.Float64()
}

// Uniform returns a value in [lo, hi). When hi < lo the bounds are swapped.
func (s *Sampler) Uniform(lo, hi float64) float64 {
	if hi < lo {
		lo, hi = hi, lo
	}
	return distuv.Uniform{Min: lo, Max: hi, Src: s.rng}.Rand()
}

// IntBetween returns an integer in [lo, hi], both inclusive.
func (s *Sampler) IntBetween(lo, hi int) int {
	if hi < lo {
		lo, hi = hi, lo
	}
	return lo + s.rng.IntN(hi-lo+1)
}

// Intn returns an integer in [0, n). It returns 0 when n <= 0.
func (s *Sampler) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return s.rng.IntN(n)
}

// Normal returns a Gaussian draw with the given mean and standard deviation.
// A zero or negative sigma still consumes a draw so the stream stays aligned.
func (s *Sampler) Normal(mu, sigma float64) float64 {
	if sigma < 0 {
		sigma = 0
	}
	return distuv.Normal{Mu: mu, Sigma: sigma, Src: s.rng}.Rand()
}

// Bernoulli returns true with probability p.
func (s *Sampler) Bernoulli(p float64) bool {
	if p <= 0 {
		s.rng.Float64()
		return false
	}
	if p >= 1 {
		s.rng.Float64()
		return true
	}
	return distuv.Bernoulli{P: p, Src: s.rng}.Rand() == 1
}

// Distinct returns k distinct indices from [0, n) in draw order.
// k is clamped to n.
func (s *Sampler) Distinct(n, k int) []int {
	if n <= 0 || k <= 0 {
		return nil
	}
	if k > n {
		k = n
	}
	return s.rng.Perm(n)[:k]
}

// Pick returns a uniformly chosen element of options.
func Pick[T any](s *Sampler, options []T) T {
	return options[s.Intn(len(options))]
}
