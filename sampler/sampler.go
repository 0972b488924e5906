// Package sampler provides the seeded uniform random source shared by every
// estimator in this module.
//
// A Sampler wraps a PCG generator from math/rand/v2. For a fixed seed the
// sequence of draws is exactly reproducible. When no seed is supplied the
// seed is derived from the current time; Seed reports the value actually
// used so a time-seeded run can be replayed.
//
// A Sampler is not safe for concurrent use. Parallel callers derive one
// child per worker with Derive.
package sampler

import (
	"math/rand/v2"
	"time"

	"github.com/R3mmurd/MonteCarlo/internal/hash"
	"github.com/R3mmurd/MonteCarlo/internal/options"
)

// Config holds the construction parameters of a Sampler.
type Config struct {
	Seed    uint64
	HasSeed bool
}

// Option is a functional option for Config.
type Option = options.Option[*Config]

// WithSeed fixes the generator seed, making the draw sequence reproducible.
func WithSeed(seed uint64) Option {
	return options.NoError(func(cfg *Config) {
		cfg.Seed = seed
		cfg.HasSeed = true
	})
}

// seedFunc supplies the default seed. Tests may replace it.
var seedFunc = func() uint64 { return uint64(time.Now().UnixNano()) }

// Sampler draws independent uniform values over caller-supplied intervals.
type Sampler struct {
	seed uint64
	rng  *rand.Rand
}

// New creates a Sampler. Without WithSeed the seed is time-derived.
func New(opts ...Option) (*Sampler, error) {
	cfg := Config{}
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if !cfg.HasSeed {
		seed = seedFunc()
	}

	return NewSeeded(seed), nil
}

// NewSeeded creates a Sampler with an explicit seed.
func NewSeeded(seed uint64) *Sampler {
	return &Sampler{
		seed: seed,
		rng:  rand.New(rand.NewPCG(seed, hash.Mix(seed))),
	}
}

// Seed returns the seed the sampler was created with.
func (s *Sampler) Seed() uint64 {
	return s.seed
}

// Draw returns one value uniformly distributed in the half-open interval
// [low, high) and advances the generator by one step. Reversed bounds are
// swapped; equal bounds return low.
func (s *Sampler) Draw(low, high float64) float64 {
	if low > high {
		low, high = high, low
	}

	return low + (high-low)*s.rng.Float64()
}

// Unit returns one value uniformly distributed in [0, 1).
func (s *Sampler) Unit() float64 {
	return s.rng.Float64()
}

// Derive returns an independent sampler for sub-stream index. The child's
// seed depends only on this sampler's seed and index, not on how many
// values have been drawn so far.
func (s *Sampler) Derive(index int) *Sampler {
	return NewSeeded(hash.DeriveSeed(s.seed, index))
}
