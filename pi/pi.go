// Package pi estimates π by sampling the unit square and counting the points
// that fall inside the quarter disk x² + y² ≤ 1.
//
// The quarter disk covers π/4 of the square, so 4·hits/n converges to π
// with an error that shrinks roughly as 1/√n.
package pi

import (
	"fmt"

	"github.com/R3mmurd/MonteCarlo/errs"
	"github.com/R3mmurd/MonteCarlo/internal/options"
	"github.com/R3mmurd/MonteCarlo/internal/partition"
	"github.com/R3mmurd/MonteCarlo/sampler"
)

// Config holds the run parameters of a π estimation.
type Config struct {
	Seed    uint64
	HasSeed bool
	Workers int
}

// Option is a functional option for Config.
type Option = options.Option[*Config]

// WithSeed fixes the sampler seed.
func WithSeed(seed uint64) Option {
	return options.NoError(func(cfg *Config) {
		cfg.Seed = seed
		cfg.HasSeed = true
	})
}

// WithWorkers splits the samples across n goroutines. Zero selects GOMAXPROCS.
func WithWorkers(n int) Option {
	return options.NoError(func(cfg *Config) {
		cfg.Workers = n
	})
}

// Result is the outcome of a π estimation.
type Result struct {
	Value   float64
	Hits    int
	Samples int
	Seed    uint64
	Workers int
}

// Estimate returns 4·hits/n for n points drawn uniformly in [0,1]².
// Returns errs.ErrZeroSamples for n <= 0.
func Estimate(n int, opts ...Option) (float64, error) {
	res, err := Run(n, opts...)
	if err != nil {
		return 0, err
	}

	return res.Value, nil
}

// Run is Estimate with the hit count and run parameters.
func Run(n int, opts ...Option) (Result, error) {
	if n <= 0 {
		return Result{}, fmt.Errorf("%w: got %d", errs.ErrZeroSamples, n)
	}

	cfg := Config{Workers: 1}
	if err := options.Apply(&cfg, opts...); err != nil {
		return Result{}, err
	}

	workers, err := partition.Workers(cfg.Workers, n)
	if err != nil {
		return Result{}, err
	}

	samplerOpts := []sampler.Option{}
	if cfg.HasSeed {
		samplerOpts = append(samplerOpts, sampler.WithSeed(cfg.Seed))
	}
	src, err := sampler.New(samplerOpts...)
	if err != nil {
		return Result{}, err
	}

	partials, err := partition.Run(src, n, workers, func(s *sampler.Sampler, count int) (int, error) {
		hits := 0
		for range count {
			x := s.Draw(0, 1)
			y := s.Draw(0, 1)
			if x*x+y*y <= 1 {
				hits++
			}
		}

		return hits, nil
	})
	if err != nil {
		return Result{}, err
	}

	hits := 0
	for _, h := range partials {
		hits += h
	}

	return Result{
		Value:   4 * float64(hits) / float64(n),
		Hits:    hits,
		Samples: n,
		Seed:    src.Seed(),
		Workers: workers,
	}, nil
}
