// Package convergence measures how the error of a Monte Carlo estimator
// shrinks with the sample count.
//
// A study runs an estimator many times at several sample counts, each run
// with its own derived seed, and records the root-mean-square error against
// a known exact value. FitPower then fits err = a * n^b to those points; for
// an unbiased estimator with finite variance b is close to -0.5, so
// quadrupling the sample count halves the error.
//
//	study, err := convergence.Run(
//	    func(n int, seed uint64) (float64, error) { return pi.Estimate(n, pi.WithSeed(seed)) },
//	    math.Pi,
//	    []int{1_000, 4_000, 16_000, 64_000},
//	    convergence.WithRuns(64),
//	)
//	fmt.Println(study.Fit) // err = 1.6 * n^-0.500
package convergence

import (
	"fmt"
	"math"
	"slices"

	"github.com/R3mmurd/MonteCarlo/errs"
	"github.com/R3mmurd/MonteCarlo/internal/hash"
	"github.com/R3mmurd/MonteCarlo/internal/options"
	"github.com/R3mmurd/MonteCarlo/sampler"
)

// DefaultRuns is the number of trials per sample count.
const DefaultRuns = 32

// Trial computes one estimate from n samples with the given seed.
type Trial func(n int, seed uint64) (float64, error)

// Config holds study settings.
type Config struct {
	Runs    int
	Seed    uint64
	HasSeed bool
}

// Option is a functional option for Config.
type Option = options.Option[*Config]

// WithRuns sets the number of trials per sample count. At least two are
// needed for a meaningful RMS error.
func WithRuns(runs int) Option {
	return options.New(func(cfg *Config) error {
		if runs < 2 {
			return fmt.Errorf("%w: runs must be at least 2, got %d", errs.ErrInsufficientData, runs)
		}
		cfg.Runs = runs

		return nil
	})
}

// WithSeed fixes the master seed from which every trial seed is derived.
func WithSeed(seed uint64) Option {
	return options.NoError(func(cfg *Config) {
		cfg.Seed = seed
		cfg.HasSeed = true
	})
}

// Study is the outcome of Run.
type Study struct {
	Points []Point   // Points holds one entry per sample count, in ascending order.
	Fit    PowerFit  // Fit is the power law fitted to Points.
	Runs   int       // Runs is the number of trials per sample count.
	Seed   uint64    // Seed is the master seed.
	Exact  float64   // Exact is the reference value.
	Means  []float64 // Means holds the mean estimate per sample count.
}

// Run measures trial at every sample count in sizes against exact.
//
// Trial seeds are derived from the master seed and the trial index, so a
// study is reproducible for a fixed seed. Sizes are deduplicated and sorted.
// Returns errs.ErrZeroSamples for a non-positive size and
// errs.ErrInsufficientData when fewer than two distinct sizes are given or
// the errors cannot be fitted. The first trial error aborts the study.
func Run(trial Trial, exact float64, sizes []int, opts ...Option) (Study, error) {
	if trial == nil {
		return Study{}, errs.ErrNilIntegrand
	}

	counts := slices.Clone(sizes)
	slices.Sort(counts)
	counts = slices.Compact(counts)
	if len(counts) > 0 && counts[0] <= 0 {
		return Study{}, fmt.Errorf("%w: size %d", errs.ErrZeroSamples, counts[0])
	}
	if len(counts) < 2 {
		return Study{}, fmt.Errorf("%w: need two distinct sample counts, got %d", errs.ErrInsufficientData, len(counts))
	}

	cfg := Config{Runs: DefaultRuns}
	if err := options.Apply(&cfg, opts...); err != nil {
		return Study{}, err
	}

	samplerOpts := []sampler.Option{}
	if cfg.HasSeed {
		samplerOpts = append(samplerOpts, sampler.WithSeed(cfg.Seed))
	}
	src, err := sampler.New(samplerOpts...)
	if err != nil {
		return Study{}, err
	}
	master := src.Seed()

	study := Study{
		Points: make([]Point, len(counts)),
		Means:  make([]float64, len(counts)),
		Runs:   cfg.Runs,
		Seed:   master,
		Exact:  exact,
	}
	for i, n := range counts {
		var sum, sumSq float64
		for r := range cfg.Runs {
			v, err := trial(n, hash.DeriveSeed(master, i*cfg.Runs+r))
			if err != nil {
				return Study{}, fmt.Errorf("trial n=%d run=%d: %w", n, r, err)
			}
			d := v - exact
			sum += v
			sumSq += d * d
		}
		study.Points[i] = Point{Samples: n, RMSError: math.Sqrt(sumSq / float64(cfg.Runs))}
		study.Means[i] = sum / float64(cfg.Runs)
	}

	study.Fit, err = FitPower(study.Points)
	if err != nil {
		return Study{}, err
	}

	return study, nil
}
