package volume

import (
	"fmt"

	"github.com/R3mmurd/MonteCarlo/errs"
	"github.com/R3mmurd/MonteCarlo/internal/options"
)

// DefaultOverlapThreshold counts a point as overlapping when at least two
// spheres contain it.
const DefaultOverlapThreshold = 2

// Config holds the run parameters of a volume estimation.
type Config struct {
	Threshold int
	Seed      uint64
	HasSeed   bool
	Workers   int
}

// defaultConfig returns a sequential, time-seeded configuration with the
// pairwise overlap threshold.
func defaultConfig() Config {
	return Config{
		Threshold: DefaultOverlapThreshold,
		Workers:   1,
	}
}

// Option is a functional option for Config.
type Option = options.Option[*Config]

// WithOverlapThreshold sets the minimum containment count k for a point to
// count toward the overlap volume. k = 1 makes the overlap volume equal the
// union volume; k = 3 measures triple overlaps, and so on.
//
// Returns errs.ErrInvalidThreshold when k < 1.
func WithOverlapThreshold(k int) Option {
	return options.New(func(cfg *Config) error {
		if k < 1 {
			return fmt.Errorf("%w: got %d", errs.ErrInvalidThreshold, k)
		}
		cfg.Threshold = k

		return nil
	})
}

// WithSeed fixes the sampler seed so the estimate is reproducible.
func WithSeed(seed uint64) Option {
	return options.NoError(func(cfg *Config) {
		cfg.Seed = seed
		cfg.HasSeed = true
	})
}

// WithWorkers splits the samples across n goroutines. Zero selects
// GOMAXPROCS.
func WithWorkers(n int) Option {
	return options.NoError(func(cfg *Config) {
		cfg.Workers = n
	})
}
