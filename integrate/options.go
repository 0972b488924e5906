package integrate

import (
	"github.com/R3mmurd/MonteCarlo/internal/options"
)

// Config holds the run parameters of an integration.
type Config struct {
	Seed    uint64
	HasSeed bool
	Workers int
}

// defaultConfig returns a sequential, time-seeded configuration.
func defaultConfig() Config {
	return Config{Workers: 1}
}

// Option is a functional option for Config.
type Option = options.Option[*Config]

// WithSeed fixes the sampler seed so the estimate is reproducible.
func WithSeed(seed uint64) Option {
	return options.NoError(func(cfg *Config) {
		cfg.Seed = seed
		cfg.HasSeed = true
	})
}

// WithWorkers splits the samples across n goroutines, each with its own
// derived sampler. Zero selects GOMAXPROCS. Results are reproducible for a
// fixed (seed, workers) pair but differ between worker counts.
func WithWorkers(n int) Option {
	return options.NoError(func(cfg *Config) {
		cfg.Workers = n
	})
}
