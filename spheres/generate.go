package spheres

import (
	"fmt"

	"github.com/R3mmurd/MonteCarlo/errs"
	"github.com/R3mmurd/MonteCarlo/geometry"
	"github.com/R3mmurd/MonteCarlo/internal/options"
	"github.com/R3mmurd/MonteCarlo/sampler"
)

// GenerateConfig controls random sphere-set generation.
type GenerateConfig struct {
	Extent    float64 // Extent bounds every center coordinate to [-Extent, Extent].
	MinRadius float64
	MaxRadius float64
	Seed      uint64
	HasSeed   bool
}

func defaultGenerateConfig() GenerateConfig {
	return GenerateConfig{
		Extent:    5,
		MinRadius: 0.5,
		MaxRadius: 2,
	}
}

// GenerateOption is a functional option for GenerateConfig.
type GenerateOption = options.Option[*GenerateConfig]

// WithExtent bounds center coordinates to [-extent, extent].
func WithExtent(extent float64) GenerateOption {
	return options.New(func(cfg *GenerateConfig) error {
		if extent < 0 {
			return fmt.Errorf("extent must be non-negative, got %v", extent)
		}
		cfg.Extent = extent

		return nil
	})
}

// WithRadiusRange draws radii uniformly from [minR, maxR].
func WithRadiusRange(minR, maxR float64) GenerateOption {
	return options.New(func(cfg *GenerateConfig) error {
		if minR < 0 || maxR < minR {
			return fmt.Errorf("%w: radius range [%v, %v]", errs.ErrInvalidRadius, minR, maxR)
		}
		cfg.MinRadius = minR
		cfg.MaxRadius = maxR

		return nil
	})
}

// WithGenerateSeed fixes the generator seed.
func WithGenerateSeed(seed uint64) GenerateOption {
	return options.NoError(func(cfg *GenerateConfig) {
		cfg.Seed = seed
		cfg.HasSeed = true
	})
}

// Generate returns count random spheres. It is meant for benchmarks and
// demonstrations of the volume estimator.
func Generate(count int, opts ...GenerateOption) ([]geometry.Sphere, error) {
	if count <= 0 {
		return nil, fmt.Errorf("%w: sphere count %d", errs.ErrEmptyRegion, count)
	}

	cfg := defaultGenerateConfig()
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}

	samplerOpts := []sampler.Option{}
	if cfg.HasSeed {
		samplerOpts = append(samplerOpts, sampler.WithSeed(cfg.Seed))
	}
	src, err := sampler.New(samplerOpts...)
	if err != nil {
		return nil, err
	}

	out := make([]geometry.Sphere, count)
	for i := range out {
		out[i] = geometry.NewSphere(
			src.Draw(-cfg.Extent, cfg.Extent),
			src.Draw(-cfg.Extent, cfg.Extent),
			src.Draw(-cfg.Extent, cfg.Extent),
			src.Draw(cfg.MinRadius, cfg.MaxRadius),
		)
	}

	return out, nil
}
