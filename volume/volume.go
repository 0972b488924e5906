// Package volume estimates the union volume and the overlap volume of a set
// of spheres by rejection sampling inside their bounding box.
//
// Points are drawn uniformly inside the tightest axis-aligned box that
// encloses every sphere. Each point is classified by its containment count,
// the number of spheres holding it. A point with count >= 1 is a hit; a
// point with count >= k (the overlap threshold, 2 by default) is an overlap
// hit. Scaling the hit fractions by the box volume gives unbiased estimates
// of the union volume and of the volume covered by at least k spheres.
//
// Result.Theoretical carries the plain sum of sphere volumes as a
// deterministic cross-check. It ignores overlap, so it differs from the
// union estimate whenever spheres intersect.
package volume

import (
	"fmt"
	"math"

	"github.com/R3mmurd/MonteCarlo/errs"
	"github.com/R3mmurd/MonteCarlo/geometry"
	"github.com/R3mmurd/MonteCarlo/internal/options"
	"github.com/R3mmurd/MonteCarlo/internal/partition"
	"github.com/R3mmurd/MonteCarlo/sampler"
)

// Result is the outcome of a volume estimation.
type Result struct {
	HitVolume     float64      // HitVolume estimates the union volume of the spheres.
	OverlapVolume float64      // OverlapVolume estimates the volume inside at least Threshold spheres.
	Hits          int          // Hits is the number of points inside at least one sphere.
	OverlapHits   int          // OverlapHits is the number of points inside at least Threshold spheres.
	Samples       int          // Samples is the number of points drawn.
	Threshold     int          // Threshold is the overlap containment threshold.
	Box           geometry.Box // Box is the sampling bounding box.
	BoxVolume     float64      // BoxVolume is the volume of Box.
	Theoretical   float64      // Theoretical is the sum of sphere volumes, without overlap correction.
	Seed          uint64       // Seed is the master seed used.
	Workers       int          // Workers is the number of goroutines that sampled.
}

// HitFraction returns the fraction of sampled points inside at least one sphere.
func (r Result) HitFraction() float64 {
	if r.Samples == 0 {
		return 0
	}

	return float64(r.Hits) / float64(r.Samples)
}

// counts is the per-worker tally.
type counts struct {
	hits    int
	overlap int
}

// Estimate draws n points in the bounding box of spheres and returns the
// union and overlap volume estimates.
//
// The following configuration errors are returned before any sampling:
//   - errs.ErrEmptyRegion if spheres is empty
//   - errs.ErrZeroSamples if n <= 0
//   - errs.ErrInvalidRadius if a sphere has a negative or non-finite radius
//   - errs.ErrInvalidThreshold if the overlap threshold is below 1
//   - errs.ErrInvalidWorkers if a negative worker count is requested
//   - errs.ErrUnboundedRegion if the bounding box volume overflows
//
// A set whose spheres all have zero radius produces a degenerate box and
// zero volumes; this is not an error.
func Estimate(spheres []geometry.Sphere, n int, opts ...Option) (Result, error) {
	if len(spheres) == 0 {
		return Result{}, errs.ErrEmptyRegion
	}
	if n <= 0 {
		return Result{}, fmt.Errorf("%w: got %d", errs.ErrZeroSamples, n)
	}
	if err := geometry.ValidateAll(spheres); err != nil {
		return Result{}, err
	}

	cfg := defaultConfig()
	if err := options.Apply(&cfg, opts...); err != nil {
		return Result{}, err
	}

	workers, err := partition.Workers(cfg.Workers, n)
	if err != nil {
		return Result{}, err
	}

	box, err := geometry.BoundingBox(spheres)
	if err != nil {
		return Result{}, err
	}
	boxVolume := geometry.BoxVolume(box)
	if math.IsInf(boxVolume, 0) || math.IsNaN(boxVolume) {
		return Result{}, fmt.Errorf("%w: bounding box %s to %s", errs.ErrUnboundedRegion,
			geometry.FormatPoint(box.Min), geometry.FormatPoint(box.Max))
	}

	samplerOpts := []sampler.Option{}
	if cfg.HasSeed {
		samplerOpts = append(samplerOpts, sampler.WithSeed(cfg.Seed))
	}
	src, err := sampler.New(samplerOpts...)
	if err != nil {
		return Result{}, err
	}

	partials, err := partition.Run(src, n, workers, func(s *sampler.Sampler, count int) (counts, error) {
		return classify(s, count, box, spheres, cfg.Threshold), nil
	})
	if err != nil {
		return Result{}, err
	}

	var total counts
	for _, p := range partials {
		total.hits += p.hits
		total.overlap += p.overlap
	}

	fn := float64(n)

	return Result{
		HitVolume:     boxVolume * float64(total.hits) / fn,
		OverlapVolume: boxVolume * float64(total.overlap) / fn,
		Hits:          total.hits,
		OverlapHits:   total.overlap,
		Samples:       n,
		Threshold:     cfg.Threshold,
		Box:           box,
		BoxVolume:     boxVolume,
		Theoretical:   geometry.TheoreticalVolume(spheres),
		Seed:          src.Seed(),
		Workers:       workers,
	}, nil
}

// classify draws count points in box and tallies their containment classes.
// Coordinates are drawn in x, y, z order, one draw per axis.
func classify(s *sampler.Sampler, count int, box geometry.Box, spheres []geometry.Sphere, threshold int) counts {
	var c counts
	for range count {
		p := geometry.Point{
			X: s.Draw(box.Min.X, box.Max.X),
			Y: s.Draw(box.Min.Y, box.Max.Y),
			Z: s.Draw(box.Min.Z, box.Max.Z),
		}

		k := geometry.ContainmentCount(p, spheres)
		if k >= 1 {
			c.hits++
		}
		if k >= threshold {
			c.overlap++
		}
	}

	return c
}
