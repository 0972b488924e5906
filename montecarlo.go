// Package montecarlo estimates integrals, pi and sphere-set volumes by
// Monte Carlo sampling.
//
// The functions in this package are thin wrappers with explicit seeds over
// the estimator packages. Use those packages directly for worker
// parallelism, time-derived seeds or the full result structs:
//
//   - sampler: seeded uniform draws over a real interval
//   - integrate: sample-mean estimator for 1-D integrals
//   - volume: union and overlap volumes of spheres by rejection sampling
//   - pi: quarter-circle estimate of pi
//   - spheres: sphere-set file reading and writing
//
// # Basic Usage
//
//	v, _ := montecarlo.Integrate(func(x float64) float64 { return x * x }, 0, 1, 1_000_000, 42)
//	// v is close to 1/3
//
//	hit, overlap, _ := montecarlo.EstimateVolumes(spheres, 1_000_000, 2, 42)
//
// Every estimator is deterministic for a fixed seed. Configuration errors
// (zero samples, empty sphere set, invalid threshold) are returned before
// any sampling and can be matched with errors.Is against the sentinels in
// the errs package.
package montecarlo

import (
	"github.com/R3mmurd/MonteCarlo/geometry"
	"github.com/R3mmurd/MonteCarlo/integrate"
	"github.com/R3mmurd/MonteCarlo/pi"
	"github.com/R3mmurd/MonteCarlo/volume"
)

// Sphere is a solid ball given by its center and radius.
type Sphere = geometry.Sphere

// NewSphere returns a sphere centered at (x, y, z) with radius r.
func NewSphere(x, y, z, r float64) Sphere {
	return geometry.NewSphere(x, y, z, r)
}

// Integrate estimates the integral of f over [a, b] with n samples drawn
// from a sampler seeded with seed.
//
// Returns errs.ErrZeroSamples if n <= 0. If a == b the result is 0.
func Integrate(f func(float64) float64, a, b float64, n int, seed uint64) (float64, error) {
	return integrate.EstimateFunc(f, a, b, n, integrate.WithSeed(seed))
}

// EstimatePi estimates pi from n points in the unit square.
func EstimatePi(n int, seed uint64) (float64, error) {
	return pi.Estimate(n, pi.WithSeed(seed))
}

// EstimateVolumes returns the union volume of spheres and the volume
// covered by at least threshold of them, both estimated from n points in
// the spheres' bounding box.
//
// Returns errs.ErrEmptyRegion for an empty set, errs.ErrZeroSamples for
// n <= 0 and errs.ErrInvalidThreshold for threshold < 1.
func EstimateVolumes(spheres []Sphere, n, threshold int, seed uint64) (hit, overlap float64, err error) {
	res, err := volume.Estimate(spheres, n,
		volume.WithOverlapThreshold(threshold),
		volume.WithSeed(seed),
	)
	if err != nil {
		return 0, 0, err
	}

	return res.HitVolume, res.OverlapVolume, nil
}

// TheoreticalVolume returns the sum of the spheres' volumes, ignoring any
// overlap between them.
func TheoreticalVolume(spheres []Sphere) float64 {
	return geometry.TheoreticalVolume(spheres)
}
