// Package integrate estimates one-dimensional definite integrals with the
// Monte Carlo sample-mean estimator.
//
// For an integrand f and an interval [a, b] the engine draws n independent
// points x_i uniformly from the interval and returns
//
//	(b - a) * (f(x_1) + ... + f(x_n)) / n
//
// The statistical error of the estimate shrinks as O(1/sqrt(n)) regardless
// of how smooth f is, which makes sampling attractive when f is expensive or
// irregular.
//
// # Usage
//
//	v, err := integrate.EstimateFunc(func(x float64) float64 { return x * x },
//	    0, 1, 1_000_000, integrate.WithSeed(42))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("%.4f\n", v) // ~0.3333
//
// Integrands can also be any type implementing Integrand; Estimate takes the
// integrand as a type parameter so each evaluation is a direct call.
//
// Run reports the standard error alongside the estimate. The named catalog
// (Lookup, Builtins) provides common integrands together with their exact
// integrals for cross-checking.
//
// # Reproducibility
//
// WithSeed fixes the sampler seed; without it the seed is time-derived and
// reported in Result.Seed. WithWorkers splits sampling across goroutines,
// each with a sampler derived from the master seed and its worker index.
package integrate
