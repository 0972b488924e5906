// Package partition splits a sampling run across workers.
//
// Each worker receives a contiguous share of the samples and its own sampler
// derived from the master seed and the worker index, so a run is
// reproducible for a fixed (seed, workers) pair. Partial results are
// returned in worker order for a deterministic reduction.
package partition

import (
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/R3mmurd/MonteCarlo/errs"
	"github.com/R3mmurd/MonteCarlo/sampler"
)

// Workers resolves a requested worker count for n samples.
//
// Zero selects runtime.GOMAXPROCS(0). The result never exceeds n, so no
// worker is started with an empty share.
func Workers(requested, n int) (int, error) {
	if requested < 0 {
		return 0, fmt.Errorf("%w: %d", errs.ErrInvalidWorkers, requested)
	}

	workers := requested
	if workers == 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > n {
		workers = n
	}
	if workers < 1 {
		workers = 1
	}

	return workers, nil
}

// Chunks splits n into k shares of n/k samples; the last share also takes
// the remainder.
func Chunks(n, k int) []int {
	if k < 1 {
		k = 1
	}

	per := n / k
	shares := make([]int, k)
	for i := range shares {
		shares[i] = per
	}
	shares[k-1] += n % k

	return shares
}

// Run evaluates fn over n samples split across workers and returns the
// partial results in worker order. The first error returned by a worker is
// returned and the partials are discarded.
//
// With a single worker fn runs on the calling goroutine with master itself,
// so the draw sequence is identical to a plain sequential loop.
func Run[T any](master *sampler.Sampler, n, workers int, fn func(s *sampler.Sampler, count int) (T, error)) ([]T, error) {
	if workers <= 1 {
		p, err := fn(master, n)
		if err != nil {
			return nil, err
		}

		return []T{p}, nil
	}

	shares := Chunks(n, workers)
	partials := make([]T, len(shares))

	var g errgroup.Group
	for i, count := range shares {
		g.Go(func() error {
			p, err := fn(master.Derive(i), count)
			if err != nil {
				return fmt.Errorf("worker %d: %w", i, err)
			}
			partials[i] = p

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return partials, nil
}
