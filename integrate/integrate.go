package integrate

import (
	"fmt"
	"math"

	"github.com/R3mmurd/MonteCarlo/errs"
	"github.com/R3mmurd/MonteCarlo/internal/options"
	"github.com/R3mmurd/MonteCarlo/internal/partition"
	"github.com/R3mmurd/MonteCarlo/sampler"
)

// Integrand is a real function of one real variable. Implementations must be
// pure: the engine may call Eval from several goroutines when workers are
// enabled.
type Integrand interface {
	Eval(x float64) float64
}

// Func adapts an ordinary function to the Integrand interface.
type Func func(float64) float64

// Eval calls f(x).
func (f Func) Eval(x float64) float64 {
	return f(x)
}

// Result is the outcome of an integration run.
type Result struct {
	Value    float64 // Value is the estimate of the definite integral.
	StdError float64 // StdError is the sample standard error of Value.
	Samples  int     // Samples is the number of integrand evaluations.
	Seed     uint64  // Seed is the master seed used, including a time-derived one.
	Workers  int     // Workers is the number of goroutines that sampled.
}

// moments accumulates the first two raw moments of f over a share of samples.
type moments struct {
	sum   float64
	sumSq float64
}

// Estimate returns the Monte Carlo estimate of the integral of f over [a, b]
// using n uniform samples.
//
// The integrand is a type parameter so the per-sample call is statically
// dispatched. See Run for the error conditions.
func Estimate[F Integrand](f F, a, b float64, n int, opts ...Option) (float64, error) {
	res, err := Run(f, a, b, n, opts...)
	if err != nil {
		return 0, err
	}

	return res.Value, nil
}

// EstimateFunc is Estimate for a plain function value.
func EstimateFunc(f func(float64) float64, a, b float64, n int, opts ...Option) (float64, error) {
	return Estimate(Func(f), a, b, n, opts...)
}

// Run integrates f over [a, b] with n samples and reports the estimate along
// with its standard error and the parameters actually used.
//
// The estimate is (b - a) * sum(f(x_i)) / n with x_i uniform between the
// bounds. If a > b the samples are drawn from [b, a] and the result carries
// the sign of b - a. If a == b the result is 0 and f is never called.
//
// Returns errs.ErrZeroSamples for n <= 0, errs.ErrInvalidBounds for a NaN or
// infinite bound, and errs.ErrNilIntegrand for a nil integrand. These checks
// happen before any sampling.
func Run[F Integrand](f F, a, b float64, n int, opts ...Option) (Result, error) {
	if isNil(f) {
		return Result{}, errs.ErrNilIntegrand
	}
	if n <= 0 {
		return Result{}, fmt.Errorf("%w: got %d", errs.ErrZeroSamples, n)
	}
	if !isFinite(a) || !isFinite(b) {
		return Result{}, fmt.Errorf("%w: [%v, %v]", errs.ErrInvalidBounds, a, b)
	}

	cfg := defaultConfig()
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

	res := Result{Samples: n, Seed: src.Seed(), Workers: workers}
	if a == b {
		return res, nil
	}

	partials, err := partition.Run(src, n, workers, func(s *sampler.Sampler, count int) (moments, error) {
		var m moments
		for range count {
			y := f.Eval(s.Draw(a, b))
			m.sum += y
			m.sumSq += y * y
		}

		return m, nil
	})
	if err != nil {
		return Result{}, err
	}

	var total moments
	for _, p := range partials {
		total.sum += p.sum
		total.sumSq += p.sumSq
	}

	width := b - a
	fn := float64(n)
	res.Value = width * total.sum / fn
	if n > 1 {
		mean := total.sum / fn
		variance := (total.sumSq - fn*mean*mean) / (fn - 1)
		if variance < 0 {
			variance = 0 // rounding
		}
		res.StdError = math.Abs(width) * math.Sqrt(variance/fn)
	}

	return res, nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// isNil reports whether f holds no function.
func isNil[F Integrand](f F) bool {
	switch v := any(f).(type) {
	case nil:
		return true
	case Func:
		return v == nil
	default:
		return false
	}
}
