package pi

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/R3mmurd/MonteCarlo/errs"
)

func TestEstimate_Converges(t *testing.T) {
	for _, n := range []int{100_000, 1_000_000, 4_000_000} {
		got, err := Estimate(n, WithSeed(42))
		require.NoError(t, err)
		// Four standard deviations of the estimator.
		tol := 4 * 4 * math.Sqrt(math.Pi/4*(1-math.Pi/4)/float64(n))
		require.InDelta(t, math.Pi, got, tol, "n=%d", n)
	}
}

func TestEstimate_ErrorShrinksWithSqrtN(t *testing.T) {
	// Root-mean-square error over many seeds at n and 4n should differ by
	// about a factor of two.
	rms := func(n int) float64 {
		sum := 0.0
		const runs = 300
		for seed := range uint64(runs) {
			v, err := Estimate(n, WithSeed(seed+1))
			require.NoError(t, err)
			d := v - math.Pi
			sum += d * d
		}
		return math.Sqrt(sum / runs)
	}

	ratio := rms(2_000) / rms(8_000)
	require.InDelta(t, 2.0, ratio, 0.5)
}

func TestEstimate_Deterministic(t *testing.T) {
	a, err := Run(100_000, WithSeed(9))
	require.NoError(t, err)
	b, err := Run(100_000, WithSeed(9))
	require.NoError(t, err)
	require.Equal(t, a, b)

	pa, err := Run(100_000, WithSeed(9), WithWorkers(4))
	require.NoError(t, err)
	pb, err := Run(100_000, WithSeed(9), WithWorkers(4))
	require.NoError(t, err)
	require.Equal(t, pa, pb)
}

func TestRun_Result(t *testing.T) {
	res, err := Run(1000, WithSeed(3))
	require.NoError(t, err)
	require.Equal(t, 1000, res.Samples)
	require.Equal(t, uint64(3), res.Seed)
	require.Equal(t, 1, res.Workers)
	require.Equal(t, 4*float64(res.Hits)/1000, res.Value)
	require.LessOrEqual(t, res.Hits, res.Samples)
}

func TestRun_Workers(t *testing.T) {
	seq, err := Run(10_000, WithSeed(5))
	require.NoError(t, err)
	one, err := Run(10_000, WithSeed(5), WithWorkers(1))
	require.NoError(t, err)
	require.Equal(t, seq, one)

	par, err := Run(1_000_000, WithSeed(5), WithWorkers(0))
	require.NoError(t, err)
	require.GreaterOrEqual(t, par.Workers, 1)
	require.InDelta(t, math.Pi, par.Value, 0.01)
}

func TestEstimate_Errors(t *testing.T) {
	_, err := Estimate(0)
	require.ErrorIs(t, err, errs.ErrZeroSamples)

	_, err = Estimate(-10)
	require.ErrorIs(t, err, errs.ErrZeroSamples)

	_, err = Estimate(10, WithWorkers(-1))
	require.ErrorIs(t, err, errs.ErrInvalidWorkers)
}
