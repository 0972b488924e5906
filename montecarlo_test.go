package montecarlo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/R3mmurd/MonteCarlo/errs"
)

func TestIntegrate(t *testing.T) {
	square := func(x float64) float64 { return x * x }

	v, err := Integrate(square, 0, 1, 1_000_000, 42)
	require.NoError(t, err)
	require.InEpsilon(t, 1.0/3.0, v, 0.01)

	again, err := Integrate(square, 0, 1, 1_000_000, 42)
	require.NoError(t, err)
	require.Equal(t, v, again)

	zero, err := Integrate(square, 3, 3, 10, 1)
	require.NoError(t, err)
	require.Zero(t, zero)

	_, err = Integrate(square, 0, 1, 0, 1)
	require.ErrorIs(t, err, errs.ErrZeroSamples)
}

func TestEstimatePi(t *testing.T) {
	v, err := EstimatePi(1_000_000, 7)
	require.NoError(t, err)
	require.InDelta(t, math.Pi, v, 0.01)

	again, err := EstimatePi(1_000_000, 7)
	require.NoError(t, err)
	require.Equal(t, v, again)

	_, err = EstimatePi(0, 7)
	require.ErrorIs(t, err, errs.ErrZeroSamples)
}

func TestEstimateVolumes(t *testing.T) {
	exact := 4.0 / 3.0 * math.Pi

	t.Run("single sphere", func(t *testing.T) {
		hit, overlap, err := EstimateVolumes([]Sphere{NewSphere(1, 2, 3, 1)}, 1_000_000, 2, 11)
		require.NoError(t, err)
		require.InEpsilon(t, exact, hit, 0.01)
		require.Zero(t, overlap)
	})

	t.Run("coincident spheres", func(t *testing.T) {
		set := []Sphere{NewSphere(0, 0, 0, 1), NewSphere(0, 0, 0, 1)}
		hit, overlap, err := EstimateVolumes(set, 1_000_000, 2, 11)
		require.NoError(t, err)
		require.InEpsilon(t, exact, hit, 0.01)
		require.Equal(t, hit, overlap)
	})

	t.Run("errors", func(t *testing.T) {
		_, _, err := EstimateVolumes(nil, 10, 2, 1)
		require.ErrorIs(t, err, errs.ErrEmptyRegion)

		_, _, err = EstimateVolumes([]Sphere{NewSphere(0, 0, 0, 1)}, 0, 2, 1)
		require.ErrorIs(t, err, errs.ErrZeroSamples)

		_, _, err = EstimateVolumes([]Sphere{NewSphere(0, 0, 0, 1)}, 10, 0, 1)
		require.ErrorIs(t, err, errs.ErrInvalidThreshold)
	})
}

func TestTheoreticalVolume(t *testing.T) {
	set := []Sphere{NewSphere(0, 0, 0, 1), NewSphere(5, 5, 5, 2)}
	require.InDelta(t, 4.0/3.0*math.Pi*9, TheoreticalVolume(set), 1e-12)
	require.Zero(t, TheoreticalVolume(nil))
}
