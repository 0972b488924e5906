package convergence

import (
	"fmt"
	"math"

	"github.com/R3mmurd/MonteCarlo/errs"
)

// Point is one measured error level.
type Point struct {
	Samples  int     // Samples is the sample count per trial.
	RMSError float64 // RMSError is the root-mean-square error over all trials.
}

// PowerFit is the model RMSError = Coefficient * Samples^Exponent.
//
// A Monte Carlo estimator with finite variance has an exponent close to
// -0.5.
type PowerFit struct {
	Coefficient float64
	Exponent    float64
	RSquared    float64 // RSquared is computed on the log-log data.
	RMSE        float64 // RMSE is the residual error in RMSError units.
}

// Predict returns the fitted error at n samples.
func (f PowerFit) Predict(n int) float64 {
	return f.Coefficient * math.Pow(float64(n), f.Exponent)
}

// SamplesFor returns the sample count the fit predicts is needed to reach
// target error. It returns 0 when the fit does not decrease with n.
func (f PowerFit) SamplesFor(target float64) int {
	if f.Exponent >= 0 || target <= 0 || f.Coefficient <= 0 {
		return 0
	}

	return int(math.Ceil(math.Pow(target/f.Coefficient, 1/f.Exponent)))
}

// String formats the model.
func (f PowerFit) String() string {
	return fmt.Sprintf("err = %.4g * n^%.3f", f.Coefficient, f.Exponent)
}

// FitPower fits a power law to points by least squares on ln(err) against
// ln(n). Points with a zero error are ignored. At least two remaining points
// with distinct sample counts are required, otherwise errs.ErrInsufficientData
// is returned.
func FitPower(points []Point) (PowerFit, error) {
	var xs, ys []float64
	for _, p := range points {
		if p.Samples <= 0 || p.RMSError <= 0 || math.IsInf(p.RMSError, 0) || math.IsNaN(p.RMSError) {
			continue
		}
		xs = append(xs, math.Log(float64(p.Samples)))
		ys = append(ys, math.Log(p.RMSError))
	}
	if len(xs) < 2 {
		return PowerFit{}, fmt.Errorf("%w: %d usable points", errs.ErrInsufficientData, len(xs))
	}

	n := float64(len(xs))
	var sumX, sumY, sumXY, sumX2 float64
	for i := range xs {
		sumX += xs[i]
		sumY += ys[i]
		sumXY += xs[i] * ys[i]
		sumX2 += xs[i] * xs[i]
	}

	meanX := sumX / n
	meanY := sumY / n
	denom := sumX2 - n*meanX*meanX
	if denom == 0 {
		return PowerFit{}, fmt.Errorf("%w: all points share one sample count", errs.ErrInsufficientData)
	}

	b := (sumXY - n*meanX*meanY) / denom
	logA := meanY - b*meanX
	fit := PowerFit{Coefficient: math.Exp(logA), Exponent: b}

	var ssTot, ssRes, sqErr float64
	for i := range xs {
		pred := logA + b*xs[i]
		ssTot += (ys[i] - meanY) * (ys[i] - meanY)
		ssRes += (ys[i] - pred) * (ys[i] - pred)

		d := math.Exp(ys[i]) - math.Exp(pred)
		sqErr += d * d
	}
	if ssTot > 0 {
		fit.RSquared = 1 - ssRes/ssTot
	}
	fit.RMSE = math.Sqrt(sqErr / n)

	return fit, nil
}
