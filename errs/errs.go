// Package errs defines the sentinel errors returned by the montecarlo packages.
//
// Callers should match them with errors.Is; most are wrapped with additional
// context via fmt.Errorf("%w: ...").
package errs

import "errors"

// Configuration errors. These are returned before any sampling begins.
var (
	// ErrZeroSamples is returned when an estimator is asked for zero (or a negative number of) samples.
	ErrZeroSamples = errors.New("sample count must be positive")
	// ErrEmptyRegion is returned when a sphere set is empty and its bounding box is undefined.
	ErrEmptyRegion = errors.New("empty region set")
	// ErrUnboundedRegion is returned when a sphere set's bounding box volume is not a finite number.
	ErrUnboundedRegion = errors.New("bounding box volume overflows")
	// ErrInvalidBounds is returned when an integration bound is NaN or infinite.
	ErrInvalidBounds = errors.New("invalid integration bounds")
	// ErrInvalidRadius is returned for a sphere with a negative or non-finite radius or a non-finite center.
	ErrInvalidRadius = errors.New("invalid sphere")
	// ErrInvalidThreshold is returned when an overlap threshold is below 1.
	ErrInvalidThreshold = errors.New("overlap threshold must be at least 1")
	// ErrInvalidWorkers is returned when a negative worker count is requested.
	ErrInvalidWorkers = errors.New("invalid worker count")
	// ErrNilIntegrand is returned when no integrand function is supplied.
	ErrNilIntegrand = errors.New("nil integrand")
	// ErrUnknownIntegrand is returned when a named integrand is not in the catalog.
	ErrUnknownIntegrand = errors.New("unknown integrand")
	// ErrInsufficientData is returned when a convergence fit has fewer than two usable points.
	ErrInsufficientData = errors.New("insufficient data for a convergence fit")
)

// Input errors.
var (
	// ErrUnreadableInput is returned when an input file cannot be opened or read.
	ErrUnreadableInput = errors.New("unreadable input")
	// ErrUnsupportedCompression is returned for an unknown compression type.
	ErrUnsupportedCompression = errors.New("unsupported compression type")
)
