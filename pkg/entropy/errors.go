package entropy

import "errors"

// Failures are reported through these sentinels, wrapped with context at
// the point of violation. Match with errors.Is.
var (
	// ErrInvalidInput covers malformed calls: neither or both of samples
	// and a distribution supplied, or a required bin specification missing.
	ErrInvalidInput = errors.New("invalid input")

	// ErrTypeMismatch reports a distribution whose entries are not valid
	// probability masses (negative, NaN or infinite).
	ErrTypeMismatch = errors.New("probabilities must be finite and non-negative")

	// ErrDimensionMismatch reports a bin specification whose length does
	// not match the data dimensionality, or joint inputs with differing
	// sample counts.
	ErrDimensionMismatch = errors.New("dimension mismatch")

	// ErrProbNotNormalized reports a distribution, supplied or computed,
	// that does not sum to 1 within tolerance.
	ErrProbNotNormalized = errors.New("probabilities should sum to 1")

	// ErrMissingData reports a method that needs raw samples but was given
	// only a distribution.
	ErrMissingData = errors.New("method requires original data")

	// ErrUnsupportedMethod reports an unrecognized estimation method.
	ErrUnsupportedMethod = errors.New("unsupported method")
)
