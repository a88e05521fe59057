package pdist

import "errors"

// Sentinel error set for the package. Public functions return these
// sentinels and tests match them via errors.Is; none of them panic on
// user-triggered conditions.
var (
	// ErrTooFewPoints indicates a point set with fewer than two points.
	ErrTooFewPoints = errors.New("pdist: need at least two points")

	// ErrDimensionMismatch indicates ragged rows or an empty coordinate
	// vector in the input point set.
	ErrDimensionMismatch = errors.New("pdist: points must share one non-zero dimension")

	// ErrNaNInf indicates a NaN or ±Inf coordinate where finite values
	// are required.
	ErrNaNInf = errors.New("pdist: NaN or Inf coordinate encountered")

	// ErrUnknownMetric indicates an unrecognized Metric value in Options.
	ErrUnknownMetric = errors.New("pdist: unknown metric")

	// ErrEmptyDistances indicates an argmin/argmax query over an empty
	// condensed array.
	ErrEmptyDistances = errors.New("pdist: empty condensed array")

	// ErrLengthMismatch indicates a condensed array whose length is not
	// n(n−1)/2 for the claimed point count.
	ErrLengthMismatch = errors.New("pdist: condensed length does not match point count")

	// ErrOutOfRange indicates a matrix row or column index outside [0, n).
	ErrOutOfRange = errors.New("pdist: index out of range")
)
