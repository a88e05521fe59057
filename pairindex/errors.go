package pairindex

import "errors"

// Sentinel error set for the package. All public functions return these
// sentinels (unwrapped) and tests match them via errors.Is. Validation
// happens before any computation; out-of-range inputs are never clamped.
var (
	// ErrInvalidSize indicates a point-set size n < 2: no pairs exist.
	ErrInvalidSize = errors.New("pairindex: point-set size must be at least 2")

	// ErrInvalidIndex indicates a condensed index outside [0, n(n−1)/2):
	// no corresponding pair exists.
	ErrInvalidIndex = errors.New("pairindex: condensed index out of range")

	// ErrInvalidPair indicates pair indices not satisfying 0 ≤ i < j < n.
	ErrInvalidPair = errors.New("pairindex: pair indices must satisfy 0 ≤ i < j < n")

	// ErrComputationFailed indicates the internal verify-and-adjust loop
	// could not reconcile the inverted index with its forward mapping.
	// Unreachable for valid inputs; its occurrence signals a latent defect.
	ErrComputationFailed = errors.New("pairindex: index inversion failed to converge")
)
