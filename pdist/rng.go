// Package pdist — deterministic point-cloud generation for demos,
// tests and benchmarks.
//
// Goals:
//   - Determinism: same seed ⇒ identical points across platforms.
//   - Encapsulation: one seed policy, no time-based sources hidden anywhere.
//   - Safety: sentinel errors only, no panics or logging.
package pdist

import "math/rand"

// defaultRNGSeed is the fixed “zero” seed used when callers pass seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultRNGSeed; otherwise use the seed verbatim.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}

	return rand.New(rand.NewSource(s))
}

// RandomPoints generates n points with dim coordinates each, uniform in
// [0, 1). Generation order is fixed (point-major), so a given seed
// always yields the same cloud.
//
// Errors: ErrTooFewPoints if n < 2 (a cloud with no pairs has no use
// here); ErrDimensionMismatch if dim < 1.
// Complexity: O(n·dim) time and space.
func RandomPoints(n, dim int, seed int64) ([][]float64, error) {
	if n < 2 {
		return nil, ErrTooFewPoints
	}
	if dim < 1 {
		return nil, ErrDimensionMismatch
	}

	rng := rngFromSeed(seed)
	points := make([][]float64, n)
	for i := range points {
		p := make([]float64, dim)
		for c := range p {
			p[c] = rng.Float64()
		}
		points[i] = p
	}

	return points, nil
}
