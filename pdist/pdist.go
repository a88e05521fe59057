// Package pdist — condensed pairwise-distance computation and the
// argmin/argmax + resolve composition on top of it.
//
// Design:
//   - Validate everything up front (shape, finiteness, metric), then run
//     a tight double loop with the metric picked once, not per pair.
//   - The output array is the condensed form itself; no n×n scratch.
//   - Strict sentinels from errors.go on any invalid input.
package pdist

import (
	"math"

	"github.com/katalvlaran/condensed/pairindex"
)

// distanceFn measures two equal-length coordinate vectors.
type distanceFn func(a, b []float64) float64

// metricFn maps a Metric to its implementation, or ErrUnknownMetric.
// Complexity: O(1).
func metricFn(m Metric) (distanceFn, error) {
	switch m {
	case Euclidean:
		return euclidean, nil
	case SquaredEuclidean:
		return squaredEuclidean, nil
	case Manhattan:
		return manhattan, nil
	case Chebyshev:
		return chebyshev, nil
	default:
		return nil, ErrUnknownMetric
	}
}

// euclidean returns √Σ(aᵢ−bᵢ)². Complexity: O(dim).
func euclidean(a, b []float64) float64 {
	return math.Sqrt(squaredEuclidean(a, b))
}

// squaredEuclidean returns Σ(aᵢ−bᵢ)². Complexity: O(dim).
func squaredEuclidean(a, b []float64) float64 {
	var sum float64
	for i := range a {
		diff := a[i] - b[i]
		sum += diff * diff
	}

	return sum
}

// manhattan returns Σ|aᵢ−bᵢ|. Complexity: O(dim).
func manhattan(a, b []float64) float64 {
	var sum float64
	for i := range a {
		sum += math.Abs(a[i] - b[i])
	}

	return sum
}

// chebyshev returns max|aᵢ−bᵢ|. Complexity: O(dim).
func chebyshev(a, b []float64) float64 {
	var best float64
	for i := range a {
		if d := math.Abs(a[i] - b[i]); d > best {
			best = d
		}
	}

	return best
}

// validatePoints checks that the point set is rectangular with a
// non-zero dimension and finite coordinates.
//
// Errors: ErrTooFewPoints, ErrDimensionMismatch, ErrNaNInf.
// Complexity: O(n·dim).
func validatePoints(points [][]float64) error {
	if len(points) < 2 {
		return ErrTooFewPoints
	}

	dim := len(points[0])
	if dim == 0 {
		return ErrDimensionMismatch
	}
	for _, p := range points {
		if len(p) != dim {
			return ErrDimensionMismatch
		}
		for _, c := range p {
			if math.IsNaN(c) || math.IsInf(c, 0) {
				return ErrNaNInf
			}
		}
	}

	return nil
}

// Pairwise computes the condensed pairwise-distance array of the point
// set: one entry per unordered pair (i, j), i < j, in the canonical
// row-major upper-triangle order. The result has length n(n−1)/2 and
// position k of it belongs to pairindex.Resolve(n, k).
//
// A nil opts means DefaultOptions (Euclidean).
//
// Errors: ErrTooFewPoints, ErrDimensionMismatch, ErrNaNInf,
// ErrUnknownMetric.
// Complexity: O(n²·dim) time, O(n²) for the returned array.
func Pairwise(points [][]float64, opts *Options) ([]float64, error) {
	if err := validatePoints(points); err != nil {
		return nil, err
	}

	metric := Euclidean
	if opts != nil {
		metric = opts.Metric
	}
	dist, err := metricFn(metric)
	if err != nil {
		return nil, err
	}

	n := len(points)
	out := make([]float64, pairindex.PairCount(n))

	k := 0
	for i := 0; i < n-1; i++ {
		for j := i + 1; j < n; j++ {
			out[k] = dist(points[i], points[j])
			k++
		}
	}

	return out, nil
}

// ArgMin returns the position of the smallest entry in a condensed
// array. Ties resolve to the earliest position.
//
// Errors: ErrEmptyDistances.
// Complexity: O(len(d)).
func ArgMin(d []float64) (int, error) {
	if len(d) == 0 {
		return 0, ErrEmptyDistances
	}

	best := 0
	for k := 1; k < len(d); k++ {
		if d[k] < d[best] {
			best = k
		}
	}

	return best, nil
}

// ArgMax returns the position of the largest entry in a condensed
// array. Ties resolve to the earliest position.
//
// Errors: ErrEmptyDistances.
// Complexity: O(len(d)).
func ArgMax(d []float64) (int, error) {
	if len(d) == 0 {
		return 0, ErrEmptyDistances
	}

	best := 0
	for k := 1; k < len(d); k++ {
		if d[k] > d[best] {
			best = k
		}
	}

	return best, nil
}

// ClosestPair reports the two points at minimum distance: it computes
// the condensed array, finds its argmin, and resolves that position
// back to point indices.
//
// Errors: everything Pairwise can return.
// Complexity: O(n²·dim) time, O(n²) transient memory.
func ClosestPair(points [][]float64, opts *Options) (i, j int, dist float64, err error) {
	return extremePair(points, opts, ArgMin)
}

// FarthestPair reports the two points at maximum distance, the ArgMax
// counterpart of ClosestPair.
//
// Errors: everything Pairwise can return.
// Complexity: O(n²·dim) time, O(n²) transient memory.
func FarthestPair(points [][]float64, opts *Options) (i, j int, dist float64, err error) {
	return extremePair(points, opts, ArgMax)
}

// extremePair is the shared compute→search→resolve composition behind
// ClosestPair and FarthestPair.
func extremePair(points [][]float64, opts *Options, locate func([]float64) (int, error)) (int, int, float64, error) {
	d, err := Pairwise(points, opts)
	if err != nil {
		return 0, 0, 0, err
	}

	k, err := locate(d)
	if err != nil {
		return 0, 0, 0, err
	}

	i, j, err := pairindex.Resolve(len(points), k)
	if err != nil {
		return 0, 0, 0, err
	}

	return i, j, d[k], nil
}
