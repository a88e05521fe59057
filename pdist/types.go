// Package pdist: metric selection and functional defaults.
package pdist

// Metric selects the distance function applied to each pair of points.
//
//   - Euclidean        — √Σ(aᵢ−bᵢ)², the usual straight-line distance.
//   - SquaredEuclidean — Σ(aᵢ−bᵢ)²; same ordering as Euclidean without
//     the sqrt, preferred for argmin/argmax work.
//   - Manhattan        — Σ|aᵢ−bᵢ|, the L1 taxicab distance.
//   - Chebyshev        — max|aᵢ−bᵢ|, the L∞ coordinate-wise maximum.
type Metric int

const (
	// Euclidean is the L2 straight-line distance.
	Euclidean Metric = iota

	// SquaredEuclidean is L2 squared; monotone with Euclidean and cheaper.
	SquaredEuclidean

	// Manhattan is the L1 taxicab distance.
	Manhattan

	// Chebyshev is the L∞ coordinate-wise maximum distance.
	Chebyshev
)

// Options configures Pairwise and the ClosestPair/FarthestPair helpers.
//
// Fields:
//   - Metric — which distance function to apply (default Euclidean).
//
// Example:
//
//	opts := pdist.DefaultOptions()
//	opts.Metric = pdist.Manhattan
//	d, err := pdist.Pairwise(points, &opts)
type Options struct {
	Metric Metric
}

// DefaultOptions returns the documented defaults: Euclidean metric.
func DefaultOptions() Options {
	return Options{Metric: Euclidean}
}
