// Package pdist computes condensed pairwise-distance arrays and the
// small surrounding workflow: generating point clouds, locating extreme
// distances, and viewing the condensed array as a symmetric matrix.
//
// What:
//
//   - Pairwise: distances for every unordered pair of points, flattened
//     in the canonical order (0,1),(0,2),…,(0,n−1),(1,2),…,(n−2,n−1).
//   - Metrics: Euclidean, SquaredEuclidean, Manhattan, Chebyshev.
//   - ArgMin / ArgMax: position of the extreme entry in a condensed array.
//   - ClosestPair / FarthestPair: the end-to-end composition — compute,
//     search, then resolve the position back to point indices via
//     pairindex.Resolve.
//   - Matrix: a read-only symmetric n×n view over a condensed array,
//     zero on the diagonal, with no n×n storage behind it.
//   - RandomPoints: deterministic uniform point clouds for demos and
//     benchmarks (same seed ⇒ identical points).
//
// Why:
//
//   - Nearest/farthest pair reports without materializing n×n matrices.
//   - Feeding clustering or linkage code that consumes condensed input.
//   - Benchmarking condensed-index resolution against naive lookups.
//
// Complexity:
//
//   - Pairwise:     O(n²·dim) time, O(n²) output (that is the condensed
//     array itself; no additional quadratic scratch).
//   - ArgMin/ArgMax: O(C) over the array length C.
//   - Matrix.At:     O(1).
//
// Errors:
//
//   - ErrTooFewPoints: fewer than two points, no pairs to measure.
//   - ErrDimensionMismatch: ragged rows or an empty coordinate vector.
//   - ErrNaNInf: a non-finite coordinate was encountered.
//   - ErrUnknownMetric: the Options name a metric this package lacks.
//   - ErrEmptyDistances: ArgMin/ArgMax over an empty array.
//   - ErrLengthMismatch: condensed array length does not equal n(n−1)/2.
//   - ErrOutOfRange: matrix index outside [0, n).
package pdist
