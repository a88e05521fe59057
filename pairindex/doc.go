// Package pairindex maps positions in a condensed pairwise-distance
// array back to the pair of point indices they encode, in O(1).
//
// 🚀 The problem:
//
//	A condensed pairwise-distance array for n points holds n(n−1)/2
//	entries, one per unordered pair (i, j), i < j, enumerated row-major
//	over the strict upper triangle:
//	  (0,1),(0,2),…,(0,n−1),(1,2),…,(n−2,n−1)
//	After locating an entry of interest (say, the minimum distance), you
//	need the pair it belongs to — without building the n×n matrix or the
//	full pair list, and without scanning rows.
//
// ✨ Key features:
//
//   - Resolve: condensed index → (i, j) by closed-form triangular-number
//     inversion; a constant number of arithmetic ops, independent of n.
//   - ForwardIndex: (i, j) → condensed index (the cheap direction).
//   - PairCount: n(n−1)/2, the condensed array length for n points.
//   - Built-in integer verification of the floating-point sqrt estimate,
//     so results stay exact near triangular-number boundaries at large n.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/condensed/pairindex"
//
//	i, j, err := pairindex.Resolve(n, k)
//	if err != nil {
//	  // ErrInvalidSize (n < 2) or ErrInvalidIndex (k out of range)
//	}
//
// Errors:
//
//   - ErrInvalidSize — n < 2 admits no pairs.
//   - ErrInvalidIndex — condensed index outside [0, n(n−1)/2).
//   - ErrInvalidPair — ForwardIndex given indices not satisfying i < j < n.
//   - ErrComputationFailed — the internal correction bound was exceeded;
//     never expected for valid inputs.
//
// Performance:
//
//   - Time:   O(1) per call
//   - Memory: O(1), no allocation
//
// All functions are pure and safe for unsynchronized concurrent use.
package pairindex
