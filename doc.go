// Package condensed is a small toolkit for working with condensed
// pairwise-distance arrays — the flat form that stores the distance for
// every unordered pair of points exactly once, omitting the diagonal and
// the redundant symmetric half of a full n×n matrix.
//
// 🚀 What is the condensed form?
//
//	For n points there are C = n(n−1)/2 unordered pairs. Enumerating them
//	row-major over the strict upper triangle —
//	(0,1),(0,2),…,(0,n−1),(1,2),…,(n−2,n−1) — yields a flat array of
//	length C. The hard part is going back: given a position k in that
//	array, which pair (i, j) does it belong to?
//
// ✨ What you get:
//
//   - pairindex/ — the core: O(1) inversion of the condensed index via
//     triangular numbers, with an integer verify-and-adjust guard against
//     floating-point rounding at scale. No n×n matrix, no pair list,
//     no iteration.
//   - pdist/ — the workflow around it: condensed pairwise distances for
//     several metrics, argmin/argmax search, deterministic random point
//     clouds, and a symmetric matrix view backed by the condensed array.
//
// ⚙️ Typical flow:
//
//	pts, _ := pdist.RandomPoints(10000, 3, 42)
//	d, _ := pdist.Pairwise(pts, nil)       // len(d) == 10000*9999/2
//	k, _ := pdist.ArgMin(d)                // position of the smallest distance
//	i, j, _ := pairindex.Resolve(10000, k) // which two points is that?
//
// Everything is pure Go, allocation-light, and safe for concurrent use;
// the only dependency is testify, and only in tests.
package condensed
