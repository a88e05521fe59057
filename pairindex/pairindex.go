package pairindex

import "math"

// maxAdjust bounds the verify-and-adjust loop in Resolve. The sqrt
// estimate of the row offset is off by at most one in either direction
// for any n whose pair count fits in int64, so two corrections suffice.
const maxAdjust = 2

// triangular returns T(x) = x(x+1)/2, the x-th triangular number.
// Complexity: O(1).
func triangular(x int) int {
	return x * (x + 1) / 2
}

// PairCount returns the number of unordered pairs of n points,
// n(n−1)/2 — the length of the condensed array for n points.
// For n < 2 there are no pairs and PairCount returns 0.
//
// Complexity: O(1).
func PairCount(n int) int {
	if n < 2 {
		return 0
	}

	return n * (n - 1) / 2
}

// ForwardIndex returns the position of the pair (i, j) in the canonical
// condensed enumeration (0,1),(0,2),…,(0,n−1),(1,2),…,(n−2,n−1):
//
//	k = n·i − i(i+1)/2 + (j − i − 1)
//
// Stage 1 (Validate): n ≥ 2, 0 ≤ i < j < n.
// Stage 2 (Execute): closed-form row-major upper-triangle offset.
//
// Errors: ErrInvalidSize if n < 2; ErrInvalidPair if the indices do not
// name a strict upper-triangle cell.
// Complexity: O(1).
func ForwardIndex(n, i, j int) (int, error) {
	if n < 2 {
		return 0, ErrInvalidSize
	}
	if i < 0 || j <= i || j >= n {
		return 0, ErrInvalidPair
	}

	return n*i - triangular(i) + (j - i - 1), nil
}

// Resolve maps a condensed index k back to the unique pair (i, j),
// 0 ≤ i < j < n, that occupies position k in the canonical enumeration.
// It inverts the triangular-number layout in closed form — a constant
// number of arithmetic operations, independent of n and k; no iteration
// over rows, no table, no n×n matrix.
//
// Stage 1 (Validate): n ≥ 2 and 0 ≤ k < n(n−1)/2; out-of-range inputs
// fail fast, nothing is clamped.
// Stage 2 (Estimate): let C = n(n−1)/2 and y = C − k − 1 (distance from
// the end of the enumeration). The number of points skipped from the far
// end is d = 1 + ⌊(√(8y+1) − 1)/2⌋, the inverse of T(·) at y.
// Stage 3 (Verify): the sqrt runs in floating point and can land one row
// off near triangular-number boundaries when 8y+1 no longer fits a
// float64 mantissa. Each candidate d is checked against the exact
// integer forward mapping and nudged by ±1 until it reconciles.
//
// Errors: ErrInvalidSize, ErrInvalidIndex; ErrComputationFailed if the
// correction bound is exceeded (unreachable for valid inputs).
// Complexity: O(1) time, O(1) space, no allocation.
func Resolve(n, k int) (i, j int, err error) {
	// Validate before touching any arithmetic.
	if n < 2 {
		return 0, 0, ErrInvalidSize
	}
	total := PairCount(n)
	if k < 0 || k >= total {
		return 0, 0, ErrInvalidIndex
	}

	// Closed-form estimate of the skip count d.
	// 8y+1 is formed in float64 on purpose: as an integer it overflows
	// long before the pair count does, and the verify loop below absorbs
	// the (at most one) unit of rounding this costs.
	y := total - k - 1
	d := 1 + int((math.Sqrt(8*float64(y)+1)-1)/2)

	for attempt := 0; ; attempt++ {
		// Keep d inside its feasible band [1, n−1].
		if d < 1 {
			d = 1
		} else if d > n-1 {
			d = n - 1
		}

		i = n - 1 - d
		j = 1 + k + i + triangular(d) - total

		// Exact integer verification of the candidate row.
		if i >= 0 && i < j && j < n {
			if fk := n*i - triangular(i) + (j - i - 1); fk == k {
				return i, j, nil
			}
		}
		if attempt == maxAdjust {
			return 0, 0, ErrComputationFailed
		}

		// j past the row end means the estimated row started too early
		// (d overshot); j folded back onto the diagonal means the
		// opposite. One step in the indicated direction fixes it.
		if j >= n {
			d--
		} else {
			d++
		}
	}
}
