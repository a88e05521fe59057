// Package pdist: symmetric matrix view over a condensed array.
package pdist

import "github.com/katalvlaran/condensed/pairindex"

// Matrix is a read-only symmetric n×n distance matrix backed by a
// condensed array. It stores n(n−1)/2 values, answers At(i, j) in O(1)
// via the canonical upper-triangle index, and returns 0 on the
// diagonal. There is no n×n storage behind it.
type Matrix struct {
	n int       // number of points
	d []float64 // condensed backing array, length n(n−1)/2
}

// NewMatrix wraps a condensed array as a symmetric n×n view.
// The array is referenced, not copied; the caller must not mutate it
// while the view is in use.
//
// Stage 1 (Validate): n ≥ 2 and len(d) == n(n−1)/2.
// Stage 2 (Finalize): wrap, no allocation.
//
// Errors: ErrTooFewPoints, ErrLengthMismatch.
// Complexity: O(1).
func NewMatrix(n int, d []float64) (*Matrix, error) {
	if n < 2 {
		return nil, ErrTooFewPoints
	}
	if len(d) != pairindex.PairCount(n) {
		return nil, ErrLengthMismatch
	}

	return &Matrix{n: n, d: d}, nil
}

// Rows returns the number of rows of the view. Complexity: O(1).
func (m *Matrix) Rows() int {
	return m.n
}

// Cols returns the number of columns of the view. Complexity: O(1).
func (m *Matrix) Cols() int {
	return m.n
}

// Condensed returns the backing condensed array without copying.
// Complexity: O(1).
func (m *Matrix) Condensed() []float64 {
	return m.d
}

// At returns the distance between points row and col: zero on the
// diagonal, the condensed entry of the unordered pair otherwise.
// Symmetry is structural — At(i, j) and At(j, i) read the same cell.
//
// Errors: ErrOutOfRange.
// Complexity: O(1).
func (m *Matrix) At(row, col int) (float64, error) {
	if row < 0 || row >= m.n || col < 0 || col >= m.n {
		return 0, ErrOutOfRange
	}
	if row == col {
		return 0, nil
	}
	if row > col {
		row, col = col, row
	}

	// Bounds were checked above; ForwardIndex cannot fail here.
	k, err := pairindex.ForwardIndex(m.n, row, col)
	if err != nil {
		return 0, err
	}

	return m.d[k], nil
}
