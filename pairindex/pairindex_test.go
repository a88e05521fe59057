package pairindex_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/condensed/pairindex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPairCount verifies the condensed array length for a range of
// point-set sizes, including the no-pairs degenerate sizes.
func TestPairCount(t *testing.T) {
	assert.Equal(t, 0, pairindex.PairCount(0), "n=0 has no pairs")
	assert.Equal(t, 0, pairindex.PairCount(1), "n=1 has no pairs")
	assert.Equal(t, 1, pairindex.PairCount(2), "n=2 has exactly one pair")
	assert.Equal(t, 10, pairindex.PairCount(5), "n=5 has C(5,2)=10 pairs")
	assert.Equal(t, 12497500, pairindex.PairCount(5000), "n=5000 has 5000*4999/2 pairs")
}

// TestResolve_CanonicalOrderSmall pins the full canonical enumeration
// for n=5: (0,1),(0,2),(0,3),(0,4),(1,2),(1,3),(1,4),(2,3),(2,4),(3,4).
func TestResolve_CanonicalOrderSmall(t *testing.T) {
	want := [][2]int{
		{0, 1}, {0, 2}, {0, 3}, {0, 4},
		{1, 2}, {1, 3}, {1, 4},
		{2, 3}, {2, 4},
		{3, 4},
	}

	for k, p := range want {
		i, j, err := pairindex.Resolve(5, k)
		require.NoError(t, err, "k=%d must resolve", k)
		assert.Equal(t, p[0], i, "k=%d row", k)
		assert.Equal(t, p[1], j, "k=%d column", k)
	}
}

// TestResolve_Boundaries checks the first and last condensed index for
// several sizes: index 0 is always (0,1) and index C−1 is always
// (n−2, n−1).
func TestResolve_Boundaries(t *testing.T) {
	for _, n := range []int{2, 3, 5, 10, 100, 5000} {
		i, j, err := pairindex.Resolve(n, 0)
		require.NoError(t, err, "n=%d first index", n)
		assert.Equal(t, 0, i, "n=%d first pair row", n)
		assert.Equal(t, 1, j, "n=%d first pair column", n)

		last := pairindex.PairCount(n) - 1
		i, j, err = pairindex.Resolve(n, last)
		require.NoError(t, err, "n=%d last index", n)
		assert.Equal(t, n-2, i, "n=%d last pair row", n)
		assert.Equal(t, n-1, j, "n=%d last pair column", n)
	}
}

// TestResolve_RejectsOutOfRange ensures validation failures carry the
// documented sentinels and happen before any computation.
func TestResolve_RejectsOutOfRange(t *testing.T) {
	_, _, err := pairindex.Resolve(5, -1)
	assert.ErrorIs(t, err, pairindex.ErrInvalidIndex, "negative index must be rejected")

	_, _, err = pairindex.Resolve(5, 10)
	assert.ErrorIs(t, err, pairindex.ErrInvalidIndex, "index == C must be rejected")

	_, _, err = pairindex.Resolve(1, 0)
	assert.ErrorIs(t, err, pairindex.ErrInvalidSize, "n=1 admits no pairs")

	_, _, err = pairindex.Resolve(0, 0)
	assert.ErrorIs(t, err, pairindex.ErrInvalidSize, "n=0 admits no pairs")
}

// TestResolve_BijectionSmallSizes sweeps every condensed index for all
// n up to 60 and checks the resolved pairs cover the strict upper
// triangle exactly once each — no duplicates, no omissions.
func TestResolve_BijectionSmallSizes(t *testing.T) {
	for n := 2; n <= 60; n++ {
		total := pairindex.PairCount(n)
		seen := make(map[[2]int]bool, total)

		for k := 0; k < total; k++ {
			i, j, err := pairindex.Resolve(n, k)
			require.NoError(t, err, "n=%d k=%d", n, k)
			require.True(t, 0 <= i && i < j && j < n, "n=%d k=%d yielded (%d,%d)", n, k, i, j)
			require.False(t, seen[[2]int{i, j}], "n=%d pair (%d,%d) resolved twice", n, i, j)
			seen[[2]int{i, j}] = true
		}

		assert.Len(t, seen, total, "n=%d must cover all pairs", n)
	}
}

// TestForwardIndex_RoundTrip verifies Resolve∘ForwardIndex is the
// identity over every pair of several point sets.
func TestForwardIndex_RoundTrip(t *testing.T) {
	for _, n := range []int{2, 3, 7, 25, 128} {
		for i := 0; i < n-1; i++ {
			for j := i + 1; j < n; j++ {
				k, err := pairindex.ForwardIndex(n, i, j)
				require.NoError(t, err, "n=%d (%d,%d)", n, i, j)

				ri, rj, err := pairindex.Resolve(n, k)
				require.NoError(t, err, "n=%d k=%d", n, k)
				require.Equal(t, i, ri, "n=%d k=%d row", n, k)
				require.Equal(t, j, rj, "n=%d k=%d column", n, k)
			}
		}
	}
}

// TestForwardIndex_RejectsInvalidPairs covers the validation surface of
// the forward direction: bad sizes, reversed, equal and out-of-range
// indices.
func TestForwardIndex_RejectsInvalidPairs(t *testing.T) {
	_, err := pairindex.ForwardIndex(1, 0, 1)
	assert.ErrorIs(t, err, pairindex.ErrInvalidSize, "n < 2 must be rejected")

	_, err = pairindex.ForwardIndex(5, 3, 3)
	assert.ErrorIs(t, err, pairindex.ErrInvalidPair, "i == j is not a pair")

	_, err = pairindex.ForwardIndex(5, 3, 1)
	assert.ErrorIs(t, err, pairindex.ErrInvalidPair, "i > j is not canonical")

	_, err = pairindex.ForwardIndex(5, -1, 2)
	assert.ErrorIs(t, err, pairindex.ErrInvalidPair, "negative row")

	_, err = pairindex.ForwardIndex(5, 2, 5)
	assert.ErrorIs(t, err, pairindex.ErrInvalidPair, "column ≥ n")
}

// TestResolve_LargeEndpoints pins the n=5000 endpoints: the condensed
// array has 12497500 entries; the first resolves to (0,1) and the last
// to (4998,4999).
func TestResolve_LargeEndpoints(t *testing.T) {
	i, j, err := pairindex.Resolve(5000, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, i)
	assert.Equal(t, 1, j)

	i, j, err = pairindex.Resolve(5000, 12497500-1)
	require.NoError(t, err)
	assert.Equal(t, 4998, i)
	assert.Equal(t, 4999, j)
}

// TestResolve_PrecisionStress samples 10000 condensed indices for large
// point sets and checks the round trip, guarding the floating-point
// sqrt inversion near triangular-number boundaries.
func TestResolve_PrecisionStress(t *testing.T) {
	const samples = 10000

	rng := rand.New(rand.NewSource(1))
	for _, n := range []int{10000, 50000, 100000} {
		total := pairindex.PairCount(n)

		for s := 0; s < samples; s++ {
			k := rng.Intn(total)

			i, j, err := pairindex.Resolve(n, k)
			require.NoError(t, err, "n=%d k=%d", n, k)
			require.True(t, 0 <= i && i < j && j < n, "n=%d k=%d yielded (%d,%d)", n, k, i, j)

			fk, err := pairindex.ForwardIndex(n, i, j)
			require.NoError(t, err, "n=%d (%d,%d)", n, i, j)
			require.Equal(t, k, fk, "n=%d round trip", n)
		}
	}
}

// TestResolve_TriangularBoundaries exercises every row start and row
// end for a mid-sized n — exactly the indices where an off-by-one in
// the sqrt estimate would surface.
func TestResolve_TriangularBoundaries(t *testing.T) {
	const n = 3000

	for i := 0; i < n-1; i++ {
		start, err := pairindex.ForwardIndex(n, i, i+1)
		require.NoError(t, err)
		ri, rj, err := pairindex.Resolve(n, start)
		require.NoError(t, err, "row %d start", i)
		require.Equal(t, i, ri, "row %d start row", i)
		require.Equal(t, i+1, rj, "row %d start column", i)

		end, err := pairindex.ForwardIndex(n, i, n-1)
		require.NoError(t, err)
		ri, rj, err = pairindex.Resolve(n, end)
		require.NoError(t, err, "row %d end", i)
		require.Equal(t, i, ri, "row %d end row", i)
		require.Equal(t, n-1, rj, "row %d end column", i)
	}
}
