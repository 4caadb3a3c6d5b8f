// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures and utilities for the kernels.
//   • Keep every fixture exact (integers or small fractions) so comparisons
//     are plain equality.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/exactmat/matrix"
	"github.com/katalvlaran/exactmat/scalar"
	"github.com/stretchr/testify/require"
)

// hide WRAPS any Matrix to hide its concrete type from type assertions.
// Implementation:
//   - Stage 1: Embed matrix.Matrix to forward all methods.
//   - Stage 2: Use hide{X} in tests to force non-*Dense (fallback) paths.
//
// Notes:
//   - Prefer wrapping ONLY the operand you want to de-opt; keep the other one
//     *Dense to isolate path differences.
type hide struct{ matrix.Matrix }

// MustDense ALLOCATES an r×c *Dense or fails the test (fatal on error).
func MustDense(tb testing.TB, r, c int) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewDense(r, c)
	if err != nil {
		tb.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return m
}

// fromInts builds a *Dense from an integer literal or fails the test.
func fromInts(tb testing.TB, rows [][]int64) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewDenseFromInts(rows)
	require.NoError(tb, err)

	return m
}

// fromStrings builds a *Dense from textual cells ("1/3", "-2", "0.5").
func fromStrings(tb testing.TB, rows [][]string) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewDenseFromStrings(rows)
	require.NoError(tb, err)

	return m
}

// at reads m[i,j] or fails the test.
func at(tb testing.TB, m matrix.Matrix, i, j int) scalar.Scalar {
	tb.Helper()
	v, err := m.At(i, j)
	require.NoError(tb, err)

	return v
}

// requireEqualMatrix asserts exact equality with a readable diff on failure.
func requireEqualMatrix(tb testing.TB, want, got matrix.Matrix) {
	tb.Helper()
	require.Truef(tb, matrix.Equal(want, got), "want:\n%vgot:\n%v", want, got)
}

// fillRandInts fills m with integers in [-span, span] from a fixed seed.
func fillRandInts(tb testing.TB, m *matrix.Dense, seed int64, span int64) {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	r, c := m.Shape()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v := rng.Int63n(2*span+1) - span
			require.NoError(tb, m.Set(i, j, scalar.New(v)))
		}
	}
}

// isRREF reports whether m satisfies the reduced row echelon form rules:
// each non-zero row leads with 1, leads move strictly right, every pivot
// column is zero outside its pivot row, and zero rows sit at the bottom.
func isRREF(tb testing.TB, m matrix.Matrix) bool {
	tb.Helper()
	rows, cols := m.Rows(), m.Cols()
	prevLead := -1
	seenZeroRow := false
	for i := 0; i < rows; i++ {
		lead := -1
		for j := 0; j < cols; j++ {
			if !at(tb, m, i, j).IsZero() {
				lead = j
				break
			}
		}
		if lead < 0 {
			seenZeroRow = true
			continue
		}
		if seenZeroRow || lead <= prevLead {
			return false
		}
		if !at(tb, m, i, lead).Equal(scalar.One) {
			return false
		}
		for k := 0; k < rows; k++ {
			if k != i && !at(tb, m, k, lead).IsZero() {
				return false
			}
		}
		prevLead = lead
	}

	return true
}
