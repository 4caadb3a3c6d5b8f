// SPDX-License-Identifier: MIT
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/exactmat/matrix"
	"github.com/katalvlaran/exactmat/scalar"
	"github.com/stretchr/testify/require"
)

func TestSubmatrix(t *testing.T) {
	a := fromInts(t, [][]int64{{1, 2}, {3, 4}})

	got, err := matrix.Submatrix(a, 0, 0)
	require.NoError(t, err)
	requireEqualMatrix(t, fromInts(t, [][]int64{{4}}), got)

	wide := fromInts(t, [][]int64{{1, 2, 3}, {4, 5, 6}})
	got, err = matrix.Submatrix(hide{wide}, 1, 1)
	require.NoError(t, err)
	requireEqualMatrix(t, fromInts(t, [][]int64{{1, 3}}), got)

	one, err := matrix.Submatrix(fromInts(t, [][]int64{{7}}), 0, 0)
	require.NoError(t, err)
	require.Equal(t, 0, one.Rows())
	require.Equal(t, 0, one.Cols())
}

func TestSubmatrix_Errors(t *testing.T) {
	a := fromInts(t, [][]int64{{1, 2}, {3, 4}})

	for _, idx := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}} {
		_, err := matrix.Submatrix(a, idx[0], idx[1])
		require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds, "idx=%v", idx)
	}

	_, err := matrix.Submatrix(MustDense(t, 0, 0), 0, 0)
	require.ErrorIs(t, err, matrix.ErrEmptyMatrix)

	_, err = matrix.Submatrix(nil, 0, 0)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestDeterminant_Known(t *testing.T) {
	cases := []struct {
		name string
		in   [][]int64
		want int64
	}{
		{"1x1", [][]int64{{5}}, 5},
		{"2x2", [][]int64{{1, 2}, {3, 4}}, -2},
		{"3x3", [][]int64{{1, -4, 2}, {-2, 8, -9}, {-1, 7, 0}}, 15},
		{"singular", [][]int64{{1, 2, 3}, {2, 4, 6}, {0, 1, 1}}, 0},
		{"zero row 1", [][]int64{{1, 2}, {0, 0}}, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a := fromInts(t, tc.in)

			got, err := matrix.Determinant(a)
			require.NoError(t, err)
			require.True(t, got.Equal(scalar.New(tc.want)), "cofactor det=%v want %d", got, tc.want)

			got, err = matrix.DeterminantByElimination(a)
			require.NoError(t, err)
			require.True(t, got.Equal(scalar.New(tc.want)), "elimination det=%v want %d", got, tc.want)
		})
	}
}

func TestDeterminant_Identity(t *testing.T) {
	for n := 1; n <= 6; n++ {
		id, err := matrix.NewIdentity(n)
		require.NoError(t, err)

		det, err := matrix.Determinant(id)
		require.NoError(t, err)
		require.True(t, det.Equal(scalar.One), "det(I_%d)=%v", n, det)
	}
}

func TestDeterminant_Fraction(t *testing.T) {
	a := fromStrings(t, [][]string{{"1/2", "1/3"}, {"1/4", "1/5"}})

	det, err := matrix.Determinant(a)
	require.NoError(t, err)
	require.Equal(t, "1/60", det.String()) // 1/10 - 1/12
}

// Both algorithms agree on random integer matrices.
func TestDeterminant_AgreesWithElimination(t *testing.T) {
	for n := 2; n <= 6; n++ {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			a := MustDense(t, n, n)
			fillRandInts(t, a, int64(100+n), 5)

			cof, err := matrix.Determinant(a)
			require.NoError(t, err)
			elim, err := matrix.DeterminantByElimination(hide{a})
			require.NoError(t, err)
			require.True(t, cof.Equal(elim), "cofactor=%v elimination=%v", cof, elim)
		})
	}
}

// det(AB) == det(A) * det(B).
func TestDeterminant_Multiplicative(t *testing.T) {
	a := MustDense(t, 4, 4)
	b := MustDense(t, 4, 4)
	fillRandInts(t, a, 1, 4)
	fillRandInts(t, b, 2, 4)

	ab, err := matrix.Mul(a, b)
	require.NoError(t, err)
	dA, err := matrix.Determinant(a)
	require.NoError(t, err)
	dB, err := matrix.Determinant(b)
	require.NoError(t, err)
	dAB, err := matrix.Determinant(ab)
	require.NoError(t, err)

	require.True(t, dAB.Equal(dA.Mul(dB)))
}

func TestDeterminant_OrderBound(t *testing.T) {
	big, err := matrix.NewIdentity(matrix.DefaultMaxCofactorOrder + 1)
	require.NoError(t, err)

	_, err = matrix.Determinant(big)
	require.ErrorIs(t, err, matrix.ErrOrderTooLarge)

	// identity rows are sparse, so the unbounded expansion stays linear
	det, err := matrix.Determinant(big, matrix.WithMaxCofactorOrder(matrix.UnboundedCofactorOrder))
	require.NoError(t, err)
	require.True(t, det.Equal(scalar.One))

	_, err = matrix.Determinant(fromInts(t, [][]int64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}), matrix.WithMaxCofactorOrder(2))
	require.ErrorIs(t, err, matrix.ErrOrderTooLarge)

	det, err = matrix.DeterminantByElimination(big)
	require.NoError(t, err)
	require.True(t, det.Equal(scalar.One))
}

func TestDeterminant_Errors(t *testing.T) {
	_, err := matrix.Determinant(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = matrix.Determinant(MustDense(t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrNonSquare)

	_, err = matrix.Determinant(MustDense(t, 0, 0))
	require.ErrorIs(t, err, matrix.ErrEmptyMatrix)

	_, err = matrix.DeterminantByElimination(MustDense(t, 3, 2))
	require.ErrorIs(t, err, matrix.ErrNonSquare)

	_, err = matrix.DeterminantByElimination(MustDense(t, 0, 0))
	require.ErrorIs(t, err, matrix.ErrEmptyMatrix)
}
