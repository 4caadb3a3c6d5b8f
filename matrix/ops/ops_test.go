package ops_test

import (
	"testing"

	"github.com/katalvlaran/exactmat/matrix"
	"github.com/katalvlaran/exactmat/matrix/ops"
	"github.com/katalvlaran/exactmat/scalar"
	"github.com/stretchr/testify/require"
)

func dense(t *testing.T, rows [][]int64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromInts(rows)
	require.NoError(t, err)

	return m
}

// permuted returns the rows of m in perm order (P·A).
func permuted(t *testing.T, m *matrix.Dense, perm []int) *matrix.Dense {
	t.Helper()
	cols := make([]int, m.Cols())
	for j := range cols {
		cols[j] = j
	}
	out, err := m.Induced(perm, cols)
	require.NoError(t, err)

	return out
}

func TestLU_Reconstructs(t *testing.T) {
	cases := map[string][][]int64{
		"no pivoting": {{4, 3}, {6, 3}},
		"zero pivot":  {{0, 1, 2}, {1, 0, 3}, {4, -3, 8}},
		"scenario":    {{1, -4, 2}, {-2, 8, -9}, {-1, 7, 0}},
	}
	for name, rows := range cases {
		t.Run(name, func(t *testing.T) {
			a := dense(t, rows)
			l, u, perm, err := ops.LU(a)
			require.NoError(t, err)

			n := a.Rows()
			for i := 0; i < n; i++ {
				v, _ := l.At(i, i)
				require.True(t, v.Equal(scalar.One), "L diagonal")
				for j := i + 1; j < n; j++ {
					v, _ = l.At(i, j)
					require.True(t, v.IsZero(), "L upper part")
				}
				for j := 0; j < i; j++ {
					v, _ = u.At(i, j)
					require.True(t, v.IsZero(), "U lower part")
				}
			}

			lu, err := matrix.Mul(l, u)
			require.NoError(t, err)
			require.True(t, matrix.Equal(permuted(t, a, perm), lu), "P·A != L·U:\n%v", lu)
		})
	}
}

func TestLU_Errors(t *testing.T) {
	_, _, _, err := ops.LU(dense(t, [][]int64{{1, 2}, {2, 4}}))
	require.ErrorIs(t, err, ops.ErrSingular)

	_, _, _, err = ops.LU(dense(t, [][]int64{{1, 2, 3}}))
	require.ErrorIs(t, err, matrix.ErrNonSquare)

	_, _, _, err = ops.LU(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestSolve(t *testing.T) {
	a := dense(t, [][]int64{{2, 1, -1}, {-3, -1, 2}, {-2, 1, 2}})
	b := dense(t, [][]int64{{8}, {-11}, {-3}})

	x, err := ops.Solve(a, b)
	require.NoError(t, err)
	require.True(t, matrix.Equal(dense(t, [][]int64{{2}, {3}, {-1}}), x), "x=\n%v", x)
}

// Solve(A, I) agrees with the RREF-based inverse.
func TestSolve_MatchesInverse(t *testing.T) {
	a := dense(t, [][]int64{{0, 2, 1}, {1, 1, 0}, {3, 0, 5}})
	id, err := matrix.NewIdentity(3)
	require.NoError(t, err)

	x, err := ops.Solve(a, id)
	require.NoError(t, err)
	inv, err := matrix.Inverse(a)
	require.NoError(t, err)
	require.True(t, matrix.Equal(inv, x))
}

func TestSolve_Errors(t *testing.T) {
	a := dense(t, [][]int64{{1, 2}, {3, 4}})

	_, err := ops.Solve(a, dense(t, [][]int64{{1}, {2}, {3}}))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = ops.Solve(a, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = ops.Solve(dense(t, [][]int64{{1, 1}, {1, 1}}), dense(t, [][]int64{{1}, {1}}))
	require.ErrorIs(t, err, ops.ErrSingular)
}

func TestNullSpaceBasis(t *testing.T) {
	a := dense(t, [][]int64{{1, 2, 3}, {2, 4, 6}})

	ns, err := ops.NullSpaceBasis(a)
	require.NoError(t, err)
	require.Equal(t, 3, ns.Rows())
	require.Equal(t, 2, ns.Cols())
	require.True(t, matrix.Equal(dense(t, [][]int64{{-2, -3}, {1, 0}, {0, 1}}), ns), "ns=\n%v", ns)

	// A·N == 0
	prod, err := matrix.Mul(a, ns)
	require.NoError(t, err)
	zero, err := matrix.NewDense(2, 2)
	require.NoError(t, err)
	require.True(t, matrix.Equal(zero, prod))
}

func TestNullSpaceBasis_FullRank(t *testing.T) {
	ns, err := ops.NullSpaceBasis(dense(t, [][]int64{{1, 0}, {0, 1}, {1, 1}}))
	require.NoError(t, err)
	require.Equal(t, 2, ns.Rows())
	require.Equal(t, 0, ns.Cols())

	_, err = ops.NullSpaceBasis(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
