// Package ops provides advanced exact operations on top of the exactmat/matrix package:
// LU factorization with row pivoting, linear solves and null-space bases.
package ops

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/exactmat/matrix"
	"github.com/katalvlaran/exactmat/scalar"
)

// ErrSingular is returned when no non-zero pivot exists in a column.
var ErrSingular = errors.New("ops: matrix is singular")

// LU factors a square matrix as P·A = L·U with exact arithmetic.
// L is unit lower triangular, U is upper triangular and perm describes P:
// row i of P·A is row perm[i] of A.
//
// Blueprint:
//
//	Stage 1 (Validate): m not nil, square.
//	Stage 2 (Prepare): copy A into a row-slice work grid.
//	Stage 3 (Execute): Gaussian elimination; the pivot is the first non-zero
//	entry at or below the diagonal (exact test), rows are swapped in A, L and perm.
//	Stage 4 (Finalize): set the unit diagonal of L and build L and U.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrNonSquare, ErrSingular.
// Time Complexity: O(n³), where n = m.Rows(); Memory: O(n²) for L and U.
func LU(m matrix.Matrix) (l, u *matrix.Dense, perm []int, err error) {
	if err = matrix.ValidateSquareNonNil(m); err != nil {
		return nil, nil, nil, fmt.Errorf("LU: %w", err)
	}
	n := m.Rows()

	a, err := grid(m)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("LU: %w", err)
	}
	lower := zeros(n, n)
	perm = make([]int, n)
	for i := range perm {
		perm[i] = i
	}

	var (
		i, j, k, p int
		f          scalar.Scalar
	)
	for k = 0; k < n; k++ {
		for p = k; p < n && a[p][k].IsZero(); p++ {
		}
		if p == n {
			return nil, nil, nil, fmt.Errorf("LU: column %d: %w", k, ErrSingular)
		}
		if p != k {
			a[p], a[k] = a[k], a[p]
			lower[p], lower[k] = lower[k], lower[p] // only columns < k are filled
			perm[p], perm[k] = perm[k], perm[p]
		}
		for i = k + 1; i < n; i++ {
			if a[i][k].IsZero() {
				continue
			}
			f, _ = a[i][k].Quo(a[k][k]) // a[k][k] != 0 by the pivot search
			lower[i][k] = f
			for j = k; j < n; j++ {
				a[i][j] = a[i][j].Sub(f.Mul(a[k][j]))
			}
		}
	}
	for i = 0; i < n; i++ {
		lower[i][i] = scalar.One
	}

	if l, err = matrix.NewDenseFromRows(lower); err != nil {
		return nil, nil, nil, fmt.Errorf("LU: %w", err)
	}
	if u, err = matrix.NewDenseFromRows(a); err != nil {
		return nil, nil, nil, fmt.Errorf("LU: %w", err)
	}

	return l, u, perm, nil
}

// grid copies m into row slices.
func grid(m matrix.Matrix) ([][]scalar.Scalar, error) {
	rows, cols := m.Rows(), m.Cols()
	out := zeros(rows, cols)
	var err error
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if out[i][j], err = m.At(i, j); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}

// zeros allocates a rows×cols grid of canonical zeros.
func zeros(rows, cols int) [][]scalar.Scalar {
	out := make([][]scalar.Scalar, rows)
	for i := range out {
		out[i] = make([]scalar.Scalar, cols)
	}

	return out
}
