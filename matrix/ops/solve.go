package ops

import (
	"fmt"

	"github.com/katalvlaran/exactmat/matrix"
	"github.com/katalvlaran/exactmat/scalar"
)

// Solve returns X with A·X = B for a square, non-singular A.
// B may carry several right-hand sides (one per column).
// Blueprint:
//
//	Stage 1 (Validate): A square, B not nil, B.Rows() == A.Rows().
//	Stage 2 (Decompose): P·A = L·U via LU.
//	Stage 3 (Execute): for each column b of B, solve L·y = P·b then U·x = y.
//	Stage 4 (Finalize): assemble the columns into X.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrNonSquare, matrix.ErrDimensionMismatch, ErrSingular.
// Complexity: O(n³ + n²·k) time, O(n²) memory, where k = B.Cols().
func Solve(a, b matrix.Matrix) (*matrix.Dense, error) {
	if err := matrix.ValidateSquareNonNil(a); err != nil {
		return nil, fmt.Errorf("Solve: %w", err)
	}
	if err := matrix.ValidateSameRows(a, b); err != nil {
		return nil, fmt.Errorf("Solve: %w", err)
	}

	l, u, perm, err := LU(a)
	if err != nil {
		return nil, fmt.Errorf("Solve: %w", err)
	}
	rhs, err := grid(b)
	if err != nil {
		return nil, fmt.Errorf("Solve: %w", err)
	}

	n, k := a.Rows(), b.Cols()
	x := zeros(n, k)
	y := make([]scalar.Scalar, n)
	var (
		i, j, col int
		sum, v    scalar.Scalar
	)
	for col = 0; col < k; col++ {
		// forward substitution, L has a unit diagonal
		for i = 0; i < n; i++ {
			sum = rhs[perm[i]][col]
			for j = 0; j < i; j++ {
				v, _ = l.At(i, j)
				sum = sum.Sub(v.Mul(y[j]))
			}
			y[i] = sum
		}
		// back substitution
		for i = n - 1; i >= 0; i-- {
			sum = y[i]
			for j = i + 1; j < n; j++ {
				v, _ = u.At(i, j)
				sum = sum.Sub(v.Mul(x[j][col]))
			}
			v, _ = u.At(i, i)
			if x[i][col], err = sum.Quo(v); err != nil {
				return nil, fmt.Errorf("Solve: %w", ErrSingular) // unreachable after LU
			}
		}
	}

	res, err := matrix.NewDenseFromRows(x)
	if err != nil {
		return nil, fmt.Errorf("Solve: %w", err)
	}

	return res, nil
}
