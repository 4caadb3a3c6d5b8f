// SPDX-License-Identifier: MIT

// Package matrix - determinant and minors.
//
// Purpose:
//   - Submatrix: copy of a matrix without one row and one column (minor).
//   - Determinant: recursive cofactor expansion along row index 1, bounded by
//     WithMaxCofactorOrder because the cost is O(n!).
//   - DeterminantByElimination: O(n^3) alternative that reuses the RREF kernel.
//
// Notes:
//   - Expanding along row 1 (the second row) instead of row 0 is a fixed
//     choice kept for reproducibility of intermediate minors; any row gives the
//     same value. Orders ≥ 2 always have a row 1.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/exactmat/scalar"
)

const (
	opSubmatrix      = "Submatrix"
	opDeterminant    = "Determinant"
	opDetElimination = "DeterminantByElimination"

	// cofactorRow is the row index the expansion runs along.
	cofactorRow = 1
)

// Submatrix returns m without the given row and column.
// MAIN DESCRIPTION:
//   - (rows-1)×(cols-1) copy used as the minor in cofactor expansion.
//
// Implementation:
//   - Stage 1: NotNil → NonEmpty → index bounds.
//   - Stage 2: Induced(all rows but row, all cols but col).
//
// Behavior highlights:
//   - A 1×1 input yields the empty 0×0 matrix.
//   - Rectangular inputs are accepted; the result keeps the remaining shape.
//
// Errors:
//   - ErrNilMatrix, ErrEmptyMatrix (zero rows), ErrIndexOutOfBounds.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Submatrix(m Matrix, row, col int) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opSubmatrix, err)
	}
	if err := ValidateNonEmpty(m); err != nil {
		return nil, matrixErrorf(opSubmatrix, err)
	}
	if row < 0 || row >= m.Rows() || col < 0 || col >= m.Cols() {
		return nil, matrixErrorf(opSubmatrix,
			fmt.Errorf("(%d,%d) outside %dx%d: %w", row, col, m.Rows(), m.Cols(), ErrIndexOutOfBounds))
	}
	src, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opSubmatrix, err)
	}

	return src.minor(row, col), nil
}

// minor is Submatrix without validation; row and col must be in range.
func (m *Dense) minor(row, col int) *Dense {
	rows, cols := m.r-1, m.c-1
	res := &Dense{r: rows, c: cols, data: make([]scalar.Scalar, rows*cols)}
	var i, j, si, sj, dst int
	for i = 0; i < rows; i++ {
		si = i
		if i >= row {
			si++ // skip the removed row
		}
		for j = 0; j < cols; j++ {
			sj = j
			if j >= col {
				sj++ // skip the removed column
			}
			res.data[dst] = m.data[si*m.c+sj]
			dst++
		}
	}

	return res
}

// Determinant computes det(m) by recursive cofactor expansion.
// MAIN DESCRIPTION:
//   - det = Σ_j (-1)^(1+j) * m[1,j] * det(Submatrix(m, 1, j)), base case 1×1.
//
// Implementation:
//   - Stage 1: NotNil → Square → NonEmpty → order bound.
//   - Stage 2: recurse on minors; zero entries on row 1 are skipped.
//
// Inputs:
//   - m: square, non-empty matrix.
//   - opts: WithMaxCofactorOrder(n) adjusts the bound (0 removes it).
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrEmptyMatrix,
//     ErrOrderTooLarge when n exceeds the configured bound.
//
// Complexity:
//   - Time O(n!), Space O(n^2) per recursion level. Known limitation: use
//     DeterminantByElimination for large orders.
func Determinant(m Matrix, opts ...Option) (scalar.Scalar, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return scalar.Zero, matrixErrorf(opDeterminant, err)
	}
	if err := ValidateNonEmpty(m); err != nil {
		return scalar.Zero, matrixErrorf(opDeterminant, err)
	}
	o := gatherOptions(opts...)
	if n := m.Rows(); o.maxCofactorOrder != UnboundedCofactorOrder && n > o.maxCofactorOrder {
		return scalar.Zero, matrixErrorf(opDeterminant,
			fmt.Errorf("order %d > %d: %w", n, o.maxCofactorOrder, ErrOrderTooLarge))
	}
	src, err := asDense(m)
	if err != nil {
		return scalar.Zero, matrixErrorf(opDeterminant, err)
	}

	return cofactorDet(src), nil
}

// cofactorDet expands along cofactorRow; d is square with order ≥ 1.
func cofactorDet(d *Dense) scalar.Scalar {
	n := d.r
	if n == 1 {
		return d.data[0]
	}

	det := scalar.Zero
	var a scalar.Scalar
	for j := 0; j < n; j++ {
		a = d.data[cofactorRow*n+j]
		if a.IsZero() {
			continue
		}
		term := a.Mul(cofactorDet(d.minor(cofactorRow, j)))
		if (cofactorRow+j)%2 != 0 {
			term = term.Neg() // sign (-1)^(1+j)
		}
		det = det.Add(term)
	}

	return det
}

// DeterminantByElimination computes det(m) from one RREF pass.
// The kernel records every effective row swap and the pivot values it divides
// out; for a full-rank square input det = (-1)^swaps * Π pivots, otherwise 0.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrEmptyMatrix.
// Complexity: O(n^3) exact operations.
func DeterminantByElimination(m Matrix) (scalar.Scalar, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return scalar.Zero, matrixErrorf(opDetElimination, err)
	}
	if err := ValidateNonEmpty(m); err != nil {
		return scalar.Zero, matrixErrorf(opDetElimination, err)
	}
	w, err := toDense(m)
	if err != nil {
		return scalar.Zero, matrixErrorf(opDetElimination, err)
	}

	red := w.reduceInPlace()
	if len(red.pivots) < w.r {
		return scalar.Zero, nil // singular
	}
	if red.swaps%2 != 0 {
		return red.pivotProduct.Neg(), nil
	}

	return red.pivotProduct, nil
}
