// SPDX-License-Identifier: MIT

// Package matrix - Gauss–Jordan elimination engine (reduced row echelon form).
//
// Purpose:
//   - One canonical elimination kernel reused by Inverse, IsLinearlyIndependent,
//     Rank and the basis helpers. No other file performs row reduction.
//   - Exact arithmetic: pivots are found by an exact zero test, never by magnitude.
//
// Algorithm (column-wise pivot search, no magnitude pivoting):
//   - lead is the pivot-column cursor; r walks the target pivot rows top-down.
//   - For each r: find the first row i ≥ r with a non-zero entry in column lead,
//     skipping columns with no candidate; swap rows i and r; divide row r by the
//     pivot; subtract multiples of row r from every other row (above AND below).
//   - A normalization post-pass stores every zero entry as canonical zero.
//
// Ownership:
//   - The kernel runs on a private deep copy (toDense); the caller's matrix is
//     never mutated and the work buffer is returned as the result.
//
// Complexity quicksheet:
//   - RREF: O(r * r * c) scalar operations; each operation is exact (math/big).

package matrix

import "github.com/katalvlaran/exactmat/scalar"

// Operation tags for error wrapping.
const (
	opRREF             = "RREF"
	opRREFWithPivots   = "RREFWithPivots"
	opPivotColumns     = "PivotColumns"
	opRank             = "Rank"
	opColumnSpaceBasis = "ColumnSpaceBasis"
	opRowSpaceBasis    = "RowSpaceBasis"
)

// RREF returns the reduced row echelon form of m as a new matrix.
// MAIN DESCRIPTION:
//   - Gauss–Jordan elimination with first-non-zero pivot search per column.
//
// Implementation:
//   - Stage 1: ValidateNotNil(m).
//   - Stage 2: deep-copy m into a private work buffer.
//   - Stage 3: reduce the work buffer in place (see reduceInPlace).
//
// Behavior highlights:
//   - Same shape as the input; the input is never mutated.
//   - Every non-zero row starts with an exact 1, and that column is zero in all
//     other rows. Zero rows sink to the bottom.
//   - Rank-deficient inputs leave the trailing non-pivot columns as free columns.
//   - 0-row or 0-column inputs return an empty matrix of the same shape.
//   - Square and rectangular inputs are handled identically.
//
// Errors:
//   - ErrNilMatrix.
//
// Determinism:
//   - Fixed scan orders; results are exact, so RREF(RREF(A)) == RREF(A).
//
// Complexity:
//   - Time O(r*r*c) exact operations, Space O(r*c).
func RREF(m Matrix) (*Dense, error) {
	res, _, err := rrefWithPivots(m, opRREF)

	return res, err
}

// RREFWithPivots is RREF that also returns the pivot column indices in
// ascending order. Row k of the result holds the pivot for pivots[k].
func RREFWithPivots(m Matrix) (*Dense, []int, error) {
	return rrefWithPivots(m, opRREFWithPivots)
}

// rrefWithPivots validates, copies and reduces; tag labels errors.
func rrefWithPivots(m Matrix, tag string) (*Dense, []int, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, nil, matrixErrorf(tag, err)
	}
	w, err := toDense(m)
	if err != nil {
		return nil, nil, matrixErrorf(tag, err)
	}
	red := w.reduceInPlace()

	return w, red.pivots, nil
}

// reduction records what reduceInPlace did to its buffer.
// For a square input A of full rank: det(A) = (-1)^swaps * pivotProduct.
type reduction struct {
	pivots       []int         // pivot columns, ascending
	swaps        int           // number of effective row swaps
	pivotProduct scalar.Scalar // product of the pivot values divided out
}

// reduceInPlace runs Gauss–Jordan elimination on w and reports its bookkeeping.
// MAIN DESCRIPTION:
//   - In-place kernel; callers guarantee exclusive ownership of w.
//
// Implementation:
//   - Stage 1: empty shapes return immediately.
//   - Stage 2: for r = 0..rows-1 while lead < cols:
//     a. find the first row i ≥ r with w[i,lead] ≠ 0; if none, advance lead and
//     retry the same r; stop when lead reaches cols;
//     b. swap rows i and r (no-op when i == r);
//     c. divide row r by the pivot so w[r,lead] == 1;
//     d. eliminate column lead from every other row;
//     e. record lead as a pivot column (and the swap/pivot bookkeeping) and advance it.
//   - Stage 3: normalize zero entries to canonical zero.
//
// Returns:
//   - reduction: pivot columns, swap count and pivot product.
//
// Complexity:
//   - Time O(r*r*c), Space O(min(r,c)) for the pivot list.
func (w *Dense) reduceInPlace() reduction {
	rows, cols := w.r, w.c
	red := reduction{pivots: make([]int, 0, min(rows, cols)), pivotProduct: scalar.One}
	if rows == 0 || cols == 0 {
		return red
	}

	var r, i, lead int
	for r = 0; r < rows; r++ {
		if lead >= cols {
			break // every column consumed
		}

		// Pivot search: skip columns with no candidate at or below r.
		i = w.firstNonZeroFrom(r, lead)
		for i < 0 {
			lead++
			if lead == cols {
				break
			}
			i = w.firstNonZeroFrom(r, lead)
		}
		if i < 0 {
			break // remaining rows are zero in every remaining column
		}

		if w.swapRows(i, r) {
			red.swaps++
		}
		red.pivotProduct = red.pivotProduct.Mul(w.data[r*cols+lead])
		w.normalizePivotRow(r, lead)
		w.eliminateColumn(r, lead)

		red.pivots = append(red.pivots, lead)
		lead++
	}
	w.normalizeZeros()

	return red
}

// firstNonZeroFrom returns the first row index ≥ from whose entry in column col
// is non-zero, or -1. Exact zero test.
func (w *Dense) firstNonZeroFrom(from, col int) int {
	for i := from; i < w.r; i++ {
		if !w.data[i*w.c+col].IsZero() {
			return i
		}
	}

	return -1
}

// swapRows exchanges rows a and b in place and reports whether it did;
// a == b is a no-op.
func (w *Dense) swapRows(a, b int) bool {
	if a == b {
		return false
	}
	ra := w.data[a*w.c : (a+1)*w.c]
	rb := w.data[b*w.c : (b+1)*w.c]
	for k := range ra {
		ra[k], rb[k] = rb[k], ra[k]
	}

	return true
}

// normalizePivotRow divides row r by its pivot w[r,lead] so the pivot becomes 1.
// Entries left of lead are already zero in row r (earlier pivot columns were
// eliminated, skipped columns had no candidate), so the division starts at lead.
func (w *Dense) normalizePivotRow(r, lead int) {
	base := r * w.c
	pv := w.data[base+lead]
	if pv.Equal(scalar.One) {
		return
	}
	for k := lead; k < w.c; k++ {
		// pv is non-zero by the pivot search.
		w.data[base+k], _ = w.data[base+k].Quo(pv)
	}
}

// eliminateColumn subtracts w[j,lead] * row(r) from every row j ≠ r, clearing
// column lead above and below the pivot.
func (w *Dense) eliminateColumn(r, lead int) {
	pivotRow := w.data[r*w.c : (r+1)*w.c]
	var j, k, base int
	var f scalar.Scalar
	for j = 0; j < w.r; j++ {
		if j == r {
			continue
		}
		base = j * w.c
		f = w.data[base+lead]
		if f.IsZero() {
			continue
		}
		for k = lead; k < w.c; k++ {
			if pivotRow[k].IsZero() {
				continue
			}
			w.data[base+k] = w.data[base+k].Sub(f.Mul(pivotRow[k]))
		}
	}
}

// normalizeZeros stores every zero entry as the canonical zero Scalar so
// downstream equality checks see a single representation.
func (w *Dense) normalizeZeros() {
	for idx := range w.data {
		w.data[idx] = w.data[idx].Normalize()
	}
}

// PivotColumns returns the ascending pivot column indices of RREF(m).
func PivotColumns(m Matrix) ([]int, error) {
	_, pivots, err := rrefWithPivots(m, opPivotColumns)

	return pivots, err
}

// Rank returns the number of pivot columns of RREF(m).
func Rank(m Matrix) (int, error) {
	_, pivots, err := rrefWithPivots(m, opRank)
	if err != nil {
		return 0, err
	}

	return len(pivots), nil
}

// ColumnSpaceBasis returns the columns of m (not of its RREF) at the pivot
// columns, as an m.Rows() × rank matrix. A zero matrix yields rows×0.
func ColumnSpaceBasis(m Matrix) (*Dense, error) {
	_, pivots, err := rrefWithPivots(m, opColumnSpaceBasis)
	if err != nil {
		return nil, err
	}
	src, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opColumnSpaceBasis, err)
	}
	res, err := src.Induced(seq(src.r), pivots)
	if err != nil {
		return nil, matrixErrorf(opColumnSpaceBasis, err)
	}

	return res, nil
}

// RowSpaceBasis returns the non-zero rows of RREF(m) as a rank × m.Cols() matrix.
func RowSpaceBasis(m Matrix) (*Dense, error) {
	rref, pivots, err := rrefWithPivots(m, opRowSpaceBasis)
	if err != nil {
		return nil, err
	}
	res, err := rref.Induced(seq(len(pivots)), seq(rref.c))
	if err != nil {
		return nil, matrixErrorf(opRowSpaceBasis, err)
	}

	return res, nil
}

// seq returns [0, 1, ..., n-1].
func seq(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}

	return out
}
