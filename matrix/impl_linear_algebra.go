// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Elementwise and product kernels over exact scalars: Add, Sub, Scale,
//     Negate, Mul, Transpose, Augment, NewIdentity, Equal.
//   - Every kernel validates first, allocates one result, and never mutates
//     its operands.
//
// Design:
//   - *Dense operands use flat-slice loops; other Matrix implementations are
//     read through At in fixed i→j order (asDense).
//   - Errors are wrapped as "<Op>: <validator>: <sentinel>".

package matrix

import (
	"fmt"

	"github.com/katalvlaran/exactmat/scalar"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opTranspose = "Transpose"
	opScale     = "Scale"
	opNegate    = "Negate"
	opAugment   = "Augment"
	opIdentity  = "NewIdentity"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
//
// Implementation:
//   - Stage 1: Wrap using fmt.Errorf("%s: %w", tag, err) to enable errors.Is/As.
//
// Complexity:
//   - Time O(1), Space O(1).
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes elementwise out = a ± b.
// Internal helper for Add/Sub to share validation, allocation, and the loop.
//
// Implementation:
//   - Stage 1: ValidateBinarySameShape(a, b).
//   - Stage 2: view both operands as *Dense (copy only for foreign types).
//   - Stage 3: single flat loop 0..n-1.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the new result.
func addSub(a, b Matrix, subtract bool, opTag string) (*Dense, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	da, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	db, err := asDense(b)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	res := &Dense{r: da.r, c: da.c, data: make([]scalar.Scalar, len(da.data))}
	for idx := range res.data { // deterministic 0..n-1
		if subtract {
			res.data[idx] = da.data[idx].Sub(db.data[idx])
		} else {
			res.data[idx] = da.data[idx].Add(db.data[idx])
		}
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B and returns a fresh Dense result.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Add(a, b Matrix) (*Dense, error) { return addSub(a, b, false, opAdd) }

// Sub computes the element-wise difference C = A - B and returns a fresh Dense result.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Sub(a, b Matrix) (*Dense, error) { return addSub(a, b, true, opSub) }

// Scale returns a new matrix whose elements are k * m[i,j].
// k = 0 yields an explicit zero matrix with the same shape.
// Errors: ErrNilMatrix. Complexity: O(r*c).
func Scale(m Matrix, k scalar.Scalar) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	src, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	res := &Dense{r: src.r, c: src.c, data: make([]scalar.Scalar, len(src.data))}
	for idx, v := range src.data {
		res.data[idx] = v.Mul(k)
	}

	return res, nil
}

// Negate returns -m.
func Negate(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opNegate, err)
	}
	src, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opNegate, err)
	}

	res := &Dense{r: src.r, c: src.c, data: make([]scalar.Scalar, len(src.data))}
	for idx, v := range src.data {
		res.data[idx] = v.Neg()
	}

	return res, nil
}

// Mul performs standard matrix multiplication C = A × B.
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: i→k→j with row-major strides; zero A[i,k] entries are skipped.
//
// Inputs:
//   - A: left matrix with shape (r × n).
//   - B: right matrix with shape (n × c).
//
// Returns:
//   - *Dense C with shape (r × c), C[i,j] = Σ_k A[i,k]*B[k,j].
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (inner mismatch).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	da, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	db, err := asDense(b)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	aRows, aCols, bCols := da.r, da.c, db.c
	res := &Dense{r: aRows, c: bCols, data: make([]scalar.Scalar, aRows*bCols)}
	var (
		i, j, k                            int
		rowOffsetA, rowOffsetB, rowOffsetR int
		av                                 scalar.Scalar
	)
	for i = 0; i < aRows; i++ {
		rowOffsetA = i * aCols
		rowOffsetR = i * bCols
		for k = 0; k < aCols; k++ {
			av = da.data[rowOffsetA+k]
			if av.IsZero() {
				continue
			}
			rowOffsetB = k * bCols
			for j = 0; j < bCols; j++ {
				res.data[rowOffsetR+j] = res.data[rowOffsetR+j].Add(av.Mul(db.data[rowOffsetB+j]))
			}
		}
	}

	return res, nil
}

// Transpose returns a new cols×rows matrix with T[i,j] = m[j,i].
// Errors: ErrNilMatrix. Complexity: O(r*c).
func Transpose(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	src, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	rows, cols := src.r, src.c
	res := &Dense{r: cols, c: rows, data: make([]scalar.Scalar, rows*cols)}
	var i, j, baseSrc int
	for i = 0; i < rows; i++ {
		baseSrc = i * cols
		for j = 0; j < cols; j++ {
			res.data[j*rows+i] = src.data[baseSrc+j]
		}
	}

	return res, nil
}

// Augment concatenates a and b horizontally: [a | b].
// The result has a.Rows() rows and a.Cols()+b.Cols() columns.
// Errors: ErrNilMatrix, ErrDimensionMismatch (row counts differ).
func Augment(a, b Matrix) (*Dense, error) {
	if err := ValidateSameRows(a, b); err != nil {
		return nil, matrixErrorf(opAugment, err)
	}
	da, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opAugment, err)
	}
	db, err := asDense(b)
	if err != nil {
		return nil, matrixErrorf(opAugment, err)
	}

	rows, width := da.r, da.c+db.c
	res := &Dense{r: rows, c: width, data: make([]scalar.Scalar, rows*width)}
	for i := 0; i < rows; i++ {
		copy(res.data[i*width:i*width+da.c], da.data[i*da.c:(i+1)*da.c])
		copy(res.data[i*width+da.c:(i+1)*width], db.data[i*db.c:(i+1)*db.c])
	}

	return res, nil
}

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// n == 0 yields the empty 0×0 matrix.
// Errors: ErrInvalidDimensions for n < 0.
// Complexity: O(n^2) zeroing + O(n) diagonal writes.
func NewIdentity(n int) (*Dense, error) {
	res, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opIdentity, err)
	}
	for i := 0; i < n; i++ {
		res.data[i*n+i] = scalar.One
	}

	return res, nil
}

// Equal reports whether a and b have the same shape and exactly equal entries.
// A nil operand is equal only to another nil operand.
func Equal(a, b Matrix) bool {
	aNil, bNil := ValidateNotNil(a) != nil, ValidateNotNil(b) != nil
	if aNil || bNil {
		return aNil && bNil
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return false
	}
	da, err := asDense(a)
	if err != nil {
		return false
	}
	db, err := asDense(b)
	if err != nil {
		return false
	}
	for idx := range da.data {
		if !da.data[idx].Equal(db.data[idx]) {
			return false
		}
	}

	return true
}
