// SPDX-License-Identifier: MIT

// Package matrix - inverse and linear independence on top of the RREF kernel.
//
// Purpose:
//   - Inverse: RREF of the augmented matrix [A | I], right block returned.
//   - VerifyInverse: explicit postcondition A × X == I for callers who need it.
//   - IsLinearlyIndependent: column independence read off the RREF.
//
// Policy:
//   - Inverse does NOT verify invertibility. For a singular A the left block of
//     the RREF is not the identity and the returned block is meaningless.
//     Callers check with IsLinearlyIndependent beforehand or VerifyInverse after.

package matrix

import "github.com/katalvlaran/exactmat/scalar"

const (
	opInverse       = "Inverse"
	opVerifyInverse = "VerifyInverse"
	opIndependent   = "IsLinearlyIndependent"
)

// Inverse returns the right n×n block of RREF([A | I_n]).
// MAIN DESCRIPTION:
//   - Gauss–Jordan inversion through the shared elimination kernel.
//
// Implementation:
//   - Stage 1: ValidateSquareNonNil(m).
//   - Stage 2: build [A | I] (a private n×2n buffer).
//   - Stage 3: reduce it in place and copy out columns n..2n-1.
//
// Behavior highlights:
//   - 0×0 input yields 0×0.
//   - No singularity check (see package notes); pair with VerifyInverse.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//
// Complexity:
//   - Time O(n^3) exact operations, Space O(n^2).
func Inverse(m Matrix) (*Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	n := m.Rows()
	id, err := NewIdentity(n)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	aug, err := Augment(m, id)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	aug.reduceInPlace() // aug is owned here; reducing in place is safe

	right := make([]int, n)
	for j := range right {
		right[j] = n + j
	}
	inv, err := aug.Induced(seq(n), right)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	return inv, nil
}

// VerifyInverse reports whether a × inv equals the identity exactly.
// Errors: ErrNilMatrix, ErrNonSquare (a), ErrDimensionMismatch (inv shape).
func VerifyInverse(a, inv Matrix) (bool, error) {
	if err := ValidateSquareNonNil(a); err != nil {
		return false, matrixErrorf(opVerifyInverse, err)
	}
	if err := ValidateNotNil(inv); err != nil {
		return false, matrixErrorf(opVerifyInverse, err)
	}
	if err := ValidateSameShape(a, inv); err != nil {
		return false, matrixErrorf(opVerifyInverse, err)
	}
	prod, err := Mul(a, inv)
	if err != nil {
		return false, matrixErrorf(opVerifyInverse, err)
	}

	return isIdentityBlock(prod, prod.r), nil
}

// IsLinearlyIndependent reports whether the columns of m are linearly independent.
// MAIN DESCRIPTION:
//   - More columns than rows ⇒ dependent (false) without reduction.
//   - Otherwise RREF(m) must start with the cols×cols identity block; rows
//     below it are then necessarily zero.
//
// Behavior highlights:
//   - Works for square and tall (rows > cols) inputs alike.
//   - A matrix with zero columns is independent (empty set of vectors).
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - O(r*r*c) for the reduction.
func IsLinearlyIndependent(m Matrix) (bool, error) {
	if err := ValidateNotNil(m); err != nil {
		return false, matrixErrorf(opIndependent, err)
	}
	if m.Cols() > m.Rows() {
		return false, nil
	}
	rref, err := RREF(m)
	if err != nil {
		return false, matrixErrorf(opIndependent, err)
	}

	return isIdentityBlock(rref, rref.c), nil
}

// isIdentityBlock reports whether the leading n×n block of d is I_n.
// d must have at least n rows and n columns.
func isIdentityBlock(d *Dense, n int) bool {
	var i, j int
	var v scalar.Scalar
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			v = d.data[i*d.c+j]
			if i == j {
				if !v.Equal(scalar.One) {
					return false
				}
				continue
			}
			if !v.IsZero() {
				return false
			}
		}
	}

	return true
}
