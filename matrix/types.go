// SPDX-License-Identifier: MIT

// Package matrix: the Matrix contract consumed by every operation.
package matrix

import "github.com/katalvlaran/exactmat/scalar"

// Matrix represents a two-dimensional array of exact scalars.
// Every method enforces bounds checking and returns errors on misuse.
// Operations accept any Matrix and always return a freshly allocated *Dense;
// *Dense operands take flat-slice fast paths, other implementations go
// through At with identical results.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrIndexOutOfBounds if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (scalar.Scalar, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrIndexOutOfBounds if indices are invalid.
	Set(i, j int, v scalar.Scalar) error

	// Clone returns a deep copy of the matrix.
	// The returned Matrix is independent of the original.
	Clone() Matrix
}
