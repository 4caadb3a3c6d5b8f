// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All operations MUST return these sentinels (possibly wrapped) and
// tests MUST check them via errors.Is. No operation panics on user-triggered
// error conditions; panics are reserved for invalid functional options.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency. Sentinels are
// wrapped at the detection site as "<Op>: <cause>" via matrixErrorf; callers
// match with errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> shape (square/empty/mismatch) -> index -> size bound.
// Every check runs before any result is allocated; inputs are never touched.

var (
	// ErrBadShape is returned when construction data is not rectangular
	// (ragged rows) or a requested window does not fit the matrix.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrInvalidDimensions indicates that requested matrix dimensions are negative.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be >= 0")

	// ErrIndexOutOfBounds indicates that a row or column index is outside the
	// declared shape. Public indexers (At/Set) MUST return this, not panic.
	ErrIndexOutOfBounds = errors.New("matrix: index out of bounds")

	// ErrDimensionMismatch indicates incompatible shapes between operands,
	// e.g., Add/Sub with different shapes, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrEmptyMatrix signals a zero-row (or zero-column) input where the
	// operation needs at least one element (Determinant, Submatrix).
	ErrEmptyMatrix = errors.New("matrix: matrix is empty")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrOrderTooLarge is returned by Determinant when the cofactor expansion
	// would exceed the configured maximum order (factorial cost).
	ErrOrderTooLarge = errors.New("matrix: order too large for cofactor expansion")

	// ErrNaNInf signals a NaN or ±Inf value in float input (gonum interop);
	// such values have no exact rational counterpart.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")
)

// ErrShapeMismatch is the operand-shape failure under its descriptive name.
// It aliases ErrDimensionMismatch so errors.Is matches either.
var ErrShapeMismatch = ErrDimensionMismatch
