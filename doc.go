// Package exactmat is a small toolkit for exact linear algebra over the
// rationals, built around one Gauss–Jordan elimination engine.
//
// 🚀 What is exactmat?
//
//	A dense-matrix library where every entry is an exact fraction:
//		• Scalars: immutable big.Rat values with exact zero tests
//		• Dense matrices: bounds-checked, row-major, copy-on-every-op
//		• RREF engine: pivots, rank, column/row space bases
//		• Derived ops: inverse, determinant, independence, products
//		• Advanced ops: LU with row pivoting, linear solves, null spaces
//		• Interop: gonum float64 matrices in and out
//
// ✨ Why choose exactmat?
//
//   - No epsilons – A×A⁻¹ is exactly I, RREF(RREF(A)) is exactly RREF(A)
//   - Safe surface – sentinel errors instead of panics, inputs never mutated
//   - Deterministic – fixed loop orders, no hidden state
//
// Under the hood, everything is organized under these subpackages:
//
//	scalar/        exact rational values and display rounding
//	matrix/        Dense, RREF kernel, arithmetic, determinant, inverse, formatting
//	matrix/ops/    LU factorization, Solve, NullSpaceBasis
//	cmd/exactmat/  command-line front end (cobra)
//
// Quick ref: see the Example functions in each package.
package exactmat
