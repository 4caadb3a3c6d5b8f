// Package matrix offers dense matrices over exact rational scalars and the
// linear-algebra operations built on Gauss–Jordan elimination.
//
// The matrix package provides:
//
//   - Dense, a row-major matrix of scalar.Scalar with bounds-checked At/Set.
//   - RREF, the single elimination kernel, plus Rank, PivotColumns and the
//     column/row space bases derived from it.
//   - Add, Sub, Scale, Negate, Mul, Transpose, Augment, NewIdentity, Equal.
//   - Determinant (cofactor expansion, bounded) and DeterminantByElimination.
//   - Inverse (augmented RREF), VerifyInverse and IsLinearlyIndependent.
//   - Format for rounded display and ToGonum/FromGonum for float interop.
//
// Every operation is a pure function: inputs are read-only and each result is
// a freshly allocated *Dense. Arithmetic is exact, so results such as
// Mul(A, Inverse(A)) compare equal to the identity without tolerances.
//
// See the examples in this package for usage patterns.
package matrix
