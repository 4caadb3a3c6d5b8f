// SPDX-License-Identifier: MIT

// Package matrix provides converters between exact Dense matrices and
// gonum float64 matrices for interop with floating-point pipelines.
//
// Direction matters:
//   - FromGonum is exact: every finite float64 is a dyadic rational.
//   - ToGonum rounds each entry to the nearest float64; the exact source is
//     unchanged.
package matrix

import (
	"fmt"
	"math"

	"github.com/katalvlaran/exactmat/scalar"
	"gonum.org/v1/gonum/mat"
)

const (
	opToGonum   = "ToGonum"
	opFromGonum = "FromGonum"
)

// ToGonum returns a float64 approximation of m as *mat.Dense.
// gonum has no empty matrices, so zero rows or columns fail.
//
// Errors: ErrNilMatrix, ErrEmptyMatrix.
// Complexity: O(r*c).
func ToGonum(m Matrix) (*mat.Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opToGonum, err)
	}
	if m.Rows() == 0 || m.Cols() == 0 {
		return nil, matrixErrorf(opToGonum, ErrEmptyMatrix)
	}
	src, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opToGonum, err)
	}

	buf := make([]float64, len(src.data))
	for idx, v := range src.data {
		buf[idx], _ = v.Float64() // nearest float64; exactness not required here
	}

	return mat.NewDense(src.r, src.c, buf), nil
}

// FromGonum converts any gonum matrix exactly.
//
// Errors: ErrNilMatrix for a nil source, ErrNaNInf for non-finite entries
// (wrapped with coordinates).
// Complexity: O(r*c).
func FromGonum(g mat.Matrix) (*Dense, error) {
	if g == nil {
		return nil, matrixErrorf(opFromGonum, ErrNilMatrix)
	}
	rows, cols := g.Dims()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opFromGonum, err)
	}

	var i, j int
	var f float64
	var v scalar.Scalar
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			f = g.At(i, j)
			if math.IsNaN(f) || math.IsInf(f, 0) {
				return nil, matrixErrorf(opFromGonum, fmt.Errorf("(%d,%d)=%v: %w", i, j, f, ErrNaNInf))
			}
			if v, err = scalar.FromFloat64(f); err != nil {
				return nil, matrixErrorf(opFromGonum, err)
			}
			res.data[i*cols+j] = v
		}
	}

	return res, nil
}
