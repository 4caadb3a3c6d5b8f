package ops

import (
	"fmt"

	"github.com/katalvlaran/exactmat/matrix"
	"github.com/katalvlaran/exactmat/scalar"
)

// NullSpaceBasis returns a basis of {x : A·x = 0} as the columns of a
// Cols × (Cols - rank) matrix. One vector per free (non-pivot) column f of
// RREF(A): x[f] = 1, x[p_r] = -RREF[r][f] for each pivot column p_r, other
// entries 0. A full-column-rank A yields a Cols×0 matrix.
//
// Errors: matrix.ErrNilMatrix.
// Complexity: O(r*r*c) for the reduction plus O(c²) to assemble.
func NullSpaceBasis(m matrix.Matrix) (*matrix.Dense, error) {
	rref, pivots, err := matrix.RREFWithPivots(m)
	if err != nil {
		return nil, fmt.Errorf("NullSpaceBasis: %w", err)
	}
	cols := rref.Cols()

	isPivot := make([]bool, cols)
	for _, p := range pivots {
		isPivot[p] = true
	}
	free := make([]int, 0, cols-len(pivots))
	for j := 0; j < cols; j++ {
		if !isPivot[j] {
			free = append(free, j)
		}
	}

	res, err := matrix.NewDense(cols, len(free))
	if err != nil {
		return nil, fmt.Errorf("NullSpaceBasis: %w", err)
	}
	var v scalar.Scalar
	for k, f := range free {
		if err = res.Set(f, k, scalar.One); err != nil {
			return nil, fmt.Errorf("NullSpaceBasis: %w", err)
		}
		for r, p := range pivots {
			if v, err = rref.At(r, f); err != nil {
				return nil, fmt.Errorf("NullSpaceBasis: %w", err)
			}
			if err = res.Set(p, k, v.Neg()); err != nil {
				return nil, fmt.Errorf("NullSpaceBasis: %w", err)
			}
		}
	}

	return res, nil
}
