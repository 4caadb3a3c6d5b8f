// SPDX-License-Identifier: MIT

package matrix

// Test bridge (white-box) for the internal options and the elimination kernel.
//
// Purpose:
//   - Expose a read-only snapshot of resolved Options to matrix_test.
//   - Expose the reduction bookkeeping (swaps, pivot product) of the kernel.
//
// The file ends in _test.go, so nothing here reaches production builds.

import "github.com/katalvlaran/exactmat/scalar"

// OptionsSnapshot is a stable, read-only view of Options for tests.
type OptionsSnapshot struct {
	Round            int
	Delimiter        string
	MaxCofactorOrder int
}

func snapshotOf(o Options) OptionsSnapshot {
	return OptionsSnapshot{
		Round:            o.round,
		Delimiter:        o.delimiter,
		MaxCofactorOrder: o.maxCofactorOrder,
	}
}

// DefaultOptionsSnapshot_TestOnly returns the documented defaults.
func DefaultOptionsSnapshot_TestOnly() OptionsSnapshot { return snapshotOf(defaultOptions()) }

// GatherOptionsSnapshot_TestOnly applies opts over the defaults.
func GatherOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	return snapshotOf(gatherOptions(opts...))
}

// ReduceStats_TestOnly runs the kernel on a copy of m and reports its bookkeeping.
func ReduceStats_TestOnly(m Matrix) (pivots []int, swaps int, product scalar.Scalar, err error) {
	w, err := toDense(m)
	if err != nil {
		return nil, 0, scalar.Zero, err
	}
	red := w.reduceInPlace()

	return red.pivots, red.swaps, red.pivotProduct, nil
}
