// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/exactmat/matrix"
	"github.com/stretchr/testify/require"
)

// TestDefaultOptions_Documented verifies that the defaults equal the documented constants.
func TestDefaultOptions_Documented(t *testing.T) {
	o := matrix.DefaultOptionsSnapshot_TestOnly()

	require.Equal(t, matrix.DefaultRound, o.Round)
	require.Equal(t, matrix.DefaultDelimiter, o.Delimiter)
	require.Equal(t, matrix.DefaultMaxCofactorOrder, o.MaxCofactorOrder)
}

// TestGatherOptions_LastWins ensures each Option sets exactly its field and later ones win.
func TestGatherOptions_LastWins(t *testing.T) {
	o := matrix.GatherOptionsSnapshot_TestOnly(matrix.WithRound(4), nil, matrix.WithRound(1))
	require.Equal(t, 1, o.Round)
	require.Equal(t, matrix.DefaultDelimiter, o.Delimiter)

	o = matrix.GatherOptionsSnapshot_TestOnly(matrix.WithDelimiter(","), matrix.WithMaxCofactorOrder(0))
	require.Equal(t, ",", o.Delimiter)
	require.Equal(t, matrix.UnboundedCofactorOrder, o.MaxCofactorOrder)
	require.Equal(t, matrix.DefaultRound, o.Round)
}

// TestOptions_PanicOnNonsense covers the programmer-error panics.
func TestOptions_PanicOnNonsense(t *testing.T) {
	require.Panics(t, func() { matrix.WithRound(-1) })
	require.Panics(t, func() { matrix.WithDelimiter("") })
	require.Panics(t, func() { matrix.WithMaxCofactorOrder(-3) })
	require.NotPanics(t, func() { matrix.WithRound(0) })
}
