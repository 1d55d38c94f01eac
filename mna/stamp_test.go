// SPDX-License-Identifier: MIT
package mna

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ohmlab/matrix"
	"github.com/katalvlaran/ohmlab/symbolic"
)

func TestStampConductance(t *testing.T) {
	g, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	require.NoError(t, stampConductance(g, 1, 2, 0.5))
	require.NoError(t, stampConductance(g, 0, 2, 0.25))
	for _, tc := range []struct {
		i, j int
		want float64
	}{{0, 0, 0.5}, {0, 1, -0.5}, {1, 0, -0.5}, {1, 1, 0.75}} {
		got, err := g.At(tc.i, tc.j)
		require.NoError(t, err)
		require.InDelta(t, tc.want, got, 1e-12, "G[%d][%d]", tc.i, tc.j)
	}

	// a key beyond the block surfaces the bounds error.
	require.ErrorIs(t, stampConductance(g, 3, 0, 1), matrix.ErrOutOfRange)
	require.ErrorIs(t, stampIncidence(g, 0, 3, 0), matrix.ErrOutOfRange)
}

func TestStampSymbolic(t *testing.T) {
	g, err := symbolic.NewMatrix(1, 1)
	require.NoError(t, err)

	require.NoError(t, stampSymbolic(g, 1, 0, symbolic.Reciprocal(symbolic.Symbol("R"))))
	require.NoError(t, simplifyAll(g))
	got, err := g.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, "1/R", got.String())

	require.ErrorIs(t, stampSymbolic(g, 1, 2, symbolic.Int(1)), symbolic.ErrDimension)
}
