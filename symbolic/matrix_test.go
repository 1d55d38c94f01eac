// SPDX-License-Identifier: MIT
package symbolic_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ohmlab/symbolic"
)

func mustMatrix(t *testing.T, rows [][]symbolic.Expr) *symbolic.Matrix {
	t.Helper()
	m, err := symbolic.NewMatrix(len(rows), len(rows[0]))
	require.NoError(t, err)
	for i, row := range rows {
		for j, e := range row {
			require.NoError(t, m.Set(i, j, e))
		}
	}
	return m
}

func entry(t *testing.T, m *symbolic.Matrix, i, j int) string {
	t.Helper()
	e, err := m.At(i, j)
	require.NoError(t, err)
	return e.String()
}

func TestMatrixInverse_Numeric(t *testing.T) {
	m := mustMatrix(t, [][]symbolic.Expr{
		{symbolic.Int(2), symbolic.Int(1)},
		{symbolic.Int(1), symbolic.Int(1)},
	})
	inv, err := m.Inverse()
	require.NoError(t, err)
	require.Equal(t, "1", entry(t, inv, 0, 0))
	require.Equal(t, "-1", entry(t, inv, 0, 1))
	require.Equal(t, "-1", entry(t, inv, 1, 0))
	require.Equal(t, "2", entry(t, inv, 1, 1))
}

func TestMatrixInverse_Singular(t *testing.T) {
	m := mustMatrix(t, [][]symbolic.Expr{
		{symbolic.Int(1), symbolic.Int(2)},
		{symbolic.Int(2), symbolic.Int(4)},
	})
	_, err := m.Inverse()
	require.ErrorIs(t, err, symbolic.ErrSingular)

	sym := mustMatrix(t, [][]symbolic.Expr{
		{a, a},
		{a, a},
	})
	_, err = sym.Inverse()
	require.ErrorIs(t, err, symbolic.ErrSingular)
}

func TestMatrixInverse_NonSquare(t *testing.T) {
	m, err := symbolic.NewMatrix(2, 3)
	require.NoError(t, err)
	_, err = m.Inverse()
	require.ErrorIs(t, err, symbolic.ErrDimension)

	_, err = m.At(2, 0)
	require.ErrorIs(t, err, symbolic.ErrDimension)
	_, err = symbolic.NewMatrix(-1, 2)
	require.ErrorIs(t, err, symbolic.ErrDimension)
}

// The MNA system of a two-resistor divider: unknowns φ1, φ2 and the source current.
func TestMatrixInverse_SymbolicDivider(t *testing.T) {
	g1 := symbolic.Reciprocal(r1)
	g2 := symbolic.Reciprocal(r2)
	m := mustMatrix(t, [][]symbolic.Expr{
		{g1, symbolic.Neg(g1), symbolic.Int(1)},
		{symbolic.Neg(g1), symbolic.Add(g1, g2), symbolic.Int(0)},
		{symbolic.Int(1), symbolic.Int(0), symbolic.Int(0)},
	})
	inv, err := m.Inverse()
	require.NoError(t, err)

	x, err := inv.MulVec([]symbolic.Expr{symbolic.Int(0), symbolic.Int(0), v})
	require.NoError(t, err)
	require.Len(t, x, 3)

	env := symbolic.Env{"R1": 1, "R2": 3, "V": 12}
	want := []float64{12, 9, -3}
	for i, w := range want {
		got, err := x[i].Eval(env)
		require.NoError(t, err)
		require.InDelta(t, w, got, 1e-9, "x[%d] = %s", i, x[i])
	}
	require.Equal(t, "V", x[0].String())
}

func TestMatrixMulVec_Dimension(t *testing.T) {
	m, err := symbolic.Identity(2)
	require.NoError(t, err)
	_, err = m.MulVec([]symbolic.Expr{a})
	require.ErrorIs(t, err, symbolic.ErrDimension)

	out, err := m.MulVec([]symbolic.Expr{a, b})
	require.NoError(t, err)
	require.Equal(t, "a", out[0].String())
	require.Equal(t, "b", out[1].String())
	require.Contains(t, m.String(), "[1, 0]")
}
