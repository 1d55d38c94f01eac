// SPDX-License-Identifier: MIT
package result_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ohmlab/component"
	"github.com/katalvlaran/ohmlab/mna"
	"github.com/katalvlaran/ohmlab/result"
	"github.com/katalvlaran/ohmlab/symbolic"
	"github.com/katalvlaran/ohmlab/topology"
)

func divider(t *testing.T, r1, r2, v symbolic.Expr) ([]component.Component, *topology.NodeRule) {
	t.Helper()
	a := component.NewAllocator()
	cs := []component.Component{
		a.VoltageSource("V", v),
		a.Resistor("R1", r1),
		a.Resistor("R2", r2),
	}
	rule, err := topology.Resolve(cs, [][]int{{1, 3}, {4, 5}, {6, 2}})
	require.NoError(t, err)
	return cs, rule
}

func TestCompileDivider(t *testing.T) {
	cs, rule := divider(t, symbolic.Int(1), symbolic.Int(1), symbolic.Int(12))
	res, err := result.Compile(cs, rule, []float64{12, 6, -6})
	require.NoError(t, err)

	require.Equal(t, []int{0, 1, 2}, result.SortedKeys(res.Connections))
	require.Equal(t, "0", res.Connections[0].Potential.String())
	require.Equal(t, "12", res.Connections[1].Potential.String())
	require.Equal(t, "6", res.Connections[2].Potential.String())
	require.Equal(t, []component.Terminal{1, 3}, res.Connections[1].Terminals)

	require.Equal(t, []string{"R1", "R2", "V"}, result.SortedKeys(res.Volts))
	require.Equal(t, "12", res.Volts["V"].String())
	require.Equal(t, "-6", res.Currents["V"].String())
	require.Equal(t, "6", res.Volts["R1"].String())
	require.Equal(t, "6", res.Currents["R1"].String())
	require.Equal(t, "6", res.Volts["R2"].String())
	require.Equal(t, "6", res.Currents["R2"].String())
}

func TestCompileEndToEnd(t *testing.T) {
	cs, rule := divider(t, symbolic.Int(1), symbolic.Int(2), symbolic.Int(1))
	sys, err := mna.Assemble(cs, rule)
	require.NoError(t, err)
	x, err := mna.Solve(sys)
	require.NoError(t, err)

	res, err := result.Compile(cs, rule, x)
	require.NoError(t, err)
	require.Equal(t, "1/3", res.Volts["R1"].String())
	require.Equal(t, "2/3", res.Volts["R2"].String())
	require.Equal(t, "1/3", res.Currents["R2"].String())
	require.True(t, res.Currents["R1"].Normalized.Exact)
	require.InDelta(t, 1.0/3, res.Currents["R1"].Raw, 1e-12)
}

func TestCompileOpenSwitch(t *testing.T) {
	a := component.NewAllocator()
	cs := []component.Component{
		a.VoltageSource("V", symbolic.Int(12)),
		a.Resistor("R1", symbolic.Int(1)),
		a.Switch("S", false),
		a.Resistor("R2", symbolic.Int(1)),
	}
	rule, err := topology.Resolve(cs, [][]int{{1, 3, 5}, {6, 7}, {4, 8, 2}})
	require.NoError(t, err)
	sys, err := mna.Assemble(cs, rule)
	require.NoError(t, err)
	x, err := mna.Solve(sys)
	require.NoError(t, err)

	res, err := result.Compile(cs, rule, x)
	require.NoError(t, err)
	require.Equal(t, "0", res.Volts["S"].String())
	require.Equal(t, "0", res.Currents["S"].String())
	require.Equal(t, "0", res.Currents["R2"].String())
	require.Equal(t, "12", res.Currents["R1"].String())
}

func TestCompileLengthMismatch(t *testing.T) {
	cs, rule := divider(t, symbolic.Int(1), symbolic.Int(1), symbolic.Int(12))
	_, err := result.Compile(cs, rule, []float64{12, 6})
	require.ErrorIs(t, err, result.ErrSolutionLength)
}

func TestNormalize(t *testing.T) {
	cases := []struct {
		v    float64
		want string
	}{
		{6, "6"},
		{0, "0"},
		{-1.5, "-3/2"},
		{-1.0 / 3, "-1/3"},
		{10000.0 / 7, "1428.5714"},
		{0.1, "1/10"},
		{1e-7, "0"},
	}
	for _, tc := range cases {
		got := result.Normalize(tc.v, result.DefaultMaxFractionLen, result.DefaultPrecision)
		require.Equal(t, tc.want, got.String(), "Normalize(%v)", tc.v)
	}
}

func TestNormalizeOptions(t *testing.T) {
	cs, rule := divider(t, symbolic.Int(1), symbolic.Int(2), symbolic.Int(1))
	x := []float64{1, 2.0 / 3, -1.0 / 3}
	res, err := result.Compile(cs, rule, x, result.WithMaxFractionLen(2), result.WithPrecision(2))
	require.NoError(t, err)
	require.Equal(t, "0.33", res.Volts["R1"].String())
	require.False(t, res.Volts["R1"].Normalized.Exact)
	require.Equal(t, "-0.33", res.Currents["V"].String())

	require.Panics(t, func() { result.WithMaxFractionLen(0) })
	require.Panics(t, func() { result.WithPrecision(16) })
	require.Panics(t, func() { result.WithPrecision(-1) })
}

func TestRound(t *testing.T) {
	require.Equal(t, 1.2346, result.Round(1.23456, 4))
	require.Equal(t, 0.0, result.Round(-0.00001, 4))
	require.Equal(t, 3.0, result.Round(2.5, 0))
}

func TestCompileSymbolic(t *testing.T) {
	cs, rule := divider(t, symbolic.Symbol("R1"), symbolic.Symbol("R2"), symbolic.Symbol("V"))
	sys, err := mna.AssembleSymbolic(cs, rule)
	require.NoError(t, err)
	xs, err := mna.SolveSymbolic(sys)
	require.NoError(t, err)

	res, err := result.CompileSymbolic(cs, rule, xs)
	require.NoError(t, err)
	require.Equal(t, "0", res.Potentials[0].String())
	require.Equal(t, "V", res.Volts["V"].String())

	env := symbolic.Env{"R1": 1, "R2": 3, "V": 12}
	for name, want := range map[string]float64{"R1": 3, "R2": 9} {
		got, err := res.Volts[name].Eval(env)
		require.NoError(t, err)
		require.InDelta(t, want, got, 1e-9, "V(%s) = %s", name, res.Volts[name])
	}
	for _, name := range []string{"R1", "R2"} {
		got, err := res.Currents[name].Eval(env)
		require.NoError(t, err)
		require.InDelta(t, 3.0, got, 1e-9, "I(%s) = %s", name, res.Currents[name])
	}

	_, err = result.CompileSymbolic(cs, rule, xs[:1])
	require.ErrorIs(t, err, result.ErrSolutionLength)
}
