// SPDX-License-Identifier: MIT
package reduce_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ohmlab/component"
	"github.com/katalvlaran/ohmlab/mna"
	"github.com/katalvlaran/ohmlab/reduce"
	"github.com/katalvlaran/ohmlab/symbolic"
	"github.com/katalvlaran/ohmlab/topology"
)

func resolve(t *testing.T, cs []component.Component, raw [][]int, opts ...topology.Option) *topology.NodeRule {
	t.Helper()
	rule, err := topology.Resolve(cs, raw, opts...)
	require.NoError(t, err)
	return rule
}

// mnaResistance returns V / -I of the reference source.
func mnaResistance(t *testing.T, cs []component.Component, rule *topology.NodeRule) float64 {
	t.Helper()
	sys, err := mna.Assemble(cs, rule)
	require.NoError(t, err)
	x, err := mna.Solve(sys)
	require.NoError(t, err)
	for k, s := range sys.Sources {
		if s.IsReference() {
			v, err := s.Numeric()
			require.NoError(t, err)
			return v / -x[sys.N+k]
		}
	}
	t.Fatal("no reference source")
	return 0
}

func TestParallelPair(t *testing.T) {
	a := component.NewAllocator()
	cs := []component.Component{
		a.VoltageSource("V", symbolic.Int(9)),
		a.Resistor("R1", symbolic.Int(1)),
		a.Resistor("R2", symbolic.Int(1)),
	}
	rule := resolve(t, cs, [][]int{{1, 3, 5}, {4, 6, 2}})

	res, err := reduce.Reduce(cs, rule)
	require.NoError(t, err)
	require.True(t, res.OK)
	require.Equal(t, reduce.Done, res.State)
	require.Equal(t, "+(R1||R2)-", res.Expression)
	require.Equal(t, "1/2", res.Resistance.String())

	values, err := reduce.Values(cs)
	require.NoError(t, err)
	r, err := reduce.Evaluate(res.Expression, values)
	require.NoError(t, err)
	require.InDelta(t, 0.5, r, 1e-12)
	require.InDelta(t, 0.5, mnaResistance(t, cs, rule), 1e-12)

	require.Equal(t, []string{"R2"}, res.Relations["R1"].Parallel)
	require.Equal(t, []string{"$1"}, res.Relations["V"].Parallel)
	require.Equal(t, reduce.Parallel, res.Composites["$1"].Kind)
	require.Equal(t, []string{"R1", "R2"}, res.Composites["$1"].Members)
}

func TestSeriesChainFlattens(t *testing.T) {
	a := component.NewAllocator()
	cs := []component.Component{
		a.VoltageSource("V", symbolic.Symbol("V")),
		a.Resistor("R1", symbolic.Symbol("R1")),
		a.Resistor("R2", symbolic.Symbol("R2")),
		a.Resistor("R3", symbolic.Symbol("R3")),
	}
	rule := resolve(t, cs, [][]int{{1, 3}, {4, 5}, {6, 7}, {8, 2}})

	res, err := reduce.Reduce(cs, rule)
	require.NoError(t, err)
	require.True(t, res.OK)
	require.Equal(t, "+(R1^R2^R3)-", res.Expression)
	require.Equal(t, "R1 + R2 + R3", res.Resistance.String())
	require.Equal(t, []string{"R2"}, res.Relations["R1"].Series)

	nested, err := reduce.Reduce(cs, rule, reduce.WithNestedComposites())
	require.NoError(t, err)
	require.True(t, nested.OK)
	require.Equal(t, "+((R1^R2)^R3)-", nested.Expression)
	require.Equal(t, []string{"$1", "R3"}, nested.Composites["$2"].Members)

	values := map[string]float64{"R1": 1, "R2": 2, "R3": 3}
	flat, err := reduce.Evaluate(res.Expression, values)
	require.NoError(t, err)
	deep, err := reduce.Evaluate(nested.Expression, values)
	require.NoError(t, err)
	require.InDelta(t, flat, deep, 1e-12)
}

// TestRoundTrip compares the rendered expression against V / -I from MNA.
func TestRoundTrip(t *testing.T) {
	type circuit struct {
		name string
		cs   func() []component.Component
		raw  [][]int
		want string
	}
	cases := []circuit{
		{
			name: "series-parallel",
			cs: func() []component.Component {
				a := component.NewAllocator()
				return []component.Component{
					a.VoltageSource("V", symbolic.Int(10)),
					a.Resistor("R1", symbolic.Int(2)),
					a.Resistor("R2", symbolic.Int(3)),
					a.Resistor("R3", symbolic.Int(6)),
				}
			},
			raw:  [][]int{{1, 3}, {4, 5, 7}, {6, 8, 2}},
			want: "+(R1^(R2||R3))-",
		},
		{
			name: "ladder",
			cs: func() []component.Component {
				a := component.NewAllocator()
				return []component.Component{
					a.VoltageSource("V", symbolic.Int(10)),
					a.Resistor("R1", symbolic.Int(1)),
					a.Resistor("R2", symbolic.Int(2)),
					a.Resistor("R3", symbolic.Int(3)),
					a.Resistor("R4", symbolic.Int(4)),
				}
			},
			raw:  [][]int{{1, 3}, {4, 5, 7}, {8, 9}, {6, 10, 2}},
			want: "+(R1^(R2||(R3^R4)))-",
		},
		{
			name: "single",
			cs: func() []component.Component {
				a := component.NewAllocator()
				return []component.Component{
					a.VoltageSource("V", symbolic.Int(5)),
					a.Resistor("R", symbolic.Frac(5, 2)),
				}
			},
			raw:  [][]int{{1, 3}, {4, 2}},
			want: "+(R)-",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cs := tc.cs()
			rule := resolve(t, cs, tc.raw)
			res, err := reduce.Reduce(cs, rule)
			require.NoError(t, err)
			require.True(t, res.OK)
			require.Equal(t, tc.want, res.Expression)

			values, err := reduce.Values(cs)
			require.NoError(t, err)
			got, err := reduce.Evaluate(res.Expression, values)
			require.NoError(t, err)
			require.InDelta(t, mnaResistance(t, cs, rule), got, 1e-9)

			exact, err := symbolic.Evaluate(res.Resistance, nil)
			require.NoError(t, err)
			require.InDelta(t, got, exact, 1e-9)
		})
	}
}

func TestLadderResistance(t *testing.T) {
	a := component.NewAllocator()
	cs := []component.Component{
		a.VoltageSource("V", symbolic.Int(10)),
		a.Resistor("R1", symbolic.Int(1)),
		a.Resistor("R2", symbolic.Int(2)),
		a.Resistor("R3", symbolic.Int(3)),
		a.Resistor("R4", symbolic.Int(4)),
	}
	res, err := reduce.Reduce(cs, resolve(t, cs, [][]int{{1, 3}, {4, 5, 7}, {8, 9}, {6, 10, 2}}))
	require.NoError(t, err)
	require.Equal(t, "23/9", res.Resistance.String())
	require.Len(t, res.Composites, 3)
}

func TestBridgeIsStuck(t *testing.T) {
	a := component.NewAllocator()
	cs := []component.Component{
		a.VoltageSource("V", symbolic.Int(10)), // 1,2
		a.Resistor("R1", symbolic.Int(1)),      // 3,4
		a.Resistor("R2", symbolic.Int(2)),      // 5,6
		a.Resistor("R3", symbolic.Int(3)),      // 7,8
		a.Resistor("R4", symbolic.Int(4)),      // 9,10
		a.Resistor("R5", symbolic.Int(5)),      // 11,12
	}
	rule := resolve(t, cs, [][]int{{1, 3, 5}, {4, 7, 11}, {6, 9, 12}, {8, 10, 2}})

	res, err := reduce.Reduce(cs, rule)
	require.NoError(t, err)
	require.False(t, res.OK)
	require.Equal(t, reduce.Stuck, res.State)
	require.Empty(t, res.Expression)
	require.Nil(t, res.Resistance)
}

func TestWireShortsResistor(t *testing.T) {
	a := component.NewAllocator()
	cs := []component.Component{
		a.VoltageSource("V", symbolic.Int(12)), // 1,2
		a.Resistor("R1", symbolic.Int(1)),      // 3,4
		a.Resistor("R2", symbolic.Int(1)),      // 5,6
		a.Wire("W"),                            // 7,8
	}
	res, err := reduce.Reduce(cs, resolve(t, cs, [][]int{{1, 3}, {4, 5, 7}, {6, 8, 2}}))
	require.NoError(t, err)
	require.True(t, res.OK)
	require.Equal(t, "+(R1)-", res.Expression)
	require.Equal(t, []string{"R2"}, res.Dropped)
}

func TestOpenSwitchPrunesBranch(t *testing.T) {
	a := component.NewAllocator()
	cs := []component.Component{
		a.VoltageSource("V", symbolic.Int(12)), // 1,2
		a.Resistor("R1", symbolic.Int(1)),      // 3,4
		a.Switch("S", false),                   // 5,6
		a.Resistor("R2", symbolic.Int(1)),      // 7,8
	}
	raw := [][]int{{1, 3, 5}, {6, 7}, {4, 8, 2}}
	res, err := reduce.Reduce(cs, resolve(t, cs, raw))
	require.NoError(t, err)
	require.True(t, res.OK)
	require.Equal(t, "+(R1)-", res.Expression)
	require.Equal(t, []string{"R2"}, res.Dropped)

	cs[2].Closed = true
	res, err = reduce.Reduce(cs, resolve(t, cs, raw))
	require.NoError(t, err)
	require.Equal(t, "+(R1||R2)-", res.Expression)
	require.Empty(t, res.Dropped)
}

func TestAmbiguousSource(t *testing.T) {
	a := component.NewAllocator()
	cs := []component.Component{
		a.VoltageSource("V1", symbolic.Int(5)), // 1,2
		a.VoltageSource("V2", symbolic.Int(3)), // 3,4
		a.Resistor("R", symbolic.Int(1)),       // 5,6
	}
	rule := resolve(t, cs, [][]int{{1, 5}, {2, 3}, {4, 6}}, topology.WithGroundSource("V1"))
	_, err := reduce.Reduce(cs, rule)
	require.ErrorIs(t, err, reduce.ErrAmbiguousSource)

	b := component.NewAllocator()
	none := []component.Component{b.Resistor("R", symbolic.Int(1))}
	_, err = reduce.Reduce(none, resolve(t, none, [][]int{{1, 2}}))
	require.ErrorIs(t, err, reduce.ErrAmbiguousSource)
}

func TestEvaluate(t *testing.T) {
	values := map[string]float64{"R1": 2, "R2": 3, "R3": 6, "$x": 1}
	ok := []struct {
		expr string
		want float64
	}{
		{"+(R1)-", 2},
		{"R1 ^ R2", 5},
		{"R2||R3", 2},
		{"R1^R2||R3", 4},
		{"+((R1^R2)||R3)-", 30.0 / 11},
		{"$x", 1},
	}
	for _, tc := range ok {
		got, err := reduce.Evaluate(tc.expr, values)
		require.NoError(t, err, tc.expr)
		require.InDelta(t, tc.want, got, 1e-12, tc.expr)
	}

	for _, bad := range []string{"", "(R1", "R1|R2", "R1^", "+(R1)-x", "R1 R2"} {
		_, err := reduce.Evaluate(bad, values)
		require.ErrorIs(t, err, reduce.ErrExpression, bad)
	}
	_, err := reduce.Evaluate("R1^R9", values)
	require.ErrorIs(t, err, reduce.ErrUnknownName)
}

func TestValuesRejectsSymbols(t *testing.T) {
	a := component.NewAllocator()
	cs := []component.Component{a.Resistor("R", symbolic.Symbol("R"))}
	_, err := reduce.Values(cs)
	require.ErrorIs(t, err, component.ErrSymbolicValue)
}
