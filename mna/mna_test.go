// SPDX-License-Identifier: MIT
package mna_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/ohmlab/component"
	"github.com/katalvlaran/ohmlab/mna"
	"github.com/katalvlaran/ohmlab/symbolic"
	"github.com/katalvlaran/ohmlab/topology"
)

var backends = []mna.Backend{mna.BackendGaussJordan, mna.BackendElimination, mna.BackendGonum}

// MNASuite groups assembly and solve tests.
type MNASuite struct {
	suite.Suite
}

func TestMNASuite(t *testing.T) {
	suite.Run(t, new(MNASuite))
}

func (s *MNASuite) resolve(cs []component.Component, raw [][]int, opts ...topology.Option) *topology.NodeRule {
	rule, err := topology.Resolve(cs, raw, opts...)
	s.Require().NoError(err)
	return rule
}

func divider(r1, r2 symbolic.Expr, v symbolic.Expr) []component.Component {
	a := component.NewAllocator()
	return []component.Component{
		a.VoltageSource("V", v),
		a.Resistor("R1", r1),
		a.Resistor("R2", r2),
	}
}

var dividerRule = [][]int{{1, 3}, {4, 5}, {6, 2}}

// TestDividerBlocks: V=12, R1=R2=1.
func (s *MNASuite) TestDividerBlocks() {
	cs := divider(symbolic.Int(1), symbolic.Int(1), symbolic.Int(12))
	sys, err := mna.Assemble(cs, s.resolve(cs, dividerRule))
	s.Require().NoError(err)

	s.Equal(2, sys.N)
	s.Equal(1, sys.M)
	s.Equal([][]float64{{1, -1}, {-1, 2}}, sys.G.Rows2D())
	s.Equal([][]float64{{1}, {0}}, sys.B.Rows2D())
	s.Equal([][]float64{{1, 0}}, sys.C.Rows2D())
	s.Equal([][]float64{{0}}, sys.D.Rows2D())
	s.Equal([][]float64{{1, -1, 1}, {-1, 2, 0}, {1, 0, 0}}, sys.A.Rows2D())
	s.Equal([]float64{0, 0, 12}, sys.Z)
}

func (s *MNASuite) TestDividerSolveAllBackends() {
	cs := divider(symbolic.Int(1), symbolic.Int(1), symbolic.Int(12))
	sys, err := mna.Assemble(cs, s.resolve(cs, dividerRule))
	s.Require().NoError(err)

	for _, b := range backends {
		x, err := mna.Solve(sys, mna.WithBackend(b))
		s.Require().NoError(err, b.String())
		s.InDeltaSlice([]float64{12, 6, -6}, x, 1e-9, b.String())
	}
}

// TestParallelAcrossSource: 9V across 2Ω || 2Ω → 4.5 A per branch, 9 A total.
func (s *MNASuite) TestParallelAcrossSource() {
	a := component.NewAllocator()
	cs := []component.Component{
		a.VoltageSource("V", symbolic.Int(9)),
		a.Resistor("R1", symbolic.Int(2)),
		a.Resistor("R2", symbolic.Int(2)),
	}
	sys, err := mna.Assemble(cs, s.resolve(cs, [][]int{{1, 3, 5}, {4, 6, 2}}))
	s.Require().NoError(err)
	x, err := mna.Solve(sys)
	s.Require().NoError(err)
	s.InDeltaSlice([]float64{9, -9}, x, 1e-12)
}

func (s *MNASuite) TestOpenSwitchDropsBranch() {
	a := component.NewAllocator()
	cs := []component.Component{
		a.VoltageSource("V", symbolic.Int(12)), // 1,2
		a.Resistor("R1", symbolic.Int(1)),      // 3,4
		a.Switch("S", false),                   // 5,6
		a.Resistor("R2", symbolic.Int(1)),      // 7,8
	}
	raw := [][]int{{1, 3, 5}, {6, 7}, {4, 8, 2}}
	sys, err := mna.Assemble(cs, s.resolve(cs, raw))
	s.Require().NoError(err)

	s.Equal(1, sys.M, "open switch is not an effective source")
	s.Equal([][]float64{{1, 0}, {0, 1}}, sys.G.Rows2D(), "no coupling through the open branch")

	x, err := mna.Solve(sys)
	s.Require().NoError(err)
	s.InDeltaSlice([]float64{12, 0, -12}, x, 1e-12)
}

func (s *MNASuite) TestClosedSwitchEqualsWire() {
	build := func(bridge func(*component.Allocator) component.Component) []float64 {
		a := component.NewAllocator()
		cs := []component.Component{
			a.VoltageSource("V", symbolic.Int(12)),
			a.Resistor("R1", symbolic.Int(1)),
			bridge(a),
			a.Resistor("R2", symbolic.Int(1)),
		}
		sys, err := mna.Assemble(cs, s.resolve(cs, [][]int{{1, 3, 5}, {6, 7}, {4, 8, 2}}))
		s.Require().NoError(err)
		s.Equal(2, sys.M)
		x, err := mna.Solve(sys)
		s.Require().NoError(err)
		return x
	}
	closed := build(func(a *component.Allocator) component.Component { return a.Switch("S", true) })
	wire := build(func(a *component.Allocator) component.Component { return a.Wire("S") })

	s.InDeltaSlice(wire, closed, 1e-12)
	s.InDeltaSlice([]float64{12, 12, -24, 12}, closed, 1e-12)
}

func (s *MNASuite) TestNoResistorAnySourceCount() {
	one := component.NewAllocator()
	cs1 := []component.Component{one.VoltageSource("V", symbolic.Int(5)), one.Wire("W")}
	_, err := mna.Assemble(cs1, s.resolve(cs1, [][]int{{1, 3}, {4, 2}}))
	s.ErrorIs(err, mna.ErrUnsolvableCircuit)

	two := component.NewAllocator()
	cs2 := []component.Component{
		two.VoltageSource("V1", symbolic.Int(5)),
		two.VoltageSource("V2", symbolic.Int(3)),
		two.Wire("W"),
	}
	rule := s.resolve(cs2, [][]int{{1, 5}, {2, 3}, {4, 6}}, topology.WithGroundSource("V1"))
	_, err = mna.Assemble(cs2, rule)
	s.ErrorIs(err, mna.ErrUnsolvableCircuit)
	_, err = mna.AssembleSymbolic(cs2, rule)
	s.ErrorIs(err, mna.ErrUnsolvableCircuit)

	zero := component.NewAllocator()
	cs0 := []component.Component{zero.Wire("W")}
	_, err = mna.Assemble(cs0, s.resolve(cs0, [][]int{{1, 2}}))
	s.ErrorIs(err, mna.ErrUnsolvableCircuit)
}

func (s *MNASuite) TestSingular() {
	a := component.NewAllocator()
	cs := []component.Component{
		a.VoltageSource("V", symbolic.Int(5)),
		a.Resistor("R", symbolic.Int(1)),
		a.Wire("W"),
	}
	// the wire loops on ground: its B column is zero.
	sys, err := mna.Assemble(cs, s.resolve(cs, [][]int{{1, 3}, {4, 2, 5, 6}}))
	s.Require().NoError(err)
	for _, b := range backends {
		_, err = mna.Solve(sys, mna.WithBackend(b))
		s.ErrorIs(err, mna.ErrSingularMatrix, b.String())
	}
}

func (s *MNASuite) TestZeroResistanceIsSingular() {
	a := component.NewAllocator()
	cs := []component.Component{
		a.VoltageSource("V", symbolic.Int(5)),
		a.Resistor("R", symbolic.Int(0)),
	}
	sys, err := mna.Assemble(cs, s.resolve(cs, [][]int{{1, 3}, {4, 2}}))
	s.Require().NoError(err)
	_, err = mna.Solve(sys)
	s.ErrorIs(err, mna.ErrSingularMatrix)
}

func (s *MNASuite) TestSymbolicValueRejectedNumerically() {
	cs := divider(symbolic.Symbol("R"), symbolic.Int(1), symbolic.Int(12))
	_, err := mna.Assemble(cs, s.resolve(cs, dividerRule))
	s.ErrorIs(err, component.ErrSymbolicValue)
}

func (s *MNASuite) TestShortedResistorStampsNothing() {
	cs := divider(symbolic.Int(1), symbolic.Int(1), symbolic.Int(12))
	// R1 has both terminals in supernode 1.
	sys, err := mna.Assemble(cs, s.resolve(cs, [][]int{{1, 3, 4, 5}, {6, 2}}))
	s.Require().NoError(err)
	s.Equal([][]float64{{1}}, sys.G.Rows2D())

	x, err := mna.Solve(sys)
	s.Require().NoError(err)
	s.InDeltaSlice([]float64{12, -12}, x, 1e-12)
}

func (s *MNASuite) TestSymbolicNumericAgreement() {
	cs := divider(symbolic.Frac(3, 2), symbolic.Int(4), symbolic.Int(11))
	rule := s.resolve(cs, dividerRule)

	sys, err := mna.Assemble(cs, rule)
	s.Require().NoError(err)
	x, err := mna.Solve(sys)
	s.Require().NoError(err)

	ssys, err := mna.AssembleSymbolic(cs, rule)
	s.Require().NoError(err)
	xs, err := mna.SolveSymbolic(ssys)
	s.Require().NoError(err)
	s.Require().Len(xs, len(x))

	for i := range x {
		v, ok := symbolic.Value(xs[i])
		s.Require().True(ok, "x[%d] = %s folds to a literal", i, xs[i])
		f, _ := v.Float64()
		s.InDelta(x[i], f, 1e-9)
	}
	s.Equal("8", xs[1].String())
}

func (s *MNASuite) TestSymbolicDivider() {
	cs := divider(symbolic.Symbol("R1"), symbolic.Symbol("R2"), symbolic.Symbol("V"))
	ssys, err := mna.AssembleSymbolic(cs, s.resolve(cs, dividerRule))
	s.Require().NoError(err)

	g00, _ := ssys.G.At(0, 0)
	s.Equal("1/R1", g00.String())
	g01, _ := ssys.G.At(0, 1)
	s.Equal("-1/R1", g01.String())
	g11, _ := ssys.G.At(1, 1)
	s.Equal("(R1 + R2)/(R1*R2)", g11.String())

	xs, err := mna.SolveSymbolic(ssys)
	s.Require().NoError(err)
	env := symbolic.Env{"R1": 1, "R2": 3, "V": 12}
	for i, want := range []float64{12, 9, -3} {
		got, err := xs[i].Eval(env)
		s.Require().NoError(err)
		s.InDelta(want, got, 1e-9, "x[%d] = %s", i, xs[i])
	}
	s.Equal("V", xs[0].String())
	s.Equal("R2*V/(R1 + R2)", xs[1].String())
	s.Equal("-V/(R1 + R2)", xs[2].String())
}

func TestParseBackend(t *testing.T) {
	for _, b := range backends {
		got, err := mna.ParseBackend(b.String())
		require.NoError(t, err)
		require.Equal(t, b, got)
	}
	_, err := mna.ParseBackend("cholesky")
	require.ErrorIs(t, err, mna.ErrUnknownBackend)
	require.Panics(t, func() { mna.WithBackend(mna.Backend(99)) })
}
