// SPDX-License-Identifier: MIT
package netlist_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ohmlab/component"
	"github.com/katalvlaran/ohmlab/netlist"
	"github.com/katalvlaran/ohmlab/symbolic"
)

func load(t *testing.T, doc string) (*netlist.Netlist, error) {
	t.Helper()
	return netlist.Load(strings.NewReader(doc))
}

func TestLoadDivider(t *testing.T) {
	n, err := netlist.LoadFile("testdata/divider.yaml")
	require.NoError(t, err)
	require.Equal(t, "divider", n.Name)
	require.Len(t, n.Components, 3)

	cs, err := n.BoundComponents()
	require.NoError(t, err)
	require.Equal(t, "2", cs[1].Value.String())
	require.Equal(t, "4", cs[2].Value.String())

	raw, err := n.Rule(cs)
	require.NoError(t, err)
	require.Equal(t, [][]int{{1, 3}, {4, 5}, {6, 2}}, raw)

	c, err := n.Circuit()
	require.NoError(t, err)
	res, err := c.Solve()
	require.NoError(t, err)
	require.Equal(t, "2", res.Currents["R1"].String())
	require.Equal(t, "4", res.Volts["R1"].String())
	require.Equal(t, "8", res.Volts["R2"].String())

	eq, err := c.Equivalent()
	require.NoError(t, err)
	require.Equal(t, "+(R1^R2)-", eq.Expression)
	require.Equal(t, "6", eq.Resistance.String())
}

func TestSymbolicCircuitKeepsParams(t *testing.T) {
	n, err := netlist.LoadFile("testdata/divider.yaml")
	require.NoError(t, err)

	cs, err := n.SymbolicComponents()
	require.NoError(t, err)
	require.Equal(t, "R", cs[1].Value.String())
	require.Equal(t, "2*R", cs[2].Value.String())

	c, err := n.SymbolicCircuit()
	require.NoError(t, err)
	res, err := c.SolveSymbolic()
	require.NoError(t, err)
	got, err := res.Currents["R1"].Eval(symbolic.Env(n.Params))
	require.NoError(t, err)
	require.InDelta(t, 2, got, 1e-9)
}

func TestBridgeDoesNotReduce(t *testing.T) {
	n, err := netlist.LoadFile("testdata/bridge.yaml")
	require.NoError(t, err)
	c, err := n.Circuit()
	require.NoError(t, err)

	eq, err := c.Equivalent()
	require.NoError(t, err)
	require.False(t, eq.OK)

	_, err = c.Solve()
	require.NoError(t, err)
}

func TestRawTerminalIDs(t *testing.T) {
	n, err := load(t, `
components:
  - {name: V, kind: voltage, value: "5"}
  - {name: R, kind: resistor, value: "1/2"}
nodes:
  - ["1", "3"]
  - ["4", V.next]
`)
	require.NoError(t, err)
	c, err := n.Circuit()
	require.NoError(t, err)
	res, err := c.Solve()
	require.NoError(t, err)
	require.Equal(t, "10", res.Currents["R"].String())
}

func TestGroundSelection(t *testing.T) {
	n, err := load(t, `
ground: V1
components:
  - {name: V1, kind: voltage, value: "5"}
  - {name: V2, kind: voltage, value: "3"}
  - {name: R, kind: resistor, value: "1"}
nodes:
  - [V1.prev, R.prev]
  - [V1.next, V2.prev]
  - [V2.next, R.next]
`)
	require.NoError(t, err)
	c, err := n.Circuit()
	require.NoError(t, err)
	require.Equal(t, "V1", c.Rule().GroundSource())
}

func TestLoadErrors(t *testing.T) {
	cases := []struct {
		name string
		doc  string
		want error
	}{
		{"no components", "nodes: [[\"1\"]]\n", netlist.ErrInvalidNetlist},
		{"no nodes", "components: [{name: R, kind: resistor, value: \"1\"}]\n", netlist.ErrInvalidNetlist},
		{"bad kind", "components: [{name: C, kind: capacitor}]\nnodes: [[\"1\", \"2\"]]\n", netlist.ErrInvalidNetlist},
		{"bad name", "components: [{name: \"R 1\", kind: resistor, value: \"1\"}]\nnodes: [[\"1\", \"2\"]]\n", netlist.ErrInvalidNetlist},
		{"bad param", "params: {\"1x\": 2}\ncomponents: [{name: R, kind: resistor, value: \"1\"}]\nnodes: [[\"1\", \"2\"]]\n", netlist.ErrInvalidNetlist},
		{"empty node", "components: [{name: R, kind: resistor, value: \"1\"}]\nnodes: [[]]\n", netlist.ErrInvalidNetlist},
		{"unknown field", "colour: red\ncomponents: [{name: R, kind: resistor, value: \"1\"}]\nnodes: [[\"1\", \"2\"]]\n", netlist.ErrDecode},
		{"not yaml", "components: [\n", netlist.ErrDecode},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := load(t, tc.doc)
			require.ErrorIs(t, err, tc.want)
		})
	}

	_, err := load(t, "components: [{name: C, kind: capacitor}]\nnodes: [[\"1\", \"2\"]]\n")
	require.ErrorContains(t, err, "Kind")
	require.True(t, strings.HasPrefix(err.Error(), "Load: netlist: invalid netlist: "), err.Error())
	require.Equal(t, 1, strings.Count(err.Error(), "netlist:"), err.Error())
}

func TestBuildErrors(t *testing.T) {
	cases := []struct {
		name string
		doc  string
		want error
	}{
		{"missing value", "components: [{name: R, kind: resistor}]\nnodes: [[R.prev, R.next]]\n", component.ErrMissingValue},
		{"wire value", "components: [{name: W, kind: wire, value: \"1\"}]\nnodes: [[W.prev, W.next]]\n", component.ErrInvalidValue},
		{"bad expression", "components: [{name: R, kind: resistor, value: \"2*\"}]\nnodes: [[R.prev, R.next]]\n", symbolic.ErrParse},
		{"unknown terminal", "components: [{name: R, kind: resistor, value: \"1\"}]\nnodes: [[R.prev, R9.next]]\n", netlist.ErrUnknownTerminal},
		{"bad end", "components: [{name: R, kind: resistor, value: \"1\"}]\nnodes: [[R.prev, R.middle]]\n", netlist.ErrUnknownTerminal},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			n, err := load(t, tc.doc)
			require.NoError(t, err)
			_, err = n.Circuit()
			require.ErrorIs(t, err, tc.want)
		})
	}
}
