// SPDX-License-Identifier: MIT
package component_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ohmlab/component"
	"github.com/katalvlaran/ohmlab/symbolic"
)

func TestAllocator_TerminalPairs(t *testing.T) {
	a := component.NewAllocator()
	v := a.VoltageSource("V", symbolic.Int(12))
	r := a.Resistor("R1", symbolic.Int(1))
	w := a.Wire("W")

	require.Equal(t, component.Terminal(1), v.Prev)
	require.Equal(t, component.Terminal(2), v.Next)
	require.Equal(t, component.Terminal(3), r.Prev)
	require.Equal(t, component.Terminal(4), r.Next)
	require.Equal(t, component.Terminal(5), w.Prev)
	require.Equal(t, component.Terminal(6), w.Next)
	require.Equal(t, 3, a.Issued())
}

// Independent allocators never observe each other.
func TestAllocator_Independent(t *testing.T) {
	var wg sync.WaitGroup
	got := make([]component.Terminal, 8)
	for i := range got {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			a := component.NewAllocator()
			a.Alloc()
			_, next := a.Alloc()
			got[i] = next
		}(i)
	}
	wg.Wait()
	for _, n := range got {
		require.Equal(t, component.Terminal(4), n)
	}
}

func TestCapabilities(t *testing.T) {
	a := component.NewAllocator()
	cases := []struct {
		c                                          component.Component
		resistor, reference, open, bridge, mnaSrc bool
	}{
		{a.Resistor("R", symbolic.Int(1)), true, false, false, false, false},
		{a.VoltageSource("V", symbolic.Int(1)), false, true, false, false, true},
		{a.Wire("W"), false, false, false, true, true},
		{a.Switch("S1", true), false, false, false, true, true},
		{a.Switch("S2", false), false, false, true, false, false},
	}
	for _, tc := range cases {
		require.Equal(t, tc.resistor, tc.c.IsResistor(), tc.c.Name)
		require.Equal(t, tc.reference, tc.c.IsReference(), tc.c.Name)
		require.Equal(t, tc.open, tc.c.IsOpen(), tc.c.Name)
		require.Equal(t, tc.bridge, tc.c.IsBridge(), tc.c.Name)
		require.Equal(t, tc.mnaSrc, tc.c.IsMNASource(), tc.c.Name)
	}
}

func TestBuild(t *testing.T) {
	cs, err := component.Build([]component.Descriptor{
		{Kind: component.VoltageSource, Name: "V", Value: symbolic.Int(12)},
		{Kind: component.Resistor, Name: "R1", Value: symbolic.Symbol("R")},
		{Kind: component.Switch, Name: "S", Closed: true},
	})
	require.NoError(t, err)
	require.Len(t, cs, 3)
	require.Equal(t, component.Terminal(5), cs[2].Prev)
	require.True(t, cs[2].Closed)
	require.Equal(t, "R1(resistor 3-4 = R)", cs[1].String())
	require.Equal(t, "S(switch 5-6 closed)", cs[2].String())
}

func TestBuild_Errors(t *testing.T) {
	cases := []struct {
		name  string
		descs []component.Descriptor
		want  error
	}{
		{"empty name", []component.Descriptor{{Kind: component.Wire}}, component.ErrEmptyName},
		{"duplicate", []component.Descriptor{
			{Kind: component.Wire, Name: "W"},
			{Kind: component.Wire, Name: "W"},
		}, component.ErrDuplicateName},
		{"missing value", []component.Descriptor{{Kind: component.Resistor, Name: "R"}}, component.ErrMissingValue},
		{"wire with value", []component.Descriptor{{Kind: component.Wire, Name: "W", Value: symbolic.Int(1)}}, component.ErrInvalidValue},
		{"unknown kind", []component.Descriptor{{Kind: component.Kind(42), Name: "X"}}, component.ErrInvalidValue},
		{"div zero", []component.Descriptor{{Kind: component.Resistor, Name: "R", Value: symbolic.Div(symbolic.Int(1), symbolic.Int(0))}}, component.ErrInvalidValue},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			_, err := component.Build(tc.descs)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestValidate_Terminals(t *testing.T) {
	cs := []component.Component{
		{Name: "A", Kind: component.Wire, Prev: 1, Next: 2},
		{Name: "B", Kind: component.Wire, Prev: 2, Next: 3},
	}
	require.ErrorIs(t, component.Validate(cs), component.ErrInvalidTerminal)

	cs[1] = component.Component{Name: "B", Kind: component.Wire, Prev: 0, Next: 3}
	require.ErrorIs(t, component.Validate(cs), component.ErrInvalidTerminal)
}

func TestNumeric(t *testing.T) {
	a := component.NewAllocator()
	v, err := a.Resistor("R", symbolic.Frac(3, 2)).Numeric()
	require.NoError(t, err)
	require.Equal(t, 1.5, v)

	_, err = a.Resistor("Rx", symbolic.Symbol("x")).Numeric()
	require.ErrorIs(t, err, component.ErrSymbolicValue)

	v, err = a.Wire("W").Numeric()
	require.NoError(t, err)
	require.Zero(t, v)
}

func TestParseKind(t *testing.T) {
	for in, want := range map[string]component.Kind{
		"resistor": component.Resistor,
		"Voltage":  component.VoltageSource,
		"source":   component.VoltageSource,
		" wire ":   component.Wire,
		"SWITCH":   component.Switch,
	} {
		got, err := component.ParseKind(in)
		require.NoError(t, err)
		require.Equal(t, want, got)
		require.NotEmpty(t, got.String())
	}
	_, err := component.ParseKind("capacitor")
	require.ErrorIs(t, err, component.ErrInvalidValue)
}
