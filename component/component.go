// SPDX-License-Identifier: MIT
// Package: ohmlab/component
//
// component.go — the Component tagged variant and its capability queries.

package component

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/ohmlab/symbolic"
)

// Terminal identifies one end of a component. Ids are positive; the k-th
// component (1-based) owns terminals 2k-1 (Prev) and 2k (Next).
type Terminal int

// Kind tags the component variant.
type Kind int

const (
	// Resistor carries a resistance in Value.
	Resistor Kind = iota + 1
	// VoltageSource carries a potential difference in Value; Prev is the positive terminal.
	VoltageSource
	// Wire is an ideal zero-impedance connection.
	Wire
	// Switch is a Wire that conducts only while Closed.
	Switch
)

var kindNames = map[Kind]string{
	Resistor:      "resistor",
	VoltageSource: "voltage",
	Wire:          "wire",
	Switch:        "switch",
}

// String returns the lower-case kind name used by netlists.
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind maps a netlist kind name (case-insensitive) to a Kind.
// "source" is accepted as an alias of "voltage".
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "resistor":
		return Resistor, nil
	case "voltage", "source":
		return VoltageSource, nil
	case "wire":
		return Wire, nil
	case "switch":
		return Switch, nil
	}
	return 0, fmt.Errorf("%w: unknown kind %q", ErrInvalidValue, s)
}

// Component is one circuit element. Value is nil for wires and switches.
type Component struct {
	Name   string
	Kind   Kind
	Prev   Terminal
	Next   Terminal
	Value  symbolic.Expr
	Closed bool
}

// IsResistor reports whether c is a resistor.
func (c Component) IsResistor() bool { return c.Kind == Resistor }

// IsReference reports whether c is a plain voltage source, the kind that
// defines ground and drives the reduction engine.
func (c Component) IsReference() bool { return c.Kind == VoltageSource }

// IsOpen reports whether c is an open switch.
func (c Component) IsOpen() bool { return c.Kind == Switch && !c.Closed }

// IsBridge reports whether c currently is a zero-impedance connection:
// a wire or a closed switch.
func (c Component) IsBridge() bool {
	return c.Kind == Wire || (c.Kind == Switch && c.Closed)
}

// IsMNASource reports whether c occupies a row of the MNA source block:
// voltage sources and bridges. Open switches are excluded.
func (c Component) IsMNASource() bool {
	return c.Kind == VoltageSource || c.IsBridge()
}

// Terminals returns (Prev, Next).
func (c Component) Terminals() (Terminal, Terminal) { return c.Prev, c.Next }

// Potential returns the source potential as an expression: Value for a
// voltage source, 0 for bridges.
func (c Component) Potential() symbolic.Expr {
	if c.Kind == VoltageSource && c.Value != nil {
		return c.Value
	}
	return symbolic.Int(0)
}

// Numeric returns the numeric value of a resistor or voltage source
// (0 for wires and switches). A value that still contains symbols fails
// with ErrSymbolicValue.
func (c Component) Numeric() (float64, error) {
	if c.Kind != Resistor && c.Kind != VoltageSource {
		return 0, nil
	}
	if c.Value == nil {
		return 0, componentErrorf(c.Name, ErrMissingValue)
	}
	if syms := symbolic.Symbols(c.Value); len(syms) > 0 {
		return 0, componentErrorf(c.Name, fmt.Errorf("%w: %s", ErrSymbolicValue, strings.Join(syms, ", ")))
	}
	v, err := symbolic.Evaluate(c.Value, nil)
	if err != nil {
		return 0, componentErrorf(c.Name, fmt.Errorf("%w: %v", ErrInvalidValue, err))
	}
	return v, nil
}

// String renders e.g. "R1(resistor 3-4 = 2)".
func (c Component) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s(%s %d-%d", c.Name, c.Kind, c.Prev, c.Next)
	switch {
	case c.Value != nil:
		fmt.Fprintf(&sb, " = %s", c.Value)
	case c.Kind == Switch && c.Closed:
		sb.WriteString(" closed")
	case c.Kind == Switch:
		sb.WriteString(" open")
	}
	sb.WriteString(")")
	return sb.String()
}
