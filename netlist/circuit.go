// SPDX-License-Identifier: MIT
// Package: ohmlab/netlist
//
// circuit.go — netlist to circuit.Circuit.

package netlist

import (
	"github.com/katalvlaran/ohmlab/circuit"
	"github.com/katalvlaran/ohmlab/component"
)

// Circuit builds a circuit from bound components. The netlist ground, when
// set, is applied before opts.
func (n *Netlist) Circuit(opts ...circuit.Option) (*circuit.Circuit, error) {
	cs, err := n.BoundComponents()
	if err != nil {
		return nil, err
	}
	return n.circuit(cs, opts)
}

// SymbolicCircuit builds a circuit whose params stay symbolic.
func (n *Netlist) SymbolicCircuit(opts ...circuit.Option) (*circuit.Circuit, error) {
	cs, err := n.SymbolicComponents()
	if err != nil {
		return nil, err
	}
	return n.circuit(cs, opts)
}

func (n *Netlist) circuit(cs []component.Component, opts []circuit.Option) (*circuit.Circuit, error) {
	raw, err := n.Rule(cs)
	if err != nil {
		return nil, err
	}
	if n.Ground != "" {
		opts = append([]circuit.Option{circuit.WithGroundSource(n.Ground)}, opts...)
	}
	return circuit.New(cs, raw, opts...)
}
