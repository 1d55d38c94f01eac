// SPDX-License-Identifier: MIT
// Package: ohmlab/component
//
// allocator.go — caller-owned terminal id allocation.
//
// An Allocator is a plain value: each circuit under construction owns one,
// so building several circuits (concurrently or in any test order) yields
// reproducible ids. It is not safe for concurrent use by itself.

package component

import "github.com/katalvlaran/ohmlab/symbolic"

// Allocator hands out terminal pairs in creation order.
type Allocator struct {
	issued int
}

// NewAllocator returns an allocator whose first pair is (1, 2).
func NewAllocator() *Allocator { return &Allocator{} }

// Alloc returns the next (Prev, Next) pair: (2k-1, 2k) for the k-th call.
func (a *Allocator) Alloc() (Terminal, Terminal) {
	a.issued++
	return Terminal(2*a.issued - 1), Terminal(2 * a.issued)
}

// Issued reports how many pairs were handed out.
func (a *Allocator) Issued() int { return a.issued }

// Resistor creates a resistor with the next terminal pair.
func (a *Allocator) Resistor(name string, resistance symbolic.Expr) Component {
	p, n := a.Alloc()
	return Component{Name: name, Kind: Resistor, Prev: p, Next: n, Value: resistance}
}

// VoltageSource creates a voltage source; Prev is the positive terminal.
func (a *Allocator) VoltageSource(name string, potential symbolic.Expr) Component {
	p, n := a.Alloc()
	return Component{Name: name, Kind: VoltageSource, Prev: p, Next: n, Value: potential}
}

// Wire creates an ideal wire.
func (a *Allocator) Wire(name string) Component {
	p, n := a.Alloc()
	return Component{Name: name, Kind: Wire, Prev: p, Next: n}
}

// Switch creates a binary switch in the given state.
func (a *Allocator) Switch(name string, closed bool) Component {
	p, n := a.Alloc()
	return Component{Name: name, Kind: Switch, Prev: p, Next: n, Closed: closed}
}
