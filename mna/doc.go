// SPDX-License-Identifier: MIT

// Package mna implements Modified Nodal Analysis for resistive circuits.
//
// The system
//
//	| G  B | |φ|   |0|
//	| C  D | |j| = |e|
//
// is assembled from pure block builders (BuildG, BuildB, BuildC, BuildD,
// AssembleA, BuildZ) over a resolved topology.NodeRule, then solved for the
// supernode potentials φ and the source branch currents j.
//
// Effective sources (the m dimension) are voltage sources, wires and closed
// switches; wires and closed switches are zero-volt sources. Open switches
// are absent from both G and B.
//
// The symbolic variant (AssembleSymbolic, SolveSymbolic) shares the stamping
// rules; its entries are symbolic.Expr trees and numeric literals fold to
// exact rationals.
//
// Errors:
//
//	ErrUnsolvableCircuit  no resistor; checked before assembly.
//	ErrSingularMatrix     A has no inverse or x is not finite.
//	component.ErrSymbolicValue  numeric assembly met a symbol.
package mna
