// SPDX-License-Identifier: MIT

// Package reduce collapses a resistive network into a series/parallel
// expression as seen from its single voltage source.
//
// Wires and closed switches are merged away first (a zero-impedance bridge
// joins two supernodes, ground absorbing its partner). What remains is a
// core.Graph multigraph with one edge per resistor plus the source. The
// engine then prunes branches that cannot carry current and repeatedly
// merges series pairs and parallel groups into composite resistors named
// "$1", "$2", ... until either one resistor remains across the source or no
// rule applies.
//
// A successful reduction renders as
//
//	+(R1^(R2||R3))-
//
// where "^" joins series members and "||" parallel ones. Same-kind chains
// are flattened ("(R1^R2^R3)"); WithNestedComposites keeps one bracket per
// merge ("((R1^R2)^R3)"). Bridge and lattice topologies have no such form;
// Reduce reports them with OK=false rather than an error.
//
// Evaluate parses a rendered expression back and computes its resistance,
// which lets callers cross-check it against an MNA solve.
package reduce
