// SPDX-License-Identifier: MIT

// Package ohmlab solves resistive DC circuits: ideal voltage sources,
// resistors, zero-resistance wires and binary switches joined by a
// terminal-equivalence rule.
//
// What it computes:
//
//   - Node potentials, branch voltages and currents by Modified Nodal
//     Analysis (numeric, with a pluggable linear backend).
//   - The same quantities in closed form over symbolic parameters.
//   - Exact fractions where they are short ("1/3", "-9/2"), rounded
//     decimals otherwise.
//   - An equivalent-resistance expression such as "+(R1^(R2||R3))-"
//     when the network reduces by series and parallel steps alone.
//
// Pipeline:
//
//	descriptors ─► component.Build ─► topology.Resolve ─► mna.Assemble ─► mna.Solve ─► result.Compile
//	                                                 └──► reduce.Reduce
//
// Packages, leaves first:
//
//	symbolic/  — exact-rational expression tree, parser, symbolic matrix inverse
//	matrix/    — dense float64 matrices, block assembly, pivoted Gauss–Jordan
//	component/ — tagged components and the terminal Allocator
//	topology/  — supernodes, ground selection, open-switch pruning
//	mna/       — G/B/C/D/A/z assembly and solvers (numeric and symbolic)
//	result/    — solution vector to per-node and per-component maps
//	core/      — undirected multigraph with edge IDs, loops and parallel edges
//	bfs/       — breadth-first search over core graphs
//	reduce/    — series/parallel reduction and expression evaluation
//	circuit/   — validated, immutable facade with logging and metrics
//	netlist/   — YAML circuit files
//	cmd/ohmlab — command-line front end
//
// Quick example:
//
//	      R1 = 1Ω
//	  ┌───/\/\/───┐
//	  │           │
//	 (+) 12V      R2 = 1Ω
//	  │           │
//	  └───────────┘
//
//	V = 12, R1 = R2 = 1 → potentials 12 and 6, loop current 6 A.
//
//	go get github.com/katalvlaran/ohmlab
package ohmlab
