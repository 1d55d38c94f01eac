// SPDX-License-Identifier: MIT

// Package circuit is the one-call facade over the ohmlab pipeline:
//
//	components + raw rule → topology.Resolve → mna.Assemble → mna.Solve → result.Compile
//
// A Circuit is validated and resolved once by New and is immutable
// afterwards, so Solve, SolveSymbolic and Equivalent may be called from
// several goroutines. SolveBatch fans independent circuits out over a
// bounded errgroup.
//
// Library code is silent by default. WithLogger attaches a *slog.Logger
// (records carry the circuit ID), WithMetrics a set of Prometheus
// collectors created by NewMetrics.
//
//	c, err := circuit.New(cs, [][]int{{1, 3}, {4, 5}, {6, 2}},
//		circuit.WithBackend(mna.BackendGonum),
//		circuit.WithLogger(slog.Default()),
//	)
//	res, err := c.Solve()
//	fmt.Println(res.Currents["R1"])
package circuit
