// SPDX-License-Identifier: MIT
// Package: ohmlab/circuit
//
// errors.go — sentinel errors of the facade. Pipeline errors from component,
// topology, mna, result and reduce pass through wrapped and stay matchable
// with errors.Is.

package circuit

import (
	"errors"
	"fmt"
)

// ErrNilCircuit indicates a nil *Circuit in a batch.
var ErrNilCircuit = errors.New("circuit: nil circuit")

const (
	opNew           = "New"
	opSolve         = "Solve"
	opSolveSymbolic = "SolveSymbolic"
	opEquivalent    = "Equivalent"
	opSolveBatch    = "SolveBatch"
)

func circuitErrorf(tag string, err error) error {
	return fmt.Errorf("circuit: %s: %w", tag, err)
}
