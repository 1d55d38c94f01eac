// SPDX-License-Identifier: MIT
// Package: ohmlab/mna
//
// errors.go — sentinel errors for assembly and solving.

package mna

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsolvableCircuit indicates a circuit without any resistor; it is
	// refused before assembly whatever its source count.
	ErrUnsolvableCircuit = errors.New("mna: circuit has no resistor")

	// ErrSingularMatrix indicates that A has no inverse, or that the solution
	// is not finite (e.g. a zero-resistance resistor in a loop).
	ErrSingularMatrix = errors.New("mna: singular matrix")

	// ErrUnknownBackend indicates an unsupported linear backend name.
	ErrUnknownBackend = errors.New("mna: unknown backend")
)

// Operation tags for error wrapping.
const (
	opAssemble         = "Assemble"
	opAssembleSymbolic = "AssembleSymbolic"
	opSolve            = "Solve"
	opSolveSymbolic    = "SolveSymbolic"
)

func mnaErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// singular marks err as ErrSingularMatrix while keeping the backend cause.
func singular(tag string, err error) error {
	return fmt.Errorf("%s: %w: %w", tag, ErrSingularMatrix, err)
}
