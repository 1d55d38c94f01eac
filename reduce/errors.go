// SPDX-License-Identifier: MIT
// Package: ohmlab/reduce
//
// errors.go — sentinel errors for the reduction engine and the expression
// evaluator. A network that does not reduce is not an error: it is reported
// through Result.OK.

package reduce

import (
	"errors"
	"fmt"
)

var (
	// ErrAmbiguousSource indicates a circuit without exactly one reference
	// voltage source.
	ErrAmbiguousSource = errors.New("reduce: circuit must hold exactly one voltage source")

	// ErrExpression indicates a malformed reduction expression.
	ErrExpression = errors.New("reduce: malformed expression")

	// ErrUnknownName indicates an expression name without a value.
	ErrUnknownName = errors.New("reduce: unknown component name")
)

const (
	opReduce   = "Reduce"
	opEvaluate = "Evaluate"
	opValues   = "Values"
)

func reduceErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
