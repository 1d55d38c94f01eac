// SPDX-License-Identifier: MIT
// Package: ohmlab/symbolic
//
// eval.go — numeric evaluation helpers on top of Expr.Eval.

package symbolic

import (
	"math"
)

// Evaluate computes e under env and rejects non-finite results.
func Evaluate(e Expr, env Env) (float64, error) {
	v, err := e.Eval(env)
	if err != nil {
		return 0, symbolicErrorf("Evaluate", err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, symbolicErrorf("Evaluate", ErrNonFinite)
	}
	return v, nil
}

// Bind converts numeric values into substitution bindings.
// Non-finite values are rejected.
func Bind(env Env) (Bindings, error) {
	b := make(Bindings, len(env))
	for name, v := range env {
		n, err := Float(v)
		if err != nil {
			return nil, symbolicErrorf("Bind "+name, err)
		}
		b[name] = n
	}
	return b, nil
}

// Apply substitutes b into e and simplifies the result.
func Apply(e Expr, b Bindings) Expr {
	return e.Substitute(b).Simplify()
}
