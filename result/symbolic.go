// SPDX-License-Identifier: MIT
// Package: ohmlab/result
//
// symbolic.go — CompileSymbolic, the expression-valued counterpart of Compile.

package result

import (
	"fmt"

	"github.com/katalvlaran/ohmlab/component"
	"github.com/katalvlaran/ohmlab/mna"
	"github.com/katalvlaran/ohmlab/symbolic"
	"github.com/katalvlaran/ohmlab/topology"
)

// SymbolicResult mirrors Result with simplified expressions.
type SymbolicResult struct {
	Potentials map[int]symbolic.Expr
	Volts      map[string]symbolic.Expr
	Currents   map[string]symbolic.Expr
}

// CompileSymbolic applies the Compile rules to a symbolic solution.
func CompileSymbolic(cs []component.Component, rule *topology.NodeRule, x []symbolic.Expr) (*SymbolicResult, error) {
	n := rule.N()
	srcs := mna.Sources(cs)
	if len(x) != n+len(srcs) {
		return nil, fmt.Errorf("CompileSymbolic: %w: got %d, want %d", ErrSolutionLength, len(x), n+len(srcs))
	}
	zero := symbolic.Int(0)
	potential := func(key int) symbolic.Expr {
		if key == 0 {
			return zero
		}
		return x[key-1]
	}

	res := &SymbolicResult{
		Potentials: make(map[int]symbolic.Expr, n+1),
		Volts:      make(map[string]symbolic.Expr, len(cs)),
		Currents:   make(map[string]symbolic.Expr, len(cs)),
	}
	for key := 0; key <= n; key++ {
		res.Potentials[key] = potential(key)
	}

	srcIndex := make(map[string]int, len(srcs))
	for k, s := range srcs {
		srcIndex[s.Name] = k
	}
	for _, c := range cs {
		switch {
		case c.IsMNASource():
			res.Volts[c.Name] = c.Potential().Simplify()
			res.Currents[c.Name] = x[n+srcIndex[c.Name]]
		case c.IsOpen():
			res.Volts[c.Name] = zero
			res.Currents[c.Name] = zero
		case c.IsResistor():
			p, q, ok := rule.Keys(c)
			if !ok {
				return nil, fmt.Errorf("CompileSymbolic: resistor %q: %w", c.Name, topology.ErrInvalidTopology)
			}
			v := symbolic.Sub(potential(p), potential(q)).Simplify()
			res.Volts[c.Name] = v
			if symbolic.IsZero(v) {
				res.Currents[c.Name] = zero
				continue
			}
			res.Currents[c.Name] = symbolic.Div(v, c.Value).Simplify()
		}
	}
	return res, nil
}
