// SPDX-License-Identifier: MIT
// Package: ohmlab/mna
//
// symbolic.go — the symbolic MNA variant. Block layout and stamping rules are
// those of assemble.go; entries are expression trees, conductance is the
// Quotient 1/R, and accumulation builds Sum nodes that are simplified once
// the block is complete.

package mna

import (
	"fmt"

	"github.com/katalvlaran/ohmlab/component"
	"github.com/katalvlaran/ohmlab/symbolic"
	"github.com/katalvlaran/ohmlab/topology"
)

// SymbolicSystem is an assembled symbolic MNA system.
type SymbolicSystem struct {
	N, M    int
	G, B    *symbolic.Matrix
	C, D    *symbolic.Matrix
	A       *symbolic.Matrix
	Z       []symbolic.Expr
	Sources []component.Component
}

// BuildSymbolicG mirrors BuildG with 1/R quotient entries.
func BuildSymbolicG(cs []component.Component, rule *topology.NodeRule) (*symbolic.Matrix, error) {
	n := rule.N()
	g, err := symbolic.NewMatrix(n, n)
	if err != nil {
		return nil, err
	}
	for _, c := range cs {
		if !c.IsResistor() || rule.Shorted(c) {
			continue
		}
		p, q, ok := rule.Keys(c)
		if !ok {
			return nil, fmt.Errorf("resistor %q: %w", c.Name, topology.ErrInvalidTopology)
		}
		if c.Value == nil {
			return nil, fmt.Errorf("resistor %q: %w", c.Name, component.ErrMissingValue)
		}
		if err = stampSymbolic(g, p, q, symbolic.Reciprocal(c.Value)); err != nil {
			return nil, fmt.Errorf("resistor %q: %w", c.Name, err)
		}
	}
	if err = simplifyAll(g); err != nil {
		return nil, err
	}
	return g, nil
}

// stampSymbolic is stampConductance over expression entries.
func stampSymbolic(g *symbolic.Matrix, p, q int, cond symbolic.Expr) error {
	if p > 0 {
		if err := accumulate(g, p-1, p-1, cond); err != nil {
			return err
		}
	}
	if q > 0 {
		if err := accumulate(g, q-1, q-1, cond); err != nil {
			return err
		}
	}
	if p == 0 || q == 0 {
		return nil
	}
	if err := accumulate(g, p-1, q-1, symbolic.Neg(cond)); err != nil {
		return err
	}
	return accumulate(g, q-1, p-1, symbolic.Neg(cond))
}

// accumulate adds e to entry (i, j), replacing a literal zero.
func accumulate(m *symbolic.Matrix, i, j int, e symbolic.Expr) error {
	cur, err := m.At(i, j)
	if err != nil {
		return err
	}
	if symbolic.IsZero(cur) {
		return m.Set(i, j, e)
	}
	return m.Set(i, j, symbolic.Add(cur, e))
}

// BuildSymbolicB mirrors BuildB with literal ±1 entries.
func BuildSymbolicB(cs []component.Component, rule *topology.NodeRule) (*symbolic.Matrix, error) {
	nb, err := BuildB(cs, rule)
	if err != nil {
		return nil, err
	}
	b, err := symbolic.NewMatrix(nb.Rows(), nb.Cols())
	if err != nil {
		return nil, err
	}
	for i := 0; i < nb.Rows(); i++ {
		for j := 0; j < nb.Cols(); j++ {
			v, err := nb.At(i, j)
			if err != nil {
				return nil, err
			}
			if err = b.Set(i, j, symbolic.Int(int64(v))); err != nil {
				return nil, err
			}
		}
	}
	return b, nil
}

// BuildSymbolicZ returns [0 (n); e (m)] with e the source potential expressions.
func BuildSymbolicZ(cs []component.Component, rule *topology.NodeRule) []symbolic.Expr {
	srcs := Sources(cs)
	n := rule.N()
	z := make([]symbolic.Expr, n+len(srcs))
	for i := 0; i < n; i++ {
		z[i] = symbolic.Int(0)
	}
	for k, s := range srcs {
		z[n+k] = s.Potential().Simplify()
	}
	return z
}

// AssembleSymbolicA tiles [[G, B], [Bᵀ, 0]] and returns A with C and D.
func AssembleSymbolicA(g, b *symbolic.Matrix) (a, c, d *symbolic.Matrix, err error) {
	n, m := g.Rows(), b.Cols()
	if b.Rows() != n || g.Cols() != n {
		return nil, nil, nil, fmt.Errorf("%w: G %dx%d, B %dx%d", symbolic.ErrDimension, g.Rows(), g.Cols(), b.Rows(), m)
	}
	if c, err = symbolic.NewMatrix(m, n); err != nil {
		return nil, nil, nil, err
	}
	if d, err = symbolic.NewMatrix(m, m); err != nil {
		return nil, nil, nil, err
	}
	if a, err = symbolic.NewMatrix(n+m, n+m); err != nil {
		return nil, nil, nil, err
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			e, err := g.At(i, j)
			if err != nil {
				return nil, nil, nil, err
			}
			if err = a.Set(i, j, e); err != nil {
				return nil, nil, nil, err
			}
		}
		for k := 0; k < m; k++ {
			e, err := b.At(i, k)
			if err != nil {
				return nil, nil, nil, err
			}
			for _, dst := range []struct {
				m    *symbolic.Matrix
				r, c int
			}{{a, i, n + k}, {a, n + k, i}, {c, k, i}} {
				if err = dst.m.Set(dst.r, dst.c, e); err != nil {
					return nil, nil, nil, err
				}
			}
		}
	}
	return a, c, d, nil
}

// AssembleSymbolic builds the symbolic system; resistances and potentials may
// hold symbols.
func AssembleSymbolic(cs []component.Component, rule *topology.NodeRule) (*SymbolicSystem, error) {
	if !HasResistor(cs) {
		return nil, mnaErrorf(opAssembleSymbolic, ErrUnsolvableCircuit)
	}
	g, err := BuildSymbolicG(cs, rule)
	if err != nil {
		return nil, mnaErrorf(opAssembleSymbolic, err)
	}
	b, err := BuildSymbolicB(cs, rule)
	if err != nil {
		return nil, mnaErrorf(opAssembleSymbolic, err)
	}
	a, c, d, err := AssembleSymbolicA(g, b)
	if err != nil {
		return nil, mnaErrorf(opAssembleSymbolic, err)
	}
	return &SymbolicSystem{
		N: rule.N(), M: b.Cols(),
		G: g, B: b, C: c, D: d, A: a,
		Z:       BuildSymbolicZ(cs, rule),
		Sources: Sources(cs),
	}, nil
}

// SolveSymbolic returns x = A⁻¹z with every entry simplified, in the same
// order as Solve.
func SolveSymbolic(sys *SymbolicSystem) ([]symbolic.Expr, error) {
	if sys == nil || sys.A == nil {
		return nil, mnaErrorf(opSolveSymbolic, symbolic.ErrDimension)
	}
	inv, err := sys.A.Inverse()
	if err != nil {
		return nil, singular(opSolveSymbolic, err)
	}
	x, err := inv.MulVec(sys.Z)
	if err != nil {
		return nil, mnaErrorf(opSolveSymbolic, err)
	}
	return x, nil
}

func simplifyAll(m *symbolic.Matrix) error {
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			e, err := m.At(i, j)
			if err != nil {
				return err
			}
			if err = m.Set(i, j, e.Simplify()); err != nil {
				return err
			}
		}
	}
	return nil
}
