// SPDX-License-Identifier: MIT
// Package: ohmlab/mna
//
// assemble.go — numeric MNA blocks as pure functions.
//
//	A = | G  B |    z = | 0 (n) |    x = | φ (n) |
//	    | C  D |        | e (m) |        | j (m) |
//
// n = rule.N() non-ground supernodes, m = len(Sources(cs)).

package mna

import (
	"fmt"
	"math"

	"github.com/katalvlaran/ohmlab/component"
	"github.com/katalvlaran/ohmlab/matrix"
	"github.com/katalvlaran/ohmlab/topology"
)

// System is an assembled numeric MNA system.
type System struct {
	N, M    int
	G, B    *matrix.Dense
	C, D    *matrix.Dense
	A       *matrix.Dense
	Z       []float64
	Sources []component.Component
}

// Sources returns the effective source set in component order: voltage
// sources, wires and closed switches. Row n+k of A belongs to Sources[k].
func Sources(cs []component.Component) []component.Component {
	out := make([]component.Component, 0, len(cs))
	for _, c := range cs {
		if c.IsMNASource() {
			out = append(out, c)
		}
	}
	return out
}

// HasResistor reports whether cs holds at least one resistor.
func HasResistor(cs []component.Component) bool {
	return component.Count(cs, component.Component.IsResistor) > 0
}

// Conductance returns 1/r, or +Inf for r == 0.
func Conductance(r float64) float64 {
	if r == 0 {
		return math.Inf(1)
	}
	return 1 / r
}

// BuildG stamps resistor conductances:
//   - G[i][i] sums the conductances of resistors with a terminal in supernode i+1;
//   - G[i][j] subtracts the conductance of each resistor joining i+1 and j+1;
//   - resistors touching ground only stamp their non-ground diagonal;
//   - shorted resistors stamp nothing.
func BuildG(cs []component.Component, rule *topology.NodeRule) (*matrix.Dense, error) {
	n := rule.N()
	g, err := matrix.NewDense(n, n)
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
		r, err := c.Numeric()
		if err != nil {
			return nil, err
		}
		if err = stampConductance(g, p, q, Conductance(r)); err != nil {
			return nil, fmt.Errorf("resistor %q: %w", c.Name, err)
		}
	}
	return g, nil
}

// stampConductance adds cond to the diagonal entries of supernodes p and q
// and subtracts it from their off-diagonal pair. Key 0 is ground.
func stampConductance(g *matrix.Dense, p, q int, cond float64) error {
	if p > 0 {
		if err := g.Add(p-1, p-1, cond); err != nil {
			return err
		}
	}
	if q > 0 {
		if err := g.Add(q-1, q-1, cond); err != nil {
			return err
		}
	}
	if p == 0 || q == 0 {
		return nil
	}
	if err := g.Add(p-1, q-1, -cond); err != nil {
		return err
	}
	return g.Add(q-1, p-1, -cond)
}

// BuildB stamps source incidence: +1 for the positive (Prev) terminal's
// supernode, -1 for the negative one. Entries accumulate, so a source whose
// terminals share a supernode leaves a zero column.
func BuildB(cs []component.Component, rule *topology.NodeRule) (*matrix.Dense, error) {
	srcs := Sources(cs)
	b, err := matrix.NewDense(rule.N(), len(srcs))
	if err != nil {
		return nil, err
	}
	for k, s := range srcs {
		p, q, ok := rule.Keys(s)
		if !ok {
			return nil, fmt.Errorf("source %q: %w", s.Name, topology.ErrInvalidTopology)
		}
		if err = stampIncidence(b, p, q, k); err != nil {
			return nil, fmt.Errorf("source %q: %w", s.Name, err)
		}
	}
	return b, nil
}

// stampIncidence writes +1 for supernode p and -1 for supernode q into
// column k. Key 0 is ground.
func stampIncidence(b *matrix.Dense, p, q, k int) error {
	if p > 0 {
		if err := b.Add(p-1, k, 1); err != nil {
			return err
		}
	}
	if q > 0 {
		return b.Add(q-1, k, -1)
	}
	return nil
}

// BuildC returns Bᵀ.
func BuildC(b *matrix.Dense) (*matrix.Dense, error) {
	return matrix.Transpose(b)
}

// BuildD returns the m×m zero block.
func BuildD(m int) (*matrix.Dense, error) {
	return matrix.NewDense(m, m)
}

// AssembleA tiles [[G, B], [C, D]].
func AssembleA(g, b, c, d *matrix.Dense) (*matrix.Dense, error) {
	return matrix.Block(g, b, c, d)
}

// BuildZ returns [0 (n); e (m)] where e holds the source potentials
// (0 for wires and closed switches).
func BuildZ(cs []component.Component, rule *topology.NodeRule) ([]float64, error) {
	srcs := Sources(cs)
	n := rule.N()
	z := make([]float64, n+len(srcs))
	for k, s := range srcs {
		if !s.IsReference() {
			continue
		}
		v, err := s.Numeric()
		if err != nil {
			return nil, err
		}
		z[n+k] = v
	}
	return z, nil
}

// Assemble composes the block builders. A circuit without resistors fails
// with ErrUnsolvableCircuit before any block is built.
func Assemble(cs []component.Component, rule *topology.NodeRule) (*System, error) {
	if !HasResistor(cs) {
		return nil, mnaErrorf(opAssemble, ErrUnsolvableCircuit)
	}
	g, err := BuildG(cs, rule)
	if err != nil {
		return nil, mnaErrorf(opAssemble, err)
	}
	b, err := BuildB(cs, rule)
	if err != nil {
		return nil, mnaErrorf(opAssemble, err)
	}
	c, err := BuildC(b)
	if err != nil {
		return nil, mnaErrorf(opAssemble, err)
	}
	d, err := BuildD(b.Cols())
	if err != nil {
		return nil, mnaErrorf(opAssemble, err)
	}
	a, err := AssembleA(g, b, c, d)
	if err != nil {
		return nil, mnaErrorf(opAssemble, err)
	}
	z, err := BuildZ(cs, rule)
	if err != nil {
		return nil, mnaErrorf(opAssemble, err)
	}
	return &System{
		N: rule.N(), M: b.Cols(),
		G: g, B: b, C: c, D: d, A: a,
		Z:       z,
		Sources: Sources(cs),
	}, nil
}
