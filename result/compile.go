// SPDX-License-Identifier: MIT
// Package: ohmlab/result
//
// compile.go — raw MNA solution to per-supernode and per-component maps.

package result

import (
	"fmt"
	"sort"

	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/ohmlab/component"
	"github.com/katalvlaran/ohmlab/mna"
	"github.com/katalvlaran/ohmlab/topology"
)

// Value is a raw number with its display form.
type Value struct {
	Raw        float64
	Normalized Normalized
}

// String returns the normalized form.
func (v Value) String() string { return v.Normalized.String() }

// Connection is one supernode with its potential.
type Connection struct {
	Key       int
	Terminals []component.Terminal
	Potential Value
}

// Result holds the compiled maps. Connections is keyed by supernode key
// (0 = ground); Volts and Currents by component name.
type Result struct {
	Connections map[int]Connection
	Volts       map[string]Value
	Currents    map[string]Value
}

// Compile reads potentials and currents out of x:
//   - ground has potential 0, supernode k has x[k-1];
//   - effective sources (voltage sources, wires, closed switches) report
//     their defined potential difference and the current x[n+index];
//   - resistors report φ(Prev) - φ(Next) and that voltage over R;
//   - open switches report 0 for both.
func Compile(cs []component.Component, rule *topology.NodeRule, x []float64, opts ...Option) (*Result, error) {
	cfg := newConfig(opts)
	n := rule.N()
	srcs := mna.Sources(cs)
	if len(x) != n+len(srcs) {
		return nil, fmt.Errorf("Compile: %w: got %d, want %d", ErrSolutionLength, len(x), n+len(srcs))
	}
	value := func(v float64) Value {
		return Value{Raw: v, Normalized: Normalize(v, cfg.maxFractionLen, cfg.precision)}
	}
	potential := func(key int) float64 {
		if key == 0 {
			return 0
		}
		return x[key-1]
	}

	res := &Result{
		Connections: make(map[int]Connection, n+1),
		Volts:       make(map[string]Value, len(cs)),
		Currents:    make(map[string]Value, len(cs)),
	}
	for _, sn := range rule.Supernodes() {
		res.Connections[sn.Key] = Connection{Key: sn.Key, Terminals: sn.Terminals, Potential: value(potential(sn.Key))}
	}

	srcIndex := make(map[string]int, len(srcs))
	for k, s := range srcs {
		srcIndex[s.Name] = k
	}
	for _, c := range cs {
		switch {
		case c.IsMNASource():
			e, err := c.Numeric()
			if err != nil {
				return nil, fmt.Errorf("Compile: %w", err)
			}
			res.Volts[c.Name] = value(e)
			res.Currents[c.Name] = value(x[n+srcIndex[c.Name]])
		case c.IsOpen():
			res.Volts[c.Name] = value(0)
			res.Currents[c.Name] = value(0)
		case c.IsResistor():
			p, q, ok := rule.Keys(c)
			if !ok {
				return nil, fmt.Errorf("Compile: resistor %q: %w", c.Name, topology.ErrInvalidTopology)
			}
			r, err := c.Numeric()
			if err != nil {
				return nil, fmt.Errorf("Compile: %w", err)
			}
			v := potential(p) - potential(q)
			i := 0.0
			if v != 0 {
				i = v / r
			}
			res.Volts[c.Name] = value(v)
			res.Currents[c.Name] = value(i)
		}
	}
	return res, nil
}

// SortedKeys returns the keys of m in ascending order.
func SortedKeys[K constraints.Ordered, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
