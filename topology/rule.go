// SPDX-License-Identifier: MIT
// Package: ohmlab/topology
//
// rule.go — the resolved NodeRule and its queries.

package topology

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/ohmlab/component"
)

// Supernode is a set of electrically identical terminals.
type Supernode struct {
	Key       int
	Terminals []component.Terminal
}

// NodeRule is the keyed partition of terminals. Key 0 is ground and may be
// empty; keys 1..N() are the remaining supernodes in input order. Terminals of
// open switches belong to no supernode.
type NodeRule struct {
	supernodes     []Supernode
	keyOf          map[component.Terminal]int
	hasGround      bool
	groundSource   string
	groundTerminal component.Terminal
}

// N returns the number of non-ground supernodes.
func (r *NodeRule) N() int { return len(r.supernodes) - 1 }

// HasGround reports whether a reference source defined ground.
func (r *NodeRule) HasGround() bool { return r.hasGround }

// GroundSource returns the name of the source defining ground ("" if none).
func (r *NodeRule) GroundSource() string { return r.groundSource }

// Ground returns supernode 0.
func (r *NodeRule) Ground() Supernode { return r.copyOf(0) }

// Supernode returns the supernode with the given key.
func (r *NodeRule) Supernode(key int) (Supernode, bool) {
	if key < 0 || key >= len(r.supernodes) {
		return Supernode{}, false
	}
	return r.copyOf(key), true
}

// Supernodes returns all supernodes ordered by key, ground first.
func (r *NodeRule) Supernodes() []Supernode {
	out := make([]Supernode, len(r.supernodes))
	for k := range r.supernodes {
		out[k] = r.copyOf(k)
	}
	return out
}

// KeyOf returns the supernode key holding t; false for terminals removed
// from the rule (open switches).
func (r *NodeRule) KeyOf(t component.Terminal) (int, bool) {
	k, ok := r.keyOf[t]
	return k, ok
}

// Keys returns the supernode keys of both terminals of c.
func (r *NodeRule) Keys(c component.Component) (prev, next int, ok bool) {
	p, okP := r.keyOf[c.Prev]
	n, okN := r.keyOf[c.Next]
	return p, n, okP && okN
}

// Shorted reports whether both terminals of c sit in one supernode. Such a
// component stamps nothing into G: its terminals are folded into the node.
func (r *NodeRule) Shorted(c component.Component) bool {
	p, n, ok := r.Keys(c)
	return ok && p == n
}

// Raw returns the rule as plain terminal groups ordered by key; an empty
// ground group is omitted.
func (r *NodeRule) Raw() [][]int {
	out := make([][]int, 0, len(r.supernodes))
	for _, sn := range r.supernodes {
		if len(sn.Terminals) == 0 {
			continue
		}
		g := make([]int, len(sn.Terminals))
		for i, t := range sn.Terminals {
			g[i] = int(t)
		}
		out = append(out, g)
	}
	return out
}

// String renders "0:[2 6] 1:[1 3] 2:[4 5]".
func (r *NodeRule) String() string {
	parts := make([]string, len(r.supernodes))
	for k, sn := range r.supernodes {
		parts[k] = fmt.Sprintf("%d:%v", k, sn.Terminals)
	}
	return strings.Join(parts, " ")
}

func (r *NodeRule) copyOf(key int) Supernode {
	sn := r.supernodes[key]
	return Supernode{Key: sn.Key, Terminals: append([]component.Terminal(nil), sn.Terminals...)}
}
