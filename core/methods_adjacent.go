// SPDX-License-Identifier: MIT
// Package: ohmlab/core
//
// methods_adjacent.go — adjacency bucket helpers. Callers hold mu for writing.

package core

// ensureAdjacency creates the from→to bucket.
func ensureAdjacency(g *Graph, from, to string) {
	if g.adjacency[from] == nil {
		g.adjacency[from] = make(map[string]map[string]struct{})
	}
	if g.adjacency[from][to] == nil {
		g.adjacency[from][to] = make(map[string]struct{})
	}
}

// removeAdjacency drops e from both buckets and prunes the empty ones.
func removeAdjacency(g *Graph, e *Edge) {
	drop := func(u, v string) {
		set := g.adjacency[u][v]
		if set == nil {
			return
		}
		delete(set, e.ID)
		if len(set) == 0 {
			delete(g.adjacency[u], v)
		}
	}
	drop(e.From, e.To)
	if e.From != e.To {
		drop(e.To, e.From)
	}
}
