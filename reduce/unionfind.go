// SPDX-License-Identifier: MIT
// Package: ohmlab/reduce
//
// unionfind.go — disjoint sets over supernode keys, used to collapse
// zero-impedance bridges.

package reduce

// groundKey is the supernode key of ground.
const groundKey = 0

// unionFind partitions supernode keys with path compression and union by
// rank. The set holding ground always keeps groundKey as its root.
type unionFind struct {
	parent map[int]int
	rank   map[int]int
}

func newUnionFind() *unionFind {
	return &unionFind{parent: make(map[int]int), rank: make(map[int]int)}
}

func (uf *unionFind) find(x int) int {
	p, ok := uf.parent[x]
	if !ok {
		uf.parent[x] = x
		return x
	}
	if p != x {
		uf.parent[x] = uf.find(p)
	}
	return uf.parent[x]
}

func (uf *unionFind) union(x, y int) {
	rx, ry := uf.find(x), uf.find(y)
	if rx == ry {
		return
	}
	switch {
	case rx == groundKey:
		uf.parent[ry] = rx
	case ry == groundKey:
		uf.parent[rx] = ry
	case uf.rank[rx] < uf.rank[ry]:
		uf.parent[rx] = ry
	case uf.rank[rx] > uf.rank[ry]:
		uf.parent[ry] = rx
	default:
		uf.parent[ry] = rx
		uf.rank[rx]++
	}
}
