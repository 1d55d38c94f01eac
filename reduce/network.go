// SPDX-License-Identifier: MIT
// Package: ohmlab/reduce
//
// network.go — the connectivity multigraph: supernodes are core.Graph
// vertices, resistors, composites and the reference source are its edges.
// Edge IDs map to the element each edge carries; a merge removes the member
// edges and adds one composite edge in their place.

package reduce

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/katalvlaran/ohmlab/bfs"
	"github.com/katalvlaran/ohmlab/core"
	"github.com/katalvlaran/ohmlab/symbolic"
)

// element is the two-terminal payload of one edge.
type element struct {
	name   string
	value  symbolic.Expr
	source bool
	order  int // position of the earliest component it contains
}

// network is the mutable reduction state of one Reduce call.
type network struct {
	g          *core.Graph
	elems      map[string]*element // edge ID → element
	keys       map[string]int      // vertex ID → supernode key
	source     string              // edge ID of the reference source
	composites map[string]Composite
	relations  map[string]*Relation
	dropped    []string
	seq        int
}

func newNetwork() *network {
	return &network{
		g:          core.NewGraph(core.WithMultiEdges(), core.WithLoops()),
		elems:      make(map[string]*element),
		keys:       make(map[string]int),
		composites: make(map[string]Composite),
		relations:  make(map[string]*Relation),
	}
}

func vertexID(key int) string { return strconv.Itoa(key) }

// add links supernodes a and b with el.
func (n *network) add(a, b int, el *element) error {
	from, to := vertexID(a), vertexID(b)
	n.keys[from], n.keys[to] = a, b
	eid, err := n.g.AddEdge(from, to, el.name)
	if err != nil {
		return fmt.Errorf("%s: %w", el.name, err)
	}
	n.elems[eid] = el
	if el.source {
		n.source = eid
	}
	return nil
}

func (n *network) remove(es ...*core.Edge) error {
	for _, e := range es {
		if err := n.g.RemoveEdge(e.ID); err != nil {
			return fmt.Errorf("%s: %w", e.Element, err)
		}
		delete(n.elems, e.ID)
	}
	return nil
}

func (n *network) elem(e *core.Edge) *element { return n.elems[e.ID] }

// byOrder sorts es by the earliest component each edge contains.
func (n *network) byOrder(es []*core.Edge) []*core.Edge {
	sort.SliceStable(es, func(i, j int) bool { return n.elem(es[i]).order < n.elem(es[j]).order })
	return es
}

func (n *network) edges() []*core.Edge { return n.byOrder(n.g.Edges()) }

// incident returns the edges touching v in component order.
func (n *network) incident(v string) ([]*core.Edge, error) {
	es, err := n.g.Neighbors(v)
	if err != nil {
		return nil, err
	}
	return n.byOrder(es), nil
}

// vertices returns every supernode by ascending key.
func (n *network) vertices() []string {
	ids := n.g.Vertices()
	sort.SliceStable(ids, func(i, j int) bool { return n.keys[ids[i]] < n.keys[ids[j]] })
	return ids
}

// sourceEdge returns the reference source edge, or nil once it is gone.
func (n *network) sourceEdge() *core.Edge {
	if n.source == "" {
		return nil
	}
	e, err := n.g.GetEdge(n.source)
	if err != nil {
		return nil
	}
	return e
}

// reachable runs a BFS from the positive end of the source.
func (n *network) reachable(src *core.Edge) (*bfs.Result, error) {
	return bfs.BFS(n.g, src.From)
}

// pair returns the supernode keys of e in ascending order.
func (n *network) pair(e *core.Edge) [2]int {
	a, b := n.keys[e.From], n.keys[e.To]
	if a <= b {
		return [2]int{a, b}
	}
	return [2]int{b, a}
}

func (n *network) relation(name string) *Relation {
	r, ok := n.relations[name]
	if !ok {
		r = &Relation{}
		n.relations[name] = r
	}
	return r
}

// relate records every member of group as related to every other.
func (n *network) relate(kind Kind, group []*element) {
	for _, e := range group {
		r := n.relation(e.name)
		for _, o := range group {
			if o == e {
				continue
			}
			if kind == Series {
				r.Series = appendUnique(r.Series, o.name)
			} else {
				r.Parallel = appendUnique(r.Parallel, o.name)
			}
		}
	}
}

// merge replaces group with one composite edge between vertices a and b.
func (n *network) merge(kind Kind, group []*core.Edge, a, b string) error {
	n.seq++
	name := fmt.Sprintf("$%d", n.seq)
	members := make([]string, len(group))
	values := make([]symbolic.Expr, len(group))
	elems := make([]*element, len(group))
	order := n.elem(group[0]).order
	for i, e := range group {
		el := n.elem(e)
		elems[i] = el
		members[i] = el.name
		values[i] = el.value
		if el.order < order {
			order = el.order
		}
	}
	var value symbolic.Expr
	if kind == Series {
		value = symbolic.Add(values...).Simplify()
	} else {
		inv := make([]symbolic.Expr, len(values))
		for i, v := range values {
			inv[i] = symbolic.Reciprocal(v)
		}
		value = symbolic.Reciprocal(symbolic.Add(inv...)).Simplify()
	}
	n.composites[name] = Composite{Name: name, Kind: kind, Members: members, Resistance: value}
	n.relate(kind, elems)

	if err := n.remove(group...); err != nil {
		return err
	}
	return n.add(n.keys[a], n.keys[b], &element{name: name, value: value, order: order})
}

func appendUnique(xs []string, x string) []string {
	for _, s := range xs {
		if s == x {
			return xs
		}
	}
	return append(xs, x)
}
