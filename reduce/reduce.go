// SPDX-License-Identifier: MIT
// Package: ohmlab/reduce
//
// reduce.go — series/parallel reduction to a fixed point.
//
// Each pass tries, in order: pruning (loops, dangling branches and
// components unreachable from the source), one series merge at the
// lowest-keyed eligible supernode, one parallel merge of the lowest
// endpoint pair. The loop ends Done when a single edge remains across the
// source, Stuck when a pass changes nothing.

package reduce

import (
	"sort"
	"strings"

	"github.com/katalvlaran/ohmlab/component"
	"github.com/katalvlaran/ohmlab/core"
	"github.com/katalvlaran/ohmlab/symbolic"
	"github.com/katalvlaran/ohmlab/topology"
)

// State is the position of the reduction state machine.
type State int

const (
	// Reducing is the state while passes keep making progress.
	Reducing State = iota
	// Done means the load collapsed into one equivalent resistor.
	Done
	// Stuck means a pass made no progress and the load is not series/parallel.
	Stuck
)

// String returns the lowercase state name.
func (s State) String() string {
	switch s {
	case Reducing:
		return "reducing"
	case Done:
		return "done"
	case Stuck:
		return "stuck"
	default:
		return "unknown"
	}
}

// Kind tells how a composite combines its members.
type Kind int

const (
	// Series composites sum member resistances.
	Series Kind = iota + 1
	// Parallel composites sum member conductances.
	Parallel
)

// String returns "series" or "parallel".
func (k Kind) String() string {
	if k == Series {
		return "series"
	}
	return "parallel"
}

// operator is the rendering of k inside an expression.
func (k Kind) operator() string {
	if k == Series {
		return "^"
	}
	return "||"
}

// Relation lists the names a component was found in series or in parallel with.
type Relation struct {
	Series   []string
	Parallel []string
}

// Composite is a synthetic resistor standing for a merged group.
type Composite struct {
	Name       string
	Kind       Kind
	Members    []string
	Resistance symbolic.Expr
}

// Result is the outcome of Reduce. OK is true only in the Done state;
// Expression and Resistance are then set.
type Result struct {
	State      State
	OK         bool
	Expression string
	Resistance symbolic.Expr
	Relations  map[string]Relation
	Composites map[string]Composite
	// Dropped lists resistors carrying no current: shorted, dangling or
	// disconnected from the source.
	Dropped []string
}

// Option customizes Reduce.
type Option func(*config)

type config struct {
	nested bool
}

// WithNestedComposites renders every composite in its own brackets, so the
// expression keeps the order merges happened in: "((R1^R2)^R3)" instead of
// the flattened "(R1^R2^R3)".
func WithNestedComposites() Option {
	return func(c *config) { c.nested = true }
}

// Reduce collapses the load seen by the single reference source of cs into
// one series/parallel expression such as "+(R1^(R2||R3))-".
func Reduce(cs []component.Component, rule *topology.NodeRule, opts ...Option) (*Result, error) {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	if component.Count(cs, component.Component.IsReference) != 1 {
		return nil, reduceErrorf(opReduce, ErrAmbiguousSource)
	}

	uf := newUnionFind()
	for _, c := range cs {
		if !c.IsBridge() {
			continue
		}
		p, q, ok := rule.Keys(c)
		if !ok {
			return nil, reduceErrorf(opReduce, topology.ErrInvalidTopology)
		}
		uf.union(p, q)
	}

	net := newNetwork()
	for i, c := range cs {
		if !c.IsResistor() && !c.IsReference() {
			continue
		}
		p, q, ok := rule.Keys(c)
		if !ok {
			return nil, reduceErrorf(opReduce, topology.ErrInvalidTopology)
		}
		if c.Value == nil {
			return nil, reduceErrorf(opReduce, component.ErrMissingValue)
		}
		el := &element{name: c.Name, value: c.Value, source: c.IsReference(), order: i}
		if err := net.add(uf.find(p), uf.find(q), el); err != nil {
			return nil, reduceErrorf(opReduce, err)
		}
	}

	state, err := run(net)
	if err != nil {
		return nil, reduceErrorf(opReduce, err)
	}
	res := &Result{
		State:      state,
		OK:         state == Done,
		Relations:  make(map[string]Relation, len(net.relations)),
		Composites: net.composites,
		Dropped:    net.dropped,
	}
	for name, r := range net.relations {
		res.Relations[name] = *r
	}
	if res.OK {
		load := net.load()
		res.Expression = "+" + bracket(render(net.composites, load.name, cfg.nested)) + "-"
		res.Resistance = load.value
	}
	return res, nil
}

func run(net *network) (State, error) {
	for {
		src := net.sourceEdge()
		if src == nil || src.Loop() {
			return Stuck, nil
		}
		if finish(net, src) {
			return Done, nil
		}
		changed, err := pass(net, src)
		if err != nil {
			return Stuck, err
		}
		if !changed {
			return Stuck, nil
		}
	}
}

// pass applies the first rule that changes the network.
func pass(net *network, src *core.Edge) (bool, error) {
	for _, rule := range []func(*network, *core.Edge) (bool, error){prune, series, parallel} {
		if changed, err := rule(net, src); err != nil || changed {
			return changed, err
		}
	}
	return false, nil
}

// load returns the element of the non-source edge once two edges remain.
func (n *network) load() *element {
	for _, e := range n.edges() {
		if el := n.elem(e); !el.source {
			return el
		}
	}
	return nil
}

// finish detects a single load edge across the source.
func finish(net *network, src *core.Edge) bool {
	es := net.edges()
	if len(es) != 2 {
		return false
	}
	load := es[0]
	if load.ID == src.ID {
		load = es[1]
	}
	if net.pair(load) != net.pair(src) {
		return false
	}
	net.relate(Parallel, []*element{net.elem(src), net.elem(load)})
	return true
}

// prune removes non-source edges that cannot carry current: loops, edges
// with a degree-1 end and edges unreachable from the source.
func prune(net *network, src *core.Edge) (bool, error) {
	reach, err := net.reachable(src)
	if err != nil {
		return false, err
	}
	var dead []*core.Edge
	for _, e := range net.edges() {
		if e.ID == src.ID {
			continue
		}
		if e.Loop() || !reach.Reached(e.From) {
			dead = append(dead, e)
			continue
		}
		for _, v := range []string{e.From, e.To} {
			d, err := net.g.Degree(v)
			if err != nil {
				return false, err
			}
			if d == 1 {
				dead = append(dead, e)
				break
			}
		}
	}
	if len(dead) == 0 {
		return false, nil
	}
	for _, e := range dead {
		net.dropped = append(net.dropped, leaves(net.composites, e.Element)...)
	}
	return true, net.remove(dead...)
}

// series merges the two resistive edges of the first degree-2 supernode.
func series(net *network, src *core.Edge) (bool, error) {
	for _, v := range net.vertices() {
		inc, err := net.incident(v)
		if err != nil {
			return false, err
		}
		if len(inc) != 2 || inc[0].ID == src.ID || inc[1].ID == src.ID || inc[0].Loop() || inc[1].Loop() {
			continue
		}
		return true, net.merge(Series, inc, inc[0].Other(v), inc[1].Other(v))
	}
	return false, nil
}

// parallel merges the first group of resistive edges sharing both endpoints.
func parallel(net *network, src *core.Edge) (bool, error) {
	groups := make(map[[2]int][]*core.Edge)
	var pairs [][2]int
	for _, e := range net.edges() {
		if e.ID == src.ID || e.Loop() {
			continue
		}
		p := net.pair(e)
		if _, ok := groups[p]; !ok {
			pairs = append(pairs, p)
		}
		groups[p] = append(groups[p], e)
	}
	for _, p := range sortPairs(pairs) {
		if g := groups[p]; len(g) > 1 {
			return true, net.merge(Parallel, g, g[0].From, g[0].To)
		}
	}
	return false, nil
}

// render expands composite names. Unless nested is set, composites of the
// same kind as their parent are flattened into it.
func render(composites map[string]Composite, name string, nested bool) string {
	c, ok := composites[name]
	if !ok {
		return name
	}
	return "(" + renderMembers(composites, c, nested) + ")"
}

func renderMembers(composites map[string]Composite, c Composite, nested bool) string {
	parts := make([]string, len(c.Members))
	for i, m := range c.Members {
		if inner, ok := composites[m]; ok && inner.Kind == c.Kind && !nested {
			parts[i] = renderMembers(composites, inner, nested)
			continue
		}
		parts[i] = render(composites, m, nested)
	}
	return strings.Join(parts, c.Kind.operator())
}

func bracket(s string) string {
	if strings.HasPrefix(s, "(") {
		return s
	}
	return "(" + s + ")"
}

// leaves returns the component names a composite expands to.
func leaves(composites map[string]Composite, name string) []string {
	c, ok := composites[name]
	if !ok {
		return []string{name}
	}
	var out []string
	for _, m := range c.Members {
		out = append(out, leaves(composites, m)...)
	}
	return out
}

func sortPairs(ps [][2]int) [][2]int {
	out := append([][2]int(nil), ps...)
	sort.Slice(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}

func less(a, b [2]int) bool {
	if a[0] != b[0] {
		return a[0] < b[0]
	}
	return a[1] < b[1]
}
