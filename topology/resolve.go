// SPDX-License-Identifier: MIT
// Package: ohmlab/topology
//
// resolve.go — raw terminal groups to a keyed NodeRule.
//
// Stages:
//   1. validate the raw rule shape (ErrInvalidRule);
//   2. validate coverage against the components (ErrInvalidTopology);
//   3. drop every terminal of an open switch, then drop emptied groups;
//   4. pick the ground terminal (Next of the reference source);
//   5. key the ground group 0 and the rest 1..n in input order.
//
// Complexity: O(T) for T listed terminals.

package topology

import (
	"fmt"

	"github.com/katalvlaran/ohmlab/component"
)

// Resolve partitions the component terminals into keyed supernodes.
func Resolve(cs []component.Component, raw [][]int, opts ...Option) (*NodeRule, error) {
	cfg := newConfig(opts)

	if err := component.Validate(cs); err != nil {
		return nil, topologyErrorf("Resolve", err)
	}
	if err := checkShape(raw); err != nil {
		return nil, topologyErrorf("Resolve", err)
	}
	if err := checkCoverage(cs, raw); err != nil {
		return nil, topologyErrorf("Resolve", err)
	}

	open := make(map[component.Terminal]bool)
	for _, c := range cs {
		if c.IsOpen() {
			open[c.Prev], open[c.Next] = true, true
		}
	}
	groups := make([][]component.Terminal, 0, len(raw))
	for _, g := range raw {
		kept := make([]component.Terminal, 0, len(g))
		for _, id := range g {
			if t := component.Terminal(id); !open[t] {
				kept = append(kept, t)
			}
		}
		if len(kept) > 0 {
			groups = append(groups, kept)
		}
	}

	src, err := groundSource(cs, cfg.groundSource)
	if err != nil {
		return nil, topologyErrorf("Resolve", err)
	}

	rule := &NodeRule{
		supernodes: []Supernode{{Key: 0}},
		keyOf:      make(map[component.Terminal]int),
	}
	if src != nil {
		rule.hasGround = true
		rule.groundSource = src.Name
		rule.groundTerminal = src.Next
	}
	for _, g := range groups {
		key := len(rule.supernodes)
		if rule.hasGround && contains(g, rule.groundTerminal) {
			key = 0
			rule.supernodes[0].Terminals = g
		} else {
			rule.supernodes = append(rule.supernodes, Supernode{Key: key, Terminals: g})
		}
		for _, t := range g {
			rule.keyOf[t] = key
		}
	}
	return rule, nil
}

func checkShape(raw [][]int) error {
	if len(raw) == 0 {
		return fmt.Errorf("%w: no groups", ErrInvalidRule)
	}
	for i, g := range raw {
		if len(g) == 0 {
			return fmt.Errorf("%w: group %d is empty", ErrInvalidRule, i)
		}
		for _, id := range g {
			if id <= 0 {
				return fmt.Errorf("%w: group %d holds terminal %d", ErrInvalidRule, i, id)
			}
		}
	}
	return nil
}

func checkCoverage(cs []component.Component, raw [][]int) error {
	owner := make(map[component.Terminal]string, 2*len(cs))
	for _, c := range cs {
		owner[c.Prev], owner[c.Next] = c.Name, c.Name
	}
	seen := make(map[component.Terminal]int, len(owner))
	for i, g := range raw {
		for _, id := range g {
			t := component.Terminal(id)
			if _, ok := owner[t]; !ok {
				return fmt.Errorf("%w: terminal %d belongs to no component", ErrInvalidTopology, id)
			}
			if j, dup := seen[t]; dup {
				return fmt.Errorf("%w: terminal %d listed in groups %d and %d", ErrInvalidTopology, id, j, i)
			}
			seen[t] = i
		}
	}
	for _, c := range cs {
		for _, t := range []component.Terminal{c.Prev, c.Next} {
			if _, ok := seen[t]; !ok {
				return fmt.Errorf("%w: terminal %d of %q not covered", ErrInvalidTopology, t, c.Name)
			}
		}
	}
	return nil
}

// groundSource returns the reference source defining ground, or nil when the
// circuit holds none.
func groundSource(cs []component.Component, name string) (*component.Component, error) {
	var refs []int
	for i, c := range cs {
		if c.IsReference() {
			refs = append(refs, i)
		}
	}
	if name != "" {
		for _, i := range refs {
			if cs[i].Name == name {
				return &cs[i], nil
			}
		}
		return nil, fmt.Errorf("%w: %q", ErrGroundSource, name)
	}
	switch len(refs) {
	case 0:
		return nil, nil
	case 1:
		return &cs[refs[0]], nil
	}
	names := make([]string, len(refs))
	for k, i := range refs {
		names[k] = cs[i].Name
	}
	return nil, fmt.Errorf("%w: %d voltage sources %v", ErrAmbiguousGround, len(refs), names)
}

func contains(g []component.Terminal, t component.Terminal) bool {
	for _, x := range g {
		if x == t {
			return true
		}
	}
	return false
}
