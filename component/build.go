// SPDX-License-Identifier: MIT
// Package: ohmlab/component
//
// build.go — descriptors to components, and list validation.

package component

import (
	"fmt"

	"github.com/katalvlaran/ohmlab/symbolic"
)

// Descriptor is the caller-facing description of one component. Terminal ids
// are not part of it: they derive from the descriptor's position.
type Descriptor struct {
	Kind   Kind
	Name   string
	Value  symbolic.Expr
	Closed bool
}

// Build turns descriptors into components, assigning terminals 2k-1 and 2k
// to the k-th descriptor, and validates the result.
func Build(descs []Descriptor) ([]Component, error) {
	alloc := NewAllocator()
	out := make([]Component, 0, len(descs))
	for i, d := range descs {
		var c Component
		switch d.Kind {
		case Resistor:
			c = alloc.Resistor(d.Name, d.Value)
		case VoltageSource:
			c = alloc.VoltageSource(d.Name, d.Value)
		case Wire:
			if d.Value != nil {
				return nil, fmt.Errorf("descriptor %d: %w", i, componentErrorf(d.Name, fmt.Errorf("%w: wire has no value", ErrInvalidValue)))
			}
			c = alloc.Wire(d.Name)
		case Switch:
			if d.Value != nil {
				return nil, fmt.Errorf("descriptor %d: %w", i, componentErrorf(d.Name, fmt.Errorf("%w: switch has no value", ErrInvalidValue)))
			}
			c = alloc.Switch(d.Name, d.Closed)
		default:
			return nil, fmt.Errorf("descriptor %d: %w", i, componentErrorf(d.Name, fmt.Errorf("%w: kind %s", ErrInvalidValue, d.Kind)))
		}
		out = append(out, c)
	}
	if err := Validate(out); err != nil {
		return nil, err
	}
	return out, nil
}

// Validate checks a component list: non-empty unique names, values present
// and free of literal division by zero, positive and unshared terminal ids.
func Validate(cs []Component) error {
	names := make(map[string]struct{}, len(cs))
	terms := make(map[Terminal]string, 2*len(cs))
	for _, c := range cs {
		if c.Name == "" {
			return componentErrorf(c.Name, ErrEmptyName)
		}
		if _, dup := names[c.Name]; dup {
			return componentErrorf(c.Name, ErrDuplicateName)
		}
		names[c.Name] = struct{}{}

		for _, t := range []Terminal{c.Prev, c.Next} {
			if t <= 0 {
				return componentErrorf(c.Name, fmt.Errorf("%w: %d", ErrInvalidTerminal, t))
			}
			if owner, taken := terms[t]; taken {
				return componentErrorf(c.Name, fmt.Errorf("%w: %d already used by %q", ErrInvalidTerminal, t, owner))
			}
			terms[t] = c.Name
		}

		switch c.Kind {
		case Resistor, VoltageSource:
			if c.Value == nil {
				return componentErrorf(c.Name, ErrMissingValue)
			}
			if hasDivZero(c.Value) {
				return componentErrorf(c.Name, fmt.Errorf("%w: division by zero in %s", ErrInvalidValue, c.Value))
			}
		case Wire, Switch:
		default:
			return componentErrorf(c.Name, fmt.Errorf("%w: kind %s", ErrInvalidValue, c.Kind))
		}
	}
	return nil
}

// hasDivZero reports a literal zero denominator left after simplification.
func hasDivZero(e symbolic.Expr) bool {
	q, ok := e.Simplify().(*symbolic.Quotient)
	return ok && symbolic.IsZero(q.Denominator())
}

// Count returns how many components satisfy pred.
func Count(cs []Component, pred func(Component) bool) int {
	n := 0
	for _, c := range cs {
		if pred(c) {
			n++
		}
	}
	return n
}

// ByName indexes components by name.
func ByName(cs []Component) map[string]Component {
	out := make(map[string]Component, len(cs))
	for _, c := range cs {
		out[c.Name] = c
	}
	return out
}
