// SPDX-License-Identifier: MIT
// Package: ohmlab/component
//
// errors.go — sentinel errors for the component package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Context (component name, position) is attached with %w at the detection site.

package component

import (
	"errors"
	"fmt"
)

// ErrEmptyName indicates a component without a name.
var ErrEmptyName = errors.New("component: empty name")

// ErrDuplicateName indicates two components sharing one name.
var ErrDuplicateName = errors.New("component: duplicate name")

// ErrMissingValue indicates a resistor or voltage source without a value.
var ErrMissingValue = errors.New("component: missing value")

// ErrInvalidValue indicates a value that cannot be used: a value attached to a
// wire or switch, a non-finite number, or an unknown kind.
var ErrInvalidValue = errors.New("component: invalid value")

// ErrSymbolicValue indicates that a numeric operation met a symbolic parameter.
var ErrSymbolicValue = errors.New("component: value is symbolic")

// ErrInvalidTerminal indicates terminal ids that are non-positive or reused.
var ErrInvalidTerminal = errors.New("component: invalid terminal")

// componentErrorf attaches the component name to err.
func componentErrorf(name string, err error) error {
	return fmt.Errorf("component %q: %w", name, err)
}
