// SPDX-License-Identifier: MIT
// Package: ohmlab/topology
//
// errors.go — sentinel errors for the topology resolver.

package topology

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidRule indicates a malformed raw rule: nil/empty list, an empty
	// group, or a non-positive terminal id.
	ErrInvalidRule = errors.New("topology: invalid node rule")

	// ErrInvalidTopology indicates a rule that does not cover the components:
	// a terminal left out, listed twice, or not owned by any component.
	ErrInvalidTopology = errors.New("topology: invalid topology")

	// ErrAmbiguousGround indicates several reference voltage sources and no
	// explicit ground selection.
	ErrAmbiguousGround = errors.New("topology: ambiguous ground")

	// ErrGroundSource indicates that the selected ground source is not a
	// voltage source of the circuit.
	ErrGroundSource = errors.New("topology: ground source not found")
)

func topologyErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
