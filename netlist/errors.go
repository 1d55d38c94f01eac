// SPDX-License-Identifier: MIT
// Package: ohmlab/netlist
//
// errors.go — sentinel errors for netlist decoding and validation.

package netlist

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidNetlist indicates a document that decodes but fails validation.
	ErrInvalidNetlist = errors.New("netlist: invalid netlist")

	// ErrDecode indicates malformed YAML or unknown fields.
	ErrDecode = errors.New("netlist: decode failed")

	// ErrUnknownTerminal indicates a node entry naming no component terminal.
	ErrUnknownTerminal = errors.New("netlist: unknown terminal reference")
)

func netlistErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
