// SPDX-License-Identifier: MIT
// Package: ohmlab/mna
//
// options.go — solver options.

package mna

import (
	"fmt"
	"strings"
)

// Backend selects the dense linear kernel used by Solve.
type Backend int

const (
	// BackendGaussJordan forms A⁻¹ by Gauss–Jordan and multiplies by z.
	BackendGaussJordan Backend = iota
	// BackendElimination solves A·x = z by Gaussian elimination without forming A⁻¹.
	BackendElimination
	// BackendGonum delegates to gonum's LU-based VecDense.SolveVec.
	BackendGonum
)

var backendNames = map[Backend]string{
	BackendGaussJordan: "gauss-jordan",
	BackendElimination: "elimination",
	BackendGonum:       "gonum",
}

// String returns the backend name accepted by ParseBackend.
func (b Backend) String() string {
	if s, ok := backendNames[b]; ok {
		return s
	}
	return fmt.Sprintf("Backend(%d)", int(b))
}

// ParseBackend maps a name ("gauss-jordan", "elimination", "gonum") to a Backend.
func ParseBackend(s string) (Backend, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for b, n := range backendNames {
		if n == name {
			return b, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownBackend, s)
}

// Option customizes Solve.
type Option func(*config)

type config struct {
	backend Backend
}

// WithBackend selects the linear kernel. Panics on an unknown value.
func WithBackend(b Backend) Option {
	if _, ok := backendNames[b]; !ok {
		panic(fmt.Sprintf("mna: WithBackend(%d)", int(b)))
	}
	return func(c *config) {
		c.backend = b
	}
}

func newConfig(opts []Option) config {
	cfg := config{backend: BackendGaussJordan}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
