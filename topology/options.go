// SPDX-License-Identifier: MIT
// Package: ohmlab/topology
//
// options.go — functional options for Resolve.
//
// Contract:
//   • Option constructors validate and panic on meaningless input;
//     Resolve itself never panics.

package topology

// Option customizes Resolve.
type Option func(*config)

type config struct {
	groundSource string
}

// WithGroundSource selects the voltage source whose negative terminal defines
// ground when the circuit holds more than one. Panics on an empty name.
func WithGroundSource(name string) Option {
	if name == "" {
		panic("topology: WithGroundSource(\"\")")
	}
	return func(c *config) {
		c.groundSource = name
	}
}

func newConfig(opts []Option) config {
	var cfg config
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
