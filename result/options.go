// SPDX-License-Identifier: MIT
// Package: ohmlab/result
//
// options.go — functional options for Compile.

package result

import "fmt"

// Option customizes normalization.
type Option func(*config)

type config struct {
	maxFractionLen int
	precision      int
}

// WithMaxFractionLen sets the longest fraction string reported as-is.
// Panics when n < 1.
func WithMaxFractionLen(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("result: WithMaxFractionLen(%d)", n))
	}
	return func(c *config) { c.maxFractionLen = n }
}

// WithPrecision sets the decimal places of the fallback. Panics outside [0, 15].
func WithPrecision(p int) Option {
	if p < 0 || p > 15 {
		panic(fmt.Sprintf("result: WithPrecision(%d)", p))
	}
	return func(c *config) { c.precision = p }
}

func newConfig(opts []Option) config {
	cfg := config{maxFractionLen: DefaultMaxFractionLen, precision: DefaultPrecision}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
