// SPDX-License-Identifier: MIT
// Package: ohmlab/circuit
//
// options.go — functional options for New. Each option validates eagerly and
// panics on meaningless input, as the underlying package options do.

package circuit

import (
	"io"
	"log/slog"

	"github.com/katalvlaran/ohmlab/mna"
	"github.com/katalvlaran/ohmlab/result"
	"github.com/katalvlaran/ohmlab/topology"
)

// Option customizes a Circuit.
type Option func(*config)

type config struct {
	logger  *slog.Logger
	metrics *Metrics
	solve   []mna.Option
	resolve []topology.Option
	compile []result.Option
	backend mna.Backend
}

func defaultConfig() config {
	return config{
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		backend: mna.BackendGaussJordan,
	}
}

// WithLogger routes debug and warning records to l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("circuit: WithLogger(nil)")
	}
	return func(c *config) { c.logger = l }
}

// WithMetrics records solve counters and durations into m. Panics on nil.
func WithMetrics(m *Metrics) Option {
	if m == nil {
		panic("circuit: WithMetrics(nil)")
	}
	return func(c *config) { c.metrics = m }
}

// WithBackend selects the numeric solver.
func WithBackend(b mna.Backend) Option {
	opt := mna.WithBackend(b)
	return func(c *config) {
		c.backend = b
		c.solve = append(c.solve, opt)
	}
}

// WithGroundSource names the reference source defining ground when the
// circuit holds several.
func WithGroundSource(name string) Option {
	opt := topology.WithGroundSource(name)
	return func(c *config) { c.resolve = append(c.resolve, opt) }
}

// WithMaxFractionLen sets the longest fraction reported as-is.
func WithMaxFractionLen(n int) Option {
	opt := result.WithMaxFractionLen(n)
	return func(c *config) { c.compile = append(c.compile, opt) }
}

// WithPrecision sets the decimal places of the rounded fallback.
func WithPrecision(p int) Option {
	opt := result.WithPrecision(p)
	return func(c *config) { c.compile = append(c.compile, opt) }
}
