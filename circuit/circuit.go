// SPDX-License-Identifier: MIT
// Package: ohmlab/circuit
//
// circuit.go — Circuit: validated components plus their resolved NodeRule,
// and one-call entry points over the solving pipeline.

package circuit

import (
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/ohmlab/component"
	"github.com/katalvlaran/ohmlab/mna"
	"github.com/katalvlaran/ohmlab/reduce"
	"github.com/katalvlaran/ohmlab/result"
	"github.com/katalvlaran/ohmlab/topology"
)

// Circuit is immutable after New; its methods may run concurrently.
type Circuit struct {
	id         string
	components []component.Component
	rule       *topology.NodeRule
	cfg        config
	log        *slog.Logger
}

// New validates cs, resolves raw into a NodeRule and returns the circuit.
func New(cs []component.Component, raw [][]int, opts ...Option) (*Circuit, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if err := component.Validate(cs); err != nil {
		return nil, circuitErrorf(opNew, err)
	}
	rule, err := topology.Resolve(cs, raw, cfg.resolve...)
	if err != nil {
		return nil, circuitErrorf(opNew, err)
	}

	id := uuid.NewString()
	log := cfg.logger.With(slog.String("circuit", id))
	log.Debug("circuit resolved",
		slog.Int("components", len(cs)),
		slog.Int("supernodes", rule.N()),
		slog.String("ground", rule.GroundSource()),
		slog.String("rule", rule.String()),
	)
	return &Circuit{
		id:         id,
		components: append([]component.Component(nil), cs...),
		rule:       rule,
		cfg:        cfg,
		log:        log,
	}, nil
}

// ID returns the identifier attached to this circuit's log records.
func (c *Circuit) ID() string { return c.id }

// Components returns a copy of the component list.
func (c *Circuit) Components() []component.Component {
	return append([]component.Component(nil), c.components...)
}

// Rule returns the resolved NodeRule.
func (c *Circuit) Rule() *topology.NodeRule { return c.rule }

// System assembles the numeric MNA system without solving it.
func (c *Circuit) System() (*mna.System, error) {
	sys, err := mna.Assemble(c.components, c.rule)
	if err != nil {
		return nil, circuitErrorf(opSolve, err)
	}
	return sys, nil
}

// Solve runs numeric MNA and compiles potentials, volts and currents.
func (c *Circuit) Solve() (res *result.Result, err error) {
	start := time.Now()
	defer func() { c.cfg.metrics.observe("solve", status(err), start) }()

	sys, err := c.System()
	if err != nil {
		c.log.Warn("assemble failed", slog.Any("err", err))
		return nil, err
	}
	c.log.Debug("system assembled", slog.Int("n", sys.N), slog.Int("m", sys.M))

	x, err := mna.Solve(sys, c.cfg.solve...)
	if err != nil {
		c.log.Warn("solve failed", slog.String("backend", c.cfg.backend.String()), slog.Any("err", err))
		return nil, circuitErrorf(opSolve, err)
	}
	res, err = result.Compile(c.components, c.rule, x, c.cfg.compile...)
	if err != nil {
		return nil, circuitErrorf(opSolve, err)
	}
	c.log.Debug("solved", slog.String("backend", c.cfg.backend.String()), slog.Duration("took", time.Since(start)))
	return res, nil
}

// SolveSymbolic runs symbolic MNA; resistances and potentials may hold symbols.
func (c *Circuit) SolveSymbolic() (res *result.SymbolicResult, err error) {
	start := time.Now()
	defer func() { c.cfg.metrics.observe("solve_symbolic", status(err), start) }()

	sys, err := mna.AssembleSymbolic(c.components, c.rule)
	if err != nil {
		c.log.Warn("symbolic assemble failed", slog.Any("err", err))
		return nil, circuitErrorf(opSolveSymbolic, err)
	}
	xs, err := mna.SolveSymbolic(sys)
	if err != nil {
		c.log.Warn("symbolic solve failed", slog.Any("err", err))
		return nil, circuitErrorf(opSolveSymbolic, err)
	}
	res, err = result.CompileSymbolic(c.components, c.rule, xs)
	if err != nil {
		return nil, circuitErrorf(opSolveSymbolic, err)
	}
	c.log.Debug("solved symbolically", slog.Int("unknowns", len(xs)), slog.Duration("took", time.Since(start)))
	return res, nil
}

// Equivalent reduces the network seen by its single source. A network
// without a series/parallel form is reported with OK=false and no error.
func (c *Circuit) Equivalent(opts ...reduce.Option) (*reduce.Result, error) {
	start := time.Now()
	res, err := reduce.Reduce(c.components, c.rule, opts...)
	if err != nil {
		c.cfg.metrics.observe("equivalent", "error", start)
		return nil, circuitErrorf(opEquivalent, err)
	}
	if !res.OK {
		c.cfg.metrics.observe("equivalent", "stuck", start)
		c.log.Debug("no series/parallel form", slog.String("state", res.State.String()))
		return res, nil
	}
	c.cfg.metrics.observe("equivalent", "success", start)
	c.log.Debug("reduced", slog.String("expression", res.Expression), slog.Int("composites", len(res.Composites)))
	return res, nil
}
