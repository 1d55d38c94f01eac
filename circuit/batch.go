// SPDX-License-Identifier: MIT
// Package: ohmlab/circuit
//
// batch.go — bounded concurrent solving of independent circuits.

package circuit

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/ohmlab/result"
)

// SolveBatch solves independent circuits concurrently with at most limit
// solves in flight (limit <= 0 means unbounded). Results keep input order;
// the first error cancels the solves not yet started.
func SolveBatch(ctx context.Context, circuits []*Circuit, limit int) ([]*result.Result, error) {
	for _, c := range circuits {
		if c == nil {
			return nil, circuitErrorf(opSolveBatch, ErrNilCircuit)
		}
	}
	out := make([]*result.Result, len(circuits))
	g, gctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	for i, c := range circuits {
		i, c := i, c
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := c.Solve()
			if err != nil {
				return err
			}
			out[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, circuitErrorf(opSolveBatch, err)
	}
	return out, nil
}
