// SPDX-License-Identifier: MIT
// Package: ohmlab/mna
//
// solve.go — x = A⁻¹z over a selectable dense backend.

package mna

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/ohmlab/matrix"
)

// Solve returns x with the first N entries the supernode potentials and the
// last M the source branch currents, in Sources order.
func Solve(sys *System, opts ...Option) ([]float64, error) {
	if sys == nil || sys.A == nil {
		return nil, mnaErrorf(opSolve, matrix.ErrNilMatrix)
	}
	cfg := newConfig(opts)

	var (
		x   []float64
		err error
	)
	switch cfg.backend {
	case BackendElimination:
		x, err = matrix.Solve(sys.A, sys.Z)
	case BackendGonum:
		x, err = solveGonum(sys.A, sys.Z)
	default:
		var inv *matrix.Dense
		if inv, err = matrix.Inverse(sys.A); err == nil {
			x, err = matrix.MatVec(inv, sys.Z)
		}
	}
	if err != nil {
		if errors.Is(err, matrix.ErrDimensionMismatch) || errors.Is(err, matrix.ErrNonSquare) {
			return nil, mnaErrorf(opSolve, err)
		}
		return nil, singular(opSolve, err)
	}
	for i, v := range x {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, singular(opSolve, fmt.Errorf("x[%d] = %v", i, v))
		}
	}
	return x, nil
}

// solveGonum runs gonum's LU solve; any reported condition problem counts
// as singular.
func solveGonum(a *matrix.Dense, z []float64) ([]float64, error) {
	n := a.Rows()
	if n == 0 {
		return []float64{}, nil
	}
	if a.Cols() != n || len(z) != n {
		return nil, matrix.ErrDimensionMismatch
	}
	ga := mat.NewDense(n, n, a.RawData())
	gz := mat.NewVecDense(n, append([]float64(nil), z...))

	var gx mat.VecDense
	if err := gx.SolveVec(ga, gz); err != nil {
		return nil, err
	}
	return mat.Col(nil, 0, &gx), nil
}
