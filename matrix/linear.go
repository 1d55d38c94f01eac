// SPDX-License-Identifier: MIT
// Package matrix - Gauss–Jordan inverse and Gaussian solve with partial pivoting.

package matrix

import (
	"fmt"
	"math"
)

// PivotEps is the magnitude at or below which a pivot counts as zero.
const PivotEps = 1e-12

// Inverse returns A⁻¹ for a square A.
// MAIN DESCRIPTION:
//   - Gauss–Jordan elimination on the augmented pair [A | I].
//
// Implementation:
//   - Stage 1: validate non-nil & square; clone A (input is never mutated).
//   - Stage 2: for each column pick the row with the largest |a[r][col]|
//     among rows >= col; swap it into place (in both halves).
//   - Stage 3: normalize the pivot row, eliminate the column from all other rows.
//
// Behavior highlights:
//   - Partial pivoting handles the structurally zero D block of MNA systems.
//   - A 0×0 input yields a 0×0 inverse.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrSingular (pivot magnitude <= PivotEps or NaN).
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func Inverse(a *Dense) (*Dense, error) {
	if a == nil {
		return nil, matrixErrorf(opInverse, ErrNilMatrix)
	}
	if a.r != a.c {
		return nil, matrixErrorf(opInverse, fmt.Errorf("%dx%d: %w", a.r, a.c, ErrNonSquare))
	}

	n := a.r
	w := a.Clone()
	inv, _ := Identity(n)

	var col, row, j, pivot int
	var best, p, f float64
	for col = 0; col < n; col++ {
		pivot, best = -1, 0
		for row = col; row < n; row++ {
			if v := math.Abs(w.data[row*n+col]); v > best {
				pivot, best = row, v
			}
		}
		if pivot < 0 || best <= PivotEps || math.IsInf(best, 0) {
			return nil, matrixErrorf(opInverse, fmt.Errorf("column %d: %w", col, ErrSingular))
		}
		if pivot != col {
			swapRows(w, pivot, col)
			swapRows(inv, pivot, col)
		}

		p = w.data[col*n+col]
		for j = 0; j < n; j++ {
			w.data[col*n+j] /= p
			inv.data[col*n+j] /= p
		}

		for row = 0; row < n; row++ {
			if row == col {
				continue
			}
			f = w.data[row*n+col]
			if f == 0 {
				continue
			}
			for j = 0; j < n; j++ {
				w.data[row*n+j] -= f * w.data[col*n+j]
				inv.data[row*n+j] -= f * inv.data[col*n+j]
			}
		}
	}

	return inv, nil
}

// Solve returns x with A·x = z by Gaussian elimination with partial pivoting
// and back substitution. It avoids forming A⁻¹ explicitly.
func Solve(a *Dense, z []float64) ([]float64, error) {
	if a == nil {
		return nil, matrixErrorf(opSolve, ErrNilMatrix)
	}
	if a.r != a.c {
		return nil, matrixErrorf(opSolve, fmt.Errorf("%dx%d: %w", a.r, a.c, ErrNonSquare))
	}
	if len(z) != a.r {
		return nil, matrixErrorf(opSolve, fmt.Errorf("%dx%d with rhs %d: %w", a.r, a.c, len(z), ErrDimensionMismatch))
	}

	n := a.r
	w := a.Clone()
	b := append([]float64(nil), z...)

	for col := 0; col < n; col++ {
		pivot, best := -1, 0.0
		for row := col; row < n; row++ {
			if v := math.Abs(w.data[row*n+col]); v > best {
				pivot, best = row, v
			}
		}
		if pivot < 0 || best <= PivotEps || math.IsInf(best, 0) {
			return nil, matrixErrorf(opSolve, fmt.Errorf("column %d: %w", col, ErrSingular))
		}
		if pivot != col {
			swapRows(w, pivot, col)
			b[pivot], b[col] = b[col], b[pivot]
		}
		for row := col + 1; row < n; row++ {
			f := w.data[row*n+col] / w.data[col*n+col]
			if f == 0 {
				continue
			}
			for j := col; j < n; j++ {
				w.data[row*n+j] -= f * w.data[col*n+j]
			}
			b[row] -= f * b[col]
		}
	}

	x := make([]float64, n)
	for i := n - 1; i >= 0; i-- {
		sum := b[i]
		for j := i + 1; j < n; j++ {
			sum -= w.data[i*n+j] * x[j]
		}
		x[i] = sum / w.data[i*n+i]
	}

	return x, nil
}

func swapRows(m *Dense, i, j int) {
	ri := m.data[i*m.c : (i+1)*m.c]
	rj := m.data[j*m.c : (j+1)*m.c]
	for k := range ri {
		ri[k], rj[k] = rj[k], ri[k]
	}
}
