// SPDX-License-Identifier: MIT
// Package matrix - structural kernels: Block, Transpose, MatVec.

package matrix

import "fmt"

// Block tiles four blocks into
//
//	| tl  tr |
//	| bl  br |
//
// Implementation:
//   - Stage 1: validate tiling: rows(tl)==rows(tr), rows(bl)==rows(br),
//     cols(tl)==cols(bl), cols(tr)==cols(br).
//   - Stage 2: copy each block row by row into a fresh Dense.
//
// Behavior highlights:
//   - Any block may have zero rows or columns (n = 0 or m = 0 circuits).
//   - Inputs are never mutated.
//
// Complexity:
//   - Time O((r1+r2)*(c1+c2)), Space O((r1+r2)*(c1+c2)).
func Block(tl, tr, bl, br *Dense) (*Dense, error) {
	if tl == nil || tr == nil || bl == nil || br == nil {
		return nil, matrixErrorf(opBlock, ErrNilMatrix)
	}
	if tl.r != tr.r || bl.r != br.r || tl.c != bl.c || tr.c != br.c {
		return nil, matrixErrorf(opBlock, fmt.Errorf("%dx%d|%dx%d over %dx%d|%dx%d: %w",
			tl.r, tl.c, tr.r, tr.c, bl.r, bl.c, br.r, br.c, ErrDimensionMismatch))
	}

	rows, cols := tl.r+bl.r, tl.c+tr.c
	out, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opBlock, err)
	}
	place := func(src *Dense, r0, c0 int) {
		for i := 0; i < src.r; i++ {
			copy(out.data[(r0+i)*cols+c0:(r0+i)*cols+c0+src.c], src.data[i*src.c:(i+1)*src.c])
		}
	}
	place(tl, 0, 0)
	place(tr, 0, tl.c)
	place(bl, tl.r, 0)
	place(br, tl.r, tl.c)

	return out, nil
}

// Transpose returns mᵀ as a new Dense.
func Transpose(m *Dense) (*Dense, error) {
	if m == nil {
		return nil, matrixErrorf(opTranspose, ErrNilMatrix)
	}
	out, err := NewDense(m.c, m.r)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			out.data[j*m.r+i] = m.data[i*m.c+j]
		}
	}

	return out, nil
}

// MatVec computes y = m·x. len(x) must equal m.Cols().
func MatVec(m *Dense, x []float64) ([]float64, error) {
	if m == nil {
		return nil, matrixErrorf(opMatVec, ErrNilMatrix)
	}
	if len(x) != m.c {
		return nil, matrixErrorf(opMatVec, fmt.Errorf("%dx%d · %d: %w", m.r, m.c, len(x), ErrDimensionMismatch))
	}
	y := make([]float64, m.r)
	var i, j, base int
	var sum float64
	for i = 0; i < m.r; i++ {
		sum = 0
		base = i * m.c
		for j = 0; j < m.c; j++ {
			sum += m.data[base+j] * x[j]
		}
		y[i] = sum
	}

	return y, nil
}
