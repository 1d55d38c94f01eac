// SPDX-License-Identifier: MIT
// Package: ohmlab/symbolic
//
// matrix.go — dense matrix of expressions and its Gauss–Jordan inverse.
//
// Pivoting:
//   - Every candidate pivot is evaluated at a fixed sample point (each symbol
//     bound to a distinct irrational-looking value). The candidate with the
//     largest |sample value| wins; ties keep the lowest row index.
//   - A column whose best sample magnitude is below sampleEps is singular.
//   - Entries are simplified after every row operation so purely numeric
//     matrices fold to exact rationals.

package symbolic

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

const (
	sampleBase = 1.4142135623730951
	sampleStep = 0.4487989505128276
	sampleEps  = 1e-12
)

// Matrix is a dense rows×cols grid of expressions in row-major order.
type Matrix struct {
	r, c int
	data []Expr
}

// NewMatrix returns an r×c matrix filled with 0. Zero dimensions are allowed.
func NewMatrix(r, c int) (*Matrix, error) {
	if r < 0 || c < 0 {
		return nil, symbolicErrorf("NewMatrix", fmt.Errorf("%w: %dx%d", ErrDimension, r, c))
	}
	data := make([]Expr, r*c)
	for i := range data {
		data[i] = Int(0)
	}
	return &Matrix{r: r, c: c, data: data}, nil
}

// Identity returns the n×n identity matrix.
func Identity(n int) (*Matrix, error) {
	m, err := NewMatrix(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = Int(1)
	}
	return m, nil
}

// Rows returns the number of rows.
func (m *Matrix) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Matrix) Cols() int { return m.c }

// At returns the entry (i, j).
func (m *Matrix) At(i, j int) (Expr, error) {
	if i < 0 || i >= m.r || j < 0 || j >= m.c {
		return nil, symbolicErrorf("At", fmt.Errorf("%w: (%d,%d) in %dx%d", ErrDimension, i, j, m.r, m.c))
	}
	return m.data[i*m.c+j], nil
}

// Set stores e at (i, j).
func (m *Matrix) Set(i, j int, e Expr) error {
	if i < 0 || i >= m.r || j < 0 || j >= m.c {
		return symbolicErrorf("Set", fmt.Errorf("%w: (%d,%d) in %dx%d", ErrDimension, i, j, m.r, m.c))
	}
	m.data[i*m.c+j] = e
	return nil
}

// Clone returns a shallow copy; expression nodes are immutable and shared.
func (m *Matrix) Clone() *Matrix {
	data := make([]Expr, len(m.data))
	copy(data, m.data)
	return &Matrix{r: m.r, c: m.c, data: data}
}

// String renders one bracketed row per line.
func (m *Matrix) String() string {
	var b strings.Builder
	for i := 0; i < m.r; i++ {
		b.WriteString("[")
		for j := 0; j < m.c; j++ {
			if j > 0 {
				b.WriteString(", ")
			}
			b.WriteString(m.data[i*m.c+j].String())
		}
		b.WriteString("]\n")
	}
	return b.String()
}

// MulVec returns m·v with every entry simplified.
func (m *Matrix) MulVec(v []Expr) ([]Expr, error) {
	if len(v) != m.c {
		return nil, symbolicErrorf("MulVec", fmt.Errorf("%w: %dx%d · %d", ErrDimension, m.r, m.c, len(v)))
	}
	out := make([]Expr, m.r)
	for i := 0; i < m.r; i++ {
		terms := make([]Expr, 0, m.c)
		for j := 0; j < m.c; j++ {
			a := m.data[i*m.c+j]
			if IsZero(a) || IsZero(v[j]) {
				continue
			}
			terms = append(terms, Mul(a, v[j]))
		}
		out[i] = Add(terms...).Simplify()
	}
	return out, nil
}

// Inverse returns m⁻¹ by Gauss–Jordan elimination on [m | I].
func (m *Matrix) Inverse() (*Matrix, error) {
	if m.r != m.c {
		return nil, symbolicErrorf("Inverse", fmt.Errorf("%w: %dx%d is not square", ErrDimension, m.r, m.c))
	}
	n := m.r
	a := m.Clone()
	for i := range a.data {
		a.data[i] = a.data[i].Simplify()
	}
	inv, _ := Identity(n)
	env := sampleEnv(a)

	for col := 0; col < n; col++ {
		// 1) choose the pivot row by sample magnitude.
		pivot, best := -1, 0.0
		for row := col; row < n; row++ {
			v, err := a.data[row*n+col].Eval(env)
			if err != nil || math.IsNaN(v) {
				continue
			}
			if av := math.Abs(v); av > best {
				pivot, best = row, av
			}
		}
		if pivot < 0 || best < sampleEps {
			return nil, symbolicErrorf("Inverse", fmt.Errorf("%w: column %d", ErrSingular, col))
		}
		if pivot != col {
			a.swapRows(pivot, col)
			inv.swapRows(pivot, col)
		}

		// 2) normalize the pivot row.
		p := a.data[col*n+col]
		for j := 0; j < n; j++ {
			a.data[col*n+j] = Div(a.data[col*n+j], p).Simplify()
			inv.data[col*n+j] = Div(inv.data[col*n+j], p).Simplify()
		}

		// 3) eliminate the column from every other row.
		for row := 0; row < n; row++ {
			if row == col {
				continue
			}
			f := a.data[row*n+col]
			if IsZero(f) {
				continue
			}
			for j := 0; j < n; j++ {
				a.data[row*n+j] = Sub(a.data[row*n+j], Mul(f, a.data[col*n+j])).Simplify()
				inv.data[row*n+j] = Sub(inv.data[row*n+j], Mul(f, inv.data[col*n+j])).Simplify()
			}
		}
	}
	return inv, nil
}

func (m *Matrix) swapRows(i, j int) {
	for k := 0; k < m.c; k++ {
		m.data[i*m.c+k], m.data[j*m.c+k] = m.data[j*m.c+k], m.data[i*m.c+k]
	}
}

// sampleEnv binds every symbol in m to a distinct sample value.
func sampleEnv(m *Matrix) Env {
	seen := make(map[string]struct{})
	for _, e := range m.data {
		for _, s := range Symbols(e) {
			seen[s] = struct{}{}
		}
	}
	names := make([]string, 0, len(seen))
	for s := range seen {
		names = append(names, s)
	}
	sort.Strings(names)
	env := make(Env, len(names))
	for i, s := range names {
		env[s] = sampleBase + float64(i)*sampleStep
	}
	return env
}
