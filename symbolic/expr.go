// SPDX-License-Identifier: MIT
// Package: ohmlab/symbolic
//
// expr.go — expression node types and constructors.
//
// Design:
//   • Nodes are immutable after construction; every transformation returns a new tree.
//   • Constructors (Add, Sub, Mul, Div, Neg) build raw nodes without simplifying;
//     call Simplify explicitly when a canonical form is needed.
//   • Nodes produced by the simplifier carry a `simplified` flag so repeated
//     Simplify calls on shared subtrees are O(1).

package symbolic

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
)

// Expr is a node of an expression tree.
type Expr interface {
	fmt.Stringer

	// Simplify returns a structurally simplified, equivalent expression.
	Simplify() Expr

	// Substitute replaces symbols found in b and returns the rebuilt tree.
	Substitute(b Bindings) Expr

	// Eval computes the float64 value of the expression for the given symbol values.
	Eval(env Env) (float64, error)

	precedence() int
	walk(fn func(Expr))
}

// Bindings maps symbol names to replacement expressions.
type Bindings map[string]Expr

// Env maps symbol names to numeric values for evaluation.
type Env map[string]float64

// Operator precedence used by the printer.
const (
	precSum     = 1
	precProduct = 2
	precAtom    = 3
)

// ---------- Num ----------

// Num is an exact rational literal.
type Num struct {
	v *big.Rat
}

// Int returns the integer literal n.
func Int(n int64) *Num {
	return &Num{v: new(big.Rat).SetInt64(n)}
}

// Frac returns the rational literal p/q. q must be non-zero.
func Frac(p, q int64) *Num {
	if q == 0 {
		panic("symbolic: Frac with zero denominator")
	}
	return &Num{v: big.NewRat(p, q)}
}

// RatNum returns a literal holding a copy of r.
func RatNum(r *big.Rat) *Num {
	return &Num{v: new(big.Rat).Set(r)}
}

// Float converts f into the exact rational of its shortest decimal form,
// so Float(0.1) is 1/10 rather than the binary expansion of 0.1.
func Float(f float64) (*Num, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, symbolicErrorf("Float", ErrNonFinite)
	}
	r, ok := new(big.Rat).SetString(strconv.FormatFloat(f, 'g', -1, 64))
	if !ok {
		return nil, symbolicErrorf("Float", fmt.Errorf("%w: %g", ErrParse, f))
	}
	return &Num{v: r}, nil
}

// MustFloat is Float for literals known to be finite; it panics otherwise.
func MustFloat(f float64) *Num {
	n, err := Float(f)
	if err != nil {
		panic(err)
	}
	return n
}

// Rat returns a copy of the underlying rational.
func (n *Num) Rat() *big.Rat { return new(big.Rat).Set(n.v) }

// Float64 returns the nearest float64 value.
func (n *Num) Float64() float64 {
	f, _ := n.v.Float64()
	return f
}

// IsZero reports whether n == 0.
func (n *Num) IsZero() bool { return n.v.Sign() == 0 }

// IsOne reports whether n == 1.
func (n *Num) IsOne() bool { return n.v.IsInt() && n.v.Num().IsInt64() && n.v.Num().Int64() == 1 }

// IsNegative reports whether n < 0.
func (n *Num) IsNegative() bool { return n.v.Sign() < 0 }

func (n *Num) Simplify() Expr            { return n }
func (n *Num) Substitute(Bindings) Expr  { return n }
func (n *Num) Eval(Env) (float64, error) { return n.Float64(), nil }
func (n *Num) walk(fn func(Expr))        { fn(n) }

func (n *Num) precedence() int {
	if n.v.Sign() < 0 || !n.v.IsInt() {
		return precProduct
	}
	return precAtom
}

// ---------- Sym ----------

// Sym is a named symbol.
type Sym struct {
	name string
}

// Symbol returns the symbol called name.
func Symbol(name string) *Sym { return &Sym{name: name} }

// Name returns the symbol name.
func (s *Sym) Name() string { return s.name }

func (s *Sym) Simplify() Expr     { return s }
func (s *Sym) precedence() int    { return precAtom }
func (s *Sym) walk(fn func(Expr)) { fn(s) }

func (s *Sym) Substitute(b Bindings) Expr {
	if v, ok := b[s.name]; ok {
		return v
	}
	return s
}

func (s *Sym) Eval(env Env) (float64, error) {
	v, ok := env[s.name]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnbound, s.name)
	}
	return v, nil
}

// ---------- Sum ----------

// Sum is an n-ary addition.
type Sum struct {
	terms      []Expr
	simplified bool
}

// Terms returns a copy of the summands.
func (s *Sum) Terms() []Expr { return append([]Expr(nil), s.terms...) }

func (s *Sum) precedence() int { return precSum }

func (s *Sum) walk(fn func(Expr)) {
	fn(s)
	for _, t := range s.terms {
		t.walk(fn)
	}
}

func (s *Sum) Substitute(b Bindings) Expr {
	out := make([]Expr, len(s.terms))
	for i, t := range s.terms {
		out[i] = t.Substitute(b)
	}
	return &Sum{terms: out}
}

func (s *Sum) Eval(env Env) (float64, error) {
	var acc float64
	for _, t := range s.terms {
		v, err := t.Eval(env)
		if err != nil {
			return 0, err
		}
		acc += v
	}
	return acc, nil
}

// ---------- Product ----------

// Product is an n-ary multiplication.
type Product struct {
	factors    []Expr
	simplified bool
}

// Factors returns a copy of the factors.
func (p *Product) Factors() []Expr { return append([]Expr(nil), p.factors...) }

func (p *Product) precedence() int { return precProduct }

func (p *Product) walk(fn func(Expr)) {
	fn(p)
	for _, f := range p.factors {
		f.walk(fn)
	}
}

func (p *Product) Substitute(b Bindings) Expr {
	out := make([]Expr, len(p.factors))
	for i, f := range p.factors {
		out[i] = f.Substitute(b)
	}
	return &Product{factors: out}
}

func (p *Product) Eval(env Env) (float64, error) {
	acc := 1.0
	for _, f := range p.factors {
		v, err := f.Eval(env)
		if err != nil {
			return 0, err
		}
		acc *= v
	}
	return acc, nil
}

// ---------- Quotient ----------

// Quotient is num / den.
type Quotient struct {
	num, den   Expr
	simplified bool
}

// Numerator returns the numerator.
func (q *Quotient) Numerator() Expr { return q.num }

// Denominator returns the denominator.
func (q *Quotient) Denominator() Expr { return q.den }

func (q *Quotient) precedence() int { return precProduct }

func (q *Quotient) walk(fn func(Expr)) {
	fn(q)
	q.num.walk(fn)
	q.den.walk(fn)
}

func (q *Quotient) Substitute(b Bindings) Expr {
	return &Quotient{num: q.num.Substitute(b), den: q.den.Substitute(b)}
}

func (q *Quotient) Eval(env Env) (float64, error) {
	n, err := q.num.Eval(env)
	if err != nil {
		return 0, err
	}
	d, err := q.den.Eval(env)
	if err != nil {
		return 0, err
	}
	if d == 0 {
		return 0, fmt.Errorf("%w: %s", ErrDivByZero, q.den)
	}
	return n / d, nil
}

// ---------- constructors ----------

// Add returns the raw sum of terms. Add() is 0.
func Add(terms ...Expr) Expr {
	switch len(terms) {
	case 0:
		return Int(0)
	case 1:
		return terms[0]
	}
	return &Sum{terms: append([]Expr(nil), terms...)}
}

// Sub returns a - b.
func Sub(a, b Expr) Expr {
	return &Sum{terms: []Expr{a, Neg(b)}}
}

// Neg returns -a.
func Neg(a Expr) Expr {
	if n, ok := a.(*Num); ok {
		return &Num{v: new(big.Rat).Neg(n.v)}
	}
	return &Product{factors: []Expr{Int(-1), a}}
}

// Mul returns the raw product of factors. Mul() is 1.
func Mul(factors ...Expr) Expr {
	switch len(factors) {
	case 0:
		return Int(1)
	case 1:
		return factors[0]
	}
	return &Product{factors: append([]Expr(nil), factors...)}
}

// Div returns num / den.
func Div(num, den Expr) Expr {
	return &Quotient{num: num, den: den}
}

// Reciprocal returns 1 / a.
func Reciprocal(a Expr) Expr {
	return &Quotient{num: Int(1), den: a}
}
