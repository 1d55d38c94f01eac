// SPDX-License-Identifier: MIT
// Package: ohmlab/symbolic
//
// format.go — infix rendering. Output is accepted by Parse and re-parses to
// an equivalent tree; parentheses are emitted only where precedence needs them.

package symbolic

import (
	"math/big"
	"strings"
)

func (n *Num) String() string {
	if n.v.IsInt() {
		return n.v.Num().String()
	}
	return n.v.RatString()
}

func (s *Sym) String() string { return s.name }

func (s *Sum) String() string {
	var b strings.Builder
	for i, t := range s.terms {
		if i == 0 {
			b.WriteString(t.String())
			continue
		}
		if pos, ok := negated(t); ok {
			b.WriteString(" - ")
			b.WriteString(wrap(pos, pos.precedence() <= precSum))
			continue
		}
		b.WriteString(" + ")
		b.WriteString(t.String())
	}
	return b.String()
}

func (p *Product) String() string {
	factors := p.factors
	var b strings.Builder
	if c, ok := factors[0].(*Num); ok && len(factors) > 1 && c.v.Cmp(big.NewRat(-1, 1)) == 0 {
		b.WriteString("-")
		factors = factors[1:]
		if len(factors) == 1 {
			b.WriteString(wrap(factors[0], factors[0].precedence() < precAtom))
			return b.String()
		}
	}
	for i, f := range factors {
		if i > 0 {
			b.WriteString("*")
		}
		b.WriteString(wrap(f, f.precedence() < precProduct))
	}
	return b.String()
}

func (q *Quotient) String() string {
	return wrap(q.num, q.num.precedence() < precProduct) + "/" + wrap(q.den, q.den.precedence() < precAtom)
}

func wrap(e Expr, paren bool) string {
	if paren {
		return "(" + e.String() + ")"
	}
	return e.String()
}

// negated returns -e when e carries a negative leading coefficient.
func negated(e Expr) (Expr, bool) {
	switch t := e.(type) {
	case *Num:
		if t.IsNegative() {
			return &Num{v: new(big.Rat).Neg(t.v)}, true
		}
	case *Product:
		c, ok := t.factors[0].(*Num)
		if !ok || !c.IsNegative() || len(t.factors) < 2 {
			return nil, false
		}
		abs := new(big.Rat).Neg(c.v)
		rest := t.factors[1:]
		if abs.Cmp(big.NewRat(1, 1)) == 0 {
			if len(rest) == 1 {
				return rest[0], true
			}
			return &Product{factors: rest, simplified: t.simplified}, true
		}
		factors := append([]Expr{&Num{v: abs}}, rest...)
		return &Product{factors: factors, simplified: t.simplified}, true
	case *Quotient:
		if pos, ok := negated(t.num); ok {
			return &Quotient{num: pos, den: t.den, simplified: t.simplified}, true
		}
	}
	return nil, false
}
