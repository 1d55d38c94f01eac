// SPDX-License-Identifier: MIT
// Package: ohmlab/symbolic
//
// simplify.go — canonical rational form.
//
// Every expression is a quotient of two polynomials over its symbols.
// Simplify computes that quotient with sums brought over one denominator and
// products expanded, cancels the polynomial GCD of numerator and denominator
// and prints the result back as a tree:
//
//	1/R1 + 1/R2          →  (R1 + R2)/(R1*R2)
//	V*R2/(R1*(1/R1 + 1/R2)*R2) → R2*V/(R1 + R2)
//
// The denominator is scaled to integer coefficients with no common factor and
// a positive leading term; the numerator absorbs the scale. A polynomial
// result keeps its rational coefficients (2*R + 1/2).
//
// A literal zero divisor has no rational form; the tree is then rebuilt from
// simplified children and Eval reports ErrDivByZero.

package symbolic

import (
	"math/big"
	"sort"
)

// rational is num/den with den non-zero.
type rational struct {
	num, den poly
}

func ratPoly(p poly) rational { return rational{num: p, den: polyInt(1)} }

// toRational converts e; ok is false on a division by a zero polynomial.
func toRational(e Expr) (rational, bool) {
	switch t := e.(type) {
	case *Num:
		return ratPoly(polyConst(t.v)), true
	case *Sym:
		return ratPoly(polySym(t.name)), true
	case *Sum:
		acc := ratPoly(poly{})
		for _, x := range t.terms {
			r, ok := toRational(x)
			if !ok {
				return rational{}, false
			}
			acc = ratAdd(acc, r)
		}
		return acc, true
	case *Product:
		acc := ratPoly(polyInt(1))
		for _, x := range t.factors {
			r, ok := toRational(x)
			if !ok {
				return rational{}, false
			}
			acc = ratMul(acc, r)
		}
		return acc, true
	case *Quotient:
		n, ok := toRational(t.num)
		if !ok {
			return rational{}, false
		}
		d, ok := toRational(t.den)
		if !ok || d.num.isZero() {
			return rational{}, false
		}
		return ratMul(n, rational{num: d.den, den: d.num}), true
	}
	return rational{}, false
}

func ratAdd(a, b rational) rational {
	if a.num.isZero() {
		return b
	}
	if b.num.isZero() {
		return a
	}
	if a.den.equal(b.den) {
		return reduceRational(polyAdd(a.num, b.num), a.den)
	}
	return reduceRational(
		polyAdd(polyMul(a.num, b.den), polyMul(b.num, a.den)),
		polyMul(a.den, b.den),
	)
}

func ratMul(a, b rational) rational {
	return reduceRational(polyMul(a.num, b.num), polyMul(a.den, b.den))
}

// reduceRational cancels the GCD of num and den and scales den to a primitive
// integer polynomial with a positive leading term.
func reduceRational(num, den poly) rational {
	if num.isZero() {
		return ratPoly(poly{})
	}
	if c, ok := den.constant(); ok {
		return ratPoly(polyScale(num, c.Inv(c)))
	}
	if g := polyGCD(num, den); !isConstant(g) {
		num, _ = divExact(num, g)
		den, _ = divExact(den, g)
		if c, ok := den.constant(); ok {
			return ratPoly(polyScale(num, c.Inv(c)))
		}
	}
	lcm, gcd := den.coefficientScale()
	scale := new(big.Rat).SetFrac(lcm, gcd)
	if den.sortedTerms()[0].coef.Sign() < 0 {
		scale.Neg(scale)
	}
	return rational{num: polyScale(num, scale), den: polyScale(den, scale)}
}

func isConstant(p poly) bool {
	_, ok := p.constant()
	return ok
}

// expr prints r as a tree.
func (r rational) expr() Expr {
	if c, ok := r.den.constant(); ok && c.Cmp(big.NewRat(1, 1)) == 0 {
		return polyExpr(r.num, true)
	}
	// clear the numerator's denominators into the denominator.
	lcm, _ := r.num.coefficientScale()
	num, den := r.num, r.den
	if lcm.Cmp(big.NewInt(1)) != 0 {
		s := new(big.Rat).SetInt(lcm)
		num, den = polyScale(num, s), polyScale(den, s)
	}
	return &Quotient{num: polyExpr(num, false), den: polyExpr(den, false), simplified: true}
}

// polyExpr prints p as a sum of terms in sortedTerms order. With fractions
// set, a term with a non-integer coefficient prints as c*m/q.
func polyExpr(p poly, fractions bool) Expr {
	if p.isZero() {
		return Int(0)
	}
	ts := p.sortedTerms()
	out := make([]Expr, len(ts))
	for i, t := range ts {
		out[i] = termExpr(t, fractions)
	}
	if len(out) == 1 {
		return out[0]
	}
	return &Sum{terms: out, simplified: true}
}

func termExpr(t term, fractions bool) Expr {
	if len(t.mono) == 0 {
		return &Num{v: new(big.Rat).Set(t.coef)}
	}
	factors := make([]Expr, 0, t.mono.degree()+1)
	for _, pw := range t.mono {
		for k := 0; k < pw.exp; k++ {
			factors = append(factors, Symbol(pw.sym))
		}
	}
	coef := t.coef
	var den *big.Int
	if fractions && !coef.IsInt() {
		den = coef.Denom()
		coef = new(big.Rat).SetInt(coef.Num())
	}
	if coef.Cmp(big.NewRat(1, 1)) != 0 {
		factors = append([]Expr{&Num{v: new(big.Rat).Set(coef)}}, factors...)
	}
	var body Expr
	if len(factors) == 1 {
		body = factors[0]
	} else {
		body = &Product{factors: factors, simplified: true}
	}
	if den == nil {
		return body
	}
	return &Quotient{num: body, den: &Num{v: new(big.Rat).SetInt(den)}, simplified: true}
}

// canonical simplifies e through its rational form, or rebuilds it from
// simplified children when a zero divisor blocks the conversion.
func canonical(e Expr, rebuild func() Expr) Expr {
	if r, ok := toRational(e); ok {
		return r.expr()
	}
	return rebuild()
}

func (s *Sum) Simplify() Expr {
	if s.simplified {
		return s
	}
	return canonical(s, func() Expr {
		out := make([]Expr, len(s.terms))
		for i, t := range s.terms {
			out[i] = t.Simplify()
		}
		return &Sum{terms: out, simplified: true}
	})
}

func (p *Product) Simplify() Expr {
	if p.simplified {
		return p
	}
	return canonical(p, func() Expr {
		out := make([]Expr, len(p.factors))
		for i, f := range p.factors {
			out[i] = f.Simplify()
		}
		return &Product{factors: out, simplified: true}
	})
}

func (q *Quotient) Simplify() Expr {
	if q.simplified {
		return q
	}
	return canonical(q, func() Expr {
		return &Quotient{num: q.num.Simplify(), den: q.den.Simplify(), simplified: true}
	})
}

// Value reports the exact rational value of e when it simplifies to a literal.
func Value(e Expr) (*big.Rat, bool) {
	if n, ok := e.Simplify().(*Num); ok {
		return n.Rat(), true
	}
	return nil, false
}

// IsZero reports whether e simplifies to the literal 0.
func IsZero(e Expr) bool {
	v, ok := Value(e)
	return ok && v.Sign() == 0
}

// Equal reports equality of the canonical forms.
func Equal(a, b Expr) bool {
	return a.Simplify().String() == b.Simplify().String()
}

// Symbols returns the sorted, de-duplicated symbol names used in e.
func Symbols(e Expr) []string {
	seen := make(map[string]struct{})
	e.walk(func(x Expr) {
		if s, ok := x.(*Sym); ok {
			seen[s.name] = struct{}{}
		}
	})
	out := make([]string, 0, len(seen))
	for name := range seen {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
