// SPDX-License-Identifier: MIT
// Package: ohmlab/symbolic
//
// poly.go — sparse multivariate polynomials over the rationals.
//
// A polynomial is a map from monomial key to term. Division and GCD use the
// lexicographic monomial order over symbol names; GCD is the recursive
// primitive remainder sequence: content in the first variable is split off
// and handled on the remaining variables, the primitive parts are reduced by
// pseudo-division.
//
// Complexity: adequate for the handful of symbols of a circuit netlist; no
// attempt is made at modular or heuristic GCD.

package symbolic

import (
	"math/big"
	"sort"
	"strconv"
	"strings"
)

// power is sym^exp with exp > 0.
type power struct {
	sym string
	exp int
}

// monomial is a product of powers sorted by symbol name. The empty monomial is 1.
type monomial []power

func (m monomial) key() string {
	var b strings.Builder
	for i, p := range m {
		if i > 0 {
			b.WriteByte('*')
		}
		b.WriteString(p.sym)
		if p.exp > 1 {
			b.WriteByte('^')
			b.WriteString(strconv.Itoa(p.exp))
		}
	}
	return b.String()
}

func (m monomial) degree() int {
	d := 0
	for _, p := range m {
		d += p.exp
	}
	return d
}

func (m monomial) exp(sym string) int {
	for _, p := range m {
		if p.sym == sym {
			return p.exp
		}
	}
	return 0
}

// times merges two monomials.
func (m monomial) times(o monomial) monomial {
	out := make(monomial, 0, len(m)+len(o))
	i, j := 0, 0
	for i < len(m) && j < len(o) {
		switch {
		case m[i].sym < o[j].sym:
			out = append(out, m[i])
			i++
		case m[i].sym > o[j].sym:
			out = append(out, o[j])
			j++
		default:
			out = append(out, power{sym: m[i].sym, exp: m[i].exp + o[j].exp})
			i++
			j++
		}
	}
	out = append(out, m[i:]...)
	return append(out, o[j:]...)
}

// over returns m/o when o divides m.
func (m monomial) over(o monomial) (monomial, bool) {
	out := make(monomial, 0, len(m))
	j := 0
	for _, p := range m {
		if j < len(o) && o[j].sym < p.sym {
			return nil, false
		}
		if j < len(o) && o[j].sym == p.sym {
			switch {
			case o[j].exp > p.exp:
				return nil, false
			case o[j].exp < p.exp:
				out = append(out, power{sym: p.sym, exp: p.exp - o[j].exp})
			}
			j++
			continue
		}
		out = append(out, p)
	}
	if j < len(o) {
		return nil, false
	}
	return out, true
}

// without drops sym from m.
func (m monomial) without(sym string) monomial {
	out := make(monomial, 0, len(m))
	for _, p := range m {
		if p.sym != sym {
			out = append(out, p)
		}
	}
	return out
}

// lexCompare orders monomials lexicographically by exponent, symbols taken
// in name order. It returns -1, 0 or +1.
func lexCompare(a, b monomial) int {
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i].sym < b[j].sym:
			return 1
		case a[i].sym > b[j].sym:
			return -1
		case a[i].exp != b[j].exp:
			if a[i].exp > b[j].exp {
				return 1
			}
			return -1
		}
		i++
		j++
	}
	switch {
	case i < len(a):
		return 1
	case j < len(b):
		return -1
	}
	return 0
}

type term struct {
	mono monomial
	coef *big.Rat
}

// poly is a polynomial with rational coefficients. Zero terms are never stored.
type poly map[string]term

func polyConst(r *big.Rat) poly {
	if r.Sign() == 0 {
		return poly{}
	}
	return poly{"": {coef: new(big.Rat).Set(r)}}
}

func polyInt(n int64) poly { return polyConst(big.NewRat(n, 1)) }

func polySym(name string) poly {
	m := monomial{{sym: name, exp: 1}}
	return poly{m.key(): {mono: m, coef: big.NewRat(1, 1)}}
}

func (p poly) isZero() bool { return len(p) == 0 }

// constant returns the value of a constant polynomial.
func (p poly) constant() (*big.Rat, bool) {
	switch len(p) {
	case 0:
		return new(big.Rat), true
	case 1:
		if t, ok := p[""]; ok {
			return new(big.Rat).Set(t.coef), true
		}
	}
	return nil, false
}

func (p poly) equal(q poly) bool {
	if len(p) != len(q) {
		return false
	}
	for k, t := range p {
		u, ok := q[k]
		if !ok || t.coef.Cmp(u.coef) != 0 {
			return false
		}
	}
	return true
}

// addTerm accumulates c·m into p in place.
func (p poly) addTerm(m monomial, c *big.Rat) {
	if c.Sign() == 0 {
		return
	}
	k := m.key()
	if t, ok := p[k]; ok {
		sum := new(big.Rat).Add(t.coef, c)
		if sum.Sign() == 0 {
			delete(p, k)
			return
		}
		p[k] = term{mono: t.mono, coef: sum}
		return
	}
	p[k] = term{mono: m, coef: new(big.Rat).Set(c)}
}

func polyAdd(p, q poly) poly {
	out := make(poly, len(p)+len(q))
	for _, t := range p {
		out.addTerm(t.mono, t.coef)
	}
	for _, t := range q {
		out.addTerm(t.mono, t.coef)
	}
	return out
}

func polySub(p, q poly) poly {
	return polyAdd(p, polyScale(q, big.NewRat(-1, 1)))
}

func polyScale(p poly, c *big.Rat) poly {
	out := make(poly, len(p))
	if c.Sign() == 0 {
		return out
	}
	for k, t := range p {
		out[k] = term{mono: t.mono, coef: new(big.Rat).Mul(t.coef, c)}
	}
	return out
}

func polyMul(p, q poly) poly {
	out := make(poly, len(p)*len(q))
	c := new(big.Rat)
	for _, t := range p {
		for _, u := range q {
			out.addTerm(t.mono.times(u.mono), c.Mul(t.coef, u.coef))
		}
	}
	return out
}

// mulTerm returns c·m·p.
func (p poly) mulTerm(m monomial, c *big.Rat) poly {
	out := make(poly, len(p))
	for _, t := range p {
		out.addTerm(t.mono.times(m), new(big.Rat).Mul(t.coef, c))
	}
	return out
}

// leading returns the greatest term in lex order; p must be non-zero.
func (p poly) leading() term {
	var lt term
	first := true
	for _, t := range p {
		if first || lexCompare(t.mono, lt.mono) > 0 {
			lt, first = t, false
		}
	}
	return lt
}

// vars returns the sorted symbols of p.
func (p poly) vars() []string {
	seen := make(map[string]struct{})
	for _, t := range p {
		for _, pw := range t.mono {
			seen[pw.sym] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for s := range seen {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

func (p poly) degreeIn(x string) int {
	d := 0
	for _, t := range p {
		if e := t.mono.exp(x); e > d {
			d = e
		}
	}
	return d
}

// coeffIn returns the coefficient of x^k, a polynomial free of x.
func (p poly) coeffIn(x string, k int) poly {
	out := make(poly)
	for _, t := range p {
		if t.mono.exp(x) == k {
			out.addTerm(t.mono.without(x), t.coef)
		}
	}
	return out
}

// monic scales p so its leading coefficient is 1.
func (p poly) monic() poly {
	if p.isZero() {
		return p
	}
	return polyScale(p, new(big.Rat).Inv(p.leading().coef))
}

// divExact returns p/d when d divides p.
func divExact(p, d poly) (poly, bool) {
	if d.isZero() {
		return nil, false
	}
	if c, ok := d.constant(); ok {
		return polyScale(p, c.Inv(c)), true
	}
	ld := d.leading()
	q := make(poly)
	r := polyAdd(p, nil)
	for !r.isZero() {
		lr := r.leading()
		m, ok := lr.mono.over(ld.mono)
		if !ok {
			return nil, false
		}
		c := new(big.Rat).Quo(lr.coef, ld.coef)
		q.addTerm(m, c)
		r = polySub(r, d.mulTerm(m, c))
	}
	return q, true
}

// polyGCD returns the monic greatest common divisor of p and q.
func polyGCD(p, q poly) poly {
	switch {
	case p.isZero():
		return q.monic()
	case q.isZero():
		return p.monic()
	}
	if _, ok := p.constant(); ok {
		return polyInt(1)
	}
	if _, ok := q.constant(); ok {
		return polyInt(1)
	}
	x := firstVar(p, q)
	cp, cq := content(p, x), content(q, x)
	pp, _ := divExact(p, cp)
	pq, _ := divExact(q, cq)
	return polyMul(polyGCD(cp, cq), primitiveGCD(pp, pq, x)).monic()
}

func firstVar(p, q poly) string {
	vp, vq := p.vars(), q.vars()
	switch {
	case len(vp) == 0:
		return vq[0]
	case len(vq) == 0:
		return vp[0]
	case vp[0] < vq[0]:
		return vp[0]
	}
	return vq[0]
}

// content is the GCD of the coefficients of p seen as a polynomial in x.
func content(p poly, x string) poly {
	g := poly{}
	for k := p.degreeIn(x); k >= 0; k-- {
		c := p.coeffIn(x, k)
		if c.isZero() {
			continue
		}
		g = polyGCD(g, c)
		if _, ok := g.constant(); ok {
			return g
		}
	}
	return g
}

func primitive(p poly, x string) poly {
	if p.isZero() {
		return p
	}
	out, _ := divExact(p, content(p, x))
	return out
}

// primitiveGCD runs the primitive remainder sequence of p and q in x.
func primitiveGCD(p, q poly, x string) poly {
	if p.degreeIn(x) < q.degreeIn(x) {
		p, q = q, p
	}
	for !q.isZero() {
		r := pseudoRem(p, q, x)
		p, q = q, primitive(r, x)
	}
	return primitive(p, x)
}

// pseudoRem returns the remainder of lc(q)^k·p divided by q in x.
func pseudoRem(p, q poly, x string) poly {
	n := q.degreeIn(x)
	lq := q.coeffIn(x, n)
	r := p
	for !r.isZero() && r.degreeIn(x) >= n {
		d := r.degreeIn(x)
		lr := r.coeffIn(x, d)
		shift := monomial(nil)
		if d > n {
			shift = monomial{{sym: x, exp: d - n}}
		}
		r = polySub(polyMul(lq, r), polyMul(lr, q).mulTerm(shift, big.NewRat(1, 1)))
	}
	return r
}

// sortedTerms orders terms for printing: higher total degree first, then by
// monomial key.
func (p poly) sortedTerms() []term {
	out := make([]term, 0, len(p))
	for _, t := range p {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool {
		di, dj := out[i].mono.degree(), out[j].mono.degree()
		if di != dj {
			return di > dj
		}
		return out[i].mono.key() < out[j].mono.key()
	})
	return out
}

// coefficientScale returns the least common multiple of the coefficient
// denominators and the GCD of the coefficient numerators.
func (p poly) coefficientScale() (lcm, gcd *big.Int) {
	lcm, gcd = big.NewInt(1), new(big.Int)
	for _, t := range p {
		d := t.coef.Denom()
		g := new(big.Int).GCD(nil, nil, lcm, d)
		lcm.Mul(lcm, new(big.Int).Quo(d, g))
		gcd.GCD(nil, nil, gcd, new(big.Int).Abs(t.coef.Num()))
	}
	return lcm, gcd
}
