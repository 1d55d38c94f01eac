// SPDX-License-Identifier: MIT
// Package: ohmlab/symbolic
//
// parse.go — recursive-descent parser for the infix grammar printed by String:
//
//	expr   := term (('+' | '-') term)*
//	term   := factor (('*' | '/') factor)*
//	factor := ('-' | '+') factor | number | ident | '(' expr ')'
//	number := digits ['.' digits]
//	ident  := (letter | '_') (letter | digit | '_')*
//
// The returned tree is raw; call Simplify for the canonical form.

package symbolic

import (
	"fmt"
	"math/big"
	"unicode"
)

type parser struct {
	src []rune
	pos int
}

// Parse converts text into an expression tree.
func Parse(text string) (Expr, error) {
	p := &parser{src: []rune(text)}
	p.skipSpace()
	if p.eof() {
		return nil, symbolicErrorf("Parse", fmt.Errorf("%w: empty expression", ErrParse))
	}
	e, err := p.expr()
	if err != nil {
		return nil, symbolicErrorf("Parse", err)
	}
	p.skipSpace()
	if !p.eof() {
		return nil, symbolicErrorf("Parse", p.errorf("unexpected %q", p.src[p.pos]))
	}
	return e, nil
}

// MustParse is Parse for trusted literals; it panics on error.
func MustParse(text string) Expr {
	e, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return e
}

func (p *parser) eof() bool { return p.pos >= len(p.src) }

func (p *parser) peek() rune {
	if p.eof() {
		return 0
	}
	return p.src[p.pos]
}

func (p *parser) skipSpace() {
	for !p.eof() && unicode.IsSpace(p.src[p.pos]) {
		p.pos++
	}
}

func (p *parser) errorf(format string, args ...any) error {
	return fmt.Errorf("%w: at offset %d: %s", ErrParse, p.pos, fmt.Sprintf(format, args...))
}

func (p *parser) expr() (Expr, error) {
	left, err := p.term()
	if err != nil {
		return nil, err
	}
	terms := []Expr{left}
	for {
		p.skipSpace()
		op := p.peek()
		if op != '+' && op != '-' {
			break
		}
		p.pos++
		right, err := p.term()
		if err != nil {
			return nil, err
		}
		if op == '-' {
			right = Neg(right)
		}
		terms = append(terms, right)
	}
	return Add(terms...), nil
}

func (p *parser) term() (Expr, error) {
	left, err := p.factor()
	if err != nil {
		return nil, err
	}
	for {
		p.skipSpace()
		op := p.peek()
		if op != '*' && op != '/' {
			return left, nil
		}
		p.pos++
		right, err := p.factor()
		if err != nil {
			return nil, err
		}
		if op == '*' {
			left = Mul(left, right)
		} else {
			left = Div(left, right)
		}
	}
}

func (p *parser) factor() (Expr, error) {
	p.skipSpace()
	if p.eof() {
		return nil, p.errorf("unexpected end of input")
	}
	c := p.peek()
	switch {
	case c == '-':
		p.pos++
		f, err := p.factor()
		if err != nil {
			return nil, err
		}
		return Neg(f), nil
	case c == '+':
		p.pos++
		return p.factor()
	case c == '(':
		p.pos++
		e, err := p.expr()
		if err != nil {
			return nil, err
		}
		p.skipSpace()
		if p.peek() != ')' {
			return nil, p.errorf("missing ')'")
		}
		p.pos++
		return e, nil
	case unicode.IsDigit(c) || c == '.':
		return p.number()
	case unicode.IsLetter(c) || c == '_':
		return p.ident(), nil
	}
	return nil, p.errorf("unexpected %q", c)
}

func (p *parser) number() (Expr, error) {
	start := p.pos
	seenDot := false
	for !p.eof() {
		c := p.peek()
		if c == '.' && !seenDot {
			seenDot = true
			p.pos++
			continue
		}
		if !unicode.IsDigit(c) {
			break
		}
		p.pos++
	}
	lit := string(p.src[start:p.pos])
	r, ok := new(big.Rat).SetString(lit)
	if !ok {
		p.pos = start
		return nil, p.errorf("bad number %q", lit)
	}
	return &Num{v: r}, nil
}

func (p *parser) ident() Expr {
	start := p.pos
	for !p.eof() {
		c := p.peek()
		if !unicode.IsLetter(c) && !unicode.IsDigit(c) && c != '_' {
			break
		}
		p.pos++
	}
	return Symbol(string(p.src[start:p.pos]))
}
