// SPDX-License-Identifier: MIT
// Package: ohmlab/reduce
//
// evaluate.go — numeric evaluation of rendered reduction expressions.
//
// Grammar ("||" binds tighter than "^"):
//
//	top      = [ "+" ] series [ "-" ]
//	series   = parallel { "^" parallel }
//	parallel = atom { "||" atom }
//	atom     = "(" series ")" | name

package reduce

import (
	"fmt"
	"math"
	"unicode"

	"github.com/katalvlaran/ohmlab/component"
)

// Evaluate computes the resistance described by expression, looking names
// up in values.
func Evaluate(expression string, values map[string]float64) (float64, error) {
	p := &evaluator{src: []rune(expression), values: values}
	p.skipSpace()
	if p.peek() == '+' {
		p.pos++
	}
	v, err := p.series()
	if err != nil {
		return 0, reduceErrorf(opEvaluate, err)
	}
	p.skipSpace()
	if p.peek() == '-' {
		p.pos++
		p.skipSpace()
	}
	if !p.eof() {
		return 0, reduceErrorf(opEvaluate, p.errorf("unexpected %q", p.peek()))
	}
	return v, nil
}

// Values returns the numeric resistance of every resistor in cs.
func Values(cs []component.Component) (map[string]float64, error) {
	out := make(map[string]float64)
	for _, c := range cs {
		if !c.IsResistor() {
			continue
		}
		v, err := c.Numeric()
		if err != nil {
			return nil, reduceErrorf(opValues, err)
		}
		out[c.Name] = v
	}
	return out, nil
}

type evaluator struct {
	src    []rune
	pos    int
	values map[string]float64
}

func (p *evaluator) eof() bool { return p.pos >= len(p.src) }

func (p *evaluator) peek() rune {
	if p.eof() {
		return 0
	}
	return p.src[p.pos]
}

func (p *evaluator) skipSpace() {
	for !p.eof() && unicode.IsSpace(p.src[p.pos]) {
		p.pos++
	}
}

func (p *evaluator) errorf(format string, args ...any) error {
	return fmt.Errorf("%w at offset %d: %s", ErrExpression, p.pos, fmt.Sprintf(format, args...))
}

func (p *evaluator) series() (float64, error) {
	sum, err := p.parallel()
	if err != nil {
		return 0, err
	}
	for {
		p.skipSpace()
		if p.peek() != '^' {
			return sum, nil
		}
		p.pos++
		v, err := p.parallel()
		if err != nil {
			return 0, err
		}
		sum += v
	}
}

func (p *evaluator) parallel() (float64, error) {
	first, err := p.atom()
	if err != nil {
		return 0, err
	}
	vals := []float64{first}
	for {
		p.skipSpace()
		if p.peek() != '|' {
			break
		}
		if p.pos+1 >= len(p.src) || p.src[p.pos+1] != '|' {
			return 0, p.errorf("expected \"||\"")
		}
		p.pos += 2
		v, err := p.atom()
		if err != nil {
			return 0, err
		}
		vals = append(vals, v)
	}
	if len(vals) == 1 {
		return first, nil
	}
	g := 0.0
	for _, v := range vals {
		if v == 0 {
			return 0, nil
		}
		g += 1 / v
	}
	return 1 / g, nil
}

func (p *evaluator) atom() (float64, error) {
	p.skipSpace()
	if p.peek() == '(' {
		p.pos++
		v, err := p.series()
		if err != nil {
			return 0, err
		}
		p.skipSpace()
		if p.peek() != ')' {
			return 0, p.errorf("expected ')'")
		}
		p.pos++
		return v, nil
	}
	start := p.pos
	for !p.eof() && isNameRune(p.peek()) {
		p.pos++
	}
	if start == p.pos {
		if p.eof() {
			return 0, p.errorf("unexpected end of input")
		}
		return 0, p.errorf("unexpected %q", p.peek())
	}
	name := string(p.src[start:p.pos])
	v, ok := p.values[name]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownName, name)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %s is not finite", ErrExpression, name)
	}
	return v, nil
}

// isNameRune admits letters, digits, '_', '$' and '.'.
func isNameRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '$' || r == '.'
}
