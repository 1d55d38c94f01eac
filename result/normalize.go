// SPDX-License-Identifier: MIT
// Package: ohmlab/result
//
// normalize.go — exact-fraction rendering with decimal fallback.
//
// A value is approximated by the continued-fraction convergent h/k that
// matches it within fracTol (relative), with k bounded by maxDenominator.
// The improper fraction string ("-3/2", "6") is reported when its length is
// at most MaxFractionLen; otherwise the value is rounded to Precision
// decimal places and reported as a number.

package result

import (
	"math"
	"strconv"
)

const (
	// DefaultMaxFractionLen is the longest fraction string reported as-is.
	DefaultMaxFractionLen = 6
	// DefaultPrecision is the number of decimal places of the fallback.
	DefaultPrecision = 4

	fracTol        = 1e-9
	maxDenominator = 1e7
	maxNumerator   = 1e15
)

// Normalized is the display form of a number.
type Normalized struct {
	// Fraction is the exact fraction string; empty when Exact is false.
	Fraction string
	// Decimal is the value itself when Exact, else the rounded fallback.
	Decimal float64
	// Exact reports whether Fraction is the representation to display.
	Exact bool
}

// String returns Fraction when exact, else the decimal.
func (n Normalized) String() string {
	if n.Exact {
		return n.Fraction
	}
	return strconv.FormatFloat(n.Decimal, 'f', -1, 64)
}

// Normalize renders v under the given thresholds.
func Normalize(v float64, maxLen, precision int) Normalized {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Normalized{Decimal: v}
	}
	if frac, ok := Fraction(v); ok && len(frac) <= maxLen {
		return Normalized{Fraction: frac, Decimal: v, Exact: true}
	}
	return Normalized{Decimal: Round(v, precision)}
}

// Round rounds v half away from zero to the given number of decimal places.
func Round(v float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	r := math.Round(v*scale) / scale
	if r == 0 {
		return 0 // drop negative zero
	}
	return r
}

// Fraction returns the best rational approximation of v as "h/k" (or "h"
// when k == 1). ok is false when no convergent within bounds matches v.
func Fraction(v float64) (string, bool) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "", false
	}
	neg := v < 0
	x := math.Abs(v)
	target := x
	tol := fracTol * math.Max(1, target)

	h0, h1 := 0.0, 1.0
	k0, k1 := 1.0, 0.0
	found := false
	for i := 0; i < 64; i++ {
		a := math.Floor(x)
		h := a*h1 + h0
		k := a*k1 + k0
		if k > maxDenominator || h > maxNumerator {
			break
		}
		h0, h1 = h1, h
		k0, k1 = k1, k
		if math.Abs(h/k-target) <= tol {
			found = true
			break
		}
		rem := x - a
		if rem < 1e-15 {
			break
		}
		x = 1 / rem
	}
	if !found {
		return "", false
	}

	num := strconv.FormatFloat(h1, 'f', 0, 64)
	if neg && h1 != 0 {
		num = "-" + num
	}
	if k1 == 1 {
		return num, true
	}
	return num + "/" + strconv.FormatFloat(k1, 'f', 0, 64), true
}
