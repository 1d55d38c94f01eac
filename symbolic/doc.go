// SPDX-License-Identifier: MIT

// Package symbolic is a small, deterministic expression kernel used by the
// symbolic MNA solver and by the reduction engine.
//
// What & Why:
//
//	Circuit parameters are not always numbers: a resistor may be "R", a source
//	may be "V". The symbolic package represents such values as an expression
//	tree over exact rationals (math/big.Rat) and named symbols:
//
//		Num       exact rational literal
//		Sym       named symbol
//		Sum       n-ary addition (difference is a Sum with a negated term)
//		Product   n-ary multiplication
//		Quotient  numerator / denominator
//
//	Simplify performs structural simplification only: flattening, exact constant
//	folding, like-term collection, factor cancellation between numerator and
//	denominator and merging of terms over a common denominator. It never
//	expands products, so the result is canonical enough for display and exact
//	for purely numeric input (numeric circuits fold to a single Num).
//
// Matrices:
//
//	Matrix is a dense grid of Expr with a Gauss–Jordan Inverse. Pivots are
//	chosen by evaluating candidates at a fixed sample point, which detects
//	structurally non-zero but mathematically zero entries deterministically.
//
// Errors:
//
//	ErrParse        - malformed expression text.
//	ErrUnbound      - Eval met a symbol without a value.
//	ErrDivByZero    - Eval divided by an exact or numeric zero.
//	ErrNonFinite    - NaN/Inf cannot be represented as an exact rational.
//	ErrSingular     - Inverse found no usable pivot.
//	ErrDimension    - shape mismatch in Matrix operations.
package symbolic
