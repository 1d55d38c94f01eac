// SPDX-License-Identifier: MIT
// Package: ohmlab/symbolic
//
// errors.go — sentinel errors for the symbolic package.
//
// Error policy:
//   • Only package-level sentinels are exposed; callers branch with errors.Is.
//   • Context (symbol names, positions, indices) is attached with %w wrapping.

package symbolic

import (
	"errors"
	"fmt"
)

var (
	// ErrParse indicates malformed expression text.
	ErrParse = errors.New("symbolic: parse error")

	// ErrUnbound indicates that evaluation met a symbol with no value in the environment.
	ErrUnbound = errors.New("symbolic: unbound symbol")

	// ErrDivByZero indicates a division by zero during evaluation.
	ErrDivByZero = errors.New("symbolic: division by zero")

	// ErrNonFinite indicates that NaN or ±Inf was offered where an exact rational is required.
	ErrNonFinite = errors.New("symbolic: non-finite number")

	// ErrSingular indicates that a symbolic matrix has no inverse (no usable pivot).
	ErrSingular = errors.New("symbolic: singular matrix")

	// ErrDimension indicates a shape mismatch or an out-of-range index.
	ErrDimension = errors.New("symbolic: dimension mismatch")
)

// symbolicErrorf wraps err with an operation tag.
func symbolicErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
