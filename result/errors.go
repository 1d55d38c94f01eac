// SPDX-License-Identifier: MIT
// Package: ohmlab/result
//
// errors.go — sentinel errors for the result compiler.

package result

import "errors"

// ErrSolutionLength indicates that x does not have N()+M entries.
var ErrSolutionLength = errors.New("result: solution length mismatch")
