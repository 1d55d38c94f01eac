// SPDX-License-Identifier: MIT

// Package matrix provides the small dense linear-algebra kernel used by the
// numeric MNA solver.
//
// What & Why:
//
//	An MNA system A·x = z is assembled from four blocks
//
//		A = | G  B |
//		    | C  D |
//
//	where D is an all-zero m×m block whenever the circuit contains voltage
//	sources. Elimination without row exchanges therefore meets a zero pivot
//	on perfectly solvable circuits, so Inverse and Solve use Gauss–Jordan /
//	Gaussian elimination with partial pivoting.
//
// Surface:
//
//	Dense                  row-major r×c buffer; zero rows or columns are legal
//	                       (a circuit with no non-ground supernode has n = 0).
//	Block(G, B, C, D)      tiles four blocks into one matrix.
//	Transpose, MatVec      the usual kernels.
//	Inverse                Gauss–Jordan on [A | I] with partial pivoting.
//	Solve                  Gaussian elimination with partial pivoting on [A | z].
//
// Determinism:
//
//	Fixed loop orders; the pivot is the first row holding the largest
//	magnitude in its column. A pivot with magnitude <= PivotEps is singular.
//
// Errors:
//
//	ErrInvalidDimensions, ErrOutOfRange, ErrDimensionMismatch, ErrNonSquare,
//	ErrSingular, ErrNilMatrix. Every error is wrapped with an operation tag
//	and matches its sentinel through errors.Is.
package matrix
