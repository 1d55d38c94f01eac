// SPDX-License-Identifier: MIT
package symbolic

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func sym(name string) poly { return polySym(name) }

func TestPolyGCD(t *testing.T) {
	x, y := sym("x"), sym("y")
	one := polyInt(1)

	// (x+y)(x-y) and (x+y)^2 share x+y.
	p := polyMul(polyAdd(x, y), polySub(x, y))
	q := polyMul(polyAdd(x, y), polyAdd(x, y))
	require.True(t, polyGCD(p, q).equal(polyAdd(x, y)))

	// coprime
	require.True(t, polyGCD(polyAdd(x, one), y).equal(one))

	// content only: 2xy and 4y^2 → y
	p = polyScale(polyMul(x, y), big.NewRat(2, 1))
	q = polyScale(polyMul(y, y), big.NewRat(4, 1))
	require.True(t, polyGCD(p, q).equal(y))
}

func TestDivExact(t *testing.T) {
	x, y := sym("x"), sym("y")
	p := polyMul(polyAdd(x, y), polyMul(x, y))

	got, ok := divExact(p, polyAdd(x, y))
	require.True(t, ok)
	require.True(t, got.equal(polyMul(x, y)))

	_, ok = divExact(p, polySub(x, y))
	require.False(t, ok)
}

func TestSortedTerms(t *testing.T) {
	p := polyAdd(polyAdd(sym("b"), polyMul(sym("a"), sym("a"))), polyInt(3))
	ts := p.sortedTerms()
	require.Len(t, ts, 3)
	require.Equal(t, "a^2", ts[0].mono.key())
	require.Equal(t, "b", ts[1].mono.key())
	require.Equal(t, "", ts[2].mono.key())
}
