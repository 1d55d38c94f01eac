// SPDX-License-Identifier: MIT
package symbolic_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ohmlab/symbolic"
)

func TestParse_RoundTrip(t *testing.T) {
	for _, text := range []string{
		"a - 2*b",
		"(a + b)/R",
		"R/2",
		"-V/(R1 + R2)",
		"a*c + b*c",
		"(R1 + R2)/(R1*R2)",
		"15/2",
		"R_load",
	} {
		text := text
		t.Run(text, func(t *testing.T) {
			e, err := symbolic.Parse(text)
			require.NoError(t, err)
			require.Equal(t, text, e.Simplify().String())
		})
	}
}

func TestParse_Values(t *testing.T) {
	cases := []struct {
		in   string
		env  symbolic.Env
		want float64
	}{
		{"2.5", nil, 2.5},
		{"  3 * (R + 1) ", symbolic.Env{"R": 2}, 9},
		{"-x + +4", symbolic.Env{"x": 1}, 3},
		{"a/b/c", symbolic.Env{"a": 8, "b": 2, "c": 2}, 2},
		{"a*-b", symbolic.Env{"a": 2, "b": 3}, -6},
	}
	for _, tc := range cases {
		e, err := symbolic.Parse(tc.in)
		require.NoError(t, err, tc.in)
		got, err := e.Eval(tc.env)
		require.NoError(t, err, tc.in)
		require.InDelta(t, tc.want, got, 1e-12, tc.in)
	}
}

func TestParse_Errors(t *testing.T) {
	for _, in := range []string{"", "   ", "1 +", "(a + b", "a $ b", "2 3", "."} {
		_, err := symbolic.Parse(in)
		require.ErrorIs(t, err, symbolic.ErrParse, "input %q", in)
	}
}
