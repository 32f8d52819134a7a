package pattern_test

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wgvanity/internal/domain"
	"wgvanity/internal/pattern"
)

func TestCompile_Malformed(t *testing.T) {
	for _, expr := range []string{"(abc", "[a-", "a**", `\`} {
		p, err := pattern.Compile(expr)
		require.Error(t, err, expr)
		assert.Nil(t, p)

		var perr *domain.PatternError
		require.True(t, errors.As(err, &perr), expr)
		assert.Equal(t, expr, perr.Pattern)
		assert.Contains(t, err.Error(), "invalid pattern")
	}
}

func TestMatch(t *testing.T) {
	key := []byte("hSDwCYkwp1R0i33ctD73Wg2/Og0mOBr066SpjqqbTmo=")
	cases := []struct {
		expr string
		want bool
	}{
		{"", true},
		{"^hSD", true},
		{"^SDw", false},
		{"SDw", true},
		{"Tmo=$", true},
		{"(?i)^hsdw", true},
		{"^hsdw", false},
		{"^[a-z]", true},
		{`^\w+/`, true},
		{"^.{43}=$", true},
		{"_", false},
	}
	for _, tc := range cases {
		p, err := pattern.Compile(tc.expr)
		require.NoError(t, err, tc.expr)
		assert.Equal(t, tc.want, p.Match(key), tc.expr)
		assert.Equal(t, tc.expr, p.String())
	}
}

func TestExpected(t *testing.T) {
	cases := []struct {
		expr  string
		want  float64
		known bool
	}{
		{"", 1, true},
		{"^", 1, true},
		{"^A", 64, true},
		{"^AB", 4096, true},
		{"^ABC", 262144, true},
		{"(?i)^ab", 1024, true},
		{"AB", 4096.0 / 42, true},
		{"^A.B", 0, false},
		{"^(foo|bar)", 0, false},
		{"^ab=", 0, false},
	}
	for _, tc := range cases {
		p, err := pattern.Compile(tc.expr)
		require.NoError(t, err, tc.expr)
		est := p.Expected()
		assert.Equal(t, tc.known, est.Known, tc.expr)
		if tc.known {
			assert.InDelta(t, tc.want, est.Attempts, 1e-9, tc.expr)
			assert.False(t, est.Never(), tc.expr)
		}
	}
}

func TestExpected_Never(t *testing.T) {
	for _, expr := range []string{"^a_b", "-", "^" + strings.Repeat("A", 44)} {
		p, err := pattern.Compile(expr)
		require.NoError(t, err, expr)
		assert.True(t, p.Expected().Never(), expr)
		assert.True(t, math.IsInf(p.Expected().Attempts, 1), expr)
	}
}

func TestExpected_PrefixScaling(t *testing.T) {
	prev := 1.0
	prefix := "^"
	for _, c := range "wgvan" {
		prefix += string(c)
		p, err := pattern.Compile(prefix)
		require.NoError(t, err)
		got := p.Expected().Attempts
		assert.InDelta(t, prev*64, got, 1e-6, prefix)
		prev = got
	}
}
