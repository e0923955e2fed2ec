package dmp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiffHalfMatchFindsHalves(t *testing.T) {
	dmp := New()
	dmp.DiffTimeout = 1 // Any positive value enables the heuristic.

	cases := []struct {
		name         string
		text1, text2 string
		want         []string
	}{
		{"no match", "1234567890", "abcdef", nil},
		{"single match 1", "1234567890", "a345678z", []string{"12", "90", "a", "z", "345678"}},
		{"single match 2", "a345678z", "1234567890", []string{"a", "z", "12", "90", "345678"}},
		{"multiple matches prefers middle seed", "121231234123451234123121",
			"a1234123451234z", []string{"12123", "123121", "a", "z", "1234123451234"}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, dmp.DiffHalfMatch(c.text1, c.text2))
		})
	}
}

func TestDiffHalfMatchDisabledWhenUnlimited(t *testing.T) {
	dmp := New()
	dmp.DiffTimeout = 0

	// Text that would otherwise half-match cleanly.
	got := dmp.DiffHalfMatch("1234567890", "a345678z")
	assert.Nil(t, got, "half-match must be disabled when DiffTimeout is unlimited")
}
