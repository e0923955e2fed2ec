package dmp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUTF16RoundTrip(t *testing.T) {
	cases := []string{
		"hello",
		"emoji: 😀🎉",
		"日本語",
		"",
	}
	for _, s := range cases {
		assert.Equal(t, s, FromUTF16(ToUTF16(s)))
	}
}

func TestRuneLen32CountsCodePoints(t *testing.T) {
	assert.Equal(t, 5, RuneLen32("hello"))
	assert.Equal(t, 1, RuneLen32("😀")) // One code point, even though it's astral.
}

func TestRuneLen16CountsSurrogatePairsAsTwo(t *testing.T) {
	assert.Equal(t, 5, RuneLen16("hello"))
	assert.Equal(t, 2, RuneLen16("😀")) // Outside the BMP: one surrogate pair.
	assert.Equal(t, 1, RuneLen16("日"))  // Inside the BMP: one code unit.
}
