package dmp

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiffToDeltaAndBack(t *testing.T) {
	diffs := []Diff{
		{DiffEqual, "jump"},
		{DiffDelete, "s"},
		{DiffInsert, "ed"},
		{DiffEqual, " over "},
		{DiffDelete, "the lazy"},
		{DiffInsert, "a lazy"},
		{DiffEqual, " dog"},
	}
	text1 := DiffText1(diffs)

	delta := DiffToDelta(diffs)
	assert.NotEmpty(t, delta)

	back, err := DiffFromDelta(text1, delta)
	require.NoError(t, err)
	if diff := cmp.Diff(diffs, back); diff != "" {
		t.Errorf("DiffFromDelta mismatch (-want +got):\n%s", diff)
	}
}

func TestDiffToDeltaRoundTripsLiteralPlus(t *testing.T) {
	diffs := []Diff{
		{DiffEqual, "a"},
		{DiffInsert, "b+c"},
	}
	text1 := DiffText1(diffs)
	delta := DiffToDelta(diffs)

	back, err := DiffFromDelta(text1, delta)
	require.NoError(t, err)
	if diff := cmp.Diff(diffs, back); diff != "" {
		t.Errorf("a literal '+' must round-trip unescaped (-want +got):\n%s", diff)
	}
}

func TestDiffToDeltaRoundTripsUnicode(t *testing.T) {
	diffs := []Diff{
		{DiffEqual, "日本語"},
		{DiffInsert, " テスト 💬"},
		{DiffDelete, "削除"},
	}
	text1 := DiffText1(diffs)
	delta := DiffToDelta(diffs)

	back, err := DiffFromDelta(text1, delta)
	require.NoError(t, err)
	if diff := cmp.Diff(diffs, back); diff != "" {
		t.Errorf("DiffFromDelta mismatch (-want +got):\n%s", diff)
	}
}

func TestDiffFromDeltaRejectsMalformedInput(t *testing.T) {
	cases := []struct {
		name  string
		text1 string
		delta string
	}{
		{"non-numeric count", "abc", "=x"},
		{"negative count", "abc", "=-1"},
		{"count exceeds source", "abc", "=10"},
		{"unknown operation", "abc", "!3"},
		{"bad escape", "abc", "+%zz"},
		{"short of source", "abcdef", "=3"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := DiffFromDelta(c.text1, c.delta)
			assert.ErrorIs(t, err, ErrMalformedDelta)
		})
	}
}

func TestDiffToDeltaEmpty(t *testing.T) {
	assert.Equal(t, "", DiffToDelta(nil))
}

func TestDiffFromDeltaTrailingTabIsHarmless(t *testing.T) {
	diffs, err := DiffFromDelta("abc", "=3\t")
	require.NoError(t, err)
	assert.Equal(t, []Diff{{DiffEqual, "abc"}}, diffs)
}
