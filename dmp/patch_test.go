package dmp

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestPatchHeaderFormatting(t *testing.T) {
	cases := []struct {
		name string
		p    Patch
		want string
	}{
		{"zero length", Patch{Start1: 20, Length1: 0, Start2: 21, Length2: 4}, "@@ -20,0 +22,4 @@\n"},
		{"unit length", Patch{Start1: 20, Length1: 1, Start2: 21, Length2: 1}, "@@ -21 +22 @@\n"},
		{"multi length", Patch{Start1: 20, Length1: 3, Start2: 21, Length2: 5}, "@@ -21,3 +22,5 @@\n"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, patchHeader(c.p))
		})
	}
}

func TestPatchStringIncludesBody(t *testing.T) {
	p := Patch{
		Start1: 0, Length1: 2, Start2: 0, Length2: 3,
		Diffs: []Diff{{DiffEqual, "ab"}, {DiffInsert, "c"}},
	}
	s := p.String()
	assert.True(t, strings.HasPrefix(s, "@@ -1,2 +1,3 @@\n"))
	assert.Contains(t, s, " ab\n")
	assert.Contains(t, s, "+c\n")
}

func TestPatchAddContextWidensWithMargin(t *testing.T) {
	dmp := New()
	dmp.PatchMargin = 4

	patch := Patch{
		Start1: 2, Start2: 2, Length1: 0, Length2: 1,
		Diffs: []Diff{{DiffInsert, "X"}},
	}
	text := "The quick brown fox jumps."
	got := dmp.PatchAddContext(patch, text)

	assert.True(t, len(got.Diffs) > len(patch.Diffs), "context should add surrounding equal diffs")
	assert.Equal(t, DiffEqual, got.Diffs[0].Type)
	assert.Equal(t, DiffEqual, got.Diffs[len(got.Diffs)-1].Type)
	assert.True(t, got.Length1 > patch.Length1)
}

func TestPatchAddContextNoOpOnEmptyText(t *testing.T) {
	dmp := New()
	patch := Patch{Diffs: []Diff{{DiffInsert, "x"}}}
	got := dmp.PatchAddContext(patch, "")
	if diff := cmp.Diff(patch, got); diff != "" {
		t.Errorf("PatchAddContext on empty text should be a no-op (-want +got):\n%s", diff)
	}
}

func TestPatchMakeFromDiffsRoundTrips(t *testing.T) {
	dmp := New()
	text1 := "The quick brown fox jumps over the lazy dog."
	text2 := "The quick red fox leaps over the lazy dog."

	patches := dmp.PatchMake(text1, text2)
	assert.NotEmpty(t, patches)

	applied, results := dmp.PatchApply(patches, text1)
	for i, ok := range results {
		assert.Truef(t, ok, "patch %d failed to apply", i)
	}
	assert.Equal(t, text2, applied)
}

func TestPatchMakeFromDiffScriptReconstructsText1(t *testing.T) {
	dmp := New()
	diffs := []Diff{
		{DiffEqual, "The cat"},
		{DiffDelete, " sat"},
		{DiffInsert, " ran"},
		{DiffEqual, " down."},
	}
	patches := dmp.PatchMakeFromDiffScript(diffs)
	assert.NotEmpty(t, patches)

	text1 := DiffText1(diffs)
	text2 := DiffText2(diffs)
	applied, results := dmp.PatchApply(patches, text1)
	for _, ok := range results {
		assert.True(t, ok)
	}
	assert.Equal(t, text2, applied)
}

func TestPatchMakeIdenticalInputsProduceNoPatches(t *testing.T) {
	dmp := New()
	patches := dmp.PatchMake("same", "same")
	assert.Empty(t, patches)
}

func TestPatchDeepCopyIsIndependent(t *testing.T) {
	original := PatchSet{
		{Start1: 0, Length1: 1, Diffs: []Diff{{DiffDelete, "a"}}},
	}
	copied := PatchDeepCopy(original)

	copied[0].Diffs[0].Text = "mutated"
	copied[0].Start1 = 99

	assert.Equal(t, "a", original[0].Diffs[0].Text)
	assert.Equal(t, 0, original[0].Start1)
	if diff := cmp.Diff(original, copied); diff == "" {
		t.Errorf("expected copy to diverge from original after mutation")
	}
}
