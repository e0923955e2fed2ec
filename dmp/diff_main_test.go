package dmp

import (
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiffMainCommonCases(t *testing.T) {
	dmp := New()

	cases := []struct {
		name        string
		text1, text2 string
		want        []Diff
	}{
		{"equal", "abc", "abc", []Diff{{DiffEqual, "abc"}}},
		{"simple insert", "abc", "abXc", []Diff{
			{DiffEqual, "ab"}, {DiffInsert, "X"}, {DiffEqual, "c"},
		}},
		{"simple delete", "abXc", "abc", []Diff{
			{DiffEqual, "ab"}, {DiffDelete, "X"}, {DiffEqual, "c"},
		}},
		{"both empty", "", "", nil},
		{"insert into empty", "", "abc", []Diff{{DiffInsert, "abc"}}},
		{"delete to empty", "abc", "", []Diff{{DiffDelete, "abc"}}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := dmp.DiffMain(c.text1, c.text2, false)
			if diff := cmp.Diff(c.want, got); diff != "" {
				t.Errorf("DiffMain(%q, %q) mismatch (-want +got):\n%s", c.text1, c.text2, diff)
			}
		})
	}
}

func TestDiffMainRoundTripsViaText1Text2(t *testing.T) {
	dmp := New()
	pairs := [][2]string{
		{"The quick brown fox", "The slow brown dog"},
		{"", "something"},
		{"something", ""},
		{"same text", "same text"},
		{"日本語のテスト", "日本語でのテスト"},
	}
	for _, p := range pairs {
		diffs := dmp.DiffMain(p[0], p[1], true)
		assert.Equal(t, p[0], DiffText1(diffs))
		assert.Equal(t, p[1], DiffText2(diffs))
	}
}

func TestDiffMainNeverProducesAdjacentSameTypeOps(t *testing.T) {
	dmp := New()
	diffs := dmp.DiffMain("The quick brown fox jumps over the lazy dog.",
		"The swift brown fox leaps over the lazy dogs.", true)
	for i := 1; i < len(diffs); i++ {
		assert.NotEqual(t, diffs[i-1].Type, diffs[i].Type,
			"adjacent diffs %d and %d share a type", i-1, i)
	}
}

func TestDiffMainRespectsDeadline(t *testing.T) {
	dmp := New()
	dmp.DiffTimeout = time.Second
	dmp.Clock = &instantExpiringClock{base: time.Unix(0, 0)}

	long1 := strings.Repeat("abcdefgh", 200)
	long2 := strings.Repeat("hgfedcba", 200)
	// The clock jumps ten timeouts ahead on its second call, so the deadline
	// is expired by the time diffBisect's first loop iteration checks it;
	// diffMain must still return a valid, if coarse, diff rather than hang.
	diffs := dmp.DiffMain(long1, long2, false)
	assert.Equal(t, long1, DiffText1(diffs))
	assert.Equal(t, long2, DiffText2(diffs))
}

// instantExpiringClock returns base on its first call (so dmp.deadline()
// anchors to a fixed point) and base+10s on every call after, simulating a
// deadline that's already expired by the time anything checks it.
type instantExpiringClock struct {
	base  time.Time
	calls int
}

func (c *instantExpiringClock) Now() time.Time {
	c.calls++
	if c.calls == 1 {
		return c.base
	}
	return c.base.Add(10 * time.Second)
}

func TestDiffMainRunesMatchesStringVariant(t *testing.T) {
	dmp := New()
	text1, text2 := "abcdef", "abXdef"
	require.Equal(t,
		dmp.DiffMain(text1, text2, false),
		dmp.DiffMainRunes([]rune(text1), []rune(text2), false))
}
