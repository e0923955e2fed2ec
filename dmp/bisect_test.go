package dmp

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestDiffBisectFindsMinimalDiff(t *testing.T) {
	dmp := New()
	got := dmp.DiffBisect("cat", "map", time.Time{})
	want := []Diff{
		{DiffDelete, "c"}, {DiffInsert, "m"}, {DiffEqual, "a"},
		{DiffDelete, "t"}, {DiffInsert, "p"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("DiffBisect mismatch (-want +got):\n%s", diff)
	}
}

func TestDiffBisectExpiredDeadlineFallsBackToWholeReplace(t *testing.T) {
	dmp := New()
	past := time.Unix(0, 1) // Already in the past relative to time.Now().
	got := dmp.DiffBisect("cat", "map", past)
	want := []Diff{{DiffDelete, "cat"}, {DiffInsert, "map"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("DiffBisect with expired deadline mismatch (-want +got):\n%s", diff)
	}
}
