package dmp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiffLevenshtein(t *testing.T) {
	cases := []struct {
		name  string
		diffs []Diff
		want  int
	}{
		{"all equal", []Diff{{DiffEqual, "abc"}}, 0},
		{"insert only", []Diff{{DiffEqual, "abc"}, {DiffInsert, "1234"}, {DiffEqual, "xyz"}}, 4},
		{"delete only", []Diff{{DiffEqual, "abc"}, {DiffDelete, "1234"}, {DiffEqual, "xyz"}}, 4},
		{"substitution counts once", []Diff{
			{DiffEqual, "abc"}, {DiffDelete, "1234"}, {DiffInsert, "1234"}, {DiffEqual, "xyz"},
		}, 4},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, DiffLevenshtein(c.diffs))
		})
	}
}
