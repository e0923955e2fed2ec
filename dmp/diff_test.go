package dmp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiffText1(t *testing.T) {
	diffs := []Diff{
		{DiffEqual, "jump"},
		{DiffDelete, "s"},
		{DiffInsert, "ed"},
		{DiffEqual, " over"},
		{DiffDelete, " the lazy"},
		{DiffInsert, " a lazy"},
	}
	assert.Equal(t, "jumps over the lazy", DiffText1(diffs))
	assert.Equal(t, "jumped over a lazy", DiffText2(diffs))
}

func TestSplice(t *testing.T) {
	diffs := []Diff{diffEq("a"), diffEq("b"), diffEq("c")}
	diffs = splice(diffs, 1, 1, diffEq("x"), diffEq("y"))
	assert.Equal(t, []Diff{diffEq("a"), diffEq("x"), diffEq("y"), diffEq("c")}, diffs)
}
