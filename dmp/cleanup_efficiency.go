package dmp

// editSides tracks whether an insert and/or delete op appears immediately
// before or after a candidate equality.
type editSides struct {
	ins, del bool
}

func (s editSides) any() bool { return s.ins || s.del }

// DiffCleanupEfficiency reduces the number of edits by eliminating
// equalities that are operationally trivial: too short, relative to
// editCost, to be worth the overhead of keeping the surrounding edits
// separate.
func (dmp *DMP) DiffCleanupEfficiency(diffs []Diff) []Diff {
	return diffCleanupEfficiency(diffs, dmp.DiffEditCost)
}

func diffCleanupEfficiency(diffs []Diff, editCost int) []Diff {
	changed := false
	var equalities []int // Positions of candidate equalities, most recent last.
	lastEquality := ""
	var pre, post editSides
	i := 0

	for i < len(diffs) {
		if diffs[i].Type == DiffEqual {
			if len(diffs[i].Text) < editCost && post.any() {
				equalities = append(equalities, i)
				pre = post
				lastEquality = diffs[i].Text
			} else {
				// Not a candidate (too long, or no edit precedes it), and
				// can never become one.
				equalities = nil
				lastEquality = ""
			}
			post = editSides{}
			i++
			continue
		}

		if diffs[i].Type == DiffDelete {
			post.del = true
		} else {
			post.ins = true
		}

		if lastEquality != "" && worthSplitting(pre, post, len(lastEquality), editCost) {
			insPoint := equalities[len(equalities)-1]
			diffs = append(diffs[:insPoint],
				append([]Diff{{DiffDelete, lastEquality}}, diffs[insPoint:]...)...)
			diffs[insPoint+1].Type = DiffInsert // Second copy becomes the insert.

			equalities = equalities[:len(equalities)-1] // Discard the equality just consumed.
			lastEquality = ""

			if pre.ins && pre.del {
				// Nothing upstream is affected; keep going from here.
				post = editSides{ins: true, del: true}
				equalities = nil
			} else {
				if len(equalities) > 0 {
					equalities = equalities[:len(equalities)-1] // Reevaluate the previous equality.
				}
				if len(equalities) > 0 {
					i = equalities[len(equalities)-1]
				} else {
					i = -1
				}
				post = editSides{}
			}
			changed = true
		}
		i++
	}

	if changed {
		diffs = DiffCleanupMerge(diffs)
	}
	return diffs
}

// worthSplitting reports whether the edit runs flanking a short candidate
// equality justify removing it: either an insert and a delete sit on each
// side of it, or it's under half editCost and three of the four possible
// edit slots are occupied. Five shapes satisfy this:
//
//	<ins>A</ins><del>B</del>XY<ins>C</ins><del>D</del>
//	<ins>A</ins>X<ins>C</ins><del>D</del>
//	<ins>A</ins><del>B</del>X<ins>C</ins>
//	<del>A</del>X<ins>C</ins><del>D</del>
//	<ins>A</ins><del>B</del>X<del>C</del>
func worthSplitting(pre, post editSides, lastEqualityLen, editCost int) bool {
	if pre.ins && pre.del && post.ins && post.del {
		return true
	}
	sum := 0
	for _, b := range []bool{pre.ins, pre.del, post.ins, post.del} {
		if b {
			sum++
		}
	}
	return lastEqualityLen < editCost/2 && sum == 3
}
