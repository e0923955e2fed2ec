package dmp

import "strings"

// DiffCleanupMerge reorders and merges like edit sections. Any edit section
// can move sideways as long as it doesn't cross an equality.
func DiffCleanupMerge(diffs []Diff) []Diff {
	diffs = mergeAdjacentEdits(diffs)

	diffs, changed := slideSingleEditsAcrossEqualities(diffs)
	if changed {
		// A shift can expose new merge opportunities; the script length only
		// ever shrinks or stays flat, so this terminates.
		diffs = DiffCleanupMerge(diffs)
	}
	return diffs
}

// mergeAdjacentEdits collapses each maximal run of consecutive delete/insert
// ops into a single delete-then-insert pair, factoring out any prefix or
// suffix the two sides of the run share so it lands in the surrounding
// equalities instead. Adjacent equalities are merged into one along the way.
func mergeAdjacentEdits(diffs []Diff) []Diff {
	out := make([]Diff, 0, len(diffs))
	var textDelete, textInsert strings.Builder
	countDelete, countInsert := 0, 0

	pushEqual := func(text string) {
		if text == "" && len(out) != 0 {
			return
		}
		if len(out) != 0 && out[len(out)-1].Type == DiffEqual {
			out[len(out)-1].Text += text
			return
		}
		out = append(out, Diff{DiffEqual, text})
	}

	// flush emits the accumulated run. When the run borders an upcoming
	// equality, *nextEqual lets a factored-out common suffix land in it
	// instead of the run itself.
	flush := func(nextEqual *string) {
		defer func() {
			countDelete, countInsert = 0, 0
			textDelete.Reset()
			textInsert.Reset()
		}()

		switch {
		case countDelete+countInsert == 0:
			return
		case countDelete+countInsert == 1:
			if countDelete != 0 {
				out = append(out, Diff{DiffDelete, textDelete.String()})
			} else {
				out = append(out, Diff{DiffInsert, textInsert.String()})
			}
			return
		}

		ins, del := textInsert.String(), textDelete.String()
		if countDelete != 0 && countInsert != 0 {
			if n := DiffCommonPrefix(ins, del); n != 0 {
				pushEqual(ins[:n])
				ins, del = ins[n:], del[n:]
			}
			if n := DiffCommonSuffix(ins, del); n != 0 && nextEqual != nil {
				*nextEqual = ins[len(ins)-n:] + *nextEqual
				ins, del = ins[:len(ins)-n], del[:len(del)-n]
			}
		}

		switch {
		case del == "":
			out = append(out, Diff{DiffInsert, ins})
		case ins == "":
			out = append(out, Diff{DiffDelete, del})
		default:
			out = append(out, Diff{DiffDelete, del}, Diff{DiffInsert, ins})
		}
	}

	for _, d := range diffs {
		switch d.Type {
		case DiffInsert:
			countInsert++
			textInsert.WriteString(d.Text)
		case DiffDelete:
			countDelete++
			textDelete.WriteString(d.Text)
		case DiffEqual:
			eq := d.Text
			flush(&eq)
			pushEqual(eq)
		}
	}

	trailing := ""
	flush(&trailing)
	if trailing != "" {
		pushEqual(trailing)
	}

	return out
}

// slideSingleEditsAcrossEqualities looks for a lone edit wedged between two
// equalities where the edit's text overlaps one neighbor, e.g.
// A<ins>BA</ins>C, and slides it sideways to absorb that neighbor:
// <ins>AB</ins>AC. Reports whether anything moved.
func slideSingleEditsAcrossEqualities(diffs []Diff) ([]Diff, bool) {
	changed := false
	i := 1
	for i < len(diffs)-1 { // First and last never need checking.
		if diffs[i-1].Type == DiffEqual && diffs[i+1].Type == DiffEqual {
			switch {
			case strings.HasSuffix(diffs[i].Text, diffs[i-1].Text):
				diffs[i].Text = diffs[i-1].Text + diffs[i].Text[:len(diffs[i].Text)-len(diffs[i-1].Text)]
				diffs[i+1].Text = diffs[i-1].Text + diffs[i+1].Text
				diffs = splice(diffs, i-1, 1)
				changed = true
			case strings.HasPrefix(diffs[i].Text, diffs[i+1].Text):
				diffs[i-1].Text += diffs[i+1].Text
				diffs[i].Text = diffs[i].Text[len(diffs[i+1].Text):] + diffs[i+1].Text
				diffs = splice(diffs, i+1, 1)
				changed = true
			}
		}
		i++
	}
	return diffs, changed
}
