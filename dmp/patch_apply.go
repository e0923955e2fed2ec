package dmp

// DiffXIndex translates loc, a code-unit offset into text1, into the
// corresponding offset into text2, following diffs. A location that falls
// inside a deletion maps to the position immediately after the deletion.
func DiffXIndex(diffs []Diff, loc int) int {
	chars1, chars2 := 0, 0
	lastChars1, lastChars2 := 0, 0
	var lastDiff Diff

	for _, d := range diffs {
		if d.Type != DiffInsert {
			chars1 += len(d.Text)
		}
		if d.Type != DiffDelete {
			chars2 += len(d.Text)
		}
		if chars1 > loc {
			lastDiff = d
			break
		}
		lastChars1, lastChars2 = chars1, chars2
	}

	if lastDiff.Type == DiffDelete {
		return lastChars2
	}
	return lastChars2 + (loc - lastChars1)
}

// patchLocation is where in text a patch's expected body was found: either
// a single span starting at startLoc (endLoc == -1), or two independently
// located ends for a patch too long for a single Bitap match.
type patchLocation struct {
	startLoc, endLoc int
}

func (p patchLocation) found() bool { return p.startLoc != -1 }

// locatePatch finds where patch's original text best matches within text,
// near expectedLoc. A body longer than MatchMaxBits can't be matched in one
// Bitap call, so its two ends are located independently instead.
func (dmp *DMP) locatePatch(text, text1 string, expectedLoc int) patchLocation {
	if len(text1) <= dmp.MatchMaxBits {
		startLoc, _ := dmp.MatchMain(text, text1, expectedLoc)
		return patchLocation{startLoc, -1}
	}

	startLoc, _ := dmp.MatchMain(text, text1[:dmp.MatchMaxBits], expectedLoc)
	if startLoc == -1 {
		return patchLocation{-1, -1}
	}
	endLoc, _ := dmp.MatchMain(text, text1[len(text1)-dmp.MatchMaxBits:], expectedLoc+len(text1)-dmp.MatchMaxBits)
	if endLoc == -1 || startLoc >= endLoc {
		return patchLocation{-1, -1}
	}
	return patchLocation{startLoc, endLoc}
}

// PatchApply applies patches to text, returning the patched text and, for
// each patch, whether it applied cleanly. A patch that can't be located
// (its context has drifted too far from text) is skipped rather than
// aborting the whole run, matching how the other patch targets behave.
func (dmp *DMP) PatchApply(patches PatchSet, text string) (string, []bool) {
	if len(patches) == 0 {
		return text, []bool{}
	}

	patches = PatchDeepCopy(patches)
	nullPadding := dmp.PatchAddPadding(patches)
	text = nullPadding + text + nullPadding
	patches = dmp.PatchSplitMax(patches)

	results := make([]bool, len(patches))
	delta := 0 // Running offset between a patch's expected and actual location.

	for i, patch := range patches {
		expectedLoc := patch.Start2 + delta
		text1 := DiffText1(patch.Diffs)

		loc := dmp.locatePatch(text, text1, expectedLoc)
		if !loc.found() {
			results[i] = false
			delta -= patch.Length2 - patch.Length1
			dmp.logger().Debug("patch did not apply", "index", i, "expected_loc", expectedLoc)
			continue
		}

		results[i] = true
		delta = loc.startLoc - expectedLoc

		var text2 string
		if loc.endLoc == -1 {
			text2 = text[loc.startLoc:min(loc.startLoc+len(text1), len(text))]
		} else {
			text2 = text[loc.startLoc:min(loc.endLoc+dmp.MatchMaxBits, len(text))]
		}

		if text1 == text2 {
			text = text[:loc.startLoc] + DiffText2(patch.Diffs) + text[loc.startLoc+len(text1):]
			continue
		}

		patched, ok := dmp.applyFuzzyPatch(text, patch, text1, text2, loc.startLoc)
		if !ok {
			results[i] = false
			dmp.logger().Debug("patch matched but content too dissimilar", "index", i)
			continue
		}
		text = patched
	}

	text = text[len(nullPadding) : len(text)-len(nullPadding)]
	return text, results
}

// applyFuzzyPatch replays patch's insert/delete ops through text2, the
// candidate body actually found at startLoc, using a char-diff between the
// patch's original body (text1) and text2 as a coordinate map. Reports
// false, leaving text unchanged, if the two bodies are too dissimilar to
// trust the replay.
func (dmp *DMP) applyFuzzyPatch(text string, patch Patch, text1, text2 string, startLoc int) (string, bool) {
	diffs := dmp.DiffMain(text1, text2, false)
	if len(text1) > dmp.MatchMaxBits &&
		float64(DiffLevenshtein(diffs))/float64(len(text1)) > dmp.PatchDeleteThreshold {
		return text, false
	}

	diffs = DiffCleanupSemanticLossless(diffs)
	index1 := 0
	for _, d := range patch.Diffs {
		if d.Type != DiffEqual {
			index2 := DiffXIndex(diffs, index1)
			switch d.Type {
			case DiffInsert:
				text = text[:startLoc+index2] + d.Text + text[startLoc+index2:]
			case DiffDelete:
				startIndex := startLoc + index2
				text = text[:startIndex] + text[startIndex+DiffXIndex(diffs, index1+len(d.Text))-index2:]
			}
		}
		if d.Type != DiffDelete {
			index1 += len(d.Text)
		}
	}
	return text, true
}
