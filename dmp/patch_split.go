package dmp

// PatchAddPadding shifts every patch forward by PatchMargin and extends the
// first patch's leading context and the last patch's trailing context with
// nullPadding, a synthetic sentinel string PatchMargin code units long.
// Applying patches to text that may have shrunk past the first/last patch's
// real context relies on this padding existing on both sides so MatchBitap
// never runs off the end of the text. Returns the padding so PatchApply can
// wrap the source text in it and strip it back off the result.
func (dmp *DMP) PatchAddPadding(patches PatchSet) string {
	paddingLength := dmp.PatchMargin
	nullPadding := ""
	for x := 1; x <= paddingLength; x++ {
		nullPadding += string(rune(x))
	}

	for i := range patches {
		patches[i].Start1 += paddingLength
		patches[i].Start2 += paddingLength
	}

	first := &patches[0]
	if len(first.Diffs) == 0 || first.Diffs[0].Type != DiffEqual {
		first.Diffs = append([]Diff{{DiffEqual, nullPadding}}, first.Diffs...)
		first.Start1 -= paddingLength
		first.Start2 -= paddingLength
		first.Length1 += paddingLength
		first.Length2 += paddingLength
	} else if paddingLength > len(first.Diffs[0].Text) {
		extraLength := paddingLength - len(first.Diffs[0].Text)
		first.Diffs[0].Text = nullPadding[len(first.Diffs[0].Text):] + first.Diffs[0].Text
		first.Start1 -= extraLength
		first.Start2 -= extraLength
		first.Length1 += extraLength
		first.Length2 += extraLength
	}

	last := &patches[len(patches)-1]
	if len(last.Diffs) == 0 || last.Diffs[len(last.Diffs)-1].Type != DiffEqual {
		last.Diffs = append(last.Diffs, Diff{DiffEqual, nullPadding})
		last.Length1 += paddingLength
		last.Length2 += paddingLength
	} else if paddingLength > len(last.Diffs[len(last.Diffs)-1].Text) {
		lastText := last.Diffs[len(last.Diffs)-1].Text
		extraLength := paddingLength - len(lastText)
		last.Diffs[len(last.Diffs)-1].Text += nullPadding[:extraLength]
		last.Length1 += extraLength
		last.Length2 += extraLength
	}

	return nullPadding
}

// PatchSplitMax breaks up any patch longer than MatchMaxBits, the longest
// pattern MatchBitap can locate, into several smaller patches with
// overlapping context. Intended to run just before a patch set is applied,
// never to be part of the persisted patch text.
func (dmp *DMP) PatchSplitMax(patches PatchSet) PatchSet {
	patchSize := dmp.MatchMaxBits
	for x := 0; x < len(patches); x++ {
		if patches[x].Length1 <= patchSize {
			continue
		}
		bigpatch := patches[x]
		patches = append(patches[:x], patches[x+1:]...)
		x--

		start1, start2 := bigpatch.Start1, bigpatch.Start2
		precontext := ""

		for len(bigpatch.Diffs) != 0 {
			patch := Patch{}
			empty := true
			patch.Start1 = start1 - len(precontext)
			patch.Start2 = start2 - len(precontext)
			if len(precontext) != 0 {
				patch.Length1 = len(precontext)
				patch.Length2 = len(precontext)
				patch.Diffs = append(patch.Diffs, Diff{DiffEqual, precontext})
			}

			for len(bigpatch.Diffs) != 0 && patch.Length1 < patchSize-dmp.PatchMargin {
				diffType := bigpatch.Diffs[0].Type
				diffText := bigpatch.Diffs[0].Text

				switch {
				case diffType == DiffInsert:
					patch.Length2 += len(diffText)
					start2 += len(diffText)
					patch.Diffs = append(patch.Diffs, bigpatch.Diffs[0])
					bigpatch.Diffs = bigpatch.Diffs[1:]
					empty = false

				case diffType == DiffDelete && len(patch.Diffs) == 1 &&
					patch.Diffs[0].Type == DiffEqual && len(diffText) > 2*patchSize:
					// A deletion bigger than two patches: let it through whole
					// rather than splitting it across many tiny patches.
					patch.Length1 += len(diffText)
					start1 += len(diffText)
					empty = false
					patch.Diffs = append(patch.Diffs, Diff{diffType, diffText})
					bigpatch.Diffs = bigpatch.Diffs[1:]

				default:
					diffText = diffText[:min(len(diffText), patchSize-patch.Length1-dmp.PatchMargin)]
					patch.Length1 += len(diffText)
					start1 += len(diffText)
					if diffType == DiffEqual {
						patch.Length2 += len(diffText)
						start2 += len(diffText)
					} else {
						empty = false
					}
					patch.Diffs = append(patch.Diffs, Diff{diffType, diffText})
					if diffText == bigpatch.Diffs[0].Text {
						bigpatch.Diffs = bigpatch.Diffs[1:]
					} else {
						bigpatch.Diffs[0].Text = bigpatch.Diffs[0].Text[len(diffText):]
					}
				}
			}

			precontext = DiffText2(patch.Diffs)
			precontext = precontext[max(0, len(precontext)-dmp.PatchMargin):]

			var postcontext string
			bigText1 := DiffText1(bigpatch.Diffs)
			if len(bigText1) > dmp.PatchMargin {
				postcontext = bigText1[:dmp.PatchMargin]
			} else {
				postcontext = bigText1
			}

			if len(postcontext) != 0 {
				patch.Length1 += len(postcontext)
				patch.Length2 += len(postcontext)
				if len(patch.Diffs) != 0 && patch.Diffs[len(patch.Diffs)-1].Type == DiffEqual {
					patch.Diffs[len(patch.Diffs)-1].Text += postcontext
				} else {
					patch.Diffs = append(patch.Diffs, Diff{DiffEqual, postcontext})
				}
			}

			if !empty {
				x++
				patches = append(patches[:x], append(PatchSet{patch}, patches[x:]...)...)
			}
		}
	}
	return patches
}
