package dmp

import "unicode/utf8"

// candidateEquality records an equality considered for elimination: its
// position in the diff slice and its text at the time it was pushed.
type candidateEquality struct {
	index int
	text  string
}

// DiffCleanupSemantic reduces the number of edits by eliminating
// semantically trivial equalities, then extracts any delete/insert overlap
// into an equality between them.
func DiffCleanupSemantic(diffs []Diff) []Diff {
	diffs = eliminateTrivialEqualities(diffs)
	diffs = DiffCleanupSemanticLossless(diffs)
	return mergeOverlappingEdits(diffs)
}

// eliminateTrivialEqualities removes any equality no bigger than the edits
// flanking it on both sides -- too short to be worth keeping the
// surrounding delete/insert apart.
func eliminateTrivialEqualities(diffs []Diff) []Diff {
	changed := false
	var equalities []candidateEquality
	var insLen1, delLen1, insLen2, delLen2 int
	pointer := 0

	for pointer < len(diffs) {
		if diffs[pointer].Type == DiffEqual {
			equalities = append(equalities, candidateEquality{pointer, diffs[pointer].Text})
			insLen1, delLen1 = insLen2, delLen2
			insLen2, delLen2 = 0, 0
			pointer++
			continue
		}

		if diffs[pointer].Type == DiffInsert {
			insLen2 += len(diffs[pointer].Text)
		} else {
			delLen2 += len(diffs[pointer].Text)
		}

		if len(equalities) == 0 {
			pointer++
			continue
		}
		last := equalities[len(equalities)-1]
		if last.text == "" || len(last.text) > max(insLen1, delLen1) || len(last.text) > max(insLen2, delLen2) {
			pointer++
			continue
		}

		insPoint := last.index
		diffs = append(diffs[:insPoint],
			append([]Diff{{DiffDelete, last.text}}, diffs[insPoint:]...)...)
		diffs[insPoint+1].Type = DiffInsert // Second copy becomes the insert.

		equalities = equalities[:len(equalities)-1] // Discard the equality just consumed.
		if len(equalities) > 0 {
			equalities = equalities[:len(equalities)-1]
		}
		if len(equalities) > 0 {
			pointer = equalities[len(equalities)-1].index
		} else {
			pointer = -1
		}

		insLen1, delLen1, insLen2, delLen2 = 0, 0, 0, 0
		changed = true
		pointer++
	}

	if changed {
		diffs = DiffCleanupMerge(diffs)
	}
	return diffs
}

// mergeOverlappingEdits finds overlaps between adjacent delete/insert pairs,
// e.g. <del>abcxxx</del><ins>xxxdef</ins> -> <del>abc</del>xxx<ins>def</ins>.
// Only extracts an overlap at least as big as half of either edit.
func mergeOverlappingEdits(diffs []Diff) []Diff {
	pointer := 1
	for pointer < len(diffs) {
		if diffs[pointer-1].Type != DiffDelete || diffs[pointer].Type != DiffInsert {
			pointer++
			continue
		}

		deletion := diffs[pointer-1].Text
		insertion := diffs[pointer].Text
		overlap1 := DiffCommonOverlap(deletion, insertion)
		overlap2 := DiffCommonOverlap(insertion, deletion)

		switch {
		case overlap1 >= overlap2:
			if float64(overlap1) >= float64(len(deletion))/2 || float64(overlap1) >= float64(len(insertion))/2 {
				diffs = append(diffs[:pointer], append([]Diff{{DiffEqual, insertion[:overlap1]}}, diffs[pointer:]...)...)
				diffs[pointer-1].Text = deletion[:len(deletion)-overlap1]
				diffs[pointer+1].Text = insertion[overlap1:]
				pointer++
			}
		default:
			if float64(overlap2) >= float64(len(deletion))/2 || float64(overlap2) >= float64(len(insertion))/2 {
				diffs = append(diffs[:pointer], append([]Diff{{DiffEqual, deletion[:overlap2]}}, diffs[pointer:]...)...)
				diffs[pointer-1].Type = DiffInsert
				diffs[pointer-1].Text = insertion[:len(insertion)-overlap2]
				diffs[pointer+1].Type = DiffDelete
				diffs[pointer+1].Text = deletion[overlap2:]
				pointer++
			}
		}
		pointer++
	}
	return diffs
}

// diffCleanupSemanticScore scores whether the boundary between one and two
// falls on a logical boundary, from 0 (worst) to 6 (best, text edges).
func diffCleanupSemanticScore(one, two string) int {
	if len(one) == 0 || len(two) == 0 {
		return 6
	}

	r1, _ := utf8.DecodeLastRuneInString(one)
	r2, _ := utf8.DecodeRuneInString(two)
	c1, c2 := string(r1), string(r2)

	nonAlnum1 := nonAlphaNumericRegex.MatchString(c1)
	nonAlnum2 := nonAlphaNumericRegex.MatchString(c2)
	ws1 := nonAlnum1 && whitespaceRegex.MatchString(c1)
	ws2 := nonAlnum2 && whitespaceRegex.MatchString(c2)
	lineBreak1 := ws1 && linebreakRegex.MatchString(c1)
	lineBreak2 := ws2 && linebreakRegex.MatchString(c2)
	blankLine1 := lineBreak1 && blanklineEndRegex.MatchString(one)
	blankLine2 := lineBreak2 && blanklineEndRegex.MatchString(two)

	switch {
	case blankLine1 || blankLine2:
		return 5
	case lineBreak1 || lineBreak2:
		return 4
	case nonAlnum1 && !ws1 && ws2:
		return 3
	case ws1 || ws2:
		return 2
	case nonAlnum1 || nonAlnum2:
		return 1
	default:
		return 0
	}
}

// DiffCleanupSemanticLossless looks for a single edit surrounded by two
// equalities and slides its boundary to the position that scores best,
// aligning the edit to a word/line boundary.
// e.g: "The c<ins>at c</ins>ame." -> "The <ins>cat </ins>came."
func DiffCleanupSemanticLossless(diffs []Diff) []Diff {
	pointer := 1
	for pointer < len(diffs)-1 { // First and last never need checking.
		if diffs[pointer-1].Type == DiffEqual && diffs[pointer+1].Type == DiffEqual {
			equality1 := diffs[pointer-1].Text
			edit := diffs[pointer].Text
			equality2 := diffs[pointer+1].Text

			// Slide left as far as possible first.
			if n := DiffCommonSuffix(equality1, edit); n > 0 {
				common := edit[len(edit)-n:]
				equality1 = equality1[:len(equality1)-n]
				edit = common + edit[:len(edit)-n]
				equality2 = common + equality2
			}

			// Then step one character at a time to the right, keeping the
			// best-scoring split. >= (not >) biases ties toward trailing
			// whitespace on the edit.
			bestEquality1, bestEdit, bestEquality2 := equality1, edit, equality2
			bestScore := diffCleanupSemanticScore(equality1, edit) + diffCleanupSemanticScore(edit, equality2)

			for len(edit) != 0 && len(equality2) != 0 {
				_, sz := utf8.DecodeRuneInString(edit)
				if len(equality2) < sz || edit[:sz] != equality2[:sz] {
					break
				}
				equality1 += edit[:sz]
				edit = edit[sz:] + equality2[:sz]
				equality2 = equality2[sz:]
				score := diffCleanupSemanticScore(equality1, edit) + diffCleanupSemanticScore(edit, equality2)
				if score >= bestScore {
					bestScore = score
					bestEquality1, bestEdit, bestEquality2 = equality1, edit, equality2
				}
			}

			if diffs[pointer-1].Text != bestEquality1 {
				if len(bestEquality1) != 0 {
					diffs[pointer-1].Text = bestEquality1
				} else {
					diffs = splice(diffs, pointer-1, 1)
					pointer--
				}
				diffs[pointer].Text = bestEdit
				if len(bestEquality2) != 0 {
					diffs[pointer+1].Text = bestEquality2
				} else {
					diffs = append(diffs[:pointer+1], diffs[pointer+2:]...)
					pointer--
				}
			}
		}
		pointer++
	}
	return diffs
}
