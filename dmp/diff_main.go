package dmp

import (
	"strings"
	"time"
)

// DiffMain finds the differences between two texts. If checkLines is true
// and both texts exceed 100 characters, a faster, possibly non-minimal
// line-mode diff is attempted first.
func (dmp *DMP) DiffMain(text1, text2 string, checkLines bool) []Diff {
	return dmp.diffMain(text1, text2, checkLines, dmp.deadline())
}

func (dmp *DMP) diffMain(text1, text2 string, checkLines bool, deadline time.Time) []Diff {
	return dmp.diffMainRunes([]rune(text1), []rune(text2), checkLines, deadline)
}

// DiffMainRunes finds the differences between two rune sequences.
func (dmp *DMP) DiffMainRunes(text1, text2 []rune, checkLines bool) []Diff {
	return dmp.diffMainRunes(text1, text2, checkLines, dmp.deadline())
}

func (dmp *DMP) diffMainRunes(text1, text2 []rune, checkLines bool, deadline time.Time) []Diff {
	if runesEqual(text1, text2) {
		if len(text1) == 0 {
			return nil
		}
		return []Diff{{DiffEqual, string(text1)}}
	}

	// Trim off the common prefix and suffix as a speedup; reattach them
	// around whatever diffCompute returns.
	prefixLen := commonPrefixLength(text1, text2)
	prefix := text1[:prefixLen]
	text1, text2 = text1[prefixLen:], text2[prefixLen:]

	suffixLen := commonSuffixLength(text1, text2)
	suffix := text1[len(text1)-suffixLen:]
	text1 = text1[:len(text1)-suffixLen]
	text2 = text2[:len(text2)-suffixLen]

	diffs := dmp.diffCompute(text1, text2, checkLines, deadline)

	if len(prefix) != 0 {
		diffs = diffPrepend(diffEq(string(prefix)), diffs)
	}
	if len(suffix) != 0 {
		diffs = diffAppend(diffs, diffEq(string(suffix)))
	}
	return DiffCleanupMerge(diffs)
}

// diffCompute finds the differences between two rune slices known to share
// no common prefix or suffix.
func (dmp *DMP) diffCompute(text1, text2 []rune, checkLines bool, deadline time.Time) []Diff {
	if len(text1) == 0 {
		return []Diff{{DiffInsert, string(text2)}}
	}
	if len(text2) == 0 {
		return []Diff{{DiffDelete, string(text1)}}
	}

	var longtext, shorttext []rune
	if len(text1) > len(text2) {
		longtext, shorttext = text1, text2
	} else {
		longtext, shorttext = text2, text1
	}

	if i := runesIndex(longtext, shorttext); i != -1 {
		// The shorter text is a substring of the longer one.
		op := DiffInsert
		if len(text1) > len(text2) {
			op = DiffDelete
		}
		return []Diff{
			{op, string(longtext[:i])},
			{DiffEqual, string(shorttext)},
			{op, string(longtext[i+len(shorttext):])},
		}
	}

	if len(shorttext) == 1 {
		// A single-character string can't be an equality after the speedup
		// above already ruled that out.
		return []Diff{
			{DiffDelete, string(text1)},
			{DiffInsert, string(text2)},
		}
	}

	if hm := diffHalfMatch(dmp, text1, text2); hm != nil {
		text1A, text1B := hm[0], hm[1]
		text2A, text2B := hm[2], hm[3]
		midCommon := hm[4]
		diffsA := dmp.diffMainRunes(text1A, text2A, checkLines, deadline)
		diffsB := dmp.diffMainRunes(text1B, text2B, checkLines, deadline)
		return append(diffsA, append([]Diff{{DiffEqual, string(midCommon)}}, diffsB...)...)
	}

	if checkLines && len(text1) > 100 && len(text2) > 100 {
		return dmp.diffLineMode(text1, text2, deadline)
	}

	return dmp.diffBisect(text1, text2, deadline)
}

// diffLineMode does a quick line-level diff, then rediffs replacement
// blocks character-by-character for greater accuracy. This speedup can
// produce non-minimal diffs (§4.6).
func (dmp *DMP) diffLineMode(text1, text2 []rune, deadline time.Time) []Diff {
	enc1, enc2, lines := diffLinesToRunes(string(text1), string(text2))

	diffs := dmp.diffMainRunes(enc1, enc2, false, deadline)

	diffs = DiffCharsToLines(diffs, lines)
	diffs = DiffCleanupSemantic(diffs) // Eliminate freak matches, e.g. blank lines.

	return dmp.refineReplacementBlocks(diffs, deadline)
}

// refineReplacementBlocks scans a line-level diff for runs that mix deletes
// and inserts between two equalities (a replacement block the line-mode
// pass only resolved at line granularity) and rediffs each such run
// character-by-character for a more accurate result. Runs with only
// deletes or only inserts pass through untouched.
func (dmp *DMP) refineReplacementBlocks(diffs []Diff, deadline time.Time) []Diff {
	out := make([]Diff, 0, len(diffs))
	var textDelete, textInsert strings.Builder
	hasDelete, hasInsert := false, false

	flush := func() {
		defer func() {
			textDelete.Reset()
			textInsert.Reset()
			hasDelete, hasInsert = false, false
		}()

		switch {
		case hasDelete && hasInsert:
			out = append(out, dmp.diffMain(textDelete.String(), textInsert.String(), false, deadline)...)
		case hasDelete:
			out = append(out, Diff{DiffDelete, textDelete.String()})
		case hasInsert:
			out = append(out, Diff{DiffInsert, textInsert.String()})
		}
	}

	for _, d := range diffs {
		switch d.Type {
		case DiffInsert:
			hasInsert = true
			textInsert.WriteString(d.Text)
		case DiffDelete:
			hasDelete = true
			textDelete.WriteString(d.Text)
		case DiffEqual:
			flush()
			out = append(out, d)
		}
	}
	flush()

	return out
}
