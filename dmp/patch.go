package dmp

import (
	"strconv"
	"strings"
)

// Patch describes one hunk of a patch: the diff ops that rewrite a slice of
// the source text, plus the 0-based offsets and lengths of that slice in
// both the source (1) and destination (2) text.
type Patch struct {
	Diffs   []Diff
	Start1  int
	Start2  int
	Length1 int
	Length2 int
}

// PatchSet is an ordered list of patches, applied left to right.
type PatchSet []Patch

// String renders a patch in unidiff-style form: a "@@ -start1,len1
// +start2,len2 @@" header (1-based indices, GNU-diff convention) followed by
// one escaped body line per diff op.
func (p Patch) String() string {
	return patchHeader(p) + patchBody(p)
}

func patchHeader(p Patch) string {
	coords1 := patchCoords(p.Start1, p.Length1)
	coords2 := patchCoords(p.Start2, p.Length2)
	return "@@ -" + coords1 + " +" + coords2 + " @@\n"
}

func patchCoords(start, length int) string {
	switch length {
	case 0:
		return strconv.Itoa(start) + ",0"
	case 1:
		return strconv.Itoa(start + 1)
	default:
		return strconv.Itoa(start+1) + "," + strconv.Itoa(length)
	}
}

// PatchAddContext grows patch with unchanged text on either side, pulled
// from text (the pre-patch source). The pattern is widened PatchMargin at a
// time until it matches text uniquely (or reaches MatchMaxBits minus twice
// PatchMargin), then one more PatchMargin is added; the context is clipped
// at the text edges. This gives MatchBitap enough to work with when the
// patch is later applied to a text that has drifted from the original.
func (dmp *DMP) PatchAddContext(patch Patch, text string) Patch {
	if len(text) == 0 {
		return patch
	}

	pattern := text[patch.Start2 : patch.Start2+patch.Length1]
	padding := 0

	for strings.Index(text, pattern) != strings.LastIndex(text, pattern) &&
		len(pattern) < dmp.MatchMaxBits-2*dmp.PatchMargin {
		padding += dmp.PatchMargin
		maxStart := max(0, patch.Start2-padding)
		minEnd := min(len(text), patch.Start2+patch.Length1+padding)
		pattern = text[maxStart:minEnd]
	}
	padding += dmp.PatchMargin // One extra chunk for good luck.

	prefix := text[max(0, patch.Start2-padding):patch.Start2]
	if len(prefix) != 0 {
		patch.Diffs = append([]Diff{{DiffEqual, prefix}}, patch.Diffs...)
	}
	suffix := text[patch.Start2+patch.Length1 : min(len(text), patch.Start2+patch.Length1+padding)]
	if len(suffix) != 0 {
		patch.Diffs = append(patch.Diffs, Diff{DiffEqual, suffix})
	}

	patch.Start1 -= len(prefix)
	patch.Start2 -= len(prefix)
	patch.Length1 += len(prefix) + len(suffix)
	patch.Length2 += len(prefix) + len(suffix)

	return patch
}

// PatchMake computes the patches needed to turn text1 into text2, running
// DiffMain followed by the semantic and efficiency cleanups when the diff
// is non-trivial.
func (dmp *DMP) PatchMake(text1, text2 string) PatchSet {
	diffs := dmp.DiffMain(text1, text2, true)
	if len(diffs) > 2 {
		diffs = DiffCleanupSemantic(diffs)
		diffs = dmp.DiffCleanupEfficiency(diffs)
	}
	return dmp.PatchMakeFromDiffs(text1, diffs)
}

// PatchMakeFromDiffScript computes patches from a diff script alone,
// reconstructing text1 as DiffText1(diffs).
func (dmp *DMP) PatchMakeFromDiffScript(diffs []Diff) PatchSet {
	return dmp.PatchMakeFromDiffs(DiffText1(diffs), diffs)
}

// patchBuilder threads the rolling state PatchMakeFromDiffs needs while
// walking a diff script: the patch under construction, and the pre/post
// patch texts it draws context from. Patches have rolling context rather
// than a fixed base, so both texts advance past every flushed patch.
type patchBuilder struct {
	dmp     *DMP
	patches PatchSet
	patch   Patch

	prepatchText, postpatchText string
	charCount1, charCount2      int
}

func newPatchBuilder(dmp *DMP, text1 string) *patchBuilder {
	return &patchBuilder{dmp: dmp, prepatchText: text1, postpatchText: text1}
}

// apply folds one diff op into the patch under construction, advancing the
// builder's running position. isLast marks the final op in the script, the
// one case where a short trailing equality never gets absorbed as context.
func (b *patchBuilder) apply(d Diff, isLast bool) {
	if len(b.patch.Diffs) == 0 && d.Type != DiffEqual {
		b.patch.Start1 = b.charCount1
		b.patch.Start2 = b.charCount2
	}

	switch d.Type {
	case DiffInsert:
		b.patch.Diffs = append(b.patch.Diffs, d)
		b.patch.Length2 += len(d.Text)
		b.postpatchText = b.postpatchText[:b.charCount2] + d.Text + b.postpatchText[b.charCount2:]
	case DiffDelete:
		b.patch.Length1 += len(d.Text)
		b.patch.Diffs = append(b.patch.Diffs, d)
		b.postpatchText = b.postpatchText[:b.charCount2] + b.postpatchText[b.charCount2+len(d.Text):]
	case DiffEqual:
		if len(d.Text) <= 2*b.dmp.PatchMargin && len(b.patch.Diffs) != 0 && !isLast {
			b.patch.Diffs = append(b.patch.Diffs, d)
			b.patch.Length1 += len(d.Text)
			b.patch.Length2 += len(d.Text)
		}
		if len(d.Text) >= 2*b.dmp.PatchMargin && len(b.patch.Diffs) != 0 {
			b.flush()
		}
	}

	if d.Type != DiffInsert {
		b.charCount1 += len(d.Text)
	}
	if d.Type != DiffDelete {
		b.charCount2 += len(d.Text)
	}
}

// flush closes out the patch under construction, if any, widening it with
// context and appending it to the result, then rebases the builder's
// rolling texts onto the state just past that patch.
func (b *patchBuilder) flush() {
	if len(b.patch.Diffs) == 0 {
		return
	}
	b.patch = b.dmp.PatchAddContext(b.patch, b.prepatchText)
	b.patches = append(b.patches, b.patch)
	b.patch = Patch{}
	b.prepatchText = b.postpatchText
	b.charCount1 = b.charCount2
}

// PatchMakeFromDiffs computes the patches that reproduce diffs, given the
// source text1 the diffs were computed against. This is the core patch
// builder: PatchMake and PatchMakeFromDiffScript both delegate to it.
func (dmp *DMP) PatchMakeFromDiffs(text1 string, diffs []Diff) PatchSet {
	if len(diffs) == 0 {
		return nil
	}

	b := newPatchBuilder(dmp, text1)
	for i, d := range diffs {
		b.apply(d, i == len(diffs)-1)
	}
	b.flush()

	return b.patches
}

// PatchDeepCopy returns an independent copy of patches; mutating the
// result, or its diff slices, never affects the original.
func PatchDeepCopy(patches PatchSet) PatchSet {
	out := make(PatchSet, len(patches))
	for i, p := range patches {
		cp := p
		cp.Diffs = make([]Diff, len(p.Diffs))
		copy(cp.Diffs, p.Diffs)
		out[i] = cp
	}
	return out
}
