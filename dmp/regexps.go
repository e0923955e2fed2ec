package dmp

import "regexp"

// Boundary-classification patterns used by DiffCleanupSemanticLossless.
// These are intentionally ASCII-only (spec §9 "Unicode correctness"): the
// scorer's job is cosmetic boundary alignment, and a full-Unicode
// classifier would make the scoring's tie-breaking non-deterministic across
// locales without changing what the diff actually contains.
var (
	nonAlphaNumericRegex = regexp.MustCompile(`[^a-zA-Z0-9]`)
	whitespaceRegex      = regexp.MustCompile(`\s`)
	linebreakRegex       = regexp.MustCompile(`[\r\n]`)
	blanklineEndRegex    = regexp.MustCompile(`\n\r?\n$`)
)

// patchHeaderRegex matches a unidiff-style hunk header: "@@ -s1,l1 +s2,l2 @@".
var patchHeaderRegex = regexp.MustCompile(`^@@ -(\d+),?(\d*) \+(\d+),?(\d*) @@$`)
