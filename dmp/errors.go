package dmp

import "errors"

// Sentinel error kinds. Each is returned wrapped with context via
// fmt.Errorf("...: %w", ...); callers check with errors.Is.
var (
	// ErrMalformedDelta indicates a delta string (see delta.go) could not
	// be decoded: a bad %-escape, a non-numeric or negative count, a
	// consumed length that didn't match the source text, or an unknown
	// leading operation character.
	ErrMalformedDelta = errors.New("dmp: malformed delta")

	// ErrMalformedPatchText indicates a patch text (see patch_text.go)
	// failed to parse: a header that didn't match the unidiff-style
	// regular expression, a body line with an unknown sign, or a bad
	// URI escape in a body line.
	ErrMalformedPatchText = errors.New("dmp: malformed patch text")

	// ErrPatternTooLong indicates a pattern longer than MatchMaxBits was
	// passed to MatchMain/MatchBitap. This module rejects rather than
	// degrades: see SPEC_FULL.md §6.4.
	ErrPatternTooLong = errors.New("dmp: pattern exceeds MatchMaxBits")

	// ErrResourceExhausted would indicate allocator failure while building
	// a pooled string in the spec's reference design. Go's allocator
	// offers no fallible-allocation path, so this module never returns
	// it; the sentinel is kept so the error kind is not silently dropped.
	ErrResourceExhausted = errors.New("dmp: resource exhausted")
)
