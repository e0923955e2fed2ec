package dmp

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// DiffToDelta crushes a diff script into a compact, tab-separated encoded
// string describing the edits needed to turn text1 into text2.
// E.g. "=3\t-2\t+ing" means: keep 3 code units, delete 2, insert "ing".
// Inserted text is URI-escaped; counts are in code units (runes), not bytes.
func DiffToDelta(diffs []Diff) string {
	var b strings.Builder
	for _, d := range diffs {
		switch d.Type {
		case DiffInsert:
			b.WriteByte('+')
			b.WriteString(encodeURI(d.Text))
			b.WriteByte('\t')
		case DiffDelete:
			fmt.Fprintf(&b, "-%d\t", utf8.RuneCountInString(d.Text))
		case DiffEqual:
			fmt.Fprintf(&b, "=%d\t", utf8.RuneCountInString(d.Text))
		}
	}
	delta := b.String()
	if delta != "" {
		delta = delta[:len(delta)-1] // Strip the trailing tab.
	}
	return delta
}

// DiffFromDelta reconstructs a diff script given the original text1 and a
// delta produced by DiffToDelta.
func DiffFromDelta(text1, delta string) ([]Diff, error) {
	var diffs []Diff
	pointer := 0 // Cursor into text1, in runes.
	runes := []rune(text1)

	for _, token := range strings.Split(delta, "\t") {
		if token == "" {
			continue // A trailing tab produces one blank token; that's fine.
		}

		op, param := token[0], token[1:]
		switch op {
		case '+':
			text, err := decodeURI(param)
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrMalformedDelta, err)
			}
			if !utf8.ValidString(text) {
				return nil, fmt.Errorf("%w: invalid UTF-8 insert token %q", ErrMalformedDelta, text)
			}
			diffs = append(diffs, Diff{DiffInsert, text})

		case '=', '-':
			n, err := strconv.Atoi(param)
			if err != nil {
				return nil, fmt.Errorf("%w: non-numeric count %q", ErrMalformedDelta, param)
			}
			if n < 0 {
				return nil, fmt.Errorf("%w: negative count %d", ErrMalformedDelta, n)
			}
			if pointer+n > len(runes) {
				return nil, fmt.Errorf("%w: count %d at offset %d exceeds source length %d", ErrMalformedDelta, n, pointer, len(runes))
			}
			text := string(runes[pointer : pointer+n])
			pointer += n
			if op == '=' {
				diffs = append(diffs, Diff{DiffEqual, text})
			} else {
				diffs = append(diffs, Diff{DiffDelete, text})
			}

		default:
			return nil, fmt.Errorf("%w: unknown operation %q", ErrMalformedDelta, string(op))
		}
	}

	if pointer != len(runes) {
		return nil, fmt.Errorf("%w: delta covers %d of %d source code units", ErrMalformedDelta, pointer, len(runes))
	}
	return diffs, nil
}
