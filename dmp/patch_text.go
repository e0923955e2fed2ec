package dmp

import (
	"fmt"
	"strconv"
	"strings"
)

// patchBody renders a patch's diffs as the body lines following its
// unidiff-style header: one line per op, prefixed with '+', '-', or ' '.
// Each op's text is percent-escaped with encodeURI, never folded to space
// (see SPEC_FULL.md's Open Question 1 resolution).
func patchBody(p Patch) string {
	var b strings.Builder
	for _, d := range p.Diffs {
		switch d.Type {
		case DiffInsert:
			b.WriteByte('+')
		case DiffDelete:
			b.WriteByte('-')
		case DiffEqual:
			b.WriteByte(' ')
		}
		b.WriteString(encodeURI(d.Text))
		b.WriteByte('\n')
	}
	return b.String()
}

// PatchToText serializes a patch set into the unidiff-style text format
// PatchFromText parses back.
func PatchToText(patches PatchSet) string {
	var b strings.Builder
	for _, p := range patches {
		b.WriteString(p.String())
	}
	return b.String()
}

// PatchFromText parses the text format produced by PatchToText. Returns
// ErrMalformedPatchText if textline isn't well-formed: an unrecognized
// header, a bad op prefix, or an unescapable body line.
func PatchFromText(textline string) (PatchSet, error) {
	var patches PatchSet
	if len(textline) == 0 {
		return patches, nil
	}

	lines := strings.Split(textline, "\n")
	i := 0

	for i < len(lines) {
		m := patchHeaderRegex.FindStringSubmatch(lines[i])
		if m == nil {
			return nil, fmt.Errorf("%w: bad hunk header %q", ErrMalformedPatchText, lines[i])
		}

		var patch Patch
		var err error
		patch.Start1, err = strconv.Atoi(m[1])
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedPatchText, err)
		}
		switch m[2] {
		case "":
			patch.Start1--
			patch.Length1 = 1
		case "0":
			patch.Length1 = 0
		default:
			patch.Start1--
			if patch.Length1, err = strconv.Atoi(m[2]); err != nil {
				return nil, fmt.Errorf("%w: %v", ErrMalformedPatchText, err)
			}
		}

		patch.Start2, err = strconv.Atoi(m[3])
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedPatchText, err)
		}
		switch m[4] {
		case "":
			patch.Start2--
			patch.Length2 = 1
		case "0":
			patch.Length2 = 0
		default:
			patch.Start2--
			if patch.Length2, err = strconv.Atoi(m[4]); err != nil {
				return nil, fmt.Errorf("%w: %v", ErrMalformedPatchText, err)
			}
		}
		i++

		for i < len(lines) {
			if lines[i] == "" {
				i++
				continue
			}
			sign := lines[i][0]
			if sign == '@' {
				break // Start of the next hunk.
			}

			text, err := decodeURI(lines[i][1:])
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrMalformedPatchText, err)
			}

			switch sign {
			case '-':
				patch.Diffs = append(patch.Diffs, Diff{DiffDelete, text})
			case '+':
				patch.Diffs = append(patch.Diffs, Diff{DiffInsert, text})
			case ' ':
				patch.Diffs = append(patch.Diffs, Diff{DiffEqual, text})
			default:
				return nil, fmt.Errorf("%w: unknown line prefix %q", ErrMalformedPatchText, string(sign))
			}
			i++
		}

		patches = append(patches, patch)
	}

	return patches, nil
}
