package dmp

import "strings"

// maxLineIDsText1 and maxLineIDsText2 bound the dense line alphabet
// DiffLinesToRunes builds, per spec §4.2: once a text's distinct-line budget
// is exhausted the remaining content collapses into one synthetic line so
// the encoding never overflows a 16-bit code unit.
const (
	maxLineIDsText1 = 40000
	maxLineIDsText2 = 65535
)

// DiffLinesToChars splits two texts into rune-encoded forms where each
// distinct line (a maximal run ending in "\n", or an unterminated final
// line) maps to a stable integer id starting at 1, plus the table mapping
// ids back to their line text. Diffing the encoded forms as if each id were
// a character is the line-mode speedup (see diffLineMode in diff_main.go).
func DiffLinesToChars(text1, text2 string) (enc1, enc2 string, lines []string) {
	r1, r2, lines := diffLinesToRunes(text1, text2)
	return string(r1), string(r2), lines
}

func diffLinesToRunes(text1, text2 string) (enc1, enc2 []rune, lines []string) {
	// Index 0 is reserved (a zero rune is an awkward value to carry around
	// and to print while debugging), so lines[0] is never consulted.
	lines = []string{""}
	lineHash := map[string]int{}

	enc1 = diffLinesToRunesMunge(text1, &lines, lineHash, maxLineIDsText1)
	enc2 = diffLinesToRunesMunge(text2, &lines, lineHash, maxLineIDsText2)
	return enc1, enc2, lines
}

func diffLinesToRunesMunge(text string, lines *[]string, lineHash map[string]int, limit int) []rune {
	var out []rune
	lineStart := 0

	for lineStart < len(text) {
		lineEnd := strings.IndexByte(text[lineStart:], '\n')
		var line string
		if lineEnd == -1 {
			line = text[lineStart:]
			lineStart = len(text)
		} else {
			line = text[lineStart : lineStart+lineEnd+1]
			lineStart += lineEnd + 1
		}

		if id, ok := lineHash[line]; ok {
			out = append(out, rune(id))
			continue
		}
		if len(*lines) >= limit {
			// Budget exhausted: collapse this line plus everything after it
			// into one synthetic line consuming the rest of the text.
			line = line + text[lineStart:]
			lineStart = len(text)
			if id, ok := lineHash[line]; ok {
				out = append(out, rune(id))
				break
			}
		}
		*lines = append(*lines, line)
		lineHash[line] = len(*lines) - 1
		out = append(out, rune(len(*lines)-1))
	}
	return out
}

// DiffCharsToLines expands a diff computed over a DiffLinesToChars encoding
// back into a diff over the original line text.
func DiffCharsToLines(diffs []Diff, lines []string) []Diff {
	out := make([]Diff, 0, len(diffs))
	for _, d := range diffs {
		var b strings.Builder
		for _, r := range d.Text {
			b.WriteString(lines[r])
		}
		out = append(out, Diff{d.Type, b.String()})
	}
	return out
}
