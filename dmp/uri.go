package dmp

import (
	"fmt"
	"strings"
)

// uriSafe reports whether b needs no escaping under encodeURI's safe set:
// 0-9A-Za-z-_.~ !*'();/?:@&=+$,#
func uriSafe(b byte) bool {
	switch {
	case b >= '0' && b <= '9', b >= 'A' && b <= 'Z', b >= 'a' && b <= 'z':
		return true
	}
	switch b {
	case '-', '_', '.', '~', ' ', '!', '*', '\'', '(', ')', ';', '/', '?',
		':', '@', '&', '=', '+', '$', ',', '#':
		return true
	}
	return false
}

const upperHex = "0123456789ABCDEF"

// encodeURI escapes every byte of s that is not in the safe set as %HH
// (uppercase). It returns s unchanged, without allocating, if nothing needs
// escaping.
func encodeURI(s string) string {
	needsEscape := false
	for i := 0; i < len(s); i++ {
		if !uriSafe(s[i]) {
			needsEscape = true
			break
		}
	}
	if !needsEscape {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if uriSafe(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperHex[c>>4])
		b.WriteByte(upperHex[c&0xf])
	}
	return b.String()
}

func hexVal(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// decodeURI reverses encodeURI. %HH accepts either hex case. A literal '+'
// is never folded to a space: since encodeURI's safe set already leaves
// space unescaped, a '+' in the input is always a literal '+' from the
// original text, not an encoded space.
func decodeURI(s string) (string, error) {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '%':
			if i+2 >= len(s) {
				return "", fmt.Errorf("incomplete %%-escape at offset %d", i)
			}
			hi, ok1 := hexVal(s[i+1])
			lo, ok2 := hexVal(s[i+2])
			if !ok1 || !ok2 {
				return "", fmt.Errorf("invalid %%-escape %q", s[i:i+3])
			}
			b.WriteByte(hi<<4 | lo)
			i += 2
		default:
			b.WriteByte(s[i])
		}
	}
	return b.String(), nil
}
