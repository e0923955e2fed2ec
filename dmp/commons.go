package dmp

import "strings"

// commonPrefixLength returns the length of the common prefix of two rune slices.
func commonPrefixLength(text1, text2 []rune) int {
	short, long := text1, text2
	if len(short) > len(long) {
		short, long = long, short
	}
	for i, r := range short {
		if r != long[i] {
			return i
		}
	}
	return len(short)
}

// commonSuffixLength returns the length of the common suffix of two rune slices.
func commonSuffixLength(text1, text2 []rune) int {
	n := min(len(text1), len(text2))
	for i := 0; i < n; i++ {
		if text1[len(text1)-i-1] != text2[len(text2)-i-1] {
			return i
		}
	}
	return n
}

// runesEqual reports whether two rune slices hold identical content.
func runesEqual(r1, r2 []rune) bool {
	if len(r1) != len(r2) {
		return false
	}
	for i, c := range r1 {
		if c != r2[i] {
			return false
		}
	}
	return true
}

// runesIndex is the rune-slice equivalent of strings.Index.
func runesIndex(haystack, needle []rune) int {
	last := len(haystack) - len(needle)
	for i := 0; i <= last; i++ {
		if runesEqual(haystack[i:i+len(needle)], needle) {
			return i
		}
	}
	return -1
}

// runesIndexFrom is the rune-slice equivalent of strings.Index, starting the
// search at haystack[from:].
func runesIndexFrom(haystack, needle []rune, from int) int {
	if from > len(haystack)-1 {
		return -1
	}
	if from <= 0 {
		return runesIndex(haystack, needle)
	}
	i := runesIndex(haystack[from:], needle)
	if i == -1 {
		return -1
	}
	return i + from
}

// DiffCommonPrefix determines the common prefix length of two strings, in code units.
func DiffCommonPrefix(s1, s2 string) int {
	return commonPrefixLength([]rune(s1), []rune(s2))
}

// DiffCommonSuffix determines the common suffix length of two strings, in code units.
func DiffCommonSuffix(s1, s2 string) int {
	return commonSuffixLength([]rune(s1), []rune(s2))
}

// DiffCommonOverlap determines the length of the longest suffix of s1 that is
// also a prefix of s2. No Unicode normalization is performed - "fi" and
// "ﬁi" (the ligature) overlap by 0, matching the reference corpus.
func DiffCommonOverlap(s1, s2 string) int {
	len1, len2 := len(s1), len(s2)
	if len1 == 0 || len2 == 0 {
		return 0
	}
	if len1 > len2 {
		s1 = s1[len1-len2:]
	} else if len1 < len2 {
		s2 = s2[:len1]
	}
	n := min(len1, len2)
	if s1 == s2 {
		return n
	}

	// Start by looking for a single character match and increase length
	// until no match is found.
	best := 0
	length := 1
	for {
		pattern := s1[n-length:]
		found := strings.Index(s2, pattern)
		if found == -1 {
			return best
		}
		length += found
		if found == 0 || s1[n-length:] == s2[:length] {
			best = length
			length++
		}
	}
}
