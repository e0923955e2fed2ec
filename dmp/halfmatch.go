package dmp

// DiffHalfMatch checks whether text1 and text2 share a substring at least
// half the length of the longer text, returning nil if the heuristic
// doesn't apply.
func (dmp *DMP) DiffHalfMatch(text1, text2 string) []string {
	rs := diffHalfMatch(dmp, []rune(text1), []rune(text2))
	if rs == nil {
		return nil
	}
	result := make([]string, len(rs))
	for i, r := range rs {
		result[i] = string(r)
	}
	return result
}

// diffHalfMatch implements C3: find a split (prefix1, suffix1, prefix2,
// suffix2, common) such that common occurs in both text1 and text2 and is
// at least half the length of the longer text. Disabled when DiffTimeout is
// unlimited (§4.3, §9): an optimal diff is then affordable and the
// heuristic can only make it worse.
func diffHalfMatch(dmp *DMP, text1, text2 []rune) [][]rune {
	if dmp.DiffTimeout <= 0 {
		return nil
	}

	var longtext, shorttext []rune
	if len(text1) > len(text2) {
		longtext, shorttext = text1, text2
	} else {
		longtext, shorttext = text2, text1
	}
	if len(longtext) < 4 || len(shorttext)*2 < len(longtext) {
		return nil // Pointless.
	}

	// Seed at the second quarter, then the middle; keep the longer match.
	hm1 := diffHalfMatchSeed(longtext, shorttext, (len(longtext)+3)/4)
	hm2 := diffHalfMatchSeed(longtext, shorttext, (len(longtext)+1)/2)

	var hm [][]rune
	switch {
	case hm1 == nil && hm2 == nil:
		return nil
	case hm2 == nil:
		hm = hm1
	case hm1 == nil:
		hm = hm2
	case len(hm1[4]) > len(hm2[4]):
		hm = hm1
	default:
		hm = hm2
	}

	if len(text1) > len(text2) {
		return hm
	}
	// Swap back so the return is consistently (t1-prefix, t1-suffix,
	// t2-prefix, t2-suffix, common).
	return [][]rune{hm[2], hm[3], hm[0], hm[1], hm[4]}
}

// diffHalfMatchSeed looks for a match of the quarter-length substring of
// longtext starting at i within shorttext, extending each hit forward and
// backward to find the longest common run containing the seed.
func diffHalfMatchSeed(longtext, shorttext []rune, i int) [][]rune {
	seed := longtext[i : i+len(longtext)/4]

	var bestCommonA, bestCommonB []rune
	var bestCommonLen int
	var bestLongA, bestLongB, bestShortA, bestShortB []rune

	for j := runesIndexFrom(shorttext, seed, 0); j != -1; j = runesIndexFrom(shorttext, seed, j+1) {
		prefixLen := commonPrefixLength(longtext[i:], shorttext[j:])
		suffixLen := commonSuffixLength(longtext[:i], shorttext[:j])
		if bestCommonLen < suffixLen+prefixLen {
			bestCommonA = shorttext[j-suffixLen : j]
			bestCommonB = shorttext[j : j+prefixLen]
			bestCommonLen = len(bestCommonA) + len(bestCommonB)
			bestLongA = longtext[:i-suffixLen]
			bestLongB = longtext[i+prefixLen:]
			bestShortA = shorttext[:j-suffixLen]
			bestShortB = shorttext[j+prefixLen:]
		}
	}

	if bestCommonLen*2 < len(longtext) {
		return nil
	}
	return [][]rune{bestLongA, bestLongB, bestShortA, bestShortB, append(append([]rune{}, bestCommonA...), bestCommonB...)}
}
