package dmp

import "time"

// vpath is a Myers diagonal-path array: v[k] records the furthest-reaching
// x coordinate reached on diagonal k, addressed through an offset since k
// ranges over negative values too.
type vpath struct {
	v      []int
	offset int
}

func newVPath(size int) vpath {
	v := make([]int, 2*size)
	for i := range v {
		v[i] = -1
	}
	return vpath{v: v, offset: size}
}

func (p vpath) at(k int) int { return p.v[p.offset+k] }
func (p vpath) set(k, x int) { p.v[p.offset+k] = x }

func (p vpath) has(k int) bool {
	i := p.offset + k
	return i >= 0 && i < len(p.v) && p.v[i] != -1
}

// DiffBisect finds the middle snake of a diff between s1 and s2, splits the
// problem in two, and returns the recursively constructed diff. See Myers's
// 1986 paper, "An O(ND) Difference Algorithm and Its Variations".
func (dmp *DMP) DiffBisect(s1, s2 string, deadline time.Time) []Diff {
	return dmp.diffBisect([]rune(s1), []rune(s2), deadline)
}

func (dmp *DMP) diffBisect(s1, s2 []rune, deadline time.Time) []Diff {
	len1, len2 := len(s1), len(s2)

	dmax := (len1 + len2 + 1) / 2
	forward := newVPath(dmax)
	reverse := newVPath(dmax)
	forward.set(1, 0)
	reverse.set(1, 0)

	delta := len1 - len2
	// If the total number of characters is odd, the front path collides
	// with the reverse path.
	frontCollides := delta%2 != 0
	k1start, k1end := 0, 0
	k2start, k2end := 0, 0

	for d := 0; d < dmax; d++ {
		if deadlineExpired(deadline, dmp.clock().Now()) {
			dmp.logger().Debug("dmp: bisect deadline reached, returning coarse diff",
				"len1", len1, "len2", len2, "d", d)
			break
		}

		if x, y, ok := dmp.walkForward(s1, s2, forward, reverse, d, delta, frontCollides, &k1start, &k1end); ok {
			return dmp.diffBisectSplit(s1, s2, x, y, deadline)
		}

		if x, y, ok := dmp.walkReverse(s1, s2, forward, reverse, d, delta, frontCollides, &k2start, &k2end); ok {
			return dmp.diffBisectSplit(s1, s2, x, y, deadline)
		}
	}

	// Deadline hit, or no commonality at all: d diffs equals the number of
	// characters.
	return []Diff{
		{DiffDelete, string(s1)},
		{DiffInsert, string(s2)},
	}
}

// walkForward advances the front path one step at depth d. If it overruns
// the reverse path, it reports the snake coordinates where the two paths
// meet.
func (dmp *DMP) walkForward(s1, s2 []rune, forward, reverse vpath, d, delta int, frontCollides bool, kstart, kend *int) (x, y int, ok bool) {
	len1, len2 := len(s1), len(s2)

	for k1 := -d + *kstart; k1 <= d-*kend; k1 += 2 {
		var x1 int
		if k1 == -d || (k1 != d && forward.at(k1-1) < forward.at(k1+1)) {
			x1 = forward.at(k1 + 1)
		} else {
			x1 = forward.at(k1-1) + 1
		}
		y1 := x1 - k1
		for x1 < len1 && y1 < len2 && s1[x1] == s2[y1] {
			x1++
			y1++
		}
		forward.set(k1, x1)

		switch {
		case x1 > len1:
			*kend += 2
		case y1 > len2:
			*kstart += 2
		case frontCollides:
			k2 := delta - k1
			if reverse.has(k2) {
				x2 := len1 - reverse.at(k2) // Mirror onto the top-left coordinate system.
				if x1 >= x2 {
					return x1, y1, true
				}
			}
		}
	}
	return 0, 0, false
}

// walkReverse advances the reverse path one step at depth d. If it overruns
// the front path, it reports the snake coordinates where the two paths
// meet.
func (dmp *DMP) walkReverse(s1, s2 []rune, forward, reverse vpath, d, delta int, frontCollides bool, kstart, kend *int) (x, y int, ok bool) {
	len1, len2 := len(s1), len(s2)

	for k2 := -d + *kstart; k2 <= d-*kend; k2 += 2 {
		var x2 int
		if k2 == -d || (k2 != d && reverse.at(k2-1) < reverse.at(k2+1)) {
			x2 = reverse.at(k2 + 1)
		} else {
			x2 = reverse.at(k2-1) + 1
		}
		y2 := x2 - k2
		for x2 < len1 && y2 < len2 && s1[len1-x2-1] == s2[len2-y2-1] {
			x2++
			y2++
		}
		reverse.set(k2, x2)

		switch {
		case x2 > len1:
			*kend += 2
		case y2 > len2:
			*kstart += 2
		case !frontCollides:
			k1 := delta - k2
			if forward.has(k1) {
				x1 := forward.at(k1)
				y1 := x1 - k1
				mirroredX2 := len1 - x2
				if x1 >= mirroredX2 {
					return x1, y1, true
				}
			}
		}
	}
	return 0, 0, false
}

func (dmp *DMP) diffBisectSplit(s1, s2 []rune, x, y int, deadline time.Time) []Diff {
	s1a, s2a := s1[:x], s2[:y]
	s1b, s2b := s1[x:], s2[y:]

	diffsA := dmp.diffMainRunes(s1a, s2a, false, deadline)
	diffsB := dmp.diffMainRunes(s1b, s2b, false, deadline)
	return append(diffsA, diffsB...)
}
