// Package dmp computes, represents, and applies textual differences
// between two strings: minimal diff scripts (the Myers bisect
// algorithm with line-mode and half-match speedups), fuzzy location of
// a pattern inside drifted text (the Bitap algorithm), and
// self-contextualizing unidiff-style patches built on top of both.
package dmp

import (
	"log/slog"
	"time"
)

// Clock abstracts wall-clock time so diff_main's deadline logic can be
// driven deterministically in tests without sleeping.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// DMP holds the tunable parameters and collaborators for a diff/match/patch
// session. A zero DMP is usable; New returns one with the documented
// defaults. Multiple DMPs may be used concurrently provided each has its
// own instance - there is no shared, process-wide state.
type DMP struct {
	// DiffTimeout bounds diff_main's bisect wall-clock budget. Zero means
	// unlimited, which also disables the half-match speedup (see
	// halfmatch.go) since an optimal diff is then affordable.
	DiffTimeout time.Duration
	// DiffEditCost is the cost threshold used by DiffCleanupEfficiency.
	DiffEditCost int
	// MatchThreshold is the upper bound on an acceptable Bitap score, in [0,1].
	MatchThreshold float64
	// MatchDistance is how many characters away from the expected location
	// add 1.0 to a Bitap score.
	MatchDistance int
	// MatchMaxBits is the longest pattern MatchBitap can search for.
	MatchMaxBits int
	// PatchDeleteThreshold gates an imperfect patch application: above this
	// Levenshtein/length ratio, the hunk is rejected rather than applied.
	PatchDeleteThreshold float64
	// PatchMargin is the context size, in characters, kept around a patch.
	PatchMargin int

	// Clock supplies the current time to the bisect deadline check. Nil
	// means real time.
	Clock Clock
	// Logger receives Debug-level notes for the spec's two non-error "soft
	// failure" conditions: a bisect deadline expiry and a patch that failed
	// to apply. Nil means slog.Default().
	Logger *slog.Logger
}

// New returns a DMP configured with the documented defaults.
func New() *DMP {
	return &DMP{
		DiffTimeout:          time.Second,
		DiffEditCost:         4,
		MatchThreshold:       0.5,
		MatchDistance:        1000,
		MatchMaxBits:         32,
		PatchDeleteThreshold: 0.5,
		PatchMargin:          4,
	}
}

func (dmp *DMP) clock() Clock {
	if dmp.Clock != nil {
		return dmp.Clock
	}
	return realClock{}
}

func (dmp *DMP) logger() *slog.Logger {
	if dmp.Logger != nil {
		return dmp.Logger
	}
	return slog.Default()
}

func (dmp *DMP) deadline() time.Time {
	if dmp.DiffTimeout <= 0 {
		return time.Time{}
	}
	return dmp.clock().Now().Add(dmp.DiffTimeout)
}

func deadlineExpired(d time.Time, now time.Time) bool {
	return !d.IsZero() && !now.Before(d)
}
