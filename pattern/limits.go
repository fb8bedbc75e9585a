package pattern

import (
	"time"

	"github.com/vexlang/strmatch/vector"
)

// Backtracking-budget derivation. The Perl engine guards runaway patterns
// with a wall-clock budget per match attempt; the budget is sized from the
// stack headroom a recursive matcher would have, at an estimated 600 bytes
// and 50µs per frame, clamped to a sane range.
const (
	frameSize      = 600
	frameCost      = 50 * time.Microsecond
	budgetFloor    = 250 * time.Millisecond
	budgetCeil     = 10 * time.Second
	longSubjectLen = 1000
)

// NeedBudget reports whether a match budget should be applied for the given
// subject vector. force overrides the heuristic: nil means "only when some
// subject is long", otherwise the pointed-to value decides.
func NeedBudget(force *bool, x *vector.Vector) bool {
	if force != nil {
		return *force
	}
	for i := 0; i < x.Len(); i++ {
		if x.At(i).Len() >= longSubjectLen {
			return true
		}
	}
	return false
}

// MatchBudget derives the per-attempt budget from the process stack limit.
func MatchBudget() time.Duration {
	frames := stackHeadroom() / frameSize
	d := time.Duration(frames) * frameCost
	if d < budgetFloor {
		return budgetFloor
	}
	if d > budgetCeil {
		return budgetCeil
	}
	return d
}
