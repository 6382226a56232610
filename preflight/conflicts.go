// Package preflight - temporal conflict analysis.
//
// All comparisons run on the absolute horizon timeline (minute 0 = midnight
// of day 1). Two same-day duties overlap in the obvious way; a late duty on
// day N and an early duty on day N+1 conflict when the rest gap between
// them is below the scenario minimum, which minute-of-day arithmetic would
// miss.
package preflight

import "github.com/katalvlaran/crewsat/instance"

// DutyPair is a conflicting duty pair; A precedes B in input order.
type DutyPair struct {
	A string
	B string
}

// Conflicts reports whether one member could never work both duties:
// their time windows overlap, or the gap between the earlier end and the
// later start is shorter than minRestMinutes. Symmetric in a and b.
//
// Contract: pure; callers pass the scenario's MinRestMinutes.
// Complexity: O(1).
func Conflicts(a, b instance.Duty, minRestMinutes int) bool {
	var (
		aStart, aEnd = a.AbsStartMin(), a.AbsEndMin()
		bStart, bEnd = b.AbsStartMin(), b.AbsEndMin()
		gap          int
	)

	// Interval overlap on the horizon timeline.
	if aStart < bEnd && bStart < aEnd {
		return true
	}

	// Disjoint windows: measure the rest gap earlier-end → later-start.
	if aEnd <= bStart {
		gap = bStart - aEnd
	} else {
		gap = aStart - bEnd
	}

	return gap < minRestMinutes
}

// ConflictPairs enumerates every conflicting pair in deterministic order:
// the outer index runs over duties in input order, the inner over later
// positions, so A's position is always before B's and the result is stable
// for identical input.
//
// Complexity: O(D²).
func ConflictPairs(duties []instance.Duty, minRestMinutes int) []DutyPair {
	var pairs []DutyPair
	for i := 0; i < len(duties); i++ {
		for j := i + 1; j < len(duties); j++ {
			if Conflicts(duties[i], duties[j], minRestMinutes) {
				pairs = append(pairs, DutyPair{A: duties[i].ID, B: duties[j].ID})
			}
		}
	}

	return pairs
}
