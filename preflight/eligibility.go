// Package preflight - eligibility analysis.
package preflight

import "github.com/katalvlaran/crewsat/instance"

// Pair identifies one (crew, duty) combination.
type Pair struct {
	CrewID string
	DutyID string
}

// Eligible reports whether the member may legally be assigned to the duty:
// the member's role appears among the duty's coverage keys, bases match
// exactly, and the member is qualified for the duty's aircraft type.
//
// Contract: pure function over immutable inputs, no side effects.
// Complexity: O(Q) over the member's qualified types.
func Eligible(c instance.CrewMember, d instance.Duty) bool {
	if _, ok := d.Coverage[c.Role]; !ok {
		return false
	}
	if c.Base != d.Base {
		return false
	}

	return c.Qualified(d.AircraftType)
}

// EligiblePairs computes the set of eligible pairs over the full crew×duty
// grid. Only eligible pairs are stored (an absent key means ineligible), so
// len(result) equals the number of decision variables a model declares.
//
// Model builders must not range over this map when emitting variables;
// they iterate the input slices and look pairs up, keeping emission order
// deterministic.
//
// Complexity: O(C·D·Q).
func EligiblePairs(crew []instance.CrewMember, duties []instance.Duty) map[Pair]bool {
	eligible := make(map[Pair]bool)
	for _, c := range crew {
		for _, d := range duties {
			if Eligible(c, d) {
				eligible[Pair{CrewID: c.ID, DutyID: d.ID}] = true
			}
		}
	}

	return eligible
}
