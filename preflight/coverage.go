// Package preflight - static coverage pre-check.
package preflight

import (
	"sort"

	"github.com/katalvlaran/crewsat/instance"
)

// Gap is one under-staffable (duty, role) slot: fewer eligible members
// exist than the coverage requires.
type Gap struct {
	DutyID   string
	Role     instance.Role
	Required int
	Eligible int
}

// CoverageGaps scans every duty/role slot and reports those whose eligible
// member count falls short of the requirement, sorted by (DutyID, Role).
//
// Advisory only: a gap guarantees infeasibility of that slot, but an empty
// result proves nothing: workload caps and conflicts can still make the
// instance infeasible. The solver has the final word.
//
// Complexity: O(D·R·C·Q).
func CoverageGaps(crew []instance.CrewMember, duties []instance.Duty) []Gap {
	var (
		gaps     []Gap
		required int
		n        int
	)
	for _, d := range duties {
		for _, role := range instance.SortedCoverageRoles(d.Coverage) {
			if required = d.Coverage[role]; required < 1 {
				continue
			}
			n = 0
			for _, c := range crew {
				if c.Role == role && Eligible(c, d) {
					n++
				}
			}
			if n < required {
				gaps = append(gaps, Gap{DutyID: d.ID, Role: role, Required: required, Eligible: n})
			}
		}
	}
	sort.Slice(gaps, func(i, j int) bool {
		if gaps[i].DutyID != gaps[j].DutyID {
			return gaps[i].DutyID < gaps[j].DutyID
		}

		return gaps[i].Role < gaps[j].Role
	})

	return gaps
}
