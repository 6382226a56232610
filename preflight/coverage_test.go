package preflight_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/crewsat/instance"
	"github.com/katalvlaran/crewsat/preflight"
)

// TestCoverageGaps_ReportsShortSlots flags only the slots with too few
// eligible members, sorted by duty then role.
func TestCoverageGaps_ReportsShortSlots(t *testing.T) {
	crew := []instance.CrewMember{
		{ID: "C1", Role: instance.RoleCaptain, Base: "VIE", QualifiedTypes: []string{"A320"}, MaxMinutes: 4000},
		{ID: "F1", Role: instance.RoleFlightAttendant, Base: "VIE", QualifiedTypes: []string{"A320"}, MaxMinutes: 4000},
	}
	duties := []instance.Duty{
		{
			ID: "D2", Day: 1, StartMin: 540, EndMin: 780, Base: "VIE", AircraftType: "A320",
			Coverage: map[instance.Role]int{
				instance.RoleCaptain:         1, // satisfiable
				instance.RoleFlightAttendant: 2, // only one FA exists
			},
		},
		{
			ID: "D1", Day: 2, StartMin: 540, EndMin: 780, Base: "VIE", AircraftType: "B738",
			Coverage: map[instance.Role]int{instance.RoleCaptain: 1}, // nobody qualified on B738
		},
	}

	gaps := preflight.CoverageGaps(crew, duties)
	require.Equal(t, []preflight.Gap{
		{DutyID: "D1", Role: instance.RoleCaptain, Required: 1, Eligible: 0},
		{DutyID: "D2", Role: instance.RoleFlightAttendant, Required: 2, Eligible: 1},
	}, gaps)
}

// TestCoverageGaps_CleanInstance yields no findings.
func TestCoverageGaps_CleanInstance(t *testing.T) {
	crew := []instance.CrewMember{
		{ID: "C1", Role: instance.RoleCaptain, Base: "VIE", QualifiedTypes: []string{"A320"}, MaxMinutes: 4000},
	}
	duties := []instance.Duty{
		{
			ID: "D1", Day: 1, StartMin: 540, EndMin: 780, Base: "VIE", AircraftType: "A320",
			Coverage: map[instance.Role]int{instance.RoleCaptain: 1},
		},
	}
	require.Empty(t, preflight.CoverageGaps(crew, duties))
}
