// Package solve_test - feasibility probe behavior.
package solve_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/crewsat/instance"
	"github.com/katalvlaran/crewsat/model"
	"github.com/katalvlaran/crewsat/preflight"
	"github.com/katalvlaran/crewsat/solve"
)

// probe runs preflight, builds the satisfaction model and solves it.
func probe(t *testing.T, inst instance.Instance) *solve.Probe {
	t.Helper()
	eligible := preflight.EligiblePairs(inst.Crew, inst.Duties)
	conflicts := preflight.ConflictPairs(inst.Duties, inst.Scenario.MinRestMinutes)

	f, err := model.BuildFeasibility(inst, eligible, conflicts)
	require.NoError(t, err)
	p, err := solve.Feasibility(f, solve.DefaultOptions())
	require.NoError(t, err)

	return p
}

func TestFeasibility_WitnessStaffing(t *testing.T) {
	p := probe(t, fourRoleCrew())

	require.True(t, p.Status.Solved())
	require.Equal(t, []string{"CA1", "FA1", "FA2", "FO1"}, p.ByDuty["LEG1"])
}

func TestFeasibility_UncoverableInstance(t *testing.T) {
	inst := instance.Instance{
		Crew: []instance.CrewMember{crewMember("CA1", instance.RoleCaptain, 10000)},
		Duties: []instance.Duty{
			dutyOn("AM", 1, 480, 720, map[instance.Role]int{instance.RoleCaptain: 1}),
			dutyOn("MID", 1, 600, 840, map[instance.Role]int{instance.RoleCaptain: 1}),
		},
		Scenario: instance.DefaultScenario(),
	}
	p := probe(t, inst)

	require.Equal(t, solve.StatusInfeasible, p.Status)
	require.Empty(t, p.ByDuty)
}

func TestFeasibility_IgnoresWorkloadCap(t *testing.T) {
	// The cap makes the full model infeasible; the probe only checks
	// coverage and rest conflicts, so it still finds a staffing.
	inst := instance.Instance{
		Crew: []instance.CrewMember{crewMember("CA1", instance.RoleCaptain, 200)},
		Duties: []instance.Duty{
			dutyOn("LEG1", 1, 480, 720, map[instance.Role]int{instance.RoleCaptain: 1}),
		},
		Scenario: instance.DefaultScenario(),
	}

	require.Equal(t, solve.StatusInfeasible, roster(t, inst).Status)
	p := probe(t, inst)
	require.True(t, p.Status.Solved())
	require.Equal(t, []string{"CA1"}, p.ByDuty["LEG1"])
}
