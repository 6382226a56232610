// Package solve_test - end-to-end solves over small engineered instances.
//
// Fixtures are built so the optimum is forced, which keeps every asserted
// figure deterministic regardless of search order or worker count.
package solve_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/crewsat/instance"
	"github.com/katalvlaran/crewsat/model"
	"github.com/katalvlaran/crewsat/preflight"
	"github.com/katalvlaran/crewsat/solve"
)

// roster runs the full pipeline: preflight, build, solve.
func roster(t *testing.T, inst instance.Instance) *solve.Result {
	t.Helper()
	eligible := preflight.EligiblePairs(inst.Crew, inst.Duties)
	conflicts := preflight.ConflictPairs(inst.Duties, inst.Scenario.MinRestMinutes)

	r, err := model.BuildRostering(inst, eligible, conflicts)
	require.NoError(t, err)
	res, err := solve.Roster(r, solve.DefaultOptions())
	require.NoError(t, err)

	return res
}

func crewMember(id string, role instance.Role, maxMin int) instance.CrewMember {
	return instance.CrewMember{ID: id, Role: role, Base: "VIE", QualifiedTypes: []string{"A320"}, MaxMinutes: maxMin}
}

func dutyOn(id string, day, start, end int, coverage map[instance.Role]int) instance.Duty {
	return instance.Duty{ID: id, Day: day, StartMin: start, EndMin: end, Base: "VIE", AircraftType: "A320", Coverage: coverage}
}

// fourRoleCrew staffs one duty needing a captain, a first officer and two
// attendants with exactly one eligible member per slot.
func fourRoleCrew() instance.Instance {
	sc := instance.DefaultScenario()
	sc.Weights.WorkedDays = 2

	return instance.Instance{
		Crew: []instance.CrewMember{
			crewMember("CA1", instance.RoleCaptain, 10000),
			crewMember("FO1", instance.RoleFirstOfficer, 10000),
			crewMember("FA1", instance.RoleFlightAttendant, 10000),
			crewMember("FA2", instance.RoleFlightAttendant, 10000),
		},
		Duties: []instance.Duty{
			dutyOn("LEG1", 1, 540, 780, map[instance.Role]int{
				instance.RoleCaptain:         1,
				instance.RoleFirstOfficer:    1,
				instance.RoleFlightAttendant: 2,
			}),
		},
		Scenario: sc,
	}
}

func TestRoster_StaffsEveryRoleSlot(t *testing.T) {
	inst := fourRoleCrew()
	res := roster(t, inst)

	require.Equal(t, solve.StatusOptimal, res.Status)
	require.True(t, res.Status.Solved())
	require.Equal(t, []string{"CA1", "FA1", "FA2", "FO1"}, res.ByDuty["LEG1"])
	for _, c := range inst.Crew {
		require.Equal(t, []string{"LEG1"}, res.ByCrew[c.ID])
		require.Equal(t, 240, res.Crews[c.ID].TotalMinutes)
	}

	// Four worked days at weight 2 is the whole objective.
	require.Equal(t, float64(8), res.Objective)
	require.Equal(t, solve.Term{Weight: 2, Value: 4, Contribution: 8}, res.Breakdown.WorkedDays)
	require.Equal(t, int64(8), res.Breakdown.ObjectiveFromTerms())
}

func TestRoster_ZeroWeightsGiveZeroObjective(t *testing.T) {
	inst := fourRoleCrew()
	inst.Scenario.Weights = instance.Weights{}
	res := roster(t, inst)

	require.Equal(t, solve.StatusOptimal, res.Status)
	require.Equal(t, float64(0), res.Objective)
	require.Equal(t, int64(0), res.Breakdown.ObjectiveFromTerms())
	// The roster itself is still complete.
	require.Len(t, res.ByDuty["LEG1"], 4)
}

func TestRoster_InfeasibleWhenOneCaptainMustOverlap(t *testing.T) {
	inst := instance.Instance{
		Crew: []instance.CrewMember{crewMember("CA1", instance.RoleCaptain, 10000)},
		Duties: []instance.Duty{
			dutyOn("AM", 1, 480, 720, map[instance.Role]int{instance.RoleCaptain: 1}),
			dutyOn("MID", 1, 600, 840, map[instance.Role]int{instance.RoleCaptain: 1}),
		},
		Scenario: instance.DefaultScenario(),
	}
	res := roster(t, inst)

	require.Equal(t, solve.StatusInfeasible, res.Status)
	require.Empty(t, res.ByCrew)
	require.Empty(t, res.ByDuty)
	require.Zero(t, res.Objective)
}

func TestRoster_RespectsWorkloadCap(t *testing.T) {
	// The only captain's cap is below the duty length.
	inst := instance.Instance{
		Crew: []instance.CrewMember{crewMember("CA1", instance.RoleCaptain, 200)},
		Duties: []instance.Duty{
			dutyOn("LEG1", 1, 480, 720, map[instance.Role]int{instance.RoleCaptain: 1}),
		},
		Scenario: instance.DefaultScenario(),
	}
	res := roster(t, inst)

	require.Equal(t, solve.StatusInfeasible, res.Status)
}

func TestRoster_RespectsConsecutiveDayCap(t *testing.T) {
	sc := instance.DefaultScenario()
	sc.HorizonDays = 3
	sc.MaxConsecutiveWorkDays = 2
	daily := func(id string, day int) instance.Duty {
		return dutyOn(id, day, 540, 660, map[instance.Role]int{instance.RoleCaptain: 1})
	}
	inst := instance.Instance{
		Crew:     []instance.CrewMember{crewMember("CA1", instance.RoleCaptain, 10000)},
		Duties:   []instance.Duty{daily("D1", 1), daily("D2", 2), daily("D3", 3)},
		Scenario: sc,
	}
	// One captain would have to work three consecutive days.
	require.Equal(t, solve.StatusInfeasible, roster(t, inst).Status)

	// A second captain lets the roster break the streak.
	inst.Crew = append(inst.Crew, crewMember("CA2", instance.RoleCaptain, 10000))
	res := roster(t, inst)
	require.Equal(t, solve.StatusOptimal, res.Status)
	for day := 1; day <= 3; day++ {
		require.Len(t, res.ByDuty[inst.Duties[day-1].ID], 1)
	}
}

// forcedPenaltyInstance has a single captain and three forced duties that
// trip every penalty family at a known magnitude.
func forcedPenaltyInstance() instance.Instance {
	sc := instance.DefaultScenario()
	sc.HorizonDays = 3
	sc.MinRestMinutes = 200
	sc.Weights = instance.Weights{
		FairnessSpread:      1,
		WorkedDays:          2,
		OffRequest:          1,
		WeeklyRestShortfall: 3,
		LateToEarly:         5,
	}

	return instance.Instance{
		Crew: []instance.CrewMember{crewMember("CA1", instance.RoleCaptain, 3000)},
		Duties: []instance.Duty{
			dutyOn("NIGHT", 1, 1250, 1439, map[instance.Role]int{instance.RoleCaptain: 1}),
			dutyOn("DAWN", 2, 300, 540, map[instance.Role]int{instance.RoleCaptain: 1}),
			dutyOn("NOON", 3, 600, 700, map[instance.Role]int{instance.RoleCaptain: 1}),
		},
		Scenario:    sc,
		OffRequests: []instance.OffRequest{{CrewID: "CA1", Day: 3, Penalty: 7}},
	}
}

func TestRoster_PenaltyAccounting(t *testing.T) {
	res := roster(t, forcedPenaltyInstance())
	require.Equal(t, solve.StatusOptimal, res.Status)
	require.Equal(t, []string{"DAWN", "NIGHT", "NOON"}, res.ByCrew["CA1"])

	// Forced roster: 3 worked days of a 3-day week (shortfall 1), one
	// violated off request, one late-to-early transition, zero spread.
	require.Equal(t, solve.Term{Weight: 1, Value: 0, Contribution: 0}, res.Breakdown.FairnessSpread)
	require.Equal(t, solve.Term{Weight: 2, Value: 3, Contribution: 6}, res.Breakdown.WorkedDays)
	require.Equal(t, solve.Term{Weight: 1, Value: 7, Contribution: 7}, res.Breakdown.OffRequest)
	require.Equal(t, solve.Term{Weight: 3, Value: 1, Contribution: 3}, res.Breakdown.WeeklyRestShortfall)
	require.Equal(t, solve.Term{Weight: 5, Value: 1, Contribution: 5}, res.Breakdown.LateToEarly)
	require.Equal(t, int64(21), res.Breakdown.ObjectiveFromTerms())
	require.Equal(t, float64(21), res.Objective)

	kpi := res.Crews["CA1"]
	require.Equal(t, 529, kpi.TotalMinutes)
	require.Equal(t, 3, kpi.WorkedDays)
	require.Equal(t, []int{0}, kpi.RestDaysByWeek)
	require.Equal(t, []int{1}, kpi.ShortfallByWeek)
	for day := 1; day <= 3; day++ {
		require.True(t, res.Worked[model.WorkKey{CrewID: "CA1", Day: day}])
	}
}

func TestRoster_FairnessSplitsLoad(t *testing.T) {
	sc := instance.DefaultScenario()
	sc.HorizonDays = 2
	sc.Weights = instance.Weights{FairnessSpread: 1, WorkedDays: 1}
	inst := instance.Instance{
		Crew: []instance.CrewMember{
			crewMember("CA1", instance.RoleCaptain, 10000),
			crewMember("CA2", instance.RoleCaptain, 10000),
		},
		Duties: []instance.Duty{
			dutyOn("D1", 1, 540, 780, map[instance.Role]int{instance.RoleCaptain: 1}),
			dutyOn("D2", 2, 540, 780, map[instance.Role]int{instance.RoleCaptain: 1}),
		},
		Scenario: sc,
	}
	res := roster(t, inst)

	// Splitting one duty each zeroes the spread; stacking both on one
	// member would cost 480 spread for the same two worked days.
	require.Equal(t, solve.StatusOptimal, res.Status)
	require.Equal(t, float64(2), res.Objective)
	require.Equal(t, int64(0), res.Breakdown.FairnessSpread.Value)
	require.Len(t, res.ByCrew["CA1"], 1)
	require.Len(t, res.ByCrew["CA2"], 1)
}
