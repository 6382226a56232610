// Package model_test - build validation, variable inventory and
// determinism checks for the full rostering model.
package model_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"

	"github.com/katalvlaran/crewsat/instance"
	"github.com/katalvlaran/crewsat/model"
	"github.com/katalvlaran/crewsat/preflight"
)

// pairInstance builds two interchangeable captains and two overlapping
// duties, so every pair is eligible and the duties conflict.
func pairInstance() instance.Instance {
	sc := instance.DefaultScenario()
	sc.Weights = instance.Weights{
		FairnessSpread:      1,
		WorkedDays:          1,
		OffRequest:          1,
		WeeklyRestShortfall: 1,
		LateToEarly:         1,
	}

	return instance.Instance{
		Crew: []instance.CrewMember{
			{ID: "C1", Role: instance.RoleCaptain, Base: "VIE", QualifiedTypes: []string{"A320"}, MaxMinutes: 3000},
			{ID: "C2", Role: instance.RoleCaptain, Base: "VIE", QualifiedTypes: []string{"A320"}, MaxMinutes: 3000},
		},
		Duties: []instance.Duty{
			{ID: "D1", Day: 1, StartMin: 480, EndMin: 720, Base: "VIE", AircraftType: "A320",
				Coverage: map[instance.Role]int{instance.RoleCaptain: 1}},
			{ID: "D2", Day: 1, StartMin: 600, EndMin: 840, Base: "VIE", AircraftType: "A320",
				Coverage: map[instance.Role]int{instance.RoleCaptain: 1}},
		},
		Scenario:    sc,
		OffRequests: []instance.OffRequest{{CrewID: "C2", Day: 1, Penalty: 5}},
	}
}

func preflightOf(inst instance.Instance) (map[preflight.Pair]bool, []preflight.DutyPair) {
	return preflight.EligiblePairs(inst.Crew, inst.Duties),
		preflight.ConflictPairs(inst.Duties, inst.Scenario.MinRestMinutes)
}

func TestBuildRostering_InputValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*instance.Instance)
		want   error
	}{
		{name: "ZeroHorizon", mutate: func(in *instance.Instance) { in.Scenario.HorizonDays = 0 }, want: model.ErrBadHorizon},
		{name: "NoCrew", mutate: func(in *instance.Instance) { in.Crew = nil }, want: model.ErrNoCrew},
		{name: "NegativeRest", mutate: func(in *instance.Instance) { in.Scenario.MinRestMinutes = -1 }, want: model.ErrBadScenario},
		{name: "NegativeWindow", mutate: func(in *instance.Instance) { in.Scenario.MaxConsecutiveWorkDays = -1 }, want: model.ErrBadScenario},
		{name: "NegativeRestDays", mutate: func(in *instance.Instance) { in.Scenario.MinRestDaysPerWeek = -1 }, want: model.ErrBadScenario},
		{name: "DutyDayZero", mutate: func(in *instance.Instance) { in.Duties[0].Day = 0 }, want: model.ErrDayOutOfRange},
		{name: "DutyDayPastHorizon", mutate: func(in *instance.Instance) { in.Duties[0].Day = 8 }, want: model.ErrDayOutOfRange},
		{name: "DutyInvertedWindow", mutate: func(in *instance.Instance) { in.Duties[0].EndMin = 480 }, want: model.ErrBadDutyTime},
		{name: "DutyPastMidnight", mutate: func(in *instance.Instance) { in.Duties[0].EndMin = 1441 }, want: model.ErrBadDutyTime},
		{name: "OffRequestUnknownCrew", mutate: func(in *instance.Instance) { in.OffRequests[0].CrewID = "ghost" }, want: model.ErrUnknownCrew},
		{name: "OffRequestDayPastHorizon", mutate: func(in *instance.Instance) { in.OffRequests[0].Day = 9 }, want: model.ErrDayOutOfRange},
		{name: "OffRequestNegativePenalty", mutate: func(in *instance.Instance) { in.OffRequests[0].Penalty = -1 }, want: model.ErrNegativePenalty},
		{name: "NegativeWeight", mutate: func(in *instance.Instance) { in.Scenario.Weights.WorkedDays = -1 }, want: model.ErrNegativeWeight},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			inst := pairInstance()
			tc.mutate(&inst)
			eligible, conflicts := preflightOf(inst)

			_, err := model.BuildRostering(inst, eligible, conflicts)
			if !errors.Is(err, tc.want) {
				t.Fatalf("BuildRostering error = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestBuildRostering_VariableInventory(t *testing.T) {
	inst := pairInstance()
	eligible, conflicts := preflightOf(inst)
	require.Len(t, eligible, 4)
	require.Equal(t, []preflight.DutyPair{{A: "D1", B: "D2"}}, conflicts)

	r, err := model.BuildRostering(inst, eligible, conflicts)
	require.NoError(t, err)

	// One assignment var per eligible pair, one indicator per crew and day,
	// one total per member.
	require.Len(t, r.X, 4)
	require.Len(t, r.Work, len(inst.Crew)*inst.Scenario.HorizonDays)
	require.Len(t, r.TotalMinutes, len(inst.Crew))
	for _, c := range inst.Crew {
		require.Contains(t, r.TotalMinutes, c.ID)
	}

	m, err := r.Proto()
	require.NoError(t, err)
	require.NotNil(t, m.GetObjective(), "full model must carry an objective")
	require.NotEmpty(t, m.GetConstraints())

	// Exact census of the fixture: 4 assignments, 14 work indicators,
	// 2 totals, max+min loads, worked days, preference cost, 2 weekly
	// shortfalls plus their sum, 28 late/early indicators, 12 transition
	// pairs plus their sum.
	require.Len(t, m.GetVariables(), 68)
}

func TestBuildRostering_Deterministic(t *testing.T) {
	inst := pairInstance()
	eligible, conflicts := preflightOf(inst)

	first, err := model.BuildRostering(inst, eligible, conflicts)
	require.NoError(t, err)
	second, err := model.BuildRostering(inst, eligible, conflicts)
	require.NoError(t, err)

	m1, err := first.Proto()
	require.NoError(t, err)
	m2, err := second.Proto()
	require.NoError(t, err)
	require.True(t, proto.Equal(m1, m2), "two builds over identical input must emit identical protos")
}

func TestBuildRostering_SkipsIneligiblePairs(t *testing.T) {
	inst := pairInstance()
	// Second member loses the type rating, halving the assignment grid.
	inst.Crew[1].QualifiedTypes = []string{"B738"}
	eligible, conflicts := preflightOf(inst)
	require.Len(t, eligible, 2)

	r, err := model.BuildRostering(inst, eligible, conflicts)
	require.NoError(t, err)
	require.Len(t, r.X, 2)
	for pair := range r.X {
		require.Equal(t, "C1", pair.CrewID)
	}
	// Indicators still exist for the idle member; linkage pins them false.
	require.Len(t, r.Work, len(inst.Crew)*inst.Scenario.HorizonDays)
}
