// Package solve - result types and response extraction with cross-checks.
package solve

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/google/or-tools/ortools/sat/go/cpmodel"

	cmpb "github.com/google/or-tools/ortools/sat/proto/cpmodel"

	"github.com/katalvlaran/crewsat/instance"
	"github.com/katalvlaran/crewsat/model"
	"github.com/katalvlaran/crewsat/preflight"
)

// Term is one weighted component of the objective.
type Term struct {
	Weight       int64 `json:"weight"`
	Value        int64 `json:"value"`
	Contribution int64 `json:"contribution"`
}

// Breakdown itemizes the objective by penalty family. Contributions sum to
// the objective exactly.
type Breakdown struct {
	FairnessSpread      Term `json:"fairness_spread"`
	WorkedDays          Term `json:"worked_days"`
	OffRequest          Term `json:"off_request"`
	WeeklyRestShortfall Term `json:"weekly_rest_shortfall"`
	LateToEarly         Term `json:"late_to_early"`
}

// ObjectiveFromTerms sums the term contributions.
func (b Breakdown) ObjectiveFromTerms() int64 {
	return b.FairnessSpread.Contribution +
		b.WorkedDays.Contribution +
		b.OffRequest.Contribution +
		b.WeeklyRestShortfall.Contribution +
		b.LateToEarly.Contribution
}

// CrewKPI aggregates one member's schedule. Week slices are indexed by
// week position in instance.Weeks order.
type CrewKPI struct {
	TotalMinutes    int   `json:"total_minutes"`
	WorkedDays      int   `json:"worked_days"`
	RestDaysByWeek  []int `json:"rest_days_by_week"`
	ShortfallByWeek []int `json:"shortfall_by_week"`
}

// Result is a solved roster in plain Go data.
//
// All integer figures are recomputed from the assignment variables and
// verified against the solver's own aggregates before Result is returned.
type Result struct {
	Status   Status
	WallTime time.Duration

	// Objective is the engine-reported objective value; zero when the
	// status carries no solution.
	Objective float64
	// Breakdown itemizes the objective; populated only when Solved.
	Breakdown Breakdown

	// ByCrew maps crew id to its assigned duty ids, sorted.
	ByCrew map[string][]string
	// ByDuty maps duty id to its assigned crew ids, sorted.
	ByDuty map[string][]string
	// Worked is the per-(crew, day) work grid.
	Worked map[model.WorkKey]bool
	// Crews holds per-member KPIs.
	Crews map[string]CrewKPI
}

// Roster assembles, solves and extracts the full rostering model.
//
// Contract: a non-Solved status (INFEASIBLE, UNKNOWN) is a valid outcome,
// returned with nil error; assignment fields stay empty then. Errors are
// reserved for broken models and inconsistent responses.
func Roster(r *model.Rostering, opts Options) (*Result, error) {
	m, err := r.Proto()
	if err != nil {
		return nil, fmt.Errorf("solve: assemble model: %w", err)
	}
	resp, err := cpmodel.SolveCpModelWithParameters(m, opts.params())
	if err != nil {
		return nil, fmt.Errorf("solve: %w", err)
	}
	st, err := statusOf(resp)
	if err != nil {
		return nil, err
	}

	res := &Result{Status: st, WallTime: wallDuration(resp)}
	if !st.Solved() {
		return res, nil
	}
	res.Objective = resp.GetObjectiveValue()
	if err = extractRoster(r, resp, res); err != nil {
		return nil, err
	}

	return res, nil
}

// extractRoster fills the assignment fields of res from resp, recomputing
// every aggregate from the assignments and comparing it with the solver's
// value for the matching model variable.
func extractRoster(r *model.Rostering, resp *cmpb.CpSolverResponse, res *Result) error {
	var (
		inst  = r.Inst
		h     = inst.Scenario.HorizonDays
		weeks = instance.Weeks(h)

		minutes = make(map[string]int, len(inst.Crew))
		worked  = make(map[model.WorkKey]bool, len(inst.Crew)*h)
		byCrew  = make(map[string][]string, len(inst.Crew))
		byDuty  = make(map[string][]string, len(inst.Duties))
	)

	// Assignment-level facts, derived from x alone.
	for _, c := range inst.Crew {
		byCrew[c.ID] = []string{}
		for _, d := range inst.Duties {
			xv, ok := r.X[preflight.Pair{CrewID: c.ID, DutyID: d.ID}]
			if !ok || !cpmodel.SolutionBooleanValue(resp, xv) {
				continue
			}
			byCrew[c.ID] = append(byCrew[c.ID], d.ID)
			byDuty[d.ID] = append(byDuty[d.ID], c.ID)
			minutes[c.ID] += d.DurationMin()
			worked[model.WorkKey{CrewID: c.ID, Day: d.Day}] = true
		}
		sort.Strings(byCrew[c.ID])
	}
	for _, d := range inst.Duties {
		sort.Strings(byDuty[d.ID])
	}

	// Indicator and total variables must equal what the assignments imply.
	for _, c := range inst.Crew {
		for day := 1; day <= h; day++ {
			key := model.WorkKey{CrewID: c.ID, Day: day}
			if cpmodel.SolutionBooleanValue(resp, r.Work[key]) != worked[key] {
				return fmt.Errorf("work[%s,%d]: %w", c.ID, day, ErrInconsistent)
			}
		}
		if got := cpmodel.SolutionIntegerValue(resp, r.TotalMinutes[c.ID]); got != int64(minutes[c.ID]) {
			return fmt.Errorf("total_minutes[%s]=%d, derived %d: %w", c.ID, got, minutes[c.ID], ErrInconsistent)
		}
	}

	// Per-member KPIs and the derived penalty aggregates.
	var (
		crews                  = make(map[string]CrewKPI, len(inst.Crew))
		maxLoad, minLoad       int64
		workedDays, weeklyFall int64
		prefCost, lateToEarly  int64
	)
	minLoad = math.MaxInt64
	for _, c := range inst.Crew {
		kpi := CrewKPI{
			TotalMinutes:    minutes[c.ID],
			RestDaysByWeek:  make([]int, len(weeks)),
			ShortfallByWeek: make([]int, len(weeks)),
		}
		for day := 1; day <= h; day++ {
			if worked[model.WorkKey{CrewID: c.ID, Day: day}] {
				kpi.WorkedDays++
			}
		}
		workedDays += int64(kpi.WorkedDays)
		for i, wk := range weeks {
			rest := wk.Len()
			for day := wk.StartDay; day <= wk.EndDay; day++ {
				if worked[model.WorkKey{CrewID: c.ID, Day: day}] {
					rest--
				}
			}
			kpi.RestDaysByWeek[i] = rest
			if short := inst.Scenario.MinRestDaysPerWeek - rest; short > 0 {
				kpi.ShortfallByWeek[i] = short
				weeklyFall += int64(short)
			}
		}
		lateToEarly += lateToEarlyCount(inst, byCrew[c.ID])
		crews[c.ID] = kpi

		if int64(kpi.TotalMinutes) > maxLoad {
			maxLoad = int64(kpi.TotalMinutes)
		}
		if int64(kpi.TotalMinutes) < minLoad {
			minLoad = int64(kpi.TotalMinutes)
		}
	}
	for _, req := range inst.OffRequests {
		if worked[model.WorkKey{CrewID: req.CrewID, Day: req.Day}] {
			prefCost += req.Penalty
		}
	}

	// The solver's aggregates must match the derivation.
	checks := []struct {
		name    string
		v       cpmodel.IntVar
		derived int64
	}{
		{name: "max_load", v: r.MaxLoad, derived: maxLoad},
		{name: "min_load", v: r.MinLoad, derived: minLoad},
		{name: "worked_days", v: r.WorkedDays, derived: workedDays},
		{name: "preference_cost", v: r.PreferenceCost, derived: prefCost},
		{name: "weekly_rest_shortfall", v: r.WeeklyRestShortfall, derived: weeklyFall},
		{name: "late_to_early_total", v: r.LateToEarlyTotal, derived: lateToEarly},
	}
	for _, ck := range checks {
		if got := cpmodel.SolutionIntegerValue(resp, ck.v); got != ck.derived {
			return fmt.Errorf("%s=%d, derived %d: %w", ck.name, got, ck.derived, ErrInconsistent)
		}
	}

	w := inst.Scenario.Weights
	res.Breakdown = Breakdown{
		FairnessSpread:      term(w.FairnessSpread, maxLoad-minLoad),
		WorkedDays:          term(w.WorkedDays, workedDays),
		OffRequest:          term(w.OffRequest, prefCost),
		WeeklyRestShortfall: term(w.WeeklyRestShortfall, weeklyFall),
		LateToEarly:         term(w.LateToEarly, lateToEarly),
	}
	if int64(math.Round(res.Objective)) != res.Breakdown.ObjectiveFromTerms() {
		return fmt.Errorf("objective=%v, terms sum to %d: %w",
			res.Objective, res.Breakdown.ObjectiveFromTerms(), ErrInconsistent)
	}

	res.ByCrew = byCrew
	res.ByDuty = byDuty
	res.Worked = worked
	res.Crews = crews

	return nil
}

// lateToEarlyCount counts, over one member's assigned duty ids, the days
// where a late-ending duty is followed by an early-starting one next day.
func lateToEarlyCount(inst instance.Instance, dutyIDs []string) int64 {
	var (
		h     = inst.Scenario.HorizonDays
		late  = make([]bool, h+2)
		early = make([]bool, h+2)
		n     int64
	)
	assigned := make(map[string]bool, len(dutyIDs))
	for _, id := range dutyIDs {
		assigned[id] = true
	}
	for _, d := range inst.Duties {
		if !assigned[d.ID] {
			continue
		}
		if d.EndsLate(inst.Scenario.LateEndThresholdMin) {
			late[d.Day] = true
		}
		if d.StartsEarly(inst.Scenario.EarlyStartThresholdMin) {
			early[d.Day] = true
		}
	}
	for day := 1; day < h; day++ {
		if late[day] && early[day+1] {
			n++
		}
	}

	return n
}

func term(weight, value int64) Term {
	return Term{Weight: weight, Value: value, Contribution: weight * value}
}
