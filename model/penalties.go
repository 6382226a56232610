// Package model - soft-penalty encodings and the weighted objective.
//
// Every aggregate is tied to the assignment variables by exact equalities,
// so its solved value can be recomputed from the assignment alone and the
// two must agree even on non-optimal feasible solutions.
package model

import (
	"github.com/google/or-tools/ortools/sat/go/cpmodel"

	"github.com/katalvlaran/crewsat/instance"
	"github.com/katalvlaran/crewsat/preflight"
)

// encodeFairnessBounds introduces MaxLoad and MinLoad over the per-member
// totals. Their spread (MaxLoad - MinLoad) is the fairness measure.
func (b *rosterBuild) encodeFairnessBounds() {
	var (
		loads = make([]cpmodel.LinearArgument, 0, len(b.inst.Crew))
		ub    int64
	)
	for _, c := range b.inst.Crew {
		loads = append(loads, b.out.TotalMinutes[c.ID])
		if int64(c.MaxMinutes) > ub {
			ub = int64(c.MaxMinutes)
		}
	}
	b.out.MaxLoad = b.cp.NewIntVar(0, ub)
	b.cp.AddMaxEquality(b.out.MaxLoad, loads...)
	b.out.MinLoad = b.cp.NewIntVar(0, ub)
	b.cp.AddMinEquality(b.out.MinLoad, loads...)
}

// encodeWorkedDays ties WorkedDays to the count of true work indicators
// across all members and days.
func (b *rosterBuild) encodeWorkedDays() {
	expr := cpmodel.NewLinearExpr()
	for _, c := range b.inst.Crew {
		for day := 1; day <= b.inst.Scenario.HorizonDays; day++ {
			expr.Add(b.out.Work[WorkKey{CrewID: c.ID, Day: day}])
		}
	}
	b.out.WorkedDays = b.cp.NewIntVar(0, int64(len(b.inst.Crew)*b.inst.Scenario.HorizonDays))
	b.cp.AddEquality(b.out.WorkedDays, expr)
}

// encodePreferenceCost ties PreferenceCost to the penalty-weighted sum of
// work indicators on requested-off days. Days without requests cost nothing.
func (b *rosterBuild) encodePreferenceCost() {
	var (
		expr = cpmodel.NewLinearExpr()
		ub   int64
	)
	for _, r := range b.inst.OffRequests {
		expr.AddTerm(b.out.Work[WorkKey{CrewID: r.CrewID, Day: r.Day}], r.Penalty)
		ub += r.Penalty
	}
	b.out.PreferenceCost = b.cp.NewIntVar(0, ub)
	b.cp.AddEquality(b.out.PreferenceCost, expr)
}

// encodeWeeklyRest measures, per member and week, how far the rest-day
// count falls below min_rest_days_per_week, and sums the shortfalls.
//
// With R required rest days over a week of length L and worked days W,
// the shortfall is max(0, R - (L - W)) = max(0, W + R - L); a partial
// trailing week uses its actual length.
func (b *rosterBuild) encodeWeeklyRest() {
	var (
		weeks = instance.Weeks(b.inst.Scenario.HorizonDays)
		rest  = int64(b.inst.Scenario.MinRestDaysPerWeek)
		terms = make([]cpmodel.LinearArgument, 0, len(b.inst.Crew)*len(weeks))
		expr  *cpmodel.LinearExpr
		short cpmodel.IntVar
	)
	for _, c := range b.inst.Crew {
		for _, wk := range weeks {
			expr = cpmodel.NewLinearExpr().AddConstant(rest - int64(wk.Len()))
			for day := wk.StartDay; day <= wk.EndDay; day++ {
				expr.Add(b.out.Work[WorkKey{CrewID: c.ID, Day: day}])
			}
			short = b.cp.NewIntVar(0, rest)
			b.cp.AddMaxEquality(short, expr, cpmodel.NewConstant(0))
			terms = append(terms, short)
		}
	}
	b.out.WeeklyRestShortfall = b.cp.NewIntVar(0, rest*int64(len(terms)))
	b.cp.AddEquality(b.out.WeeklyRestShortfall, cpmodel.NewLinearExpr().AddSum(terms...))
}

// encodeFatigueChains counts late-to-early transitions: for each member and
// consecutive day pair, a late-ending assignment on the first day followed
// by an early-starting one on the next. The horizon's last day has no
// successor and contributes nothing.
func (b *rosterBuild) encodeFatigueChains() {
	var (
		h     = b.inst.Scenario.HorizonDays
		late  = b.inst.Scenario.LateEndThresholdMin
		early = b.inst.Scenario.EarlyStartThresholdMin
		pairs = make([]cpmodel.LinearArgument, 0, len(b.inst.Crew)*(h-1))
		cands []cpmodel.BoolVar
		lw    []cpmodel.BoolVar
		ew    []cpmodel.BoolVar
		v     cpmodel.BoolVar
	)
	for _, c := range b.inst.Crew {
		lw = make([]cpmodel.BoolVar, h+1)
		ew = make([]cpmodel.BoolVar, h+1)
		for day := 1; day <= h; day++ {
			cands = cands[:0]
			for _, d := range b.dutiesByDay[day] {
				if !d.EndsLate(late) {
					continue
				}
				if xv, ok := b.out.X[preflight.Pair{CrewID: c.ID, DutyID: d.ID}]; ok {
					cands = append(cands, xv)
				}
			}
			lw[day] = b.cp.NewBoolVar()
			b.linkOr(lw[day], cands)

			cands = cands[:0]
			for _, d := range b.dutiesByDay[day] {
				if !d.StartsEarly(early) {
					continue
				}
				if xv, ok := b.out.X[preflight.Pair{CrewID: c.ID, DutyID: d.ID}]; ok {
					cands = append(cands, xv)
				}
			}
			ew[day] = b.cp.NewBoolVar()
			b.linkOr(ew[day], cands)
		}
		for day := 1; day < h; day++ {
			// v equals lw[day] AND ew[day+1], linked in both directions.
			v = b.cp.NewBoolVar()
			b.cp.AddImplication(v, lw[day])
			b.cp.AddImplication(v, ew[day+1])
			b.cp.AddBoolAnd(v).OnlyEnforceIf(lw[day], ew[day+1])
			pairs = append(pairs, v)
		}
	}
	b.out.LateToEarlyTotal = b.cp.NewIntVar(0, int64(len(pairs)))
	b.cp.AddEquality(b.out.LateToEarlyTotal, cpmodel.NewLinearExpr().AddSum(pairs...))
}

// setObjective minimizes the weighted sum of all penalty aggregates. Every
// term is added unconditionally; a zero weight simply contributes nothing,
// keeping the breakdown shape identical across scenarios.
func (b *rosterBuild) setObjective() {
	w := b.inst.Scenario.Weights
	obj := cpmodel.NewLinearExpr().
		AddTerm(b.out.MaxLoad, w.FairnessSpread).
		AddTerm(b.out.MinLoad, -w.FairnessSpread).
		AddTerm(b.out.WorkedDays, w.WorkedDays).
		AddTerm(b.out.PreferenceCost, w.OffRequest).
		AddTerm(b.out.WeeklyRestShortfall, w.WeeklyRestShortfall).
		AddTerm(b.out.LateToEarlyTotal, w.LateToEarly)
	b.cp.Minimize(obj)
}
