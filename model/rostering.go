// Package model - decision variables and hard constraints of the full
// rostering model.
//
// Build order mirrors the dependency chain: assignment variables first,
// then coverage/conflict/workload rules over them, then the per-day work
// indicators and window caps, then the soft-penalty encodings (penalties.go)
// and the objective.
package model

import (
	"fmt"

	"github.com/google/or-tools/ortools/sat/go/cpmodel"

	cmpb "github.com/google/or-tools/ortools/sat/proto/cpmodel"

	"github.com/katalvlaran/crewsat/instance"
	"github.com/katalvlaran/crewsat/preflight"
)

// Rostering is the complete constraint-and-objective model plus handles to
// every variable the result extractor reads. Build once, solve once.
type Rostering struct {
	// Inst is the instance the model was built from; extraction and KPI
	// recomputation run against exactly this data.
	Inst instance.Instance

	// X holds the assignment variable of every eligible (crew, duty) pair;
	// an absent key means the pair is structurally excluded.
	X map[preflight.Pair]cpmodel.BoolVar
	// Work holds the per-(crew, day) worked indicator, OR-linked to X.
	Work map[WorkKey]cpmodel.BoolVar
	// TotalMinutes holds each member's assigned-minutes variable; its
	// domain [0, MaxMinutes] is the workload cap.
	TotalMinutes map[string]cpmodel.IntVar

	// Objective aggregates, each tied to X by exact linkage.
	MaxLoad             cpmodel.IntVar
	MinLoad             cpmodel.IntVar
	WorkedDays          cpmodel.IntVar
	PreferenceCost      cpmodel.IntVar
	WeeklyRestShortfall cpmodel.IntVar
	LateToEarlyTotal    cpmodel.IntVar

	cp *cpmodel.Builder
}

// Proto assembles the CP-SAT model proto for solving.
func (r *Rostering) Proto() (*cmpb.CpModelProto, error) { return r.cp.Model() }

// rosterBuild carries shared state across the build stages.
type rosterBuild struct {
	cp          *cpmodel.Builder
	inst        instance.Instance
	dutiesByDay [][]instance.Duty // index 1..HorizonDays, input order kept
	out         *Rostering
}

// BuildRostering translates the instance into the full CP-SAT model.
//
// Contract:
//   - eligible and conflicts must come from preflight over the same
//     instance; the builder trusts them and only instantiates x for pairs
//     present in eligible.
//   - Input invariants are re-checked cheaply and violations fail fast
//     with sentinels (ErrNoCrew, ErrDayOutOfRange, ErrUnknownCrew, ...).
//   - Structural infeasibility is not detected here; the solver reports it.
//
// Complexity: O(C·D + P·C + C·H·W) constraint emission where W is the
// window length; model size is linear in the emitted variables.
func BuildRostering(inst instance.Instance, eligible map[preflight.Pair]bool, conflicts []preflight.DutyPair) (*Rostering, error) {
	if err := checkRosteringInput(inst); err != nil {
		return nil, err
	}

	var (
		cp = cpmodel.NewCpModelBuilder()
		b  = &rosterBuild{
			cp:          cp,
			inst:        inst,
			dutiesByDay: groupDutiesByDay(inst),
			out: &Rostering{
				Inst:         inst,
				X:            make(map[preflight.Pair]cpmodel.BoolVar, len(eligible)),
				Work:         make(map[WorkKey]cpmodel.BoolVar, len(inst.Crew)*inst.Scenario.HorizonDays),
				TotalMinutes: make(map[string]cpmodel.IntVar, len(inst.Crew)),
				cp:           cp,
			},
		}
	)

	// Hard model: variables and inviolable rules.
	declareAssignments(cp, inst, eligible, b.out.X)
	addCoverageEquality(cp, inst, b.out.X)
	addConflictExclusion(cp, inst, conflicts, b.out.X)
	b.linkWorkIndicators()
	b.addWorkloadTotals()
	b.addConsecutiveDayCap()

	// Soft model: measurable violations and the weighted objective.
	b.encodeFairnessBounds()
	b.encodeWorkedDays()
	b.encodePreferenceCost()
	b.encodeWeeklyRest()
	b.encodeFatigueChains()
	b.setObjective()

	return b.out, nil
}

// checkRosteringInput re-validates the invariants the build depends on.
func checkRosteringInput(inst instance.Instance) error {
	if inst.Scenario.HorizonDays < 1 {
		return fmt.Errorf("horizon_days=%d: %w", inst.Scenario.HorizonDays, ErrBadHorizon)
	}
	if len(inst.Crew) == 0 {
		return ErrNoCrew
	}
	if inst.Scenario.MinRestMinutes < 0 {
		return fmt.Errorf("min_rest_minutes=%d: %w", inst.Scenario.MinRestMinutes, ErrBadScenario)
	}
	if inst.Scenario.MaxConsecutiveWorkDays < 0 {
		return fmt.Errorf("max_consecutive_work_days=%d: %w", inst.Scenario.MaxConsecutiveWorkDays, ErrBadScenario)
	}
	if inst.Scenario.MinRestDaysPerWeek < 0 {
		return fmt.Errorf("min_rest_days_per_week=%d: %w", inst.Scenario.MinRestDaysPerWeek, ErrBadScenario)
	}
	if err := checkDuties(inst); err != nil {
		return err
	}
	if err := checkOffRequests(inst); err != nil {
		return err
	}

	return checkWeights(inst.Scenario.Weights)
}

func checkDuties(inst instance.Instance) error {
	for _, d := range inst.Duties {
		if d.Day < 1 || d.Day > inst.Scenario.HorizonDays {
			return fmt.Errorf("duty %q day=%d: %w", d.ID, d.Day, ErrDayOutOfRange)
		}
		if d.StartMin < 0 || d.EndMin <= d.StartMin || d.EndMin > instance.MinutesPerDay {
			return fmt.Errorf("duty %q start=%d end=%d: %w", d.ID, d.StartMin, d.EndMin, ErrBadDutyTime)
		}
	}

	return nil
}

func checkOffRequests(inst instance.Instance) error {
	known := make(map[string]bool, len(inst.Crew))
	for _, c := range inst.Crew {
		known[c.ID] = true
	}
	for _, r := range inst.OffRequests {
		if !known[r.CrewID] {
			return fmt.Errorf("off request crew %q: %w", r.CrewID, ErrUnknownCrew)
		}
		if r.Day < 1 || r.Day > inst.Scenario.HorizonDays {
			return fmt.Errorf("off request (crew %q, day %d): %w", r.CrewID, r.Day, ErrDayOutOfRange)
		}
		if r.Penalty < 0 {
			return fmt.Errorf("off request (crew %q, day %d) penalty=%d: %w", r.CrewID, r.Day, r.Penalty, ErrNegativePenalty)
		}
	}

	return nil
}

func checkWeights(w instance.Weights) error {
	for _, v := range []int64{w.FairnessSpread, w.WorkedDays, w.OffRequest, w.WeeklyRestShortfall, w.LateToEarly} {
		if v < 0 {
			return fmt.Errorf("weight=%d: %w", v, ErrNegativeWeight)
		}
	}

	return nil
}

// groupDutiesByDay indexes duties by day, preserving input order per day.
func groupDutiesByDay(inst instance.Instance) [][]instance.Duty {
	byDay := make([][]instance.Duty, inst.Scenario.HorizonDays+1)
	for _, d := range inst.Duties {
		byDay[d.Day] = append(byDay[d.Day], d)
	}

	return byDay
}

// declareAssignments creates x[c,d] for eligible pairs only, iterating the
// input slices so variable indices are deterministic.
func declareAssignments(cp *cpmodel.Builder, inst instance.Instance, eligible map[preflight.Pair]bool, x map[preflight.Pair]cpmodel.BoolVar) {
	var key preflight.Pair
	for _, c := range inst.Crew {
		for _, d := range inst.Duties {
			key = preflight.Pair{CrewID: c.ID, DutyID: d.ID}
			if eligible[key] {
				x[key] = cp.NewBoolVar()
			}
		}
	}
}

// addCoverageEquality pins each (duty, role) slot to its exact required
// count. A slot with zero candidate variables and a positive requirement
// becomes an unsatisfiable equality, which is the intended way structural
// under-coverage surfaces as INFEASIBLE.
func addCoverageEquality(cp *cpmodel.Builder, inst instance.Instance, x map[preflight.Pair]cpmodel.BoolVar) {
	var (
		expr     *cpmodel.LinearExpr
		required int
	)
	for _, d := range inst.Duties {
		for _, role := range instance.SortedCoverageRoles(d.Coverage) {
			required = d.Coverage[role]
			expr = cpmodel.NewLinearExpr()
			for _, c := range inst.Crew {
				if c.Role != role {
					continue
				}
				if xv, ok := x[preflight.Pair{CrewID: c.ID, DutyID: d.ID}]; ok {
					expr.Add(xv)
				}
			}
			cp.AddEquality(expr, cpmodel.NewConstant(int64(required)))
		}
	}
}

// addConflictExclusion forbids assigning both duties of a conflicting pair
// to one member. Pairs with no shared eligible member need no constraint.
func addConflictExclusion(cp *cpmodel.Builder, inst instance.Instance, conflicts []preflight.DutyPair, x map[preflight.Pair]cpmodel.BoolVar) {
	for _, pair := range conflicts {
		for _, c := range inst.Crew {
			xa, okA := x[preflight.Pair{CrewID: c.ID, DutyID: pair.A}]
			xb, okB := x[preflight.Pair{CrewID: c.ID, DutyID: pair.B}]
			if okA && okB {
				cp.AddAtMostOne(xa, xb)
			}
		}
	}
}

// linkWorkIndicators creates work[c,day] for every member and day and ties
// it to that day's assignment variables in both directions.
func (b *rosterBuild) linkWorkIndicators() {
	var (
		dayVars []cpmodel.BoolVar
		w       cpmodel.BoolVar
	)
	for _, c := range b.inst.Crew {
		for day := 1; day <= b.inst.Scenario.HorizonDays; day++ {
			dayVars = dayVars[:0]
			for _, d := range b.dutiesByDay[day] {
				if xv, ok := b.out.X[preflight.Pair{CrewID: c.ID, DutyID: d.ID}]; ok {
					dayVars = append(dayVars, xv)
				}
			}
			w = b.cp.NewBoolVar()
			b.out.Work[WorkKey{CrewID: c.ID, Day: day}] = w
			b.linkOr(w, dayVars)
		}
	}
}

// linkOr ties ind to OR(ops) in both directions: each operand implies the
// indicator, and the indicator enforces at least one operand. Zero operands
// pin it to false. A one-directional link would let minimization hold the
// indicator at whichever value the objective prefers; the reverse bound
// keeps every indicator equal to what the assignments actually imply.
func (b *rosterBuild) linkOr(ind cpmodel.BoolVar, ops []cpmodel.BoolVar) {
	if len(ops) == 0 {
		b.cp.AddEquality(ind, cpmodel.NewConstant(0))

		return
	}
	for _, op := range ops {
		b.cp.AddImplication(op, ind)
	}
	b.cp.AddBoolOr(ops...).OnlyEnforceIf(ind)
}

// addWorkloadTotals ties total_minutes[c] to the duration-weighted sum of
// the member's assignments; the variable domain enforces the cap.
func (b *rosterBuild) addWorkloadTotals() {
	var (
		expr *cpmodel.LinearExpr
		tm   cpmodel.IntVar
	)
	for _, c := range b.inst.Crew {
		expr = cpmodel.NewLinearExpr()
		for _, d := range b.inst.Duties {
			if xv, ok := b.out.X[preflight.Pair{CrewID: c.ID, DutyID: d.ID}]; ok {
				expr.AddTerm(xv, int64(d.DurationMin()))
			}
		}
		tm = b.cp.NewIntVar(0, int64(c.MaxMinutes))
		b.cp.AddEquality(tm, expr)
		b.out.TotalMinutes[c.ID] = tm
	}
}

// addConsecutiveDayCap bounds every sliding window of limit+1 days to at
// most limit worked days. A limit at or above the horizon emits nothing.
func (b *rosterBuild) addConsecutiveDayCap() {
	var (
		limit = b.inst.Scenario.MaxConsecutiveWorkDays
		h     = b.inst.Scenario.HorizonDays
		expr  *cpmodel.LinearExpr
	)
	for _, c := range b.inst.Crew {
		for start := 1; start+limit <= h; start++ {
			expr = cpmodel.NewLinearExpr()
			for day := start; day <= start+limit; day++ {
				expr.Add(b.out.Work[WorkKey{CrewID: c.ID, Day: day}])
			}
			b.cp.AddLessOrEqual(expr, cpmodel.NewConstant(int64(limit)))
		}
	}
}
