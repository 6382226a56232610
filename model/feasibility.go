// Package model - reduced satisfaction model for quick feasibility probes.
package model

import (
	"fmt"

	"github.com/google/or-tools/ortools/sat/go/cpmodel"

	cmpb "github.com/google/or-tools/ortools/sat/proto/cpmodel"

	"github.com/katalvlaran/crewsat/instance"
	"github.com/katalvlaran/crewsat/preflight"
)

// Feasibility is the hard-rule core without penalties or an objective:
// assignment variables, exact coverage and conflict exclusion. It answers
// "can this instance be staffed at all" much faster than the full model.
type Feasibility struct {
	// Inst is the instance the model was built from.
	Inst instance.Instance

	// X holds the assignment variable of every eligible (crew, duty) pair.
	X map[preflight.Pair]cpmodel.BoolVar

	cp *cpmodel.Builder
}

// Proto assembles the CP-SAT model proto for solving.
func (f *Feasibility) Proto() (*cmpb.CpModelProto, error) { return f.cp.Model() }

// BuildFeasibility translates the instance into the satisfaction-only model.
//
// Contract: same preflight inputs as BuildRostering; workload caps, window
// rules and penalties are deliberately absent, so SAT here is necessary but
// not sufficient for the full model.
//
// Complexity: O(C·D + P·C) constraint emission.
func BuildFeasibility(inst instance.Instance, eligible map[preflight.Pair]bool, conflicts []preflight.DutyPair) (*Feasibility, error) {
	if inst.Scenario.HorizonDays < 1 {
		return nil, fmt.Errorf("horizon_days=%d: %w", inst.Scenario.HorizonDays, ErrBadHorizon)
	}
	if len(inst.Crew) == 0 {
		return nil, ErrNoCrew
	}
	if err := checkDuties(inst); err != nil {
		return nil, err
	}

	var (
		cp = cpmodel.NewCpModelBuilder()
		f  = &Feasibility{
			Inst: inst,
			X:    make(map[preflight.Pair]cpmodel.BoolVar, len(eligible)),
			cp:   cp,
		}
	)
	declareAssignments(cp, inst, eligible, f.X)
	addCoverageEquality(cp, inst, f.X)
	addConflictExclusion(cp, inst, conflicts, f.X)

	return f, nil
}
