// Package solve - the coverage feasibility probe.
package solve

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/or-tools/ortools/sat/go/cpmodel"

	"github.com/katalvlaran/crewsat/model"
	"github.com/katalvlaran/crewsat/preflight"
)

// Probe is the outcome of a feasibility run.
type Probe struct {
	Status   Status
	WallTime time.Duration

	// ByDuty maps duty id to one witness staffing (sorted crew ids);
	// empty unless the status carries a solution.
	ByDuty map[string][]string
}

// Feasibility solves the satisfaction-only model.
//
// Contract: a Solved status proves the hard coverage and rest-conflict
// rules admit some staffing; it does not promise the full model with
// workload caps and window rules is feasible too.
func Feasibility(f *model.Feasibility, opts Options) (*Probe, error) {
	m, err := f.Proto()
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

	p := &Probe{Status: st, WallTime: wallDuration(resp)}
	if !st.Solved() {
		return p, nil
	}

	p.ByDuty = make(map[string][]string, len(f.Inst.Duties))
	for _, c := range f.Inst.Crew {
		for _, d := range f.Inst.Duties {
			xv, ok := f.X[preflight.Pair{CrewID: c.ID, DutyID: d.ID}]
			if ok && cpmodel.SolutionBooleanValue(resp, xv) {
				p.ByDuty[d.ID] = append(p.ByDuty[d.ID], c.ID)
			}
		}
	}
	for _, d := range f.Inst.Duties {
		sort.Strings(p.ByDuty[d.ID])
	}

	return p, nil
}
