// Package batch - the sequential sweep runner and its result writers.
package batch

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jszwec/csvutil"

	"github.com/katalvlaran/crewsat/instance"
	"github.com/katalvlaran/crewsat/model"
	"github.com/katalvlaran/crewsat/preflight"
	"github.com/katalvlaran/crewsat/solve"
)

// Output file names of a sweep.
const (
	ResultsFile = "results.csv"
	SummaryFile = "summary.json"
)

// Outcome is one row of results.csv. Numeric KPI columns are zero when the
// variant did not reach a solution.
type Outcome struct {
	ScenarioID          string  `csv:"scenario_id"`
	ScenarioName        string  `csv:"scenario_name"`
	NChanges            int     `csv:"n_changes"`
	Status              string  `csv:"status"`
	Objective           float64 `csv:"objective"`
	ObjectiveFromTerms  int64   `csv:"objective_from_terms"`
	Spread              int64   `csv:"spread"`
	WorkedDays          int64   `csv:"worked_days"`
	PreferenceCost      int64   `csv:"preference_cost"`
	WeeklyRestShortfall int64   `csv:"weekly_rest_shortfall"`
	LateToEarlyTotal    int64   `csv:"late_to_early_total"`
	InstanceDir         string  `csv:"instance_dir"`
}

// Summary condenses one sweep. Objective figures are nil when no variant
// reached a solution.
type Summary struct {
	NTotal         int      `json:"n_total"`
	NFeasible      int      `json:"n_feasible"`
	FeasibleRate   float64  `json:"feasible_rate"`
	BestObjective  *float64 `json:"best_objective"`
	WorstObjective *float64 `json:"worst_objective"`
	AvgObjective   *float64 `json:"avg_objective"`
}

// Run loads every instance directory under dir in name order, solves each
// with opts, and returns one Outcome per directory. A directory without a
// meta.json is tagged by its base name with zero recorded changes.
//
// Solver verdicts, including INFEASIBLE and UNKNOWN, become rows; only
// broken directories and solver invocation failures abort the sweep.
func Run(dir string, opts solve.Options) ([]Outcome, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("batch: read %s: %w", dir, err)
	}

	var outcomes []Outcome
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		instDir := filepath.Join(dir, e.Name())
		oc, err := runOne(instDir, opts)
		if err != nil {
			return nil, fmt.Errorf("batch: %s: %w", instDir, err)
		}
		outcomes = append(outcomes, oc)
	}

	return outcomes, nil
}

func runOne(instDir string, opts solve.Options) (Outcome, error) {
	inst, err := instance.Load(instDir)
	if err != nil {
		return Outcome{}, err
	}
	meta := readMeta(instDir)

	eligible := preflight.EligiblePairs(inst.Crew, inst.Duties)
	conflicts := preflight.ConflictPairs(inst.Duties, inst.Scenario.MinRestMinutes)
	r, err := model.BuildRostering(inst, eligible, conflicts)
	if err != nil {
		return Outcome{}, err
	}
	res, err := solve.Roster(r, opts)
	if err != nil {
		return Outcome{}, err
	}

	oc := Outcome{
		ScenarioID:   meta.ID,
		ScenarioName: meta.Name,
		NChanges:     meta.NChanges,
		Status:       res.Status.String(),
		InstanceDir:  instDir,
	}
	if res.Status.Solved() {
		oc.Objective = res.Objective
		oc.ObjectiveFromTerms = res.Breakdown.ObjectiveFromTerms()
		oc.Spread = res.Breakdown.FairnessSpread.Value
		oc.WorkedDays = res.Breakdown.WorkedDays.Value
		oc.PreferenceCost = res.Breakdown.OffRequest.Value
		oc.WeeklyRestShortfall = res.Breakdown.WeeklyRestShortfall.Value
		oc.LateToEarlyTotal = res.Breakdown.LateToEarly.Value
	}

	return oc, nil
}

// readMeta falls back to the directory name for hand-made instance dirs.
func readMeta(instDir string) Meta {
	meta := Meta{ID: filepath.Base(instDir)}
	b, err := os.ReadFile(filepath.Join(instDir, MetaFile))
	if err != nil {
		return meta
	}
	if err = json.Unmarshal(b, &meta); err != nil {
		return Meta{ID: filepath.Base(instDir)}
	}

	return meta
}

// Summarize condenses outcomes into sweep-level figures. Solved statuses
// (OPTIMAL and FEASIBLE) count as feasible.
func Summarize(outcomes []Outcome) Summary {
	s := Summary{NTotal: len(outcomes)}
	var sum float64
	for _, oc := range outcomes {
		if oc.Status != solve.StatusOptimal.String() && oc.Status != solve.StatusFeasible.String() {
			continue
		}
		s.NFeasible++
		sum += oc.Objective
		if s.BestObjective == nil || oc.Objective < *s.BestObjective {
			v := oc.Objective
			s.BestObjective = &v
		}
		if s.WorstObjective == nil || oc.Objective > *s.WorstObjective {
			v := oc.Objective
			s.WorstObjective = &v
		}
	}
	if s.NTotal > 0 {
		s.FeasibleRate = float64(s.NFeasible) / float64(s.NTotal)
	}
	if s.NFeasible > 0 {
		avg := sum / float64(s.NFeasible)
		s.AvgObjective = &avg
	}

	return s
}

// WriteResults persists outcomes as results.csv at path.
func WriteResults(path string, outcomes []Outcome) error {
	b, err := csvutil.Marshal(outcomes)
	if err != nil {
		return fmt.Errorf("batch: marshal results: %w", err)
	}
	if err = os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("batch: write %s: %w", path, err)
	}

	return nil
}

// WriteSummary persists the summary as summary.json at path.
func WriteSummary(path string, s Summary) error {
	b, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("batch: marshal summary: %w", err)
	}
	b = append(b, '\n')
	if err = os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("batch: write %s: %w", path, err)
	}

	return nil
}
