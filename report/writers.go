// Package report - file writers for the report bundle.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jszwec/csvutil"

	"github.com/katalvlaran/crewsat/instance"
	"github.com/katalvlaran/crewsat/solve"
)

// File names of the report bundle inside the output directory.
const (
	WorkMatrixFile  = "work_matrix.csv"
	WorkloadsFile   = "workloads.csv"
	WeeklyRestFile  = "weekly_rest.csv"
	OffRequestsFile = "off_requests.csv"
	SolutionFile    = "solution.json"
	BreakdownFile   = "objective_breakdown.json"
)

// Solution is the solution.json document.
type Solution struct {
	Status             string                   `json:"status"`
	Objective          float64                  `json:"objective"`
	ObjectiveFromTerms int64                    `json:"objective_from_terms"`
	WallTimeSeconds    float64                  `json:"wall_time_seconds"`
	Assignments        map[string][]string      `json:"assignments"`
	DutyStaffing       map[string][]string      `json:"duty_staffing"`
	CrewKPIs           map[string]solve.CrewKPI `json:"crew_kpis"`
}

// BreakdownDoc is the objective_breakdown.json document.
type BreakdownDoc struct {
	Terms              solve.Breakdown `json:"terms"`
	Objective          float64         `json:"objective"`
	ObjectiveFromTerms int64           `json:"objective_from_terms"`
}

// Write builds the frames and persists the whole bundle under dir,
// creating the directory as needed. Files are overwritten.
func Write(dir string, inst instance.Instance, res *solve.Result) error {
	frames, err := Build(inst, res)
	if err != nil {
		return err
	}
	if err = os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("report: create %s: %w", dir, err)
	}

	if err = writeCSV(filepath.Join(dir, WorkMatrixFile), frames.WorkMatrix); err != nil {
		return err
	}
	if err = writeCSV(filepath.Join(dir, WorkloadsFile), frames.Workloads); err != nil {
		return err
	}
	if err = writeCSV(filepath.Join(dir, WeeklyRestFile), frames.WeeklyRest); err != nil {
		return err
	}
	if err = writeCSV(filepath.Join(dir, OffRequestsFile), frames.OffRequests); err != nil {
		return err
	}

	sol := Solution{
		Status:             res.Status.String(),
		Objective:          res.Objective,
		ObjectiveFromTerms: res.Breakdown.ObjectiveFromTerms(),
		WallTimeSeconds:    res.WallTime.Seconds(),
		Assignments:        res.ByCrew,
		DutyStaffing:       res.ByDuty,
		CrewKPIs:           res.Crews,
	}
	if err = writeJSON(filepath.Join(dir, SolutionFile), sol); err != nil {
		return err
	}

	return writeJSON(filepath.Join(dir, BreakdownFile), BreakdownDoc{
		Terms:              res.Breakdown,
		Objective:          res.Objective,
		ObjectiveFromTerms: res.Breakdown.ObjectiveFromTerms(),
	})
}

// writeCSV marshals rows through their csv tags; an empty slice still
// yields the header line.
func writeCSV(path string, rows any) error {
	b, err := csvutil.Marshal(rows)
	if err != nil {
		return fmt.Errorf("report: marshal %s: %w", filepath.Base(path), err)
	}
	if err = os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("report: write %s: %w", path, err)
	}

	return nil
}

func writeJSON(path string, doc any) error {
	b, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("report: marshal %s: %w", filepath.Base(path), err)
	}
	b = append(b, '\n')
	if err = os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("report: write %s: %w", path, err)
	}

	return nil
}
