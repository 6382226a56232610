// Package report - tabular frames derived from a solved roster.
package report

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/crewsat/instance"
	"github.com/katalvlaran/crewsat/model"
	"github.com/katalvlaran/crewsat/solve"
)

// ErrNotSolved indicates the result carries no assignment to report.
var ErrNotSolved = errors.New("report: result carries no solution")

// ErrMissingKPI indicates the result lacks a KPI entry for a crew member of
// the instance, a sign the two belong to different runs.
var ErrMissingKPI = errors.New("report: result does not match instance")

// WorkCell is one (crew, day) cell of the work matrix in long form.
// Worked is 0 or 1 so the column stays numeric for spreadsheet pivots.
type WorkCell struct {
	CrewID string `csv:"crew_id"`
	Day    int    `csv:"day"`
	Worked int    `csv:"worked"`
}

// WorkloadRow summarizes one member's load against the cap.
type WorkloadRow struct {
	CrewID       string `csv:"crew_id"`
	Role         string `csv:"role"`
	Base         string `csv:"base"`
	TotalMinutes int    `csv:"total_minutes"`
	MaxMinutes   int    `csv:"max_minutes"`
	WorkedDays   int    `csv:"worked_days"`
	Duties       int    `csv:"duties"`
}

// WeeklyRestRow is one member's rest accounting for one week.
type WeeklyRestRow struct {
	CrewID    string `csv:"crew_id"`
	Week      int    `csv:"week"`
	Days      int    `csv:"days"`
	RestDays  int    `csv:"rest_days"`
	Shortfall int    `csv:"shortfall"`
}

// OffRequestRow is one day-off request with its outcome. Cost equals the
// request penalty when violated, zero otherwise.
type OffRequestRow struct {
	CrewID   string `csv:"crew_id"`
	Day      int    `csv:"day"`
	Penalty  int64  `csv:"penalty"`
	Violated int    `csv:"violated"`
	Cost     int64  `csv:"cost"`
}

// Frames bundles all report tables for one solved roster.
type Frames struct {
	WorkMatrix  []WorkCell
	Workloads   []WorkloadRow
	WeeklyRest  []WeeklyRestRow
	OffRequests []OffRequestRow
}

// Build assembles the report frames.
//
// Contract: res must be a Solved result produced from exactly this
// instance; ErrNotSolved and ErrMissingKPI guard the two failure modes.
// Rows follow instance input order, then day or week order.
func Build(inst instance.Instance, res *solve.Result) (*Frames, error) {
	if res == nil || !res.Status.Solved() {
		return nil, ErrNotSolved
	}

	var (
		h     = inst.Scenario.HorizonDays
		weeks = instance.Weeks(h)
		f     = &Frames{
			WorkMatrix:  make([]WorkCell, 0, len(inst.Crew)*h),
			Workloads:   make([]WorkloadRow, 0, len(inst.Crew)),
			WeeklyRest:  make([]WeeklyRestRow, 0, len(inst.Crew)*len(weeks)),
			OffRequests: make([]OffRequestRow, 0, len(inst.OffRequests)),
		}
	)
	for _, c := range inst.Crew {
		kpi, ok := res.Crews[c.ID]
		if !ok {
			return nil, fmt.Errorf("crew %q: %w", c.ID, ErrMissingKPI)
		}
		if len(kpi.RestDaysByWeek) != len(weeks) || len(kpi.ShortfallByWeek) != len(weeks) {
			return nil, fmt.Errorf("crew %q week count: %w", c.ID, ErrMissingKPI)
		}
		for day := 1; day <= h; day++ {
			f.WorkMatrix = append(f.WorkMatrix, WorkCell{
				CrewID: c.ID,
				Day:    day,
				Worked: boolBit(res.Worked[model.WorkKey{CrewID: c.ID, Day: day}]),
			})
		}
		f.Workloads = append(f.Workloads, WorkloadRow{
			CrewID:       c.ID,
			Role:         string(c.Role),
			Base:         c.Base,
			TotalMinutes: kpi.TotalMinutes,
			MaxMinutes:   c.MaxMinutes,
			WorkedDays:   kpi.WorkedDays,
			Duties:       len(res.ByCrew[c.ID]),
		})
		for i, wk := range weeks {
			f.WeeklyRest = append(f.WeeklyRest, WeeklyRestRow{
				CrewID:    c.ID,
				Week:      wk.Index,
				Days:      wk.Len(),
				RestDays:  kpi.RestDaysByWeek[i],
				Shortfall: kpi.ShortfallByWeek[i],
			})
		}
	}
	for _, req := range inst.OffRequests {
		row := OffRequestRow{
			CrewID:   req.CrewID,
			Day:      req.Day,
			Penalty:  req.Penalty,
			Violated: boolBit(res.Worked[model.WorkKey{CrewID: req.CrewID, Day: req.Day}]),
		}
		if row.Violated == 1 {
			row.Cost = req.Penalty
		}
		f.OffRequests = append(f.OffRequests, row)
	}

	return f, nil
}

func boolBit(b bool) int {
	if b {
		return 1
	}

	return 0
}
