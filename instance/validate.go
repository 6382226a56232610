// Package instance - full rule validation for loaded instances.
//
// Validate is collaborator-level: binaries run it before any model build
// and print every finding. Model building itself re-checks only the cheap
// invariants it directly depends on and fails fast there.
//
// Design principles:
//   - Deterministic, side-effect free; findings follow input order.
//   - All findings are returned, not just the first.
//   - No logging, no panics; every finding wraps a sentinel from errors.go.
package instance

import "fmt"

// Validate applies the whole rule set to an instance and returns every
// finding. An empty result means the instance is well-formed.
//
// Rule groups, in reported order:
//  1. scenario: horizon ≥ 1, non-negative knobs, thresholds within a day,
//     non-negative weights;
//  2. crew: unique ids, known roles, positive max_minutes;
//  3. duties: unique ids, day within horizon, valid time window, non-empty
//     coverage with known roles and counts ≥ 1;
//  4. off requests: known crew, day within horizon, non-negative penalty.
//
// Complexity: O(C + D·R + P) where C=crew, D=duties, R=roles per duty,
// P=off requests.
func Validate(inst Instance) []error {
	var findings []error

	findings = append(findings, validateScenario(inst.Scenario)...)
	findings = append(findings, validateCrew(inst.Crew)...)
	findings = append(findings, validateDuties(inst.Duties, inst.Scenario.HorizonDays)...)
	findings = append(findings, validateOffRequests(inst)...)

	return findings
}

func validateScenario(sc Scenario) []error {
	var findings []error

	if sc.HorizonDays < 1 {
		findings = append(findings, fmt.Errorf("scenario: horizon_days=%d: %w", sc.HorizonDays, ErrBadHorizon))
	}
	if sc.MinRestMinutes < 0 {
		findings = append(findings, fmt.Errorf("scenario: min_rest_minutes=%d: %w", sc.MinRestMinutes, ErrBadScenario))
	}
	if sc.MaxConsecutiveWorkDays < 0 {
		findings = append(findings, fmt.Errorf("scenario: max_consecutive_work_days=%d: %w", sc.MaxConsecutiveWorkDays, ErrBadScenario))
	}
	if sc.MinRestDaysPerWeek < 0 {
		findings = append(findings, fmt.Errorf("scenario: min_rest_days_per_week=%d: %w", sc.MinRestDaysPerWeek, ErrBadScenario))
	}
	if sc.LateEndThresholdMin < 0 || sc.LateEndThresholdMin > MinutesPerDay {
		findings = append(findings, fmt.Errorf("scenario: late_end_threshold_min=%d: %w", sc.LateEndThresholdMin, ErrBadScenario))
	}
	if sc.EarlyStartThresholdMin < 0 || sc.EarlyStartThresholdMin > MinutesPerDay {
		findings = append(findings, fmt.Errorf("scenario: early_start_threshold_min=%d: %w", sc.EarlyStartThresholdMin, ErrBadScenario))
	}
	findings = append(findings, validateWeights(sc.Weights)...)

	return findings
}

func validateWeights(w Weights) []error {
	var findings []error

	// Keep the name/value pairs in declaration order for stable output.
	named := []struct {
		name  string
		value int64
	}{
		{"fairness_spread", w.FairnessSpread},
		{"worked_days", w.WorkedDays},
		{"off_request", w.OffRequest},
		{"weekly_rest_shortfall", w.WeeklyRestShortfall},
		{"late_to_early", w.LateToEarly},
	}
	for _, nv := range named {
		if nv.value < 0 {
			findings = append(findings, fmt.Errorf("scenario: weight %s=%d: %w", nv.name, nv.value, ErrNegativeWeight))
		}
	}

	return findings
}

func validateCrew(crew []CrewMember) []error {
	var (
		findings []error
		seen     = make(map[string]bool, len(crew))
	)
	for _, c := range crew {
		if seen[c.ID] {
			findings = append(findings, fmt.Errorf("crew %q: %w", c.ID, ErrDuplicateCrewID))
		}
		seen[c.ID] = true

		if !c.Role.Valid() {
			findings = append(findings, fmt.Errorf("crew %q: role %q: %w", c.ID, c.Role, ErrUnknownRole))
		}
		if c.MaxMinutes <= 0 {
			findings = append(findings, fmt.Errorf("crew %q: max_minutes=%d: %w", c.ID, c.MaxMinutes, ErrBadMaxMinutes))
		}
	}

	return findings
}

func validateDuties(duties []Duty, horizonDays int) []error {
	var (
		findings []error
		seen     = make(map[string]bool, len(duties))
	)
	for _, d := range duties {
		if seen[d.ID] {
			findings = append(findings, fmt.Errorf("duty %q: %w", d.ID, ErrDuplicateDutyID))
		}
		seen[d.ID] = true

		if d.Day < 1 || d.Day > horizonDays {
			findings = append(findings, fmt.Errorf("duty %q: day=%d: %w", d.ID, d.Day, ErrDayOutOfRange))
		}
		if d.StartMin < 0 || d.StartMin >= MinutesPerDay ||
			d.EndMin > MinutesPerDay || d.EndMin <= d.StartMin {
			findings = append(findings, fmt.Errorf("duty %q: start=%d end=%d: %w", d.ID, d.StartMin, d.EndMin, ErrBadDutyTime))
		}
		if len(d.Coverage) == 0 {
			findings = append(findings, fmt.Errorf("duty %q: %w", d.ID, ErrEmptyCoverage))
		}
		for _, role := range SortedCoverageRoles(d.Coverage) {
			if !role.Valid() {
				findings = append(findings, fmt.Errorf("duty %q: coverage role %q: %w", d.ID, role, ErrUnknownRole))
			}
			if d.Coverage[role] < 1 {
				findings = append(findings, fmt.Errorf("duty %q: coverage[%s]=%d: %w", d.ID, role, d.Coverage[role], ErrBadCoverageCount))
			}
		}
	}

	return findings
}

func validateOffRequests(inst Instance) []error {
	var (
		findings []error
		known    = make(map[string]bool, len(inst.Crew))
	)
	for _, c := range inst.Crew {
		known[c.ID] = true
	}
	for _, r := range inst.OffRequests {
		if !known[r.CrewID] {
			findings = append(findings, fmt.Errorf("off request (crew %q, day %d): %w", r.CrewID, r.Day, ErrUnknownCrew))
		}
		if r.Day < 1 || r.Day > inst.Scenario.HorizonDays {
			findings = append(findings, fmt.Errorf("off request (crew %q, day %d): %w", r.CrewID, r.Day, ErrDayOutOfRange))
		}
		if r.Penalty < 0 {
			findings = append(findings, fmt.Errorf("off request (crew %q, day %d): penalty=%d: %w", r.CrewID, r.Day, r.Penalty, ErrBadPenalty))
		}
	}

	return findings
}
