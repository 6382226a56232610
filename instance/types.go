// Package instance - entity types and time constants.
//
// All types are value types with no hidden state; copying an Instance is a
// shallow copy of immutable data and is safe everywhere.
package instance

import "sort"

// MinutesPerDay is the length of one roster day in minutes.
const MinutesPerDay = 24 * 60

// DaysPerWeek is the fixed week-block length used by weekly-rest accounting.
const DaysPerWeek = 7

// Role is a crew qualification category referenced by duty coverage.
type Role string

// The three roles a duty may require. Any other value is invalid input.
const (
	RoleCaptain         Role = "CAPT"
	RoleFirstOfficer    Role = "FO"
	RoleFlightAttendant Role = "FA"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleCaptain, RoleFirstOfficer, RoleFlightAttendant:
		return true
	}

	return false
}

// CrewMember is one assignable person. Immutable for the run.
type CrewMember struct {
	// ID is unique across the instance.
	ID string `json:"crew_id"`
	// Role decides which coverage slots the member can fill.
	Role Role `json:"role"`
	// Base must match a duty's base for the member to be eligible.
	Base string `json:"base"`
	// QualifiedTypes lists aircraft types the member may operate.
	QualifiedTypes []string `json:"qualified_types"`
	// MaxMinutes caps total assigned duty minutes over the horizon (> 0).
	MaxMinutes int `json:"max_minutes"`
}

// Qualified reports whether the member may operate the given aircraft type.
func (c CrewMember) Qualified(aircraftType string) bool {
	for _, t := range c.QualifiedTypes {
		if t == aircraftType {
			return true
		}
	}

	return false
}

// Duty is one flight-crew work assignment with a fixed same-day time window.
// Immutable for the run.
type Duty struct {
	// ID is unique across the instance.
	ID string `json:"duty_id"`
	// Day is 1-based and bounded by Scenario.HorizonDays.
	Day int `json:"day"`
	// StartMin/EndMin are minutes since midnight, 0 ≤ StartMin < EndMin ≤ 1440.
	StartMin int `json:"start_min"`
	EndMin   int `json:"end_min"`
	// Base is the airport the duty departs from.
	Base string `json:"base"`
	// AircraftType must be within an eligible member's qualifications.
	AircraftType string `json:"aircraft_type"`
	// Coverage maps each required role to the exact crew count (≥ 1).
	Coverage map[Role]int `json:"coverage"`
}

// DurationMin returns the duty length in minutes.
func (d Duty) DurationMin() int { return d.EndMin - d.StartMin }

// AbsStartMin returns the start on the absolute horizon timeline
// (minute 0 = midnight of day 1), so gaps across midnight compare exactly.
func (d Duty) AbsStartMin() int { return (d.Day-1)*MinutesPerDay + d.StartMin }

// AbsEndMin returns the end on the absolute horizon timeline.
func (d Duty) AbsEndMin() int { return (d.Day-1)*MinutesPerDay + d.EndMin }

// EndsLate reports whether the duty ends at or after the late-end threshold
// (minute of day), marking it as a "late" duty for fatigue chains.
func (d Duty) EndsLate(lateEndThresholdMin int) bool {
	return d.EndMin >= lateEndThresholdMin
}

// StartsEarly reports whether the duty starts at or before the early-start
// threshold (minute of day), marking it as an "early" duty.
func (d Duty) StartsEarly(earlyStartThresholdMin int) bool {
	return d.StartMin <= earlyStartThresholdMin
}

// SortedCoverageRoles returns coverage keys in lexicographic order.
// Go map iteration order is unspecified; every consumer that emits output
// or constraints from a coverage map must iterate via this ordering so
// identical input always yields identical results.
func SortedCoverageRoles(coverage map[Role]int) []Role {
	roles := make([]Role, 0, len(coverage))
	for r := range coverage {
		roles = append(roles, r)
	}
	sort.Slice(roles, func(i, j int) bool { return roles[i] < roles[j] })

	return roles
}

// OffRequest asks that a crew member not work a given day; working it costs
// the request's own penalty (scaled by the global off_request weight).
type OffRequest struct {
	CrewID  string `json:"crew_id"`
	Day     int    `json:"day"`
	Penalty int64  `json:"penalty"`
}

// Weights holds the objective weights, keyed as in scenario.json.
// All weights must be non-negative; a zero weight disables its term.
type Weights struct {
	FairnessSpread      int64 `json:"fairness_spread"`
	WorkedDays          int64 `json:"worked_days"`
	OffRequest          int64 `json:"off_request"`
	WeeklyRestShortfall int64 `json:"weekly_rest_shortfall"`
	LateToEarly         int64 `json:"late_to_early"`
}

// Scenario carries the rule knobs of one run. Immutable configuration,
// passed by value into every building phase.
type Scenario struct {
	// HorizonDays is the planning horizon length (≥ 1).
	HorizonDays int `json:"horizon_days"`
	// MinRestMinutes is the minimum gap between two duties of one member;
	// smaller gaps make the duty pair conflicting, even across midnight.
	MinRestMinutes int `json:"min_rest_minutes"`
	// MaxConsecutiveWorkDays is a hard sliding-window cap on worked days.
	MaxConsecutiveWorkDays int `json:"max_consecutive_work_days"`
	// MinRestDaysPerWeek is the soft weekly rest target per 7-day block.
	MinRestDaysPerWeek int `json:"min_rest_days_per_week"`
	// LateEndThresholdMin marks duties ending at/after it as "late".
	LateEndThresholdMin int `json:"late_end_threshold_min"`
	// EarlyStartThresholdMin marks duties starting at/before it as "early".
	EarlyStartThresholdMin int `json:"early_start_threshold_min"`
	// Weights are the objective weights applied to the soft-penalty terms.
	Weights Weights `json:"weights"`
}

// DefaultScenario returns the documented defaults applied to fields absent
// from scenario.json: a 7-day horizon, 10h minimum rest, at most 5
// consecutive work days, 1 rest day per week, late end 20:00, early start
// 08:00, all weights zero.
func DefaultScenario() Scenario {
	return Scenario{
		HorizonDays:            7,
		MinRestMinutes:         600,
		MaxConsecutiveWorkDays: 5,
		MinRestDaysPerWeek:     1,
		LateEndThresholdMin:    1200,
		EarlyStartThresholdMin: 480,
	}
}

// Instance bundles everything one rostering run consumes.
type Instance struct {
	Crew        []CrewMember
	Duties      []Duty
	Scenario    Scenario
	OffRequests []OffRequest
}
