// Package model - shared key types and sentinel errors.
//
// Error policy: only package-level sentinels, branched with errors.Is;
// build functions wrap them with the offending entity via %w. Builders
// never panic and never log.
package model

import "errors"

// WorkKey addresses one per-day indicator: (crew, 1-based day).
type WorkKey struct {
	CrewID string
	Day    int
}

// ErrNoCrew indicates an empty crew list; load bounds (max/min over crew)
// are undefined without at least one member.
var ErrNoCrew = errors.New("model: instance has no crew")

// ErrBadHorizon indicates a horizon below one day.
var ErrBadHorizon = errors.New("model: horizon_days must be ≥ 1")

// ErrBadScenario indicates a negative rest, window or threshold knob.
var ErrBadScenario = errors.New("model: scenario knob out of range")

// ErrDayOutOfRange indicates a duty or off request on a day outside
// 1..horizon_days.
var ErrDayOutOfRange = errors.New("model: day out of horizon range")

// ErrBadDutyTime indicates a duty window violating 0 ≤ start < end ≤ 1440.
var ErrBadDutyTime = errors.New("model: invalid duty time window")

// ErrUnknownCrew indicates an off request referencing a crew member that
// does not exist in the instance.
var ErrUnknownCrew = errors.New("model: off request references unknown crew")

// ErrNegativePenalty indicates an off request with a negative penalty.
var ErrNegativePenalty = errors.New("model: off-request penalty must be ≥ 0")

// ErrNegativeWeight indicates a negative objective weight.
var ErrNegativeWeight = errors.New("model: objective weight must be ≥ 0")
