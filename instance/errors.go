// Package instance - sentinel errors for validation and loading.
//
// Error policy:
//   - Only package-level sentinels are exposed; branch with errors.Is.
//   - Validate wraps each sentinel with the offending entity's id via %w.
//   - Loaders wrap I/O and JSON errors with the file path; os.ErrNotExist
//     stays reachable through errors.Is for the optional preferences file.
package instance

import "errors"

// ErrDuplicateCrewID indicates two crew records share one crew_id.
var ErrDuplicateCrewID = errors.New("instance: duplicate crew id")

// ErrDuplicateDutyID indicates two duty records share one duty_id.
var ErrDuplicateDutyID = errors.New("instance: duplicate duty id")

// ErrUnknownRole indicates a role outside CAPT/FO/FA, either on a crew
// record or as a duty coverage key.
var ErrUnknownRole = errors.New("instance: unknown role")

// ErrBadMaxMinutes indicates a crew max_minutes that is not positive.
var ErrBadMaxMinutes = errors.New("instance: max_minutes must be positive")

// ErrDayOutOfRange indicates a day index outside 1..horizon_days.
var ErrDayOutOfRange = errors.New("instance: day out of horizon range")

// ErrBadDutyTime indicates a duty time window violating
// 0 ≤ start < end ≤ 1440.
var ErrBadDutyTime = errors.New("instance: invalid duty time window")

// ErrEmptyCoverage indicates a duty with no coverage entries at all.
var ErrEmptyCoverage = errors.New("instance: empty duty coverage")

// ErrBadCoverageCount indicates a coverage count below one.
var ErrBadCoverageCount = errors.New("instance: coverage count must be ≥ 1")

// ErrUnknownCrew indicates an off request referencing a crew_id that does
// not exist in the instance.
var ErrUnknownCrew = errors.New("instance: unknown crew id")

// ErrBadPenalty indicates a negative off-request penalty.
var ErrBadPenalty = errors.New("instance: off-request penalty must be ≥ 0")

// ErrBadHorizon indicates a scenario horizon below one day.
var ErrBadHorizon = errors.New("instance: horizon_days must be ≥ 1")

// ErrBadScenario indicates a scenario knob outside its meaningful range
// (negative rest minutes, negative day counts, thresholds outside 0..1440).
var ErrBadScenario = errors.New("instance: scenario knob out of range")

// ErrNegativeWeight indicates a negative objective weight.
var ErrNegativeWeight = errors.New("instance: objective weight must be ≥ 0")
