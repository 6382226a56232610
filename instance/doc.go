// Package instance defines the immutable data model of one rostering run
// and its JSON on-disk form.
//
// What lives here:
//
//   - CrewMember, Duty, Scenario, OffRequest — the entities every other
//     package consumes. Plain data, read once, never mutated afterwards.
//   - Week partition helpers — fixed contiguous 7-day blocks starting at
//     day 1; the final block covers whatever remains (1..7 days).
//   - Validate — the full rule set for instance files (duplicate ids, role
//     whitelist, day bounds, duty time windows, coverage shape, off-request
//     references, scenario sanity). Returns every finding, not just the
//     first.
//   - Load/Save — an instance directory holds crew.json, duties.json,
//     scenario.json and an optional preferences.json; missing preferences
//     simply mean "no off requests".
//
// Conventions:
//
//   - Day indices are 1-based and bounded by Scenario.HorizonDays.
//   - Duty times are minutes since midnight of the duty's day, same-day
//     (0 ≤ start < end ≤ 1440); AbsStartMin/AbsEndMin place a duty on the
//     absolute horizon timeline for cross-midnight gap arithmetic.
//   - Scenario fields absent from scenario.json take the documented
//     defaults (DefaultScenario), weights default to zero.
//
// Errors: all validation findings wrap the package sentinels (ErrDuplicateCrewID,
// ErrUnknownRole, ErrDayOutOfRange, ...); branch with errors.Is.
package instance
