// Package preflight derives the combinatorial ground truth a rostering
// model is built on: which (crew, duty) pairs are legal, which duty pairs
// can never be worked by one member, and which coverage slots look
// under-staffable before any solving happens.
//
// What?
//
//   - Eligible / EligiblePairs — role ∈ duty coverage, base match,
//     aircraft-type qualification. Ineligible pairs never become decision
//     variables, which keeps ineligibility a structural fact instead of a
//     penalized one.
//   - Conflicts / ConflictPairs — two duties conflict when their absolute
//     horizon-timeline windows overlap or the rest gap between them is
//     below the scenario minimum. Absolute minutes make midnight-spanning
//     gaps exact (day 3, 23:00 → day 4, 06:00 is a 7h gap, not a false
//     negative).
//   - CoverageGaps — advisory static scan for (duty, role) slots with fewer
//     eligible members than required. The solver remains the authority on
//     infeasibility; this is the human-readable early warning.
//
// Why?
//
//	Everything here is a pure function over immutable inputs: no logging,
//	no allocation surprises, deterministic output order. Model building and
//	result checking both consume these primitives, so the legality rules
//	live in exactly one place.
//
// Complexity: Eligible O(Q); EligiblePairs O(C·D·Q); ConflictPairs O(D²);
// CoverageGaps O(D·R·C·Q) (C crew, D duties, Q qualifications, R roles).
package preflight
