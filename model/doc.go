// Package model translates a rostering instance into a CP-SAT model:
// decision variables, hard constraints, soft-penalty encodings, and one
// scalarized objective.
//
// What?
//
//	BuildRostering emits the full model:
//
//	  - x[c,d]        — one BoolVar per eligible (crew, duty) pair only;
//	    ineligible pairs never exist, making ineligibility structural.
//	  - work[c,day]   — derived day indicator, OR-linked to that day's x
//	    in both directions so it can never float.
//	  - Hard rules    — exact per-role coverage, conflict exclusion,
//	    per-crew workload caps, sliding-window consecutive-day caps.
//	  - Soft rules    — fairness spread (max/min load), worked-day count,
//	    off-request cost, weekly rest shortfall per fixed 7-day block,
//	    late→early fatigue chains.
//	  - Objective     — weighted sum of the soft terms, minimized.
//
//	BuildFeasibility emits only x + coverage + conflict exclusion: a fast
//	"is this coverable at all" probe with no objective.
//
// Why the both-direction linkage?
//
//	Every auxiliary variable (work, late/early indicators, fatigue pairs,
//	weekly shortfalls, load bounds) is tied by equalities, max-equalities
//	or paired implications, never a one-sided bound. One-sided encodings
//	let the optimizer park an auxiliary in its objective-favorable state
//	without it reflecting the underlying roster; exact linkage keeps every
//	auxiliary functionally determined by x, so values extracted from any
//	solution, optimal or not, match an independent recomputation.
//
// Determinism:
//
//	Variables and constraints are emitted by iterating input slices, never
//	Go maps (coverage maps go through instance.SortedCoverageRoles).
//	Identical input produces an identical model proto.
//
// Errors: builders fail fast with sentinel errors on inputs that violate
// the data-model invariants (unknown off-request crew, day outside the
// horizon, inverted duty windows, negative weights); see errors in types.go.
// Structural infeasibility is NOT an error; it surfaces as a solver status.
package model
