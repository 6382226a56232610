// Package solve runs the CP-SAT models built by package model and turns
// solver responses into plain Go results.
//
// What?
//
// Two entry points, one per model flavor:
//
//   - Roster    - solves the full rostering model and extracts assignments,
//     per-member KPIs and the itemized objective breakdown.
//   - Feasibility - solves the satisfaction probe and extracts one witness
//     staffing when the instance is coverable.
//
// Both accept Options (time limit, parallel workers) translated into SAT
// parameters, and report the outcome as a Status (OPTIMAL, FEASIBLE,
// INFEASIBLE, UNKNOWN). An invalid model is an error, not a status.
//
// Why?
//
// Callers should never touch response protos. Everything downstream
// (reports, batch sweeps, CLI output) works off Result: sorted assignment
// lists, integer KPIs recomputed from the assignment itself, and a
// Breakdown whose terms sum to the objective.
//
// Every aggregate the solver reports is cross-checked against a value
// derived independently from the assignment variables; any disagreement
// returns ErrInconsistent instead of silently publishing bad numbers.
// The check holds for FEASIBLE solutions too, not just proven optima,
// because the model ties each aggregate to the assignments exactly.
//
// Complexity: extraction is O(C·D) over crew and duties plus O(C·H) over
// the day grid; solving itself is up to the SAT engine and the time limit.
package solve
