// Package crewsat formulates and solves weekly crew-rostering problems:
// assign crew members to flight duties so that every duty's role coverage
// is met exactly, all operational rules hold, and a weighted blend of
// fairness and fatigue penalties is minimized on CP-SAT.
//
// 🚀 What is crewsat?
//
//	A small, deterministic rostering toolkit built on Google OR-Tools CP-SAT:
//		• Instance model: crew, duties, scenario rules, off-day preferences
//		• Preflight: eligibility pairs, rest/overlap conflicts, coverage gaps
//		• Model: hard constraints (coverage, conflicts, workload caps,
//		  consecutive-day windows) + soft-penalty encodings (fairness spread,
//		  worked days, off-request cost, weekly rest shortfall, late→early)
//		• Solve: one CP-SAT call under a wall-clock budget, status mapping,
//		  roster extraction with independent KPI recomputation
//		• Report & batch: CSV/JSON artifacts and scenario-variant sweeps
//
// ✨ Why choose crewsat?
//
//   - Exact semantics – every auxiliary variable is tied in both directions,
//     so extracted KPIs always match what the solver optimized
//   - Deterministic models – identical input yields an identical model proto
//   - Clear failure modes – INFEASIBLE and UNKNOWN are reported outcomes,
//     never exceptions; invalid input fails fast with sentinel errors
//
// Package map:
//
//	instance/  — domain types, validation, JSON instance directories
//	preflight/ — eligibility & conflict analysis, coverage pre-check
//	model/     — CP-SAT constraint builder, penalty encoder, objective
//	solve/     — solve orchestration and result extraction
//	report/    — work-matrix, workload, weekly-rest, off-request tables
//	batch/     — scenario variants, batch runs, results.csv / summary.json
//	cmd/       — inspect, feasible, solveroster, scenarios binaries
//
// Quick sketch:
//
//	inst, _ := instance.Load("data/base")
//	elig := preflight.EligiblePairs(inst.Crew, inst.Duties)
//	conf := preflight.ConflictPairs(inst.Duties, inst.Scenario.MinRestMinutes)
//	rm, _ := model.BuildRostering(inst, elig, conf)
//	res, _ := solve.Roster(rm, solve.DefaultOptions())
//	fmt.Println(res.Status, res.Breakdown.ObjectiveFromTerms())
//
// Dive into DESIGN.md for the modeling notes and cmd/ for runnable tools.
package crewsat
