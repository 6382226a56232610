// Package batch generates what-if variants of a base instance and sweeps
// them through the solver.
//
// What?
//
//   - A Plan lists named variants, each a small list of Changes (remove a
//     member, extend or shift a duty, add or drop an off request).
//   - Apply derives a new instance from a base without mutating it.
//   - Generate materializes every variant as an instance directory with a
//     meta.json tag.
//   - Run loads each instance directory in name order, solves it, and
//     collects one Outcome row per variant; Summarize condenses the sweep
//     and the writers persist results.csv and summary.json.
//
// Why?
//
// Rostering questions are usually comparative: what does losing one
// captain cost, how much does a longer duty hurt fairness. Sweeping
// variants of one base keeps the comparison controlled, and flat CSV
// output makes the comparison diffable.
//
// Complexity: Apply is O(C + D + R) per variant; Run is one full solve
// per variant, sequential.
package batch
