// Package report flattens a solved roster into tabular frames and writes
// the standard report bundle.
//
// What?
//
//   - Build assembles deterministic row slices (work matrix, workloads,
//     weekly rest, off requests) from an instance and its solve result.
//   - Write persists the bundle into one directory: four CSV files plus
//     solution.json and objective_breakdown.json.
//
// Why?
//
// Downstream tooling (spreadsheets, notebooks, diffing in CI) wants flat,
// stable tables rather than nested solver output. Row order is fixed by
// the instance input order and the day/week sequence, so two runs over the
// same roster produce byte-identical files.
//
// CSV encoding follows the struct tags via csvutil; JSON documents are
// indented for reviewability.
//
// Complexity: Build is O(C·H + C·W + R); Write adds file I/O.
package report
