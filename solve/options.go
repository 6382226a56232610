// Package solve - solver options, statuses and sentinel errors.
package solve

import (
	"errors"
	"time"

	cmpb "github.com/google/or-tools/ortools/sat/proto/cpmodel"
	sppb "github.com/google/or-tools/ortools/sat/proto/satparameters"
	"google.golang.org/protobuf/proto"
)

// ErrModelInvalid indicates the SAT engine rejected the assembled proto.
// Seeing it means a builder bug, not a property of the instance.
var ErrModelInvalid = errors.New("solve: solver rejected the model as invalid")

// ErrInconsistent indicates a solver-reported aggregate disagrees with the
// value recomputed from the assignment variables.
var ErrInconsistent = errors.New("solve: solver aggregates disagree with assignment-derived values")

// Options tunes a single solver run.
type Options struct {
	// TimeLimit bounds the search wall time; zero or negative means no
	// explicit limit is handed to the engine.
	TimeLimit time.Duration
	// Workers sets the engine's parallel search workers; zero or negative
	// leaves the engine default untouched.
	Workers int32
}

// DefaultOptions returns the standard run configuration:
// 10 s search budget on 4 workers.
func DefaultOptions() Options {
	return Options{TimeLimit: 10 * time.Second, Workers: 4}
}

// params translates Options into engine parameters, leaving unset knobs at
// engine defaults.
func (o Options) params() *sppb.SatParameters {
	p := &sppb.SatParameters{}
	if o.TimeLimit > 0 {
		p.MaxTimeInSeconds = proto.Float64(o.TimeLimit.Seconds())
	}
	if o.Workers > 0 {
		p.NumSearchWorkers = proto.Int32(o.Workers)
	}

	return p
}

// Status classifies a solver outcome.
type Status int

const (
	// StatusUnknown means the search ended without a verdict, usually by
	// hitting the time limit before any solution was found.
	StatusUnknown Status = iota
	// StatusOptimal means a solution was found and proven best.
	StatusOptimal
	// StatusFeasible means a solution was found but optimality is unproven.
	StatusFeasible
	// StatusInfeasible means no assignment can satisfy the hard rules.
	StatusInfeasible
)

// Solved reports whether a usable assignment exists in the response.
func (s Status) Solved() bool { return s == StatusOptimal || s == StatusFeasible }

// String names the status in the engine's vocabulary.
func (s Status) String() string {
	switch s {
	case StatusOptimal:
		return "OPTIMAL"
	case StatusFeasible:
		return "FEASIBLE"
	case StatusInfeasible:
		return "INFEASIBLE"
	default:
		return "UNKNOWN"
	}
}

// statusOf maps a response status, surfacing MODEL_INVALID as an error.
func statusOf(resp *cmpb.CpSolverResponse) (Status, error) {
	switch resp.GetStatus() {
	case cmpb.CpSolverStatus_OPTIMAL:
		return StatusOptimal, nil
	case cmpb.CpSolverStatus_FEASIBLE:
		return StatusFeasible, nil
	case cmpb.CpSolverStatus_INFEASIBLE:
		return StatusInfeasible, nil
	case cmpb.CpSolverStatus_MODEL_INVALID:
		return StatusUnknown, ErrModelInvalid
	default:
		return StatusUnknown, nil
	}
}

// wallDuration converts the engine's wall-time seconds into a Duration.
func wallDuration(resp *cmpb.CpSolverResponse) time.Duration {
	return time.Duration(resp.GetWallTime() * float64(time.Second))
}
