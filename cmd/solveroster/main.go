// The solveroster command runs the full pipeline on one instance
// directory: load, preflight, build, solve, and write the report bundle.
package main

import (
	"flag"
	"fmt"
	"time"

	log "github.com/golang/glog"

	"github.com/katalvlaran/crewsat/instance"
	"github.com/katalvlaran/crewsat/model"
	"github.com/katalvlaran/crewsat/preflight"
	"github.com/katalvlaran/crewsat/report"
	"github.com/katalvlaran/crewsat/solve"
)

var (
	instanceDir = flag.String("instance", ".", "instance directory")
	outDir      = flag.String("out", "out", "report output directory")
	timeLimit   = flag.Duration("time", 10*time.Second, "search time budget")
	workers     = flag.Int("workers", 4, "parallel search workers")
)

func solveRoster(dir, out string, opts solve.Options) error {
	inst, err := instance.Load(dir)
	if err != nil {
		return err
	}
	if findings := instance.Validate(inst); len(findings) > 0 {
		for _, f := range findings {
			fmt.Println("invalid:", f)
		}

		return fmt.Errorf("%d validation findings", len(findings))
	}

	eligible := preflight.EligiblePairs(inst.Crew, inst.Duties)
	conflicts := preflight.ConflictPairs(inst.Duties, inst.Scenario.MinRestMinutes)
	r, err := model.BuildRostering(inst, eligible, conflicts)
	if err != nil {
		return err
	}
	res, err := solve.Roster(r, opts)
	if err != nil {
		return err
	}

	fmt.Println("status:", res.Status)
	fmt.Printf("wall time: %.3fs\n", res.WallTime.Seconds())
	if !res.Status.Solved() {
		return nil
	}

	fmt.Printf("objective: %.0f\n", res.Objective)
	b := res.Breakdown
	fmt.Printf("  fairness_spread:       %d x %d = %d\n", b.FairnessSpread.Weight, b.FairnessSpread.Value, b.FairnessSpread.Contribution)
	fmt.Printf("  worked_days:           %d x %d = %d\n", b.WorkedDays.Weight, b.WorkedDays.Value, b.WorkedDays.Contribution)
	fmt.Printf("  off_request:           %d x %d = %d\n", b.OffRequest.Weight, b.OffRequest.Value, b.OffRequest.Contribution)
	fmt.Printf("  weekly_rest_shortfall: %d x %d = %d\n", b.WeeklyRestShortfall.Weight, b.WeeklyRestShortfall.Value, b.WeeklyRestShortfall.Contribution)
	fmt.Printf("  late_to_early:         %d x %d = %d\n", b.LateToEarly.Weight, b.LateToEarly.Value, b.LateToEarly.Contribution)

	if err = report.Write(out, inst, res); err != nil {
		return err
	}
	fmt.Println("report written to", out)

	return nil
}

func main() {
	flag.Parse()
	defer log.Flush()

	opts := solve.Options{TimeLimit: *timeLimit, Workers: int32(*workers)}
	if err := solveRoster(*instanceDir, *outDir, opts); err != nil {
		log.Exitf("solve failed: %v", err)
	}
}
