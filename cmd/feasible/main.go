// The feasible command answers whether an instance can be staffed at all:
// it solves the coverage-and-conflict core without penalties and prints
// the verdict with one witness staffing.
package main

import (
	"flag"
	"fmt"
	"time"

	log "github.com/golang/glog"

	"github.com/katalvlaran/crewsat/instance"
	"github.com/katalvlaran/crewsat/model"
	"github.com/katalvlaran/crewsat/preflight"
	"github.com/katalvlaran/crewsat/solve"
)

var (
	instanceDir = flag.String("instance", ".", "instance directory")
	timeLimit   = flag.Duration("time", 10*time.Second, "search time budget")
	workers     = flag.Int("workers", 4, "parallel search workers")
)

func feasible(dir string, opts solve.Options) error {
	inst, err := instance.Load(dir)
	if err != nil {
		return err
	}
	eligible := preflight.EligiblePairs(inst.Crew, inst.Duties)
	conflicts := preflight.ConflictPairs(inst.Duties, inst.Scenario.MinRestMinutes)

	f, err := model.BuildFeasibility(inst, eligible, conflicts)
	if err != nil {
		return err
	}
	p, err := solve.Feasibility(f, opts)
	if err != nil {
		return err
	}

	fmt.Println("status:", p.Status)
	fmt.Printf("wall time: %.3fs\n", p.WallTime.Seconds())
	if !p.Status.Solved() {
		return nil
	}
	for _, d := range inst.Duties {
		fmt.Printf("  %s: %v\n", d.ID, p.ByDuty[d.ID])
	}

	return nil
}

func main() {
	flag.Parse()
	defer log.Flush()

	opts := solve.Options{TimeLimit: *timeLimit, Workers: int32(*workers)}
	if err := feasible(*instanceDir, opts); err != nil {
		log.Exitf("feasibility probe failed: %v", err)
	}
}
