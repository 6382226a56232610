// The scenarios command sweeps a variant plan over a base instance:
// it materializes every variant, solves them in order, and writes
// results.csv and summary.json next to the generated instances.
package main

import (
	"flag"
	"fmt"
	"path/filepath"
	"time"

	log "github.com/golang/glog"

	"github.com/katalvlaran/crewsat/batch"
	"github.com/katalvlaran/crewsat/instance"
	"github.com/katalvlaran/crewsat/solve"
)

var (
	instanceDir  = flag.String("instance", "", "base instance directory (overrides the plan's base_instance_dir)")
	variantsPath = flag.String("variants", "variants.json", "variant plan file")
	outDir       = flag.String("out", "sweep", "sweep output directory")
	timeLimit    = flag.Duration("time", 10*time.Second, "search time budget per variant")
	workers      = flag.Int("workers", 4, "parallel search workers")
)

func sweep(baseDir, planFile, out string, opts solve.Options) error {
	plan, err := batch.LoadPlan(planFile)
	if err != nil {
		return err
	}
	if baseDir == "" {
		baseDir = plan.BaseInstanceDir
	}
	if baseDir == "" {
		return fmt.Errorf("no base instance: set -instance or base_instance_dir in %s", planFile)
	}
	base, err := instance.Load(baseDir)
	if err != nil {
		return err
	}

	instancesDir := filepath.Join(out, "instances")
	dirs, err := batch.Generate(plan, base, instancesDir)
	if err != nil {
		return err
	}
	fmt.Printf("generated %d variant instances under %s\n", len(dirs), instancesDir)

	outcomes, err := batch.Run(instancesDir, opts)
	if err != nil {
		return err
	}
	for _, oc := range outcomes {
		fmt.Printf("  %-20s %-10s objective=%.0f\n", oc.ScenarioID, oc.Status, oc.Objective)
	}

	if err = batch.WriteResults(filepath.Join(out, batch.ResultsFile), outcomes); err != nil {
		return err
	}
	s := batch.Summarize(outcomes)
	if err = batch.WriteSummary(filepath.Join(out, batch.SummaryFile), s); err != nil {
		return err
	}
	fmt.Printf("solved %d/%d variants, results in %s\n", s.NFeasible, s.NTotal, out)

	return nil
}

func main() {
	flag.Parse()
	defer log.Flush()

	opts := solve.Options{TimeLimit: *timeLimit, Workers: int32(*workers)}
	if err := sweep(*instanceDir, *variantsPath, *outDir, opts); err != nil {
		log.Exitf("scenario sweep failed: %v", err)
	}
}
