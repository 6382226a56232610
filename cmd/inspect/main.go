// The inspect command loads an instance directory, validates it and prints
// the preflight picture: eligible pairs, duty conflicts and coverage gaps.
package main

import (
	"flag"
	"fmt"

	log "github.com/golang/glog"

	"github.com/katalvlaran/crewsat/instance"
	"github.com/katalvlaran/crewsat/preflight"
)

var instanceDir = flag.String("instance", ".", "directory holding crew.json, duties.json, scenario.json and optional preferences.json")

func inspect(dir string) error {
	inst, err := instance.Load(dir)
	if err != nil {
		return err
	}
	fmt.Printf("instance: %d crew, %d duties, %d off requests, horizon %d days\n",
		len(inst.Crew), len(inst.Duties), len(inst.OffRequests), inst.Scenario.HorizonDays)
	w := inst.Scenario.Weights
	fmt.Printf("weights: fairness_spread=%d worked_days=%d off_request=%d weekly_rest_shortfall=%d late_to_early=%d\n",
		w.FairnessSpread, w.WorkedDays, w.OffRequest, w.WeeklyRestShortfall, w.LateToEarly)

	if findings := instance.Validate(inst); len(findings) > 0 {
		for _, f := range findings {
			fmt.Println("invalid:", f)
		}

		return fmt.Errorf("%d validation findings", len(findings))
	}
	fmt.Println("validation: ok")

	eligible := preflight.EligiblePairs(inst.Crew, inst.Duties)
	conflicts := preflight.ConflictPairs(inst.Duties, inst.Scenario.MinRestMinutes)
	fmt.Printf("eligible pairs: %d of %d\n", len(eligible), len(inst.Crew)*len(inst.Duties))
	fmt.Printf("conflicting duty pairs: %d\n", len(conflicts))
	for _, p := range conflicts {
		fmt.Printf("  conflict: %s / %s\n", p.A, p.B)
	}

	gaps := preflight.CoverageGaps(inst.Crew, inst.Duties)
	if len(gaps) == 0 {
		fmt.Println("coverage gaps: none")

		return nil
	}
	fmt.Printf("coverage gaps: %d\n", len(gaps))
	for _, g := range gaps {
		fmt.Printf("  duty %s role %s: need %d, eligible %d\n", g.DutyID, g.Role, g.Required, g.Eligible)
	}

	return nil
}

func main() {
	flag.Parse()
	defer log.Flush()

	if err := inspect(*instanceDir); err != nil {
		log.Exitf("inspect failed: %v", err)
	}
}
