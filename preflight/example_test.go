package preflight_test

import (
	"fmt"

	"github.com/katalvlaran/crewsat/instance"
	"github.com/katalvlaran/crewsat/preflight"
)

// ExampleConflicts shows why conflict checks run on the absolute horizon
// timeline: a 23:00 landing followed by an 06:00 report the next morning is
// only a 7-hour gap, below a 10-hour rest minimum.
func ExampleConflicts() {
	late := instance.Duty{ID: "L", Day: 3, StartMin: 900, EndMin: 1380} // ends 23:00
	morning := instance.Duty{ID: "M", Day: 4, StartMin: 360, EndMin: 600}

	fmt.Println(preflight.Conflicts(late, morning, 600))
	fmt.Println(preflight.Conflicts(late, morning, 300))
	// Output:
	// true
	// false
}
