package preflight_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/crewsat/instance"
	"github.com/katalvlaran/crewsat/preflight"
)

func window(id string, day, start, end int) instance.Duty {
	return instance.Duty{ID: id, Day: day, StartMin: start, EndMin: end}
}

// TestConflicts_Windows covers overlap, rest-gap and midnight edge cases.
func TestConflicts_Windows(t *testing.T) {
	const minRest = 600 // 10h

	cases := []struct {
		name string
		a, b instance.Duty
		rest int
		want bool
	}{
		{"SameDayOverlap", window("A", 1, 540, 780), window("B", 1, 700, 900), minRest, true},
		{"SameDayContained", window("A", 1, 500, 1000), window("B", 1, 600, 700), minRest, true},
		{"BackToBackZeroGap", window("A", 1, 540, 700), window("B", 1, 700, 800), minRest, true},
		{"BackToBackZeroGapNoRestRule", window("A", 1, 540, 700), window("B", 1, 700, 800), 0, false},
		{"ShortGapSameDay", window("A", 1, 540, 700), window("B", 1, 900, 1000), minRest, true},
		{"MidnightShortGap", window("A", 1, 900, 1380), window("B", 2, 360, 600), minRest, true},
		{"MidnightSufficientGap", window("A", 1, 600, 840), window("B", 2, 0, 300), minRest, false},
		{"FarApartDays", window("A", 1, 540, 780), window("B", 4, 540, 780), minRest, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, preflight.Conflicts(tc.a, tc.b, tc.rest))
			// The relation is symmetric.
			require.Equal(t, tc.want, preflight.Conflicts(tc.b, tc.a, tc.rest))
		})
	}
}

// TestConflictPairs_DeterministicOrder verifies pair enumeration follows
// input positions and finds each conflict once.
func TestConflictPairs_DeterministicOrder(t *testing.T) {
	duties := []instance.Duty{
		window("D1", 1, 540, 780),
		window("D2", 1, 700, 1380), // overlaps D1, ends 23:00
		window("D3", 2, 360, 600),  // 7h gap after D2 across midnight
		window("D4", 5, 540, 780),  // far from everything
	}

	pairs := preflight.ConflictPairs(duties, 600)
	require.Equal(t, []preflight.DutyPair{
		{A: "D1", B: "D2"},
		{A: "D2", B: "D3"},
	}, pairs)
}

// TestConflictPairs_NoConflicts returns an empty list, not nil panic bait.
func TestConflictPairs_NoConflicts(t *testing.T) {
	duties := []instance.Duty{
		window("D1", 1, 540, 780),
		window("D2", 3, 540, 780),
	}
	require.Empty(t, preflight.ConflictPairs(duties, 600))
}
