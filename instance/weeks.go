// Package instance - fixed week partition of the horizon.
//
// Weekly-rest accounting runs over contiguous 7-day blocks anchored at
// day 1 (not rolling windows): days 1..7 form week 1, days 8..14 week 2,
// and the final block keeps its actual length when the horizon is not a
// multiple of seven.
package instance

// Week is one contiguous block of the horizon, 1-based on both ends.
type Week struct {
	// Index is the 1-based week number.
	Index int
	// StartDay..EndDay is the inclusive day span covered by the block.
	StartDay int
	EndDay   int
}

// Len returns the number of days in the block (1..7).
func (w Week) Len() int { return w.EndDay - w.StartDay + 1 }

// Weeks partitions a horizon of horizonDays into fixed blocks.
// A non-positive horizon yields no weeks.
//
// Complexity: O(horizonDays / 7).
func Weeks(horizonDays int) []Week {
	if horizonDays < 1 {
		return nil
	}

	var (
		weeks []Week
		start int
		end   int
		idx   int
	)
	for start = 1; start <= horizonDays; start += DaysPerWeek {
		idx++
		end = start + DaysPerWeek - 1
		if end > horizonDays {
			end = horizonDays
		}
		weeks = append(weeks, Week{Index: idx, StartDay: start, EndDay: end})
	}

	return weeks
}
