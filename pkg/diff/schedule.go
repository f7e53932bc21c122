package diff

import (
	"fmt"
	"strings"
)

// The 7 fixed day keys of a weekly schedule, in calendar order (week starts
// Sunday).
var weekDays = []string{
	"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday",
}

const updatedSuffix = " (sets/reps updated)"

// diffWeeklySchedule walks the schedule day by day so a single change inside
// one day reads as that day's one-line summary instead of a raw blob. The
// free-text generalGoals sub-field gets its own entry.
func diffWeeklySchedule(oldVal, newVal any) []Change {
	oldSched, _ := oldVal.(map[string]any)
	newSched, _ := newVal.(map[string]any)

	out := []Change{}
	for _, day := range weekDays {
		od, nd := oldSched[day], newSched[day]
		if deepEqual(od, nd) {
			continue
		}
		oldSum := daySummary(od)
		newSum := daySummary(nd)
		if oldSum == newSum {
			if od == nil || nd == nil {
				// A day missing on one side that still reads the same
				// (nil vs an inactive day) has nothing to report.
				continue
			}
			// Same headline but different underlying data (e.g. reps changed
			// on an exercise with the same name) — mark it so the change is
			// not silently dropped.
			newSum += updatedSuffix
		}
		out = append(out, Change{Field: scheduleField + "." + day, Old: oldSum, New: newSum})
	}

	og, ng := oldSched["generalGoals"], newSched["generalGoals"]
	if !deepEqual(og, ng) {
		out = append(out, Change{
			Field: scheduleField + ".generalGoals",
			Old:   FormatValue("generalGoals", og, nil),
			New:   FormatValue("generalGoals", ng, nil),
		})
	}
	return out
}

// daySummary renders one day as a single line: "rest day", "no exercises",
// or "<n> exercises: <names>".
func daySummary(v any) string {
	d, ok := v.(map[string]any)
	if !ok {
		return "rest day"
	}
	active, _ := d["isActive"].(bool)
	if !active {
		return "rest day"
	}
	exercises, _ := d["exercises"].([]any)
	if len(exercises) == 0 {
		return "no exercises"
	}
	names := make([]string, 0, len(exercises))
	for _, e := range exercises {
		if m, ok := e.(map[string]any); ok {
			if n, ok := m["name"].(string); ok && n != "" {
				names = append(names, n)
			}
		}
	}
	return fmt.Sprintf("%d exercises: %s", len(exercises), strings.Join(names, ", "))
}
