// Package timeutil provides day and week arithmetic helpers used by the
// analytics rollups. All calculations use the wall-clock location of the
// input times; callers are expected to pass times in a single location.
package timeutil

import (
	"sort"
	"time"
)

// StartOfDay returns midnight of the given day.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// StartOfWeek returns midnight Monday of the week containing t.
func StartOfWeek(t time.Time) time.Time {
	weekday := int(t.Weekday())
	if weekday == 0 {
		weekday = 7 // Sunday belongs to the week started the previous Monday
	}
	return StartOfDay(t).AddDate(0, 0, -(weekday - 1))
}

// SameDay reports whether two times fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// UniqueDays returns the distinct calendar days of the given times,
// truncated to midnight and sorted descending.
func UniqueDays(times []time.Time) []time.Time {
	seen := map[time.Time]bool{}
	var days []time.Time
	for _, t := range times {
		day := StartOfDay(t)
		if !seen[day] {
			seen[day] = true
			days = append(days, day)
		}
	}
	sort.Slice(days, func(i, j int) bool { return days[i].After(days[j]) })
	return days
}

// ConsecutiveDays counts the unbroken run of daily activity ending today.
// A day without activity breaks the run; activity today is required for a
// nonzero result.
func ConsecutiveDays(times []time.Time, today time.Time) int {
	days := UniqueDays(times)
	current := StartOfDay(today)

	streak := 0
	for i, day := range days {
		if day.Equal(current.AddDate(0, 0, -i)) {
			streak++
		} else {
			break
		}
	}
	return streak
}
