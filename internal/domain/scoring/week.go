package scoring

import (
	"fmt"
	"time"
)

// WeekID returns the ISO-8601 week identifier for t, formatted as YYYY-W##
// with Monday as the first day of the week.
func WeekID(t time.Time) string {
	year, week := t.ISOWeek()
	return fmt.Sprintf("%d-W%02d", year, week)
}

// WeekStart returns the Monday that begins the given week identifier.
//
// The start date is computed by Monday-aligning the week containing January 1
// and adding week-1 weeks. Identifiers whose ISO week belongs to the adjacent
// calendar year (W52/W53 spillover) can be anchored one week off; the
// round-trip WeekID(WeekStart(w)) == w holds for all other weeks.
func WeekStart(weekID string) (time.Time, error) {
	var year, week int
	if _, err := fmt.Sscanf(weekID, "%d-W%d", &year, &week); err != nil {
		return time.Time{}, fmt.Errorf("invalid week identifier %q: %w", weekID, err)
	}
	if week < 1 || week > 53 {
		return time.Time{}, fmt.Errorf("invalid week identifier %q: week out of range", weekID)
	}

	jan1 := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	sinceMonday := (int(jan1.Weekday()) + 6) % 7
	monday := jan1.AddDate(0, 0, -sinceMonday)
	return monday.AddDate(0, 0, (week-1)*7), nil
}

// RecentWeeks returns the n week identifiers ending at now's week, oldest
// first. n values below 1 yield just the current week.
func RecentWeeks(now time.Time, n int) []string {
	if n < 1 {
		n = 1
	}
	weeks := make([]string, 0, n)
	for i := n - 1; i >= 0; i-- {
		weeks = append(weeks, WeekID(now.AddDate(0, 0, -7*i)))
	}
	return weeks
}
