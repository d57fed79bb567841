package domain

import "time"

const (
	// PlanLengthDays is the total length of a five-year plan.
	PlanLengthDays = 1825

	// DateKeyLayout is the canonical calendar-date key for daily tasks
	// and completion records.
	DateKeyLayout = "2006-01-02"
)

// CurrentDayIndex converts the plan creation instant and the current time
// into a 1-based day index, clamped to [1, PlanLengthDays]. Day 1 is the
// creation day itself.
func CurrentDayIndex(createdAt, now time.Time) int {
	days := int(now.Sub(createdAt).Hours()/24) + 1
	if days < 1 {
		return 1
	}
	if days > PlanLengthDays {
		return PlanLengthDays
	}
	return days
}

// PlanYear maps a day index to its plan year in [1, 5].
func PlanYear(dayIndex int) int {
	year := (dayIndex-1)/365 + 1
	if year > 5 {
		return 5
	}
	return year
}

// DateKey formats an instant as its calendar-date key.
func DateKey(t time.Time) string {
	return t.Format(DateKeyLayout)
}

// ParseDateKey parses a calendar-date key back into a time.Time.
func ParseDateKey(key string) (time.Time, error) {
	return time.Parse(DateKeyLayout, key)
}
