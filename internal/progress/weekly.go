package progress

import (
	"time"

	"github.com/adilzhanb/zhospar/internal/domain"
)

// DayStat is one calendar date's slice of the trailing-week summary.
type DayStat struct {
	Date      string
	Weekday   string
	Total     int
	Completed int
	Rate      float64 // percent, 0 when Total is 0
}

// WeekWindow returns the date keys of the trailing 7-day window,
// today-6 .. today inclusive, oldest first.
func WeekWindow(today time.Time) []string {
	window := make([]string, 0, 7)
	for i := 6; i >= 0; i-- {
		window = append(window, domain.DateKey(today.AddDate(0, 0, -i)))
	}
	return window
}

// Summarize aggregates generated entries and completion records into the
// fixed 7-entry weekly summary. A task identity counts toward a date's
// total if it was generated for that date or (permissive completions) was
// marked complete without ever being generated.
func Summarize(tasks []domain.TaskEntry, completions []domain.Completion, today time.Time) []DayStat {
	type identity struct {
		date string
		seq  int
	}
	known := make(map[identity]bool)
	totals := make(map[string]int)
	completed := make(map[string]int)

	for _, t := range tasks {
		id := identity{t.Date, t.Seq}
		if !known[id] {
			known[id] = true
			totals[t.Date]++
		}
	}
	for _, c := range completions {
		id := identity{c.Date, c.Seq}
		if !known[id] {
			known[id] = true
			totals[c.Date]++
		}
		completed[c.Date]++
	}

	stats := make([]DayStat, 0, 7)
	for _, date := range WeekWindow(today) {
		day, _ := domain.ParseDateKey(date)
		stat := DayStat{
			Date:      date,
			Weekday:   day.Weekday().String(),
			Total:     totals[date],
			Completed: completed[date],
		}
		if stat.Total > 0 {
			stat.Rate = float64(stat.Completed) / float64(stat.Total) * 100
		}
		stats = append(stats, stat)
	}
	return stats
}

// CompletionRate computes the completion percentage across a set of day
// stats, 0 when no tasks exist in the window.
func CompletionRate(stats []DayStat) float64 {
	var total, completed int
	for _, s := range stats {
		total += s.Total
		completed += s.Completed
	}
	if total == 0 {
		return 0
	}
	return float64(completed) / float64(total) * 100
}
