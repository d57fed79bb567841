// Package progress holds the pure derivations over a user's completion
// history: streaks and rolling weekly aggregates. Nothing here touches
// storage; services load the history and pass it in.
package progress

import (
	"time"

	"github.com/adilzhanb/zhospar/internal/domain"
)

// CurrentStreak counts consecutive calendar dates with at least one
// completion, walking backward from today. A day with no completion today
// yields 0: the streak must be current.
func CurrentStreak(completedDates []string, today time.Time) int {
	if len(completedDates) == 0 {
		return 0
	}
	dates := make(map[string]bool, len(completedDates))
	for _, d := range completedDates {
		dates[d] = true
	}

	streak := 0
	day := today
	for dates[domain.DateKey(day)] {
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}

// BestStreak returns the higher of the cached watermark and the current
// streak. The watermark is monotone non-decreasing.
func BestStreak(cached, current int) int {
	if current > cached {
		return current
	}
	return cached
}
