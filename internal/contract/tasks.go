// Package contract defines the request/response shapes exchanged between
// the service layer and its callers (CLI, scheduler, chat glue).
package contract

import (
	"time"

	"github.com/adilzhanb/zhospar/internal/domain"
)

// DailyTasksResponse is the merged view of one calendar date's task list.
type DailyTasksResponse struct {
	DayIndex       int
	Year           int
	Date           string
	Entries        []domain.TaskEntry
	TotalCount     int
	CompletedCount int
}

// MarkCompleteResponse reports a recorded completion and the refreshed
// streak state.
type MarkCompleteResponse struct {
	Date          string
	Seq           int
	CompletedAt   time.Time
	CurrentStreak int
	BestStreak    int
}
