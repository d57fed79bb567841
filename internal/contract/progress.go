package contract

import "github.com/adilzhanb/zhospar/internal/progress"

// ProgressStats is the all-time progress view for one user.
type ProgressStats struct {
	TotalCompleted       int
	DaysActive           int
	CurrentStreak        int
	BestStreak           int
	DayIndex             int
	ProgressPercent      float64
	RecentCompletionRate float64 // trailing 7 days
}

// WeeklySummary is the fixed trailing-week aggregate, oldest entry first.
type WeeklySummary struct {
	Entries   []progress.DayStat
	WeekStart string
	WeekEnd   string
}
