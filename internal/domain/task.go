package domain

import "time"

// DailyTaskCount is the fixed number of tasks generated per calendar day.
const DailyTaskCount = 4

// TaskEntry is one generated action item for a user and calendar date.
// Identity is (Date, Seq); Seq is 1-based and stable within a date.
type TaskEntry struct {
	UserID      string
	Date        string // DateKeyLayout
	Seq         int
	Text        string
	Completed   bool
	CompletedAt *time.Time
}

// Completion records that the task identified by (Date, Seq) was marked
// done. Completions may exist for identities that were never generated;
// the ledger merges them on read.
type Completion struct {
	UserID      string
	Date        string
	Seq         int
	CompletedAt time.Time
}
