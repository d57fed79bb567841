package reminder

import (
	"time"

	"github.com/adilzhanb/zhospar/internal/domain"
)

// TimeOfDay is a local wall-clock trigger time.
type TimeOfDay struct {
	Hour   int
	Minute int
}

// Next returns the next occurrence of the trigger time strictly after now,
// in now's location. A trigger time equal to now rolls to tomorrow.
func (t TimeOfDay) Next(now time.Time) time.Time {
	next := time.Date(now.Year(), now.Month(), now.Day(), t.Hour, t.Minute, 0, 0, now.Location())
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}

// DefaultTimes are the three daily reminder triggers.
var DefaultTimes = map[domain.ReminderKind]TimeOfDay{
	domain.ReminderMorning:   {Hour: 7},
	domain.ReminderAfternoon: {Hour: 14},
	domain.ReminderEvening:   {Hour: 18},
}
