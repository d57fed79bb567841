package domain

// streakMilestones are the streak lengths that earn a congratulation.
var streakMilestones = map[int]bool{
	7: true, 14: true, 30: true, 50: true, 100: true, 365: true,
}

// IsStreakMilestone reports whether a streak length is a milestone.
func IsStreakMilestone(streak int) bool {
	return streakMilestones[streak]
}
