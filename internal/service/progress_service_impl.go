package service

import (
	"context"
	"errors"
	"time"

	"github.com/adilzhanb/zhospar/internal/contract"
	"github.com/adilzhanb/zhospar/internal/domain"
	"github.com/adilzhanb/zhospar/internal/progress"
	"github.com/adilzhanb/zhospar/internal/repository"
)

type progressService struct {
	profiles    repository.ProfileRepo
	plans       repository.PlanRepo
	tasks       repository.TaskRepo
	completions repository.CompletionRepo
	now         func() time.Time
}

func NewProgressService(
	profiles repository.ProfileRepo,
	plans repository.PlanRepo,
	tasks repository.TaskRepo,
	completions repository.CompletionRepo,
) ProgressService {
	return &progressService{
		profiles:    profiles,
		plans:       plans,
		tasks:       tasks,
		completions: completions,
		now:         time.Now,
	}
}

func (s *progressService) Stats(ctx context.Context, userID string) (*contract.ProgressStats, error) {
	plan, err := s.plans.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNoPlan
		}
		return nil, err
	}

	now := s.now()

	totalCompleted, err := s.completions.Count(ctx, userID)
	if err != nil {
		return nil, err
	}
	dates, err := s.completions.ListDates(ctx, userID)
	if err != nil {
		return nil, err
	}

	profile, err := s.profiles.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	stats := &contract.ProgressStats{
		TotalCompleted: totalCompleted,
		DaysActive:     len(dates),
		CurrentStreak:  progress.CurrentStreak(dates, now),
		BestStreak:     profile.BestStreak,
	}
	if plan.CreatedAt != nil {
		stats.DayIndex = domain.CurrentDayIndex(*plan.CreatedAt, now)
		stats.ProgressPercent = float64(stats.DayIndex) / float64(domain.PlanLengthDays) * 100
	}

	weekly, err := s.weekStats(ctx, userID, now)
	if err != nil {
		return nil, err
	}
	stats.RecentCompletionRate = progress.CompletionRate(weekly)

	return stats, nil
}

func (s *progressService) WeeklySummary(ctx context.Context, userID string) (*contract.WeeklySummary, error) {
	if _, err := s.plans.Get(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNoPlan
		}
		return nil, err
	}

	now := s.now()
	stats, err := s.weekStats(ctx, userID, now)
	if err != nil {
		return nil, err
	}
	return &contract.WeeklySummary{
		Entries:   stats,
		WeekStart: stats[0].Date,
		WeekEnd:   stats[len(stats)-1].Date,
	}, nil
}

func (s *progressService) weekStats(ctx context.Context, userID string, now time.Time) ([]progress.DayStat, error) {
	window := progress.WeekWindow(now)
	from, to := window[0], window[len(window)-1]

	tasks, err := s.tasks.ListByDateRange(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}
	marks, err := s.completions.ListByDateRange(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}
	return progress.Summarize(tasks, marks, now), nil
}
