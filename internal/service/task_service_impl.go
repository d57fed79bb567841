package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/adilzhanb/zhospar/internal/ai"
	"github.com/adilzhanb/zhospar/internal/contract"
	"github.com/adilzhanb/zhospar/internal/db"
	"github.com/adilzhanb/zhospar/internal/domain"
	"github.com/adilzhanb/zhospar/internal/progress"
	"github.com/adilzhanb/zhospar/internal/repository"
)

type taskService struct {
	profiles    repository.ProfileRepo
	plans       repository.PlanRepo
	tasks       repository.TaskRepo
	completions repository.CompletionRepo
	generator   ai.TaskGenerator
	uow         db.UnitOfWork
	now         func() time.Time
}

func NewTaskService(
	profiles repository.ProfileRepo,
	plans repository.PlanRepo,
	tasks repository.TaskRepo,
	completions repository.CompletionRepo,
	generator ai.TaskGenerator,
	uow db.UnitOfWork,
) TaskService {
	return &taskService{
		profiles:    profiles,
		plans:       plans,
		tasks:       tasks,
		completions: completions,
		generator:   generator,
		uow:         uow,
		now:         time.Now,
	}
}

func (s *taskService) GetDailyTasks(ctx context.Context, userID string) (*contract.DailyTasksResponse, error) {
	plan, err := s.plans.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNoPlan
		}
		return nil, err
	}

	now := s.now()

	// Legacy plans predate the creation timestamp. Stamp one exactly once
	// so the day index is stable from here on.
	if plan.CreatedAt == nil {
		stamped := now.UTC()
		if err := s.plans.SetCreatedAt(ctx, userID, stamped); err != nil {
			return nil, fmt.Errorf("stamping plan creation: %w", err)
		}
		plan.CreatedAt = &stamped
	}

	dayIndex := domain.CurrentDayIndex(*plan.CreatedAt, now)
	today := domain.DateKey(now)

	entries, err := s.tasks.ListByDate(ctx, userID, today)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		texts := normalizeTaskTexts(s.generator.DailyTasks(ctx, plan, dayIndex), plan.Language)
		if err := s.tasks.CreateBatch(ctx, userID, today, texts); err != nil {
			return nil, err
		}
		// Re-read so a concurrent first generation yields the same view.
		entries, err = s.tasks.ListByDate(ctx, userID, today)
		if err != nil {
			return nil, err
		}
	}

	marks, err := s.completions.ListByDate(ctx, userID, today)
	if err != nil {
		return nil, err
	}
	bySeq := make(map[int]domain.Completion, len(marks))
	for _, m := range marks {
		bySeq[m.Seq] = m
	}

	completed := 0
	for i := range entries {
		if m, ok := bySeq[entries[i].Seq]; ok {
			entries[i].Completed = true
			at := m.CompletedAt
			entries[i].CompletedAt = &at
			completed++
		}
	}

	return &contract.DailyTasksResponse{
		DayIndex:       dayIndex,
		Year:           domain.PlanYear(dayIndex),
		Date:           today,
		Entries:        entries,
		TotalCount:     len(entries),
		CompletedCount: completed,
	}, nil
}

// normalizeTaskTexts pads short collaborator output with fillers and trims
// long output so every date has exactly DailyTaskCount entries.
func normalizeTaskTexts(texts []string, lang domain.Language) []string {
	if len(texts) >= domain.DailyTaskCount {
		return texts[:domain.DailyTaskCount]
	}
	fillers := ai.FallbackTasks(lang)
	for i := len(texts); i < domain.DailyTaskCount; i++ {
		texts = append(texts, fillers[i%len(fillers)])
	}
	return texts
}

func (s *taskService) MarkComplete(ctx context.Context, userID string, seq int) (*contract.MarkCompleteResponse, error) {
	if _, err := s.profiles.Get(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNoUser
		}
		return nil, err
	}

	now := s.now()
	today := domain.DateKey(now)
	resp := &contract.MarkCompleteResponse{
		Date:        today,
		Seq:         seq,
		CompletedAt: now.UTC(),
	}

	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txProfiles := repository.NewSQLiteProfileRepo(tx)
		txCompletions := repository.NewSQLiteCompletionRepo(tx)

		err := txCompletions.Upsert(ctx, domain.Completion{
			UserID:      userID,
			Date:        today,
			Seq:         seq,
			CompletedAt: resp.CompletedAt,
		})
		if err != nil {
			return err
		}

		dates, err := txCompletions.ListDates(ctx, userID)
		if err != nil {
			return err
		}
		resp.CurrentStreak = progress.CurrentStreak(dates, now)

		profile, err := txProfiles.Get(ctx, userID)
		if err != nil {
			return err
		}
		resp.BestStreak = progress.BestStreak(profile.BestStreak, resp.CurrentStreak)
		if resp.BestStreak != profile.BestStreak {
			profile.BestStreak = resp.BestStreak
			profile.UpdatedAt = now.UTC()
			if err := txProfiles.Upsert(ctx, profile); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}
