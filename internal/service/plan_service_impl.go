package service

import (
	"context"
	"errors"
	"time"

	"github.com/adilzhanb/zhospar/internal/ai"
	"github.com/adilzhanb/zhospar/internal/db"
	"github.com/adilzhanb/zhospar/internal/domain"
	"github.com/adilzhanb/zhospar/internal/repository"
)

type planService struct {
	profiles  repository.ProfileRepo
	plans     repository.PlanRepo
	generator ai.PlanGenerator
	uow       db.UnitOfWork
	now       func() time.Time
}

func NewPlanService(
	profiles repository.ProfileRepo,
	plans repository.PlanRepo,
	generator ai.PlanGenerator,
	uow db.UnitOfWork,
) PlanService {
	return &planService{
		profiles:  profiles,
		plans:     plans,
		generator: generator,
		uow:       uow,
		now:       time.Now,
	}
}

func (s *planService) Create(ctx context.Context, userID, name, goal string, style domain.Style) (*domain.Plan, error) {
	// Generation happens outside the transaction; it is the slow path and
	// needs no storage state.
	plan := s.generator.GeneratePlan(ctx, name, goal, style)

	now := s.now().UTC()
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txProfiles := repository.NewSQLiteProfileRepo(tx)
		txPlans := repository.NewSQLitePlanRepo(tx)

		profile, err := txProfiles.Get(ctx, userID)
		if errors.Is(err, repository.ErrNotFound) {
			profile = &domain.UserProfile{
				ID:               userID,
				RemindersEnabled: true,
				CreatedAt:        now,
			}
		} else if err != nil {
			return err
		}
		profile.Name = name
		profile.Language = style.Language
		profile.Formality = style.Formality
		profile.EmojiUsage = style.EmojiUsage
		profile.UpdatedAt = now
		if err := txProfiles.Upsert(ctx, profile); err != nil {
			return err
		}

		return txPlans.Save(ctx, userID, plan)
	})
	if err != nil {
		return nil, err
	}
	return plan, nil
}

func (s *planService) Get(ctx context.Context, userID string) (*domain.Plan, error) {
	plan, err := s.plans.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNoPlan
		}
		return nil, err
	}
	return plan, nil
}
