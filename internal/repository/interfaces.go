package repository

import (
	"context"
	"time"

	"github.com/adilzhanb/zhospar/internal/domain"
)

type ProfileRepo interface {
	Get(ctx context.Context, userID string) (*domain.UserProfile, error)
	Upsert(ctx context.Context, p *domain.UserProfile) error
	Delete(ctx context.Context, userID string) error
	// ListIDsWithPlan returns the IDs of all users that have a persisted
	// plan. Used by the reminder scheduler's fan-out.
	ListIDsWithPlan(ctx context.Context) ([]string, error)
}

type PlanRepo interface {
	Get(ctx context.Context, userID string) (*domain.Plan, error)
	Save(ctx context.Context, userID string, p *domain.Plan) error
	// SetCreatedAt stamps the plan's creation instant. Used exactly once
	// per plan, when a legacy plan without a timestamp is first read.
	SetCreatedAt(ctx context.Context, userID string, createdAt time.Time) error
}

type TaskRepo interface {
	ListByDate(ctx context.Context, userID, date string) ([]domain.TaskEntry, error)
	ListByDateRange(ctx context.Context, userID, from, to string) ([]domain.TaskEntry, error)
	// CreateBatch persists the generated entries for one date. Sequence
	// numbers are assigned 1-based in input order.
	CreateBatch(ctx context.Context, userID, date string, texts []string) error
}

type CompletionRepo interface {
	Upsert(ctx context.Context, c domain.Completion) error
	ListByDate(ctx context.Context, userID, date string) ([]domain.Completion, error)
	ListByDateRange(ctx context.Context, userID, from, to string) ([]domain.Completion, error)
	// ListDates returns the distinct calendar dates with at least one
	// completion, unordered.
	ListDates(ctx context.Context, userID string) ([]string, error)
	Count(ctx context.Context, userID string) (int, error)
}
