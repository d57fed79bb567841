package service

import (
	"context"

	"github.com/adilzhanb/zhospar/internal/contract"
	"github.com/adilzhanb/zhospar/internal/domain"
)

type TaskService interface {
	// GetDailyTasks returns today's task list for the user, generating it
	// on first request for the date and merging completion marks.
	GetDailyTasks(ctx context.Context, userID string) (*contract.DailyTasksResponse, error)

	// MarkComplete records a completion for today's task with the given
	// sequence number and refreshes the streak watermark.
	MarkComplete(ctx context.Context, userID string, seq int) (*contract.MarkCompleteResponse, error)
}

type ProgressService interface {
	Stats(ctx context.Context, userID string) (*contract.ProgressStats, error)
	WeeklySummary(ctx context.Context, userID string) (*contract.WeeklySummary, error)
}

type PlanService interface {
	// Create generates and persists a plan for the user, creating the
	// profile row if it does not exist yet.
	Create(ctx context.Context, userID, name, goal string, style domain.Style) (*domain.Plan, error)
	Get(ctx context.Context, userID string) (*domain.Plan, error)
}
