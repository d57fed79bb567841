package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/adilzhanb/zhospar/internal/ai"
	"github.com/adilzhanb/zhospar/internal/db"
	"github.com/adilzhanb/zhospar/internal/domain"
	"github.com/adilzhanb/zhospar/internal/repository"
	"github.com/google/uuid"
)

// SeedProfile inserts a profile row with reminders enabled.
func SeedProfile(t *testing.T, conn db.DBTX, userID, name string) *domain.UserProfile {
	t.Helper()
	now := time.Now().UTC()
	p := &domain.UserProfile{
		ID:               userID,
		Name:             name,
		Language:         domain.LangRussian,
		Formality:        domain.FormalityCasual,
		EmojiUsage:       domain.EmojiLow,
		RemindersEnabled: true,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := repository.NewSQLiteProfileRepo(conn).Upsert(context.Background(), p); err != nil {
		t.Fatalf("seeding profile: %v", err)
	}
	return p
}

// SeedPlan inserts a fallback-template plan created at the given instant.
func SeedPlan(t *testing.T, conn db.DBTX, userID string, createdAt time.Time) *domain.Plan {
	t.Helper()
	created := createdAt.UTC()
	plan := &domain.Plan{
		ID:        uuid.New().String(),
		Goal:      "стать инженером",
		Years:     ai.FallbackPlanYears(domain.LangRussian, "стать инженером"),
		Language:  domain.LangRussian,
		Formality: domain.FormalityCasual,
		CreatedAt: &created,
	}
	if err := repository.NewSQLitePlanRepo(conn).Save(context.Background(), userID, plan); err != nil {
		t.Fatalf("seeding plan: %v", err)
	}
	return plan
}

// SeedUserWithPlan inserts both a profile and a plan for the user.
func SeedUserWithPlan(t *testing.T, conn db.DBTX, userID, name string, planCreatedAt time.Time) {
	t.Helper()
	SeedProfile(t, conn, userID, name)
	SeedPlan(t, conn, userID, planCreatedAt)
}
