package cli

import (
	"bytes"
	"context"
	"database/sql"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/adilzhanb/zhospar/internal/ai"
	"github.com/adilzhanb/zhospar/internal/domain"
	"github.com/adilzhanb/zhospar/internal/message"
	"github.com/adilzhanb/zhospar/internal/reminder"
	"github.com/adilzhanb/zhospar/internal/repository"
	"github.com/adilzhanb/zhospar/internal/service"
	"github.com/adilzhanb/zhospar/internal/testutil"
	"github.com/adilzhanb/zhospar/internal/transport"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cliTaskGen struct{}

func (cliTaskGen) DailyTasks(ctx context.Context, plan *domain.Plan, dayIndex int) []string {
	return []string{"первая задача", "вторая задача", "третья задача", "четвертая задача"}
}

type cliPlanGen struct{}

func (cliPlanGen) GeneratePlan(ctx context.Context, name, goal string, style domain.Style) *domain.Plan {
	now := time.Now().UTC()
	return &domain.Plan{
		ID:        "test-plan",
		Goal:      goal,
		Years:     ai.FallbackPlanYears(style.Language, goal),
		Language:  style.Language,
		Formality: style.Formality,
		CreatedAt: &now,
	}
}

func newTestApp(t *testing.T) (*App, *sql.DB) {
	t.Helper()
	database := testutil.NewTestDB(t)

	profiles := repository.NewSQLiteProfileRepo(database)
	plans := repository.NewSQLitePlanRepo(database)
	tasks := repository.NewSQLiteTaskRepo(database)
	completions := repository.NewSQLiteCompletionRepo(database)
	uow := testutil.NewTestUoW(database)

	taskSvc := service.NewTaskService(profiles, plans, tasks, completions, cliTaskGen{}, uow)
	progressSvc := service.NewProgressService(profiles, plans, tasks, completions)
	planSvc := service.NewPlanService(profiles, plans, cliPlanGen{}, uow)

	catalog, err := message.LoadCatalog()
	require.NoError(t, err)
	composer := message.NewComposer(catalog, nil)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	scheduler := reminder.NewScheduler(profiles, taskSvc, progressSvc, composer, transport.NoopSender{}, logger)

	return &App{
		Tasks:     taskSvc,
		Progress:  progressSvc,
		Plans:     planSvc,
		Profiles:  profiles,
		Scheduler: scheduler,
	}, database
}

func execute(t *testing.T, app *App, args ...string) string {
	t.Helper()
	root := NewRootCmd(app)
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	require.NoError(t, root.Execute())
	return out.String()
}

func TestPlanCommand(t *testing.T) {
	app, _ := newTestApp(t)

	out := execute(t, app, "plan", "--user", "u1", "--name", "Айдар", "--goal", "стать инженером")

	assert.Contains(t, out, "Plan test-plan created for u1")
	assert.Contains(t, out, "Year 1: Фундамент")
	assert.Contains(t, out, "Year 5: Цель")
}

func TestPlanCommand_EmptyGoal(t *testing.T) {
	app, _ := newTestApp(t)

	root := NewRootCmd(app)
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs([]string{"plan", "--user", "u1", "--goal", "   "})
	assert.Error(t, root.Execute())
}

func TestTasksCommand(t *testing.T) {
	app, database := newTestApp(t)
	testutil.SeedUserWithPlan(t, database, "u1", "A", time.Now())

	out := execute(t, app, "tasks", "--user", "u1")

	assert.Contains(t, out, "Day 1 (year 1)")
	assert.Contains(t, out, "1. первая задача")
	assert.Contains(t, out, "Completed 0 of 4")
}

func TestTasksCommand_NoPlan(t *testing.T) {
	app, database := newTestApp(t)
	testutil.SeedProfile(t, database, "u1", "A")

	out := execute(t, app, "tasks", "--user", "u1")
	assert.Contains(t, out, "No plan yet")
}

func TestDoneCommand(t *testing.T) {
	app, database := newTestApp(t)
	testutil.SeedUserWithPlan(t, database, "u1", "A", time.Now())

	out := execute(t, app, "done", "--user", "u1", "--seq", "2")
	assert.Contains(t, out, "Task 2 marked complete")
	assert.Contains(t, out, "streak 1")

	out = execute(t, app, "tasks", "--user", "u1")
	assert.Contains(t, out, "[x] 2.")
	assert.Contains(t, out, "Completed 1 of 4")
}

func TestDoneCommand_UnknownUser(t *testing.T) {
	app, _ := newTestApp(t)

	out := execute(t, app, "done", "--user", "ghost", "--seq", "1")
	assert.Contains(t, out, "Unknown user")
}

func TestProgressCommand(t *testing.T) {
	app, database := newTestApp(t)
	testutil.SeedUserWithPlan(t, database, "u1", "A", time.Now())

	execute(t, app, "done", "--user", "u1", "--seq", "1")
	out := execute(t, app, "progress", "--user", "u1")

	assert.Contains(t, out, "Day 1 of 1825")
	assert.Contains(t, out, "Streak: 1")
}

func TestWeekCommand(t *testing.T) {
	app, database := newTestApp(t)
	testutil.SeedUserWithPlan(t, database, "u1", "A", time.Now())

	out := execute(t, app, "week", "--user", "u1")
	assert.Contains(t, out, "Week ")
}

func TestUsersCommand(t *testing.T) {
	app, database := newTestApp(t)
	testutil.SeedUserWithPlan(t, database, "u1", "A", time.Now())
	testutil.SeedProfile(t, database, "u2", "B")

	out := execute(t, app, "users")
	assert.Contains(t, out, "u1")
	assert.Contains(t, out, "1 user(s)")
}

func TestRemindCommand_InvalidKind(t *testing.T) {
	app, _ := newTestApp(t)

	root := NewRootCmd(app)
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs([]string{"remind", "--kind", "midnight"})
	assert.Error(t, root.Execute())
}

func TestRemindCommand_Fires(t *testing.T) {
	app, database := newTestApp(t)
	testutil.SeedUserWithPlan(t, database, "u1", "A", time.Now())

	execute(t, app, "remind", "--kind", "morning")
}
