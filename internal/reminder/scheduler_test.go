package reminder

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"math/rand"
	"sync"
	"testing"
	"time"

	"github.com/adilzhanb/zhospar/internal/domain"
	"github.com/adilzhanb/zhospar/internal/message"
	"github.com/adilzhanb/zhospar/internal/repository"
	"github.com/adilzhanb/zhospar/internal/service"
	"github.com/adilzhanb/zhospar/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingSender captures sent messages and can fail for chosen users.
type recordingSender struct {
	mu      sync.Mutex
	failFor map[string]bool
	sent    map[string][]string
}

func newRecordingSender() *recordingSender {
	return &recordingSender{failFor: map[string]bool{}, sent: map[string][]string{}}
}

func (s *recordingSender) Send(ctx context.Context, userID, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failFor[userID] {
		return assert.AnError
	}
	s.sent[userID] = append(s.sent[userID], text)
	return nil
}

func (s *recordingSender) messages(userID string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.sent[userID]...)
}

type fixedTaskGen struct{}

func (fixedTaskGen) DailyTasks(ctx context.Context, plan *domain.Plan, dayIndex int) []string {
	return []string{"задача 1х", "задача 2х", "задача 3х", "задача 4х"}
}

func newSchedulerForTest(t *testing.T, sender *recordingSender) (*Scheduler, *sql.DB) {
	t.Helper()
	database := testutil.NewTestDB(t)

	profiles := repository.NewSQLiteProfileRepo(database)
	plans := repository.NewSQLitePlanRepo(database)
	tasks := repository.NewSQLiteTaskRepo(database)
	completions := repository.NewSQLiteCompletionRepo(database)
	uow := testutil.NewTestUoW(database)

	taskSvc := service.NewTaskService(profiles, plans, tasks, completions, fixedTaskGen{}, uow)
	progressSvc := service.NewProgressService(profiles, plans, tasks, completions)

	catalog, err := message.LoadCatalog()
	require.NoError(t, err)
	composer := message.NewComposer(catalog, rand.New(rand.NewSource(1)))

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewScheduler(profiles, taskSvc, progressSvc, composer, sender, logger), database
}

func TestFire_Morning(t *testing.T) {
	sender := newRecordingSender()
	sched, database := newSchedulerForTest(t, sender)

	testutil.SeedUserWithPlan(t, database, "u1", "Айдар", time.Now())

	sched.Fire(context.Background(), domain.ReminderMorning)

	msgs := sender.messages("u1")
	require.Len(t, msgs, 1)
	assert.Contains(t, msgs[0], "Айдар")
}

func TestFire_SkipsUsersWithoutPlan(t *testing.T) {
	sender := newRecordingSender()
	sched, database := newSchedulerForTest(t, sender)

	testutil.SeedProfile(t, database, "u1", "A")

	sched.Fire(context.Background(), domain.ReminderMorning)
	assert.Empty(t, sender.messages("u1"))
}

func TestFire_SkipsOptedOutUsers(t *testing.T) {
	sender := newRecordingSender()
	sched, database := newSchedulerForTest(t, sender)
	ctx := context.Background()

	profile := testutil.SeedProfile(t, database, "u1", "A")
	testutil.SeedPlan(t, database, "u1", time.Now())
	profile.RemindersEnabled = false
	require.NoError(t, repository.NewSQLiteProfileRepo(database).Upsert(ctx, profile))

	sched.Fire(ctx, domain.ReminderMorning)
	assert.Empty(t, sender.messages("u1"))
}

func TestFire_OneFailureDoesNotBlockOthers(t *testing.T) {
	sender := newRecordingSender()
	sender.failFor["u1"] = true
	sched, database := newSchedulerForTest(t, sender)

	testutil.SeedUserWithPlan(t, database, "u1", "A", time.Now())
	testutil.SeedUserWithPlan(t, database, "u2", "B", time.Now())

	sched.Fire(context.Background(), domain.ReminderAfternoon)

	assert.Empty(t, sender.messages("u1"))
	assert.Len(t, sender.messages("u2"), 1)
}

func TestFire_AfternoonIncludesCounts(t *testing.T) {
	sender := newRecordingSender()
	sched, database := newSchedulerForTest(t, sender)
	ctx := context.Background()

	testutil.SeedUserWithPlan(t, database, "u1", "A", time.Now())
	require.NoError(t, repository.NewSQLiteCompletionRepo(database).Upsert(ctx, domain.Completion{
		UserID: "u1", Date: domain.DateKey(time.Now()), Seq: 1, CompletedAt: time.Now(),
	}))

	sched.Fire(ctx, domain.ReminderAfternoon)

	msgs := sender.messages("u1")
	require.Len(t, msgs, 1)
	assert.Contains(t, msgs[0], "1/4")
}

func TestFire_EveningMilestoneSendsSecondMessage(t *testing.T) {
	sender := newRecordingSender()
	sched, database := newSchedulerForTest(t, sender)
	ctx := context.Background()

	testutil.SeedUserWithPlan(t, database, "u1", "Айдар", time.Now().AddDate(0, 0, -7))

	completions := repository.NewSQLiteCompletionRepo(database)
	for i := 0; i < 7; i++ {
		require.NoError(t, completions.Upsert(ctx, domain.Completion{
			UserID:      "u1",
			Date:        domain.DateKey(time.Now().AddDate(0, 0, -i)),
			Seq:         1,
			CompletedAt: time.Now(),
		}))
	}

	sched.Fire(ctx, domain.ReminderEvening)

	msgs := sender.messages("u1")
	require.Len(t, msgs, 2, "evening summary plus milestone congratulation")
	assert.Contains(t, msgs[1], "7")
	assert.Contains(t, msgs[1], "🎉")
}

func TestFire_EveningWithoutMilestone(t *testing.T) {
	sender := newRecordingSender()
	sched, database := newSchedulerForTest(t, sender)

	testutil.SeedUserWithPlan(t, database, "u1", "A", time.Now())

	sched.Fire(context.Background(), domain.ReminderEvening)
	assert.Len(t, sender.messages("u1"), 1)
}

func TestScheduler_StopBeforeStart(t *testing.T) {
	sender := newRecordingSender()
	sched, _ := newSchedulerForTest(t, sender)

	sched.Stop() // must not panic or block
}

func TestScheduler_StartStop(t *testing.T) {
	sender := newRecordingSender()
	sched, _ := newSchedulerForTest(t, sender)

	sched.Start()
	sched.Start() // second Start is a no-op
	sched.Stop()
	sched.Stop() // second Stop is a no-op

	sched.Start()
	sched.Stop()
}
