// Package reminder drives the three daily broadcast firings. Each trigger
// runs its own goroutine; a firing fans out over every user with a plan,
// isolating per-user failures so one bad send never blocks the rest.
package reminder

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/adilzhanb/zhospar/internal/domain"
	"github.com/adilzhanb/zhospar/internal/message"
	"github.com/adilzhanb/zhospar/internal/repository"
	"github.com/adilzhanb/zhospar/internal/service"
	"github.com/adilzhanb/zhospar/internal/transport"
)

// firingTimeout caps one full fan-out, generation calls included.
const firingTimeout = 15 * time.Minute

// Scheduler owns the three recurring reminder triggers.
type Scheduler struct {
	profiles repository.ProfileRepo
	tasks    service.TaskService
	progress service.ProgressService
	composer *message.Composer
	sender   transport.Sender
	logger   *slog.Logger
	times    map[domain.ReminderKind]TimeOfDay
	now      func() time.Time

	mu      sync.Mutex
	quit    chan struct{}
	wg      sync.WaitGroup
	running bool
}

// NewScheduler creates a stopped Scheduler with the default trigger times.
func NewScheduler(
	profiles repository.ProfileRepo,
	tasks service.TaskService,
	progress service.ProgressService,
	composer *message.Composer,
	sender transport.Sender,
	logger *slog.Logger,
) *Scheduler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Scheduler{
		profiles: profiles,
		tasks:    tasks,
		progress: progress,
		composer: composer,
		sender:   sender,
		logger:   logger,
		times:    DefaultTimes,
		now:      time.Now,
	}
}

// Start arms all three triggers. Calling Start on a running scheduler is a
// no-op.
func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return
	}
	s.quit = make(chan struct{})
	s.running = true

	for kind, at := range s.times {
		s.wg.Add(1)
		go s.runTrigger(kind, at, s.quit)
	}
	s.logger.Info("reminder scheduler started", "triggers", len(s.times))
}

// Stop cancels all pending and future firings. Safe to call twice or
// before Start.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	close(s.quit)
	s.running = false
	s.mu.Unlock()

	s.wg.Wait()
	s.logger.Info("reminder scheduler stopped")
}

func (s *Scheduler) runTrigger(kind domain.ReminderKind, at TimeOfDay, quit <-chan struct{}) {
	defer s.wg.Done()
	for {
		next := at.Next(s.now())
		timer := time.NewTimer(next.Sub(s.now()))
		select {
		case <-quit:
			timer.Stop()
			return
		case <-timer.C:
			ctx, cancel := context.WithTimeout(context.Background(), firingTimeout)
			s.Fire(ctx, kind)
			cancel()
		}
	}
}

// Fire performs one fan-out for the given reminder kind. Exposed for the
// CLI's immediate-send mode and for tests; the trigger goroutines call it
// on schedule.
func (s *Scheduler) Fire(ctx context.Context, kind domain.ReminderKind) {
	s.logger.Info("reminder firing", "kind", kind)

	ids, err := s.profiles.ListIDsWithPlan(ctx)
	if err != nil {
		s.logger.Error("listing users for reminder", "kind", kind, "error", err)
		return
	}

	sent := 0
	for _, userID := range ids {
		if err := s.remindUser(ctx, kind, userID); err != nil {
			s.logger.Error("sending reminder", "kind", kind, "user", userID, "error", err)
			continue
		}
		sent++
	}
	s.logger.Info("reminder firing done", "kind", kind, "users", len(ids), "sent", sent)
}

func (s *Scheduler) remindUser(ctx context.Context, kind domain.ReminderKind, userID string) error {
	profile, err := s.profiles.Get(ctx, userID)
	if err != nil {
		return err
	}
	if !profile.RemindersEnabled {
		return nil
	}

	name := profile.DisplayName()
	style := profile.Style()

	switch kind {
	case domain.ReminderMorning:
		stats, err := s.progress.Stats(ctx, userID)
		if err != nil {
			if errors.Is(err, service.ErrNoPlan) {
				return nil
			}
			return err
		}
		return s.sender.Send(ctx, userID, s.composer.Morning(name, style, stats.CurrentStreak))

	case domain.ReminderAfternoon:
		today, err := s.tasks.GetDailyTasks(ctx, userID)
		if err != nil {
			if errors.Is(err, service.ErrNoPlan) {
				return nil
			}
			return err
		}
		return s.sender.Send(ctx, userID, s.composer.Afternoon(name, style, today.CompletedCount, today.TotalCount))

	case domain.ReminderEvening:
		today, err := s.tasks.GetDailyTasks(ctx, userID)
		if err != nil {
			if errors.Is(err, service.ErrNoPlan) {
				return nil
			}
			return err
		}
		if err := s.sender.Send(ctx, userID, s.composer.Evening(name, style, today.CompletedCount, today.TotalCount)); err != nil {
			return err
		}

		stats, err := s.progress.Stats(ctx, userID)
		if err != nil {
			return err
		}
		if msg := s.composer.Milestone(name, style, stats.CurrentStreak); msg != "" {
			if err := s.sender.Send(ctx, userID, msg); err != nil {
				return err
			}
			s.logger.Info("streak milestone sent", "user", userID, "streak", stats.CurrentStreak)
		}
		return nil

	default:
		return fmt.Errorf("unknown reminder kind %q", kind)
	}
}
