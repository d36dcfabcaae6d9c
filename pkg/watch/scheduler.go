package watch

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"confvet-hq/confvet/pkg/telemetry/logging"
)

// Scheduler runs periodic full revalidation passes on a cron schedule,
// independent of file events. This catches drift the watcher cannot see,
// such as files changed while confvet was not running on a network mount.
type Scheduler struct {
	schedule string
	cron     *cron.Cron
	mu       sync.Mutex
	logger   *logging.Logger
	running  bool
}

// NewScheduler creates a new rescan scheduler for the given cron
// expression. An empty expression produces a scheduler that does nothing.
func NewScheduler(schedule string, logger *logging.Logger) *Scheduler {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Scheduler{
		schedule: schedule,
		cron:     cron.New(),
		logger:   logger.With("component", "watch.scheduler"),
	}
}

// Start begins scheduled rescans based on the cron expression.
//
// Common cron expressions:
//   - "0 * * * *"    - Hourly on the hour
//   - "*/15 * * * *" - Every 15 minutes
//   - "0 3 * * *"    - Daily at 3 AM
//
// If the schedule is empty, Start does nothing.
func (s *Scheduler) Start(ctx context.Context, task func(context.Context)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.schedule == "" {
		s.logger.Info("rescan schedule not configured, skipping scheduler")
		return nil
	}

	// Validate cron expression
	if _, err := cron.ParseStandard(s.schedule); err != nil {
		return fmt.Errorf("invalid cron schedule %q: %w", s.schedule, err)
	}

	_, err := s.cron.AddFunc(s.schedule, func() {
		s.runRescan(ctx, task)
	})
	if err != nil {
		return fmt.Errorf("failed to schedule rescan: %w", err)
	}

	s.cron.Start()
	s.running = true

	s.logger.Info("rescan scheduler started",
		"schedule", s.schedule,
	)

	// Wait for context cancellation in background
	go func() {
		<-ctx.Done()
		s.Stop()
	}()

	return nil
}

// runRescan executes a scheduled rescan.
func (s *Scheduler) runRescan(ctx context.Context, task func(context.Context)) {
	if ctx.Err() != nil {
		return
	}

	s.logger.Debug("starting scheduled rescan")
	task(ctx)
}

// Stop stops the scheduler and waits for any running rescan to complete.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cron != nil && s.running {
		ctx := s.cron.Stop()
		<-ctx.Done() // Wait for running jobs to finish
		s.running = false
		s.logger.Info("rescan scheduler stopped")
	}
}

// IsRunning returns true if the scheduler is running.
func (s *Scheduler) IsRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.running
}

// NextRun returns the next scheduled rescan time.
func (s *Scheduler) NextRun() *time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cron == nil {
		return nil
	}

	entries := s.cron.Entries()
	if len(entries) == 0 {
		return nil
	}

	next := entries[0].Next
	return &next
}
