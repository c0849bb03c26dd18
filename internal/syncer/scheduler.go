package syncer

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/appointment-bridge/backend/internal/websocket"
)

// Scheduler runs the sync periodically in the background. It is
// disabled entirely when the interval is zero or negative.
type Scheduler struct {
	cron        *cron.Cron
	factory     ServiceFactory
	broadcaster *websocket.EventBroadcaster
	interval    time.Duration
}

// NewScheduler creates a background sync scheduler. The broadcaster may
// be nil when no websocket hub is wired in.
func NewScheduler(factory ServiceFactory, broadcaster *websocket.EventBroadcaster, intervalMin int) *Scheduler {
	return &Scheduler{
		cron:        cron.New(),
		factory:     factory,
		broadcaster: broadcaster,
		interval:    time.Duration(intervalMin) * time.Minute,
	}
}

// Start schedules the periodic sync job. A no-op when disabled.
func (s *Scheduler) Start() error {
	if s.interval <= 0 {
		log.Println("Background sync disabled (no interval configured)")
		return nil
	}

	spec := "@every " + s.interval.String()
	if _, err := s.cron.AddFunc(spec, s.runSync); err != nil {
		return err
	}

	s.cron.Start()
	log.Printf("Background sync scheduled every %s", s.interval)
	return nil
}

// Stop gracefully shuts down the scheduler, waiting for a running sync
// to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	log.Println("Background sync scheduler stopped")
}

// TriggerSync runs one sync in the background, outside the schedule.
func (s *Scheduler) TriggerSync() {
	go s.runSync()
}

// runSync performs one full sync pass and reports the outcome.
func (s *Scheduler) runSync() {
	ctx := context.Background()

	service, err := s.factory(ctx)
	if err != nil {
		log.Printf("Background sync setup failed: %v", err)
		if s.broadcaster != nil {
			s.broadcaster.BroadcastSyncError(err)
		}
		return
	}

	// Scheduled runs always do a full sync; the calendar's dedup tags
	// keep repeated full passes idempotent.
	result, err := service.Sync(ctx, nil)
	if err != nil {
		log.Printf("Background sync failed: %v", err)
		if s.broadcaster != nil {
			s.broadcaster.BroadcastSyncError(err)
		}
		return
	}

	log.Printf("Background sync completed: %d fetched, %d synced, %d skipped",
		result.Fetched, result.Synced, result.Skipped)

	if s.broadcaster != nil {
		s.broadcaster.BroadcastSyncCompleted(*result)
	}
}
