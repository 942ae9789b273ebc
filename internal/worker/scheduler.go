// Package worker runs the periodic jobs: the contract expiry sweep and the
// activity feed trim.
package worker

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"contractapi/internal/service"
)

// Scheduler runs both jobs once at start and then on every tick.
type Scheduler struct {
	sweep      service.ExpirySweep
	activities service.ActivityService
	interval   time.Duration
	retain     int
	log        *zap.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

func NewScheduler(sweep service.ExpirySweep, activities service.ActivityService, interval time.Duration, retain int, log *zap.Logger) *Scheduler {
	if interval <= 0 {
		interval = 24 * time.Hour
	}
	return &Scheduler{
		sweep:      sweep,
		activities: activities,
		interval:   interval,
		retain:     retain,
		log:        log.With(zap.String("component", "scheduler")),
	}
}

// Start launches the loop in a goroutine. Calling Start twice is a no-op.
func (s *Scheduler) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)
	s.log.Info("scheduler started", zap.Duration("interval", s.interval))
}

// Stop cancels the loop and waits for the current run to finish.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	cancel, done := s.cancel, s.done
	s.cancel = nil
	s.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
	s.log.Info("scheduler stopped")
}

func (s *Scheduler) run(ctx context.Context) {
	defer close(s.done)

	s.RunOnce(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.RunOnce(ctx)
		}
	}
}

// RunOnce runs the sweep, then the activity cleanup. A failing job does not stop the other.
func (s *Scheduler) RunOnce(ctx context.Context) {
	created, err := s.sweep.Run(ctx)
	switch {
	case errors.Is(err, service.ErrSweepInProgress):
		s.log.Info("expiry sweep skipped: another instance holds the lock")
	case err != nil:
		s.log.Error("expiry sweep failed", zap.Error(err))
	default:
		s.log.Debug("expiry sweep finished", zap.Int("created", created))
	}

	deleted, err := s.activities.Cleanup(ctx, s.retain)
	if err != nil {
		s.log.Error("activity cleanup failed", zap.Error(err))
		return
	}
	s.log.Debug("activity cleanup finished", zap.Int("deleted", deleted))
}
