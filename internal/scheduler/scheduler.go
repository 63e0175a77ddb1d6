// Package scheduler runs the sync job on a fixed interval for daemon mode.
package scheduler

import (
	"context"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/catgar/catgar/internal/logging"
)

// Job is one scheduled sync pass. Errors are logged; the schedule keeps
// running regardless.
type Job func(ctx context.Context) error

// Scheduler periodically runs the sync job.
type Scheduler struct {
	scheduler *gocron.Scheduler
	job       Job
	interval  time.Duration
	log       *logging.Logger
}

// New creates a Scheduler that runs job every interval.
func New(interval time.Duration, job Job, log *logging.Logger) *Scheduler {
	return &Scheduler{
		scheduler: gocron.NewScheduler(time.UTC),
		job:       job,
		interval:  interval,
		log:       log,
	}
}

// Start schedules the job and starts the underlying scheduler. The first
// run happens immediately; subsequent runs follow the interval.
func (s *Scheduler) Start(ctx context.Context) error {
	_, err := s.scheduler.Every(s.interval).StartImmediately().Do(func() {
		s.log.Info("starting scheduled sync")
		if err := s.job(ctx); err != nil {
			s.log.Error("scheduled sync failed", "error", err)
			return
		}
		s.log.Info("scheduled sync complete")
	})
	if err != nil {
		return err
	}

	s.scheduler.StartAsync()
	return nil
}

// Stop stops the scheduler and cancels any future jobs.
func (s *Scheduler) Stop() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}
