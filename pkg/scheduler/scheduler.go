// Package scheduler triggers the import pipeline on a cron schedule with a
// single retry after a fixed delay on failure.
package scheduler

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// Job is one full pipeline run.
type Job func(ctx context.Context) error

// Scheduler runs a Job on a cron schedule. Overlapping runs are skipped.
type Scheduler struct {
	cron       *cron.Cron
	spec       string
	retryDelay time.Duration
	job        Job
	logger     *logrus.Logger
	running    atomic.Bool
}

// New creates a scheduler for the given standard cron expression.
func New(spec string, retryDelay time.Duration, job Job) *Scheduler {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	return &Scheduler{
		cron:       cron.New(),
		spec:       spec,
		retryDelay: retryDelay,
		job:        job,
		logger:     logger,
	}
}

// Start schedules the job and starts the cron loop.
func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc(s.spec, s.trigger); err != nil {
		return err
	}
	s.cron.Start()
	s.logger.WithField("schedule", s.spec).Info("Scheduler started")
	return nil
}

// Stop stops the cron loop and waits for a running job to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("Scheduler stopped")
}

func (s *Scheduler) trigger() {
	if !s.running.CompareAndSwap(false, true) {
		s.logger.Warn("Previous run still in progress, skipping trigger")
		return
	}
	defer s.running.Store(false)

	if err := s.RunWithRetry(context.Background()); err != nil {
		s.logger.WithError(err).Error("Import run failed after retry")
	}
}

// RunWithRetry executes the job, retrying exactly once after the configured
// delay when the first attempt fails. The retry re-executes the whole
// pipeline from the start.
func (s *Scheduler) RunWithRetry(ctx context.Context) error {
	err := s.job(ctx)
	if err == nil {
		return nil
	}
	s.logger.WithError(err).WithField("retry_delay", s.retryDelay.String()).Warn("Import run failed, scheduling retry")

	select {
	case <-time.After(s.retryDelay):
	case <-ctx.Done():
		return ctx.Err()
	}
	return s.job(ctx)
}
