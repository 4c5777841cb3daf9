package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/khoahotran/portfolio/pkg/logger"
)

// Job is a unit of scheduled work. Errors are logged, never retried.
type Job func(ctx context.Context) error

type Scheduler struct {
	cron   *cron.Cron
	logger logger.Logger
}

// New returns a scheduler whose schedules carry a leading seconds field.
func New(log logger.Logger) *Scheduler {
	return &Scheduler{
		cron:   cron.New(cron.WithSeconds()),
		logger: log,
	}
}

// Add registers job under a cron schedule. Each run gets ctx, so cancelling
// ctx makes later runs fail fast.
func (s *Scheduler) Add(ctx context.Context, name, schedule string, job Job) error {
	_, err := s.cron.AddFunc(schedule, func() {
		start := time.Now()
		if err := job(ctx); err != nil {
			s.logger.Error("Scheduled job failed", err, zap.String("job", name))
			return
		}
		s.logger.Info("Scheduled job finished", zap.String("job", name), zap.Duration("took", time.Since(start)))
	})
	if err != nil {
		return fmt.Errorf("schedule %s (%q): %w", name, schedule, err)
	}
	s.logger.Info("Job scheduled", zap.String("job", name), zap.String("schedule", schedule))
	return nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop halts the scheduler and waits for running jobs until ctx is done.
func (s *Scheduler) Stop(ctx context.Context) error {
	done := s.cron.Stop()
	select {
	case <-done.Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
