package scheduler

import (
	"time"

	"github.com/go-co-op/gocron"
	"go.uber.org/zap"
)

// Job re-renders the wallpaper artifact.
type Job func() error

// Scheduler periodically re-renders the wallpaper so the rotated wheel and
// newly fetched activities stay current.
type Scheduler struct {
	scheduler *gocron.Scheduler
	job       Job
	interval  time.Duration
	log       *zap.Logger
}

// New creates a Scheduler running job every interval.
func New(interval time.Duration, job Job, log *zap.Logger) *Scheduler {
	return &Scheduler{
		scheduler: gocron.NewScheduler(time.Local),
		job:       job,
		interval:  interval,
		log:       log,
	}
}

// Start runs the job once immediately, then on every tick.
func (s *Scheduler) Start() error {
	minutes := int(s.interval.Minutes())
	if minutes <= 0 {
		minutes = 30
	}

	_, err := s.scheduler.Every(minutes).Minutes().StartImmediately().Do(func() {
		s.log.Info("rendering wallpaper")
		if err := s.job(); err != nil {
			s.log.Error("wallpaper render failed", zap.Error(err))
			return
		}
		s.log.Info("wallpaper render complete")
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
