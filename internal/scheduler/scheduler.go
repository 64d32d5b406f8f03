package scheduler

import (
	"time"

	"github.com/robfig/cron/v3"

	"gasdepot-backend/internal/jobs"
	"gasdepot-backend/internal/logger"
)

// Scheduler manages cron job scheduling
type Scheduler struct {
	cron *cron.Cron
	jobs *jobs.JobRunner
}

// NewScheduler creates a new scheduler with the provided job runner
func NewScheduler(jobRunner *jobs.JobRunner) *Scheduler {
	// UTC with seconds precision
	c := cron.New(
		cron.WithLocation(time.UTC),
		cron.WithSeconds(),
	)

	s := &Scheduler{
		cron: c,
		jobs: jobRunner,
	}

	s.registerJobs()
	return s
}

// registerJobs registers all scheduled jobs with the cron scheduler
func (s *Scheduler) registerJobs() {
	cfg := s.jobs.Config().Scheduler

	if _, err := s.cron.AddFunc(cfg.LongHoldReport, s.jobs.ReportLongHolds); err != nil {
		logger.Error("Failed to register ReportLongHolds job", "error", err)
	}
	if _, err := s.cron.AddFunc(cfg.LowStockReport, s.jobs.ReportLowStock); err != nil {
		logger.Error("Failed to register ReportLowStock job", "error", err)
	}
	if _, err := s.cron.AddFunc(cfg.RefundReadyReport, s.jobs.ReportRefundReady); err != nil {
		logger.Error("Failed to register ReportRefundReady job", "error", err)
	}
}

// Start begins the scheduler
func (s *Scheduler) Start() {
	s.cron.Start()
	logger.Info("Scheduler started", "jobs", len(s.cron.Entries()))
}

// Stop halts the scheduler and waits for running jobs to finish
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	logger.Info("Scheduler stopped")
}
