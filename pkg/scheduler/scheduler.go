package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/reddalert/reddalert/ent"
	"github.com/reddalert/reddalert/pkg/config"
)

// Scheduler runs two jobs on a single loop:
//   - pipeline: every PollInterval, plus once at startup
//   - retention: daily at CleanupHour local time
//
// A job failure or panic is logged and swallowed so one bad tick never
// stops the loop. A tick runs to completion before the next may start.
type Scheduler struct {
	db        *ent.Client
	pipeline  *Pipeline
	pollEvery time.Duration
	retention config.RetentionConfig
	logger    *slog.Logger

	cancel context.CancelFunc
	done   chan struct{}
}

// NewScheduler creates the job loop around a wired pipeline.
func NewScheduler(db *ent.Client, pipeline *Pipeline, cfg *config.Config) *Scheduler {
	return &Scheduler{
		db:        db,
		pipeline:  pipeline,
		pollEvery: cfg.Poller.PollInterval,
		retention: cfg.Retention,
		logger:    slog.Default().With("component", "scheduler"),
	}
}

// Start launches the background loop, including an immediate pipeline
// run.
func (s *Scheduler) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	s.logger.Info("Scheduler started",
		"poll_interval", s.pollEvery,
		"retention_days", s.retention.RetentionDays,
		"cleanup_hour", s.retention.CleanupHour)
}

// Stop signals the loop to exit and waits for the in-flight job, if
// any, to finish. No new jobs start after Stop returns.
func (s *Scheduler) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	s.logger.Info("Scheduler stopped")
}

func (s *Scheduler) run(ctx context.Context) {
	defer close(s.done)

	s.runPipelineJob(ctx)

	ticker := time.NewTicker(s.pollEvery)
	defer ticker.Stop()

	retentionTimer := time.NewTimer(time.Until(nextCleanupTime(time.Now(), s.retention.CleanupHour)))
	defer retentionTimer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runPipelineJob(ctx)
		case <-retentionTimer.C:
			s.runRetentionJob(ctx)
			retentionTimer.Reset(time.Until(nextCleanupTime(time.Now(), s.retention.CleanupHour)))
		}
	}
}

func (s *Scheduler) runPipelineJob(ctx context.Context) {
	defer s.recoverJob("pipeline")

	summary, err := s.pipeline.Run(ctx)
	if err != nil {
		s.logger.Error("Pipeline job failed", "error", err)
		return
	}
	s.logger.Info("Pipeline job finished",
		"communities", summary.CommunitiesPolled,
		"new_content", summary.NewContent,
		"matches", summary.MatchesFound,
		"sent", summary.AlertsSent,
		"failed", summary.AlertsFailed)
}

func (s *Scheduler) runRetentionJob(ctx context.Context) {
	defer s.recoverJob("retention")

	result, err := CleanupOldData(ctx, s.db, s.retention.RetentionDays)
	if err != nil {
		s.logger.Error("Retention job failed", "error", err)
		return
	}
	s.logger.Info("Retention job finished",
		"matches_deleted", result.MatchesDeleted,
		"content_deleted", result.ContentDeleted,
		"retention_days", s.retention.RetentionDays)
}

func (s *Scheduler) recoverJob(name string) {
	if r := recover(); r != nil {
		s.logger.Error("Job panicked", "job", name, "panic", r)
	}
}

// nextCleanupTime returns the next wall-clock occurrence of hour:00 in
// local time, strictly after now.
func nextCleanupTime(now time.Time, hour int) time.Time {
	next := time.Date(now.Year(), now.Month(), now.Day(), hour, 0, 0, 0, now.Location())
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}
