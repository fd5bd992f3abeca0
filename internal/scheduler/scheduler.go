// Package scheduler runs the daily prediction jobs on cron schedules.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/jleboube/no-hitter-analysis/internal/metrics"
	"github.com/jleboube/no-hitter-analysis/internal/models"
)

// PredictionRunner produces a prediction for a date.
type PredictionRunner interface {
	Predict(ctx context.Context, date time.Time) (*models.PredictionResult, error)
}

// ResultSink persists completed predictions.
type ResultSink interface {
	Save(result *models.PredictionResult) error
}

// Scheduler manages the scheduled prediction jobs. All schedules run in UTC.
type Scheduler struct {
	cron            *cron.Cron
	runner          PredictionRunner
	sink            ResultSink
	logger          *logrus.Logger
	mu              sync.RWMutex
	isRunning       bool
	jobIDs          []cron.EntryID
	gracefulTimeout time.Duration
	now             func() time.Time
}

// NewScheduler creates a new scheduler.
func NewScheduler(runner PredictionRunner, sink ResultSink, logger *logrus.Logger) *Scheduler {
	return &Scheduler{
		cron:            cron.New(cron.WithLocation(time.UTC)),
		runner:          runner,
		sink:            sink,
		logger:          logger,
		jobIDs:          make([]cron.EntryID, 0),
		gracefulTimeout: 30 * time.Second,
		now:             time.Now,
	}
}

// SetGracefulTimeout overrides how long Stop waits for a running job.
func (s *Scheduler) SetGracefulTimeout(d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if d > 0 {
		s.gracefulTimeout = d
	}
}

// SchedulePredictions registers one prediction job per cron expression.
func (s *Scheduler) SchedulePredictions(cronExpressions []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return fmt.Errorf("cannot schedule job while scheduler is running")
	}

	for _, expr := range cronExpressions {
		entryID, err := s.cron.AddFunc(expr, s.runOnce)
		if err != nil {
			return fmt.Errorf("failed to add job %q: %w", expr, err)
		}
		s.jobIDs = append(s.jobIDs, entryID)
		s.logger.WithField("schedule", expr).Info("Scheduled prediction job")
	}

	return nil
}

// RunNow executes a prediction immediately. The daemon calls this once at
// startup so a restart between scheduled runs still produces today's result.
func (s *Scheduler) RunNow() {
	s.runOnce()
}

// runOnce is the scheduled job body. Off-season dates are skipped; failures
// are logged and counted but never stop the schedule.
func (s *Scheduler) runOnce() {
	date := s.now().UTC()
	log := s.logger.WithField("date", date.Format("2006-01-02"))

	if !models.IsInSeason(date) {
		metrics.RecordScheduledRunSkipped()
		log.Info("Outside the season window, skipping prediction run")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	result, err := s.runner.Predict(ctx, date)
	if err != nil {
		metrics.RecordPredictionFailure()
		log.WithError(err).Error("Scheduled prediction failed")
		return
	}

	if err := s.sink.Save(result); err != nil {
		log.WithError(err).Error("Failed to persist prediction")
		return
	}

	log.WithFields(logrus.Fields{
		"probability_percent": result.ProbabilityPercent,
		"risk_level":          result.RiskLevel(),
	}).Info("Scheduled prediction stored")
}

// Start starts the scheduler.
func (s *Scheduler) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return fmt.Errorf("scheduler is already running")
	}

	if len(s.jobIDs) == 0 {
		return fmt.Errorf("no jobs scheduled")
	}

	s.cron.Start()
	s.isRunning = true
	s.logger.WithField("jobs", len(s.jobIDs)).Info("Scheduler started")

	return nil
}

// Stop gracefully stops the scheduler, waiting for a running job to finish.
func (s *Scheduler) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isRunning {
		return nil
	}

	stopCtx := s.cron.Stop()
	select {
	case <-stopCtx.Done():
	case <-time.After(s.gracefulTimeout):
		s.logger.Warn("Scheduler stop timed out with a job still running")
	}
	s.isRunning = false
	s.logger.Info("Scheduler stopped")

	return nil
}

// IsRunning returns whether the scheduler is currently running.
func (s *Scheduler) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isRunning
}

// GetNextRun returns the time of the next scheduled job run.
func (s *Scheduler) GetNextRun() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.isRunning || len(s.jobIDs) == 0 {
		return time.Time{}
	}

	nextRun := time.Time{}
	for _, jobID := range s.jobIDs {
		entry := s.cron.Entry(jobID)
		if entry.Valid() {
			nextTime := entry.Next
			if nextRun.IsZero() || nextTime.Before(nextRun) {
				nextRun = nextTime
			}
		}
	}

	return nextRun
}

// Entries returns information about scheduled entries.
func (s *Scheduler) Entries() []cron.Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := make([]cron.Entry, 0, len(s.jobIDs))
	for _, jobID := range s.jobIDs {
		entry := s.cron.Entry(jobID)
		if entry.Valid() {
			entries = append(entries, entry)
		}
	}

	return entries
}
