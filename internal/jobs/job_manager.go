package jobs

import (
	"fmt"
	"log/slog"
	"time"
)

// Config holds the cron schedules of the background jobs. Schedules carry a
// seconds field, e.g. "0 */15 * * * *".
type Config struct {
	UnlocatedStockSchedule string
	StalePickSheetSchedule string
	StalePickSheetAfter    time.Duration
}

const (
	DefaultUnlocatedStockSchedule = "0 0 * * * *"
	DefaultStalePickSheetSchedule = "0 */15 * * * *"
	DefaultStalePickSheetAfter    = 4 * time.Hour
)

func (c Config) withDefaults() Config {
	if c.UnlocatedStockSchedule == "" {
		c.UnlocatedStockSchedule = DefaultUnlocatedStockSchedule
	}
	if c.StalePickSheetSchedule == "" {
		c.StalePickSheetSchedule = DefaultStalePickSheetSchedule
	}
	if c.StalePickSheetAfter <= 0 {
		c.StalePickSheetAfter = DefaultStalePickSheetAfter
	}
	return c
}

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	unlocatedStockJob *UnlocatedStockReviewJob
	stalePickSheetJob *StalePickSheetJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes query handlers as dependencies to wire up the job execution.
func NewJobManager(
	config Config,
	unlocatedReader UnlocatedInventoryReader,
	staleReader StalePickSheetReader,
	logger *slog.Logger,
) *JobManager {
	config = config.withDefaults()

	return &JobManager{
		unlocatedStockJob: NewUnlocatedStockReviewJob(unlocatedReader, config.UnlocatedStockSchedule, logger),
		stalePickSheetJob: NewStalePickSheetJob(staleReader, config.StalePickSheetSchedule, config.StalePickSheetAfter, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.unlocatedStockJob.Start(); err != nil {
		return fmt.Errorf("failed to start un-located stock review job: %w", err)
	}

	if err := jm.stalePickSheetJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.unlocatedStockJob.Stop()
		return fmt.Errorf("failed to start stale pick sheet job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.stalePickSheetJob.Stop()
	jm.unlocatedStockJob.Stop()
}
