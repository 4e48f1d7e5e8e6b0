// Package jobs provides scheduled background tasks for the fulfillment system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// for periodic warehouse housekeeping. Jobs only read; they never change state.
//
// # Available Jobs
//
// 1. UnlocatedStockReviewJob - Logs every stock unit without a warehouse location
// 2. StalePickSheetJob - Logs pending pick sheets older than a threshold
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(jobs.Config{
//		StalePickSheetAfter: 2 * time.Hour,
//	}, unlocatedHandler, staleHandler, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Schedules use six-field cron expressions (with seconds). Empty schedules fall
// back to hourly for the stock review and every 15 minutes for stale sheets.
//
// # Error Handling
//
// - A failed run is logged and retried on the next tick
// - Failed job starts will stop any already running jobs
package jobs
