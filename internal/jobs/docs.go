// Package jobs provides scheduled background tasks for the propagation system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the nursery workflow.
//
// # Available Jobs
//
// 1. StageValidationJob - Runs every ten minutes to re-validate active orders and refresh their cached validation snapshots
// 2. OverdueOrdersJob - Runs every hour to flag orders past their requested delivery date
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(activeOrdersHandler, validateHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// - Per-order validation failures are logged and skipped; the sweep continues
// - Failed job starts will stop any already running jobs
package jobs
