// Package jobs provides scheduled background tasks for the dispatch system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for order dispatching.
//
// # Available Jobs
//
// 1. BulkAssignmentJob - Periodically assigns all pending orders to available partners
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(runBulkAssignmentHandler, schedule, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The bulk assignment schedule is a six-field cron expression taken from
// configuration. The default "0 * * * * *" runs the job once a minute.
//
// # Error Handling
//
// - An empty pending queue is a normal outcome and is not logged as an error
// - Per-order failures are recorded on the assignment log by the handler;
//   the job only logs run-level failures (e.g. snapshot read errors)
package jobs
