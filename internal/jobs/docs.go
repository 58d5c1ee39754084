// Package jobs provides scheduled background tasks for the ordering system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations around the ordering workflow.
//
// # Available Jobs
//
// 1. OverdueOrderWatchJob - Scans for pending orders past their consolidation
// deadline and logs them for platform follow-up
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required dependencies
//	jobManager := jobs.NewJobManager(orderRepository, "0 * * * * *", logger)
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
// Schedules use six-field cron expressions (with a seconds field). The
// overdue watch interval comes from configuration so operators can tune
// how aggressively overdue orders are surfaced.
//
// # Error Handling
//
// Scan failures are logged and retried on the next tick; overdue orders
// themselves are never mutated by this package.
package jobs
