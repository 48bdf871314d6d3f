// Package jobs provides scheduled background tasks for the procurement system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the purchase order service.
//
// # Available Jobs
//
// 1. TotalsReconciliationJob - Runs every minute to find purchase orders whose
// stored totals drifted from the sums of their lines and recompute them.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(reconcileHandler, uowFactory, logger)
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
// The reconciliation job uses the cron expression "* * * * *", running once a
// minute. Drift is rare, so the scan is cheap: one aggregate query comparing
// stored totals against line sums.
//
// # Error Handling
//
// - Scan failures abort the run and are logged
// - Per-order repair failures are logged and do not stop the remaining repairs
// - Failed job starts are reported to the caller
package jobs
