// Package jobs provides scheduled background tasks for the trading platform.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required by the order engine.
//
// # Available Jobs
//
// 1. CounterOfferExpiryJob - Runs every minute to close counter-offers whose
// advisory deadline has passed without a response
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(expireCounterOffersHandler, logger)
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
// The expiry sweep uses the standard five-field cron expression "* * * * *",
// running once a minute. Counter-offer deadlines are advisory, so minute
// granularity is sufficient.
//
// # Error Handling
//
// - Sweep failures are logged and retried on the next tick
// - Failed job starts will stop any already running jobs
package jobs
