// Package jobs provides scheduled background tasks for the marketplace.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for operating the service.
//
// # Available Jobs
//
// 1. TamperAuditJob - Periodically re-derives the tamper state of flagged
// batches from their flag ledgers and logs any drift between the stored
// stage and the ledger.
//
// 2. OpenProblemDigestJob - Periodically logs orders sitting in Problem
// state so operators notice disputes that are not moving.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(uowFactory, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Both jobs only read state and log findings; a failed run is logged and
// retried on the next tick. Failed job starts will stop any already running
// jobs.
package jobs
