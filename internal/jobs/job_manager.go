package jobs

import (
	"fmt"
	"log/slog"

	"provenance/internal/core/ports"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	tamperAuditJob       *TamperAuditJob
	openProblemDigestJob *OpenProblemDigestJob
}

// NewJobManager creates a new job manager with all required jobs.
// Jobs only read state, so they share a unit of work factory rather than
// taking command handlers.
func NewJobManager(uowFactory ports.UnitOfWorkFactory, logger *slog.Logger) *JobManager {
	return &JobManager{
		tamperAuditJob:       NewTamperAuditJob(uowFactory, logger),
		openProblemDigestJob: NewOpenProblemDigestJob(uowFactory, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.tamperAuditJob.Start(); err != nil {
		return fmt.Errorf("failed to start tamper audit job: %w", err)
	}

	if err := jm.openProblemDigestJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.tamperAuditJob.Stop()
		return fmt.Errorf("failed to start open problem digest job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.tamperAuditJob.Stop()
	jm.openProblemDigestJob.Stop()
}
