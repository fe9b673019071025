package jobs

import (
	"context"
	"log/slog"

	"provenance/internal/core/domain/model/batch"
	"provenance/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// TamperAuditJob periodically audits flagged batches. The tamper state is
// always re-derived from the flag ledger on load, so any batch whose stored
// stage disagrees with its ledger indicates write-path drift and is logged
// as an error.
type TamperAuditJob struct {
	uowFactory ports.UnitOfWorkFactory
	cron       *cron.Cron
	logger     *slog.Logger
}

// NewTamperAuditJob creates a job auditing tampered batches once a minute.
func NewTamperAuditJob(uowFactory ports.UnitOfWorkFactory, logger *slog.Logger) *TamperAuditJob {
	return &TamperAuditJob{
		uowFactory: uowFactory,
		cron:       cron.New(cron.WithSeconds()),
		logger:     logger.With("component", "tamper_audit_job"),
	}
}

// Start begins the tamper audit job.
func (j *TamperAuditJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", j.run)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Tamper audit job started (running every minute)")
	return nil
}

// Stop stops the tamper audit job.
func (j *TamperAuditJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Tamper audit job stopped")
}

func (j *TamperAuditJob) run() {
	ctx := context.Background()

	tampered, err := j.uowFactory.Create().BatchRepository().GetAllTampered(ctx)
	if err != nil {
		j.logger.ErrorContext(ctx, "Tamper audit job failed", "error", err)
		return
	}

	for _, b := range tampered {
		if !b.Tampered() || b.Stage() != batch.Tampered {
			j.logger.ErrorContext(ctx, "Batch state drifted from its flag ledger",
				"batch_id", b.ID().String(),
				"stage", b.Stage().String(),
				"flag_count", b.FlagCount(),
			)
			continue
		}

		j.logger.WarnContext(ctx, "Batch awaiting flag resolution",
			"batch_id", b.ID().String(),
			"flag_count", b.FlagCount(),
			"custodian", b.Custodian().String(),
		)
	}

	if len(tampered) > 0 {
		j.logger.InfoContext(ctx, "Tamper audit completed", "tampered_batches", len(tampered))
	}
}
