package jobs

import (
	"context"
	"log/slog"
	"time"

	"provenance/internal/core/domain/model/order"
	"provenance/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// OpenProblemDigestJob periodically logs orders stuck in Problem state so
// operators notice disputes that are not moving. It adds no timeout
// semantics; escalation stays a human decision.
type OpenProblemDigestJob struct {
	uowFactory ports.UnitOfWorkFactory
	cron       *cron.Cron
	logger     *slog.Logger
}

// NewOpenProblemDigestJob creates a job digesting problem orders every five minutes.
func NewOpenProblemDigestJob(uowFactory ports.UnitOfWorkFactory, logger *slog.Logger) *OpenProblemDigestJob {
	return &OpenProblemDigestJob{
		uowFactory: uowFactory,
		cron:       cron.New(cron.WithSeconds()),
		logger:     logger.With("component", "open_problem_digest_job"),
	}
}

// Start begins the open problem digest job.
func (j *OpenProblemDigestJob) Start() error {
	_, err := j.cron.AddFunc("0 */5 * * * *", j.run)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Open problem digest job started (running every five minutes)")
	return nil
}

// Stop stops the open problem digest job.
func (j *OpenProblemDigestJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Open problem digest job stopped")
}

func (j *OpenProblemDigestJob) run() {
	ctx := context.Background()

	open, err := j.uowFactory.Create().OrderRepository().GetAllOpen(ctx)
	if err != nil {
		j.logger.ErrorContext(ctx, "Open problem digest job failed", "error", err)
		return
	}

	problems := 0
	for _, o := range open {
		if o.Status() != order.Problem {
			continue
		}
		problems++

		j.logger.WarnContext(ctx, "Order has an unresolved problem",
			"order_id", o.ID().String(),
			"batch_id", o.BatchID().String(),
			"buyer", o.Buyer().String(),
			"seller", o.Seller().String(),
			"details", o.ProblemDetails(),
			"open_for", time.Since(o.CreatedAt()).Round(time.Second).String(),
		)
	}

	if problems > 0 {
		j.logger.InfoContext(ctx, "Open problem digest completed",
			"open_orders", len(open), "problem_orders", problems)
	}
}
