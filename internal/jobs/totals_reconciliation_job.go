package jobs

import (
	"context"
	"log/slog"

	"procurement/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// TotalsReconciliationJob periodically repairs purchase orders whose stored
// totals have drifted from the sums of their lines. Drift should not happen
// through this application, but data loaded or edited outside it has no
// other road back to consistency.
type TotalsReconciliationJob struct {
	handler    commands.ReconcileOrderTotalsCommandHandler
	uowFactory commands.OrderUoWFactory
	cron       *cron.Cron
	logger     *slog.Logger
}

// NewTotalsReconciliationJob creates a job that scans for stale totals and
// re-runs recomputation order by order, each in its own transaction.
func NewTotalsReconciliationJob(
	handler commands.ReconcileOrderTotalsCommandHandler,
	uowFactory commands.OrderUoWFactory,
	logger *slog.Logger,
) *TotalsReconciliationJob {
	return &TotalsReconciliationJob{
		handler:    handler,
		uowFactory: uowFactory,
		cron:       cron.New(),
		logger:     logger.With("component", "totals_reconciliation_job"),
	}
}

// Start begins the reconciliation job to run every minute.
func (j *TotalsReconciliationJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		j.run(context.Background())
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Totals reconciliation job started (running every minute)")
	return nil
}

// Stop stops the reconciliation job.
func (j *TotalsReconciliationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Totals reconciliation job stopped")
}

func (j *TotalsReconciliationJob) run(ctx context.Context) {
	// The scan runs outside any transaction; each repair takes its own.
	ids, err := j.uowFactory.Create().OrderRepository().GetIDsWithStaleTotals(ctx)
	if err != nil {
		j.logger.ErrorContext(ctx, "Stale totals scan failed", "error", err)
		return
	}
	if len(ids) == 0 {
		return
	}

	j.logger.WarnContext(ctx, "Orders with stale totals detected", "count", len(ids))

	for _, id := range ids {
		cmd, cmdErr := commands.NewReconcileOrderTotalsCommand(id)
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Failed to build reconciliation command", "order_id", id.String(), "error", cmdErr)
			continue
		}

		if handleErr := j.handler.Handle(ctx, cmd); handleErr != nil {
			// An order deleted between scan and repair is not a failure
			j.logger.ErrorContext(ctx, "Totals reconciliation failed", "order_id", id.String(), "error", handleErr)
			continue
		}

		j.logger.InfoContext(ctx, "Order totals reconciled", "order_id", id.String())
	}
}
