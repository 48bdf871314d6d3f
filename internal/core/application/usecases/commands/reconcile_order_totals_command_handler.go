package commands

import (
	"context"
)

// ReconcileOrderTotalsCommandHandler recomputes the stored totals of one
// purchase order from its line set. Restoring the aggregate already derives
// the totals from the lines, so loading under a row lock and writing the
// aggregate back is the whole reconciliation.
type ReconcileOrderTotalsCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewReconcileOrderTotalsCommandHandler creates a handler for totals reconciliation.
func NewReconcileOrderTotalsCommandHandler(uowFactory OrderUoWFactory) ReconcileOrderTotalsCommandHandler {
	return ReconcileOrderTotalsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the reconciliation command.
// Fails with a not-found error when the order does not exist; a concurrent
// deletion between detection and reconciliation surfaces that way and is
// harmless.
func (h *ReconcileOrderTotalsCommandHandler) Handle(ctx context.Context, cmd ReconcileOrderTotalsCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
