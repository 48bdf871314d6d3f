package commands

import (
	"context"
)

// UpdateOrderLineCommandHandler handles replacing the commercial terms of an
// order line. Resolves the owning order from the line identifier, locks it,
// and persists the aggregate with recomputed totals.
type UpdateOrderLineCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUpdateOrderLineCommandHandler creates a handler for line term updates.
func NewUpdateOrderLineCommandHandler(uowFactory OrderUoWFactory) UpdateOrderLineCommandHandler {
	return UpdateOrderLineCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the line update command.
// Fails with a not-found error when no order owns the line and with a
// validation error (order unchanged) when the new terms are invalid.
func (h *UpdateOrderLineCommandHandler) Handle(ctx context.Context, cmd UpdateOrderLineCommand) error {
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
	aggregate, err := orderRepo.GetByLineID(ctx, cmd.LineID())
	if err != nil {
		return err
	}

	if err = aggregate.UpdateLine(cmd.LineID(), cmd.Quantity(), cmd.UnitPrice(), cmd.DiscountPct()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
