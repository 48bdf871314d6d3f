package commands

import (
	"context"
)

// RemoveOrderLineCommandHandler handles deleting a line from its owning
// purchase order with totals recomputation in the same transaction.
type RemoveOrderLineCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewRemoveOrderLineCommandHandler creates a handler for line removal operations.
func NewRemoveOrderLineCommandHandler(uowFactory OrderUoWFactory) RemoveOrderLineCommandHandler {
	return RemoveOrderLineCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the line removal command.
// Fails with a not-found error when no order owns the line.
func (h *RemoveOrderLineCommandHandler) Handle(ctx context.Context, cmd RemoveOrderLineCommand) error {
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

	if err = aggregate.RemoveLine(cmd.LineID()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
