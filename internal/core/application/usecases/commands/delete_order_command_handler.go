package commands

import (
	"context"
)

// DeleteOrderCommandHandler handles permanent purchase order deletion.
type DeleteOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewDeleteOrderCommandHandler creates a handler for order deletion operations.
func NewDeleteOrderCommandHandler(uowFactory OrderUoWFactory) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order deletion command.
// Loads the order first so a missing order fails with a not-found error,
// then removes the order and its lines in one transaction.
func (h *DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) error {
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

	if err = orderRepo.Delete(ctx, aggregate.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
