package commands

import (
	"context"
)

// UpdateOrderCommandHandler handles purchase order header edits.
type UpdateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUpdateOrderCommandHandler creates a handler for order header edits.
func NewUpdateOrderCommandHandler(uowFactory OrderUoWFactory) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order header edit command.
// Loads the order with a row lock, applies the detail replacement and
// persists the aggregate. Fails with a not-found error when the order does
// not exist.
func (h *UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) error {
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

	aggregate.UpdateDetails(cmd.ExpectedDelivery(), cmd.Notes())

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
