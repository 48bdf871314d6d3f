package commands

import (
	"context"
)

// ChangeOrderStatusCommandHandler handles purchase order status transitions.
// The state machine lives in the aggregate; this handler only provides the
// transactional boundary around it.
type ChangeOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewChangeOrderStatusCommandHandler creates a handler for status transitions.
func NewChangeOrderStatusCommandHandler(uowFactory OrderUoWFactory) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status change command.
// Loads the order with a row lock so concurrent transitions of the same
// order serialize, applies the transition and persists the aggregate.
// Fails with a not-found error when the order does not exist and with an
// invalid-transition error when the state machine rejects the move; the
// stored status is unchanged in both cases.
func (h *ChangeOrderStatusCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStatusCommand) error {
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

	if err = aggregate.ChangeStatus(cmd.Target()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
