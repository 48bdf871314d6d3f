package commands

import (
	"context"

	"procurement/internal/core/domain/model/order"
)

// AddOrderLineCommandHandler handles appending a line to a purchase order.
// The order row is locked for the whole operation so the line set and the
// recomputed totals stay consistent under concurrent mutations.
type AddOrderLineCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewAddOrderLineCommandHandler creates a handler for line append operations.
func NewAddOrderLineCommandHandler(uowFactory OrderUoWFactory) AddOrderLineCommandHandler {
	return AddOrderLineCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the line append command.
// Fails with a not-found error when the order does not exist, a validation
// error when the line terms are invalid, and an already-exists error when
// the explicit line number is taken.
func (h *AddOrderLineCommandHandler) Handle(ctx context.Context, cmd AddOrderLineCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	spec := cmd.Line()
	line, err := order.NewLine(
		cmd.LineID(),
		spec.LineNumber,
		spec.ProductID,
		spec.Description,
		spec.Quantity,
		spec.UnitPrice,
		spec.DiscountPct,
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
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

	if err = aggregate.AddLine(line); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
