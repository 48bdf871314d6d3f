package commands

import (
	"context"
)

// RemoveSupplierCommandHandler handles supplier removal.
// Soft removal deactivates the aggregate; hard removal delegates to the
// repository delete, which fails with a conflict error while purchase
// orders still reference the supplier.
type RemoveSupplierCommandHandler struct {
	uowFactory SupplierUoWFactory
}

// NewRemoveSupplierCommandHandler creates a handler for supplier removal operations.
func NewRemoveSupplierCommandHandler(uowFactory SupplierUoWFactory) RemoveSupplierCommandHandler {
	return RemoveSupplierCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the supplier removal command.
// Both variants load the supplier first so a missing supplier fails with a
// not-found error regardless of the removal mode.
func (h *RemoveSupplierCommandHandler) Handle(ctx context.Context, cmd RemoveSupplierCommand) error {
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

	supplierRepo := uow.SupplierRepository()
	aggregate, err := supplierRepo.Get(ctx, cmd.SupplierID())
	if err != nil {
		return err
	}

	if cmd.Hard() {
		if err = supplierRepo.Delete(ctx, aggregate.ID()); err != nil {
			return err
		}
	} else {
		aggregate.Deactivate()
		if err = supplierRepo.Update(ctx, aggregate); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
