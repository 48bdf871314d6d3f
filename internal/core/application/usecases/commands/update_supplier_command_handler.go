package commands

import (
	"context"
)

// UpdateSupplierCommandHandler handles the business logic for supplier
// updates. Loads the aggregate, applies the rename and contact replacement
// through domain methods, and persists the result in one transaction.
type UpdateSupplierCommandHandler struct {
	uowFactory SupplierUoWFactory
}

// NewUpdateSupplierCommandHandler creates a handler for supplier update operations.
func NewUpdateSupplierCommandHandler(uowFactory SupplierUoWFactory) UpdateSupplierCommandHandler {
	return UpdateSupplierCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the supplier update command.
// Fails with a not-found error when the supplier does not exist and with a
// validation error when the replacement data is rejected by the aggregate.
func (h *UpdateSupplierCommandHandler) Handle(ctx context.Context, cmd UpdateSupplierCommand) error {
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

	if err = aggregate.Rename(cmd.Name(), cmd.TaxID()); err != nil {
		return err
	}
	if err = aggregate.UpdateContact(cmd.Contact()); err != nil {
		return err
	}

	if err = supplierRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
