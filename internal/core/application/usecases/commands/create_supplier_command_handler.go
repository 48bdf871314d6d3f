package commands

import (
	"context"

	"procurement/internal/core/domain/model/supplier"
)

// CreateSupplierCommandHandler handles the business logic for supplier
// registration. New suppliers always start in the Active status; the
// repository enforces email uniqueness.
type CreateSupplierCommandHandler struct {
	uowFactory SupplierUoWFactory
}

// NewCreateSupplierCommandHandler creates a handler for supplier registration.
// Requires a SupplierUoWFactory for transactional persistence.
func NewCreateSupplierCommandHandler(uowFactory SupplierUoWFactory) CreateSupplierCommandHandler {
	return CreateSupplierCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the supplier registration command.
// Constructs the aggregate (which applies contact validation and country
// defaulting) and persists it in a transaction.
func (h *CreateSupplierCommandHandler) Handle(ctx context.Context, cmd CreateSupplierCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	aggregate, err := supplier.NewSupplier(cmd.SupplierID(), cmd.Name(), cmd.TaxID(), cmd.Contact())
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

	if err = uow.SupplierRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
