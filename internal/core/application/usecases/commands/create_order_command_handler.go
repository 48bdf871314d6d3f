package commands

import (
	"context"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/order"
	"procurement/internal/core/domain/model/supplier"
	"procurement/internal/pkg/errs"
)

// CreateOrderCommandHandler handles the business logic for purchase order
// creation. The referenced supplier must exist and be active; the order and
// its initial lines are persisted as one aggregate in one transaction, with
// totals derived by the domain.
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires a cross-aggregate UoWFactory: creation reads the supplier and
// writes the order inside the same transaction.
func NewCreateOrderCommandHandler(uowFactory UoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command.
// Fails with a not-found error when the supplier does not exist, a
// validation error when it is inactive or any line is invalid, and an
// already-exists error when the order number is taken.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	aggregate, err := order.NewPurchaseOrder(
		cmd.OrderID(),
		cmd.SupplierID(),
		cmd.OrderNumber(),
		cmd.OrderDate(),
		cmd.ExpectedDelivery(),
		cmd.Currency(),
		cmd.PaymentTerms(),
		cmd.Notes(),
		cmd.CreatedBy(),
	)
	if err != nil {
		return err
	}

	for _, spec := range cmd.Lines() {
		line, lineErr := order.NewLine(
			kernel.NewUUID(),
			spec.LineNumber,
			spec.ProductID,
			spec.Description,
			spec.Quantity,
			spec.UnitPrice,
			spec.DiscountPct,
		)
		if lineErr != nil {
			return lineErr
		}
		if lineErr = aggregate.AddLine(line); lineErr != nil {
			return lineErr
		}
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	supplierAggregate, err := uow.SupplierRepository().Get(ctx, cmd.SupplierID())
	if err != nil {
		return err
	}
	if !supplierAggregate.IsActive() {
		return errs.NewValueIsInvalidErrorWithCause(
			"supplierId", supplier.ErrSupplierIsInactive,
		)
	}

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
