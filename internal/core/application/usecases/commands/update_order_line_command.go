package commands

import (
	"errors"

	"github.com/shopspring/decimal"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/guard"
)

var ErrUpdateOrderLineCommandIsNotConstructed = errors.New(
	"UpdateOrderLineCommand must be created via NewUpdateOrderLineCommand constructor",
)

// UpdateOrderLineCommand represents a request to replace the commercial
// terms (quantity, unit price, discount) of an existing order line. The
// line is addressed by its own identifier; the owning order is resolved by
// the handler. Derived amounts are always recomputed, never accepted.
type UpdateOrderLineCommand struct { //nolint:recvcheck //using for validation
	lineID      kernel.UUID
	quantity    int
	unitPrice   decimal.Decimal
	discountPct decimal.Decimal

	guard guard.ConstructorGuard
}

// NewUpdateOrderLineCommand creates a command to replace line terms.
// Validates that the line ID is valid; the terms themselves are validated
// by the domain calculator so the rules live in one place.
func NewUpdateOrderLineCommand(
	lineID kernel.UUID, quantity int, unitPrice, discountPct decimal.Decimal,
) (UpdateOrderLineCommand, error) {
	cmd := UpdateOrderLineCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setLineID(lineID); err != nil {
		return UpdateOrderLineCommand{}, err
	}
	cmd.quantity = quantity
	cmd.unitPrice = unitPrice
	cmd.discountPct = discountPct

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderLineCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderLineCommandIsNotConstructed)
}

// LineID returns the identifier of the line to update.
func (c UpdateOrderLineCommand) LineID() kernel.UUID {
	return c.lineID
}

// Quantity returns the replacement quantity.
func (c UpdateOrderLineCommand) Quantity() int {
	return c.quantity
}

// UnitPrice returns the replacement unit price.
func (c UpdateOrderLineCommand) UnitPrice() decimal.Decimal {
	return c.unitPrice
}

// DiscountPct returns the replacement discount percentage.
func (c UpdateOrderLineCommand) DiscountPct() decimal.Decimal {
	return c.discountPct
}

func (c *UpdateOrderLineCommand) setLineID(lineID kernel.UUID) error {
	if err := lineID.Validate(); err != nil {
		return err
	}

	c.lineID = lineID
	return nil
}
