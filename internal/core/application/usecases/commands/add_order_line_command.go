package commands

import (
	"errors"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/errs"
	"procurement/internal/pkg/guard"
)

var ErrAddOrderLineCommandIsNotConstructed = errors.New(
	"AddOrderLineCommand must be created via NewAddOrderLineCommand constructor",
)

// AddOrderLineCommand represents a request to append a line to an existing
// purchase order. Adding a line recomputes the order totals in the same
// transaction.
type AddOrderLineCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	lineID  kernel.UUID
	line    LineSpec

	guard guard.ConstructorGuard
}

// NewAddOrderLineCommand creates a command to append an order line.
// Validates the identifiers and that a product is referenced; quantity,
// price and discount are validated by the domain calculator.
func NewAddOrderLineCommand(orderID, lineID kernel.UUID, line LineSpec) (AddOrderLineCommand, error) {
	cmd := AddOrderLineCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setLineID(lineID),
		cmd.setLine(line),
	); err != nil {
		return AddOrderLineCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddOrderLineCommand) Validate() error {
	return c.guard.Validate(ErrAddOrderLineCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to extend.
func (c AddOrderLineCommand) OrderID() kernel.UUID {
	return c.orderID
}

// LineID returns the identifier assigned to the new line.
func (c AddOrderLineCommand) LineID() kernel.UUID {
	return c.lineID
}

// Line returns the client-supplied line attributes.
func (c AddOrderLineCommand) Line() LineSpec {
	return c.line
}

func (c *AddOrderLineCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AddOrderLineCommand) setLineID(lineID kernel.UUID) error {
	if err := lineID.Validate(); err != nil {
		return err
	}

	c.lineID = lineID
	return nil
}

func (c *AddOrderLineCommand) setLine(line LineSpec) error {
	if line.ProductID == "" {
		return errs.NewValueIsRequiredError("productId")
	}

	c.line = line
	return nil
}
