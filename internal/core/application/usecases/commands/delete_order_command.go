package commands

import (
	"errors"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/guard"
)

var ErrDeleteOrderCommandIsNotConstructed = errors.New(
	"DeleteOrderCommand must be created via NewDeleteOrderCommand constructor",
)

// DeleteOrderCommand represents a request to permanently delete a purchase
// order. Lines are exclusively owned by the order and are deleted with it.
type DeleteOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteOrderCommand creates a command to delete a purchase order.
// Validates that the order ID is valid.
func NewDeleteOrderCommand(orderID kernel.UUID) (DeleteOrderCommand, error) {
	cmd := DeleteOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return DeleteOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeleteOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to delete.
func (c DeleteOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *DeleteOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
