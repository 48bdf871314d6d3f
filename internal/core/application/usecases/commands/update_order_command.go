package commands

import (
	"errors"
	"time"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/guard"
)

var ErrUpdateOrderCommandIsNotConstructed = errors.New(
	"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
)

// UpdateOrderCommand represents a request to edit the header details of a
// purchase order: the expected delivery date and the notes. Status, totals
// and lines are never touched by this command.
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID          kernel.UUID
	expectedDelivery *time.Time
	notes            string

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand creates a command to edit order header details.
// Validates that the order ID is valid; both detail fields are optional.
func NewUpdateOrderCommand(
	orderID kernel.UUID, expectedDelivery *time.Time, notes string,
) (UpdateOrderCommand, error) {
	cmd := UpdateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return UpdateOrderCommand{}, err
	}
	cmd.expectedDelivery = expectedDelivery
	cmd.notes = notes

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to edit.
func (c UpdateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ExpectedDelivery returns the replacement expected delivery date.
func (c UpdateOrderCommand) ExpectedDelivery() *time.Time {
	return c.expectedDelivery
}

// Notes returns the replacement notes.
func (c UpdateOrderCommand) Notes() string {
	return c.notes
}

func (c *UpdateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
