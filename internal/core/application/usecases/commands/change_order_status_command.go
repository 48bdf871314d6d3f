package commands

import (
	"errors"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/order"
	"procurement/internal/pkg/guard"
)

var ErrChangeOrderStatusCommandIsNotConstructed = errors.New(
	"ChangeOrderStatusCommand must be created via NewChangeOrderStatusCommand constructor",
)

// ChangeOrderStatusCommand represents a request to move a purchase order to
// a new lifecycle status. The target is an already-parsed Status; label
// parsing (including the external vocabulary) happens at the HTTP adapter
// via order.ParseStatus, so vocabulary errors never reach the state machine.
type ChangeOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	target  order.Status

	guard guard.ConstructorGuard
}

// NewChangeOrderStatusCommand creates a command to change an order's status.
// Validates that the order ID and the target status are valid.
func NewChangeOrderStatusCommand(orderID kernel.UUID, target order.Status) (ChangeOrderStatusCommand, error) {
	cmd := ChangeOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setTarget(target),
	); err != nil {
		return ChangeOrderStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderStatusCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to transition.
func (c ChangeOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Target returns the requested status.
func (c ChangeOrderStatusCommand) Target() order.Status {
	return c.target
}

func (c *ChangeOrderStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ChangeOrderStatusCommand) setTarget(target order.Status) error {
	if err := target.Validate(); err != nil {
		return err
	}

	c.target = target
	return nil
}
