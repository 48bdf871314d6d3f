package commands

import (
	"errors"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/guard"
)

var ErrRemoveOrderLineCommandIsNotConstructed = errors.New(
	"RemoveOrderLineCommand must be created via NewRemoveOrderLineCommand constructor",
)

// RemoveOrderLineCommand represents a request to delete a line from its
// owning purchase order. Removing a line recomputes the order totals;
// removing the last line leaves all-zero totals.
type RemoveOrderLineCommand struct { //nolint:recvcheck //using for validation
	lineID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRemoveOrderLineCommand creates a command to delete an order line.
// Validates that the line ID is valid.
func NewRemoveOrderLineCommand(lineID kernel.UUID) (RemoveOrderLineCommand, error) {
	cmd := RemoveOrderLineCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setLineID(lineID); err != nil {
		return RemoveOrderLineCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveOrderLineCommand) Validate() error {
	return c.guard.Validate(ErrRemoveOrderLineCommandIsNotConstructed)
}

// LineID returns the identifier of the line to remove.
func (c RemoveOrderLineCommand) LineID() kernel.UUID {
	return c.lineID
}

func (c *RemoveOrderLineCommand) setLineID(lineID kernel.UUID) error {
	if err := lineID.Validate(); err != nil {
		return err
	}

	c.lineID = lineID
	return nil
}
