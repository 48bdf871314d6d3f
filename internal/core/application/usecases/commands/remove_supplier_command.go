package commands

import (
	"errors"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/guard"
)

var ErrRemoveSupplierCommandIsNotConstructed = errors.New(
	"RemoveSupplierCommand must be created via NewRemoveSupplierCommand constructor",
)

// RemoveSupplierCommand represents a request to remove a supplier.
//
// Removal is soft by default: the supplier is deactivated and stays on
// record. When hard is set the supplier row is permanently deleted, which
// the repository rejects with a conflict error while any purchase order
// still references it.
type RemoveSupplierCommand struct { //nolint:recvcheck //using for validation
	supplierID kernel.UUID
	hard       bool

	guard guard.ConstructorGuard
}

// NewRemoveSupplierCommand creates a command to remove a supplier.
// Validates that the supplier ID is valid.
func NewRemoveSupplierCommand(supplierID kernel.UUID, hard bool) (RemoveSupplierCommand, error) {
	cmd := RemoveSupplierCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setSupplierID(supplierID); err != nil {
		return RemoveSupplierCommand{}, err
	}
	cmd.hard = hard

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveSupplierCommand) Validate() error {
	return c.guard.Validate(ErrRemoveSupplierCommandIsNotConstructed)
}

// SupplierID returns the identifier of the supplier to remove.
func (c RemoveSupplierCommand) SupplierID() kernel.UUID {
	return c.supplierID
}

// Hard reports whether the supplier row is to be permanently deleted
// instead of deactivated.
func (c RemoveSupplierCommand) Hard() bool {
	return c.hard
}

func (c *RemoveSupplierCommand) setSupplierID(supplierID kernel.UUID) error {
	if err := supplierID.Validate(); err != nil {
		return err
	}

	c.supplierID = supplierID
	return nil
}
