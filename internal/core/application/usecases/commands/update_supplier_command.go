package commands

import (
	"errors"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/supplier"
	"procurement/internal/pkg/errs"
	"procurement/internal/pkg/guard"
)

var ErrUpdateSupplierCommandIsNotConstructed = errors.New(
	"UpdateSupplierCommand must be created via NewUpdateSupplierCommand constructor",
)

// UpdateSupplierCommand represents a request to update an existing supplier's
// name, tax identifier and contact data. The full replacement set is carried;
// partial updates are resolved by the HTTP adapter before the command is built.
type UpdateSupplierCommand struct { //nolint:recvcheck //using for validation
	supplierID kernel.UUID
	name       string
	taxID      string
	contact    supplier.ContactData

	guard guard.ConstructorGuard
}

// NewUpdateSupplierCommand creates a command to update a supplier.
// Validates that the supplier ID is valid and name and tax ID are non-empty.
func NewUpdateSupplierCommand(
	supplierID kernel.UUID, name, taxID string, contact supplier.ContactData,
) (UpdateSupplierCommand, error) {
	cmd := UpdateSupplierCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSupplierID(supplierID),
		cmd.setName(name),
		cmd.setTaxID(taxID),
	); err != nil {
		return UpdateSupplierCommand{}, err
	}
	cmd.contact = contact

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateSupplierCommand) Validate() error {
	return c.guard.Validate(ErrUpdateSupplierCommandIsNotConstructed)
}

// SupplierID returns the identifier of the supplier to update.
func (c UpdateSupplierCommand) SupplierID() kernel.UUID {
	return c.supplierID
}

// Name returns the replacement name.
func (c UpdateSupplierCommand) Name() string {
	return c.name
}

// TaxID returns the replacement fiscal identifier.
func (c UpdateSupplierCommand) TaxID() string {
	return c.taxID
}

// Contact returns the replacement contact attributes.
func (c UpdateSupplierCommand) Contact() supplier.ContactData {
	return c.contact
}

func (c *UpdateSupplierCommand) setSupplierID(supplierID kernel.UUID) error {
	if err := supplierID.Validate(); err != nil {
		return err
	}

	c.supplierID = supplierID
	return nil
}

func (c *UpdateSupplierCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *UpdateSupplierCommand) setTaxID(taxID string) error {
	if taxID == "" {
		return errs.NewValueIsRequiredError("taxId")
	}

	c.taxID = taxID
	return nil
}
