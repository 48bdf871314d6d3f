package commands

import (
	"errors"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/supplier"
	"procurement/internal/pkg/errs"
	"procurement/internal/pkg/guard"
)

var ErrCreateSupplierCommandIsNotConstructed = errors.New(
	"CreateSupplierCommand must be created via NewCreateSupplierCommand constructor",
)

// CreateSupplierCommand represents a request to register a new supplier.
// Encapsulates the supplier identity and contact data; contact validation
// (required email, well-formed address) is delegated to the aggregate when
// the handler constructs it.
type CreateSupplierCommand struct { //nolint:recvcheck //using for validation
	supplierID kernel.UUID
	name       string
	taxID      string
	contact    supplier.ContactData

	guard guard.ConstructorGuard
}

// NewCreateSupplierCommand creates a command to register a new supplier.
// Validates that the supplier ID is valid and name and tax ID are non-empty.
// Returns an error if any validation fails.
func NewCreateSupplierCommand(
	supplierID kernel.UUID, name, taxID string, contact supplier.ContactData,
) (CreateSupplierCommand, error) {
	cmd := CreateSupplierCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSupplierID(supplierID),
		cmd.setName(name),
		cmd.setTaxID(taxID),
	); err != nil {
		return CreateSupplierCommand{}, err
	}
	cmd.contact = contact

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateSupplierCommandIsNotConstructed if validation fails.
func (c CreateSupplierCommand) Validate() error {
	return c.guard.Validate(ErrCreateSupplierCommandIsNotConstructed)
}

// SupplierID returns the unique identifier for the new supplier.
func (c CreateSupplierCommand) SupplierID() kernel.UUID {
	return c.supplierID
}

// Name returns the legal or commercial name of the supplier.
func (c CreateSupplierCommand) Name() string {
	return c.name
}

// TaxID returns the fiscal identifier of the supplier.
func (c CreateSupplierCommand) TaxID() string {
	return c.taxID
}

// Contact returns the contact attributes of the supplier.
func (c CreateSupplierCommand) Contact() supplier.ContactData {
	return c.contact
}

func (c *CreateSupplierCommand) setSupplierID(supplierID kernel.UUID) error {
	if err := supplierID.Validate(); err != nil {
		return err
	}

	c.supplierID = supplierID
	return nil
}

func (c *CreateSupplierCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *CreateSupplierCommand) setTaxID(taxID string) error {
	if taxID == "" {
		return errs.NewValueIsRequiredError("taxId")
	}

	c.taxID = taxID
	return nil
}
