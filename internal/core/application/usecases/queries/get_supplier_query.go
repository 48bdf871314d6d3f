package queries

import (
	"errors"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/guard"
)

var ErrGetSupplierQueryIsNotConstructed = errors.New(
	"GetSupplierQuery must be created via NewGetSupplierQuery constructor",
)

// GetSupplierQuery retrieves one supplier by its identifier.
type GetSupplierQuery struct { //nolint:recvcheck //using for validation
	supplierID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetSupplierQuery creates a query to retrieve one supplier.
// Validates that the supplier ID is valid.
func NewGetSupplierQuery(supplierID kernel.UUID) (GetSupplierQuery, error) {
	query := GetSupplierQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setSupplierID(supplierID); err != nil {
		return GetSupplierQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetSupplierQuery) Validate() error {
	return q.guard.Validate(ErrGetSupplierQueryIsNotConstructed)
}

// SupplierID returns the identifier of the supplier to retrieve.
func (q GetSupplierQuery) SupplierID() kernel.UUID {
	return q.supplierID
}

func (q *GetSupplierQuery) setSupplierID(supplierID kernel.UUID) error {
	if err := supplierID.Validate(); err != nil {
		return err
	}

	q.supplierID = supplierID
	return nil
}
