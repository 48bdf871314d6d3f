// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/supplier"
	"procurement/internal/pkg/guard"
)

var ErrGetAllSuppliersQueryIsNotConstructed = errors.New(
	"GetAllSuppliersQuery must be created via NewGetAllSuppliersQuery constructor",
)

// GetAllSuppliersQuery retrieves all registered suppliers.
// Inactive (soft-deleted) suppliers are included unless activeOnly is set;
// they remain relevant for orders that still reference them.
type GetAllSuppliersQuery struct {
	activeOnly bool

	guard guard.ConstructorGuard
}

// NewGetAllSuppliersQuery creates a query to retrieve suppliers.
// Set activeOnly to exclude deactivated suppliers from the listing.
func NewGetAllSuppliersQuery(activeOnly bool) GetAllSuppliersQuery {
	return GetAllSuppliersQuery{
		activeOnly: activeOnly,
		guard:      guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q GetAllSuppliersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllSuppliersQueryIsNotConstructed)
}

// ActiveOnly reports whether deactivated suppliers are excluded.
func (q GetAllSuppliersQuery) ActiveOnly() bool {
	return q.activeOnly
}

// SupplierResponse represents supplier information in the read model.
type SupplierResponse struct {
	ID          kernel.UUID
	Name        string
	TaxID       string
	ContactName string
	Phone       string
	Email       string
	Address     string
	City        string
	Country     string
	Status      supplier.Status
}
