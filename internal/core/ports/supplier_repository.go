// Package ports defines repository interfaces for the procurement domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/supplier"
)

// SupplierRepository defines the persistence contract for supplier aggregates.
type SupplierRepository interface {
	// Add persists a new supplier aggregate to storage.
	// Fails with an already-exists error when the email is taken.
	Add(ctx context.Context, aggregate *supplier.Supplier) error

	// Update persists changes to an existing supplier aggregate.
	// The supplier must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *supplier.Supplier) error

	// Get retrieves a supplier aggregate by its unique identifier.
	// Returns a not-found error when no supplier has the identifier.
	Get(ctx context.Context, id kernel.UUID) (*supplier.Supplier, error)

	// Delete permanently removes a supplier from storage.
	// Fails with a conflict error while any purchase order references the
	// supplier; deactivation is the recoverable alternative.
	Delete(ctx context.Context, id kernel.UUID) error
}
