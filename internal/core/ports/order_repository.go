package ports

import (
	"context"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for purchase order
// aggregates. An order and its lines form one consistency unit: every method
// reads or writes the aggregate whole, lines included.
type OrderRepository interface {
	// Add persists a new purchase order aggregate with all its lines.
	// Fails with an already-exists error when the order number is taken.
	Add(ctx context.Context, aggregate *order.PurchaseOrder) error

	// Update persists changes to an existing purchase order aggregate.
	// The stored line set is synchronized with the aggregate's: new lines
	// are inserted, changed lines updated, and absent lines deleted.
	Update(ctx context.Context, aggregate *order.PurchaseOrder) error

	// Delete permanently removes a purchase order and all its lines.
	Delete(ctx context.Context, id kernel.UUID) error

	// Get retrieves a purchase order aggregate by its unique identifier.
	// Returns the complete order with all its lines.
	Get(ctx context.Context, id kernel.UUID) (*order.PurchaseOrder, error)

	// GetForUpdate retrieves a purchase order aggregate and locks its row
	// for the remainder of the transaction. Concurrent mutations of the
	// same order serialize behind the lock, so totals recomputation always
	// sees a consistent line set. Must be called inside a transaction.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*order.PurchaseOrder, error)

	// GetByLineID retrieves the purchase order aggregate owning the given
	// line, locking the order row as GetForUpdate does. Used by line
	// mutations addressed by line identifier.
	GetByLineID(ctx context.Context, lineID kernel.UUID) (*order.PurchaseOrder, error)

	// GetIDsWithStaleTotals returns identifiers of orders whose stored
	// totals do not match the sums of their lines. Feeds the totals
	// reconciliation job.
	GetIDsWithStaleTotals(ctx context.Context) ([]kernel.UUID, error)
}
