package queries

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/order"
	"procurement/internal/pkg/guard"
)

var ErrGetAllOrdersQueryIsNotConstructed = errors.New(
	"GetAllOrdersQuery must be created via NewGetAllOrdersQuery constructor",
)

// GetAllOrdersQuery retrieves all purchase orders.
// Returns order headers with stored totals; lines are fetched through
// GetOrderQuery when a single order is inspected.
type GetAllOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllOrdersQuery creates a query to retrieve all purchase orders.
// This is a parameterless query that fetches the complete order list.
func NewGetAllOrdersQuery() GetAllOrdersQuery {
	return GetAllOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllOrdersQueryIsNotConstructed)
}

// OrderResponse represents a purchase order header in the read model.
// SupplierName comes from a join so listings do not need a second lookup.
type OrderResponse struct {
	ID               kernel.UUID
	SupplierID       kernel.UUID
	SupplierName     string
	OrderNumber      string
	OrderDate        time.Time
	ExpectedDelivery *time.Time
	Status           order.Status
	Currency         kernel.Currency
	PaymentTerms     string
	Notes            string
	CreatedBy        string
	Subtotal         decimal.Decimal
	Tax              decimal.Decimal
	Total            decimal.Decimal
}

// OrderLineResponse represents one purchase order line in the read model.
type OrderLineResponse struct {
	ID          kernel.UUID
	LineNumber  int
	ProductID   string
	Description string
	Quantity    int
	UnitPrice   decimal.Decimal
	DiscountPct decimal.Decimal
	Subtotal    decimal.Decimal
	Tax         decimal.Decimal
	Total       decimal.Decimal
}

// OrderWithLinesResponse represents a complete purchase order in the read
// model, header and lines together.
type OrderWithLinesResponse struct {
	OrderResponse
	Lines []OrderLineResponse
}
