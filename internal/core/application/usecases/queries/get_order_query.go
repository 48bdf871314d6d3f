package queries

import (
	"errors"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves one purchase order, header and lines, by its
// identifier.
type GetOrderQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query to retrieve one purchase order.
// Validates that the order ID is valid.
func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	query := GetOrderQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setOrderID(orderID); err != nil {
		return GetOrderQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the identifier of the order to retrieve.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

func (q *GetOrderQuery) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	q.orderID = orderID
	return nil
}
