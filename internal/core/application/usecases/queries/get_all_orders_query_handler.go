package queries

import (
	"context"
	"database/sql"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllOrdersQueryHandler retrieves purchase order listings from the
// database. Uses direct SQL queries for optimal read performance in the
// CQRS pattern; the supplier name is joined in so listings are one query.
type GetAllOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllOrdersQueryHandler creates a handler for order listing queries.
// Requires a GORM database connection for query execution.
func NewGetAllOrdersQueryHandler(db *gorm.DB) GetAllOrdersQueryHandler {
	return GetAllOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve all purchase orders.
// Returns order headers sorted by order date, newest first.
// Converts database types to domain types for consistency.
func (h GetAllOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetAllOrdersQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]OrderResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.supplier_id,
			s.name,
			o.order_number,
			o.order_date,
			o.expected_delivery,
			o.status,
			o.currency,
			o.payment_terms,
			o.notes,
			o.created_by,
			o.subtotal,
			o.tax,
			o.total
		FROM purchase_orders o
		JOIN suppliers s ON s.id = o.supplier_id
		ORDER BY o.order_date DESC, o.order_number
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		response, scanErr := scanOrderResponse(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		orders = append(orders, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

// scanOrderResponse maps one header row onto the read model, converting
// identifiers, status and currency to their domain types. Shared by the
// listing and single order handlers; the column order is fixed.
func scanOrderResponse(row interface{ Scan(dest ...any) error }) (OrderResponse, error) {
	var response OrderResponse
	var id, supplierID uuid.UUID
	var expectedDelivery sql.NullTime
	var status, currency string

	err := row.Scan(
		&id,
		&supplierID,
		&response.SupplierName,
		&response.OrderNumber,
		&response.OrderDate,
		&expectedDelivery,
		&status,
		&currency,
		&response.PaymentTerms,
		&response.Notes,
		&response.CreatedBy,
		&response.Subtotal,
		&response.Tax,
		&response.Total,
	)
	if err != nil {
		return OrderResponse{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return OrderResponse{}, err
	}
	response.ID = orderID

	orderSupplierID, err := kernel.UUIDFromBytes(supplierID[:])
	if err != nil {
		return OrderResponse{}, err
	}
	response.SupplierID = orderSupplierID

	if expectedDelivery.Valid {
		delivery := expectedDelivery.Time
		response.ExpectedDelivery = &delivery
	}

	orderStatus, err := order.StatusFromPersisted(status)
	if err != nil {
		return OrderResponse{}, err
	}
	response.Status = orderStatus

	orderCurrency, err := kernel.CurrencyFromString(currency)
	if err != nil {
		return OrderResponse{}, err
	}
	response.Currency = orderCurrency

	return response, nil
}
