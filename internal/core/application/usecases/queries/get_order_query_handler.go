package queries

import (
	"context"
	"database/sql"
	"errors"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves one complete purchase order from the
// database: the header in one query, the lines in a second one ordered by
// line number.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single order queries.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query to retrieve one purchase order with its lines.
// Returns a not-found error when no order has the identifier.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (OrderWithLinesResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderWithLinesResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
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
		WHERE o.id = ?
	`, query.OrderID().String()).Row()

	header, err := scanOrderResponse(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return OrderWithLinesResponse{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
		}
		return OrderWithLinesResponse{}, err
	}

	lines, err := h.fetchLines(ctx, query.OrderID())
	if err != nil {
		return OrderWithLinesResponse{}, err
	}

	return OrderWithLinesResponse{
		OrderResponse: header,
		Lines:         lines,
	}, nil
}

func (h GetOrderQueryHandler) fetchLines(ctx context.Context, orderID kernel.UUID) ([]OrderLineResponse, error) {
	lines := make([]OrderLineResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			line_number,
			product_id,
			description,
			quantity,
			unit_price,
			discount_pct,
			subtotal,
			tax,
			total
		FROM purchase_order_lines
		WHERE order_id = ?
		ORDER BY line_number
	`, orderID.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var line OrderLineResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&line.LineNumber,
			&line.ProductID,
			&line.Description,
			&line.Quantity,
			&line.UnitPrice,
			&line.DiscountPct,
			&line.Subtotal,
			&line.Tax,
			&line.Total,
		)
		if err != nil {
			return nil, err
		}

		lineID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		line.ID = lineID

		lines = append(lines, line)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}
