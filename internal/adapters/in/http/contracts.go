package http

import (
	"time"

	"procurement/internal/core/application/usecases/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Response is the envelope every endpoint answers with.
// Success carries data, failure carries the error message.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// dateFormat is the wire format for date fields. Full timestamps are also
// accepted on input.
const dateFormat = "2006-01-02"

// SupplierRequest is the payload for creating or replacing a supplier.
type SupplierRequest struct {
	Name        string `json:"name"`
	TaxID       string `json:"tax_id"`
	ContactName string `json:"contact_name"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	Address     string `json:"address"`
	City        string `json:"city"`
	Country     string `json:"country"`
}

// SupplierResponse is the wire representation of a supplier.
type SupplierResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	TaxID       string    `json:"tax_id"`
	ContactName string    `json:"contact_name"`
	Phone       string    `json:"phone"`
	Email       string    `json:"email"`
	Address     string    `json:"address"`
	City        string    `json:"city"`
	Country     string    `json:"country"`
	Status      string    `json:"status"`
}

// OrderLineRequest is the payload for a line on order creation or line
// insertion. Derived amounts are never accepted from the client.
type OrderLineRequest struct {
	LineNumber  int             `json:"line_number"`
	ProductID   string          `json:"product_id"`
	Description string          `json:"description"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	DiscountPct decimal.Decimal `json:"discount_pct"`
}

// OrderRequest is the order header payload within CreateOrderRequest.
type OrderRequest struct {
	SupplierID       string `json:"supplier_id"`
	OrderNumber      string `json:"order_number"`
	OrderDate        string `json:"order_date"`
	ExpectedDelivery string `json:"expected_delivery"`
	Currency         string `json:"currency"`
	PaymentTerms     string `json:"payment_terms"`
	Notes            string `json:"notes"`
	CreatedBy        string `json:"created_by"`
}

// CreateOrderRequest is the payload for POST /orders.
type CreateOrderRequest struct {
	Order OrderRequest       `json:"order"`
	Lines []OrderLineRequest `json:"lines"`
}

// UpdateOrderRequest is the payload for PUT /orders/:id.
type UpdateOrderRequest struct {
	ExpectedDelivery string `json:"expected_delivery"`
	Notes            string `json:"notes"`
}

// ChangeStatusRequest is the payload for PUT /orders/:id/status.
type ChangeStatusRequest struct {
	Status string `json:"status"`
}

// UpdateLineRequest is the payload for PUT /lines/:id.
type UpdateLineRequest struct {
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	DiscountPct decimal.Decimal `json:"discount_pct"`
}

// OrderResponse is the wire representation of a purchase order header.
type OrderResponse struct {
	ID               uuid.UUID       `json:"id"`
	SupplierID       uuid.UUID       `json:"supplier_id"`
	SupplierName     string          `json:"supplier_name,omitempty"`
	OrderNumber      string          `json:"order_number"`
	OrderDate        string          `json:"order_date"`
	ExpectedDelivery *string         `json:"expected_delivery,omitempty"`
	Status           string          `json:"status"`
	Currency         string          `json:"currency"`
	PaymentTerms     string          `json:"payment_terms"`
	Notes            string          `json:"notes,omitempty"`
	CreatedBy        string          `json:"created_by,omitempty"`
	Subtotal         decimal.Decimal `json:"subtotal"`
	Tax              decimal.Decimal `json:"tax"`
	Total            decimal.Decimal `json:"total"`
}

// OrderLineResponse is the wire representation of one order line.
type OrderLineResponse struct {
	ID          uuid.UUID       `json:"id"`
	LineNumber  int             `json:"line_number"`
	ProductID   string          `json:"product_id"`
	Description string          `json:"description"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	DiscountPct decimal.Decimal `json:"discount_pct"`
	Subtotal    decimal.Decimal `json:"subtotal"`
	Tax         decimal.Decimal `json:"tax"`
	Total       decimal.Decimal `json:"total"`
}

// OrderWithLinesResponse is the wire representation of a complete order.
type OrderWithLinesResponse struct {
	OrderResponse
	Lines []OrderLineResponse `json:"lines"`
}

func supplierResponseFromReadModel(s queries.SupplierResponse) SupplierResponse {
	return SupplierResponse{
		ID:          s.ID.Bytes(),
		Name:        s.Name,
		TaxID:       s.TaxID,
		ContactName: s.ContactName,
		Phone:       s.Phone,
		Email:       s.Email,
		Address:     s.Address,
		City:        s.City,
		Country:     s.Country,
		Status:      s.Status.String(),
	}
}

func orderResponseFromReadModel(o queries.OrderResponse) OrderResponse {
	var expected *string
	if o.ExpectedDelivery != nil {
		formatted := o.ExpectedDelivery.Format(dateFormat)
		expected = &formatted
	}

	return OrderResponse{
		ID:               o.ID.Bytes(),
		SupplierID:       o.SupplierID.Bytes(),
		SupplierName:     o.SupplierName,
		OrderNumber:      o.OrderNumber,
		OrderDate:        o.OrderDate.Format(dateFormat),
		ExpectedDelivery: expected,
		Status:           o.Status.ExternalString(),
		Currency:         o.Currency.String(),
		PaymentTerms:     o.PaymentTerms,
		Notes:            o.Notes,
		CreatedBy:        o.CreatedBy,
		Subtotal:         o.Subtotal,
		Tax:              o.Tax,
		Total:            o.Total,
	}
}

func orderLineResponseFromReadModel(l queries.OrderLineResponse) OrderLineResponse {
	return OrderLineResponse{
		ID:          l.ID.Bytes(),
		LineNumber:  l.LineNumber,
		ProductID:   l.ProductID,
		Description: l.Description,
		Quantity:    l.Quantity,
		UnitPrice:   l.UnitPrice,
		DiscountPct: l.DiscountPct,
		Subtotal:    l.Subtotal,
		Tax:         l.Tax,
		Total:       l.Total,
	}
}

// parseDate accepts the date-only wire format and full RFC 3339 timestamps.
func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse(dateFormat, value); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, value)
}
