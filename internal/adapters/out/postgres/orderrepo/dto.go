// Package orderrepo provides data transfer objects and mapping functions for
// purchase order persistence. The order and its lines are persisted as one
// consistency unit: every repository method reads or writes the aggregate
// whole, and the stored line set is synchronized with the aggregate's on
// every update.
package orderrepo

import (
	"time"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting purchase order
// aggregates. Status and currency are stored under their persisted labels;
// the derived totals are stored denormalized for cheap listing but are
// recomputed from the lines whenever the aggregate is reconstructed.
type OrderDTO struct {
	ID               uuid.UUID       `gorm:"type:uuid;primaryKey"`
	SupplierID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	OrderNumber      string          `gorm:"type:varchar(50);not null;uniqueIndex"`
	OrderDate        time.Time       `gorm:"not null"`
	ExpectedDelivery *time.Time
	Status           string          `gorm:"type:varchar(20);not null;index"`
	Currency         string          `gorm:"type:varchar(3);not null"`
	PaymentTerms     string          `gorm:"type:varchar(100)"`
	Notes            string          `gorm:"type:text"`
	CreatedBy        string          `gorm:"type:varchar(100)"`
	Subtotal         decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	Tax              decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	Total            decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	Lines            []LineDTO       `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for purchase order entities.
// Overrides GORM's default naming convention to use "purchase_orders" instead of "order_dtos".
func (OrderDTO) TableName() string {
	return "purchase_orders"
}

// LineDTO represents the database structure for persisting purchase order
// lines. Links to its order via foreign key; the line number is unique
// within an order.
type LineDTO struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID       `gorm:"type:uuid;not null;index;uniqueIndex:ux_order_line_number"`
	LineNumber  int             `gorm:"type:int;not null;uniqueIndex:ux_order_line_number"`
	ProductID   string          `gorm:"type:varchar(50);not null"`
	Description string          `gorm:"type:varchar(255)"`
	Quantity    int             `gorm:"type:int;not null"`
	UnitPrice   decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	DiscountPct decimal.Decimal `gorm:"type:numeric(5,2);not null"`
	Subtotal    decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	Tax         decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	Total       decimal.Decimal `gorm:"type:numeric(14,2);not null"`
}

// TableName specifies the database table name for order line entities.
// Overrides GORM's default naming convention to use "purchase_order_lines" instead of "line_dtos".
func (LineDTO) TableName() string {
	return "purchase_order_lines"
}

// fromDomain converts a purchase order domain aggregate to its database
// representation, lines included.
func fromDomain(po *order.PurchaseOrder) OrderDTO {
	orderID := po.ID().Bytes()
	lines := make([]LineDTO, 0, len(po.Lines()))

	for _, line := range po.Lines() {
		lines = append(lines, LineDTO{
			ID:          line.ID().Bytes(),
			OrderID:     orderID,
			LineNumber:  line.LineNumber(),
			ProductID:   line.ProductID(),
			Description: line.Description(),
			Quantity:    line.Quantity(),
			UnitPrice:   line.UnitPrice(),
			DiscountPct: line.DiscountPct(),
			Subtotal:    line.Subtotal(),
			Tax:         line.Tax(),
			Total:       line.Total(),
		})
	}

	return OrderDTO{
		ID:               orderID,
		SupplierID:       po.SupplierID().Bytes(),
		OrderNumber:      po.OrderNumber(),
		OrderDate:        po.OrderDate(),
		ExpectedDelivery: po.ExpectedDelivery(),
		Status:           po.Status().String(),
		Currency:         po.Currency().String(),
		PaymentTerms:     po.PaymentTerms(),
		Notes:            po.Notes(),
		CreatedBy:        po.CreatedBy(),
		Subtotal:         po.Subtotal(),
		Tax:              po.Tax(),
		Total:            po.Total(),
		Lines:            lines,
	}
}

// toDomain converts a database DTO to a purchase order domain aggregate.
// Reconstructs the complete aggregate including all lines using
// RestorePurchaseOrder, which recomputes the derived amounts from the line
// terms rather than trusting the stored columns.
func toDomain(dto OrderDTO) (*order.PurchaseOrder, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	supplierID, err := kernel.UUIDFromBytes(dto.SupplierID[:])
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromPersisted(dto.Status)
	if err != nil {
		return nil, err
	}

	currency, err := kernel.CurrencyFromString(dto.Currency)
	if err != nil {
		return nil, err
	}

	// Convert line DTOs to domain objects
	lines := make([]*order.Line, 0, len(dto.Lines))
	for _, lineDto := range dto.Lines {
		line, lineErr := lineToDomain(lineDto)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	return order.RestorePurchaseOrder(
		id, supplierID, dto.OrderNumber, dto.OrderDate, dto.ExpectedDelivery,
		status, currency, dto.PaymentTerms, dto.Notes, dto.CreatedBy, lines,
	)
}

// lineToDomain converts a line DTO to a domain entity.
// Uses RestoreLine to reconstruct the entity with its persisted terms.
func lineToDomain(dto LineDTO) (*order.Line, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return order.RestoreLine(
		id, dto.LineNumber, dto.ProductID, dto.Description,
		dto.Quantity, dto.UnitPrice, dto.DiscountPct,
	)
}
