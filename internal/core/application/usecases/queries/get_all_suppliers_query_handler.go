package queries

import (
	"context"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/supplier"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllSuppliersQueryHandler retrieves supplier listings from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetAllSuppliersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllSuppliersQueryHandler creates a handler for supplier listing queries.
// Requires a GORM database connection for query execution.
func NewGetAllSuppliersQueryHandler(db *gorm.DB) GetAllSuppliersQueryHandler {
	return GetAllSuppliersQueryHandler{db: db}
}

// Handle executes the query to retrieve suppliers.
// Returns a slice of supplier read models sorted by name.
// Converts database types to domain types for consistency.
func (h GetAllSuppliersQueryHandler) Handle(
	ctx context.Context,
	query GetAllSuppliersQuery,
) ([]SupplierResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			id,
			name,
			tax_id,
			contact_name,
			phone,
			email,
			address,
			city,
			country,
			status
		FROM suppliers
	`
	args := make([]any, 0, 1)
	if query.ActiveOnly() {
		sql += ` WHERE status = ?`
		args = append(args, supplier.Active.String())
	}
	sql += ` ORDER BY name`

	suppliers := make([]SupplierResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var response SupplierResponse
		var id uuid.UUID
		var status string

		err = rows.Scan(
			&id,
			&response.Name,
			&response.TaxID,
			&response.ContactName,
			&response.Phone,
			&response.Email,
			&response.Address,
			&response.City,
			&response.Country,
			&status,
		)
		if err != nil {
			return nil, err
		}

		supplierID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		response.ID = supplierID

		supplierStatus, statusErr := supplier.StatusFromPersisted(status)
		if statusErr != nil {
			return nil, statusErr
		}
		response.Status = supplierStatus

		suppliers = append(suppliers, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return suppliers, nil
}
