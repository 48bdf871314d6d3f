package queries

import (
	"context"
	"database/sql"
	"errors"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/supplier"
	"procurement/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetSupplierQueryHandler retrieves one supplier from the database.
type GetSupplierQueryHandler struct {
	db *gorm.DB
}

// NewGetSupplierQueryHandler creates a handler for single supplier queries.
// Requires a GORM database connection for query execution.
func NewGetSupplierQueryHandler(db *gorm.DB) GetSupplierQueryHandler {
	return GetSupplierQueryHandler{db: db}
}

// Handle executes the query to retrieve one supplier.
// Returns a not-found error when no supplier has the identifier.
func (h GetSupplierQueryHandler) Handle(
	ctx context.Context,
	query GetSupplierQuery,
) (SupplierResponse, error) {
	if err := query.Validate(); err != nil {
		return SupplierResponse{}, err
	}

	var response SupplierResponse
	var id uuid.UUID
	var status string

	row := h.db.WithContext(ctx).Raw(`
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
		WHERE id = ?
	`, query.SupplierID().String()).Row()

	err := row.Scan(
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
		if errors.Is(err, sql.ErrNoRows) {
			return SupplierResponse{}, errs.NewObjectNotFoundError("supplier", query.SupplierID().String())
		}
		return SupplierResponse{}, err
	}

	supplierID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return SupplierResponse{}, err
	}
	response.ID = supplierID

	supplierStatus, err := supplier.StatusFromPersisted(status)
	if err != nil {
		return SupplierResponse{}, err
	}
	response.Status = supplierStatus

	return response, nil
}
