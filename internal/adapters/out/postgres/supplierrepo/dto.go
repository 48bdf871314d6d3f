// Package supplierrepo provides data transfer objects and mapping functions
// for supplier persistence. Suppliers are soft-deleted through their status
// column; a hard delete is refused while any purchase order references the
// supplier.
package supplierrepo

import (
	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/supplier"

	"github.com/google/uuid"
)

// SupplierDTO represents the database structure for persisting supplier
// aggregates. Contact details are embedded as flat columns; the status is
// stored under its persisted label.
type SupplierDTO struct {
	ID      uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name    string     `gorm:"type:varchar(255);not null"`
	TaxID   string     `gorm:"type:varchar(50);not null"`
	Contact ContactDTO `gorm:"embedded"`
	Status  string     `gorm:"type:varchar(20);not null;index"`
}

// TableName specifies the database table name for supplier entities.
// Overrides GORM's default naming convention to use "suppliers" instead of "supplier_dtos".
func (SupplierDTO) TableName() string {
	return "suppliers"
}

// ContactDTO represents the embedded contact columns within the supplier
// table. The email is unique across suppliers.
type ContactDTO struct {
	ContactName string `gorm:"type:varchar(255)"`
	Phone       string `gorm:"type:varchar(50)"`
	Email       string `gorm:"type:varchar(255);not null;uniqueIndex"`
	Address     string `gorm:"type:varchar(255)"`
	City        string `gorm:"type:varchar(100)"`
	Country     string `gorm:"type:varchar(100);not null"`
}

// fromDomain converts a supplier domain aggregate to its database representation.
func fromDomain(s *supplier.Supplier) SupplierDTO {
	contact := s.Contact()

	return SupplierDTO{
		ID:    s.ID().Bytes(),
		Name:  s.Name(),
		TaxID: s.TaxID(),
		Contact: ContactDTO{
			ContactName: contact.ContactName,
			Phone:       contact.Phone,
			Email:       contact.Email,
			Address:     contact.Address,
			City:        contact.City,
			Country:     contact.Country,
		},
		Status: s.Status().String(),
	}
}

// toDomain converts a database DTO to a supplier domain aggregate.
// Uses RestoreSupplier to reconstruct the aggregate with its persisted status.
func toDomain(dto SupplierDTO) (*supplier.Supplier, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	status, err := supplier.StatusFromPersisted(dto.Status)
	if err != nil {
		return nil, err
	}

	contact := supplier.ContactData{
		ContactName: dto.Contact.ContactName,
		Phone:       dto.Contact.Phone,
		Email:       dto.Contact.Email,
		Address:     dto.Contact.Address,
		City:        dto.Contact.City,
		Country:     dto.Contact.Country,
	}

	return supplier.RestoreSupplier(id, dto.Name, dto.TaxID, contact, status)
}
