package supplierrepo

import (
	"context"
	"errors"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/supplier"
	"procurement/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const (
	uniqueViolationCode     = "23505"
	foreignKeyViolationCode = "23503"
)

// GormSupplierRepository implements SupplierRepository using GORM.
type GormSupplierRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormSupplierRepository creates a new GORM supplier repository.
func NewGormSupplierRepository(db *gorm.DB, tracker aggregateTracker) *GormSupplierRepository {
	return &GormSupplierRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new supplier to the database.
func (r *GormSupplierRepository) Add(ctx context.Context, aggregate *supplier.Supplier) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if isPgError(err, uniqueViolationCode) {
			return errs.NewObjectAlreadyExistsError("email", aggregate.Contact().Email)
		}
		return errs.NewStoreError("insert supplier", err)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing supplier to the database.
func (r *GormSupplierRepository) Update(ctx context.Context, aggregate *supplier.Supplier) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	// Select("*") forces cleared optional columns to be written too.
	result := r.db.WithContext(ctx).
		Model(&SupplierDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Omit("id").
		Updates(&dto)
	if result.Error != nil {
		if isPgError(result.Error, uniqueViolationCode) {
			return errs.NewObjectAlreadyExistsError("email", aggregate.Contact().Email)
		}
		return errs.NewStoreError("update supplier", result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("supplier", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a supplier by ID.
func (r *GormSupplierRepository) Get(ctx context.Context, id kernel.UUID) (*supplier.Supplier, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto SupplierDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("supplier", id.String())
		}
		return nil, errs.NewStoreError("select supplier", err)
	}

	return toDomain(dto)
}

// Delete permanently removes a supplier. The delete is refused while any
// purchase order still references the supplier; the referential check and
// the delete run in the same statement scope, and the foreign key
// constraint backs the check against races.
func (r *GormSupplierRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	var references int64
	if err := r.db.WithContext(ctx).
		Table("purchase_orders").
		Where("supplier_id = ?", id.Bytes()).
		Count(&references).Error; err != nil {
		return errs.NewStoreError("count supplier references", err)
	}
	if references > 0 {
		return errs.NewObjectAlreadyExistsError("supplierId", id.String())
	}

	result := r.db.WithContext(ctx).Delete(&SupplierDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		if isPgError(result.Error, foreignKeyViolationCode) {
			return errs.NewObjectAlreadyExistsError("supplierId", id.String())
		}
		return errs.NewStoreError("delete supplier", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("supplier", id.String())
	}

	return nil
}

// isPgError reports whether the error is a PostgreSQL error with the given
// SQLSTATE code.
func isPgError(err error, code string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == code
}
