package orderrepo

import (
	"context"
	"errors"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/order"
	"procurement/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const uniqueViolationCode = "23505"

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM purchase order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new purchase order with all its lines to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.PurchaseOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if isUniqueViolation(err) {
			return errs.NewObjectAlreadyExistsError("orderNumber", aggregate.OrderNumber())
		}
		return errs.NewStoreError("insert order", err)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing purchase order to the database and synchronizes
// the stored line set with the aggregate's: new lines are inserted, changed
// lines updated, and lines absent from the aggregate deleted.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.PurchaseOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	keptIDs := make([]uuid.UUID, 0, len(dto.Lines))
	for _, line := range dto.Lines {
		keptIDs = append(keptIDs, line.ID)
	}

	// Remove lines the aggregate no longer carries before saving, so the
	// per-order line number uniqueness constraint cannot collide with a
	// row that is about to disappear.
	removal := r.db.WithContext(ctx).Where("order_id = ?", dto.ID)
	if len(keptIDs) > 0 {
		removal = removal.Where("id NOT IN ?", keptIDs)
	}
	if err := removal.Delete(&LineDTO{}).Error; err != nil {
		return errs.NewStoreError("delete removed order lines", err)
	}

	// Use Session with FullSaveAssociations to properly update nested associations
	result := r.db.WithContext(ctx).Session(&gorm.Session{FullSaveAssociations: true}).Save(&dto)
	if result.Error != nil {
		return errs.NewStoreError("update order", result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Delete permanently removes a purchase order and all its lines.
func (r *GormOrderRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	// Lines go first: the schema declares ON DELETE CASCADE, but deleting
	// explicitly keeps the behavior identical on databases migrated without
	// the constraint.
	if err := r.db.WithContext(ctx).Where("order_id = ?", id.Bytes()).Delete(&LineDTO{}).Error; err != nil {
		return errs.NewStoreError("delete order lines", err)
	}

	result := r.db.WithContext(ctx).Delete(&OrderDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return errs.NewStoreError("delete order", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", id.String())
	}

	return nil
}

// Get retrieves a purchase order aggregate by ID with all its lines.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.PurchaseOrder, error) {
	return r.get(ctx, id, false)
}

// GetForUpdate retrieves a purchase order aggregate by ID and locks its row
// until the surrounding transaction ends. Concurrent mutations of the same
// order serialize behind the lock.
func (r *GormOrderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.PurchaseOrder, error) {
	return r.get(ctx, id, true)
}

// GetByLineID retrieves the purchase order aggregate owning the given line,
// locking the order row the way GetForUpdate does.
func (r *GormOrderRepository) GetByLineID(ctx context.Context, lineID kernel.UUID) (*order.PurchaseOrder, error) {
	if err := lineID.Validate(); err != nil {
		return nil, err
	}

	var line LineDTO
	if err := r.db.WithContext(ctx).First(&line, "id = ?", lineID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("line", lineID.String())
		}
		return nil, errs.NewStoreError("select line", err)
	}

	orderID, err := kernel.UUIDFromBytes(line.OrderID[:])
	if err != nil {
		return nil, err
	}

	return r.get(ctx, orderID, true)
}

// GetIDsWithStaleTotals returns identifiers of orders whose stored totals
// disagree with the sums over their lines. An order without lines is stale
// when its stored totals are not zero.
func (r *GormOrderRepository) GetIDsWithStaleTotals(ctx context.Context) ([]kernel.UUID, error) {
	rows, err := r.db.WithContext(ctx).Raw(`
		SELECT o.id
		FROM purchase_orders o
		LEFT JOIN (
			SELECT order_id,
			       SUM(subtotal) AS subtotal,
			       SUM(tax) AS tax,
			       SUM(total) AS total
			FROM purchase_order_lines
			GROUP BY order_id
		) l ON l.order_id = o.id
		WHERE o.subtotal <> COALESCE(l.subtotal, 0)
		   OR o.tax <> COALESCE(l.tax, 0)
		   OR o.total <> COALESCE(l.total, 0)`).Rows()
	if err != nil {
		return nil, errs.NewStoreError("select stale order totals", err)
	}
	defer rows.Close()

	var ids []kernel.UUID
	for rows.Next() {
		var raw uuid.UUID
		if err = rows.Scan(&raw); err != nil {
			return nil, errs.NewStoreError("scan stale order totals", err)
		}

		id, idErr := kernel.UUIDFromBytes(raw[:])
		if idErr != nil {
			return nil, idErr
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}

func (r *GormOrderRepository) get(ctx context.Context, id kernel.UUID, forUpdate bool) (*order.PurchaseOrder, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	query := r.db.WithContext(ctx)
	if forUpdate {
		// The lock is taken on the order row only; lines are mutated
		// exclusively through their order, so locking the parent is enough.
		query = query.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var dto OrderDTO
	if err := query.First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, errs.NewStoreError("select order", err)
	}

	// Lines are loaded separately so the row lock never spills into their query
	if err := r.db.WithContext(ctx).
		Where("order_id = ?", dto.ID).
		Order("line_number").
		Find(&dto.Lines).Error; err != nil {
		return nil, errs.NewStoreError("select order lines", err)
	}

	return toDomain(dto)
}

// isUniqueViolation reports whether the error is a PostgreSQL unique
// constraint violation.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}
