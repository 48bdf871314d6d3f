package order

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/errs"
)

var (
	// ErrPurchaseOrderIsNotConstructed is returned when a PurchaseOrder
	// instance was not created through the NewPurchaseOrder factory method.
	ErrPurchaseOrderIsNotConstructed = errors.New(
		"PurchaseOrder must be created via NewPurchaseOrder constructor",
	)
)

// DefaultPaymentTerms is applied to orders that do not specify payment terms.
const DefaultPaymentTerms = "30 días"

// PurchaseOrder is the aggregate root for a purchase order and its line
// items, treated as one consistency unit.
//
// PurchaseOrder maintains these invariants:
//   - subtotal equals the sum of its lines' subtotals
//   - tax equals the sum of its lines' taxes
//   - total equals subtotal + tax
//   - an order with zero lines has all three totals at zero
//   - line numbers are unique within the order
//   - status transitions follow the Status state machine
//
// Every mutation of the line set (AddLine, UpdateLine, RemoveLine)
// recomputes the totals from the full post-mutation line set before
// returning, so an aggregate in memory is never observed with stale
// totals. Persisting the aggregate and its lines atomically is the
// responsibility of the repository layer.
//
// The struct uses private fields to ensure encapsulation; it can only be
// created through NewPurchaseOrder or RestorePurchaseOrder.
type PurchaseOrder struct {
	id         kernel.UUID
	supplierID kernel.UUID

	// orderNumber is unique across all purchase orders
	orderNumber string

	orderDate        time.Time
	expectedDelivery *time.Time

	status   Status
	currency kernel.Currency

	paymentTerms string
	notes        string
	createdBy    string

	// subtotal, tax and total are derived from the line set and never
	// set directly
	subtotal decimal.Decimal
	tax      decimal.Decimal
	total    decimal.Decimal

	// lines are exclusively owned; deleting the order deletes them
	lines []*Line

	isConstructed bool
}

// NewPurchaseOrder creates a new PurchaseOrder in Pending status with zero
// totals and no lines.
//
// id, supplierID, orderNumber and orderDate are required. currency must be
// a valid kernel.Currency (parse input with kernel.CurrencyFromString,
// which also supplies the default). Empty paymentTerms fall back to
// DefaultPaymentTerms. expectedDelivery and createdBy are optional.
func NewPurchaseOrder(
	id kernel.UUID,
	supplierID kernel.UUID,
	orderNumber string,
	orderDate time.Time,
	expectedDelivery *time.Time,
	currency kernel.Currency,
	paymentTerms string,
	notes string,
	createdBy string,
) (*PurchaseOrder, error) {
	po := &PurchaseOrder{
		status:        Pending,
		subtotal:      decimal.Zero,
		tax:           decimal.Zero,
		total:         decimal.Zero,
		isConstructed: true,
	}

	if err := errors.Join(
		po.setID(id),
		po.setSupplierID(supplierID),
		po.setOrderNumber(orderNumber),
		po.setOrderDate(orderDate),
		po.setCurrency(currency),
	); err != nil {
		return nil, err
	}

	po.expectedDelivery = expectedDelivery
	po.paymentTerms = paymentTerms
	if po.paymentTerms == "" {
		po.paymentTerms = DefaultPaymentTerms
	}
	po.notes = notes
	po.createdBy = createdBy

	return po, nil
}

// RestorePurchaseOrder reconstructs a PurchaseOrder from persistence with
// its full line set. The totals are recomputed from the lines rather than
// trusted, so a restored aggregate always satisfies the totals invariant.
func RestorePurchaseOrder(
	id kernel.UUID,
	supplierID kernel.UUID,
	orderNumber string,
	orderDate time.Time,
	expectedDelivery *time.Time,
	status Status,
	currency kernel.Currency,
	paymentTerms string,
	notes string,
	createdBy string,
	lines []*Line,
) (*PurchaseOrder, error) {
	po, err := NewPurchaseOrder(
		id, supplierID, orderNumber, orderDate, expectedDelivery,
		currency, paymentTerms, notes, createdBy,
	)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}
	po.status = status

	for _, line := range lines {
		if err = line.Validate(); err != nil {
			return nil, err
		}
		if line.LineNumber() <= 0 {
			return nil, errs.NewValueIsInvalidError("lineNumber")
		}
		if po.findByLineNumber(line.LineNumber()) != nil {
			return nil, errs.NewObjectAlreadyExistsError("lineNumber", line.LineNumber())
		}
		po.lines = append(po.lines, line)
	}
	po.recalcTotals()

	return po, nil
}

// Validate ensures the PurchaseOrder was properly constructed through its
// factory methods. Called when reconstructing orders from persistence and
// before persisting them.
func (po *PurchaseOrder) Validate() error {
	if po == nil || !po.isConstructed {
		return ErrPurchaseOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (po *PurchaseOrder) IsEqual(other *PurchaseOrder) bool {
	return other != nil && po.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (po *PurchaseOrder) ID() kernel.UUID {
	return po.id
}

// SupplierID returns the identifier of the supplier the order belongs to.
func (po *PurchaseOrder) SupplierID() kernel.UUID {
	return po.supplierID
}

// OrderNumber returns the unique order number.
func (po *PurchaseOrder) OrderNumber() string {
	return po.orderNumber
}

// OrderDate returns the date the order was placed.
func (po *PurchaseOrder) OrderDate() time.Time {
	return po.orderDate
}

// ExpectedDelivery returns the expected delivery date, or nil when unset.
func (po *PurchaseOrder) ExpectedDelivery() *time.Time {
	return po.expectedDelivery
}

// Status returns the current status of the order.
func (po *PurchaseOrder) Status() Status {
	return po.status
}

// Currency returns the currency the order is denominated in.
func (po *PurchaseOrder) Currency() kernel.Currency {
	return po.currency
}

// PaymentTerms returns the order's payment terms.
func (po *PurchaseOrder) PaymentTerms() string {
	return po.paymentTerms
}

// Notes returns the order's free-text notes.
func (po *PurchaseOrder) Notes() string {
	return po.notes
}

// CreatedBy returns the identifier of the user who created the order.
func (po *PurchaseOrder) CreatedBy() string {
	return po.createdBy
}

// Subtotal returns the sum of the lines' subtotals.
func (po *PurchaseOrder) Subtotal() decimal.Decimal {
	return po.subtotal
}

// Tax returns the sum of the lines' taxes.
func (po *PurchaseOrder) Tax() decimal.Decimal {
	return po.tax
}

// Total returns the order total (subtotal + tax).
func (po *PurchaseOrder) Total() decimal.Decimal {
	return po.total
}

// Lines returns the order's lines ordered by line number.
// The returned slice is a copy; mutating it does not affect the aggregate.
func (po *PurchaseOrder) Lines() []*Line {
	lines := make([]*Line, len(po.lines))
	copy(lines, po.lines)
	sort.Slice(lines, func(i, j int) bool {
		return lines[i].LineNumber() < lines[j].LineNumber()
	})
	return lines
}

// Line returns the line with the given identifier, or a not-found error.
func (po *PurchaseOrder) Line(lineID kernel.UUID) (*Line, error) {
	for _, line := range po.lines {
		if line.ID().IsEqual(lineID) {
			return line, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("line", lineID.String())
}

// AddLine adds a line to the order and recomputes the totals.
//
// A line created with line number zero receives the next free number
// (highest existing number plus one). An explicit line number that is
// already taken within the order fails with an already-exists error and
// leaves the aggregate unchanged.
func (po *PurchaseOrder) AddLine(line *Line) error {
	if err := line.Validate(); err != nil {
		return err
	}

	if line.LineNumber() == 0 {
		line.assignLineNumber(po.nextLineNumber())
	} else if po.findByLineNumber(line.LineNumber()) != nil {
		return errs.NewObjectAlreadyExistsError("lineNumber", line.LineNumber())
	}

	po.lines = append(po.lines, line)
	po.recalcTotals()
	return nil
}

// UpdateLine replaces the quantity, unit price and discount of the
// identified line and recomputes the totals. The line's derived amounts
// are recomputed by the line itself; client-supplied derived values never
// enter here. Fails with a not-found error if the line does not belong to
// this order, and with a validation error (aggregate unchanged) if the new
// terms are invalid.
func (po *PurchaseOrder) UpdateLine(
	lineID kernel.UUID, quantity int, unitPrice, discountPct decimal.Decimal,
) error {
	line, err := po.Line(lineID)
	if err != nil {
		return err
	}

	if err = line.UpdateTerms(quantity, unitPrice, discountPct); err != nil {
		return err
	}

	po.recalcTotals()
	return nil
}

// RemoveLine deletes the identified line from the order and recomputes the
// totals. Removing the last line leaves the order with all-zero totals.
func (po *PurchaseOrder) RemoveLine(lineID kernel.UUID) error {
	for i, line := range po.lines {
		if line.ID().IsEqual(lineID) {
			po.lines = append(po.lines[:i], po.lines[i+1:]...)
			po.recalcTotals()
			return nil
		}
	}
	return errs.NewObjectNotFoundError("line", lineID.String())
}

// ChangeStatus transitions the order to the target status according to the
// Status state machine. On success only the status field changes; the
// monetary totals and the line set are untouched. Terminal current
// statuses and unreachable targets fail with an invalid-transition error.
func (po *PurchaseOrder) ChangeStatus(target Status) error {
	newStatus, err := po.status.TransitionTo(target)
	if err != nil {
		return err
	}

	po.status = newStatus
	return nil
}

// UpdateDetails replaces the order's expected delivery date and notes.
// These edits never touch the status, the totals or the line set.
func (po *PurchaseOrder) UpdateDetails(expectedDelivery *time.Time, notes string) {
	po.expectedDelivery = expectedDelivery
	po.notes = notes
}

// recalcTotals recomputes the order totals from the full current line set.
// Zero lines yield zero totals.
func (po *PurchaseOrder) recalcTotals() {
	subtotal := decimal.Zero
	tax := decimal.Zero
	total := decimal.Zero

	for _, line := range po.lines {
		subtotal = subtotal.Add(line.Subtotal())
		tax = tax.Add(line.Tax())
		total = total.Add(line.Total())
	}

	po.subtotal = kernel.RoundMoney(subtotal)
	po.tax = kernel.RoundMoney(tax)
	po.total = kernel.RoundMoney(total)
}

func (po *PurchaseOrder) nextLineNumber() int {
	next := 1
	for _, line := range po.lines {
		if line.LineNumber() >= next {
			next = line.LineNumber() + 1
		}
	}
	return next
}

func (po *PurchaseOrder) findByLineNumber(lineNumber int) *Line {
	for _, line := range po.lines {
		if line.LineNumber() == lineNumber {
			return line
		}
	}
	return nil
}

func (po *PurchaseOrder) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	po.id = id
	return nil
}

func (po *PurchaseOrder) setSupplierID(supplierID kernel.UUID) error {
	if err := supplierID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("supplierId", err)
	}
	po.supplierID = supplierID
	return nil
}

func (po *PurchaseOrder) setOrderNumber(orderNumber string) error {
	if orderNumber == "" {
		return errs.NewValueIsRequiredError("orderNumber")
	}
	po.orderNumber = orderNumber
	return nil
}

func (po *PurchaseOrder) setOrderDate(orderDate time.Time) error {
	if orderDate.IsZero() {
		return errs.NewValueIsRequiredError("orderDate")
	}
	po.orderDate = orderDate
	return nil
}

func (po *PurchaseOrder) setCurrency(currency kernel.Currency) error {
	if err := currency.Validate(); err != nil {
		return fmt.Errorf("order currency: %w", err)
	}
	po.currency = currency
	return nil
}
