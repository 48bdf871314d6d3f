package order

import (
	"errors"

	"github.com/shopspring/decimal"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/errs"
)

// ErrLineIsNotConstructed is returned when a Line instance was not created
// through the NewLine factory method.
var ErrLineIsNotConstructed = errors.New("Line must be created via NewLine constructor")

// Line represents one product entry on a purchase order, with its own
// quantity, unit price and discount, and three derived monetary fields.
//
// The derived fields (subtotal, tax, total) are never client-authoritative:
// they are always recomputed via ComputeLineAmounts from quantity, unit
// price and discount, regardless of what a caller supplies. There is no way
// to construct or mutate a Line that bypasses the recomputation.
//
// A Line belongs to exactly one PurchaseOrder, which owns it exclusively
// and assigns it a line number unique within the order.
type Line struct {
	// id is the unique identifier for the line
	id kernel.UUID

	// lineNumber is the position of the line within its order,
	// unique per order
	lineNumber int

	// productID is an external product reference; it is not validated
	// against a product catalog by this system
	productID string

	// description is a free-text product description
	description string

	// quantity ordered (must be positive)
	quantity int

	// unitPrice per item (must be non-negative)
	unitPrice decimal.Decimal

	// discountPct is the discount percentage in [0, 100]
	discountPct decimal.Decimal

	// amounts holds the derived subtotal, tax and total
	amounts LineAmounts

	// isConstructed ensures the line was created via NewLine or RestoreLine
	isConstructed bool
}

// NewLine creates a validated Line and computes its derived amounts.
//
// lineNumber may be zero, in which case the owning order assigns the next
// free number when the line is added; a negative lineNumber is invalid.
// productID is required. quantity, unitPrice and discountPct are validated
// by ComputeLineAmounts before any amount is derived.
func NewLine(
	id kernel.UUID,
	lineNumber int,
	productID string,
	description string,
	quantity int,
	unitPrice decimal.Decimal,
	discountPct decimal.Decimal,
) (*Line, error) {
	line := &Line{isConstructed: true}

	if err := errors.Join(
		line.setID(id),
		line.setLineNumber(lineNumber),
		line.setProductID(productID),
	); err != nil {
		return nil, err
	}
	line.description = description

	if err := line.setTerms(quantity, unitPrice, discountPct); err != nil {
		return nil, err
	}

	return line, nil
}

// RestoreLine reconstructs a Line from persistence.
// The derived amounts are recomputed rather than trusted, so a line read
// back from storage always satisfies the calculator's contract even if the
// stored derived columns have drifted.
func RestoreLine(
	id kernel.UUID,
	lineNumber int,
	productID string,
	description string,
	quantity int,
	unitPrice decimal.Decimal,
	discountPct decimal.Decimal,
) (*Line, error) {
	if lineNumber <= 0 {
		return nil, errs.NewValueIsInvalidError("lineNumber")
	}
	return NewLine(id, lineNumber, productID, description, quantity, unitPrice, discountPct)
}

// Validate ensures the Line instance was properly constructed through NewLine.
func (l *Line) Validate() error {
	if l == nil || !l.isConstructed {
		return ErrLineIsNotConstructed
	}
	return nil
}

// ID returns the line's unique identifier.
func (l *Line) ID() kernel.UUID {
	return l.id
}

// LineNumber returns the line's position within its order.
func (l *Line) LineNumber() int {
	return l.lineNumber
}

// ProductID returns the external product reference.
func (l *Line) ProductID() string {
	return l.productID
}

// Description returns the free-text product description.
func (l *Line) Description() string {
	return l.description
}

// Quantity returns the ordered quantity.
func (l *Line) Quantity() int {
	return l.quantity
}

// UnitPrice returns the price per item.
func (l *Line) UnitPrice() decimal.Decimal {
	return l.unitPrice
}

// DiscountPct returns the discount percentage.
func (l *Line) DiscountPct() decimal.Decimal {
	return l.discountPct
}

// Subtotal returns the derived line subtotal (after discount).
func (l *Line) Subtotal() decimal.Decimal {
	return l.amounts.Subtotal
}

// Tax returns the derived line tax.
func (l *Line) Tax() decimal.Decimal {
	return l.amounts.Tax
}

// Total returns the derived line total (subtotal + tax).
func (l *Line) Total() decimal.Decimal {
	return l.amounts.Total
}

// UpdateTerms replaces the line's quantity, unit price and discount and
// recomputes the derived amounts. Invalid inputs leave the line unchanged.
//
// Callers mutate lines only through the owning PurchaseOrder, which
// recomputes the order totals after this succeeds.
func (l *Line) UpdateTerms(quantity int, unitPrice, discountPct decimal.Decimal) error {
	return l.setTerms(quantity, unitPrice, discountPct)
}

func (l *Line) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	l.id = id
	return nil
}

func (l *Line) setLineNumber(lineNumber int) error {
	if lineNumber < 0 {
		return errs.NewValueIsInvalidError("lineNumber")
	}
	l.lineNumber = lineNumber
	return nil
}

func (l *Line) setProductID(productID string) error {
	if productID == "" {
		return errs.NewValueIsRequiredError("productId")
	}
	l.productID = productID
	return nil
}

func (l *Line) setTerms(quantity int, unitPrice, discountPct decimal.Decimal) error {
	amounts, err := ComputeLineAmounts(quantity, unitPrice, discountPct)
	if err != nil {
		return err
	}

	l.quantity = quantity
	l.unitPrice = unitPrice
	l.discountPct = discountPct
	l.amounts = amounts
	return nil
}

// assignLineNumber is used by the owning order when the line was created
// without an explicit number.
func (l *Line) assignLineNumber(lineNumber int) {
	l.lineNumber = lineNumber
}
