package commands

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/errs"
	"procurement/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// LineSpec carries the client-supplied attributes of one purchase order line.
// It deliberately has no subtotal, tax or total fields: derived amounts are
// always computed by the domain, never accepted from callers. A zero
// LineNumber requests automatic assignment.
type LineSpec struct {
	LineNumber  int
	ProductID   string
	Description string
	Quantity    int
	UnitPrice   decimal.Decimal
	DiscountPct decimal.Decimal
}

// CreateOrderCommand represents a request to create a new purchase order,
// optionally with an initial set of lines. The order starts in Pending
// status and its totals are derived from the lines.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID          kernel.UUID
	supplierID       kernel.UUID
	orderNumber      string
	orderDate        time.Time
	expectedDelivery *time.Time
	currency         kernel.Currency
	paymentTerms     string
	notes            string
	createdBy        string
	lines            []LineSpec

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new purchase order.
// Validates identifiers, the order number, the order date and the currency;
// line contents are validated by the domain when the handler builds the
// aggregate.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	supplierID kernel.UUID,
	orderNumber string,
	orderDate time.Time,
	expectedDelivery *time.Time,
	currency kernel.Currency,
	paymentTerms string,
	notes string,
	createdBy string,
	lines []LineSpec,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setSupplierID(supplierID),
		cmd.setOrderNumber(orderNumber),
		cmd.setOrderDate(orderDate),
		cmd.setCurrency(currency),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	cmd.expectedDelivery = expectedDelivery
	cmd.paymentTerms = paymentTerms
	cmd.notes = notes
	cmd.createdBy = createdBy
	cmd.lines = append([]LineSpec(nil), lines...)

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// SupplierID returns the identifier of the supplier the order is placed against.
func (c CreateOrderCommand) SupplierID() kernel.UUID {
	return c.supplierID
}

// OrderNumber returns the human-facing order number.
func (c CreateOrderCommand) OrderNumber() string {
	return c.orderNumber
}

// OrderDate returns the date the order was placed.
func (c CreateOrderCommand) OrderDate() time.Time {
	return c.orderDate
}

// ExpectedDelivery returns the optional expected delivery date.
func (c CreateOrderCommand) ExpectedDelivery() *time.Time {
	return c.expectedDelivery
}

// Currency returns the order currency.
func (c CreateOrderCommand) Currency() kernel.Currency {
	return c.currency
}

// PaymentTerms returns the payment terms; empty means the domain default.
func (c CreateOrderCommand) PaymentTerms() string {
	return c.paymentTerms
}

// Notes returns the free-form order notes.
func (c CreateOrderCommand) Notes() string {
	return c.notes
}

// CreatedBy returns the optional author reference.
func (c CreateOrderCommand) CreatedBy() string {
	return c.createdBy
}

// Lines returns the initial line specifications.
func (c CreateOrderCommand) Lines() []LineSpec {
	return append([]LineSpec(nil), c.lines...)
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setSupplierID(supplierID kernel.UUID) error {
	if err := supplierID.Validate(); err != nil {
		return err
	}

	c.supplierID = supplierID
	return nil
}

func (c *CreateOrderCommand) setOrderNumber(orderNumber string) error {
	if orderNumber == "" {
		return errs.NewValueIsRequiredError("orderNumber")
	}

	c.orderNumber = orderNumber
	return nil
}

func (c *CreateOrderCommand) setOrderDate(orderDate time.Time) error {
	if orderDate.IsZero() {
		return errs.NewValueIsRequiredError("orderDate")
	}

	c.orderDate = orderDate
	return nil
}

func (c *CreateOrderCommand) setCurrency(currency kernel.Currency) error {
	if err := currency.Validate(); err != nil {
		return err
	}

	c.currency = currency
	return nil
}
