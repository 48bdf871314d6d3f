package order

import (
	"fmt"

	"github.com/shopspring/decimal"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/errs"
)

// TaxRate is the single configured VAT rate applied to every line's
// discounted subtotal. Its value is 0.12 (12% IVA), the rate the
// procurement workflow has always charged in production. It is deliberately
// a package-level constant rather than per-order data: tax policy is not
// something a caller may vary request by request.
var TaxRate = decimal.RequireFromString("0.12")

var oneHundred = decimal.NewFromInt(100)

// LineAmounts holds the three derived monetary fields of an order line,
// each rounded to two decimal places.
type LineAmounts struct {
	Subtotal decimal.Decimal
	Tax      decimal.Decimal
	Total    decimal.Decimal
}

// ComputeLineAmounts derives a line's subtotal, tax and total from its
// quantity, unit price and discount percentage. It is a pure function:
// no side effects, safe for concurrent use, and deterministic, so
// identical inputs always yield identical outputs.
//
// Algorithm (fixed-point, two decimal places for currency fields):
//  1. raw = quantity × unitPrice
//  2. subtotal = raw − raw×discountPct/100 when discountPct > 0, else raw
//  3. tax = subtotal × TaxRate
//  4. total = subtotal + tax
//
// Input constraints are checked before anything else: quantity must be
// positive, unitPrice non-negative, discountPct within [0, 100]. Violations
// fail with validation errors and are rejected before persistence.
//
// Example: ComputeLineAmounts(10, 25.50, 5) yields 242.25 / 29.07 / 271.32.
func ComputeLineAmounts(quantity int, unitPrice, discountPct decimal.Decimal) (LineAmounts, error) {
	if quantity <= 0 {
		return LineAmounts{}, errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}
	if err := kernel.ValidateNonNegativeAmount("unitPrice", unitPrice); err != nil {
		return LineAmounts{}, err
	}
	if err := kernel.ValidatePercentage("discount", discountPct); err != nil {
		return LineAmounts{}, err
	}

	raw := unitPrice.Mul(decimal.NewFromInt(int64(quantity)))

	subtotal := raw
	if discountPct.IsPositive() {
		subtotal = raw.Sub(raw.Mul(discountPct).Div(oneHundred))
	}
	subtotal = kernel.RoundMoney(subtotal)

	tax := kernel.RoundMoney(subtotal.Mul(TaxRate))

	return LineAmounts{
		Subtotal: subtotal,
		Tax:      tax,
		Total:    subtotal.Add(tax),
	}, nil
}
