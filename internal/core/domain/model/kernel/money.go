package kernel

import (
	"fmt"

	"github.com/shopspring/decimal"

	"procurement/internal/pkg/errs"
)

// moneyScale is the number of decimal places carried by every monetary amount.
const moneyScale = 2

// RoundMoney rounds a monetary amount to the system-wide currency precision
// of two decimal places, using half-away-from-zero rounding.
//
// All derived amounts (line subtotals, taxes, totals and the order-level
// sums built from them) pass through this function so that the aggregate
// invariant can be checked with exact equality rather than a tolerance.
func RoundMoney(d decimal.Decimal) decimal.Decimal {
	return d.Round(moneyScale)
}

// ValidateNonNegativeAmount rejects negative monetary amounts.
// Used for unit prices, which must be zero or greater.
func ValidateNonNegativeAmount(paramName string, d decimal.Decimal) error {
	if d.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause(
			paramName,
			fmt.Errorf("%s is negative", d.String()),
		)
	}
	return nil
}

// ValidatePercentage rejects values outside [0, 100].
// Used for line discount percentages.
func ValidatePercentage(paramName string, d decimal.Decimal) error {
	if d.IsNegative() || d.GreaterThan(decimal.NewFromInt(100)) {
		return errs.NewValueIsOutOfRangeError(paramName, d.String(), 0, 100)
	}
	return nil
}
