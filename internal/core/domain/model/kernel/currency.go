package kernel

import (
	"fmt"
	"strings"

	"procurement/internal/pkg/errs"
)

// Currency represents the currency a purchase order is denominated in.
// It is a value object with a fixed, explicitly enumerated vocabulary;
// amounts are never converted between currencies by this system.
//
// Valid currencies:
//   - GTQ: Guatemalan quetzal (the default for new orders)
//   - USD: United States dollar
type Currency int

const (
	// CurrencyUnknown represents an invalid or undefined currency.
	// This value (0) helps catch uninitialized Currency values.
	CurrencyUnknown Currency = iota

	// GTQ is the Guatemalan quetzal, the default order currency.
	GTQ

	// USD is the United States dollar.
	USD
)

// DefaultCurrency is the currency applied to orders that do not specify one.
const DefaultCurrency = GTQ

func getCurrencyStrings() map[Currency]string {
	return map[Currency]string{
		CurrencyUnknown: "Unknown",
		GTQ:             "GTQ",
		USD:             "USD",
	}
}

func getValidCurrencyStrings() map[Currency]string {
	//nolint:exhaustive // CurrencyUnknown is intentionally excluded as it's invalid
	return map[Currency]string{
		GTQ: "GTQ",
		USD: "USD",
	}
}

// CurrencyFromString parses a currency code, case-insensitively.
// An empty string yields DefaultCurrency; an unrecognized code fails
// with a validation error.
func CurrencyFromString(s string) (Currency, error) {
	if s == "" {
		return DefaultCurrency, nil
	}

	normalized := strings.ToUpper(strings.TrimSpace(s))
	for currency, str := range getValidCurrencyStrings() {
		if str == normalized {
			return currency, nil
		}
	}

	return CurrencyUnknown, errs.NewValueIsInvalidErrorWithCause(
		"currency",
		fmt.Errorf("%q is not a valid currency", s),
	)
}

// Validate checks if the Currency value is valid.
// CurrencyUnknown (0) and any other values are invalid.
func (c Currency) Validate() error {
	if _, ok := getValidCurrencyStrings()[c]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"currency",
			fmt.Errorf("%d is not a valid currency", c),
		)
	}
	return nil
}

// String returns the ISO code of the currency.
// This method implements the fmt.Stringer interface and is safe
// to call on any Currency value, including invalid ones.
func (c Currency) String() string {
	if str, ok := getCurrencyStrings()[c]; ok {
		return str
	}
	return "Unknown"
}
