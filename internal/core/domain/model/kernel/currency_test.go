package kernel_test

import (
	"testing"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurrency_FromString(t *testing.T) {
	t.Run("should parse valid codes case-insensitively", func(t *testing.T) {
		tests := map[string]kernel.Currency{
			"GTQ": kernel.GTQ,
			"gtq": kernel.GTQ,
			"USD": kernel.USD,
			"usd": kernel.USD,
			" Usd": kernel.USD,
		}

		for input, expected := range tests {
			currency, err := kernel.CurrencyFromString(input)
			require.NoError(t, err, "input %q", input)
			assert.Equal(t, expected, currency)
		}
	})

	t.Run("should default empty input to GTQ", func(t *testing.T) {
		currency, err := kernel.CurrencyFromString("")
		require.NoError(t, err)
		assert.Equal(t, kernel.DefaultCurrency, currency)
		assert.Equal(t, kernel.GTQ, currency)
	})

	t.Run("should reject unrecognized codes", func(t *testing.T) {
		for _, input := range []string{"EUR", "quetzal", "G T Q"} {
			_, err := kernel.CurrencyFromString(input)
			require.Error(t, err, "input %q", input)
			assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})
}

func TestCurrency_Validate(t *testing.T) {
	t.Run("should validate enumerated currencies", func(t *testing.T) {
		require.NoError(t, kernel.GTQ.Validate())
		require.NoError(t, kernel.USD.Validate())
	})

	t.Run("should reject unknown and out-of-range values", func(t *testing.T) {
		for _, c := range []kernel.Currency{kernel.CurrencyUnknown, kernel.Currency(-1), kernel.Currency(99)} {
			err := c.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})
}

func TestCurrency_String(t *testing.T) {
	assert.Equal(t, "GTQ", kernel.GTQ.String())
	assert.Equal(t, "USD", kernel.USD.String())
	assert.Equal(t, "Unknown", kernel.CurrencyUnknown.String())
	assert.Equal(t, "Unknown", kernel.Currency(42).String())
}
