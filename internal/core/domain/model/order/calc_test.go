package order_test

import (
	"fmt"
	"testing"

	"procurement/internal/core/domain/model/order"
	"procurement/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestComputeLineAmounts(t *testing.T) {
	t.Run("should apply the documented rate of 12 percent", func(t *testing.T) {
		assert.True(t, order.TaxRate.Equal(d("0.12")))
	})

	t.Run("should compute the worked example", func(t *testing.T) {
		// 10 × 25.50 = 255.00; 5% discount -> 242.25; 12% tax -> 29.07
		amounts, err := order.ComputeLineAmounts(10, d("25.50"), d("5"))
		require.NoError(t, err)

		assert.True(t, amounts.Subtotal.Equal(d("242.25")), "subtotal = %s", amounts.Subtotal)
		assert.True(t, amounts.Tax.Equal(d("29.07")), "tax = %s", amounts.Tax)
		assert.True(t, amounts.Total.Equal(d("271.32")), "total = %s", amounts.Total)
	})

	t.Run("should skip the discount step when discount is zero", func(t *testing.T) {
		amounts, err := order.ComputeLineAmounts(3, d("100"), decimal.Zero)
		require.NoError(t, err)

		assert.True(t, amounts.Subtotal.Equal(d("300")))
		assert.True(t, amounts.Tax.Equal(d("36")))
		assert.True(t, amounts.Total.Equal(d("336")))
	})

	t.Run("should handle a full discount", func(t *testing.T) {
		amounts, err := order.ComputeLineAmounts(7, d("19.99"), d("100"))
		require.NoError(t, err)

		assert.True(t, amounts.Subtotal.IsZero())
		assert.True(t, amounts.Tax.IsZero())
		assert.True(t, amounts.Total.IsZero())
	})

	t.Run("should handle a zero unit price", func(t *testing.T) {
		amounts, err := order.ComputeLineAmounts(5, decimal.Zero, d("10"))
		require.NoError(t, err)

		assert.True(t, amounts.Total.IsZero())
	})

	t.Run("should round subtotal and tax to two decimal places", func(t *testing.T) {
		// 3 × 0.333 = 0.999; 33.33% discount -> 0.66603... -> 0.67
		amounts, err := order.ComputeLineAmounts(3, d("0.333"), d("33.33"))
		require.NoError(t, err)

		assert.True(t, amounts.Subtotal.Equal(d("0.67")), "subtotal = %s", amounts.Subtotal)
		assert.True(t, amounts.Tax.Equal(d("0.08")), "tax = %s", amounts.Tax)
		assert.True(t, amounts.Total.Equal(d("0.75")), "total = %s", amounts.Total)
	})

	t.Run("should always satisfy total = subtotal + tax", func(t *testing.T) {
		cases := []struct {
			quantity  int
			unitPrice string
			discount  string
		}{
			{1, "0.01", "0"},
			{10, "25.50", "5"},
			{999, "123.45", "17.5"},
			{4, "1000000", "99.99"},
		}

		for _, tc := range cases {
			amounts, err := order.ComputeLineAmounts(tc.quantity, d(tc.unitPrice), d(tc.discount))
			require.NoError(t, err)
			assert.True(t, amounts.Total.Equal(amounts.Subtotal.Add(amounts.Tax)),
				"case %+v: %s != %s + %s", tc, amounts.Total, amounts.Subtotal, amounts.Tax)
		}
	})

	t.Run("should be deterministic for identical inputs", func(t *testing.T) {
		first, err := order.ComputeLineAmounts(42, d("87.65"), d("12.5"))
		require.NoError(t, err)

		for range 100 {
			again, computeErr := order.ComputeLineAmounts(42, d("87.65"), d("12.5"))
			require.NoError(t, computeErr)
			assert.True(t, first.Subtotal.Equal(again.Subtotal))
			assert.True(t, first.Tax.Equal(again.Tax))
			assert.True(t, first.Total.Equal(again.Total))
		}
	})

	t.Run("should reject invalid inputs before computing", func(t *testing.T) {
		tests := []struct {
			name      string
			quantity  int
			unitPrice string
			discount  string
			sentinel  error
		}{
			{"zero quantity", 0, "10", "0", errs.ErrValueIsInvalid},
			{"negative quantity", -3, "10", "0", errs.ErrValueIsInvalid},
			{"negative unit price", 1, "-0.01", "0", errs.ErrValueIsInvalid},
			{"discount below range", 1, "10", "-1", errs.ErrValueIsOutOfRange},
			{"discount above range", 1, "10", "100.01", errs.ErrValueIsOutOfRange},
		}

		for _, tc := range tests {
			t.Run(tc.name, func(t *testing.T) {
				_, err := order.ComputeLineAmounts(tc.quantity, d(tc.unitPrice), d(tc.discount))
				require.Error(t, err)
				assert.ErrorIs(t, err, tc.sentinel)
			})
		}
	})

	t.Run("should run safely from concurrent goroutines", func(t *testing.T) {
		done := make(chan order.LineAmounts, 8)
		for i := 0; i < 8; i++ {
			go func() {
				amounts, err := order.ComputeLineAmounts(10, d("25.50"), d("5"))
				require.NoError(t, err)
				done <- amounts
			}()
		}

		for i := 0; i < 8; i++ {
			amounts := <-done
			assert.True(t, amounts.Total.Equal(d("271.32")), fmt.Sprintf("total = %s", amounts.Total))
		}
	})
}
