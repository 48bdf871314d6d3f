package kernel_test

import (
	"testing"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundMoney(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"242.25", "242.25"},
		{"29.07", "29.07"},
		{"10.005", "10.01"},
		{"10.004", "10"},
		{"0", "0"},
		{"-1.005", "-1.01"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := kernel.RoundMoney(decimal.RequireFromString(tt.input))
			assert.True(t, got.Equal(decimal.RequireFromString(tt.expected)),
				"RoundMoney(%s) = %s, want %s", tt.input, got, tt.expected)
		})
	}
}

func TestValidateNonNegativeAmount(t *testing.T) {
	t.Run("should accept zero and positive amounts", func(t *testing.T) {
		require.NoError(t, kernel.ValidateNonNegativeAmount("unitPrice", decimal.Zero))
		require.NoError(t, kernel.ValidateNonNegativeAmount("unitPrice", decimal.RequireFromString("25.50")))
	})

	t.Run("should reject negative amounts", func(t *testing.T) {
		err := kernel.ValidateNonNegativeAmount("unitPrice", decimal.RequireFromString("-0.01"))
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "unitPrice")
	})
}

func TestValidatePercentage(t *testing.T) {
	t.Run("should accept values within [0, 100]", func(t *testing.T) {
		for _, v := range []string{"0", "5", "99.99", "100"} {
			require.NoError(t, kernel.ValidatePercentage("discount", decimal.RequireFromString(v)), v)
		}
	})

	t.Run("should reject values outside [0, 100]", func(t *testing.T) {
		for _, v := range []string{"-0.01", "100.01", "150"} {
			err := kernel.ValidatePercentage("discount", decimal.RequireFromString(v))
			require.Error(t, err, v)
			assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		}
	})
}
