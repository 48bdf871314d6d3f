package commands_test

import (
	"testing"

	"procurement/internal/core/application/usecases/commands"
	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/supplier"
	"procurement/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testContact() supplier.ContactData {
	return supplier.ContactData{
		ContactName: "María López",
		Phone:       "+502 2334 5566",
		Email:       "compras@ferreteria-central.com.gt",
		City:        "Guatemala",
	}
}

func TestNewCreateSupplierCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()

	cmd, err := commands.NewCreateSupplierCommand(id, "Ferretería Central", "1234567-8", testContact())

	require.NoError(t, err)
	assert.Equal(t, id, cmd.SupplierID())
	assert.Equal(t, "Ferretería Central", cmd.Name())
	assert.Equal(t, "1234567-8", cmd.TaxID())
	assert.Equal(t, testContact(), cmd.Contact())
	assert.NoError(t, cmd.Validate())
}

func TestNewCreateSupplierCommand_InvalidInput(t *testing.T) {
	t.Run("invalid supplier id", func(t *testing.T) {
		_, err := commands.NewCreateSupplierCommand(kernel.UUID{}, "Ferretería Central", "1234567-8", testContact())
		require.Error(t, err)
	})

	t.Run("empty name", func(t *testing.T) {
		_, err := commands.NewCreateSupplierCommand(kernel.NewUUID(), "", "1234567-8", testContact())
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("empty tax id", func(t *testing.T) {
		_, err := commands.NewCreateSupplierCommand(kernel.NewUUID(), "Ferretería Central", "", testContact())
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestCreateSupplierCommand_Validate_ZeroValue(t *testing.T) {
	var cmd commands.CreateSupplierCommand

	err := cmd.Validate()

	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrCreateSupplierCommandIsNotConstructed)
}
