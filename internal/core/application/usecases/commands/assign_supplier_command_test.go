package commands_test

import (
	"testing"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAssignSupplierCommand_ValidInput(t *testing.T) {
	ids := []kernel.UUID{kernel.NewUUID()}
	supplierID := kernel.NewUUID()
	callerID := kernel.NewUUID()

	cmd, err := commands.NewAssignSupplierCommand(ids, supplierID, callerID)
	require.NoError(t, err)
	assert.Equal(t, ids, cmd.OrderIDs())
	assert.Equal(t, supplierID, cmd.SupplierID())
	assert.Equal(t, callerID, cmd.CallerID())
	assert.NoError(t, cmd.Validate())
}

func TestNewAssignSupplierCommand_EmptyOrderIDs(t *testing.T) {
	_, err := commands.NewAssignSupplierCommand(nil, kernel.NewUUID(), kernel.NewUUID())
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewAssignSupplierCommand_InvalidSupplierID(t *testing.T) {
	_, err := commands.NewAssignSupplierCommand([]kernel.UUID{kernel.NewUUID()}, kernel.UUID{}, kernel.NewUUID())
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestAssignSupplierCommand_NotConstructed(t *testing.T) {
	var cmd commands.AssignSupplierCommand
	assert.ErrorIs(t, cmd.Validate(), commands.ErrAssignSupplierCommandIsNotConstructed)
}
