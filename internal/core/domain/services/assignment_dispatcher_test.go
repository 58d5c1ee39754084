package services_test

import (
	"testing"

	"ordering/internal/core/domain/model/account"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/services"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newConsolidatingOrder(t *testing.T, zoneID kernel.UUID) *order.Order {
	t.Helper()
	o := newPendingOrder(t, zoneID)
	require.NoError(t, o.Consolidate())
	return o
}

func supplierUser() account.User {
	return account.User{
		ID:   kernel.NewUUID(),
		Name: "Distribuidora Andina",
		Role: account.RoleSupplier,
	}
}

func TestAssignmentDispatcher_Assign(t *testing.T) {
	dispatcher := services.NewAssignmentDispatcher()
	zoneID := kernel.NewUUID()

	t.Run("consolidating batch is assigned to supplier", func(t *testing.T) {
		supplier := supplierUser()
		orders := []*order.Order{newConsolidatingOrder(t, zoneID), newConsolidatingOrder(t, zoneID)}

		err := dispatcher.Assign(orders, 2, supplier)

		require.NoError(t, err)
		for _, o := range orders {
			assert.Equal(t, order.Assigned, o.Status())
			require.NotNil(t, o.Supplier())
			assert.True(t, o.Supplier().IsEqual(supplier.ID))
		}
	})

	t.Run("empty batch is rejected", func(t *testing.T) {
		err := dispatcher.Assign(nil, 0, supplierUser())

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("unresolved ids fail as not found", func(t *testing.T) {
		orders := []*order.Order{newConsolidatingOrder(t, zoneID)}

		err := dispatcher.Assign(orders, 2, supplierUser())

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("wrong role fails validation and mutates nothing", func(t *testing.T) {
		shopkeeper := account.User{ID: kernel.NewUUID(), Role: account.RoleShopkeeper}
		orders := []*order.Order{newConsolidatingOrder(t, zoneID)}

		err := dispatcher.Assign(orders, 1, shopkeeper)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "shopkeeper")
		assert.Equal(t, order.Consolidating, orders[0].Status())
		assert.Nil(t, orders[0].Supplier())
	})

	t.Run("non-consolidating order fails batch and mutates nothing", func(t *testing.T) {
		pending := newPendingOrder(t, zoneID)
		consolidating := newConsolidatingOrder(t, zoneID)
		orders := []*order.Order{consolidating, pending}

		err := dispatcher.Assign(orders, 2, supplierUser())

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrInvalidState)
		assert.Equal(t, order.Consolidating, consolidating.Status())
		assert.Nil(t, consolidating.Supplier())
		assert.Equal(t, order.Pending, pending.Status())
	})
}

func TestAssignmentDispatcher_Dispatch(t *testing.T) {
	dispatcher := services.NewAssignmentDispatcher()
	zoneID := kernel.NewUUID()

	newAssignedOrder := func(t *testing.T) *order.Order {
		o := newConsolidatingOrder(t, zoneID)
		require.NoError(t, o.AssignSupplier(kernel.NewUUID()))
		return o
	}

	t.Run("assigned orders advance, others are skipped", func(t *testing.T) {
		// Skipping rather than failing is intentional here; only the
		// skipped ids are surfaced to the caller.
		assigned := newAssignedOrder(t)
		pending := newPendingOrder(t, zoneID)

		updated, skipped, err := dispatcher.Dispatch([]*order.Order{assigned, pending})

		require.NoError(t, err)
		require.Len(t, updated, 1)
		assert.True(t, updated[0].IsEqual(assigned))
		assert.Equal(t, order.Dispatched, assigned.Status())
		require.Len(t, skipped, 1)
		assert.True(t, skipped[0].IsEqual(pending.ID()))
		assert.Equal(t, order.Pending, pending.Status())
	})

	t.Run("all-assigned batch has no skips", func(t *testing.T) {
		orders := []*order.Order{newAssignedOrder(t), newAssignedOrder(t)}

		updated, skipped, err := dispatcher.Dispatch(orders)

		require.NoError(t, err)
		assert.Len(t, updated, 2)
		assert.Empty(t, skipped)
	})

	t.Run("empty batch is a no-op", func(t *testing.T) {
		updated, skipped, err := dispatcher.Dispatch(nil)

		require.NoError(t, err)
		assert.Empty(t, updated)
		assert.Empty(t, skipped)
	})
}
