package order_test

import (
	"testing"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustMoney(t *testing.T, cents int64) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoney(cents)
	require.NoError(t, err)
	return m
}

func mustLine(t *testing.T, productID kernel.UUID, quantity int, cents int64) order.Line {
	t.Helper()
	line, err := order.NewLine(productID, quantity, mustMoney(t, cents))
	require.NoError(t, err)
	return line
}

func newTestOrder(t *testing.T, lines ...order.Line) *order.Order {
	t.Helper()
	if len(lines) == 0 {
		lines = []order.Line{mustLine(t, kernel.NewUUID(), 1, 100)}
	}
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), lines, time.Now())
	require.NoError(t, err)
	return o
}

func TestNewLine(t *testing.T) {
	productID := kernel.NewUUID()

	t.Run("should create valid line", func(t *testing.T) {
		line, err := order.NewLine(productID, 3, mustMoney(t, 1000))

		require.NoError(t, err)
		require.NoError(t, line.Validate())
		assert.True(t, line.ProductID().IsEqual(productID))
		assert.Equal(t, 3, line.Quantity())
		assert.Equal(t, int64(1000), line.UnitPrice().Cents())
		assert.False(t, line.Received())
		assert.Equal(t, int64(3000), line.Subtotal().Cents())
	})

	t.Run("should fail with zero quantity", func(t *testing.T) {
		_, err := order.NewLine(productID, 0, mustMoney(t, 1000))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "0 is not greater than 0")
	})

	t.Run("should fail with negative quantity", func(t *testing.T) {
		_, err := order.NewLine(productID, -2, mustMoney(t, 1000))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "-2 is not greater than 0")
	})

	t.Run("should fail with invalid product id", func(t *testing.T) {
		var invalidID kernel.UUID

		_, err := order.NewLine(invalidID, 1, mustMoney(t, 1000))

		require.Error(t, err)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var line order.Line

		require.ErrorIs(t, line.Validate(), order.ErrLineIsNotConstructed)
	})
}

func TestNewOrder(t *testing.T) {
	validID := kernel.NewUUID()
	shopkeeperID := kernel.NewUUID()
	zoneID := kernel.NewUUID()
	now := time.Now()

	t.Run("should create pending order with deadline 72h out", func(t *testing.T) {
		lines := []order.Line{
			mustLine(t, kernel.NewUUID(), 3, 1000),
			mustLine(t, kernel.NewUUID(), 1, 500),
		}

		o, err := order.NewOrder(validID, shopkeeperID, zoneID, lines, now)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.True(t, o.ID().IsEqual(validID))
		assert.True(t, o.ShopkeeperID().IsEqual(shopkeeperID))
		assert.True(t, o.ZoneID().IsEqual(zoneID))
		assert.Nil(t, o.Supplier())
		assert.Equal(t, order.Pending, o.Status())
		assert.Equal(t, now, o.CreatedAt())
		assert.Equal(t, now.Add(72*time.Hour), o.Deadline())
		assert.Len(t, o.Lines(), 2)
		assert.Equal(t, "35.00", o.Total().String())
		assert.True(t, o.IsActive())
	})

	t.Run("should fail without lines", func(t *testing.T) {
		o, err := order.NewOrder(validID, shopkeeperID, zoneID, nil, now)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "at least one line")
	})

	t.Run("should fail with invalid shopkeeper", func(t *testing.T) {
		var invalidID kernel.UUID
		lines := []order.Line{mustLine(t, kernel.NewUUID(), 1, 100)}

		o, err := order.NewOrder(validID, invalidID, zoneID, lines, now)

		require.Error(t, err)
		assert.Nil(t, o)
	})

	t.Run("should fail with unconstructed line", func(t *testing.T) {
		o, err := order.NewOrder(validID, shopkeeperID, zoneID, []order.Line{{}}, now)

		require.Error(t, err)
		assert.Nil(t, o)
		require.ErrorIs(t, err, order.ErrLineIsNotConstructed)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var o order.Order

		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestRestoreOrder(t *testing.T) {
	id := kernel.NewUUID()
	shopkeeperID := kernel.NewUUID()
	zoneID := kernel.NewUUID()
	supplierID := kernel.NewUUID()
	now := time.Now()
	lines := []order.Line{mustLine(t, kernel.NewUUID(), 2, 250)}

	t.Run("should restore assigned order with supplier", func(t *testing.T) {
		o, err := order.RestoreOrder(id, shopkeeperID, zoneID, &supplierID,
			order.Assigned, now, now.Add(72*time.Hour), lines)

		require.NoError(t, err)
		assert.Equal(t, order.Assigned, o.Status())
		require.NotNil(t, o.Supplier())
		assert.True(t, o.Supplier().IsEqual(supplierID))
	})

	t.Run("should reject supplier on pending order", func(t *testing.T) {
		_, err := order.RestoreOrder(id, shopkeeperID, zoneID, &supplierID,
			order.Pending, now, now.Add(72*time.Hour), lines)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrInvalidState)
	})

	t.Run("should reject missing supplier on shipped order", func(t *testing.T) {
		_, err := order.RestoreOrder(id, shopkeeperID, zoneID, nil,
			order.Shipped, now, now.Add(72*time.Hour), lines)

		require.Error(t, err)
	})

	t.Run("should reject invalid status", func(t *testing.T) {
		_, err := order.RestoreOrder(id, shopkeeperID, zoneID, nil,
			order.Status(42), now, now.Add(72*time.Hour), lines)

		require.Error(t, err)
	})
}

func TestOrder_Consolidate(t *testing.T) {
	t.Run("pending order consolidates", func(t *testing.T) {
		o := newTestOrder(t)

		require.NoError(t, o.Consolidate())
		assert.Equal(t, order.Consolidating, o.Status())
	})

	t.Run("non-pending order does not", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.Consolidate())

		err := o.Consolidate()

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrInvalidState)
		assert.Equal(t, order.Consolidating, o.Status())
	})
}

func TestOrder_AssignSupplier(t *testing.T) {
	supplierID := kernel.NewUUID()

	t.Run("consolidating order accepts a supplier", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.Consolidate())

		require.NoError(t, o.AssignSupplier(supplierID))
		assert.Equal(t, order.Assigned, o.Status())
		require.NotNil(t, o.Supplier())
		assert.True(t, o.Supplier().IsEqual(supplierID))
	})

	t.Run("pending order rejects assignment", func(t *testing.T) {
		o := newTestOrder(t)

		err := o.AssignSupplier(supplierID)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrInvalidState)
		assert.Nil(t, o.Supplier())
	})

	t.Run("invalid supplier id is rejected", func(t *testing.T) {
		o := newTestOrder(t)
		require.NoError(t, o.Consolidate())

		var invalidID kernel.UUID
		err := o.AssignSupplier(invalidID)

		require.Error(t, err)
		assert.Equal(t, order.Consolidating, o.Status())
	})
}

func TestOrder_UpdateStatusBySupplier(t *testing.T) {
	supplierID := kernel.NewUUID()

	assigned := func(t *testing.T) *order.Order {
		o := newTestOrder(t)
		require.NoError(t, o.Consolidate())
		require.NoError(t, o.AssignSupplier(supplierID))
		return o
	}

	t.Run("supplier walks dispatched, shipped, delivered", func(t *testing.T) {
		o := assigned(t)

		require.NoError(t, o.UpdateStatusBySupplier(order.Dispatched, supplierID))
		assert.Equal(t, order.Dispatched, o.Status())

		require.NoError(t, o.UpdateStatusBySupplier(order.Shipped, supplierID))
		assert.Equal(t, order.Shipped, o.Status())

		require.NoError(t, o.UpdateStatusBySupplier(order.Delivered, supplierID))
		assert.Equal(t, order.Delivered, o.Status())
	})

	t.Run("strict adjacency: skipping a step is rejected", func(t *testing.T) {
		// The permissive behavior of the original service is deliberately
		// tightened here: Shipped is not reachable straight from Assigned.
		o := assigned(t)

		err := o.UpdateStatusBySupplier(order.Shipped, supplierID)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrInvalidState)
		assert.Equal(t, order.Assigned, o.Status())
	})

	t.Run("other suppliers are forbidden", func(t *testing.T) {
		o := assigned(t)

		err := o.UpdateStatusBySupplier(order.Dispatched, kernel.NewUUID())

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrForbidden)
		assert.Equal(t, order.Assigned, o.Status())
	})

	t.Run("targets outside the supplier set are invalid", func(t *testing.T) {
		o := assigned(t)

		for _, target := range []order.Status{order.Pending, order.Consolidating, order.Assigned, order.Received} {
			err := o.UpdateStatusBySupplier(target, supplierID)
			require.Error(t, err)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})
}

func TestOrder_MarkLineReceived(t *testing.T) {
	supplierID := kernel.NewUUID()
	productA := kernel.NewUUID()
	productB := kernel.NewUUID()

	delivered := func(t *testing.T) (*order.Order, kernel.UUID) {
		lines := []order.Line{
			mustLine(t, productA, 3, 1000),
			mustLine(t, productB, 1, 500),
		}
		o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), lines, time.Now())
		require.NoError(t, err)
		require.NoError(t, o.Consolidate())
		require.NoError(t, o.AssignSupplier(supplierID))
		require.NoError(t, o.UpdateStatusBySupplier(order.Dispatched, supplierID))
		require.NoError(t, o.UpdateStatusBySupplier(order.Shipped, supplierID))
		require.NoError(t, o.UpdateStatusBySupplier(order.Delivered, supplierID))
		return o, o.ShopkeeperID()
	}

	t.Run("partial receipt keeps order delivered", func(t *testing.T) {
		o, shopkeeper := delivered(t)

		completed, err := o.MarkLineReceived(productA, shopkeeper)

		require.NoError(t, err)
		assert.False(t, completed)
		assert.Equal(t, order.Delivered, o.Status())
		assert.False(t, o.AllLinesReceived())
	})

	t.Run("last line completes the order", func(t *testing.T) {
		o, shopkeeper := delivered(t)

		_, err := o.MarkLineReceived(productA, shopkeeper)
		require.NoError(t, err)

		completed, err := o.MarkLineReceived(productB, shopkeeper)

		require.NoError(t, err)
		assert.True(t, completed)
		assert.Equal(t, order.Received, o.Status())
		assert.False(t, o.IsActive())
	})

	t.Run("non-owner is forbidden", func(t *testing.T) {
		o, _ := delivered(t)

		_, err := o.MarkLineReceived(productA, kernel.NewUUID())

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrForbidden)
	})

	t.Run("non-delivered order is invalid state", func(t *testing.T) {
		o := newTestOrder(t, mustLine(t, productA, 1, 100))

		_, err := o.MarkLineReceived(productA, o.ShopkeeperID())

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrInvalidState)
	})

	t.Run("unknown product is not found", func(t *testing.T) {
		o, shopkeeper := delivered(t)

		_, err := o.MarkLineReceived(kernel.NewUUID(), shopkeeper)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

// TestOrder_FullLifecycle walks one order through the whole workflow:
// create, consolidate, assign, dispatch, ship, deliver, then receive
// line by line.
func TestOrder_FullLifecycle(t *testing.T) {
	shopkeeperID := kernel.NewUUID()
	zoneID := kernel.NewUUID()
	supplierID := kernel.NewUUID()
	product1 := kernel.NewUUID()
	product2 := kernel.NewUUID()

	lines := []order.Line{
		mustLine(t, product1, 3, 1000),
		mustLine(t, product2, 1, 500),
	}
	o, err := order.NewOrder(kernel.NewUUID(), shopkeeperID, zoneID, lines, time.Now())
	require.NoError(t, err)
	assert.Equal(t, order.Pending, o.Status())
	assert.Equal(t, "35.00", o.Total().String())

	require.NoError(t, o.Consolidate())
	require.NoError(t, o.AssignSupplier(supplierID))
	require.NoError(t, o.Dispatch())
	require.NoError(t, o.UpdateStatusBySupplier(order.Shipped, supplierID))
	require.NoError(t, o.UpdateStatusBySupplier(order.Delivered, supplierID))

	completed, err := o.MarkLineReceived(product1, shopkeeperID)
	require.NoError(t, err)
	assert.False(t, completed)
	assert.Equal(t, order.Delivered, o.Status())

	completed, err = o.MarkLineReceived(product2, shopkeeperID)
	require.NoError(t, err)
	assert.True(t, completed)
	assert.Equal(t, order.Received, o.Status())
	assert.False(t, o.IsActive())
}
