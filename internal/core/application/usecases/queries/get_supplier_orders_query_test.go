package queries_test

import (
	"testing"

	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetSupplierOrdersQuery_ValidInput(t *testing.T) {
	supplierID := kernel.NewUUID()
	query, err := queries.NewGetSupplierOrdersQuery(supplierID, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, supplierID, query.SupplierID())
	assert.Nil(t, query.ZoneID())
	assert.Nil(t, query.Status())
	assert.NoError(t, query.Validate())
}

func TestNewGetSupplierOrdersQuery_WithFilters(t *testing.T) {
	supplierID := kernel.NewUUID()
	zoneID := kernel.NewUUID()
	status := order.Shipped

	query, err := queries.NewGetSupplierOrdersQuery(supplierID, &zoneID, &status)
	require.NoError(t, err)
	assert.Equal(t, zoneID, *query.ZoneID())
	assert.Equal(t, order.Shipped, *query.Status())
}

func TestNewGetSupplierOrdersQuery_InvalidSupplierID(t *testing.T) {
	_, err := queries.NewGetSupplierOrdersQuery(kernel.UUID{}, nil, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewGetSupplierOrdersQuery_InvalidFilters(t *testing.T) {
	supplierID := kernel.NewUUID()

	t.Run("zone filter must be a constructed id", func(t *testing.T) {
		_, err := queries.NewGetSupplierOrdersQuery(supplierID, &kernel.UUID{}, nil)
		require.Error(t, err)
		assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})

	t.Run("status filter must be a known status", func(t *testing.T) {
		bad := order.Status(99)
		_, err := queries.NewGetSupplierOrdersQuery(supplierID, nil, &bad)
		require.Error(t, err)
	})
}

func TestGetSupplierOrdersQuery_NotConstructed(t *testing.T) {
	var query queries.GetSupplierOrdersQuery
	assert.ErrorIs(t, query.Validate(), queries.ErrGetSupplierOrdersQueryIsNotConstructed)
}
