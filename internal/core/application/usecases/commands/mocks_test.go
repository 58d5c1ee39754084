package commands_test

import (
	"context"
	"testing"
	"time"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/domain/model/account"
	"ordering/internal/core/domain/model/catalog"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetMany(ctx context.Context, ids []kernel.UUID) ([]*order.Order, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetActiveByShopkeeper(
	ctx context.Context, shopkeeperID kernel.UUID,
) (*order.Order, error) {
	args := m.Called(ctx, shopkeeperID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetPendingPastDeadline(ctx context.Context, now time.Time) ([]*order.Order, error) {
	args := m.Called(ctx, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockOrderUoW) GetTrackedAggregates() []*order.Order {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]*order.Order)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockUserResolver struct{ mock.Mock }

func (m *MockUserResolver) ResolveUser(ctx context.Context, id kernel.UUID) (account.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(account.User), args.Error(1)
}

type MockProductCatalog struct{ mock.Mock }

func (m *MockProductCatalog) ResolveProductsByIDs(
	ctx context.Context, ids []kernel.UUID,
) ([]catalog.Product, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Product), args.Error(1)
}

type MockZoneResolver struct{ mock.Mock }

func (m *MockZoneResolver) ResolveZone(ctx context.Context, id kernel.UUID) (catalog.Zone, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(catalog.Zone), args.Error(1)
}

type MockEventPublisher struct{ mock.Mock }

func (m *MockEventPublisher) PublishOrderChanged(ctx context.Context, orders ...*order.Order) error {
	args := m.Called(ctx, orders)
	return args.Error(0)
}

// NoopPublisher is used where the publish outcome does not matter.
type NoopPublisher struct{}

func (NoopPublisher) PublishOrderChanged(_ context.Context, _ ...*order.Order) error { return nil }

func mustLine(t *testing.T, quantity int, cents int64) order.Line {
	t.Helper()
	price, err := kernel.NewMoney(cents)
	require.NoError(t, err)
	line, err := order.NewLine(kernel.NewUUID(), quantity, price)
	require.NoError(t, err)
	return line
}

func newOrderInStatus(t *testing.T, zoneID kernel.UUID, status order.Status) *order.Order {
	t.Helper()
	o, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), zoneID,
		[]order.Line{mustLine(t, 2, 1500)}, time.Now())
	require.NoError(t, err)

	if status >= order.Consolidating {
		require.NoError(t, o.Consolidate())
	}
	if status >= order.Assigned {
		require.NoError(t, o.AssignSupplier(kernel.NewUUID()))
	}
	if status >= order.Dispatched {
		require.NoError(t, o.Dispatch())
	}
	require.Equal(t, status, o.Status())
	return o
}

func platformUser() account.User {
	return account.User{ID: kernel.NewUUID(), Name: "ops", Role: account.RolePlatform}
}

func supplierUser() account.User {
	return account.User{ID: kernel.NewUUID(), Name: "distribuidora", Role: account.RoleSupplier}
}
