package commands_test

import (
	"testing"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/domain/model/account"
	"ordering/internal/core/domain/model/catalog"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func shopkeeperWithZone(zoneID kernel.UUID) account.User {
	return account.User{
		ID:     kernel.NewUUID(),
		Name:   "tienda",
		Role:   account.RoleShopkeeper,
		ZoneID: &zoneID,
	}
}

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	zoneID := kernel.NewUUID()
	shopkeeper := shopkeeperWithZone(zoneID)

	price, err := kernel.NewMoney(1200)
	require.NoError(t, err)
	product := catalog.Product{ID: kernel.NewUUID(), Name: "arroz", Unit: "kg", BasePrice: price, Active: true}

	cmd, err := commands.NewCreateOrderCommand(shopkeeper.ID, []commands.LineRequest{
		{ProductID: product.ID, Quantity: 3},
	})
	require.NoError(t, err)

	users := new(MockUserResolver)
	users.On("ResolveUser", ctx, shopkeeper.ID).Return(shopkeeper, nil).Once()

	zones := new(MockZoneResolver)
	zones.On("ResolveZone", ctx, zoneID).Return(catalog.Zone{ID: zoneID, Name: "norte"}, nil).Once()

	products := new(MockProductCatalog)
	products.On("ResolveProductsByIDs", ctx, []kernel.UUID{product.ID}).
		Return([]catalog.Product{product}, nil).Once()

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetActiveByShopkeeper", ctx, shopkeeper.ID).
			Return(nil, errs.NewObjectNotFoundError("shopkeeperId", shopkeeper.ID)).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("GetTrackedAggregates").Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory, users, products, zones, NoopPublisher{})
	created, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, order.Pending, created.Status())
	assert.Equal(t, shopkeeper.ID, created.ShopkeeperID())
	assert.Equal(t, zoneID, created.ZoneID())
	assert.Equal(t, "36.00", created.Total().String())

	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
	users.AssertExpectations(t)
	zones.AssertExpectations(t)
	products.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateOrderCommand{} // not constructed properly
	h := commands.NewCreateOrderCommandHandler(
		new(MockOrderUoWFactory), new(MockUserResolver), new(MockProductCatalog),
		new(MockZoneResolver), NoopPublisher{})
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestCreateOrderCommandHandler_Handle_NotAShopkeeper(t *testing.T) {
	ctx := t.Context()
	supplier := supplierUser()
	cmd, err := commands.NewCreateOrderCommand(supplier.ID, []commands.LineRequest{
		{ProductID: kernel.NewUUID(), Quantity: 1},
	})
	require.NoError(t, err)

	users := new(MockUserResolver)
	users.On("ResolveUser", ctx, supplier.ID).Return(supplier, nil).Once()

	h := commands.NewCreateOrderCommandHandler(
		new(MockOrderUoWFactory), users, new(MockProductCatalog),
		new(MockZoneResolver), NoopPublisher{})
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrForbidden)
}

func TestCreateOrderCommandHandler_Handle_ShopkeeperWithoutZone(t *testing.T) {
	ctx := t.Context()
	shopkeeper := account.User{ID: kernel.NewUUID(), Name: "tienda", Role: account.RoleShopkeeper}
	cmd, err := commands.NewCreateOrderCommand(shopkeeper.ID, []commands.LineRequest{
		{ProductID: kernel.NewUUID(), Quantity: 1},
	})
	require.NoError(t, err)

	users := new(MockUserResolver)
	users.On("ResolveUser", ctx, shopkeeper.ID).Return(shopkeeper, nil).Once()

	h := commands.NewCreateOrderCommandHandler(
		new(MockOrderUoWFactory), users, new(MockProductCatalog),
		new(MockZoneResolver), NoopPublisher{})
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestCreateOrderCommandHandler_Handle_UnknownProduct(t *testing.T) {
	ctx := t.Context()
	zoneID := kernel.NewUUID()
	shopkeeper := shopkeeperWithZone(zoneID)
	productID := kernel.NewUUID()

	cmd, err := commands.NewCreateOrderCommand(shopkeeper.ID, []commands.LineRequest{
		{ProductID: productID, Quantity: 1},
	})
	require.NoError(t, err)

	users := new(MockUserResolver)
	users.On("ResolveUser", ctx, shopkeeper.ID).Return(shopkeeper, nil).Once()

	zones := new(MockZoneResolver)
	zones.On("ResolveZone", ctx, zoneID).Return(catalog.Zone{ID: zoneID, Name: "norte"}, nil).Once()

	products := new(MockProductCatalog)
	products.On("ResolveProductsByIDs", ctx, []kernel.UUID{productID}).
		Return([]catalog.Product{}, nil).Once()

	h := commands.NewCreateOrderCommandHandler(
		new(MockOrderUoWFactory), users, products, zones, NoopPublisher{})
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestCreateOrderCommandHandler_Handle_ActiveOrderConflict(t *testing.T) {
	ctx := t.Context()
	zoneID := kernel.NewUUID()
	shopkeeper := shopkeeperWithZone(zoneID)

	price, err := kernel.NewMoney(1200)
	require.NoError(t, err)
	product := catalog.Product{ID: kernel.NewUUID(), Name: "arroz", Unit: "kg", BasePrice: price, Active: true}

	cmd, err := commands.NewCreateOrderCommand(shopkeeper.ID, []commands.LineRequest{
		{ProductID: product.ID, Quantity: 1},
	})
	require.NoError(t, err)

	users := new(MockUserResolver)
	users.On("ResolveUser", ctx, shopkeeper.ID).Return(shopkeeper, nil).Once()

	zones := new(MockZoneResolver)
	zones.On("ResolveZone", ctx, zoneID).Return(catalog.Zone{ID: zoneID, Name: "norte"}, nil).Once()

	products := new(MockProductCatalog)
	products.On("ResolveProductsByIDs", ctx, []kernel.UUID{product.ID}).
		Return([]catalog.Product{product}, nil).Once()

	active := newOrderInStatus(t, zoneID, order.Pending)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetActiveByShopkeeper", ctx, shopkeeper.ID).Return(active, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory, users, products, zones, NoopPublisher{})
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrConflict)
	assert.Contains(t, err.Error(), active.ID().String())

	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}
