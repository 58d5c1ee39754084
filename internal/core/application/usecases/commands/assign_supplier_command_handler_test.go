package commands_test

import (
	"testing"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAssignSupplierCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	zoneID := kernel.NewUUID()
	caller := platformUser()
	supplier := supplierUser()

	first := newOrderInStatus(t, zoneID, order.Consolidating)
	second := newOrderInStatus(t, zoneID, order.Consolidating)
	ids := []kernel.UUID{first.ID(), second.ID()}

	cmd, err := commands.NewAssignSupplierCommand(ids, supplier.ID, caller.ID)
	require.NoError(t, err)

	users := new(MockUserResolver)
	mock.InOrder(
		users.On("ResolveUser", ctx, caller.ID).Return(caller, nil).Once(),
		users.On("ResolveUser", ctx, supplier.ID).Return(supplier, nil).Once(),
	)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetMany", ctx, ids).Return([]*order.Order{first, second}, nil).Once(),
		repo.On("Update", ctx, first).Return(nil).Once(),
		repo.On("Update", ctx, second).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("GetTrackedAggregates").Return([]*order.Order{first, second}).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAssignSupplierCommandHandler(factory, users, NoopPublisher{})
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, order.Assigned, first.Status())
	require.NotNil(t, first.Supplier())
	assert.True(t, first.Supplier().IsEqual(supplier.ID))
	assert.Equal(t, order.Assigned, second.Status())

	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	users.AssertExpectations(t)
}

func TestAssignSupplierCommandHandler_Handle_CallerNotPlatform(t *testing.T) {
	ctx := t.Context()
	caller := supplierUser()

	cmd, err := commands.NewAssignSupplierCommand(
		[]kernel.UUID{kernel.NewUUID()}, kernel.NewUUID(), caller.ID)
	require.NoError(t, err)

	users := new(MockUserResolver)
	users.On("ResolveUser", ctx, caller.ID).Return(caller, nil).Once()

	h := commands.NewAssignSupplierCommandHandler(new(MockOrderUoWFactory), users, NoopPublisher{})
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrForbidden)
}

func TestAssignSupplierCommandHandler_Handle_AssigneeNotSupplier(t *testing.T) {
	ctx := t.Context()
	zoneID := kernel.NewUUID()
	caller := platformUser()
	assignee := platformUser()

	o := newOrderInStatus(t, zoneID, order.Consolidating)
	ids := []kernel.UUID{o.ID()}

	cmd, err := commands.NewAssignSupplierCommand(ids, assignee.ID, caller.ID)
	require.NoError(t, err)

	users := new(MockUserResolver)
	mock.InOrder(
		users.On("ResolveUser", ctx, caller.ID).Return(caller, nil).Once(),
		users.On("ResolveUser", ctx, assignee.ID).Return(assignee, nil).Once(),
	)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetMany", ctx, ids).Return([]*order.Order{o}, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAssignSupplierCommandHandler(factory, users, NoopPublisher{})
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Equal(t, order.Consolidating, o.Status())
}

func TestAssignSupplierCommandHandler_Handle_NotConsolidating(t *testing.T) {
	ctx := t.Context()
	zoneID := kernel.NewUUID()
	caller := platformUser()
	supplier := supplierUser()

	o := newOrderInStatus(t, zoneID, order.Pending)
	ids := []kernel.UUID{o.ID()}

	cmd, err := commands.NewAssignSupplierCommand(ids, supplier.ID, caller.ID)
	require.NoError(t, err)

	users := new(MockUserResolver)
	mock.InOrder(
		users.On("ResolveUser", ctx, caller.ID).Return(caller, nil).Once(),
		users.On("ResolveUser", ctx, supplier.ID).Return(supplier, nil).Once(),
	)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetMany", ctx, ids).Return([]*order.Order{o}, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAssignSupplierCommandHandler(factory, users, NoopPublisher{})
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrInvalidState)
	assert.Nil(t, o.Supplier())
}
