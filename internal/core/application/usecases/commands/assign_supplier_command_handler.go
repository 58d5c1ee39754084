package commands

import (
	"context"

	"ordering/internal/core/domain/model/account"
	"ordering/internal/core/domain/services"
	"ordering/internal/core/ports"
	"ordering/internal/pkg/errs"
)

// AssignSupplierCommandHandler binds a supplier to a batch of
// consolidated orders, moving each to the assigned state.
type AssignSupplierCommandHandler struct {
	uowFactory OrderUoWFactory
	users      ports.UserResolver
	dispatcher services.AssignmentDispatcher
	publisher  ports.OrderEventPublisher
}

// NewAssignSupplierCommandHandler creates a handler for supplier assignment.
func NewAssignSupplierCommandHandler(
	uowFactory OrderUoWFactory,
	users ports.UserResolver,
	publisher ports.OrderEventPublisher,
) AssignSupplierCommandHandler {
	return AssignSupplierCommandHandler{
		uowFactory: uowFactory,
		users:      users,
		dispatcher: services.NewAssignmentDispatcher(),
		publisher:  publisher,
	}
}

// Handle processes the assignment command.
//
// Only platform operators may assign. The target user must carry the
// supplier role and every order in the batch must be Consolidating; the
// batch is written all-or-nothing.
func (h AssignSupplierCommandHandler) Handle(ctx context.Context, cmd AssignSupplierCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	caller, err := h.users.ResolveUser(ctx, cmd.CallerID())
	if err != nil {
		return err
	}
	if caller.Role != account.RolePlatform {
		return errs.NewForbiddenError(caller.ID.String(), "only platform operators can assign suppliers")
	}

	supplier, err := h.users.ResolveUser(ctx, cmd.SupplierID())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	orders, err := orderRepo.GetMany(ctx, cmd.OrderIDs())
	if err != nil {
		return err
	}

	if err = h.dispatcher.Assign(orders, len(cmd.OrderIDs()), supplier); err != nil {
		return err
	}

	for _, assigned := range orders {
		if err = orderRepo.Update(ctx, assigned); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	_ = h.publisher.PublishOrderChanged(ctx, uow.GetTrackedAggregates()...)

	return nil
}
