package commands

import (
	"context"

	"ordering/internal/core/domain/model/account"
	"ordering/internal/core/domain/services"
	"ordering/internal/core/ports"
	"ordering/internal/pkg/errs"
)

// ConsolidateOrdersCommandHandler moves a batch of pending same-zone
// orders into the consolidating state. The batch is validated and applied
// inside one transaction: either every order advances or none does.
type ConsolidateOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
	users      ports.UserResolver
	planner    services.ConsolidationPlanner
	publisher  ports.OrderEventPublisher
}

// NewConsolidateOrdersCommandHandler creates a handler for batch consolidation.
func NewConsolidateOrdersCommandHandler(
	uowFactory OrderUoWFactory,
	users ports.UserResolver,
	publisher ports.OrderEventPublisher,
) ConsolidateOrdersCommandHandler {
	return ConsolidateOrdersCommandHandler{
		uowFactory: uowFactory,
		users:      users,
		planner:    services.NewConsolidationPlanner(),
		publisher:  publisher,
	}
}

// Handle processes the consolidation command.
//
// Only platform operators may consolidate. Every requested order must
// exist, all must share one zone, and all must be pending; the first
// violation aborts the batch before anything is written.
func (h ConsolidateOrdersCommandHandler) Handle(ctx context.Context, cmd ConsolidateOrdersCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	caller, err := h.users.ResolveUser(ctx, cmd.CallerID())
	if err != nil {
		return err
	}
	if caller.Role != account.RolePlatform {
		return errs.NewForbiddenError(caller.ID.String(), "only platform operators can consolidate orders")
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

	if err = h.planner.Consolidate(orders, len(cmd.OrderIDs())); err != nil {
		return err
	}

	for _, consolidated := range orders {
		if err = orderRepo.Update(ctx, consolidated); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	_ = h.publisher.PublishOrderChanged(ctx, uow.GetTrackedAggregates()...)

	return nil
}
