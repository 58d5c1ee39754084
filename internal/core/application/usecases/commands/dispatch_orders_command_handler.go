package commands

import (
	"context"

	"ordering/internal/core/domain/model/account"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/services"
	"ordering/internal/core/ports"
	"ordering/internal/pkg/errs"
)

// DispatchOrdersResult reports the outcome of a dispatch batch: how many
// orders actually advanced and which ids were skipped because they were
// not Assigned.
type DispatchOrdersResult struct {
	DispatchedCount int
	SkippedIDs      []kernel.UUID
}

// DispatchOrdersCommandHandler releases assigned orders to their
// suppliers. Unlike consolidation and assignment, dispatch tolerates a
// mixed batch: non-assigned orders are skipped and reported instead of
// failing the whole request.
type DispatchOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
	users      ports.UserResolver
	dispatcher services.AssignmentDispatcher
	publisher  ports.OrderEventPublisher
}

// NewDispatchOrdersCommandHandler creates a handler for order dispatch.
func NewDispatchOrdersCommandHandler(
	uowFactory OrderUoWFactory,
	users ports.UserResolver,
	publisher ports.OrderEventPublisher,
) DispatchOrdersCommandHandler {
	return DispatchOrdersCommandHandler{
		uowFactory: uowFactory,
		users:      users,
		dispatcher: services.NewAssignmentDispatcher(),
		publisher:  publisher,
	}
}

// Handle processes the dispatch command.
//
// Ids that do not resolve to an order are reported as skipped together
// with orders that are not Assigned. Only the advanced orders are
// written and published.
func (h DispatchOrdersCommandHandler) Handle(
	ctx context.Context, cmd DispatchOrdersCommand,
) (DispatchOrdersResult, error) {
	if err := cmd.Validate(); err != nil {
		return DispatchOrdersResult{}, err
	}

	caller, err := h.users.ResolveUser(ctx, cmd.CallerID())
	if err != nil {
		return DispatchOrdersResult{}, err
	}
	if caller.Role != account.RolePlatform {
		return DispatchOrdersResult{}, errs.NewForbiddenError(
			caller.ID.String(), "only platform operators can dispatch orders")
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return DispatchOrdersResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	orders, err := orderRepo.GetMany(ctx, cmd.OrderIDs())
	if err != nil {
		return DispatchOrdersResult{}, err
	}

	updated, skipped, err := h.dispatcher.Dispatch(orders)
	if err != nil {
		return DispatchOrdersResult{}, err
	}

	// Ids that never resolved to an order count as skipped too.
	skipped = append(skipped, missingIDs(cmd.OrderIDs(), orders)...)

	for _, dispatched := range updated {
		if err = orderRepo.Update(ctx, dispatched); err != nil {
			return DispatchOrdersResult{}, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return DispatchOrdersResult{}, err
	}

	if tracked := uow.GetTrackedAggregates(); len(tracked) > 0 {
		_ = h.publisher.PublishOrderChanged(ctx, tracked...)
	}

	return DispatchOrdersResult{
		DispatchedCount: len(updated),
		SkippedIDs:      skipped,
	}, nil
}

func missingIDs(requested []kernel.UUID, resolved []*order.Order) []kernel.UUID {
	if len(resolved) == len(requested) {
		return nil
	}

	found := make(map[kernel.UUID]struct{}, len(resolved))
	for _, o := range resolved {
		found[o.ID()] = struct{}{}
	}

	var missing []kernel.UUID
	for _, id := range requested {
		if _, ok := found[id]; !ok {
			missing = append(missing, id)
		}
	}
	return missing
}
