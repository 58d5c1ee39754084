package commands

import (
	"context"

	"ordering/internal/core/ports"
)

// UpdateOrderStatusCommandHandler advances a single order through the
// supplier-driven fulfillment statuses. Ownership and adjacency checks
// live on the aggregate; the handler only loads, delegates, and saves.
type UpdateOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.OrderEventPublisher
}

// NewUpdateOrderStatusCommandHandler creates a handler for supplier
// status updates.
func NewUpdateOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.OrderEventPublisher,
) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the status update command.
//
// The caller must be the supplier assigned to the order, the target must
// be one of the fulfillment statuses, and the move must be one step
// forward. Anything else is rejected without changing the order.
func (h UpdateOrderStatusCommandHandler) Handle(ctx context.Context, cmd UpdateOrderStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = o.UpdateStatusBySupplier(cmd.Target(), cmd.CallerID()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	_ = h.publisher.PublishOrderChanged(ctx, uow.GetTrackedAggregates()...)

	return nil
}
