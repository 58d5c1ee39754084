package commands

import (
	"context"

	"ordering/internal/core/ports"
)

// MarkLineReceivedResult reports the outcome of a line confirmation.
// Completed is true when this confirmation was the last one and the
// order advanced to Received.
type MarkLineReceivedResult struct {
	Completed bool
}

// MarkLineReceivedCommandHandler records a shopkeeper's line-by-line
// receipt confirmations on a delivered order. When the last outstanding
// line is confirmed the aggregate closes the order.
type MarkLineReceivedCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.OrderEventPublisher
}

// NewMarkLineReceivedCommandHandler creates a handler for receipt
// confirmations.
func NewMarkLineReceivedCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.OrderEventPublisher,
) MarkLineReceivedCommandHandler {
	return MarkLineReceivedCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the confirmation command.
//
// The caller must own the order and the order must be Delivered.
// Confirming an already-confirmed line is a no-op that still reports the
// current completion state.
func (h MarkLineReceivedCommandHandler) Handle(
	ctx context.Context, cmd MarkLineReceivedCommand,
) (MarkLineReceivedResult, error) {
	if err := cmd.Validate(); err != nil {
		return MarkLineReceivedResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return MarkLineReceivedResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return MarkLineReceivedResult{}, err
	}

	completed, err := o.MarkLineReceived(cmd.ProductID(), cmd.CallerID())
	if err != nil {
		return MarkLineReceivedResult{}, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return MarkLineReceivedResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return MarkLineReceivedResult{}, err
	}

	_ = h.publisher.PublishOrderChanged(ctx, uow.GetTrackedAggregates()...)

	return MarkLineReceivedResult{Completed: completed}, nil
}
