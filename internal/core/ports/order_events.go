package ports

import (
	"context"

	"ordering/internal/core/domain/model/order"
)

// OrderEventPublisher broadcasts committed order status changes to
// interested consumers. Publishing happens after the unit of work
// commits and is best-effort: handlers log publish failures instead of
// failing the already-committed request.
type OrderEventPublisher interface {
	// PublishOrderChanged emits one event per order carrying its id, new
	// status, zone, and supplier assignment.
	PublishOrderChanged(ctx context.Context, orders ...*order.Order) error
}
