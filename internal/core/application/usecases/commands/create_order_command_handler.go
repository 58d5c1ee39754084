package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ordering/internal/core/domain/model/account"
	"ordering/internal/core/domain/model/catalog"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/ports"
	"ordering/internal/pkg/errs"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// Resolves the shopkeeper and their zone, enforces the one-active-order
// rule, snapshots current catalog prices into the lines, and persists the
// new Pending order with its 72-hour consolidation deadline.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, users, products, zones, publisher)
//	cmd, _ := NewCreateOrderCommand(shopkeeperID, lines)
//
//	created, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrConflict) {
//	    // shopkeeper already has an active order; the error names it
//	}
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	users      ports.UserResolver
	products   ports.ProductCatalog
	zones      ports.ZoneResolver
	publisher  ports.OrderEventPublisher
}

// NewCreateOrderCommandHandler creates a handler for order creation.
// Requires an OrderUoWFactory for transactional persistence and the
// collaborator resolvers for shopkeeper, product, and zone lookups.
func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	users ports.UserResolver,
	products ports.ProductCatalog,
	zones ports.ZoneResolver,
	publisher ports.OrderEventPublisher,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		users:      users,
		products:   products,
		zones:      zones,
		publisher:  publisher,
	}
}

// Handle processes the order creation command.
//
// Precondition failures map to the error taxonomy: an unknown shopkeeper
// or product is not_found/validation, a shopkeeper without a zone is
// validation, and an existing active order is a conflict carrying the
// blocking order's id and status. The pre-check inside the transaction
// is backed by the store's partial unique index, so two concurrent
// creations by the same shopkeeper cannot both commit.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	shopkeeper, err := h.users.ResolveUser(ctx, cmd.ShopkeeperID())
	if err != nil {
		return nil, err
	}
	if shopkeeper.Role != account.RoleShopkeeper {
		return nil, errs.NewForbiddenError(shopkeeper.ID.String(), "only shopkeepers can create orders")
	}
	if shopkeeper.ZoneID == nil {
		return nil, errs.NewValueIsRequiredErrorWithCause("zoneId",
			fmt.Errorf("shopkeeper %s has no assigned zone", shopkeeper.ID.String()))
	}
	if _, err = h.zones.ResolveZone(ctx, *shopkeeper.ZoneID); err != nil {
		return nil, err
	}

	lines, err := h.snapshotLines(ctx, cmd.Lines())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	active, err := orderRepo.GetActiveByShopkeeper(ctx, shopkeeper.ID)
	if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, err
	}
	if active != nil {
		return nil, errs.NewConflictError("shopkeeperId", active.ID().String(),
			fmt.Sprintf("shopkeeper already has an active order in status %s", active.Status().String()))
	}

	newOrder, err := order.NewOrder(kernel.NewUUID(), shopkeeper.ID, *shopkeeper.ZoneID, lines, time.Now())
	if err != nil {
		return nil, err
	}

	if err = orderRepo.Add(ctx, newOrder); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	// Best-effort: the adapter logs its own failures.
	_ = h.publisher.PublishOrderChanged(ctx, uow.GetTrackedAggregates()...)

	return newOrder, nil
}

// snapshotLines resolves the requested products and freezes their current
// base price into order lines. A count mismatch means some product id did
// not resolve to an active product.
func (h CreateOrderCommandHandler) snapshotLines(ctx context.Context, requests []LineRequest) ([]order.Line, error) {
	ids := make([]kernel.UUID, len(requests))
	for i, request := range requests {
		ids[i] = request.ProductID
	}

	products, err := h.products.ResolveProductsByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	if len(products) != len(requests) {
		return nil, errs.NewValueIsInvalidErrorWithCause("productIds",
			fmt.Errorf("only %d of %d products are available", len(products), len(requests)))
	}

	byID := make(map[kernel.UUID]catalog.Product, len(products))
	for _, product := range products {
		byID[product.ID] = product
	}

	lines := make([]order.Line, 0, len(requests))
	for _, request := range requests {
		product, ok := byID[request.ProductID]
		if !ok {
			return nil, errs.NewValueIsInvalidErrorWithCause("productIds",
				fmt.Errorf("product %s is not available", request.ProductID.String()))
		}

		line, lineErr := order.NewLine(product.ID, request.Quantity, product.BasePrice)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	return lines, nil
}
