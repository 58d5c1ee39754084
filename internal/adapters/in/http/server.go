// Package http exposes the ordering workflow over a JSON REST API.
// The caller's identity arrives in the X-User-Id header; role and
// ownership checks happen in the application and domain layers, so the
// handlers here only translate between HTTP and commands/queries.
package http

import (
	"errors"
	"net/http"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const callerHeader = "X-User-Id"

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler      commands.CreateOrderCommandHandler
	consolidateHandler      commands.ConsolidateOrdersCommandHandler
	assignSupplierHandler   commands.AssignSupplierCommandHandler
	dispatchHandler         commands.DispatchOrdersCommandHandler
	updateStatusHandler     commands.UpdateOrderStatusCommandHandler
	markLineReceivedHandler commands.MarkLineReceivedCommandHandler

	// Query handlers
	getShopkeeperOrdersHandler queries.GetShopkeeperOrdersQueryHandler
	getAllOrdersHandler        queries.GetAllOrdersQueryHandler
	getSupplierOrdersHandler   queries.GetSupplierOrdersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	consolidateHandler commands.ConsolidateOrdersCommandHandler,
	assignSupplierHandler commands.AssignSupplierCommandHandler,
	dispatchHandler commands.DispatchOrdersCommandHandler,
	updateStatusHandler commands.UpdateOrderStatusCommandHandler,
	markLineReceivedHandler commands.MarkLineReceivedCommandHandler,
	getShopkeeperOrdersHandler queries.GetShopkeeperOrdersQueryHandler,
	getAllOrdersHandler queries.GetAllOrdersQueryHandler,
	getSupplierOrdersHandler queries.GetSupplierOrdersQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:         createOrderHandler,
		consolidateHandler:         consolidateHandler,
		assignSupplierHandler:      assignSupplierHandler,
		dispatchHandler:            dispatchHandler,
		updateStatusHandler:        updateStatusHandler,
		markLineReceivedHandler:    markLineReceivedHandler,
		getShopkeeperOrdersHandler: getShopkeeperOrdersHandler,
		getAllOrdersHandler:        getAllOrdersHandler,
		getSupplierOrdersHandler:   getSupplierOrdersHandler,
	}
}

// RegisterRoutes binds all API endpoints to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.GetOrders)
	api.POST("/orders/consolidate", s.ConsolidateOrders)
	api.POST("/orders/assign", s.AssignSupplier)
	api.POST("/orders/dispatch", s.DispatchOrders)
	api.PATCH("/orders/:orderId/status", s.UpdateOrderStatus)
	api.POST("/orders/:orderId/lines/:productId/receive", s.ReceiveLine)
	api.GET("/shopkeepers/:shopkeeperId/orders", s.GetShopkeeperOrders)
	api.GET("/suppliers/:supplierId/orders", s.GetSupplierOrders)
}

// CreateOrder handles POST /api/v1/orders - a shopkeeper places an order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	callerID, err := callerFromHeader(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var body NewOrder
	if err = ctx.Bind(&body); err != nil {
		return badRequestBody(ctx)
	}

	lines := make([]commands.LineRequest, 0, len(body.Lines))
	for _, line := range body.Lines {
		productID, lineErr := kernel.UUIDFromBytes(line.ProductID[:])
		if lineErr != nil {
			return writeError(ctx, lineErr)
		}
		lines = append(lines, commands.LineRequest{ProductID: productID, Quantity: line.Quantity})
	}

	cmd, err := commands.NewCreateOrderCommand(callerID, lines)
	if err != nil {
		return writeError(ctx, err)
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, orderFromAggregate(created))
}

// GetOrders handles GET /api/v1/orders - the platform overview with
// optional zone and status filters.
func (s *Server) GetOrders(ctx echo.Context) error {
	var zoneID *kernel.UUID
	if raw := ctx.QueryParam("zoneId"); raw != "" {
		id, err := kernel.UUIDFromString(raw)
		if err != nil {
			return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("zoneId", err))
		}
		zoneID = &id
	}

	var status *order.Status
	if raw := ctx.QueryParam("status"); raw != "" {
		parsed, err := order.StatusFromString(raw)
		if err != nil {
			return writeError(ctx, err)
		}
		status = &parsed
	}

	query, err := queries.NewGetAllOrdersQuery(zoneID, status)
	if err != nil {
		return writeError(ctx, err)
	}

	overview, err := s.getAllOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := OrdersOverview{
		Orders:      make([]Order, 0, len(overview.Orders)),
		StatusTally: overview.StatusTally,
		ZoneTally:   make(map[string]int, len(overview.ZoneTally)),
	}
	for _, summary := range overview.Orders {
		response.Orders = append(response.Orders, orderFromSummary(summary))
	}
	for zone, count := range overview.ZoneTally {
		response.ZoneTally[zone.String()] = count
	}

	return ctx.JSON(http.StatusOK, response)
}

// ConsolidateOrders handles POST /api/v1/orders/consolidate - the
// platform batches same-zone pending orders.
func (s *Server) ConsolidateOrders(ctx echo.Context) error {
	callerID, err := callerFromHeader(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var body ConsolidateRequest
	if err = ctx.Bind(&body); err != nil {
		return badRequestBody(ctx)
	}

	orderIDs, err := uuidsFromRaw(body.OrderIDs)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewConsolidateOrdersCommand(orderIDs, callerID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.consolidateHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AssignSupplier handles POST /api/v1/orders/assign - the platform binds
// a supplier to a consolidated batch.
func (s *Server) AssignSupplier(ctx echo.Context) error {
	callerID, err := callerFromHeader(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var body AssignRequest
	if err = ctx.Bind(&body); err != nil {
		return badRequestBody(ctx)
	}

	orderIDs, err := uuidsFromRaw(body.OrderIDs)
	if err != nil {
		return writeError(ctx, err)
	}

	supplierID, err := kernel.UUIDFromBytes(body.SupplierID[:])
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewAssignSupplierCommand(orderIDs, supplierID, callerID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.assignSupplierHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DispatchOrders handles POST /api/v1/orders/dispatch - the platform
// releases assigned orders to their suppliers.
func (s *Server) DispatchOrders(ctx echo.Context) error {
	callerID, err := callerFromHeader(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var body DispatchRequest
	if err = ctx.Bind(&body); err != nil {
		return badRequestBody(ctx)
	}

	orderIDs, err := uuidsFromRaw(body.OrderIDs)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewDispatchOrdersCommand(orderIDs, callerID)
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.dispatchHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	response := DispatchResponse{
		DispatchedCount: result.DispatchedCount,
		SkippedIDs:      make([]uuid.UUID, 0, len(result.SkippedIDs)),
	}
	for _, id := range result.SkippedIDs {
		response.SkippedIDs = append(response.SkippedIDs, id.Bytes())
	}

	return ctx.JSON(http.StatusOK, response)
}

// UpdateOrderStatus handles PATCH /api/v1/orders/:orderId/status - the
// assigned supplier advances fulfillment one step.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	callerID, err := callerFromHeader(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	orderID, err := uuidFromParam(ctx, "orderId")
	if err != nil {
		return writeError(ctx, err)
	}

	var body UpdateStatusRequest
	if err = ctx.Bind(&body); err != nil {
		return badRequestBody(ctx)
	}

	target, err := order.StatusFromString(body.Status)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, target, callerID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.updateStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ReceiveLine handles POST /api/v1/orders/:orderId/lines/:productId/receive -
// the shopkeeper confirms one delivered product line.
func (s *Server) ReceiveLine(ctx echo.Context) error {
	callerID, err := callerFromHeader(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	orderID, err := uuidFromParam(ctx, "orderId")
	if err != nil {
		return writeError(ctx, err)
	}

	productID, err := uuidFromParam(ctx, "productId")
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewMarkLineReceivedCommand(orderID, productID, callerID)
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.markLineReceivedHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ReceiveLineResponse{
		Completed:         result.Completed,
		CanCreateNewOrder: result.Completed,
	})
}

// GetShopkeeperOrders handles GET /api/v1/shopkeepers/:shopkeeperId/orders.
func (s *Server) GetShopkeeperOrders(ctx echo.Context) error {
	shopkeeperID, err := uuidFromParam(ctx, "shopkeeperId")
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetShopkeeperOrdersQuery(shopkeeperID)
	if err != nil {
		return writeError(ctx, err)
	}

	orders, err := s.getShopkeeperOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]Order, 0, len(orders))
	for _, o := range orders {
		response = append(response, orderFromShopkeeperResponse(o))
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetSupplierOrders handles GET /api/v1/suppliers/:supplierId/orders
// with optional zone and status filters.
func (s *Server) GetSupplierOrders(ctx echo.Context) error {
	supplierID, err := uuidFromParam(ctx, "supplierId")
	if err != nil {
		return writeError(ctx, err)
	}

	var zoneID *kernel.UUID
	if raw := ctx.QueryParam("zoneId"); raw != "" {
		id, zoneErr := kernel.UUIDFromString(raw)
		if zoneErr != nil {
			return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("zoneId", zoneErr))
		}
		zoneID = &id
	}

	var status *order.Status
	if raw := ctx.QueryParam("status"); raw != "" {
		parsed, statusErr := order.StatusFromString(raw)
		if statusErr != nil {
			return writeError(ctx, statusErr)
		}
		status = &parsed
	}

	query, err := queries.NewGetSupplierOrdersQuery(supplierID, zoneID, status)
	if err != nil {
		return writeError(ctx, err)
	}

	orders, err := s.getSupplierOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]Order, 0, len(orders))
	for _, o := range orders {
		response = append(response, orderFromSupplierResponse(o))
	}

	return ctx.JSON(http.StatusOK, response)
}

func callerFromHeader(ctx echo.Context) (kernel.UUID, error) {
	raw := ctx.Request().Header.Get(callerHeader)
	if raw == "" {
		return kernel.UUID{}, errs.NewValueIsRequiredError(callerHeader)
	}
	id, err := kernel.UUIDFromString(raw)
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(callerHeader, err)
	}
	return id, nil
}

func uuidFromParam(ctx echo.Context, name string) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(ctx.Param(name))
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return id, nil
}

func uuidsFromRaw(raw []uuid.UUID) ([]kernel.UUID, error) {
	ids := make([]kernel.UUID, 0, len(raw))
	for _, r := range raw {
		id, err := kernel.UUIDFromBytes(r[:])
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func badRequestBody(ctx echo.Context) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: "Invalid request body",
	})
}

// writeError maps the error taxonomy onto HTTP status codes.
func writeError(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrForbidden):
		code = http.StatusForbidden
	case errors.Is(err, errs.ErrConflict):
		code = http.StatusConflict
	case errors.Is(err, errs.ErrInvalidState):
		code = http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired):
		code = http.StatusBadRequest
	case errors.Is(err, errs.ErrTransient):
		code = http.StatusServiceUnavailable
	}

	return ctx.JSON(code, Error{Code: code, Message: err.Error()})
}
