// Package http exposes the order lifecycle over an echo HTTP API.
// Handlers translate requests into commands and queries, and map application
// errors onto HTTP status codes.
package http

import (
	"net/http"

	"tableside/internal/core/application/usecases/commands"
	"tableside/internal/core/application/usecases/queries"
	"tableside/internal/core/domain/model/kernel"
	"tableside/internal/core/domain/model/order"
	"tableside/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	createOrderHandler       commands.CreateOrderCommandHandler
	updateOrderHandler       commands.UpdateOrderCommandHandler
	cancelOrderHandler       commands.CancelOrderCommandHandler
	cancelOrderItemHandler   commands.CancelOrderItemCommandHandler
	upsertTableOrderHandler  commands.UpsertTableOrderCommandHandler
	setTableOrderPaidHandler commands.SetTableOrderPaidCommandHandler

	getOrderHandler            queries.GetOrderQueryHandler
	getOrdersHandler           queries.GetOrdersQueryHandler
	getLatestTableOrderHandler queries.GetLatestTableOrderQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderHandler commands.UpdateOrderCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	cancelOrderItemHandler commands.CancelOrderItemCommandHandler,
	upsertTableOrderHandler commands.UpsertTableOrderCommandHandler,
	setTableOrderPaidHandler commands.SetTableOrderPaidCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getOrdersHandler queries.GetOrdersQueryHandler,
	getLatestTableOrderHandler queries.GetLatestTableOrderQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:         createOrderHandler,
		updateOrderHandler:         updateOrderHandler,
		cancelOrderHandler:         cancelOrderHandler,
		cancelOrderItemHandler:     cancelOrderItemHandler,
		upsertTableOrderHandler:    upsertTableOrderHandler,
		setTableOrderPaidHandler:   setTableOrderPaidHandler,
		getOrderHandler:            getOrderHandler,
		getOrdersHandler:           getOrdersHandler,
		getLatestTableOrderHandler: getLatestTableOrderHandler,
	}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1/restaurants/:restaurant_id")

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.GetOrders)
	api.GET("/orders/:order_id", s.GetOrder)
	api.PUT("/orders/:order_id", s.UpdateOrder)
	api.POST("/orders/:order_id/cancel", s.CancelOrder)
	api.POST("/order-items/:item_id/cancel", s.CancelOrderItem)
	api.POST("/tables/:table_id/orders", s.UpsertTableOrder)
	api.GET("/tables/:table_id/orders/latest", s.GetLatestTableOrder)
	api.PATCH("/tables/:table_id/orders/latest/paid", s.SetTableOrderPaid)

	e.GET("/health", s.Health)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, Envelope{Message: "ok"})
}

// CreateOrder handles POST /api/v1/restaurants/:restaurant_id/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	restaurantID, err := pathUUID(ctx, "restaurant_id")
	if err != nil {
		return badRequest(ctx, "invalid restaurant id")
	}

	var req CreateOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	tableID, err := kernel.UUIDFromString(req.TableID)
	if err != nil {
		return badRequest(ctx, "invalid table id")
	}

	customerID, err := optionalID(req.CustomerID)
	if err != nil {
		return badRequest(ctx, "invalid customer id")
	}
	employeeID, err := optionalID(req.EmployeeID)
	if err != nil {
		return badRequest(ctx, "invalid employee id")
	}

	lines, err := parseLines(req.Items)
	if err != nil {
		return writeError(ctx, err)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, restaurantID, tableID, customerID, employeeID, lines)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, Envelope{
		Message: "Order created successfully",
		Data:    OrderRefResponse{OrderID: orderID.String()},
	})
}

// GetOrders handles GET /api/v1/restaurants/:restaurant_id/orders.
func (s *Server) GetOrders(ctx echo.Context) error {
	restaurantID, err := pathUUID(ctx, "restaurant_id")
	if err != nil {
		return badRequest(ctx, "invalid restaurant id")
	}

	query, err := queries.NewGetOrdersQuery(restaurantID)
	if err != nil {
		return writeError(ctx, err)
	}

	orders, err := s.getOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]OrderListEntryResponse, 0, len(orders))
	for _, entry := range orders {
		response = append(response, listEntryFromQuery(entry))
	}

	return ctx.JSON(http.StatusOK, Envelope{
		Message: "Orders retrieved successfully",
		Data:    response,
	})
}

// GetOrder handles GET /api/v1/restaurants/:restaurant_id/orders/:order_id.
func (s *Server) GetOrder(ctx echo.Context) error {
	restaurantID, err := pathUUID(ctx, "restaurant_id")
	if err != nil {
		return badRequest(ctx, "invalid restaurant id")
	}
	orderID, err := pathUUID(ctx, "order_id")
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	query, err := queries.NewGetOrderQuery(restaurantID, orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	detail, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, Envelope{
		Message: "Order retrieved successfully",
		Data:    detailFromQuery(detail),
	})
}

// UpdateOrder handles PUT /api/v1/restaurants/:restaurant_id/orders/:order_id.
func (s *Server) UpdateOrder(ctx echo.Context) error {
	restaurantID, err := pathUUID(ctx, "restaurant_id")
	if err != nil {
		return badRequest(ctx, "invalid restaurant id")
	}
	orderID, err := pathUUID(ctx, "order_id")
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	var req UpdateOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	var status *order.Status
	if req.Status != nil {
		parsed, statusErr := order.StatusFromString(*req.Status)
		if statusErr != nil {
			return writeError(ctx, statusErr)
		}
		status = &parsed
	}

	var lines []commands.ItemLine
	if req.Items != nil {
		if lines, err = parseLines(req.Items); err != nil {
			return writeError(ctx, err)
		}
	}

	cmd, err := commands.NewUpdateOrderCommand(orderID, restaurantID, status, req.Paid, lines)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.updateOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, Envelope{
		Message: "Order updated successfully",
		Data:    OrderRefResponse{OrderID: orderID.String()},
	})
}

// CancelOrder handles POST /api/v1/restaurants/:restaurant_id/orders/:order_id/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	restaurantID, err := pathUUID(ctx, "restaurant_id")
	if err != nil {
		return badRequest(ctx, "invalid restaurant id")
	}
	orderID, err := pathUUID(ctx, "order_id")
	if err != nil {
		return badRequest(ctx, "invalid order id")
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, restaurantID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, Envelope{
		Message: "Order canceled successfully",
		Data:    OrderRefResponse{OrderID: orderID.String()},
	})
}

// CancelOrderItem handles POST /api/v1/restaurants/:restaurant_id/order-items/:item_id/cancel.
// Removing the last item cancels the whole order; the message tells the two
// outcomes apart.
func (s *Server) CancelOrderItem(ctx echo.Context) error {
	restaurantID, err := pathUUID(ctx, "restaurant_id")
	if err != nil {
		return badRequest(ctx, "invalid restaurant id")
	}
	itemID, err := pathUUID(ctx, "item_id")
	if err != nil {
		return badRequest(ctx, "invalid order item id")
	}

	cmd, err := commands.NewCancelOrderItemCommand(restaurantID, itemID)
	if err != nil {
		return writeError(ctx, err)
	}

	orderCancelled, err := s.cancelOrderItemHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	message := "Order item canceled successfully"
	if orderCancelled {
		message = "Order item canceled and the entire order was canceled"
	}

	return ctx.JSON(http.StatusOK, Envelope{Message: message})
}

// UpsertTableOrder handles POST /api/v1/restaurants/:restaurant_id/tables/:table_id/orders.
// Extends the table's open order when one exists, otherwise opens a new one.
func (s *Server) UpsertTableOrder(ctx echo.Context) error {
	restaurantID, err := pathUUID(ctx, "restaurant_id")
	if err != nil {
		return badRequest(ctx, "invalid restaurant id")
	}
	tableID, err := pathUUID(ctx, "table_id")
	if err != nil {
		return badRequest(ctx, "invalid table id")
	}

	var req UpsertTableOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	customerID, err := optionalID(req.CustomerID)
	if err != nil {
		return badRequest(ctx, "invalid customer id")
	}
	employeeID, err := optionalID(req.EmployeeID)
	if err != nil {
		return badRequest(ctx, "invalid employee id")
	}

	var status *order.Status
	if req.Status != nil {
		parsed, statusErr := order.StatusFromString(*req.Status)
		if statusErr != nil {
			return writeError(ctx, statusErr)
		}
		status = &parsed
	}

	lines, err := parseLines(req.Items)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewUpsertTableOrderCommand(
		kernel.NewUUID(), restaurantID, tableID, customerID, employeeID, status, req.Paid, lines,
	)
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.upsertTableOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	httpStatus := http.StatusOK
	message := "Order updated successfully"
	if result.Created {
		httpStatus = http.StatusCreated
		message = "Order created successfully"
	}

	return ctx.JSON(httpStatus, Envelope{
		Message: message,
		Data:    OrderRefResponse{OrderID: result.OrderID.String()},
	})
}

// GetLatestTableOrder handles GET /api/v1/restaurants/:restaurant_id/tables/:table_id/orders/latest.
func (s *Server) GetLatestTableOrder(ctx echo.Context) error {
	restaurantID, err := pathUUID(ctx, "restaurant_id")
	if err != nil {
		return badRequest(ctx, "invalid restaurant id")
	}
	tableID, err := pathUUID(ctx, "table_id")
	if err != nil {
		return badRequest(ctx, "invalid table id")
	}

	query, err := queries.NewGetLatestTableOrderQuery(restaurantID, tableID)
	if err != nil {
		return writeError(ctx, err)
	}

	detail, err := s.getLatestTableOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, Envelope{
		Message: "Order retrieved successfully",
		Data:    detailFromQuery(detail),
	})
}

// SetTableOrderPaid handles PATCH /api/v1/restaurants/:restaurant_id/tables/:table_id/orders/latest/paid.
func (s *Server) SetTableOrderPaid(ctx echo.Context) error {
	restaurantID, err := pathUUID(ctx, "restaurant_id")
	if err != nil {
		return badRequest(ctx, "invalid restaurant id")
	}
	tableID, err := pathUUID(ctx, "table_id")
	if err != nil {
		return badRequest(ctx, "invalid table id")
	}

	var req SetPaidRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewSetTableOrderPaidCommand(restaurantID, tableID, req.Paid)
	if err != nil {
		return writeError(ctx, err)
	}

	orderID, err := s.setTableOrderPaidHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, Envelope{
		Message: "Order payment updated successfully",
		Data:    OrderRefResponse{OrderID: orderID.String()},
	})
}

func pathUUID(ctx echo.Context, name string) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param(name))
}

func optionalID(raw string) (*kernel.UUID, error) {
	if raw == "" {
		return nil, nil //nolint:nilnil //absent optional reference
	}
	id, err := kernel.UUIDFromString(raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func parseLines(items []ItemRequest) ([]commands.ItemLine, error) {
	lines := make([]commands.ItemLine, 0, len(items))
	for _, item := range items {
		menuItemID, err := kernel.UUIDFromString(item.MenuItemID)
		if err != nil {
			return nil, errs.NewValueIsInvalidErrorWithCause("menuItemId", err)
		}

		addedBy, err := optionalID(item.AddedBy)
		if err != nil {
			return nil, errs.NewValueIsInvalidErrorWithCause("addedBy", err)
		}

		line, err := commands.NewItemLine(menuItemID, item.Quantity, addedBy)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, nil
}
