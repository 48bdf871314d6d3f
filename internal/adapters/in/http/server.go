// Package http exposes the procurement use cases over a JSON REST API.
// Every endpoint answers with the same envelope and maps domain errors to
// HTTP status codes in one place.
package http

import (
	"net/http"
	"time"

	"procurement/internal/core/application/usecases/commands"
	"procurement/internal/core/application/usecases/queries"
	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/core/domain/model/order"
	"procurement/internal/core/domain/model/supplier"
	"procurement/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createSupplierHandler    commands.CreateSupplierCommandHandler
	updateSupplierHandler    commands.UpdateSupplierCommandHandler
	removeSupplierHandler    commands.RemoveSupplierCommandHandler
	createOrderHandler       commands.CreateOrderCommandHandler
	updateOrderHandler       commands.UpdateOrderCommandHandler
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler
	deleteOrderHandler       commands.DeleteOrderCommandHandler
	addOrderLineHandler      commands.AddOrderLineCommandHandler
	updateOrderLineHandler   commands.UpdateOrderLineCommandHandler
	removeOrderLineHandler   commands.RemoveOrderLineCommandHandler

	// Query handlers
	getAllSuppliersHandler queries.GetAllSuppliersQueryHandler
	getSupplierHandler     queries.GetSupplierQueryHandler
	getAllOrdersHandler    queries.GetAllOrdersQueryHandler
	getOrderHandler        queries.GetOrderQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createSupplierHandler commands.CreateSupplierCommandHandler,
	updateSupplierHandler commands.UpdateSupplierCommandHandler,
	removeSupplierHandler commands.RemoveSupplierCommandHandler,
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderHandler commands.UpdateOrderCommandHandler,
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler,
	deleteOrderHandler commands.DeleteOrderCommandHandler,
	addOrderLineHandler commands.AddOrderLineCommandHandler,
	updateOrderLineHandler commands.UpdateOrderLineCommandHandler,
	removeOrderLineHandler commands.RemoveOrderLineCommandHandler,
	getAllSuppliersHandler queries.GetAllSuppliersQueryHandler,
	getSupplierHandler queries.GetSupplierQueryHandler,
	getAllOrdersHandler queries.GetAllOrdersQueryHandler,
	getOrderHandler queries.GetOrderQueryHandler,
) *Server {
	return &Server{
		createSupplierHandler:    createSupplierHandler,
		updateSupplierHandler:    updateSupplierHandler,
		removeSupplierHandler:    removeSupplierHandler,
		createOrderHandler:       createOrderHandler,
		updateOrderHandler:       updateOrderHandler,
		changeOrderStatusHandler: changeOrderStatusHandler,
		deleteOrderHandler:       deleteOrderHandler,
		addOrderLineHandler:      addOrderLineHandler,
		updateOrderLineHandler:   updateOrderLineHandler,
		removeOrderLineHandler:   removeOrderLineHandler,
		getAllSuppliersHandler:   getAllSuppliersHandler,
		getSupplierHandler:       getSupplierHandler,
		getAllOrdersHandler:      getAllOrdersHandler,
		getOrderHandler:          getOrderHandler,
	}
}

// RegisterRoutes binds every endpoint under /api/v1 plus the health check.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	v1 := e.Group("/api/v1")

	v1.POST("/suppliers", s.CreateSupplier)
	v1.GET("/suppliers", s.GetSuppliers)
	v1.GET("/suppliers/:id", s.GetSupplier)
	v1.PUT("/suppliers/:id", s.UpdateSupplier)
	v1.DELETE("/suppliers/:id", s.DeleteSupplier)

	v1.POST("/orders", s.CreateOrder)
	v1.GET("/orders", s.GetOrders)
	v1.GET("/orders/:id", s.GetOrder)
	v1.PUT("/orders/:id", s.UpdateOrder)
	v1.DELETE("/orders/:id", s.DeleteOrder)
	v1.PUT("/orders/:id/status", s.ChangeOrderStatus)

	v1.POST("/orders/:id/lines", s.AddOrderLine)
	v1.PUT("/lines/:id", s.UpdateOrderLine)
	v1.DELETE("/lines/:id", s.DeleteOrderLine)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, Response{Success: true, Message: "Healthy"})
}

// CreateSupplier handles POST /api/v1/suppliers - registers a new supplier.
func (s *Server) CreateSupplier(ctx echo.Context) error {
	var req SupplierRequest
	if err := ctx.Bind(&req); err != nil {
		return respondError(ctx, http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewCreateSupplierCommand(
		kernel.NewUUID(), req.Name, req.TaxID, contactFromRequest(req),
	)
	if err != nil {
		return respondDomainError(ctx, err)
	}

	if err = s.createSupplierHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, Response{
		Success: true,
		Data:    map[string]any{"id": cmd.SupplierID().Bytes()},
	})
}

// GetSuppliers handles GET /api/v1/suppliers - lists suppliers.
// ?active=true restricts the listing to active suppliers.
func (s *Server) GetSuppliers(ctx echo.Context) error {
	query := queries.NewGetAllSuppliersQuery(ctx.QueryParam("active") == "true")

	suppliers, err := s.getAllSuppliersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondDomainError(ctx, err)
	}

	response := make([]SupplierResponse, len(suppliers))
	for i, item := range suppliers {
		response[i] = supplierResponseFromReadModel(item)
	}

	return ctx.JSON(http.StatusOK, Response{Success: true, Data: response})
}

// GetSupplier handles GET /api/v1/suppliers/:id - retrieves one supplier.
func (s *Server) GetSupplier(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, http.StatusBadRequest, "Invalid supplier id")
	}

	query, err := queries.NewGetSupplierQuery(id)
	if err != nil {
		return respondDomainError(ctx, err)
	}

	item, err := s.getSupplierHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, Response{Success: true, Data: supplierResponseFromReadModel(item)})
}

// UpdateSupplier handles PUT /api/v1/suppliers/:id - full replacement of
// supplier master data.
func (s *Server) UpdateSupplier(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, http.StatusBadRequest, "Invalid supplier id")
	}

	var req SupplierRequest
	if err = ctx.Bind(&req); err != nil {
		return respondError(ctx, http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewUpdateSupplierCommand(id, req.Name, req.TaxID, contactFromRequest(req))
	if err != nil {
		return respondDomainError(ctx, err)
	}

	if err = s.updateSupplierHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, Response{Success: true, Message: "Supplier updated"})
}

// DeleteSupplier handles DELETE /api/v1/suppliers/:id - deactivates the
// supplier, or removes it permanently with ?hard=true.
func (s *Server) DeleteSupplier(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, http.StatusBadRequest, "Invalid supplier id")
	}

	cmd, err := commands.NewRemoveSupplierCommand(id, ctx.QueryParam("hard") == "true")
	if err != nil {
		return respondDomainError(ctx, err)
	}

	if err = s.removeSupplierHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, Response{Success: true, Message: "Supplier removed"})
}

// CreateOrder handles POST /api/v1/orders - creates a purchase order with
// its initial lines. Line amounts are computed server-side.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return respondError(ctx, http.StatusBadRequest, "Invalid request body")
	}

	if req.Order.SupplierID == "" {
		return respondDomainError(ctx, errs.NewValueIsRequiredError("supplier_id"))
	}
	supplierID, err := kernel.UUIDFromString(req.Order.SupplierID)
	if err != nil {
		return respondDomainError(ctx, errs.NewValueIsInvalidErrorWithCause("supplier_id", err))
	}

	if req.Order.OrderDate == "" {
		return respondDomainError(ctx, errs.NewValueIsRequiredError("order_date"))
	}
	orderDate, err := parseDate(req.Order.OrderDate)
	if err != nil {
		return respondDomainError(ctx, errs.NewValueIsInvalidErrorWithCause("order_date", err))
	}

	expectedDelivery, err := parseOptionalDate(req.Order.ExpectedDelivery)
	if err != nil {
		return respondDomainError(ctx, errs.NewValueIsInvalidErrorWithCause("expected_delivery", err))
	}

	currency := kernel.DefaultCurrency
	if req.Order.Currency != "" {
		if currency, err = kernel.CurrencyFromString(req.Order.Currency); err != nil {
			return respondDomainError(ctx, err)
		}
	}

	lines := make([]commands.LineSpec, len(req.Lines))
	for i, line := range req.Lines {
		lines[i] = lineSpecFromRequest(line)
	}

	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), supplierID, req.Order.OrderNumber, orderDate,
		expectedDelivery, currency, req.Order.PaymentTerms, req.Order.Notes,
		req.Order.CreatedBy, lines,
	)
	if err != nil {
		return respondDomainError(ctx, err)
	}

	if err = s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, Response{
		Success: true,
		Data:    map[string]any{"id": cmd.OrderID().Bytes()},
	})
}

// GetOrders handles GET /api/v1/orders - lists purchase order headers.
func (s *Server) GetOrders(ctx echo.Context) error {
	query := queries.NewGetAllOrdersQuery()

	orders, err := s.getAllOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondDomainError(ctx, err)
	}

	response := make([]OrderResponse, len(orders))
	for i, item := range orders {
		response[i] = orderResponseFromReadModel(item)
	}

	return ctx.JSON(http.StatusOK, Response{Success: true, Data: response})
}

// GetOrder handles GET /api/v1/orders/:id - retrieves one order with lines.
func (s *Server) GetOrder(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, http.StatusBadRequest, "Invalid order id")
	}

	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return respondDomainError(ctx, err)
	}

	item, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondDomainError(ctx, err)
	}

	response := OrderWithLinesResponse{
		OrderResponse: orderResponseFromReadModel(item.OrderResponse),
		Lines:         make([]OrderLineResponse, len(item.Lines)),
	}
	for i, line := range item.Lines {
		response.Lines[i] = orderLineResponseFromReadModel(line)
	}

	return ctx.JSON(http.StatusOK, Response{Success: true, Data: response})
}

// UpdateOrder handles PUT /api/v1/orders/:id - edits expected delivery and notes.
func (s *Server) UpdateOrder(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, http.StatusBadRequest, "Invalid order id")
	}

	var req UpdateOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return respondError(ctx, http.StatusBadRequest, "Invalid request body")
	}

	expectedDelivery, err := parseOptionalDate(req.ExpectedDelivery)
	if err != nil {
		return respondDomainError(ctx, errs.NewValueIsInvalidErrorWithCause("expected_delivery", err))
	}

	cmd, err := commands.NewUpdateOrderCommand(id, expectedDelivery, req.Notes)
	if err != nil {
		return respondDomainError(ctx, err)
	}

	if err = s.updateOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, Response{Success: true, Message: "Order updated"})
}

// ChangeOrderStatus handles PUT /api/v1/orders/:id/status - drives the order
// through its lifecycle. Both the external vocabulary and the persisted
// labels are accepted.
func (s *Server) ChangeOrderStatus(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, http.StatusBadRequest, "Invalid order id")
	}

	var req ChangeStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return respondError(ctx, http.StatusBadRequest, "Invalid request body")
	}

	target, err := order.ParseStatus(req.Status)
	if err != nil {
		return respondDomainError(ctx, err)
	}

	cmd, err := commands.NewChangeOrderStatusCommand(id, target)
	if err != nil {
		return respondDomainError(ctx, err)
	}

	if err = s.changeOrderStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, Response{Success: true, Message: "Order status updated"})
}

// DeleteOrder handles DELETE /api/v1/orders/:id - removes the order and its lines.
func (s *Server) DeleteOrder(ctx echo.Context) error {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, http.StatusBadRequest, "Invalid order id")
	}

	cmd, err := commands.NewDeleteOrderCommand(id)
	if err != nil {
		return respondDomainError(ctx, err)
	}

	if err = s.deleteOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, Response{Success: true, Message: "Order deleted"})
}

// AddOrderLine handles POST /api/v1/orders/:id/lines - appends a line to an
// order and recomputes its totals.
func (s *Server) AddOrderLine(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, http.StatusBadRequest, "Invalid order id")
	}

	var req OrderLineRequest
	if err = ctx.Bind(&req); err != nil {
		return respondError(ctx, http.StatusBadRequest, "Invalid request body")
	}

	lineID := kernel.NewUUID()
	cmd, err := commands.NewAddOrderLineCommand(orderID, lineID, lineSpecFromRequest(req))
	if err != nil {
		return respondDomainError(ctx, err)
	}

	if err = s.addOrderLineHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, Response{
		Success: true,
		Data:    map[string]any{"id": lineID.Bytes()},
	})
}

// UpdateOrderLine handles PUT /api/v1/lines/:id - edits a line's terms and
// recomputes the owning order's totals.
func (s *Server) UpdateOrderLine(ctx echo.Context) error {
	lineID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, http.StatusBadRequest, "Invalid line id")
	}

	var req UpdateLineRequest
	if err = ctx.Bind(&req); err != nil {
		return respondError(ctx, http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewUpdateOrderLineCommand(lineID, req.Quantity, req.UnitPrice, req.DiscountPct)
	if err != nil {
		return respondDomainError(ctx, err)
	}

	if err = s.updateOrderLineHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, Response{Success: true, Message: "Order line updated"})
}

// DeleteOrderLine handles DELETE /api/v1/lines/:id - removes a line and
// recomputes the owning order's totals.
func (s *Server) DeleteOrderLine(ctx echo.Context) error {
	lineID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, http.StatusBadRequest, "Invalid line id")
	}

	cmd, err := commands.NewRemoveOrderLineCommand(lineID)
	if err != nil {
		return respondDomainError(ctx, err)
	}

	if err = s.removeOrderLineHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, Response{Success: true, Message: "Order line deleted"})
}

func contactFromRequest(req SupplierRequest) supplier.ContactData {
	return supplier.ContactData{
		ContactName: req.ContactName,
		Phone:       req.Phone,
		Email:       req.Email,
		Address:     req.Address,
		City:        req.City,
		Country:     req.Country,
	}
}

func lineSpecFromRequest(req OrderLineRequest) commands.LineSpec {
	return commands.LineSpec{
		LineNumber:  req.LineNumber,
		ProductID:   req.ProductID,
		Description: req.Description,
		Quantity:    req.Quantity,
		UnitPrice:   req.UnitPrice,
		DiscountPct: req.DiscountPct,
	}
}

func parseOptionalDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	parsed, err := parseDate(value)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

func respondError(ctx echo.Context, status int, message string) error {
	return ctx.JSON(status, Response{Success: false, Error: message})
}

func respondDomainError(ctx echo.Context, err error) error {
	return respondError(ctx, statusFromError(err), err.Error())
}
