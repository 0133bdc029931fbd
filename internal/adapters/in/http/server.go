// Package http implements the inbound REST adapter. It binds requests into
// commands and queries, gates mutating routes behind the capability policy,
// and maps application errors onto HTTP status codes.
package http

import (
	"net/http"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/services"
	"restaurant/internal/pkg/auth"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler           commands.CreateOrderCommandHandler
	transitionOrderStatusHandler commands.TransitionOrderStatusCommandHandler
	createCustomerHandler        commands.CreateCustomerCommandHandler
	deleteCustomerHandler        commands.DeleteCustomerCommandHandler
	createProductHandler         commands.CreateProductCommandHandler
	setAvailabilityHandler       commands.SetProductAvailabilityCommandHandler

	// Query handlers
	getOrderHandler              queries.GetOrderQueryHandler
	listOrdersHandler            queries.ListOrdersQueryHandler
	listAvailableProductsHandler queries.ListAvailableProductsQueryHandler

	policy *auth.Policy
}

// NewServer creates an HTTP server with the required command and query
// handlers and the capability policy for mutating routes.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	transitionOrderStatusHandler commands.TransitionOrderStatusCommandHandler,
	createCustomerHandler commands.CreateCustomerCommandHandler,
	deleteCustomerHandler commands.DeleteCustomerCommandHandler,
	createProductHandler commands.CreateProductCommandHandler,
	setAvailabilityHandler commands.SetProductAvailabilityCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	listOrdersHandler queries.ListOrdersQueryHandler,
	listAvailableProductsHandler queries.ListAvailableProductsQueryHandler,
	policy *auth.Policy,
) *Server {
	return &Server{
		createOrderHandler:           createOrderHandler,
		transitionOrderStatusHandler: transitionOrderStatusHandler,
		createCustomerHandler:        createCustomerHandler,
		deleteCustomerHandler:        deleteCustomerHandler,
		createProductHandler:         createProductHandler,
		setAvailabilityHandler:       setAvailabilityHandler,
		getOrderHandler:              getOrderHandler,
		listOrdersHandler:            listOrdersHandler,
		listAvailableProductsHandler: listAvailableProductsHandler,
		policy:                       policy,
	}
}

// RegisterRoutes mounts all API routes on the Echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder, requireAction(s.policy, auth.ActionCreateOrder))
	api.GET("/orders", s.ListOrders)
	api.GET("/orders/:id", s.GetOrder)
	api.PUT("/orders/:id/status", s.TransitionOrderStatus, requireAction(s.policy, auth.ActionTransitionOrderStatus))

	api.POST("/customers", s.CreateCustomer, requireAction(s.policy, auth.ActionManageCustomers))
	api.DELETE("/customers/:id", s.DeleteCustomer, requireAction(s.policy, auth.ActionManageCustomers))

	api.POST("/products", s.CreateProduct, requireAction(s.policy, auth.ActionManageProducts))
	api.PUT("/products/:id/availability", s.SetProductAvailability, requireAction(s.policy, auth.ActionManageProducts))
	api.GET("/products", s.ListAvailableProducts)
}

// CreateOrder handles POST /api/v1/orders.
//
//	@Summary		Create an order
//	@Description	Creates an order for an existing customer from available products. Prices are captured from the catalog; the total is derived server-side.
//	@Tags			orders
//	@Accept			json
//	@Produce		json
//	@Param			order	body		CreateOrderRequest	true	"Order to create"
//	@Success		201		{object}	OrderResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		409		{object}	ErrorResponse
//	@Router			/orders [post]
func (s *Server) CreateOrder(ctx echo.Context) error {
	var request CreateOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}

	customerID, err := kernel.UUIDFromString(request.CustomerID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid customer id: " + err.Error(),
		})
	}

	lines := make([]services.LineRequest, 0, len(request.Items))
	for _, item := range request.Items {
		productID, idErr := kernel.UUIDFromString(item.ProductID)
		if idErr != nil {
			return ctx.JSON(http.StatusBadRequest, ErrorResponse{
				Code:    http.StatusBadRequest,
				Message: "invalid product id: " + idErr.Error(),
			})
		}
		lines = append(lines, services.LineRequest{ProductID: productID, Quantity: item.Quantity})
	}

	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), customerID, lines, request.Notes)
	if err != nil {
		return respondError(ctx, err)
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, orderToResponse(created))
}

// TransitionOrderStatus handles PUT /api/v1/orders/:id/status.
//
//	@Summary		Advance an order's status
//	@Description	Advances the order exactly one step along New, Preparing, Ready, Delivered. Skips, repeats and backward moves are rejected.
//	@Tags			orders
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"Order ID"
//	@Param			status	body		TransitionStatusRequest	true	"Requested status"
//	@Success		200		{object}	OrderResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Failure		409		{object}	ErrorResponse
//	@Router			/orders/{id}/status [put]
func (s *Server) TransitionOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid order id: " + err.Error(),
		})
	}

	var request TransitionStatusRequest
	if err = ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}

	cmd, err := commands.NewTransitionOrderStatusCommand(orderID, request.Status)
	if err != nil {
		return respondError(ctx, err)
	}

	updated, err := s.transitionOrderStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderToResponse(updated))
}

// GetOrder handles GET /api/v1/orders/:id.
//
//	@Summary	Get an order
//	@Tags		orders
//	@Produce	json
//	@Param		id	path		string	true	"Order ID"
//	@Success	200	{object}	OrderResponse
//	@Failure	400	{object}	ErrorResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/orders/{id} [get]
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid order id: " + err.Error(),
		})
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	response, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderQueryToResponse(response))
}

// ListOrders handles GET /api/v1/orders.
//
//	@Summary	List orders
//	@Tags		orders
//	@Produce	json
//	@Param		customerId	query		string	false	"Filter by customer"
//	@Param		status		query		string	false	"Filter by status label"
//	@Success	200			{array}		OrderSummaryResponse
//	@Failure	400			{object}	ErrorResponse
//	@Router		/orders [get]
func (s *Server) ListOrders(ctx echo.Context) error {
	var customerID *kernel.UUID
	if raw := ctx.QueryParam("customerId"); raw != "" {
		id, err := kernel.UUIDFromString(raw)
		if err != nil {
			return ctx.JSON(http.StatusBadRequest, ErrorResponse{
				Code:    http.StatusBadRequest,
				Message: "invalid customer id: " + err.Error(),
			})
		}
		customerID = &id
	}

	query, err := queries.NewListOrdersQuery(customerID, ctx.QueryParam("status"))
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.listOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]OrderSummaryResponse, 0, len(result.Orders))
	for _, summary := range result.Orders {
		response = append(response, OrderSummaryResponse{
			ID:          summary.ID.String(),
			CustomerID:  summary.CustomerID.String(),
			Status:      summary.Status.String(),
			TotalAmount: summary.TotalAmount.String(),
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateCustomer handles POST /api/v1/customers.
//
//	@Summary	Register a customer
//	@Tags		customers
//	@Accept		json
//	@Produce	json
//	@Param		customer	body		CreateCustomerRequest	true	"Customer to register"
//	@Success	201			{object}	CustomerResponse
//	@Failure	400			{object}	ErrorResponse
//	@Failure	409			{object}	ErrorResponse
//	@Router		/customers [post]
func (s *Server) CreateCustomer(ctx echo.Context) error {
	var request CreateCustomerRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}

	cmd, err := commands.NewCreateCustomerCommand(
		kernel.NewUUID(),
		request.FirstName,
		request.LastName,
		request.Email,
		request.Phone,
		request.Address,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	created, err := s.createCustomerHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, customerToResponse(created))
}

// DeleteCustomer handles DELETE /api/v1/customers/:id.
//
//	@Summary		Delete a customer
//	@Description	Removes a customer. Blocked with 409 while any order references the customer.
//	@Tags			customers
//	@Produce		json
//	@Param			id	path	string	true	"Customer ID"
//	@Success		204
//	@Failure		400	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Failure		409	{object}	ErrorResponse
//	@Router			/customers/{id} [delete]
func (s *Server) DeleteCustomer(ctx echo.Context) error {
	customerID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid customer id: " + err.Error(),
		})
	}

	cmd, err := commands.NewDeleteCustomerCommand(customerID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.deleteCustomerHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateProduct handles POST /api/v1/products.
//
//	@Summary	Add a product to the catalog
//	@Tags		products
//	@Accept		json
//	@Produce	json
//	@Param		product	body		CreateProductRequest	true	"Product to add"
//	@Success	201		{object}	ProductResponse
//	@Failure	400		{object}	ErrorResponse
//	@Router		/products [post]
func (s *Server) CreateProduct(ctx echo.Context) error {
	var request CreateProductRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}

	price, err := kernel.NewMoneyFromString(request.Price)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewCreateProductCommand(
		kernel.NewUUID(),
		request.Name,
		request.Description,
		price,
		request.Category,
		request.PreparationTime,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	created, err := s.createProductHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, productToResponse(created))
}

// SetProductAvailability handles PUT /api/v1/products/:id/availability.
//
//	@Summary		Withdraw or publish a product
//	@Description	Flips the product's availability. Withdrawing only affects new orders; existing order lines keep their captured prices.
//	@Tags			products
//	@Accept			json
//	@Produce		json
//	@Param			id				path		string					true	"Product ID"
//	@Param			availability	body		SetAvailabilityRequest	true	"Requested availability"
//	@Success		200				{object}	ProductResponse
//	@Failure		400				{object}	ErrorResponse
//	@Failure		404				{object}	ErrorResponse
//	@Router			/products/{id}/availability [put]
func (s *Server) SetProductAvailability(ctx echo.Context) error {
	productID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid product id: " + err.Error(),
		})
	}

	var request SetAvailabilityRequest
	if err = ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    http.StatusBadRequest,
			Message: "invalid request body",
		})
	}

	cmd, err := commands.NewSetProductAvailabilityCommand(productID, request.Available)
	if err != nil {
		return respondError(ctx, err)
	}

	updated, err := s.setAvailabilityHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, productToResponse(updated))
}

// ListAvailableProducts handles GET /api/v1/products.
//
//	@Summary	List available products
//	@Tags		products
//	@Produce	json
//	@Param		category	query		string	false	"Filter by category"
//	@Success	200			{array}		ProductResponse
//	@Router		/products [get]
func (s *Server) ListAvailableProducts(ctx echo.Context) error {
	query := queries.NewListAvailableProductsQuery(ctx.QueryParam("category"))

	products, err := s.listAvailableProductsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		response = append(response, ProductResponse{
			ID:              p.ID.String(),
			Name:            p.Name,
			Description:     p.Description,
			Price:           p.Price.String(),
			Category:        p.Category,
			IsAvailable:     true,
			PreparationTime: p.PreparationTime,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}
