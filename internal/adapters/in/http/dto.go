package http

import (
	"time"

	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/model/customer"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/model/product"
)

// ErrorResponse is the uniform error payload for all endpoints.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreateOrderRequest is the payload for POST /api/v1/orders. Item quantities
// must be positive; prices are never accepted from the client.
type CreateOrderRequest struct {
	CustomerID string             `json:"customerId"`
	Items      []OrderItemRequest `json:"items"`
	Notes      string             `json:"notes,omitempty"`
}

// OrderItemRequest is one requested (product, quantity) pair.
type OrderItemRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// TransitionStatusRequest is the payload for PUT /api/v1/orders/:id/status.
type TransitionStatusRequest struct {
	Status string `json:"status"`
}

// OrderResponse is the full order representation, lines included.
type OrderResponse struct {
	ID          string              `json:"id"`
	CustomerID  string              `json:"customerId"`
	CreatedAt   time.Time           `json:"createdAt"`
	Status      string              `json:"status"`
	Notes       string              `json:"notes,omitempty"`
	TotalAmount string              `json:"totalAmount"`
	Lines       []OrderLineResponse `json:"lines"`
}

// OrderLineResponse is one priced line of an order.
type OrderLineResponse struct {
	ProductID    string `json:"productId"`
	Quantity     int    `json:"quantity"`
	PriceAtOrder string `json:"priceAtOrder"`
	Subtotal     string `json:"subtotal"`
}

// OrderSummaryResponse is one order header row in a listing.
type OrderSummaryResponse struct {
	ID          string `json:"id"`
	CustomerID  string `json:"customerId"`
	Status      string `json:"status"`
	TotalAmount string `json:"totalAmount"`
}

// CreateCustomerRequest is the payload for POST /api/v1/customers.
type CreateCustomerRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address,omitempty"`
}

// CustomerResponse is the customer representation returned on creation.
type CustomerResponse struct {
	ID           string    `json:"id"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	Address      string    `json:"address,omitempty"`
	RegisteredAt time.Time `json:"registeredAt"`
}

// CreateProductRequest is the payload for POST /api/v1/products. Price is a
// decimal string such as "10.50" to keep amounts exact on the wire.
type CreateProductRequest struct {
	Name            string `json:"name"`
	Description     string `json:"description,omitempty"`
	Price           string `json:"price"`
	Category        string `json:"category"`
	PreparationTime int    `json:"preparationTime"`
}

// SetAvailabilityRequest is the payload for PUT /api/v1/products/:id/availability.
type SetAvailabilityRequest struct {
	Available bool `json:"available"`
}

// ProductResponse is the catalog product representation.
type ProductResponse struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Description     string `json:"description,omitempty"`
	Price           string `json:"price"`
	Category        string `json:"category"`
	IsAvailable     bool   `json:"isAvailable"`
	PreparationTime int    `json:"preparationTime"`
}

func orderToResponse(aggregate *order.Order) OrderResponse {
	domainLines := aggregate.Lines()
	lines := make([]OrderLineResponse, 0, len(domainLines))
	for _, line := range domainLines {
		lines = append(lines, OrderLineResponse{
			ProductID:    line.ProductID().String(),
			Quantity:     line.Quantity(),
			PriceAtOrder: line.PriceAtOrder().String(),
			Subtotal:     line.Subtotal().String(),
		})
	}

	return OrderResponse{
		ID:          aggregate.ID().String(),
		CustomerID:  aggregate.CustomerID().String(),
		CreatedAt:   aggregate.CreatedAt(),
		Status:      aggregate.Status().String(),
		Notes:       aggregate.Notes(),
		TotalAmount: aggregate.TotalAmount().String(),
		Lines:       lines,
	}
}

func orderQueryToResponse(response queries.GetOrderQueryResponse) OrderResponse {
	lines := make([]OrderLineResponse, 0, len(response.Lines))
	for _, line := range response.Lines {
		lines = append(lines, OrderLineResponse{
			ProductID:    line.ProductID.String(),
			Quantity:     line.Quantity,
			PriceAtOrder: line.PriceAtOrder.String(),
			Subtotal:     line.PriceAtOrder.MulInt(line.Quantity).String(),
		})
	}

	return OrderResponse{
		ID:          response.ID.String(),
		CustomerID:  response.CustomerID.String(),
		CreatedAt:   response.CreatedAt,
		Status:      response.Status.String(),
		Notes:       response.Notes,
		TotalAmount: response.TotalAmount.String(),
		Lines:       lines,
	}
}

func customerToResponse(aggregate *customer.Customer) CustomerResponse {
	return CustomerResponse{
		ID:           aggregate.ID().String(),
		FirstName:    aggregate.FirstName(),
		LastName:     aggregate.LastName(),
		Email:        aggregate.Email(),
		Phone:        aggregate.Phone(),
		Address:      aggregate.Address(),
		RegisteredAt: aggregate.RegisteredAt(),
	}
}

func productToResponse(aggregate *product.Product) ProductResponse {
	return ProductResponse{
		ID:              aggregate.ID().String(),
		Name:            aggregate.Name(),
		Description:     aggregate.Description(),
		Price:           aggregate.Price().String(),
		Category:        aggregate.Category(),
		IsAvailable:     aggregate.IsAvailable(),
		PreparationTime: aggregate.PreparationTime(),
	}
}
