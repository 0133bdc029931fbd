// Package queries contains read-only operations in the CQRS split. Query
// handlers bypass the domain aggregates and read the store directly, returning
// plain response structs shaped for presentation.
package queries

import (
	"errors"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/guard"
)

var (
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)
)

// GetOrderQuery retrieves a single order with its priced lines.
//
// Example:
//
//	query, err := NewGetOrderQuery(orderID)
//	if err != nil {
//	    return fmt.Errorf("invalid order id: %w", err)
//	}
//
//	handler := NewGetOrderQueryHandler(db)
//	response, err := handler.Handle(ctx, query)
type GetOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query to retrieve the order with the given
// identifier.
func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderQueryIsNotConstructed if validation fails.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the identifier of the requested order.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetOrderQueryResponse represents a fully loaded order: header fields plus
// the priced lines in storage order.
type GetOrderQueryResponse struct {
	ID          kernel.UUID
	CustomerID  kernel.UUID
	CreatedAt   time.Time
	Status      order.Status
	Notes       string
	TotalAmount kernel.Money
	Lines       []OrderLineResponse
}

// OrderLineResponse represents one priced line of an order. PriceAtOrder is
// the price captured at order time, not the product's current price.
type OrderLineResponse struct {
	ProductID    kernel.UUID
	Quantity     int
	PriceAtOrder kernel.Money
}
