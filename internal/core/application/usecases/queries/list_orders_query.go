package queries

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/guard"
)

var (
	ErrListOrdersQueryIsNotConstructed = errors.New(
		"ListOrdersQuery must be created via NewListOrdersQuery constructor",
	)
)

// ListOrdersQuery retrieves order headers, optionally filtered by customer
// and/or status. Both filters are conjunctive when present.
//
// Example:
//
//	// all orders a customer has in the kitchen
//	query, err := NewListOrdersQuery(&customerID, "Preparing")
//
//	// every order in the system
//	query, err := NewListOrdersQuery(nil, "")
type ListOrdersQuery struct {
	customerID *kernel.UUID
	status     order.Status

	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates a query to list orders. A nil customerID means no
// customer filter; an empty statusLabel means no status filter. A non-empty
// label that is not a recognized status fails here as a validation error.
func NewListOrdersQuery(customerID *kernel.UUID, statusLabel string) (ListOrdersQuery, error) {
	listQuery := ListOrdersQuery{guard: guard.NewConstructorGuard()}

	if customerID != nil {
		if err := customerID.Validate(); err != nil {
			return ListOrdersQuery{}, err
		}
		listQuery.customerID = customerID
	}

	if statusLabel != "" {
		status, err := order.ParseStatus(statusLabel)
		if err != nil {
			return ListOrdersQuery{}, err
		}
		listQuery.status = status
	}

	return listQuery, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrListOrdersQueryIsNotConstructed if validation fails.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// CustomerID returns the customer filter, or nil when unfiltered.
func (q ListOrdersQuery) CustomerID() *kernel.UUID {
	return q.customerID
}

// Status returns the status filter; order.Unknown means unfiltered.
func (q ListOrdersQuery) Status() order.Status {
	return q.status
}

// ListOrdersQueryResponse represents one order header in a listing. Lines are
// not loaded; use GetOrderQuery for the full order.
type ListOrdersQueryResponse struct {
	Orders []OrderSummaryResponse
}

// OrderSummaryResponse is a single order header row.
type OrderSummaryResponse struct {
	ID          kernel.UUID
	CustomerID  kernel.UUID
	Status      order.Status
	TotalAmount kernel.Money
}
