package queries

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var (
	ErrListAvailableProductsQueryIsNotConstructed = errors.New(
		"ListAvailableProductsQuery must be created via NewListAvailableProductsQuery constructor",
	)
)

// ListAvailableProductsQuery retrieves the orderable part of the catalog,
// optionally narrowed to one category. Withdrawn products are never included.
//
// Example:
//
//	query := NewListAvailableProductsQuery("Pizza")
//	handler := NewListAvailableProductsQueryHandler(db)
//
//	products, err := handler.Handle(ctx, query)
type ListAvailableProductsQuery struct {
	category string

	guard guard.ConstructorGuard
}

// NewListAvailableProductsQuery creates a query for the available catalog.
// An empty category means all categories.
func NewListAvailableProductsQuery(category string) ListAvailableProductsQuery {
	return ListAvailableProductsQuery{category: category, guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrListAvailableProductsQueryIsNotConstructed if validation fails.
func (q ListAvailableProductsQuery) Validate() error {
	return q.guard.Validate(ErrListAvailableProductsQueryIsNotConstructed)
}

// Category returns the category filter; empty means unfiltered.
func (q ListAvailableProductsQuery) Category() string {
	return q.category
}

// ListAvailableProductsQueryResponse represents one orderable catalog entry.
type ListAvailableProductsQueryResponse struct {
	ID              kernel.UUID
	Name            string
	Description     string
	Price           kernel.Money
	Category        string
	PreparationTime int
}
