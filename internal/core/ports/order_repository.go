// Package ports defines the persistence contracts the application core
// depends on. Adapters implement these interfaces; command and query handlers
// consume them through the unit of work.
package ports

import (
	"context"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order together with all of its lines as one atomic
	// unit: on failure nothing becomes visible.
	Add(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by its identifier, including its lines.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// UpdateStatus advances an order's status with a single conditional
	// update: the write applies only if the stored status still equals
	// expected. A lost race or stale expectation fails with
	// order.ErrStatusConflict; a missing order fails with an
	// object-not-found error. No other column is touched.
	UpdateStatus(ctx context.Context, id kernel.UUID, expected order.Status, next order.Status) error

	// ExistsForCustomer reports whether any order references the customer.
	// Used to protect customers from deletion.
	ExistsForCustomer(ctx context.Context, customerID kernel.UUID) (bool, error)
}
