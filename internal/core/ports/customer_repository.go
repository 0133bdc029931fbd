package ports

import (
	"context"

	"restaurant/internal/core/domain/model/customer"
	"restaurant/internal/core/domain/model/kernel"
)

// CustomerRepository defines the persistence contract for customers.
type CustomerRepository interface {
	// Add persists a new customer. A duplicate email fails with
	// customer.ErrEmailAlreadyRegistered.
	Add(ctx context.Context, aggregate *customer.Customer) error

	// Get retrieves a customer by its identifier.
	Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error)

	// Exists reports whether a customer with the given identifier exists.
	// This is the directory check consulted before order creation.
	Exists(ctx context.Context, id kernel.UUID) (bool, error)

	// Delete removes a customer. Callers must have verified that no order
	// references the customer (see OrderRepository.ExistsForCustomer).
	Delete(ctx context.Context, id kernel.UUID) error
}
