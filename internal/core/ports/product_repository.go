package ports

import (
	"context"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for catalog products.
type ProductRepository interface {
	// Add persists a new product.
	Add(ctx context.Context, aggregate *product.Product) error

	// Get retrieves a product by its identifier.
	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)

	// GetByIDs loads the catalog snapshot for the given identifiers, keyed by
	// identity. Missing products are simply absent from the result; the line
	// builder turns absences into not-found failures.
	GetByIDs(ctx context.Context, ids []kernel.UUID) (map[kernel.UUID]*product.Product, error)

	// Update persists changes to an existing product (e.g. availability).
	Update(ctx context.Context, aggregate *product.Product) error
}
