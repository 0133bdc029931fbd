package services

import (
	"errors"
	"fmt"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/model/product"
	"restaurant/internal/pkg/errs"
)

// ErrProductUnavailable is returned when a requested product is withdrawn from
// the catalog. The wrapped message names the first offending product in
// request order.
var ErrProductUnavailable = errors.New("product is unavailable")

// LineRequest is a caller-supplied (product, quantity) pair to be priced.
type LineRequest struct {
	ProductID kernel.UUID
	Quantity  int
}

// LineBuilder is a domain service that validates requested lines against a
// catalog snapshot and produces priced order lines.
//
// Business rules:
//   - every requested product must exist in the snapshot
//   - every requested product must be available; the first unavailable one,
//     scanning in request order, fails the whole build
//   - each line's priceAtOrder is fixed to the snapshot price, so later
//     catalog price changes never touch the order
//
// The builder is pure: it reads the snapshot it is handed and never persists.
//
// Example:
//
//	builder := services.NewLineBuilder()
//	lines, err := builder.Build(requests, catalog)
//	if errors.Is(err, services.ErrProductUnavailable) {
//	    // a requested product is withdrawn; surface a conflict
//	}
type LineBuilder struct{}

// NewLineBuilder creates a LineBuilder ready for use.
func NewLineBuilder() LineBuilder {
	return LineBuilder{}
}

// Build prices the requested lines against the catalog snapshot.
//
// Parameters:
//   - requests: ordered (product, quantity) pairs; quantities are validated
//     by order.NewLine
//   - catalog: products loaded for the requested IDs, keyed by identity
//
// Returns the priced lines, or the first failure encountered in request
// order: an object-not-found error for a missing product, ErrProductUnavailable
// for a withdrawn one, or a validation error for a bad quantity.
func (LineBuilder) Build(requests []LineRequest, catalog map[kernel.UUID]*product.Product) ([]order.Line, error) {
	lines := make([]order.Line, 0, len(requests))

	for _, request := range requests {
		p, ok := catalog[request.ProductID]
		if !ok {
			return nil, errs.NewObjectNotFoundError("product", request.ProductID.String())
		}

		if err := p.Validate(); err != nil {
			return nil, err
		}

		if !p.IsAvailable() {
			return nil, fmt.Errorf("%w: %s", ErrProductUnavailable, p.Name())
		}

		line, err := order.NewLine(p.ID(), request.Quantity, p.Price())
		if err != nil {
			return nil, err
		}

		lines = append(lines, line)
	}

	return lines, nil
}
