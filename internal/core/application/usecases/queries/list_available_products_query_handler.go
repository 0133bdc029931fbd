package queries

import (
	"context"

	"restaurant/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ListAvailableProductsQueryHandler retrieves the orderable catalog from the
// database. This backs the menu a customer picks from.
type ListAvailableProductsQueryHandler struct {
	db *gorm.DB
}

// NewListAvailableProductsQueryHandler creates a handler for catalog queries.
// Requires a GORM database connection for query execution.
func NewListAvailableProductsQueryHandler(db *gorm.DB) ListAvailableProductsQueryHandler {
	return ListAvailableProductsQueryHandler{db: db}
}

// Handle executes the query. Results are sorted by category, then by name,
// matching how a menu is laid out.
func (h ListAvailableProductsQueryHandler) Handle(
	ctx context.Context,
	query ListAvailableProductsQuery,
) ([]ListAvailableProductsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			id,
			name,
			description,
			price,
			category,
			preparation_time
		FROM products
		WHERE is_available
	`
	args := make([]any, 0, 1)

	if query.Category() != "" {
		sql += " AND category = ?"
		args = append(args, query.Category())
	}
	sql += " ORDER BY category, name"

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := make([]ListAvailableProductsQueryResponse, 0)
	for rows.Next() {
		var (
			id              uuid.UUID
			name            string
			description     string
			price           decimal.Decimal
			category        string
			preparationTime int
		)

		if err = rows.Scan(&id, &name, &description, &price, &category, &preparationTime); err != nil {
			return nil, err
		}

		productID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		productPrice, priceErr := kernel.NewMoneyFromDecimal(price)
		if priceErr != nil {
			return nil, priceErr
		}

		products = append(products, ListAvailableProductsQueryResponse{
			ID:              productID,
			Name:            name,
			Description:     description,
			Price:           productPrice,
			Category:        category,
			PreparationTime: preparationTime,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return products, nil
}
