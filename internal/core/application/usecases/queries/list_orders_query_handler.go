package queries

import (
	"context"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ListOrdersQueryHandler retrieves order headers from the database, newest
// first, applying the query's optional filters.
//
// Example:
//
//	handler := NewListOrdersQueryHandler(db)
//	response, err := handler.Handle(ctx, query)
//	fmt.Printf("found %d orders\n", len(response.Orders))
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListOrdersQueryHandler creates a handler for order listings.
// Requires a GORM database connection for query execution.
func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

// Handle executes the listing. Results are sorted by creation time descending,
// with the order ID as a tiebreaker for a stable output.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) (ListOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListOrdersQueryResponse{}, err
	}

	sql := `
		SELECT
			id,
			customer_id,
			status,
			total_amount
		FROM orders
		WHERE 1=1
	`
	args := make([]any, 0, 2)

	if customerID := query.CustomerID(); customerID != nil {
		sql += " AND customer_id = ?"
		args = append(args, customerID.Bytes())
	}
	if query.Status() != order.Unknown {
		sql += " AND status = ?"
		args = append(args, query.Status())
	}
	sql += " ORDER BY created_at DESC, id"

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return ListOrdersQueryResponse{}, err
	}
	defer rows.Close()

	orders := make([]OrderSummaryResponse, 0)
	for rows.Next() {
		var (
			id          uuid.UUID
			customerID  uuid.UUID
			status      int
			totalAmount decimal.Decimal
		)

		if err = rows.Scan(&id, &customerID, &status, &totalAmount); err != nil {
			return ListOrdersQueryResponse{}, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return ListOrdersQueryResponse{}, idErr
		}

		orderCustomerID, idErr := kernel.UUIDFromBytes(customerID[:])
		if idErr != nil {
			return ListOrdersQueryResponse{}, idErr
		}

		total, totalErr := kernel.NewMoneyFromDecimal(totalAmount)
		if totalErr != nil {
			return ListOrdersQueryResponse{}, totalErr
		}

		orderStatus := order.Status(status)
		if err = orderStatus.Validate(); err != nil {
			return ListOrdersQueryResponse{}, err
		}

		orders = append(orders, OrderSummaryResponse{
			ID:          orderID,
			CustomerID:  orderCustomerID,
			Status:      orderStatus,
			TotalAmount: total,
		})
	}

	if err = rows.Err(); err != nil {
		return ListOrdersQueryResponse{}, err
	}

	return ListOrdersQueryResponse{Orders: orders}, nil
}
