package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves a single order and its lines from the
// database.
//
// Example:
//
//	handler := NewGetOrderQueryHandler(db)
//	response, err := handler.Handle(ctx, query)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // no such order
//	}
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order queries.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query. The order's lines are returned in insertion
// order; a missing order fails with an object-not-found error.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	var (
		id          uuid.UUID
		customerID  uuid.UUID
		createdAt   time.Time
		totalAmount decimal.Decimal
		status      int
		notes       string
	)

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_id,
			created_at,
			total_amount,
			status,
			notes
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Row()

	err := row.Scan(&id, &customerID, &createdAt, &totalAmount, &status, &notes)
	if errors.Is(err, sql.ErrNoRows) {
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
	}
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	response, err := buildOrderResponse(id, customerID, createdAt, totalAmount, status, notes)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	response.Lines, err = h.loadLines(ctx, query.OrderID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	return response, nil
}

func (h GetOrderQueryHandler) loadLines(ctx context.Context, orderID kernel.UUID) ([]OrderLineResponse, error) {
	lines := make([]OrderLineResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			product_id,
			quantity,
			price_at_order
		FROM order_lines
		WHERE order_id = ?
		ORDER BY id
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			productID    uuid.UUID
			quantity     int
			priceAtOrder decimal.Decimal
		)

		if err = rows.Scan(&productID, &quantity, &priceAtOrder); err != nil {
			return nil, err
		}

		lineProductID, idErr := kernel.UUIDFromBytes(productID[:])
		if idErr != nil {
			return nil, idErr
		}

		price, priceErr := kernel.NewMoneyFromDecimal(priceAtOrder)
		if priceErr != nil {
			return nil, priceErr
		}

		lines = append(lines, OrderLineResponse{
			ProductID:    lineProductID,
			Quantity:     quantity,
			PriceAtOrder: price,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}

// buildOrderResponse converts scanned order columns into a response header.
// Shared by the single-order and list queries.
func buildOrderResponse(
	id uuid.UUID,
	customerID uuid.UUID,
	createdAt time.Time,
	totalAmount decimal.Decimal,
	status int,
	notes string,
) (GetOrderQueryResponse, error) {
	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	orderCustomerID, err := kernel.UUIDFromBytes(customerID[:])
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	total, err := kernel.NewMoneyFromDecimal(totalAmount)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	orderStatus := order.Status(status)
	if err = orderStatus.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	return GetOrderQueryResponse{
		ID:          orderID,
		CustomerID:  orderCustomerID,
		CreatedAt:   createdAt,
		Status:      orderStatus,
		Notes:       notes,
		TotalAmount: total,
	}, nil
}
