// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The customer reference is a plain foreign key with no cascade: deleting a
// customer is blocked at the application layer while orders reference it.
type OrderDTO struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CustomerID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	CreatedAt   time.Time       `gorm:"not null"`
	TotalAmount decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Status      int             `gorm:"type:int;not null;index"`
	Notes       string          `gorm:"type:text"`
	Lines       []OrderLineDTO  `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderLineDTO represents one priced line within an order. The surrogate
// bigserial key preserves insertion order; price_at_order is the captured
// price, independent of the product's current price.
type OrderLineDTO struct {
	ID           uint64          `gorm:"primaryKey;autoIncrement"`
	OrderID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	Quantity     int             `gorm:"type:int;not null"`
	PriceAtOrder decimal.Decimal `gorm:"type:decimal(10,2);not null"`
}

// TableName specifies the database table name for order line entities.
// Overrides GORM's default naming convention to use "order_lines".
func (OrderLineDTO) TableName() string {
	return "order_lines"
}

// fromDomain converts an order domain aggregate to its database representation,
// lines included, so GORM persists the whole aggregate in one create.
func fromDomain(aggregate *order.Order) OrderDTO {
	orderID := aggregate.ID().Bytes()
	domainLines := aggregate.Lines()
	lines := make([]OrderLineDTO, 0, len(domainLines))

	for _, line := range domainLines {
		lines = append(lines, OrderLineDTO{
			OrderID:      orderID,
			ProductID:    line.ProductID().Bytes(),
			Quantity:     line.Quantity(),
			PriceAtOrder: line.PriceAtOrder().Decimal(),
		})
	}

	return OrderDTO{
		ID:          orderID,
		CustomerID:  aggregate.CustomerID().Bytes(),
		CreatedAt:   aggregate.CreatedAt(),
		TotalAmount: aggregate.TotalAmount().Decimal(),
		Status:      int(aggregate.Status()),
		Notes:       aggregate.Notes(),
		Lines:       lines,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including lines using RestoreOrder,
// which re-verifies the stored total against the line subtotals.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	totalAmount, err := kernel.NewMoneyFromDecimal(dto.TotalAmount)
	if err != nil {
		return nil, err
	}

	lines := make([]order.Line, 0, len(dto.Lines))
	for _, lineDto := range dto.Lines {
		line, lineErr := lineToDomain(lineDto)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	return order.RestoreOrder(
		id,
		customerID,
		dto.CreatedAt,
		totalAmount,
		order.Status(dto.Status),
		dto.Notes,
		lines,
	)
}

// lineToDomain converts an order line DTO to its domain value.
func lineToDomain(dto OrderLineDTO) (order.Line, error) {
	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return order.Line{}, err
	}

	priceAtOrder, err := kernel.NewMoneyFromDecimal(dto.PriceAtOrder)
	if err != nil {
		return order.Line{}, err
	}

	return order.NewLine(productID, dto.Quantity, priceAtOrder)
}
