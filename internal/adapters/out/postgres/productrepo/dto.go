// Package productrepo provides data transfer objects and mapping functions
// for catalog product persistence.
package productrepo

import (
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/product"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductDTO represents the database structure for persisting catalog
// products. Price is the current menu price; order lines carry their own
// captured copy.
type ProductDTO struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name            string          `gorm:"type:varchar(255);not null"`
	Description     string          `gorm:"type:text"`
	Price           decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Category        string          `gorm:"type:varchar(255);not null;index"`
	IsAvailable     bool            `gorm:"not null;index"`
	PreparationTime int             `gorm:"type:int;not null"`
}

// TableName specifies the database table name for product entities.
// Overrides GORM's default naming convention to use "products".
func (ProductDTO) TableName() string {
	return "products"
}

// fromDomain converts a product domain entity to its database representation.
func fromDomain(aggregate *product.Product) ProductDTO {
	return ProductDTO{
		ID:              aggregate.ID().Bytes(),
		Name:            aggregate.Name(),
		Description:     aggregate.Description(),
		Price:           aggregate.Price().Decimal(),
		Category:        aggregate.Category(),
		IsAvailable:     aggregate.IsAvailable(),
		PreparationTime: aggregate.PreparationTime(),
	}
}

// toDomain converts a database DTO to a product domain entity using
// RestoreProduct.
func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewMoneyFromDecimal(dto.Price)
	if err != nil {
		return nil, err
	}

	return product.RestoreProduct(
		id,
		dto.Name,
		dto.Description,
		price,
		dto.Category,
		dto.IsAvailable,
		dto.PreparationTime,
	)
}
