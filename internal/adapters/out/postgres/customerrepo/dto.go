// Package customerrepo provides data transfer objects and mapping functions
// for customer persistence.
package customerrepo

import (
	"time"

	"restaurant/internal/core/domain/model/customer"
	"restaurant/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CustomerDTO represents the database structure for persisting customers.
// The unique index on email backs the one-account-per-email rule; violations
// surface as customer.ErrEmailAlreadyRegistered from the repository.
type CustomerDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	FirstName    string    `gorm:"type:varchar(255);not null"`
	LastName     string    `gorm:"type:varchar(255);not null"`
	Email        string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	Phone        string    `gorm:"type:varchar(10);not null"`
	Address      string    `gorm:"type:text"`
	RegisteredAt time.Time `gorm:"not null"`
}

// TableName specifies the database table name for customer entities.
// Overrides GORM's default naming convention to use "customers".
func (CustomerDTO) TableName() string {
	return "customers"
}

// fromDomain converts a customer domain entity to its database representation.
func fromDomain(aggregate *customer.Customer) CustomerDTO {
	return CustomerDTO{
		ID:           aggregate.ID().Bytes(),
		FirstName:    aggregate.FirstName(),
		LastName:     aggregate.LastName(),
		Email:        aggregate.Email(),
		Phone:        aggregate.Phone(),
		Address:      aggregate.Address(),
		RegisteredAt: aggregate.RegisteredAt(),
	}
}

// toDomain converts a database DTO to a customer domain entity using
// RestoreCustomer.
func toDomain(dto CustomerDTO) (*customer.Customer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return customer.RestoreCustomer(
		id,
		dto.FirstName,
		dto.LastName,
		dto.Email,
		dto.Phone,
		dto.Address,
		dto.RegisteredAt,
	)
}
