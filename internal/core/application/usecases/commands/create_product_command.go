package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

var ErrCreateProductCommandIsNotConstructed = errors.New(
	"CreateProductCommand must be created via NewCreateProductCommand constructor",
)

// CreateProductCommand represents a request to add a product to the catalog.
type CreateProductCommand struct { //nolint:recvcheck //using for validation
	productID       kernel.UUID
	name            string
	description     string
	price           kernel.Money
	category        string
	preparationTime int

	guard guard.ConstructorGuard
}

// NewCreateProductCommand creates a command to add a catalog product.
// The price must already be a constructed Money value; parsing the request
// amount is the transport layer's concern.
func NewCreateProductCommand(
	productID kernel.UUID,
	name string,
	description string,
	price kernel.Money,
	category string,
	preparationTime int,
) (CreateProductCommand, error) {
	productCommand := CreateProductCommand{
		description:     description,
		category:        category,
		preparationTime: preparationTime,
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		productCommand.setProductID(productID),
		productCommand.setName(name),
		productCommand.setPrice(price),
	); err != nil {
		return CreateProductCommand{}, err
	}

	return productCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateProductCommand) Validate() error {
	return c.guard.Validate(ErrCreateProductCommandIsNotConstructed)
}

// ProductID returns the identifier assigned to the new product.
func (c CreateProductCommand) ProductID() kernel.UUID { return c.productID }

// Name returns the product's display name.
func (c CreateProductCommand) Name() string { return c.name }

// Description returns the product's description.
func (c CreateProductCommand) Description() string { return c.description }

// Price returns the product's menu price.
func (c CreateProductCommand) Price() kernel.Money { return c.price }

// Category returns the menu section the product belongs to.
func (c CreateProductCommand) Category() string { return c.category }

// PreparationTime returns the kitchen time in minutes.
func (c CreateProductCommand) PreparationTime() int { return c.preparationTime }

func (c *CreateProductCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	c.productID = productID
	return nil
}

func (c *CreateProductCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *CreateProductCommand) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}
	c.price = price
	return nil
}
