// Package product provides the Product entity, the catalog-side source of
// price and availability truth consumed at order-creation time.
package product

import (
	"errors"
	"fmt"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
)

// ErrProductIsNotConstructed is returned when a Product was not created
// through NewProduct or RestoreProduct.
var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct or RestoreProduct constructor")

// Product is a menu item. Its current price is captured into order lines at
// order time; withdrawing a product (isAvailable=false) blocks new orders for
// it without touching historical ones.
type Product struct {
	id              kernel.UUID
	name            string
	description     string
	price           kernel.Money
	category        string
	isAvailable     bool
	preparationTime int

	isConstructed bool
}

// NewProduct creates a validated, available product.
//
// Parameters:
//   - id: unique identifier
//   - name: non-empty display name
//   - description: free text
//   - price: current menu price
//   - category: menu section the product belongs to (non-empty)
//   - preparationTime: kitchen time in minutes (must be positive)
func NewProduct(id kernel.UUID, name, description string, price kernel.Money, category string, preparationTime int) (*Product, error) {
	return build(id, name, description, price, category, true, preparationTime)
}

// RestoreProduct rehydrates a product from persistence, including its
// availability flag.
func RestoreProduct(id kernel.UUID, name, description string, price kernel.Money, category string, isAvailable bool, preparationTime int) (*Product, error) {
	return build(id, name, description, price, category, isAvailable, preparationTime)
}

func build(id kernel.UUID, name, description string, price kernel.Money, category string, isAvailable bool, preparationTime int) (*Product, error) {
	p := &Product{
		description:   description,
		isAvailable:   isAvailable,
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setPrice(price),
		p.setCategory(category),
		p.setPreparationTime(preparationTime),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// Validate ensures the Product was properly constructed.
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

// ID returns the product's unique identifier.
func (p *Product) ID() kernel.UUID {
	return p.id
}

// Name returns the product's display name.
func (p *Product) Name() string {
	return p.name
}

// Description returns the product's free-text description.
func (p *Product) Description() string {
	return p.description
}

// Price returns the current menu price.
func (p *Product) Price() kernel.Money {
	return p.price
}

// Category returns the menu section the product belongs to.
func (p *Product) Category() string {
	return p.category
}

// IsAvailable reports whether the product may be ordered.
func (p *Product) IsAvailable() bool {
	return p.isAvailable
}

// PreparationTime returns the kitchen time in minutes.
func (p *Product) PreparationTime() int {
	return p.preparationTime
}

// Withdraw marks the product unavailable for new orders.
func (p *Product) Withdraw() {
	p.isAvailable = false
}

// Publish marks the product available again.
func (p *Product) Publish() {
	p.isAvailable = true
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}

func (p *Product) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}
	p.price = price
	return nil
}

func (p *Product) setCategory(category string) error {
	if category == "" {
		return errs.NewValueIsRequiredError("category")
	}
	p.category = category
	return nil
}

func (p *Product) setPreparationTime(preparationTime int) error {
	if preparationTime <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"preparationTime",
			fmt.Errorf("%d is not greater than 0", preparationTime),
		)
	}
	p.preparationTime = preparationTime
	return nil
}
