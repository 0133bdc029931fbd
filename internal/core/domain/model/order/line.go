package order

import (
	"errors"
	"fmt"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
)

// ErrLineIsNotConstructed is returned when a Line was not created through the
// NewLine factory function.
var ErrLineIsNotConstructed = errors.New("Line must be created via NewLine constructor")

// Line is one priced (product, quantity) entry within an order.
//
// The price is captured from the catalog at order-creation time and never
// changes afterwards, which protects historical orders from later price
// changes. Lines are immutable values; an order's line set is fixed at
// creation.
type Line struct {
	// productID references the product that was available at order time
	productID kernel.UUID

	// quantity is the ordered amount (must be positive)
	quantity int

	// priceAtOrder is the catalog price captured when the line was built
	priceAtOrder kernel.Money

	// isConstructed ensures the line was created via NewLine
	isConstructed bool
}

// NewLine creates a priced order line with validation.
//
// Parameters:
//   - productID: identity of the ordered product (must be a valid UUID)
//   - quantity: ordered amount (must be greater than 0)
//   - priceAtOrder: catalog price captured for this line (must be constructed)
//
// Returns the line, or a validation error if any parameter is invalid.
func NewLine(productID kernel.UUID, quantity int, priceAtOrder kernel.Money) (Line, error) {
	line := Line{
		isConstructed: true,
	}

	if err := errors.Join(
		line.setProductID(productID),
		line.setQuantity(quantity),
		line.setPriceAtOrder(priceAtOrder),
	); err != nil {
		return Line{}, err
	}

	return line, nil
}

// Validate ensures the Line was created through NewLine.
func (l Line) Validate() error {
	if !l.isConstructed {
		return ErrLineIsNotConstructed
	}
	return nil
}

// ProductID returns the identity of the ordered product.
func (l Line) ProductID() kernel.UUID {
	return l.productID
}

// Quantity returns the ordered amount.
func (l Line) Quantity() int {
	return l.quantity
}

// PriceAtOrder returns the unit price captured at order time.
func (l Line) PriceAtOrder() kernel.Money {
	return l.priceAtOrder
}

// Subtotal returns priceAtOrder * quantity as an exact decimal amount.
func (l Line) Subtotal() kernel.Money {
	return l.priceAtOrder.MulInt(l.quantity)
}

func (l *Line) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	l.productID = productID
	return nil
}

func (l *Line) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	l.quantity = quantity
	return nil
}

func (l *Line) setPriceAtOrder(priceAtOrder kernel.Money) error {
	if err := priceAtOrder.Validate(); err != nil {
		return err
	}
	l.priceAtOrder = priceAtOrder
	return nil
}
