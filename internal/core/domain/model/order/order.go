package order

import (
	"errors"
	"fmt"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through NewOrder or RestoreOrder. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

	// ErrOrderLinesAreEmpty is returned when an order is created without lines.
	ErrOrderLinesAreEmpty = errs.NewValueIsRequiredError("order must contain at least one line")

	// ErrTotalAmountMismatch is returned when a restored order's stored total
	// does not equal the sum of its line subtotals.
	ErrTotalAmountMismatch = errors.New("total amount does not match the sum of line subtotals")
)

// Order is a customer's request for priced product lines, carrying a lifecycle
// status. It is the aggregate root for order management.
//
// Order maintains these invariants:
//   - the total amount always equals the exact decimal sum of
//     priceAtOrder * quantity over all lines, computed atomically with line
//     establishment and never settable by a caller
//   - the line set is non-empty and immutable after creation
//   - the status only ever advances one step through the fixed sequence
//   - only the status (and notes) may change post-creation; an order is
//     never re-priced
//
// Private fields plus the constructor guard keep the invariants from being
// bypassed by direct struct initialization.
type Order struct {
	// id is the unique identifier for the order, assigned at creation
	id kernel.UUID

	// customerID references the customer the order belongs to
	customerID kernel.UUID

	// createdAt is set once at creation
	createdAt time.Time

	// totalAmount is derived from the lines; never independently mutable
	totalAmount kernel.Money

	// status is the current state in the order lifecycle
	status Status

	// notes is optional free text from the customer
	notes string

	// lines are the priced items, fixed at creation
	lines []Line

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new Order from priced lines. This is the only way to
// create an order for a new business transaction; rehydration from storage
// goes through RestoreOrder.
//
// Parameters:
//   - id: unique identifier for the order
//   - customerID: identity of an existing customer (existence is checked by
//     the application layer against the customer directory)
//   - lines: non-empty priced lines from the line builder
//   - notes: optional free text
//
// The order starts in the New status with createdAt set to the current UTC
// time, and its total amount is computed from the lines with exact decimal
// arithmetic.
//
// Example:
//
//	line, _ := order.NewLine(productID, 2, price)
//	o, err := order.NewOrder(kernel.NewUUID(), customerID, []order.Line{line}, "extra cheese")
//	if err != nil {
//	    // handle validation error
//	}
func NewOrder(id kernel.UUID, customerID kernel.UUID, lines []Line, notes string) (*Order, error) {
	o := &Order{
		status:        New,
		createdAt:     time.Now().UTC(),
		notes:         notes,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setLines(lines),
	); err != nil {
		return nil, err
	}

	o.totalAmount = totalOf(o.lines)
	return o, nil
}

// RestoreOrder rehydrates an Order from persistence. In addition to the
// creation-time checks it validates the stored status and verifies that the
// stored total still equals the sum of the line subtotals, surfacing storage
// corruption instead of silently propagating it.
func RestoreOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	createdAt time.Time,
	totalAmount kernel.Money,
	status Status,
	notes string,
	lines []Line,
) (*Order, error) {
	o := &Order{
		createdAt:     createdAt,
		notes:         notes,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setLines(lines),
		o.setStatus(status),
	); err != nil {
		return nil, err
	}

	if err := totalAmount.Validate(); err != nil {
		return nil, err
	}
	if !totalAmount.IsEqual(totalOf(o.lines)) {
		return nil, fmt.Errorf("%w: stored %s", ErrTotalAmountMismatch, totalAmount)
	}

	o.totalAmount = totalAmount
	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the identity of the ordering customer.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// TotalAmount returns the derived order total.
func (o *Order) TotalAmount() kernel.Money {
	return o.totalAmount
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Notes returns the optional free-text notes.
func (o *Order) Notes() string {
	return o.notes
}

// Lines returns a copy of the order's priced lines. Copying keeps callers
// from mutating the aggregate's line set.
func (o *Order) Lines() []Line {
	lines := make([]Line, len(o.lines))
	copy(lines, o.lines)
	return lines
}

// TransitionTo advances the order's status to the requested one.
//
// The request fails with ErrInvalidStatusTransition unless the target is
// exactly the current status's successor; unrecognized targets fail with a
// validation error. No other field is modified, and on failure the status is
// left unchanged.
func (o *Order) TransitionTo(target Status) error {
	newStatus, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customerId", err)
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setLines(lines []Line) error {
	if len(lines) == 0 {
		return ErrOrderLinesAreEmpty
	}

	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return err
		}
	}

	o.lines = make([]Line, len(lines))
	copy(o.lines, lines)
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

// totalOf computes the exact decimal sum of the line subtotals.
func totalOf(lines []Line) kernel.Money {
	total := kernel.ZeroMoney()
	for _, line := range lines {
		total = total.Add(line.Subtotal())
	}
	return total
}
