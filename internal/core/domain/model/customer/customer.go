// Package customer provides the Customer entity referenced by orders.
// Customers are protected from deletion while orders reference them; that
// referential rule is enforced by the delete use case, not by cascading.
package customer

import (
	"errors"
	"fmt"
	"regexp"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
)

var (
	// ErrCustomerIsNotConstructed is returned when a Customer was not created
	// through NewCustomer or RestoreCustomer.
	ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer or RestoreCustomer constructor")

	// ErrEmailAlreadyRegistered is returned when another customer already owns
	// the email address.
	ErrEmailAlreadyRegistered = errors.New("email is already registered")

	// ErrCustomerHasOrders is returned when deletion is requested for a
	// customer that orders still reference. Deletion is blocked, never cascaded.
	ErrCustomerHasOrders = errors.New("customer cannot be deleted while orders reference it")
)

const minNameLength = 2

var (
	emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	phonePattern = regexp.MustCompile(`^\d{10}$`)
)

// Customer is a registered patron of the restaurant. The email is unique
// across customers (enforced by the store), names carry a minimum length, and
// the phone number is exactly ten digits.
type Customer struct {
	id           kernel.UUID
	firstName    string
	lastName     string
	email        string
	phone        string
	address      string
	registeredAt time.Time

	isConstructed bool
}

// NewCustomer creates a validated customer with registeredAt set to now.
func NewCustomer(id kernel.UUID, firstName, lastName, email, phone, address string) (*Customer, error) {
	return build(id, firstName, lastName, email, phone, address, time.Now().UTC())
}

// RestoreCustomer rehydrates a customer from persistence.
func RestoreCustomer(id kernel.UUID, firstName, lastName, email, phone, address string, registeredAt time.Time) (*Customer, error) {
	return build(id, firstName, lastName, email, phone, address, registeredAt)
}

func build(id kernel.UUID, firstName, lastName, email, phone, address string, registeredAt time.Time) (*Customer, error) {
	c := &Customer{
		address:       address,
		registeredAt:  registeredAt,
		isConstructed: true,
	}

	if err := errors.Join(
		c.setID(id),
		c.setName(&c.firstName, "firstName", firstName),
		c.setName(&c.lastName, "lastName", lastName),
		c.setEmail(email),
		c.setPhone(phone),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// Validate ensures the Customer was properly constructed.
func (c *Customer) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCustomerIsNotConstructed
	}
	return nil
}

// ID returns the customer's unique identifier.
func (c *Customer) ID() kernel.UUID {
	return c.id
}

// FirstName returns the customer's first name.
func (c *Customer) FirstName() string {
	return c.firstName
}

// LastName returns the customer's last name.
func (c *Customer) LastName() string {
	return c.lastName
}

// Email returns the customer's unique email address.
func (c *Customer) Email() string {
	return c.email
}

// Phone returns the customer's ten-digit phone number.
func (c *Customer) Phone() string {
	return c.phone
}

// Address returns the customer's free-text address.
func (c *Customer) Address() string {
	return c.address
}

// RegisteredAt returns the registration timestamp.
func (c *Customer) RegisteredAt() time.Time {
	return c.registeredAt
}

func (c *Customer) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Customer) setName(field *string, paramName, value string) error {
	if len(value) < minNameLength {
		return errs.NewValueIsInvalidErrorWithCause(
			paramName,
			fmt.Errorf("%q is shorter than %d characters", value, minNameLength),
		)
	}
	*field = value
	return nil
}

func (c *Customer) setEmail(email string) error {
	if !emailPattern.MatchString(email) {
		return errs.NewValueIsInvalidErrorWithCause("email", fmt.Errorf("%q is not a valid email address", email))
	}
	c.email = email
	return nil
}

func (c *Customer) setPhone(phone string) error {
	if !phonePattern.MatchString(phone) {
		return errs.NewValueIsInvalidErrorWithCause("phone", fmt.Errorf("%q is not a 10-digit phone number", phone))
	}
	c.phone = phone
	return nil
}
