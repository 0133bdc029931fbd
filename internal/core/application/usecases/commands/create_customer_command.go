package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

var ErrCreateCustomerCommandIsNotConstructed = errors.New(
	"CreateCustomerCommand must be created via NewCreateCustomerCommand constructor",
)

// CreateCustomerCommand represents a request to register a new customer.
// Field format rules (name length, email shape, phone digits) are enforced by
// the customer aggregate; the command only guarantees presence.
type CreateCustomerCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID
	firstName  string
	lastName   string
	email      string
	phone      string
	address    string

	guard guard.ConstructorGuard
}

// NewCreateCustomerCommand creates a command to register a customer.
func NewCreateCustomerCommand(customerID kernel.UUID, firstName, lastName, email, phone, address string) (CreateCustomerCommand, error) {
	customerCommand := CreateCustomerCommand{
		address: address,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		customerCommand.setCustomerID(customerID),
		customerCommand.setRequired(&customerCommand.firstName, "firstName", firstName),
		customerCommand.setRequired(&customerCommand.lastName, "lastName", lastName),
		customerCommand.setRequired(&customerCommand.email, "email", email),
		customerCommand.setRequired(&customerCommand.phone, "phone", phone),
	); err != nil {
		return CreateCustomerCommand{}, err
	}

	return customerCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateCustomerCommand) Validate() error {
	return c.guard.Validate(ErrCreateCustomerCommandIsNotConstructed)
}

// CustomerID returns the identifier assigned to the new customer.
func (c CreateCustomerCommand) CustomerID() kernel.UUID { return c.customerID }

// FirstName returns the customer's first name.
func (c CreateCustomerCommand) FirstName() string { return c.firstName }

// LastName returns the customer's last name.
func (c CreateCustomerCommand) LastName() string { return c.lastName }

// Email returns the customer's email address.
func (c CreateCustomerCommand) Email() string { return c.email }

// Phone returns the customer's phone number.
func (c CreateCustomerCommand) Phone() string { return c.phone }

// Address returns the customer's free-text address.
func (c CreateCustomerCommand) Address() string { return c.address }

func (c *CreateCustomerCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	c.customerID = customerID
	return nil
}

func (c *CreateCustomerCommand) setRequired(field *string, paramName, value string) error {
	if value == "" {
		return errs.NewValueIsRequiredError(paramName)
	}
	*field = value
	return nil
}
