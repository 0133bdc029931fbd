package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var ErrSetProductAvailabilityCommandIsNotConstructed = errors.New(
	"SetProductAvailabilityCommand must be created via NewSetProductAvailabilityCommand constructor",
)

// SetProductAvailabilityCommand represents a request to withdraw a product
// from ordering or publish it again. Withdrawing only affects new orders;
// historical lines keep their captured prices.
type SetProductAvailabilityCommand struct { //nolint:recvcheck //using for validation
	productID kernel.UUID
	available bool

	guard guard.ConstructorGuard
}

// NewSetProductAvailabilityCommand creates a command to flip a product's
// availability flag.
func NewSetProductAvailabilityCommand(productID kernel.UUID, available bool) (SetProductAvailabilityCommand, error) {
	if err := productID.Validate(); err != nil {
		return SetProductAvailabilityCommand{}, err
	}

	return SetProductAvailabilityCommand{
		productID: productID,
		available: available,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c SetProductAvailabilityCommand) Validate() error {
	return c.guard.Validate(ErrSetProductAvailabilityCommandIsNotConstructed)
}

// ProductID returns the identifier of the product to update.
func (c SetProductAvailabilityCommand) ProductID() kernel.UUID {
	return c.productID
}

// Available reports the requested availability state.
func (c SetProductAvailabilityCommand) Available() bool {
	return c.available
}
