package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/guard"
)

var (
	ErrTransitionOrderStatusCommandIsNotConstructed = errors.New(
		"TransitionOrderStatusCommand must be created via NewTransitionOrderStatusCommand constructor",
	)
)

// TransitionOrderStatusCommand represents a request to advance an order's
// status by exactly one step.
//
// The requested label is parsed at construction time, so an unrecognized
// status never reaches the state machine: it fails here as a validation
// error, distinct from the conflict an invalid transition produces.
//
// Example:
//
//	cmd, err := NewTransitionOrderStatusCommand(orderID, "Preparing")
//	if err != nil {
//	    // "Preparing" misspelled or not a recognized status
//	}
type TransitionOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	target  order.Status

	guard guard.ConstructorGuard
}

// NewTransitionOrderStatusCommand creates a command to advance an order's
// status to the state named by statusLabel. Fails if the order ID is invalid
// or the label is not one of the recognized statuses.
func NewTransitionOrderStatusCommand(orderID kernel.UUID, statusLabel string) (TransitionOrderStatusCommand, error) {
	transitionCommand := TransitionOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		transitionCommand.setOrderID(orderID),
		transitionCommand.setTarget(statusLabel),
	); err != nil {
		return TransitionOrderStatusCommand{}, err
	}

	return transitionCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrTransitionOrderStatusCommandIsNotConstructed if validation fails.
func (c TransitionOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrTransitionOrderStatusCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to advance.
func (c TransitionOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Target returns the parsed requested status.
func (c TransitionOrderStatusCommand) Target() order.Status {
	return c.target
}

func (c *TransitionOrderStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *TransitionOrderStatusCommand) setTarget(statusLabel string) error {
	target, err := order.ParseStatus(statusLabel)
	if err != nil {
		return err
	}

	c.target = target
	return nil
}
