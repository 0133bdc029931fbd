package order

import (
	"errors"
	"fmt"

	"restaurant/internal/pkg/errs"
)

// ErrInvalidStatusTransition is returned when a requested status is not the
// immediate successor of the current one. Staying at the same status, skipping
// a step, and moving backward are all policy violations, so a failed request
// repeated any number of times never mutates the order.
var ErrInvalidStatusTransition = errors.New("status transition must advance exactly one step")

// ErrStatusConflict is returned when a status update loses a race: the stored
// status no longer matches the one the transition was validated against.
// Exactly one of two concurrent transitions from the same starting status
// succeeds; the other receives this error.
var ErrStatusConflict = errors.New("order status changed concurrently")

// Status represents the lifecycle state of an order. It implements a strict
// linear state machine with no branching and no cancellation path:
//
//	New ──> Preparing ──> Ready ──> Delivered
//
// New is the only initial state and Delivered is terminal. An order that must
// be aborted is outside this machine's vocabulary.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// New is the initial status assigned at order creation.
	New

	// Preparing indicates the kitchen has started working on the order.
	Preparing

	// Ready indicates the order is prepared and waiting for handover.
	Ready

	// Delivered indicates the order reached the customer. Terminal.
	Delivered
)

// getStatusStrings returns the labels of all Status values, including Unknown,
// to support string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		New:       "New",
		Preparing: "Preparing",
		Ready:     "Ready",
		Delivered: "Delivered",
	}
}

// getValidStatusStrings returns only the recognized statuses, to support
// validation and label parsing.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		New:       "New",
		Preparing: "Preparing",
		Ready:     "Ready",
		Delivered: "Delivered",
	}
}

// ParseStatus maps a label such as "Preparing" to its Status. Unrecognized
// labels fail with a value-is-invalid error before the state machine is ever
// consulted.
func ParseStatus(label string) (Status, error) {
	for status, s := range getValidStatusStrings() {
		if s == label {
			return status, nil
		}
	}

	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a recognized status", label),
	)
}

// Validate checks that the Status is one of the four recognized states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%d is not a valid status", s),
		)
	}
	return nil
}

// String returns the status label. It implements fmt.Stringer and is safe on
// any value, returning "Unknown" for unrecognized ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Next returns the sole allowed successor of the status. The second return
// value is false for Delivered, which has no outgoing transitions.
func (s Status) Next() (Status, bool) {
	switch s {
	case New:
		return Preparing, true
	case Preparing:
		return Ready, true
	case Ready:
		return Delivered, true
	default:
		return Unknown, false
	}
}

// TransitionTo validates a requested transition and returns the new status.
//
// Failure modes:
//   - the target is not a recognized status (value-is-invalid error)
//   - the current status is terminal, or the target is not exactly the
//     current status's successor (ErrInvalidStatusTransition)
//
// On failure the receiver is unchanged and (Unknown, error) is returned.
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return Unknown, err
	}

	next, ok := s.Next()
	if !ok {
		return Unknown, fmt.Errorf("%w: %s is terminal", ErrInvalidStatusTransition, s)
	}

	if target != next {
		return Unknown, fmt.Errorf("%w: %s -> %s is not allowed", ErrInvalidStatusTransition, s, target)
	}

	return target, nil
}
