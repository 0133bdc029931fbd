package commands

import (
	"context"

	"restaurant/internal/core/domain/model/order"
)

// TransitionOrderStatusCommandHandler advances an order's status through the
// strict one-step progression.
//
// The transition is validated against the loaded aggregate and then applied
// with a conditional update keyed on the status the validation saw. Two
// concurrent requests from the same starting status therefore cannot both
// succeed: the loser of the race gets order.ErrStatusConflict.
//
// Example:
//
//	handler := NewTransitionOrderStatusCommandHandler(uowFactory)
//	updated, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, order.ErrInvalidStatusTransition) {
//	    // requested status is not the immediate successor
//	}
type TransitionOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewTransitionOrderStatusCommandHandler creates a handler for status
// transitions. Requires an OrderUoWFactory for transactional persistence.
func NewTransitionOrderStatusCommandHandler(uowFactory OrderUoWFactory) TransitionOrderStatusCommandHandler {
	return TransitionOrderStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the transition command and returns the updated order.
//
// Failure modes:
//   - the order does not exist (object not found)
//   - the requested status is not the immediate successor
//     (order.ErrInvalidStatusTransition); the stored order is untouched
//   - the stored status changed between read and write
//     (order.ErrStatusConflict); the other writer won
func (h *TransitionOrderStatusCommandHandler) Handle(ctx context.Context, cmd TransitionOrderStatusCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	expected := aggregate.Status()
	if err = aggregate.TransitionTo(cmd.Target()); err != nil {
		return nil, err
	}

	if err = orderRepo.UpdateStatus(ctx, aggregate.ID(), expected, aggregate.Status()); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
