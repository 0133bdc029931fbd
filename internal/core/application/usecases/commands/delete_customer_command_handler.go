package commands

import (
	"context"

	"restaurant/internal/core/domain/model/customer"
)

// DeleteCustomerCommandHandler removes customers that no order references.
//
// The existence check and the delete run in one transaction, so an order
// created concurrently either blocks the delete or lands on a still-existing
// customer; referential protection is never cascaded.
type DeleteCustomerCommandHandler struct {
	uowFactory CustomerUoWFactory
}

// NewDeleteCustomerCommandHandler creates a handler for customer deletion.
func NewDeleteCustomerCommandHandler(uowFactory CustomerUoWFactory) DeleteCustomerCommandHandler {
	return DeleteCustomerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the deletion command.
//
// Failure modes:
//   - the customer does not exist (object not found)
//   - orders reference the customer (customer.ErrCustomerHasOrders)
func (h *DeleteCustomerCommandHandler) Handle(ctx context.Context, cmd DeleteCustomerCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.CustomerRepository().Get(ctx, cmd.CustomerID()); err != nil {
		return err
	}

	referenced, err := uow.OrderRepository().ExistsForCustomer(ctx, cmd.CustomerID())
	if err != nil {
		return err
	}
	if referenced {
		return customer.ErrCustomerHasOrders
	}

	if err = uow.CustomerRepository().Delete(ctx, cmd.CustomerID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
