package commands

import (
	"context"

	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/services"
	"restaurant/internal/pkg/errs"
)

// CreateOrderCommandHandler handles the business logic for order creation.
//
// The handler verifies the customer exists, loads the catalog snapshot for
// the requested products, prices the lines through the line builder, and
// persists the order with all its lines as one atomic unit. The returned
// order carries the derived total and the initial New status.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, services.NewLineBuilder())
//	created, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
//	fmt.Printf("order %s totals %s", created.ID(), created.TotalAmount())
type CreateOrderCommandHandler struct {
	uowFactory  OrderingUoWFactory
	lineBuilder services.LineBuilder
}

// NewCreateOrderCommandHandler creates a handler for order creation.
// Requires an OrderingUoWFactory for transactional persistence and a
// LineBuilder for pricing.
func NewCreateOrderCommandHandler(uowFactory OrderingUoWFactory, lineBuilder services.LineBuilder) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory:  uowFactory,
		lineBuilder: lineBuilder,
	}
}

// Handle processes the order creation command.
//
// Failure modes, surfaced without any partial state becoming visible:
//   - the customer does not exist (object not found)
//   - a requested product does not exist (object not found)
//   - a requested product is withdrawn (services.ErrProductUnavailable)
//   - persistence failure (propagated from the store)
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
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

	exists, err := uow.CustomerRepository().Exists(ctx, cmd.CustomerID())
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, errs.NewObjectNotFoundError("customer", cmd.CustomerID().String())
	}

	catalog, err := uow.ProductRepository().GetByIDs(ctx, cmd.ProductIDs())
	if err != nil {
		return nil, err
	}

	lines, err := h.lineBuilder.Build(cmd.Lines(), catalog)
	if err != nil {
		return nil, err
	}

	newOrder, err := order.NewOrder(cmd.OrderID(), cmd.CustomerID(), lines, cmd.Notes())
	if err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newOrder, nil
}
