package commands

import (
	"context"

	"restaurant/internal/core/domain/model/product"
)

// SetProductAvailabilityCommandHandler withdraws or republishes catalog
// products.
type SetProductAvailabilityCommandHandler struct {
	uowFactory ProductUoWFactory
}

// NewSetProductAvailabilityCommandHandler creates a handler for availability
// updates.
func NewSetProductAvailabilityCommandHandler(uowFactory ProductUoWFactory) SetProductAvailabilityCommandHandler {
	return SetProductAvailabilityCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the availability command and returns the updated product.
func (h *SetProductAvailabilityCommandHandler) Handle(ctx context.Context, cmd SetProductAvailabilityCommand) (*product.Product, error) {
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

	productRepo := uow.ProductRepository()
	aggregate, err := productRepo.Get(ctx, cmd.ProductID())
	if err != nil {
		return nil, err
	}

	if cmd.Available() {
		aggregate.Publish()
	} else {
		aggregate.Withdraw()
	}

	if err = productRepo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
