package commands_test

import (
	"testing"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/product"
	"restaurant/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSetProductAvailabilityCommandHandler_Handle_Withdraw(t *testing.T) {
	ctx := t.Context()
	aggregate, err := product.NewProduct(kernel.NewUUID(), "Lasagna", "", mustMoney(t, "12.00"), "Pasta", 20)
	require.NoError(t, err)
	cmd, err := commands.NewSetProductAvailabilityCommand(aggregate.ID(), false)
	require.NoError(t, err)

	repo := new(MockProductRepository)
	uow := new(MockProductUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProductRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		repo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockProductUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSetProductAvailabilityCommandHandler(factory)
	updated, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.False(t, updated.IsAvailable())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestSetProductAvailabilityCommandHandler_Handle_Publish(t *testing.T) {
	ctx := t.Context()
	aggregate, err := product.RestoreProduct(kernel.NewUUID(), "Lasagna", "", mustMoney(t, "12.00"), "Pasta", false, 20)
	require.NoError(t, err)
	cmd, err := commands.NewSetProductAvailabilityCommand(aggregate.ID(), true)
	require.NoError(t, err)

	repo := new(MockProductRepository)
	uow := new(MockProductUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProductRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		repo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockProductUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSetProductAvailabilityCommandHandler(factory)
	updated, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.True(t, updated.IsAvailable())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestSetProductAvailabilityCommandHandler_Handle_ProductNotFound(t *testing.T) {
	ctx := t.Context()
	productID := kernel.NewUUID()
	cmd, err := commands.NewSetProductAvailabilityCommand(productID, false)
	require.NoError(t, err)

	repo := new(MockProductRepository)
	uow := new(MockProductUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProductRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, productID).
			Return(nil, errs.NewObjectNotFoundError("product", productID.String())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockProductUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSetProductAvailabilityCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
}
