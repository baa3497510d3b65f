package commands_test

import (
	"testing"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/domain/model/cart"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func cartWithOneItem(t *testing.T, customerID kernel.UUID, menuItemID kernel.UUID, quantity int) *cart.Cart {
	t.Helper()
	c, err := cart.NewCart(kernel.NewUUID(), customerID)
	require.NoError(t, err)
	require.NoError(t, c.AddItem(kernel.NewUUID(), cart.Item{
		MenuItemID: menuItemID,
		Name:       "Goi Cuon",
		UnitPrice:  kernel.NewMoneyFromUnits(40_000),
		Quantity:   quantity,
	}))
	return c
}

func TestUpdateCartItemCommandHandler_Handle_ChangesQuantity(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	menuItemID := kernel.NewUUID()
	customerCart := cartWithOneItem(t, customerID, menuItemID, 1)

	cmd, err := commands.NewUpdateCartItemCommand(customerID, menuItemID, 3)
	require.NoError(t, err)

	cartRepo := new(MockCartRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("CartRepository").Return(cartRepo)
	cartRepo.On("GetByCustomer", ctx, customerID).Return(customerCart, nil).Once()
	cartRepo.On("Save", ctx, customerCart).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockCartUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateCartItemCommandHandler(factory)
	require.NoError(t, handler.Handle(ctx, cmd))

	require.Len(t, customerCart.Items(), 1)
	assert.Equal(t, 3, customerCart.Items()[0].Quantity)
	cartRepo.AssertExpectations(t)
}

func TestUpdateCartItemCommandHandler_Handle_ZeroQuantityDeletesEmptyCart(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	menuItemID := kernel.NewUUID()
	customerCart := cartWithOneItem(t, customerID, menuItemID, 2)

	cmd, err := commands.NewUpdateCartItemCommand(customerID, menuItemID, 0)
	require.NoError(t, err)

	cartRepo := new(MockCartRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("CartRepository").Return(cartRepo)
	cartRepo.On("GetByCustomer", ctx, customerID).Return(customerCart, nil).Once()
	cartRepo.On("Delete", ctx, customerID).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockCartUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateCartItemCommandHandler(factory)
	require.NoError(t, handler.Handle(ctx, cmd))

	assert.True(t, customerCart.IsEmpty())
	cartRepo.AssertNotCalled(t, "Save", ctx, mock.Anything)
	cartRepo.AssertExpectations(t)
}

func TestUpdateCartItemCommandHandler_Handle_UnknownItem(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	customerCart := cartWithOneItem(t, customerID, kernel.NewUUID(), 1)

	cmd, err := commands.NewUpdateCartItemCommand(customerID, kernel.NewUUID(), 2)
	require.NoError(t, err)

	cartRepo := new(MockCartRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("CartRepository").Return(cartRepo)
	cartRepo.On("GetByCustomer", ctx, customerID).Return(customerCart, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockCartUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewUpdateCartItemCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertNotCalled(t, "Commit", ctx)
}
