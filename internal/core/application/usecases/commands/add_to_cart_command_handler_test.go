package commands_test

import (
	"testing"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/domain/model/cart"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func availableMenuItem(id kernel.UUID) ports.MenuItem {
	return ports.MenuItem{
		ID:          id,
		Name:        "Banh Mi",
		Price:       kernel.NewMoneyFromUnits(35_000),
		IsAvailable: true,
	}
}

func TestAddToCartCommandHandler_Handle_CreatesCartOnFirstAdd(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	restaurantID := kernel.NewUUID()
	menuItemID := kernel.NewUUID()

	cmd, err := commands.NewAddToCartCommand(customerID, restaurantID, menuItemID, 2, "no cilantro")
	require.NoError(t, err)

	gateway := new(MockRestaurantGateway)
	cartRepo := new(MockCartRepository)
	uow := new(MockUoW)

	gateway.On("GetMenuItem", ctx, menuItemID).Return(availableMenuItem(menuItemID), nil).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("CartRepository").Return(cartRepo)
	cartRepo.On("GetByCustomer", ctx, customerID).
		Return(nil, errs.NewObjectNotFoundError("cart", customerID.String())).Once()
	cartRepo.On("Save", ctx, mock.AnythingOfType("*cart.Cart")).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockCartUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAddToCartCommandHandler(factory, gateway)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)

	saved := cartRepo.Calls[1].Arguments.Get(1).(*cart.Cart)
	require.Len(t, saved.Items(), 1)
	assert.Equal(t, "Banh Mi", saved.Items()[0].Name)
	assert.Equal(t, 2, saved.Items()[0].Quantity)
	assert.Equal(t, "no cilantro", saved.Items()[0].Notes)
	require.NotNil(t, saved.RestaurantID())
	assert.True(t, restaurantID.IsEqual(*saved.RestaurantID()))
	cartRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAddToCartCommandHandler_Handle_SwitchingRestaurantClearsCart(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()
	oldRestaurantID := kernel.NewUUID()
	newRestaurantID := kernel.NewUUID()
	menuItemID := kernel.NewUUID()

	existing, err := cart.NewCart(kernel.NewUUID(), customerID)
	require.NoError(t, err)
	require.NoError(t, existing.AddItem(oldRestaurantID, cart.Item{
		MenuItemID: kernel.NewUUID(),
		Name:       "Com Tam",
		UnitPrice:  kernel.NewMoneyFromUnits(55_000),
		Quantity:   1,
	}))

	cmd, err := commands.NewAddToCartCommand(customerID, newRestaurantID, menuItemID, 1, "")
	require.NoError(t, err)

	gateway := new(MockRestaurantGateway)
	cartRepo := new(MockCartRepository)
	uow := new(MockUoW)

	gateway.On("GetMenuItem", ctx, menuItemID).Return(availableMenuItem(menuItemID), nil).Once()
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("CartRepository").Return(cartRepo)
	cartRepo.On("GetByCustomer", ctx, customerID).Return(existing, nil).Once()
	cartRepo.On("Save", ctx, existing).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockCartUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAddToCartCommandHandler(factory, gateway)
	require.NoError(t, handler.Handle(ctx, cmd))

	require.Len(t, existing.Items(), 1)
	assert.Equal(t, "Banh Mi", existing.Items()[0].Name)
	require.NotNil(t, existing.RestaurantID())
	assert.True(t, newRestaurantID.IsEqual(*existing.RestaurantID()))
}

func TestAddToCartCommandHandler_Handle_UnavailableItem(t *testing.T) {
	ctx := t.Context()
	menuItemID := kernel.NewUUID()
	cmd, err := commands.NewAddToCartCommand(kernel.NewUUID(), kernel.NewUUID(), menuItemID, 1, "")
	require.NoError(t, err)

	unavailable := availableMenuItem(menuItemID)
	unavailable.IsAvailable = false

	gateway := new(MockRestaurantGateway)
	gateway.On("GetMenuItem", ctx, menuItemID).Return(unavailable, nil).Once()

	factory := new(MockCartUoWFactory)

	handler := commands.NewAddToCartCommandHandler(factory, gateway)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrMenuItemUnavailable)
	factory.AssertNotCalled(t, "Create")
}
