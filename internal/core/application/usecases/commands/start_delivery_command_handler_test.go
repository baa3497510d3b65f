package commands_test

import (
	"testing"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestStartDeliveryCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	driverID := kernel.NewUUID()
	actor := driverActorFor(t, driverID)
	testOrder := orderInStatus(t, order.PickedUp, kernel.NewUUID(), kernel.NewUUID(), &driverID)

	cmd, err := commands.NewStartDeliveryCommand(testOrder.ID(), actor)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	publisher := new(MockEventPublisher)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo)
	orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once()
	orderRepo.On("Update", ctx, testOrder).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	publisher.On("Publish", ctx, mock.AnythingOfType("[]order.Event")).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewStartDeliveryCommandHandler(factory, publisher)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Delivering, testOrder.Status())
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestStartDeliveryCommandHandler_Handle_NotAssignedDriver(t *testing.T) {
	ctx := t.Context()
	assignedDriverID := kernel.NewUUID()
	actor := driverActorFor(t, kernel.NewUUID())
	testOrder := orderInStatus(t, order.PickedUp, kernel.NewUUID(), kernel.NewUUID(), &assignedDriverID)

	cmd, err := commands.NewStartDeliveryCommand(testOrder.ID(), actor)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo)
	orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewStartDeliveryCommandHandler(factory, new(MockEventPublisher))
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrForbidden)
	assert.Equal(t, order.PickedUp, testOrder.Status())
	uow.AssertNotCalled(t, "Commit", ctx)
}
