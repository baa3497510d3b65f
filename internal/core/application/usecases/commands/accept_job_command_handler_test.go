package commands_test

import (
	"testing"

	"fooddelivery/internal/core/application/usecases/commands"
	"fooddelivery/internal/core/domain/model/driver"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewAcceptJobCommand(t *testing.T) {
	t.Run("should require the driver role", func(t *testing.T) {
		customer, err := kernel.NewActor(kernel.NewUUID(), kernel.RoleCustomer)
		require.NoError(t, err)

		_, err = commands.NewAcceptJobCommand(kernel.NewUUID(), customer)

		require.ErrorIs(t, err, errs.ErrForbidden)
	})

	t.Run("zero value should fail validation", func(t *testing.T) {
		cmd := commands.AcceptJobCommand{}

		require.ErrorIs(t, cmd.Validate(), commands.ErrAcceptJobCommandIsNotConstructed)
	})
}

func TestAcceptJobCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	driverID := kernel.NewUUID()
	actor := driverActorFor(t, driverID)
	testOrder := orderInStatus(t, order.ReadyForPickup, kernel.NewUUID(), kernel.NewUUID(), nil)
	testDriver := matchableTestDriver(t, driverID)

	cmd, err := commands.NewAcceptJobCommand(testOrder.ID(), actor)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	driverRepo := new(MockDriverRepository)
	publisher := new(MockEventPublisher)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("DriverRepository").Return(driverRepo)
	uow.On("OrderRepository").Return(orderRepo)
	driverRepo.On("Get", ctx, driverID).Return(testDriver, nil).Once()
	orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once()
	orderRepo.On("AssignDriver", ctx, testOrder).Return(nil).Once()
	driverRepo.On("Update", ctx, testDriver).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	publisher.On("Publish", ctx, mock.AnythingOfType("[]order.Event")).Return(nil).Once()

	factory := new(MockOrderDriverUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAcceptJobCommandHandler(factory, publisher)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.PickedUp, testOrder.Status())
	require.NotNil(t, testOrder.DriverID())
	assert.True(t, driverID.IsEqual(*testOrder.DriverID()))
	assert.Equal(t, driver.Busy, testDriver.Status())
	orderRepo.AssertExpectations(t)
	driverRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestAcceptJobCommandHandler_Handle_RaceLoser(t *testing.T) {
	ctx := t.Context()
	driverID := kernel.NewUUID()
	actor := driverActorFor(t, driverID)
	testOrder := orderInStatus(t, order.ReadyForPickup, kernel.NewUUID(), kernel.NewUUID(), nil)
	testDriver := matchableTestDriver(t, driverID)

	cmd, err := commands.NewAcceptJobCommand(testOrder.ID(), actor)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	driverRepo := new(MockDriverRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("DriverRepository").Return(driverRepo)
	uow.On("OrderRepository").Return(orderRepo)
	driverRepo.On("Get", ctx, driverID).Return(testDriver, nil).Once()
	orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once()
	orderRepo.On("AssignDriver", ctx, testOrder).Return(order.ErrAlreadyAssigned).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderDriverUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAcceptJobCommandHandler(factory, new(MockEventPublisher))
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, order.ErrAlreadyAssigned)
	driverRepo.AssertNotCalled(t, "Update", ctx, mock.Anything)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestAcceptJobCommandHandler_Handle_AlreadyAssignedInMemory(t *testing.T) {
	ctx := t.Context()
	driverID := kernel.NewUUID()
	otherDriverID := kernel.NewUUID()
	actor := driverActorFor(t, driverID)
	testOrder := orderInStatus(t, order.PickedUp, kernel.NewUUID(), kernel.NewUUID(), &otherDriverID)
	testDriver := matchableTestDriver(t, driverID)

	cmd, err := commands.NewAcceptJobCommand(testOrder.ID(), actor)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	driverRepo := new(MockDriverRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("DriverRepository").Return(driverRepo)
	uow.On("OrderRepository").Return(orderRepo)
	driverRepo.On("Get", ctx, driverID).Return(testDriver, nil).Once()
	orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderDriverUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAcceptJobCommandHandler(factory, new(MockEventPublisher))
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, order.ErrAlreadyAssigned)
	orderRepo.AssertNotCalled(t, "AssignDriver", ctx, mock.Anything)
}

func TestAcceptJobCommandHandler_Handle_DriverNotAvailable(t *testing.T) {
	ctx := t.Context()
	driverID := kernel.NewUUID()
	actor := driverActorFor(t, driverID)
	testOrder := orderInStatus(t, order.ReadyForPickup, kernel.NewUUID(), kernel.NewUUID(), nil)

	offlineDriver := matchableTestDriver(t, driverID)
	require.NoError(t, offlineDriver.GoOffline())

	cmd, err := commands.NewAcceptJobCommand(testOrder.ID(), actor)
	require.NoError(t, err)

	driverRepo := new(MockDriverRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("DriverRepository").Return(driverRepo)
	driverRepo.On("Get", ctx, driverID).Return(offlineDriver, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderDriverUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAcceptJobCommandHandler(factory, new(MockEventPublisher))
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrForbidden)
}
