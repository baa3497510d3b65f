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

func TestCompleteDeliveryCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	driverID := kernel.NewUUID()
	actor := driverActorFor(t, driverID)
	testOrder := orderInStatus(t, order.Delivering, kernel.NewUUID(), kernel.NewUUID(), &driverID)

	busyDriver := matchableTestDriver(t, driverID)
	require.NoError(t, busyDriver.MarkBusy())

	cmd, err := commands.NewCompleteDeliveryCommand(testOrder.ID(), actor)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	driverRepo := new(MockDriverRepository)
	publisher := new(MockEventPublisher)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("DriverRepository").Return(driverRepo)
	orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once()
	orderRepo.On("Update", ctx, testOrder).Return(nil).Once()
	driverRepo.On("Get", ctx, driverID).Return(busyDriver, nil).Once()
	driverRepo.On("AddEarning", ctx, mock.AnythingOfType("driver.Earning")).Return(nil).Once()
	driverRepo.On("Update", ctx, busyDriver).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	publisher.On("Publish", ctx, mock.AnythingOfType("[]order.Event")).Return(nil).Once()

	factory := new(MockOrderDriverUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCompleteDeliveryCommandHandler(factory, publisher)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Delivered, testOrder.Status())

	// Total is 148_000: 15% plus the 10_000 base makes 32_200.
	expectedPayout := kernel.NewMoneyFromUnits(32_200)
	assert.True(t, busyDriver.Wallet().IsEqual(expectedPayout))
	assert.Equal(t, 1, busyDriver.TotalDeliveries())
	assert.Equal(t, driver.Busy, busyDriver.Status())

	recorded := driverRepo.Calls[1].Arguments.Get(1).(driver.Earning)
	assert.Equal(t, driver.EarningDelivery, recorded.Type())
	assert.True(t, recorded.Amount().IsEqual(expectedPayout))
	require.NotNil(t, recorded.OrderID())
	assert.True(t, testOrder.ID().IsEqual(*recorded.OrderID()))

	orderRepo.AssertExpectations(t)
	driverRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestCompleteDeliveryCommandHandler_Handle_SettlesCashPayment(t *testing.T) {
	ctx := t.Context()
	driverID := kernel.NewUUID()
	actor := driverActorFor(t, driverID)
	testOrder := orderInStatus(t, order.Delivering, kernel.NewUUID(), kernel.NewUUID(), &driverID)
	busyDriver := matchableTestDriver(t, driverID)
	require.NoError(t, busyDriver.MarkBusy())

	cmd, err := commands.NewCompleteDeliveryCommand(testOrder.ID(), actor)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	driverRepo := new(MockDriverRepository)
	publisher := new(MockEventPublisher)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("DriverRepository").Return(driverRepo)
	orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once()
	orderRepo.On("Update", ctx, testOrder).Return(nil).Once()
	driverRepo.On("Get", ctx, driverID).Return(busyDriver, nil).Once()
	driverRepo.On("AddEarning", ctx, mock.Anything).Return(nil).Once()
	driverRepo.On("Update", ctx, busyDriver).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	publisher.On("Publish", ctx, mock.Anything).Return(nil).Once()

	factory := new(MockOrderDriverUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCompleteDeliveryCommandHandler(factory, publisher)
	require.NoError(t, handler.Handle(ctx, cmd))

	// The fixture pays cash, so delivery settles the payment.
	assert.Equal(t, order.PaymentPaid, testOrder.PaymentStatus())
}

func TestCompleteDeliveryCommandHandler_Handle_WrongDriver(t *testing.T) {
	ctx := t.Context()
	assignedDriverID := kernel.NewUUID()
	otherDriverID := kernel.NewUUID()
	actor := driverActorFor(t, otherDriverID)
	testOrder := orderInStatus(t, order.Delivering, kernel.NewUUID(), kernel.NewUUID(), &assignedDriverID)

	cmd, err := commands.NewCompleteDeliveryCommand(testOrder.ID(), actor)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	driverRepo := new(MockDriverRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo)
	orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderDriverUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCompleteDeliveryCommandHandler(factory, new(MockEventPublisher))
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrForbidden)
	driverRepo.AssertNotCalled(t, "AddEarning", ctx, mock.Anything)
	uow.AssertNotCalled(t, "Commit", ctx)
}
