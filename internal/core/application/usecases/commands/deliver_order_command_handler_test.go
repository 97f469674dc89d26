package commands_test

import (
	"testing"
	"time"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDeliverOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	shipperID := kernel.NewUUID()
	aggregate := makeCODOrder(t, orderID)
	require.NoError(t, aggregate.AcceptByShipper(shipperID, time.Now()))

	cmd, err := commands.NewDeliverOrderCommand(orderID, shipperID)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, orderID).Return(aggregate, nil).Once(),
		orderRepo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeliverOrderCommandHandler(factory)
	delivered, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.StatusDelivered, delivered.Status())
	require.NotNil(t, delivered.DeliveredAt())
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestDeliverOrderCommandHandler_Handle_BackfillsShipper(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	shipperID := kernel.NewUUID()
	aggregate := makeOnlineOrder(t, orderID)
	require.NoError(t, aggregate.OverrideStatus(order.StatusApproved, time.Now()))

	cmd, err := commands.NewDeliverOrderCommand(orderID, shipperID)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, orderID).Return(aggregate, nil).Once(),
		orderRepo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeliverOrderCommandHandler(factory)
	delivered, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, delivered.Shipper())
	assert.True(t, delivered.Shipper().IsEqual(shipperID))
	uow.AssertExpectations(t)
}

func TestDeliverOrderCommandHandler_Handle_PendingOrder(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	aggregate := makeCODOrder(t, orderID)

	cmd, err := commands.NewDeliverOrderCommand(orderID, kernel.NewUUID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, orderID).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeliverOrderCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrInvalidState)
	orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}
