package commands_test

import (
	"errors"
	"testing"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func onlineCheckoutCmd(t *testing.T) commands.CheckoutOnlineCommand {
	t.Helper()
	cmd, err := commands.NewCheckoutOnlineCommand(kernel.NewUUID(), "", "sess-1", "A", "0900", "Addr", "")
	require.NoError(t, err)
	return cmd
}

func TestCheckoutOnlineCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd := onlineCheckoutCmd(t)

	cartItems := []ports.CartItem{
		{ProductID: kernel.NewUUID(), ProductName: "Milk tea", UnitPrice: 45000, Quantity: 2},
		{ProductID: kernel.NewUUID(), ProductName: "Topping", UnitPrice: 10000, Quantity: 1},
	}

	orderRepo := new(MockOrderRepository)
	cartRepo := new(MockCartRepository)
	uow := new(MockCheckoutUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CartRepository").Return(cartRepo).Once(),
		cartRepo.On("GetItems", mock.Anything, "sess-1").Return(cartItems, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCheckoutUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCheckoutOnlineCommandHandler(factory)
	created, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, order.PaymentOnline, created.PaymentMethod())
	assert.Equal(t, order.PaymentPending, created.PaymentStatus())
	assert.Equal(t, order.StatusPending, created.Status())
	assert.Equal(t, int64(45000*2+10000), created.Total())
	orderRepo.AssertExpectations(t)
	cartRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCheckoutOnlineCommandHandler_Handle_EmptyCart(t *testing.T) {
	ctx := t.Context()
	cmd := onlineCheckoutCmd(t)

	cartRepo := new(MockCartRepository)
	uow := new(MockCheckoutUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CartRepository").Return(cartRepo).Once(),
		cartRepo.On("GetItems", mock.Anything, "sess-1").Return([]ports.CartItem{}, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCheckoutUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCheckoutOnlineCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrCartIsEmpty)
	uow.AssertExpectations(t)
}

func TestCheckoutOnlineCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	factory := new(MockCheckoutUoWFactory)
	h := commands.NewCheckoutOnlineCommandHandler(factory)

	_, err := h.Handle(ctx, commands.CheckoutOnlineCommand{})
	require.Error(t, err)
}

func TestCheckoutOnlineCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	cmd := onlineCheckoutCmd(t)

	cartItems := []ports.CartItem{
		{ProductID: kernel.NewUUID(), ProductName: "Milk tea", UnitPrice: 45000, Quantity: 2},
	}

	orderRepo := new(MockOrderRepository)
	cartRepo := new(MockCartRepository)
	uow := new(MockCheckoutUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CartRepository").Return(cartRepo).Once(),
		cartRepo.On("GetItems", mock.Anything, "sess-1").Return(cartItems, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(errors.New("add error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCheckoutUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCheckoutOnlineCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	uow.AssertExpectations(t)
}
