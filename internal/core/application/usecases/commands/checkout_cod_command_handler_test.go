package commands_test

import (
	"testing"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/model/product"
	"storefront/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func codCheckoutCmd(t *testing.T) commands.CheckoutCODCommand {
	t.Helper()
	cmd, err := commands.NewCheckoutCODCommand(kernel.NewUUID(), "user-1", "", "A", "0900", "Addr", "")
	require.NoError(t, err)
	return cmd
}

func TestCheckoutCODCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd := codCheckoutCmd(t)

	productA := kernel.NewUUID()
	productB := kernel.NewUUID()
	cartItems := []ports.CartItem{
		{ProductID: productA, ProductName: "Milk tea", UnitPrice: 45000, Quantity: 2},
		{ProductID: productB, ProductName: "Topping", UnitPrice: 10000, Quantity: 1},
	}

	orderRepo := new(MockOrderRepository)
	inventoryRepo := new(MockInventoryRepository)
	cartRepo := new(MockCartRepository)
	uow := new(MockCheckoutUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CartRepository").Return(cartRepo).Once(),
		cartRepo.On("GetItems", mock.Anything, "user-1").Return(cartItems, nil).Once(),
		uow.On("InventoryRepository").Return(inventoryRepo).Once(),
		inventoryRepo.On("DecrementStock", mock.Anything, productA, 2).Return(nil).Once(),
		inventoryRepo.On("DecrementStock", mock.Anything, productB, 1).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("CartRepository").Return(cartRepo).Once(),
		cartRepo.On("Clear", mock.Anything, "user-1").Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCheckoutUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCheckoutCODCommandHandler(factory)
	created, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, order.PaymentCOD, created.PaymentMethod())
	assert.Equal(t, order.CODPaid, created.PaymentStatus())
	assert.Equal(t, order.StatusPending, created.Status())
	require.NotNil(t, created.PaidAt())
	orderRepo.AssertExpectations(t)
	inventoryRepo.AssertExpectations(t)
	cartRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCheckoutCODCommandHandler_Handle_InsufficientStock(t *testing.T) {
	ctx := t.Context()
	cmd := codCheckoutCmd(t)

	productA := kernel.NewUUID()
	productB := kernel.NewUUID()
	cartItems := []ports.CartItem{
		{ProductID: productA, ProductName: "Milk tea", UnitPrice: 45000, Quantity: 2},
		{ProductID: productB, ProductName: "Topping", UnitPrice: 10000, Quantity: 5},
	}

	inventoryRepo := new(MockInventoryRepository)
	cartRepo := new(MockCartRepository)
	uow := new(MockCheckoutUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CartRepository").Return(cartRepo).Once(),
		cartRepo.On("GetItems", mock.Anything, "user-1").Return(cartItems, nil).Once(),
		uow.On("InventoryRepository").Return(inventoryRepo).Once(),
		inventoryRepo.On("DecrementStock", mock.Anything, productA, 2).Return(nil).Once(),
		inventoryRepo.On("DecrementStock", mock.Anything, productB, 5).Return(product.ErrInsufficientStock).Once(),
		inventoryRepo.On("IncrementStock", mock.Anything, productA, 2).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCheckoutUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCheckoutCODCommandHandler(factory)
	created, err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, product.ErrInsufficientStock)
	assert.Nil(t, created)
	inventoryRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestCheckoutCODCommandHandler_Handle_EmptyCart(t *testing.T) {
	ctx := t.Context()
	cmd := codCheckoutCmd(t)

	cartRepo := new(MockCartRepository)
	uow := new(MockCheckoutUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CartRepository").Return(cartRepo).Once(),
		cartRepo.On("GetItems", mock.Anything, "user-1").Return(nil, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCheckoutUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCheckoutCODCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrCartIsEmpty)
	uow.AssertExpectations(t)
}
