package commands_test

import (
	"context"
	"net/url"
	"testing"
	"time"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/model/product"
	"storefront/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}
func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}
func (m *MockOrderRepository) GetByNumber(ctx context.Context, number string) (*order.Order, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}
func (m *MockOrderRepository) ClaimPayment(ctx context.Context, id kernel.UUID, txnID string, paidAt time.Time) (bool, error) {
	args := m.Called(ctx, id, txnID, paidAt)
	return args.Bool(0), args.Error(1)
}
func (m *MockOrderRepository) GetStalePendingPayments(ctx context.Context, cutoff time.Time, limit int) ([]*order.Order, error) {
	args := m.Called(ctx, cutoff, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockInventoryRepository struct{ mock.Mock }

func (m *MockInventoryRepository) GetProduct(ctx context.Context, id kernel.UUID) (*product.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}
func (m *MockInventoryRepository) DecrementStock(ctx context.Context, id kernel.UUID, quantity int) error {
	args := m.Called(ctx, id, quantity)
	return args.Error(0)
}
func (m *MockInventoryRepository) IncrementStock(ctx context.Context, id kernel.UUID, quantity int) error {
	args := m.Called(ctx, id, quantity)
	return args.Error(0)
}

type MockCartRepository struct{ mock.Mock }

func (m *MockCartRepository) GetItems(ctx context.Context, owner string) ([]ports.CartItem, error) {
	args := m.Called(ctx, owner)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ports.CartItem), args.Error(1)
}
func (m *MockCartRepository) Clear(ctx context.Context, owner string) error {
	args := m.Called(ctx, owner)
	return args.Error(0)
}

type MockPaymentGateway struct{ mock.Mock }

func (m *MockPaymentGateway) BuildRedirectURL(req ports.PaymentRequest) (string, error) {
	args := m.Called(req)
	return args.String(0), args.Error(1)
}
func (m *MockPaymentGateway) ParseCallback(params url.Values) (ports.PaymentCallback, error) {
	args := m.Called(params)
	return args.Get(0).(ports.PaymentCallback), args.Error(1)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockCheckoutUoW struct{ mock.Mock }

func (m *MockCheckoutUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockCheckoutUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockCheckoutUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockCheckoutUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}
func (m *MockCheckoutUoW) InventoryRepository() ports.InventoryRepository {
	args := m.Called()
	return args.Get(0).(ports.InventoryRepository)
}
func (m *MockCheckoutUoW) CartRepository() ports.CartRepository {
	args := m.Called()
	return args.Get(0).(ports.CartRepository)
}

type MockCheckoutUoWFactory struct{ mock.Mock }

func (m *MockCheckoutUoWFactory) Create() commands.CheckoutUoW {
	args := m.Called()
	return args.Get(0).(commands.CheckoutUoW)
}

// Aggregate helpers shared by the handler tests below.

func makeRecipient(t *testing.T) order.Recipient {
	t.Helper()
	r, err := order.NewRecipient("Nguyen Van A", "0900000000", "12 Ly Thuong Kiet, Hanoi", "")
	require.NoError(t, err)
	return r
}

func makeLineItem(t *testing.T, productID kernel.UUID, unitPrice int64, qty int) order.LineItem {
	t.Helper()
	item, err := order.NewLineItem(productID, "Milk tea", unitPrice, qty)
	require.NoError(t, err)
	return item
}

func makeOnlineOrder(t *testing.T, id kernel.UUID, items ...order.LineItem) *order.Order {
	t.Helper()
	if len(items) == 0 {
		items = []order.LineItem{makeLineItem(t, kernel.NewUUID(), 45000, 2)}
	}
	o, err := order.NewOrder(id, "user-1", "sess-1", makeRecipient(t), items, order.PaymentOnline, time.Now())
	require.NoError(t, err)
	return o
}

func makeCODOrder(t *testing.T, id kernel.UUID) *order.Order {
	t.Helper()
	items := []order.LineItem{makeLineItem(t, kernel.NewUUID(), 45000, 2)}
	o, err := order.NewOrder(id, "user-1", "", makeRecipient(t), items, order.PaymentCOD, time.Now())
	require.NoError(t, err)
	require.NoError(t, o.CommitCOD(time.Now()))
	return o
}
