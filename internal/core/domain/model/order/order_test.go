package order_test

import (
	"testing"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustLineItem(t *testing.T, name string, unitPrice int64, qty int) order.LineItem {
	t.Helper()
	item, err := order.NewLineItem(kernel.NewUUID(), name, unitPrice, qty)
	require.NoError(t, err)
	return item
}

func mustRecipient(t *testing.T) order.Recipient {
	t.Helper()
	r, err := order.NewRecipient("Nguyen Van A", "0900000000", "12 Ly Thuong Kiet, Hanoi", "leave at door")
	require.NoError(t, err)
	return r
}

func newTestOrder(t *testing.T, method order.PaymentMethod, items ...order.LineItem) *order.Order {
	t.Helper()
	if len(items) == 0 {
		items = []order.LineItem{mustLineItem(t, "Milk tea", 45000, 2)}
	}
	o, err := order.NewOrder(kernel.NewUUID(), "", "session_abc", mustRecipient(t), items, method, time.Now())
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("should create pending order with frozen total", func(t *testing.T) {
		items := []order.LineItem{
			mustLineItem(t, "Milk tea", 45000, 2),
			mustLineItem(t, "Brown sugar topping", 10000, 3),
		}

		o, err := order.NewOrder(kernel.NewUUID(), "user-1", "", mustRecipient(t), items, order.PaymentOnline, time.Now())

		require.NoError(t, err)
		assert.Equal(t, order.StatusPending, o.Status())
		assert.Equal(t, order.PaymentPending, o.PaymentStatus())
		assert.Equal(t, int64(45000*2+10000*3), o.Total())
		assert.NotEmpty(t, o.OrderNumber())
		assert.Empty(t, o.TransactionID())
		assert.Nil(t, o.Shipper())
		assert.Nil(t, o.PaidAt())
		assert.Nil(t, o.DeliveredAt())
	})

	t.Run("total snapshots the unit price at creation", func(t *testing.T) {
		o := newTestOrder(t, order.PaymentOnline, mustLineItem(t, "P1", 100000, 2))

		assert.Equal(t, int64(200000), o.Total())
		items := o.Items()
		require.Len(t, items, 1)
		assert.Equal(t, int64(100000), items[0].UnitPrice())
	})

	t.Run("should require an owner identity", func(t *testing.T) {
		items := []order.LineItem{mustLineItem(t, "Milk tea", 45000, 1)}
		_, err := order.NewOrder(kernel.NewUUID(), "", "", mustRecipient(t), items, order.PaymentOnline, time.Now())

		require.ErrorIs(t, err, order.ErrOwnerIsRequired)
	})

	t.Run("should require at least one line item", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), "user-1", "", mustRecipient(t), nil, order.PaymentOnline, time.Now())

		require.ErrorIs(t, err, order.ErrNoLineItems)
	})

	t.Run("should require complete recipient for cash-on-delivery", func(t *testing.T) {
		items := []order.LineItem{mustLineItem(t, "Milk tea", 45000, 1)}
		draft := order.NewDraftRecipient("", "", "", "")

		_, err := order.NewOrder(kernel.NewUUID(), "user-1", "", draft, items, order.PaymentCOD, time.Now())

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should allow draft recipient for online placeholder", func(t *testing.T) {
		items := []order.LineItem{mustLineItem(t, "Milk tea", 45000, 1)}
		draft := order.NewDraftRecipient("", "", "", "")

		o, err := order.NewOrder(kernel.NewUUID(), "", "session_abc", draft, items, order.PaymentOnline, time.Now())

		require.NoError(t, err)
		assert.False(t, o.Recipient().IsComplete())
	})

	t.Run("zero value order fails validation", func(t *testing.T) {
		var o order.Order
		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestOrder_OwnerIdentity(t *testing.T) {
	t.Run("session id is authoritative until a user is assigned", func(t *testing.T) {
		o := newTestOrder(t, order.PaymentOnline)
		assert.Equal(t, "session_abc", o.OwnerIdentity())

		require.NoError(t, o.AssignUser("user-9"))
		assert.Equal(t, "user-9", o.OwnerIdentity())
		assert.Equal(t, "session_abc", o.SessionID())
	})

	t.Run("rejects empty user id", func(t *testing.T) {
		o := newTestOrder(t, order.PaymentOnline)
		require.Error(t, o.AssignUser(""))
	})
}

func TestOrder_MarkPaid(t *testing.T) {
	t.Run("should settle a pending online payment", func(t *testing.T) {
		o := newTestOrder(t, order.PaymentOnline)
		paidAt := time.Now()

		err := o.MarkPaid("VNP123456", paidAt)

		require.NoError(t, err)
		assert.Equal(t, order.Paid, o.PaymentStatus())
		assert.Equal(t, order.StatusPending, o.Status(), "order still awaits approval")
		assert.Equal(t, "VNP123456", o.TransactionID())
		require.NotNil(t, o.PaidAt())
		assert.Equal(t, paidAt, *o.PaidAt())
	})

	t.Run("should reject double confirmation", func(t *testing.T) {
		o := newTestOrder(t, order.PaymentOnline)
		require.NoError(t, o.MarkPaid("VNP1", time.Now()))

		err := o.MarkPaid("VNP2", time.Now())

		require.ErrorIs(t, err, errs.ErrInvalidState)
		assert.Equal(t, "VNP1", o.TransactionID())
	})

	t.Run("should reject confirmation of a COD order", func(t *testing.T) {
		o := newTestOrder(t, order.PaymentCOD)
		require.ErrorIs(t, o.MarkPaid("VNP1", time.Now()), errs.ErrInvalidState)
	})

	t.Run("should require a transaction id", func(t *testing.T) {
		o := newTestOrder(t, order.PaymentOnline)
		require.ErrorIs(t, o.MarkPaid("", time.Now()), errs.ErrValueIsRequired)
	})
}

func TestOrder_MarkPaymentFailed(t *testing.T) {
	t.Run("should cancel the order and clear payment references", func(t *testing.T) {
		o := newTestOrder(t, order.PaymentOnline)

		err := o.MarkPaymentFailed(time.Now())

		require.NoError(t, err)
		assert.Equal(t, order.StatusCancelled, o.Status())
		assert.Equal(t, order.PaymentFailed, o.PaymentStatus())
		assert.Empty(t, o.TransactionID())
		assert.Nil(t, o.PaidAt())
	})

	t.Run("should reject failing an already-paid order", func(t *testing.T) {
		o := newTestOrder(t, order.PaymentOnline)
		require.NoError(t, o.MarkPaid("VNP1", time.Now()))

		require.Error(t, o.MarkPaymentFailed(time.Now()))
		assert.Equal(t, order.Paid, o.PaymentStatus())
	})
}

func TestOrder_CommitCOD(t *testing.T) {
	t.Run("should settle at creation time", func(t *testing.T) {
		o := newTestOrder(t, order.PaymentCOD)

		err := o.CommitCOD(time.Now())

		require.NoError(t, err)
		assert.Equal(t, order.CODPaid, o.PaymentStatus())
		assert.Equal(t, order.StatusPending, o.Status())
		require.NotNil(t, o.PaidAt())
	})

	t.Run("should reject for online orders", func(t *testing.T) {
		o := newTestOrder(t, order.PaymentOnline)
		require.ErrorIs(t, o.CommitCOD(time.Now()), errs.ErrInvalidState)
	})
}

func TestOrder_ShipperWorkflow(t *testing.T) {
	shipperID := kernel.NewUUID()

	t.Run("accept then deliver", func(t *testing.T) {
		o := newTestOrder(t, order.PaymentCOD)
		require.NoError(t, o.CommitCOD(time.Now()))

		require.NoError(t, o.AcceptByShipper(shipperID, time.Now()))
		assert.Equal(t, order.StatusShipping, o.Status())
		require.NotNil(t, o.Shipper())
		assert.True(t, o.Shipper().IsEqual(shipperID))

		require.NoError(t, o.MarkDelivered(shipperID, time.Now()))
		assert.Equal(t, order.StatusDelivered, o.Status())
		require.NotNil(t, o.DeliveredAt())
	})

	t.Run("cannot deliver straight from Pending", func(t *testing.T) {
		o := newTestOrder(t, order.PaymentCOD)

		err := o.MarkDelivered(shipperID, time.Now())

		require.ErrorIs(t, err, errs.ErrInvalidState)
		assert.Equal(t, order.StatusPending, o.Status())
	})

	t.Run("delivery backfills the shipper when unset", func(t *testing.T) {
		o := newTestOrder(t, order.PaymentOnline)
		require.NoError(t, o.OverrideStatus(order.StatusApproved, time.Now()))

		require.NoError(t, o.MarkDelivered(shipperID, time.Now()))
		require.NotNil(t, o.Shipper())
		assert.True(t, o.Shipper().IsEqual(shipperID))
	})

	t.Run("cannot accept a delivered order", func(t *testing.T) {
		o := newTestOrder(t, order.PaymentCOD)
		require.NoError(t, o.CommitCOD(time.Now()))
		require.NoError(t, o.AcceptByShipper(shipperID, time.Now()))
		require.NoError(t, o.MarkDelivered(shipperID, time.Now()))

		require.ErrorIs(t, o.AcceptByShipper(shipperID, time.Now()), errs.ErrInvalidState)
	})
}

func TestOrder_ConfirmCODDelivered(t *testing.T) {
	shipperID := kernel.NewUUID()

	t.Run("should deliver a shipping COD order", func(t *testing.T) {
		o := newTestOrder(t, order.PaymentCOD)
		require.NoError(t, o.CommitCOD(time.Now()))
		require.NoError(t, o.AcceptByShipper(shipperID, time.Now()))

		require.NoError(t, o.ConfirmCODDelivered(time.Now()))
		assert.Equal(t, order.StatusDelivered, o.Status())
		assert.Equal(t, order.CODPaid, o.PaymentStatus())
	})

	t.Run("should reject when not shipping", func(t *testing.T) {
		o := newTestOrder(t, order.PaymentCOD)
		require.NoError(t, o.CommitCOD(time.Now()))

		require.ErrorIs(t, o.ConfirmCODDelivered(time.Now()), errs.ErrInvalidState)
	})

	t.Run("should reject for online orders", func(t *testing.T) {
		o := newTestOrder(t, order.PaymentOnline)
		require.NoError(t, o.MarkPaid("VNP1", time.Now()))
		require.NoError(t, o.AcceptByShipper(shipperID, time.Now()))

		require.ErrorIs(t, o.ConfirmCODDelivered(time.Now()), errs.ErrInvalidState)
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("round trip preserves the frozen total", func(t *testing.T) {
		original := newTestOrder(t, order.PaymentOnline, mustLineItem(t, "P1", 100000, 2))

		restored, err := order.RestoreOrder(
			original.ID(),
			original.OrderNumber(),
			original.UserID(),
			original.SessionID(),
			original.Recipient(),
			original.Items(),
			original.Total(),
			original.Status(),
			original.PaymentMethod(),
			original.PaymentStatus(),
			original.TransactionID(),
			original.Shipper(),
			original.CreatedAt(),
			original.UpdatedAt(),
			original.PaidAt(),
			original.DeliveredAt(),
		)

		require.NoError(t, err)
		assert.True(t, restored.IsEqual(original))
		assert.Equal(t, int64(200000), restored.Total())
		assert.Equal(t, original.OrderNumber(), restored.OrderNumber())
	})

	t.Run("rejects invalid stored state", func(t *testing.T) {
		o := newTestOrder(t, order.PaymentOnline)

		_, err := order.RestoreOrder(
			o.ID(), o.OrderNumber(), o.UserID(), o.SessionID(), o.Recipient(), o.Items(), o.Total(),
			order.StatusUnknown, o.PaymentMethod(), o.PaymentStatus(), "", nil,
			o.CreatedAt(), o.UpdatedAt(), nil, nil,
		)

		require.Error(t, err)
	})
}
