package order_test

import (
	"testing"

	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaymentMethod_Validate(t *testing.T) {
	t.Run("should validate Online and COD", func(t *testing.T) {
		require.NoError(t, order.PaymentOnline.Validate())
		require.NoError(t, order.PaymentCOD.Validate())
	})

	t.Run("should reject Unknown and out-of-range values", func(t *testing.T) {
		require.Error(t, order.PaymentMethodUnknown.Validate())
		require.Error(t, order.PaymentMethod(7).Validate())
	})
}

func TestPaymentStatus_MarkPaid(t *testing.T) {
	t.Run("should confirm from Pending", func(t *testing.T) {
		newStatus, err := order.PaymentPending.MarkPaid()

		require.NoError(t, err)
		assert.Equal(t, order.Paid, newStatus)
	})

	t.Run("should reject from settled and failed statuses", func(t *testing.T) {
		for _, status := range []order.PaymentStatus{
			order.Paid,
			order.CODPaid,
			order.PaymentFailed,
			order.Refunded,
			order.PaymentStatusUnknown,
		} {
			_, err := status.MarkPaid()
			require.Error(t, err, "confirm from %s must fail", status)
			require.ErrorIs(t, err, errs.ErrInvalidState)
		}
	})
}

func TestPaymentStatus_MarkCODPaid(t *testing.T) {
	t.Run("should commit from Pending", func(t *testing.T) {
		newStatus, err := order.PaymentPending.MarkCODPaid()

		require.NoError(t, err)
		assert.Equal(t, order.CODPaid, newStatus)
	})

	t.Run("should reject double commitment", func(t *testing.T) {
		_, err := order.CODPaid.MarkCODPaid()
		require.Error(t, err)
	})
}

func TestPaymentStatus_MarkFailed(t *testing.T) {
	t.Run("should fail from Pending", func(t *testing.T) {
		newStatus, err := order.PaymentPending.MarkFailed()

		require.NoError(t, err)
		assert.Equal(t, order.PaymentFailed, newStatus)
	})

	t.Run("should not fail an already-settled payment", func(t *testing.T) {
		for _, status := range []order.PaymentStatus{order.Paid, order.CODPaid} {
			_, err := status.MarkFailed()
			require.Error(t, err)
		}
	})
}

func TestPaymentStatus_IsSettled(t *testing.T) {
	assert.True(t, order.Paid.IsSettled())
	assert.True(t, order.CODPaid.IsSettled())
	assert.False(t, order.PaymentPending.IsSettled())
	assert.False(t, order.PaymentFailed.IsSettled())
	assert.False(t, order.Refunded.IsSettled())
}

func TestPaymentStatusFromString(t *testing.T) {
	t.Run("should parse all valid names", func(t *testing.T) {
		cases := map[string]order.PaymentStatus{
			"Pending":  order.PaymentPending,
			"Paid":     order.Paid,
			"CODPaid":  order.CODPaid,
			"Failed":   order.PaymentFailed,
			"Refunded": order.Refunded,
		}

		for name, want := range cases {
			got, err := order.PaymentStatusFromString(name)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		}
	})

	t.Run("should reject unknown names", func(t *testing.T) {
		_, err := order.PaymentStatusFromString("Settled")
		require.Error(t, err)
	})
}
