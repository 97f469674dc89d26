package queries_test

import (
	"testing"

	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetOrderQuery(t *testing.T) {
	id := kernel.NewUUID()
	query, err := queries.NewGetOrderQuery(id)
	require.NoError(t, err)
	assert.Equal(t, id, query.OrderID())

	_, err = queries.NewGetOrderQuery(kernel.UUID{})
	require.Error(t, err)

	err = queries.GetOrderQuery{}.Validate()
	assert.ErrorIs(t, err, queries.ErrGetOrderQueryIsNotConstructed)
}

func TestNewGetOrderByNumberQuery(t *testing.T) {
	query, err := queries.NewGetOrderByNumberQuery("ORD17000000000001234")
	require.NoError(t, err)
	assert.Equal(t, "ORD17000000000001234", query.OrderNumber())

	_, err = queries.NewGetOrderByNumberQuery("")
	require.Error(t, err)
}

func TestNewListOrdersQuery(t *testing.T) {
	t.Run("defaults page and size", func(t *testing.T) {
		query, err := queries.NewListOrdersQuery(queries.ListOrdersFilter{}, 0, 0)
		require.NoError(t, err)
		assert.Equal(t, 1, query.Page())
		assert.Equal(t, 20, query.Size())
	})

	t.Run("clamps oversized pages", func(t *testing.T) {
		query, err := queries.NewListOrdersQuery(queries.ListOrdersFilter{}, 3, 5000)
		require.NoError(t, err)
		assert.Equal(t, 3, query.Page())
		assert.Equal(t, 100, query.Size())
	})

	t.Run("rejects unknown status filter", func(t *testing.T) {
		_, err := queries.NewListOrdersQuery(queries.ListOrdersFilter{Status: "Teleported"}, 1, 20)
		require.Error(t, err)
	})

	t.Run("rejects unknown payment status filter", func(t *testing.T) {
		_, err := queries.NewListOrdersQuery(queries.ListOrdersFilter{PaymentStatus: "Maybe"}, 1, 20)
		require.Error(t, err)
	})

	t.Run("accepts valid filters", func(t *testing.T) {
		shipperID := kernel.NewUUID()
		filter := queries.ListOrdersFilter{
			Status:        "Shipping",
			PaymentStatus: "CODPaid",
			OwnerIdentity: "user-1",
			ShipperID:     &shipperID,
		}
		query, err := queries.NewListOrdersQuery(filter, 1, 20)
		require.NoError(t, err)
		assert.Equal(t, filter, query.Filter())
	})
}

func TestNewGetOrderCountsQuery(t *testing.T) {
	_, err := queries.NewGetOrderCountsQuery("")
	require.Error(t, err)

	query, err := queries.NewGetOrderCountsQuery("sess-9")
	require.NoError(t, err)
	assert.Equal(t, "sess-9", query.OwnerIdentity())
}

func TestNewGetShipperStatsQuery(t *testing.T) {
	_, err := queries.NewGetShipperStatsQuery(kernel.UUID{})
	require.Error(t, err)

	id := kernel.NewUUID()
	query, err := queries.NewGetShipperStatsQuery(id)
	require.NoError(t, err)
	assert.Equal(t, id, query.ShipperID())
}
