package product_test

import (
	"testing"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/product"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProduct(t *testing.T) {
	t.Run("should create valid product", func(t *testing.T) {
		id := kernel.NewUUID()

		p, err := product.NewProduct(id, "Milk tea", 45000, 10)

		require.NoError(t, err)
		assert.Equal(t, id, p.ID())
		assert.Equal(t, "Milk tea", p.Name())
		assert.Equal(t, int64(45000), p.UnitPrice())
		assert.Equal(t, 10, p.Stock())
	})

	t.Run("should reject empty name", func(t *testing.T) {
		_, err := product.NewProduct(kernel.NewUUID(), "", 45000, 10)
		require.Error(t, err)
	})

	t.Run("should reject negative price", func(t *testing.T) {
		_, err := product.NewProduct(kernel.NewUUID(), "Milk tea", -1, 10)
		require.Error(t, err)
	})

	t.Run("should reject negative stock", func(t *testing.T) {
		_, err := product.NewProduct(kernel.NewUUID(), "Milk tea", 45000, -1)
		require.Error(t, err)
	})

	t.Run("should allow zero stock", func(t *testing.T) {
		p, err := product.NewProduct(kernel.NewUUID(), "Milk tea", 45000, 0)
		require.NoError(t, err)
		assert.Equal(t, 0, p.Stock())
	})

	t.Run("zero value product fails validation", func(t *testing.T) {
		var p product.Product
		require.ErrorIs(t, p.Validate(), product.ErrProductIsNotConstructed)
	})
}

func TestProduct_Reserve(t *testing.T) {
	t.Run("should decrement stock", func(t *testing.T) {
		p, err := product.NewProduct(kernel.NewUUID(), "Milk tea", 45000, 10)
		require.NoError(t, err)

		require.NoError(t, p.Reserve(4))
		assert.Equal(t, 6, p.Stock())
	})

	t.Run("should allow reserving the last unit", func(t *testing.T) {
		p, err := product.NewProduct(kernel.NewUUID(), "Milk tea", 45000, 3)
		require.NoError(t, err)

		require.NoError(t, p.Reserve(3))
		assert.Equal(t, 0, p.Stock())
	})

	t.Run("should reject reservation above stock", func(t *testing.T) {
		p, err := product.NewProduct(kernel.NewUUID(), "Milk tea", 45000, 3)
		require.NoError(t, err)

		err = p.Reserve(4)

		require.ErrorIs(t, err, product.ErrInsufficientStock)
		assert.Equal(t, 3, p.Stock(), "failed reservation must not change stock")
	})

	t.Run("should reject non-positive quantity", func(t *testing.T) {
		p, err := product.NewProduct(kernel.NewUUID(), "Milk tea", 45000, 3)
		require.NoError(t, err)

		require.Error(t, p.Reserve(0))
		require.Error(t, p.Reserve(-2))
	})
}

func TestProduct_Release(t *testing.T) {
	t.Run("should return units to stock", func(t *testing.T) {
		p, err := product.NewProduct(kernel.NewUUID(), "Milk tea", 45000, 10)
		require.NoError(t, err)
		require.NoError(t, p.Reserve(4))

		require.NoError(t, p.Release(4))
		assert.Equal(t, 10, p.Stock())
	})

	t.Run("should reject non-positive quantity", func(t *testing.T) {
		p, err := product.NewProduct(kernel.NewUUID(), "Milk tea", 45000, 10)
		require.NoError(t, err)

		require.Error(t, p.Release(0))
	})
}

func TestProduct_HasStock(t *testing.T) {
	p, err := product.NewProduct(kernel.NewUUID(), "Milk tea", 45000, 5)
	require.NoError(t, err)

	ok, err := p.HasStock(5)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = p.HasStock(6)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = p.HasStock(0)
	require.Error(t, err)
}
