package storage

import (
	"context"
	"testing"

	"boutique-app/internal/product"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLocal(t *testing.T) *LocalBackend {
	t.Helper()
	return NewLocalBackend(NewKV(t.TempDir()))
}

func TestLocalGetProducts(t *testing.T) {
	ctx := context.Background()

	t.Run("Empty store reads as empty list", func(t *testing.T) {
		local := newLocal(t)

		products, err := local.GetProducts(ctx)
		assert.NoError(t, err)
		assert.Empty(t, products)
	})

	t.Run("Corrupt store reads as empty list", func(t *testing.T) {
		kv := NewKV(t.TempDir())
		require.NoError(t, kv.Set(KeyProducts, []byte("{not json")))

		local := NewLocalBackend(kv)
		products, err := local.GetProducts(ctx)
		assert.NoError(t, err)
		assert.Empty(t, products)
	})
}

func TestLocalAddProduct(t *testing.T) {
	ctx := context.Background()
	local := newLocal(t)

	p := product.Product{
		ID:       "001",
		Title:    "Dress",
		Price:    100000,
		Stock:    2,
		Category: product.CategorySale,
		Images:   []string{"u1"},
		Size:     "M",
	}
	require.NoError(t, local.AddProduct(ctx, p))

	products, err := local.GetProducts(ctx)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, p, products[0])

	// appends, never replaces
	require.NoError(t, local.AddProduct(ctx, product.Product{ID: "002", Title: "Gown", Category: product.CategoryRent}))
	products, err = local.GetProducts(ctx)
	require.NoError(t, err)
	assert.Len(t, products, 2)
}

func TestLocalDeleteProduct(t *testing.T) {
	ctx := context.Background()
	local := newLocal(t)

	require.NoError(t, local.AddProduct(ctx, product.Product{ID: "001", Title: "Dress", Category: product.CategorySale}))
	require.NoError(t, local.AddProduct(ctx, product.Product{ID: "002", Title: "Gown", Category: product.CategoryRent}))

	require.NoError(t, local.DeleteProduct(ctx, "001"))

	products, err := local.GetProducts(ctx)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "002", products[0].ID)

	// deleting an unknown id is a no-op
	assert.NoError(t, local.DeleteProduct(ctx, "999"))
}

func TestLocalConfirmOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("Decrements stock per line quantity", func(t *testing.T) {
		local := newLocal(t)
		require.NoError(t, local.AddProduct(ctx, product.Product{ID: "001", Title: "Dress", Stock: 5, Category: product.CategorySale}))

		err := local.ConfirmOrder(ctx, "AB12C", []ConfirmItem{{ProductID: "001", Quantity: 2}})
		require.NoError(t, err)

		products, err := local.GetProducts(ctx)
		require.NoError(t, err)
		require.Len(t, products, 1)
		assert.Equal(t, 3, products[0].Stock)
	})

	t.Run("Removes product when stock is exhausted", func(t *testing.T) {
		local := newLocal(t)
		require.NoError(t, local.AddProduct(ctx, product.Product{ID: "001", Title: "Dress", Stock: 2, Category: product.CategorySale}))
		require.NoError(t, local.AddProduct(ctx, product.Product{ID: "002", Title: "Gown", Stock: 1, Category: product.CategoryRent}))

		err := local.ConfirmOrder(ctx, "AB12C", []ConfirmItem{{ProductID: "001", Quantity: 2}})
		require.NoError(t, err)

		products, err := local.GetProducts(ctx)
		require.NoError(t, err)
		require.Len(t, products, 1)
		assert.Equal(t, "002", products[0].ID)
	})

	t.Run("Unmatched products are untouched", func(t *testing.T) {
		local := newLocal(t)
		require.NoError(t, local.AddProduct(ctx, product.Product{ID: "001", Title: "Dress", Stock: 2, Category: product.CategorySale}))

		err := local.ConfirmOrder(ctx, "AB12C", []ConfirmItem{{ProductID: "999", Quantity: 1}})
		require.NoError(t, err)

		products, err := local.GetProducts(ctx)
		require.NoError(t, err)
		require.Len(t, products, 1)
		assert.Equal(t, 2, products[0].Stock)
	})
}
