package storage

import (
	"context"
	"errors"
	"testing"

	"boutique-app/internal/product"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockBackend struct {
	mock.Mock
}

func (m *MockBackend) GetProducts(ctx context.Context) ([]product.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]product.Product), args.Error(1)
}

func (m *MockBackend) AddProduct(ctx context.Context, p product.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockBackend) DeleteProduct(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockBackend) ConfirmOrder(ctx context.Context, orderID string, items []ConfirmItem) error {
	args := m.Called(ctx, orderID, items)
	return args.Error(0)
}

var errDown = errors.New("connection refused")

func TestFallbackGetProducts(t *testing.T) {
	ctx := context.Background()

	t.Run("Primary serves when healthy, secondary untouched", func(t *testing.T) {
		primary, secondary := new(MockBackend), new(MockBackend)
		primary.On("GetProducts", mock.Anything).Return([]product.Product{{ID: "001"}}, nil)

		fb := NewFallbackBackend(primary, secondary)
		products, err := fb.GetProducts(ctx)

		require.NoError(t, err)
		assert.Len(t, products, 1)
		secondary.AssertNotCalled(t, "GetProducts", mock.Anything)
	})

	t.Run("Secondary serves when primary fails", func(t *testing.T) {
		primary, secondary := new(MockBackend), new(MockBackend)
		primary.On("GetProducts", mock.Anything).Return(nil, errDown)
		secondary.On("GetProducts", mock.Anything).Return([]product.Product{{ID: "002"}}, nil)

		fb := NewFallbackBackend(primary, secondary)
		products, err := fb.GetProducts(ctx)

		require.NoError(t, err)
		assert.Equal(t, "002", products[0].ID)
	})
}

func TestFallbackWrites(t *testing.T) {
	ctx := context.Background()
	p := product.Product{ID: "001", Title: "Dress"}
	items := []ConfirmItem{{ProductID: "001", Quantity: 2}}

	t.Run("Successful primary write is not mirrored", func(t *testing.T) {
		primary, secondary := new(MockBackend), new(MockBackend)
		primary.On("AddProduct", mock.Anything, p).Return(nil)

		fb := NewFallbackBackend(primary, secondary)
		require.NoError(t, fb.AddProduct(ctx, p))

		secondary.AssertNotCalled(t, "AddProduct", mock.Anything, mock.Anything)
	})

	t.Run("AddProduct falls back", func(t *testing.T) {
		primary, secondary := new(MockBackend), new(MockBackend)
		primary.On("AddProduct", mock.Anything, p).Return(errDown)
		secondary.On("AddProduct", mock.Anything, p).Return(nil)

		fb := NewFallbackBackend(primary, secondary)
		assert.NoError(t, fb.AddProduct(ctx, p))
		secondary.AssertExpectations(t)
	})

	t.Run("DeleteProduct falls back", func(t *testing.T) {
		primary, secondary := new(MockBackend), new(MockBackend)
		primary.On("DeleteProduct", mock.Anything, "001").Return(errDown)
		secondary.On("DeleteProduct", mock.Anything, "001").Return(nil)

		fb := NewFallbackBackend(primary, secondary)
		assert.NoError(t, fb.DeleteProduct(ctx, "001"))
		secondary.AssertExpectations(t)
	})

	t.Run("ConfirmOrder falls back with the same lines", func(t *testing.T) {
		primary, secondary := new(MockBackend), new(MockBackend)
		primary.On("ConfirmOrder", mock.Anything, "AB12C", items).Return(errDown)
		secondary.On("ConfirmOrder", mock.Anything, "AB12C", items).Return(nil)

		fb := NewFallbackBackend(primary, secondary)
		assert.NoError(t, fb.ConfirmOrder(ctx, "AB12C", items))
		secondary.AssertExpectations(t)
	})

	t.Run("Secondary failure propagates", func(t *testing.T) {
		primary, secondary := new(MockBackend), new(MockBackend)
		primary.On("AddProduct", mock.Anything, p).Return(errDown)
		secondary.On("AddProduct", mock.Anything, p).Return(errors.New("disk full"))

		fb := NewFallbackBackend(primary, secondary)
		assert.Error(t, fb.AddProduct(ctx, p))
	})
}

// End-to-end over a real temp-dir local store: a product added while the
// remote is down is present in a subsequent read through the same gateway.
func TestFallbackOffline(t *testing.T) {
	ctx := context.Background()

	remote := NewRemoteBackend("http://127.0.0.1:0", nil)
	local := NewLocalBackend(NewKV(t.TempDir()))
	fb := NewFallbackBackend(remote, local)

	p := product.Product{ID: "001", Title: "Dress", Price: 100000, Stock: 2, Category: product.CategorySale, Images: []string{"u1"}, Size: "M"}
	require.NoError(t, fb.AddProduct(ctx, p))

	products, err := fb.GetProducts(ctx)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, p, products[0])
}
