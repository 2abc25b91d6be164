// internal/services/checkout_service_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eventide-app/eventide-backend/internal/config"
	"github.com/eventide-app/eventide-backend/internal/kv"
	"github.com/eventide-app/eventide-backend/internal/models"
	"github.com/eventide-app/eventide-backend/internal/store"
)

type checkoutFixture struct {
	products *store.ProductStore
	orders   *store.OrderStore
	cart     *store.CartStore
	service  *CheckoutService
}

func newCheckoutFixture(t *testing.T) *checkoutFixture {
	t.Helper()
	mem := kv.NewMemoryStore()

	products := store.NewProductStore(mem)
	orders := store.NewOrderStore(mem)
	cart := store.NewCartStore(mem)
	cfg := &config.Config{} // no Stripe key: orders place without payment

	return &checkoutFixture{
		products: products,
		orders:   orders,
		cart:     cart,
		service:  NewCheckoutService(products, orders, cart, cfg),
	}
}

func TestPlaceOrderCreatesSnapshotAndClearsCart(t *testing.T) {
	f := newCheckoutFixture(t)

	mug := f.products.Add(models.Product{Name: "Mug", Price: 12.5, StockQuantity: 5, ShopID: "shop-1"})
	shirt := f.products.Add(models.Product{Name: "Shirt", Price: 20, StockQuantity: 3, ShopID: "shop-1"})
	f.cart.AddItem(mug.ID, 2)
	f.cart.AddItem(shirt.ID, 1)

	order, err := f.service.PlaceOrder(&CheckoutRequest{
		CustomerName:    "Alice Wonderland",
		CustomerEmail:   "alice@example.com",
		ShippingAddress: "1 Rabbit Hole Lane",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, order.ID)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.InDelta(t, 45.0, order.TotalAmount, 0.001)
	assert.Empty(t, order.PaymentIntentID)
	require.Len(t, order.Items, 2)

	byProduct := map[string]models.OrderItem{}
	for _, item := range order.Items {
		byProduct[item.ProductID] = item
	}
	assert.Equal(t, "Mug", byProduct[mug.ID].ProductName)
	assert.Equal(t, 2, byProduct[mug.ID].Quantity)
	assert.InDelta(t, 12.5, byProduct[mug.ID].PriceAtPurchase, 0.001)

	// Stock consumed per line.
	storedMug, _ := f.products.Get(mug.ID)
	storedShirt, _ := f.products.Get(shirt.ID)
	assert.Equal(t, 3, storedMug.StockQuantity)
	assert.Equal(t, 2, storedShirt.StockQuantity)

	// Cart is gone, order is persisted.
	assert.Empty(t, f.cart.Lines())
	persisted, found := f.orders.Get(order.ID)
	require.True(t, found)
	assert.Equal(t, order.ID, persisted.ID)
}

func TestPlaceOrderEmptyCart(t *testing.T) {
	f := newCheckoutFixture(t)

	_, err := f.service.PlaceOrder(&CheckoutRequest{CustomerName: "Alice Wonderland"})
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestPlaceOrderInsufficientStockTouchesNothing(t *testing.T) {
	f := newCheckoutFixture(t)

	mug := f.products.Add(models.Product{Name: "Mug", Price: 12.5, StockQuantity: 5, ShopID: "shop-1"})
	shirt := f.products.Add(models.Product{Name: "Shirt", Price: 20, StockQuantity: 1, ShopID: "shop-1"})
	f.cart.AddItem(mug.ID, 2)
	f.cart.AddItem(shirt.ID, 4) // over stock

	_, err := f.service.PlaceOrder(&CheckoutRequest{CustomerName: "Alice Wonderland"})
	assert.ErrorIs(t, err, ErrInsufficientStock)

	// All-or-nothing: no order, no stock change, cart intact.
	assert.Empty(t, f.orders.List())
	storedMug, _ := f.products.Get(mug.ID)
	storedShirt, _ := f.products.Get(shirt.ID)
	assert.Equal(t, 5, storedMug.StockQuantity)
	assert.Equal(t, 1, storedShirt.StockQuantity)
	assert.Equal(t, 6, f.cart.TotalQuantity())
}

func TestPlaceOrderValidatesRequest(t *testing.T) {
	f := newCheckoutFixture(t)

	mug := f.products.Add(models.Product{Name: "Mug", Price: 12.5, StockQuantity: 5, ShopID: "shop-1"})
	f.cart.AddItem(mug.ID, 1)

	_, err := f.service.PlaceOrder(&CheckoutRequest{CustomerName: ""})
	assert.Error(t, err)

	_, err = f.service.PlaceOrder(&CheckoutRequest{CustomerName: "Alice Wonderland", CustomerEmail: "not-an-email"})
	assert.Error(t, err)
}

func TestOrderSnapshotSurvivesProductEdits(t *testing.T) {
	f := newCheckoutFixture(t)

	mug := f.products.Add(models.Product{Name: "Mug", Price: 12.5, StockQuantity: 5, ShopID: "shop-1"})
	f.cart.AddItem(mug.ID, 1)

	order, err := f.service.PlaceOrder(&CheckoutRequest{CustomerName: "Alice Wonderland"})
	require.NoError(t, err)

	mug.Name = "Renamed Mug"
	mug.Price = 99
	f.products.Update(mug)

	persisted, found := f.orders.Get(order.ID)
	require.True(t, found)
	assert.Equal(t, "Mug", persisted.Items[0].ProductName)
	assert.InDelta(t, 12.5, persisted.Items[0].PriceAtPurchase, 0.001)
}

func TestDetailedCartDropsUnresolvableLines(t *testing.T) {
	f := newCheckoutFixture(t)

	mug := f.products.Add(models.Product{Name: "Mug", Price: 12.5, StockQuantity: 5, ShopID: "shop-1"})
	f.cart.AddItem(mug.ID, 2)
	f.cart.AddItem("deleted-product", 1)

	items, total := f.service.DetailedCart()
	require.Len(t, items, 1)
	assert.Equal(t, mug.ID, items[0].ProductID)
	assert.InDelta(t, 25.0, total, 0.001)

	// The stale line itself stays persisted.
	assert.Len(t, f.cart.Lines(), 2)
}
