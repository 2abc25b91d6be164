// internal/store/product_test.go
package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eventide-app/eventide-backend/internal/kv"
	"github.com/eventide-app/eventide-backend/internal/models"
)

func TestDecrementStockConsumesUnits(t *testing.T) {
	mem := kv.NewMemoryStore()
	blankKeys(t, mem, productsKey)
	products := NewProductStore(mem)

	product := products.Add(models.Product{Name: "Mug", Price: 12.5, StockQuantity: 5, ShopID: "shop-1"})

	updated, ok := products.DecrementStock(product.ID, 3)
	require.True(t, ok)
	assert.Equal(t, 2, updated.StockQuantity)

	stored, found := products.Get(product.ID)
	require.True(t, found)
	assert.Equal(t, 2, stored.StockQuantity)
}

func TestDecrementStockNeverGoesNegative(t *testing.T) {
	mem := kv.NewMemoryStore()
	blankKeys(t, mem, productsKey)
	products := NewProductStore(mem)

	product := products.Add(models.Product{Name: "Mug", Price: 12.5, StockQuantity: 2, ShopID: "shop-1"})

	unchanged, ok := products.DecrementStock(product.ID, 3)
	assert.False(t, ok)
	assert.Equal(t, 2, unchanged.StockQuantity)

	stored, found := products.Get(product.ID)
	require.True(t, found)
	assert.Equal(t, 2, stored.StockQuantity)

	// Draining exactly to zero is allowed.
	drained, ok := products.DecrementStock(product.ID, 2)
	require.True(t, ok)
	assert.Equal(t, 0, drained.StockQuantity)
}

func TestDecrementStockUnknownProduct(t *testing.T) {
	mem := kv.NewMemoryStore()
	blankKeys(t, mem, productsKey)
	products := NewProductStore(mem)

	_, ok := products.DecrementStock("no-such-product", 1)
	assert.False(t, ok)
}

func TestForShopFiltersCatalog(t *testing.T) {
	mem := kv.NewMemoryStore()
	blankKeys(t, mem, productsKey)
	products := NewProductStore(mem)

	products.Add(models.Product{Name: "Mug", Price: 12.5, StockQuantity: 5, ShopID: "shop-1"})
	products.Add(models.Product{Name: "Shirt", Price: 20, StockQuantity: 3, ShopID: "shop-2"})
	products.Add(models.Product{Name: "Poster", Price: 8, StockQuantity: 10, ShopID: "shop-1"})

	forShop := products.ForShop("shop-1")
	require.Len(t, forShop, 2)
	for _, product := range forShop {
		assert.Equal(t, "shop-1", product.ShopID)
	}
	assert.Empty(t, products.ForShop("shop-3"))
}

func TestUpdateProductReplacesRecord(t *testing.T) {
	mem := kv.NewMemoryStore()
	blankKeys(t, mem, productsKey)
	products := NewProductStore(mem)

	product := products.Add(models.Product{Name: "Mug", Price: 12.5, StockQuantity: 5, ShopID: "shop-1"})
	product.Price = 14
	product.StockQuantity = 7
	products.Update(product)

	stored, found := products.Get(product.ID)
	require.True(t, found)
	assert.Equal(t, 14.0, stored.Price)
	assert.Equal(t, 7, stored.StockQuantity)
}

func TestDeleteProduct(t *testing.T) {
	mem := kv.NewMemoryStore()
	blankKeys(t, mem, productsKey)
	products := NewProductStore(mem)

	product := products.Add(models.Product{Name: "Mug", Price: 12.5, StockQuantity: 5, ShopID: "shop-1"})
	kept := products.Delete(product.ID)
	assert.Empty(t, kept)
	_, found := products.Get(product.ID)
	assert.False(t, found)
}
