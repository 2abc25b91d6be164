// internal/store/product.go
package store

import (
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/eventide-app/eventide-backend/internal/kv"
	"github.com/eventide-app/eventide-backend/internal/models"
)

// ProductStore owns the product catalog. Products carry live stock counts;
// order snapshots never point back here.
type ProductStore struct {
	products collection[models.Product]
}

func NewProductStore(store kv.Store) *ProductStore {
	return &ProductStore{
		products: collection[models.Product]{kv: store, key: productsKey},
	}
}

// List returns all products, newest first.
func (s *ProductStore) List() []models.Product {
	return s.products.load()
}

func (s *ProductStore) Get(id string) (models.Product, bool) {
	for _, product := range s.products.load() {
		if product.ID == id {
			return product, true
		}
	}
	return models.Product{}, false
}

// ForShop filters the loaded catalog by shop.
func (s *ProductStore) ForShop(shopID string) []models.Product {
	products := s.products.load()
	filtered := make([]models.Product, 0, len(products))
	for _, product := range products {
		if product.ShopID == shopID {
			filtered = append(filtered, product)
		}
	}
	return filtered
}

// Add assigns a fresh id and timestamp and keeps the catalog sorted newest
// first.
func (s *ProductStore) Add(product models.Product) models.Product {
	product.ID = newID()
	product.CreatedAt = nowMillis()

	products := append([]models.Product{product}, s.products.load()...)
	sort.Slice(products, func(i, j int) bool {
		return products[i].CreatedAt > products[j].CreatedAt
	})
	s.products.save(products)
	return product
}

func (s *ProductStore) Update(product models.Product) []models.Product {
	products := s.products.load()
	for i := range products {
		if products[i].ID == product.ID {
			products[i] = product
			s.products.save(products)
			break
		}
	}
	return products
}

func (s *ProductStore) Delete(id string) []models.Product {
	products := s.products.load()
	kept := make([]models.Product, 0, len(products))
	for _, product := range products {
		if product.ID != id {
			kept = append(kept, product)
		}
	}
	if len(kept) != len(products) {
		s.products.save(kept)
	}
	return kept
}

// DecrementStock consumes quantity units of a product's stock, typically when
// an order is placed. A decrement that would drive the count below zero is
// rejected: the product is returned unchanged with ok=false and a warning is
// logged. No error is raised, callers must check ok.
func (s *ProductStore) DecrementStock(id string, quantity int) (models.Product, bool) {
	products := s.products.load()
	for i := range products {
		if products[i].ID != id {
			continue
		}
		if quantity > products[i].StockQuantity {
			logrus.WithFields(logrus.Fields{
				"product_id": id,
				"stock":      products[i].StockQuantity,
				"requested":  quantity,
			}).Warn("Rejected stock decrement below zero")
			return products[i], false
		}
		products[i].StockQuantity -= quantity
		s.products.save(products)
		return products[i], true
	}
	return models.Product{}, false
}
