// internal/store/shop.go
package store

import (
	"sort"

	"github.com/eventide-app/eventide-backend/internal/kv"
	"github.com/eventide-app/eventide-backend/internal/models"
)

type ShopStore struct {
	shops collection[models.Shop]
}

func NewShopStore(store kv.Store) *ShopStore {
	return &ShopStore{
		shops: collection[models.Shop]{kv: store, key: shopsKey},
	}
}

func (s *ShopStore) List() []models.Shop {
	return s.shops.load()
}

func (s *ShopStore) Get(id string) (models.Shop, bool) {
	for _, shop := range s.shops.load() {
		if shop.ID == id {
			return shop, true
		}
	}
	return models.Shop{}, false
}

func (s *ShopStore) Add(shop models.Shop) models.Shop {
	shop.ID = newID()
	shop.CreatedAt = nowMillis()

	shops := append([]models.Shop{shop}, s.shops.load()...)
	sort.Slice(shops, func(i, j int) bool {
		return shops[i].CreatedAt > shops[j].CreatedAt
	})
	s.shops.save(shops)
	return shop
}

func (s *ShopStore) Update(shop models.Shop) []models.Shop {
	shops := s.shops.load()
	for i := range shops {
		if shops[i].ID == shop.ID {
			shops[i] = shop
			s.shops.save(shops)
			break
		}
	}
	return shops
}

func (s *ShopStore) Delete(id string) []models.Shop {
	shops := s.shops.load()
	kept := make([]models.Shop, 0, len(shops))
	for _, shop := range shops {
		if shop.ID != id {
			kept = append(kept, shop)
		}
	}
	if len(kept) != len(shops) {
		s.shops.save(kept)
	}
	return kept
}
