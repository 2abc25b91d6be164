// internal/store/order.go
package store

import (
	"sort"

	"github.com/eventide-app/eventide-backend/internal/kv"
	"github.com/eventide-app/eventide-backend/internal/models"
)

// OrderStore owns the order history. Orders are append-mostly: the admin view
// updates statuses, and deletion exists only as a cleanup affordance.
type OrderStore struct {
	orders collection[models.Order]
}

func NewOrderStore(store kv.Store) *OrderStore {
	return &OrderStore{
		orders: collection[models.Order]{kv: store, key: ordersKey},
	}
}

// List returns all orders, newest first.
func (s *OrderStore) List() []models.Order {
	return s.orders.load()
}

func (s *OrderStore) Get(id string) (models.Order, bool) {
	for _, order := range s.orders.load() {
		if order.ID == id {
			return order, true
		}
	}
	return models.Order{}, false
}

// Add assigns a fresh id and timestamp, defaults the status to Pending and
// keeps the history sorted newest first.
func (s *OrderStore) Add(order models.Order) models.Order {
	order.ID = newID()
	order.CreatedAt = nowMillis()
	if order.Status == "" {
		order.Status = models.OrderStatusPending
	}

	orders := append([]models.Order{order}, s.orders.load()...)
	sort.Slice(orders, func(i, j int) bool {
		return orders[i].CreatedAt > orders[j].CreatedAt
	})
	s.orders.save(orders)
	return order
}

func (s *OrderStore) Update(order models.Order) []models.Order {
	orders := s.orders.load()
	for i := range orders {
		if orders[i].ID == order.ID {
			orders[i] = order
			s.orders.save(orders)
			break
		}
	}
	return orders
}

// UpdateStatus sets an order's status. Transitions are free-form: any status
// may follow any other.
func (s *OrderStore) UpdateStatus(id string, status models.OrderStatus) (models.Order, bool) {
	orders := s.orders.load()
	for i := range orders {
		if orders[i].ID == id {
			orders[i].Status = status
			s.orders.save(orders)
			return orders[i], true
		}
	}
	return models.Order{}, false
}

func (s *OrderStore) Delete(id string) []models.Order {
	orders := s.orders.load()
	kept := make([]models.Order, 0, len(orders))
	for _, order := range orders {
		if order.ID != id {
			kept = append(kept, order)
		}
	}
	if len(kept) != len(orders) {
		s.orders.save(kept)
	}
	return kept
}
