// internal/store/cart.go
package store

import (
	"github.com/eventide-app/eventide-backend/internal/kv"
	"github.com/eventide-app/eventide-backend/internal/models"
)

// CartStore persists the minimal {productId, quantity} line list. It never
// reads product data: projecting lines into a display-ready cart is the
// caller's job, so the cart stays valid even when products disappear.
type CartStore struct {
	lines collection[models.CartLine]
}

func NewCartStore(store kv.Store) *CartStore {
	return &CartStore{
		lines: collection[models.CartLine]{kv: store, key: cartKey},
	}
}

func (s *CartStore) Lines() []models.CartLine {
	return s.lines.load()
}

// AddItem merges into an existing line for the product, or appends a new one.
func (s *CartStore) AddItem(productID string, quantity int) []models.CartLine {
	if quantity < 1 {
		quantity = 1
	}
	lines := s.lines.load()
	for i := range lines {
		if lines[i].ProductID == productID {
			lines[i].Quantity += quantity
			s.lines.save(lines)
			return lines
		}
	}
	lines = append(lines, models.CartLine{ProductID: productID, Quantity: quantity})
	s.lines.save(lines)
	return lines
}

func (s *CartStore) RemoveItem(productID string) []models.CartLine {
	lines := s.lines.load()
	kept := make([]models.CartLine, 0, len(lines))
	for _, line := range lines {
		if line.ProductID != productID {
			kept = append(kept, line)
		}
	}
	if len(kept) != len(lines) {
		s.lines.save(kept)
	}
	return kept
}

// UpdateQuantity replaces a line's quantity; zero or less removes the line.
func (s *CartStore) UpdateQuantity(productID string, quantity int) []models.CartLine {
	if quantity <= 0 {
		return s.RemoveItem(productID)
	}
	lines := s.lines.load()
	for i := range lines {
		if lines[i].ProductID == productID {
			lines[i].Quantity = quantity
			s.lines.save(lines)
			break
		}
	}
	return lines
}

// Clear empties the cart and removes its storage key entirely.
func (s *CartStore) Clear() {
	s.lines.clear()
}

func (s *CartStore) TotalQuantity() int {
	total := 0
	for _, line := range s.lines.load() {
		total += line.Quantity
	}
	return total
}
