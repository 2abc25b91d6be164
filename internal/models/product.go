// internal/models/product.go
package models

// Product belongs to one shop. StockQuantity is kept at or above zero by the
// stock-adjustment operation.
type Product struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	Price         float64 `json:"price"`
	StockQuantity int     `json:"stockQuantity"`
	ImageURL      string  `json:"imageUrl,omitempty"`
	ShopID        string  `json:"shopId"`
	CreatedAt     int64   `json:"createdAt"`
}

type Shop struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	OwnerID     string `json:"ownerId"`
	CreatedAt   int64  `json:"createdAt"`
}
