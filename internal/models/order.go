// internal/models/order.go
package models

// OrderItem snapshots the product at purchase time. Name and price are
// intentional point-in-time copies: later product edits never alter a
// historical order.
type OrderItem struct {
	ProductID       string  `json:"productId"`
	ProductName     string  `json:"productName"`
	Quantity        int     `json:"quantity"`
	PriceAtPurchase float64 `json:"priceAtPurchase"`
}

type Order struct {
	ID              string      `json:"id"`
	Items           []OrderItem `json:"items"`
	TotalAmount     float64     `json:"totalAmount"`
	Status          OrderStatus `json:"status"`
	CustomerName    string      `json:"customerName"`
	CustomerEmail   string      `json:"customerEmail,omitempty"`
	ShippingAddress string      `json:"shippingAddress,omitempty"`
	PaymentIntentID string      `json:"paymentIntentId,omitempty"`
	CreatedAt       int64       `json:"createdAt"`
}

// CartLine is the minimal persisted cart entry; product details are joined
// against the live product collection at projection time.
type CartLine struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}
