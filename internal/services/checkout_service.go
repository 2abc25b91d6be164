// internal/services/checkout_service.go
package services

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/stripe/stripe-go/v74"
	"github.com/stripe/stripe-go/v74/paymentintent"

	"github.com/eventide-app/eventide-backend/internal/config"
	"github.com/eventide-app/eventide-backend/internal/models"
	"github.com/eventide-app/eventide-backend/internal/store"
	"github.com/eventide-app/eventide-backend/internal/utils"
)

var (
	ErrEmptyCart         = errors.New("checkout: cart is empty")
	ErrInsufficientStock = errors.New("checkout: insufficient stock")
)

// CheckoutService turns the persisted cart into an order: all-or-nothing
// stock validation, immutable item snapshots, stock decrement, cart clear.
// The mutation sequence after the pre-check is not rolled back on a later
// failure; single-user demo usage accepts that gap.
type CheckoutService struct {
	products *store.ProductStore
	orders   *store.OrderStore
	cart     *store.CartStore
	config   *config.Config
}

type CheckoutRequest struct {
	CustomerName    string `json:"customerName" validate:"required,min=2,max=100"`
	CustomerEmail   string `json:"customerEmail,omitempty" validate:"omitempty,email"`
	ShippingAddress string `json:"shippingAddress,omitempty" validate:"omitempty,max=500"`
}

// CartItemDetail is a cart line joined against the live product catalog for
// display: name, price and stock are current values, not snapshots.
type CartItemDetail struct {
	ProductID     string  `json:"productId"`
	Quantity      int     `json:"quantity"`
	Name          string  `json:"name"`
	Price         float64 `json:"price"`
	ImageURL      string  `json:"imageUrl,omitempty"`
	StockQuantity int     `json:"stockQuantity"`
}

func NewCheckoutService(products *store.ProductStore, orders *store.OrderStore, cart *store.CartStore, cfg *config.Config) *CheckoutService {
	if cfg.Payment.StripeSecretKey != "" {
		stripe.Key = cfg.Payment.StripeSecretKey
	}
	return &CheckoutService{
		products: products,
		orders:   orders,
		cart:     cart,
		config:   cfg,
	}
}

// DetailedCart projects the persisted lines against the product catalog.
// Lines whose product no longer exists are dropped from the view (the
// persisted line itself is left alone).
func (s *CheckoutService) DetailedCart() ([]CartItemDetail, float64) {
	lines := s.cart.Lines()
	details := make([]CartItemDetail, 0, len(lines))
	total := 0.0
	for _, line := range lines {
		product, ok := s.products.Get(line.ProductID)
		if !ok {
			continue
		}
		details = append(details, CartItemDetail{
			ProductID:     line.ProductID,
			Quantity:      line.Quantity,
			Name:          product.Name,
			Price:         product.Price,
			ImageURL:      product.ImageURL,
			StockQuantity: product.StockQuantity,
		})
		total += product.Price * float64(line.Quantity)
	}
	return details, total
}

// PlaceOrder validates every line against current stock before touching
// anything, then creates the order (status Pending), decrements stock per
// line and clears the cart. Item snapshots capture name and price at purchase
// time so later product edits never alter order history.
func (s *CheckoutService) PlaceOrder(req *CheckoutRequest) (*models.Order, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	items, total := s.DetailedCart()
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	// All-or-nothing pre-check: abort before any mutation.
	for _, item := range items {
		if item.Quantity > item.StockQuantity {
			return nil, fmt.Errorf("%w: %s (available %d, requested %d)",
				ErrInsufficientStock, item.Name, item.StockQuantity, item.Quantity)
		}
	}

	orderItems := make([]models.OrderItem, 0, len(items))
	for _, item := range items {
		orderItems = append(orderItems, models.OrderItem{
			ProductID:       item.ProductID,
			ProductName:     item.Name,
			Quantity:        item.Quantity,
			PriceAtPurchase: item.Price,
		})
	}

	order := models.Order{
		Items:           orderItems,
		TotalAmount:     total,
		Status:          models.OrderStatusPending,
		CustomerName:    req.CustomerName,
		CustomerEmail:   req.CustomerEmail,
		ShippingAddress: req.ShippingAddress,
	}

	// Payment never gates order creation; a Stripe failure is logged and the
	// order proceeds unpaid.
	if s.config.Payment.StripeSecretKey != "" {
		if intentID, err := s.createPaymentIntent(total, req.CustomerEmail); err != nil {
			logrus.WithError(err).Warn("Failed to create payment intent, placing order without one")
		} else {
			order.PaymentIntentID = intentID
		}
	}

	created := s.orders.Add(order)

	for _, item := range orderItems {
		if _, ok := s.products.DecrementStock(item.ProductID, item.Quantity); !ok {
			logrus.WithFields(logrus.Fields{
				"order_id":   created.ID,
				"product_id": item.ProductID,
			}).Warn("Stock decrement rejected after order creation")
		}
	}

	s.cart.Clear()
	return &created, nil
}

func (s *CheckoutService) createPaymentIntent(amount float64, receiptEmail string) (string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(int64(amount * 100)),
		Currency: stripe.String(s.config.Payment.Currency),
	}
	if receiptEmail != "" {
		params.ReceiptEmail = stripe.String(receiptEmail)
	}

	pi, err := paymentintent.New(params)
	if err != nil {
		return "", fmt.Errorf("failed to create payment intent: %w", err)
	}
	return pi.ID, nil
}
