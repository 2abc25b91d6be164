// internal/models/common.go
package models

// Enums

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "Pending"
	OrderStatusProcessing OrderStatus = "Processing"
	OrderStatusShipped    OrderStatus = "Shipped"
	OrderStatusDelivered  OrderStatus = "Delivered"
	OrderStatusCancelled  OrderStatus = "Cancelled"
)

// AllOrderStatuses lists every valid order status. Transitions between them
// are free-form: any status may follow any other.
var AllOrderStatuses = []OrderStatus{
	OrderStatusPending,
	OrderStatusProcessing,
	OrderStatusShipped,
	OrderStatusDelivered,
	OrderStatusCancelled,
}

func (s OrderStatus) Valid() bool {
	for _, status := range AllOrderStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// EventCategories is the fixed set of categories an event may carry.
var EventCategories = []string{
	"Music",
	"Art & Culture",
	"Tech",
	"Food & Drink",
	"Workshop",
	"Community",
	"Sports & Fitness",
	"Networking",
	"Charity & Causes",
	"Other",
}

func ValidEventCategory(category string) bool {
	for _, c := range EventCategories {
		if c == category {
			return true
		}
	}
	return false
}
