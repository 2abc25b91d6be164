// internal/handlers/order.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/eventide-app/eventide-backend/internal/models"
	"github.com/eventide-app/eventide-backend/internal/store"
	"github.com/eventide-app/eventide-backend/internal/utils"
)

type OrderHandler struct {
	orders *store.OrderStore
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required,order_status"`
}

func NewOrderHandler(orders *store.OrderStore) *OrderHandler {
	return &OrderHandler{orders: orders}
}

// GET /orders
func (h *OrderHandler) ListOrders(c *gin.Context) {
	utils.SuccessResponse(c, gin.H{"orders": h.orders.List()})
}

// GET /orders/:id
func (h *OrderHandler) GetOrder(c *gin.Context) {
	order, ok := h.orders.Get(c.Param("id"))
	if !ok {
		utils.NotFoundResponse(c, "Order")
		return
	}
	utils.SuccessResponse(c, gin.H{"order": order})
}

// PUT /orders/:id/status
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	order, ok := h.orders.UpdateStatus(c.Param("id"), models.OrderStatus(req.Status))
	if !ok {
		utils.NotFoundResponse(c, "Order")
		return
	}

	utils.SuccessResponse(c, gin.H{"order": order})
}
