// internal/handlers/cart.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/eventide-app/eventide-backend/internal/services"
	"github.com/eventide-app/eventide-backend/internal/store"
	"github.com/eventide-app/eventide-backend/internal/utils"
)

type CartHandler struct {
	cart     *store.CartStore
	products *store.ProductStore
	checkout *services.CheckoutService
}

type CartItemRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity" validate:"omitempty,gte=1"`
}

type UpdateQuantityRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity"`
}

func NewCartHandler(cart *store.CartStore, products *store.ProductStore, checkout *services.CheckoutService) *CartHandler {
	return &CartHandler{
		cart:     cart,
		products: products,
		checkout: checkout,
	}
}

func (h *CartHandler) cartPayload() gin.H {
	items, total := h.checkout.DetailedCart()
	return gin.H{
		"items":         items,
		"total":         total,
		"totalQuantity": h.cart.TotalQuantity(),
	}
}

// GET /cart
func (h *CartHandler) GetCart(c *gin.Context) {
	utils.SuccessResponse(c, h.cartPayload())
}

// POST /cart/items adds to an existing line's quantity rather than creating a
// duplicate line.
func (h *CartHandler) AddItem(c *gin.Context) {
	var req CartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	if _, ok := h.products.Get(req.ProductID); !ok {
		utils.NotFoundResponse(c, "Product")
		return
	}

	quantity := req.Quantity
	if quantity == 0 {
		quantity = 1
	}
	h.cart.AddItem(req.ProductID, quantity)

	utils.SuccessResponse(c, h.cartPayload())
}

// PUT /cart/items replaces a line's quantity; zero or less removes the line.
func (h *CartHandler) UpdateQuantity(c *gin.Context) {
	var req UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	h.cart.UpdateQuantity(req.ProductID, req.Quantity)
	utils.SuccessResponse(c, h.cartPayload())
}

// DELETE /cart/items/:productId
func (h *CartHandler) RemoveItem(c *gin.Context) {
	h.cart.RemoveItem(c.Param("productId"))
	utils.SuccessResponse(c, h.cartPayload())
}

// DELETE /cart
func (h *CartHandler) ClearCart(c *gin.Context) {
	h.cart.Clear()
	utils.SuccessResponse(c, h.cartPayload())
}

// POST /checkout turns the cart into an order.
func (h *CartHandler) Checkout(c *gin.Context) {
	var req services.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	order, err := h.checkout.PlaceOrder(&req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmptyCart):
			utils.BadRequestResponse(c, "Cart is empty", nil)
		case errors.Is(err, services.ErrInsufficientStock):
			utils.ConflictResponse(c, err.Error())
		default:
			utils.InternalErrorResponse(c, "Checkout failed")
		}
		return
	}

	utils.CreatedResponse(c, gin.H{"order": order})
}
