// internal/handlers/shop.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/eventide-app/eventide-backend/internal/models"
	"github.com/eventide-app/eventide-backend/internal/store"
	"github.com/eventide-app/eventide-backend/internal/utils"
)

type ShopHandler struct {
	shops    *store.ShopStore
	products *store.ProductStore
}

type ShopRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=100"`
	Description string `json:"description" validate:"max=1000"`
	OwnerID     string `json:"ownerId,omitempty"`
}

func NewShopHandler(shops *store.ShopStore, products *store.ProductStore) *ShopHandler {
	return &ShopHandler{
		shops:    shops,
		products: products,
	}
}

// GET /shops
func (h *ShopHandler) ListShops(c *gin.Context) {
	utils.SuccessResponse(c, gin.H{"shops": h.shops.List()})
}

// GET /shops/:id returns the shop together with its catalog.
func (h *ShopHandler) GetShop(c *gin.Context) {
	shop, ok := h.shops.Get(c.Param("id"))
	if !ok {
		utils.NotFoundResponse(c, "Shop")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"shop":     shop,
		"products": h.products.ForShop(shop.ID),
	})
}

// POST /shops
func (h *ShopHandler) CreateShop(c *gin.Context) {
	var req ShopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	ownerID := req.OwnerID
	if ownerID == "" {
		ownerID, _ = utils.GetUserIDFromContext(c)
	}

	shop := h.shops.Add(models.Shop{
		Name:        req.Name,
		Description: req.Description,
		OwnerID:     ownerID,
	})
	utils.CreatedResponse(c, gin.H{"shop": shop})
}

// PUT /shops/:id
func (h *ShopHandler) UpdateShop(c *gin.Context) {
	id := c.Param("id")

	existing, ok := h.shops.Get(id)
	if !ok {
		utils.NotFoundResponse(c, "Shop")
		return
	}

	var req ShopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	shop := existing
	shop.Name = req.Name
	shop.Description = req.Description
	if req.OwnerID != "" {
		shop.OwnerID = req.OwnerID
	}
	h.shops.Update(shop)

	utils.SuccessResponse(c, gin.H{"shop": shop})
}

// DELETE /shops/:id removes the shop and its products.
func (h *ShopHandler) DeleteShop(c *gin.Context) {
	id := c.Param("id")

	if _, ok := h.shops.Get(id); !ok {
		utils.NotFoundResponse(c, "Shop")
		return
	}

	for _, product := range h.products.ForShop(id) {
		h.products.Delete(product.ID)
	}
	h.shops.Delete(id)
	utils.SuccessResponse(c, gin.H{"deleted": id})
}
