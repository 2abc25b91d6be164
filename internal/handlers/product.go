// internal/handlers/product.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eventide-app/eventide-backend/internal/models"
	"github.com/eventide-app/eventide-backend/internal/services"
	"github.com/eventide-app/eventide-backend/internal/store"
	"github.com/eventide-app/eventide-backend/internal/utils"
)

type ProductHandler struct {
	products *store.ProductStore
	shops    *store.ShopStore
	media    *services.MediaService
}

type ProductRequest struct {
	Name          string  `json:"name" validate:"required,min=2,max=150"`
	Description   string  `json:"description" validate:"max=2000"`
	Price         float64 `json:"price" validate:"required,gt=0"`
	StockQuantity int     `json:"stockQuantity" validate:"gte=0"`
	ImageURL      string  `json:"imageUrl,omitempty" validate:"omitempty,url"`
	ShopID        string  `json:"shopId" validate:"required"`
}

func NewProductHandler(products *store.ProductStore, shops *store.ShopStore, media *services.MediaService) *ProductHandler {
	return &ProductHandler{
		products: products,
		shops:    shops,
		media:    media,
	}
}

// GET /products?shop_id=...
func (h *ProductHandler) ListProducts(c *gin.Context) {
	if shopID := c.Query("shop_id"); shopID != "" {
		utils.SuccessResponse(c, gin.H{"products": h.products.ForShop(shopID)})
		return
	}
	utils.SuccessResponse(c, gin.H{"products": h.products.List()})
}

// GET /shops/:id/products
func (h *ProductHandler) ListShopProducts(c *gin.Context) {
	shopID := c.Param("id")

	if _, ok := h.shops.Get(shopID); !ok {
		utils.NotFoundResponse(c, "Shop")
		return
	}

	utils.SuccessResponse(c, gin.H{"products": h.products.ForShop(shopID)})
}

// GET /products/:id
func (h *ProductHandler) GetProduct(c *gin.Context) {
	product, ok := h.products.Get(c.Param("id"))
	if !ok {
		utils.NotFoundResponse(c, "Product")
		return
	}
	utils.SuccessResponse(c, gin.H{"product": product})
}

// POST /products
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	if _, ok := h.shops.Get(req.ShopID); !ok {
		utils.BadRequestResponse(c, "Shop does not exist", nil)
		return
	}

	product := h.products.Add(models.Product{
		Name:          req.Name,
		Description:   req.Description,
		Price:         req.Price,
		StockQuantity: req.StockQuantity,
		ImageURL:      req.ImageURL,
		ShopID:        req.ShopID,
	})
	utils.CreatedResponse(c, gin.H{"product": product})
}

// PUT /products/:id
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	id := c.Param("id")

	existing, ok := h.products.Get(id)
	if !ok {
		utils.NotFoundResponse(c, "Product")
		return
	}

	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	if _, ok := h.shops.Get(req.ShopID); !ok {
		utils.BadRequestResponse(c, "Shop does not exist", nil)
		return
	}

	product := models.Product{
		ID:            existing.ID,
		Name:          req.Name,
		Description:   req.Description,
		Price:         req.Price,
		StockQuantity: req.StockQuantity,
		ImageURL:      req.ImageURL,
		ShopID:        req.ShopID,
		CreatedAt:     existing.CreatedAt,
	}
	h.products.Update(product)

	utils.SuccessResponse(c, gin.H{"product": product})
}

// DELETE /products/:id
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	id := c.Param("id")

	if _, ok := h.products.Get(id); !ok {
		utils.NotFoundResponse(c, "Product")
		return
	}

	h.products.Delete(id)
	utils.SuccessResponse(c, gin.H{"deleted": id})
}

// POST /products/:id/image accepts a multipart upload and stores the result
// as the product image.
func (h *ProductHandler) UploadImage(c *gin.Context) {
	id := c.Param("id")

	product, ok := h.products.Get(id)
	if !ok {
		utils.NotFoundResponse(c, "Product")
		return
	}

	if h.media == nil {
		utils.ErrorResponse(c, http.StatusServiceUnavailable, "MEDIA_UNAVAILABLE", "Media storage is not configured", nil)
		return
	}

	file, header, err := c.Request.FormFile("image")
	if err != nil {
		utils.BadRequestResponse(c, "Image file is required", err.Error())
		return
	}
	defer file.Close()

	result, err := h.media.UploadFile(file, header, h.media.GetDefaultUploadOptions("products"))
	if err != nil {
		utils.BadRequestResponse(c, "Upload failed", err.Error())
		return
	}

	product.ImageURL = result.URL
	h.products.Update(product)

	utils.SuccessResponse(c, gin.H{
		"product": product,
		"upload":  result,
	})
}
