// internal/router/router.go
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/eventide-app/eventide-backend/internal/config"
	"github.com/eventide-app/eventide-backend/internal/handlers"
	"github.com/eventide-app/eventide-backend/internal/kv"
	"github.com/eventide-app/eventide-backend/internal/middleware"
	"github.com/eventide-app/eventide-backend/internal/services"
	"github.com/eventide-app/eventide-backend/internal/store"
	"github.com/eventide-app/eventide-backend/internal/utils"
)

func Initialize(kvStore kv.Store, cfg *config.Config) *gin.Engine {
	// Initialize stores
	userStore := store.NewUserStore(kvStore)
	eventStore := store.NewEventStore(kvStore)
	postStore := store.NewPostStore(kvStore)
	commentStore := store.NewCommentStore(kvStore)
	shopStore := store.NewShopStore(kvStore)
	productStore := store.NewProductStore(kvStore)
	orderStore := store.NewOrderStore(kvStore)
	cartStore := store.NewCartStore(kvStore)
	chatStore := store.NewChatStore(kvStore, userStore)

	// Initialize services
	descriptionService := services.NewDescriptionService(cfg)
	checkoutService := services.NewCheckoutService(productStore, orderStore, cartStore, cfg)
	mediaService, err := services.NewMediaService(cfg)
	if err != nil {
		logrus.WithError(err).Warn("Media service unavailable, uploads will fail")
	}

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userStore, cfg)
	eventHandler := handlers.NewEventHandler(eventStore, descriptionService)
	postHandler := handlers.NewPostHandler(postStore, commentStore)
	commentHandler := handlers.NewCommentHandler(commentStore, postStore)
	shopHandler := handlers.NewShopHandler(shopStore, productStore)
	productHandler := handlers.NewProductHandler(productStore, shopStore, mediaService)
	orderHandler := handlers.NewOrderHandler(orderStore)
	cartHandler := handlers.NewCartHandler(cartStore, productStore, checkoutService)
	chatHandler := handlers.NewChatHandler(chatStore, userStore)

	// Set JWT secret
	utils.SetJWTSecret(cfg.JWT.SecretKey)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS(cfg))
	if gin.Mode() != gin.TestMode {
		r.Use(middleware.GeneralRateLimit())
	}
	r.Use(middleware.OptionalAuth())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	// API v1 routes
	v1 := r.Group("/v1")
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/signin", authHandler.SignIn)
			auth.GET("/me", authHandler.Me)
		}

		events := v1.Group("/events")
		{
			events.GET("", eventHandler.ListEvents)
			events.POST("", eventHandler.CreateEvent)
			events.GET("/saved", eventHandler.SavedEvents)
			events.POST("/generate-description", middleware.AIRateLimit(), eventHandler.GenerateDescription)
			events.GET("/:id", eventHandler.GetEvent)
			events.PUT("/:id", eventHandler.UpdateEvent)
			events.DELETE("/:id", eventHandler.DeleteEvent)
			events.POST("/:id/save", eventHandler.ToggleSave)
		}

		posts := v1.Group("/posts")
		{
			posts.GET("", postHandler.ListPosts)
			posts.POST("", postHandler.CreatePost)
			posts.DELETE("/:id", postHandler.DeletePost)
			posts.POST("/:id/like", postHandler.ToggleLike)
			posts.GET("/:id/comments", commentHandler.ListComments)
			posts.POST("/:id/comments", commentHandler.CreateComment)
		}

		v1.DELETE("/comments/:id", commentHandler.DeleteComment)

		shops := v1.Group("/shops")
		{
			shops.GET("", shopHandler.ListShops)
			shops.POST("", shopHandler.CreateShop)
			shops.GET("/:id", shopHandler.GetShop)
			shops.PUT("/:id", shopHandler.UpdateShop)
			shops.DELETE("/:id", shopHandler.DeleteShop)
			shops.GET("/:id/products", productHandler.ListShopProducts)
		}

		products := v1.Group("/products")
		{
			products.GET("", productHandler.ListProducts)
			products.POST("", productHandler.CreateProduct)
			products.GET("/:id", productHandler.GetProduct)
			products.PUT("/:id", productHandler.UpdateProduct)
			products.DELETE("/:id", productHandler.DeleteProduct)
			products.POST("/:id/image", middleware.UploadRateLimit(), productHandler.UploadImage)
		}

		cart := v1.Group("/cart")
		{
			cart.GET("", cartHandler.GetCart)
			cart.DELETE("", cartHandler.ClearCart)
			cart.POST("/items", cartHandler.AddItem)
			cart.PUT("/items", cartHandler.UpdateQuantity)
			cart.DELETE("/items/:productId", cartHandler.RemoveItem)
		}

		v1.POST("/checkout", cartHandler.Checkout)

		orders := v1.Group("/orders")
		{
			orders.GET("", orderHandler.ListOrders)
			orders.GET("/:id", orderHandler.GetOrder)
			orders.PUT("/:id/status", orderHandler.UpdateStatus)
		}

		chat := v1.Group("/chat")
		{
			chat.GET("/conversations", chatHandler.ListConversations)
			chat.POST("/conversations", chatHandler.FindOrCreateConversation)
			chat.GET("/conversations/:id/messages", chatHandler.ListMessages)
			chat.POST("/conversations/:id/messages", chatHandler.SendMessage)
		}

		v1.GET("/users", chatHandler.ListUsers)
	}

	return r
}
