package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	orderControllers "github.com/velora-labs/storefront-api/controllers/order"
	"github.com/velora-labs/storefront-api/middleware"
)

// SetupOrderRoutes registers the "/orders/*" endpoints. Requires JWT middleware.
func SetupOrderRoutes(r *gin.Engine, db *gorm.DB) {
	orderGroup := r.Group("/orders")
	orderGroup.Use(middleware.ValidateToken)
	{
		orderGroup.POST("/checkout", orderControllers.CheckoutHandler(db))          // POST /orders/checkout
		orderGroup.GET("/my", orderControllers.GetUserOrdersHandler(db))            // GET /orders/my
		orderGroup.PUT("/:orderID/cancel", orderControllers.CancelOrderHandler(db)) // PUT /orders/:orderID/cancel
	}
}
