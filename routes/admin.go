package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/velora-labs/storefront-api/catalog"
	cartControllers "github.com/velora-labs/storefront-api/controllers/cart"
	orderControllers "github.com/velora-labs/storefront-api/controllers/order"
	productcontroller "github.com/velora-labs/storefront-api/controllers/product"
	userControllers "github.com/velora-labs/storefront-api/controllers/user"
	"github.com/velora-labs/storefront-api/middleware"
)

// SetupAdminRoutes registers all "/admin/*" endpoints. Requires API-key middleware.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB, svc *catalog.Service) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateAPIKey)
	{
		adminGroup.GET("/users", userControllers.GetAllUsers(db))
		adminGroup.GET("/seed", productcontroller.SeedProducts(db))

		productAdmin := adminGroup.Group("/products")
		{
			productAdmin.GET("", productcontroller.GetProducts(svc))
			productAdmin.POST("", productcontroller.CreateProduct(db))
			productAdmin.PUT("/:id", productcontroller.UpdateProduct(db))
			productAdmin.DELETE("/:id", productcontroller.DeleteProduct(db))
			productAdmin.GET("/export-excel", productcontroller.ExportProductsToExcel(db))
		}

		categoryAdmin := adminGroup.Group("/categories")
		{
			categoryAdmin.GET("", productcontroller.GetAllCategories(db))
			categoryAdmin.POST("", productcontroller.CreateCategory(db))
			categoryAdmin.DELETE("/:id", productcontroller.DeleteCategory(db))
		}

		orderAdmin := adminGroup.Group("/orders")
		{
			orderAdmin.GET("", orderControllers.GetAllOrdersHandler(db))
			orderAdmin.PUT("/:orderID/status", orderControllers.UpdateOrderStatusHandler(db))
			orderAdmin.GET("/ws", orderControllers.OrderWebSocketHandler)
		}

		cartAdmin := adminGroup.Group("/user-cart")
		{
			cartAdmin.GET("/:user_id", cartControllers.GetAdminUserCart(db))
		}
	}
}
