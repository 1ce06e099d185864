package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	cartControllers "github.com/velora-labs/storefront-api/controllers/cart"
	userControllers "github.com/velora-labs/storefront-api/controllers/user"
	"github.com/velora-labs/storefront-api/middleware"
)

// SetupUserRoutes registers the "/user/*" endpoints. Requires JWT middleware.
func SetupUserRoutes(r *gin.Engine, db *gorm.DB) {
	userGroup := r.Group("/user")
	userGroup.Use(middleware.ValidateToken)
	{
		userGroup.GET("", userControllers.GetUser(db))    // GET /user
		userGroup.PUT("", userControllers.UpdateUser(db)) // PUT /user

		cartGroup := userGroup.Group("/cart")
		{
			cartGroup.GET("", cartControllers.GetUserCart(db))                   // GET /user/cart
			cartGroup.POST("", cartControllers.AddCartItem(db))                  // POST /user/cart
			cartGroup.PUT("", cartControllers.SetCartItemQuantity(db))           // PUT /user/cart
			cartGroup.DELETE("/:product_id", cartControllers.DeleteCartItem(db)) // DELETE /user/cart/:product_id
			cartGroup.DELETE("", cartControllers.ClearUserCart(db))              // DELETE /user/cart
		}
	}
}
