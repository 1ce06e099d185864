package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	cartControllers "github.com/velora-labs/storefront-api/controllers/cart"
)

// SetupGuestRoutes registers the "/guest/cart" endpoints. Guest carts are
// addressed by the guest_id query parameter rather than a JWT so the
// widget can talk to them before any sign-in happens.
func SetupGuestRoutes(r *gin.Engine, db *gorm.DB) {
	guestCart := r.Group("/guest/cart")
	{
		guestCart.GET("", cartControllers.GetGuestCart(db))                       // GET /guest/cart?guest_id=
		guestCart.POST("", cartControllers.AddGuestCartItem(db))                  // POST /guest/cart?guest_id=
		guestCart.PUT("", cartControllers.SetGuestCartItemQuantity(db))           // PUT /guest/cart?guest_id=
		guestCart.DELETE("/:product_id", cartControllers.DeleteGuestCartItem(db)) // DELETE /guest/cart/:product_id?guest_id=
		guestCart.DELETE("", cartControllers.ClearGuestCart(db))                  // DELETE /guest/cart?guest_id=
	}
}
