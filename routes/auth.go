package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/velora-labs/storefront-api/auth"
)

// SetupAuthRoutes registers the "/auth/*" endpoints.
func SetupAuthRoutes(r *gin.Engine, db *gorm.DB) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/google", auth.GoogleUserLoginHandler(db)) // POST /auth/google
		authGroup.POST("/guest", auth.CreateGuestUser(db))         // POST /auth/guest
	}
}
