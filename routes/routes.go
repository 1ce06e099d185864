package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/velora-labs/storefront-api/assistant"
	"github.com/velora-labs/storefront-api/catalog"
)

// SetupRoutes is the single entry-point that wires up every route group.
func SetupRoutes(r *gin.Engine, db *gorm.DB, svc *catalog.Service, orc *assistant.Orchestrator) {
	// Public auth routes (no middleware)
	SetupAuthRoutes(r, db)

	// Public storefront: browse, detail, categories, chat widget
	SetupPublicRoutes(r, db, svc, orc)

	// Guest cart routes (keyed by guest_id)
	SetupGuestRoutes(r, db)

	// User routes (JWT-protected)
	SetupUserRoutes(r, db)

	// Order routes (JWT-protected)
	SetupOrderRoutes(r, db)

	// Admin routes (API-key-protected)
	SetupAdminRoutes(r, db, svc)
}
