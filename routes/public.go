package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/velora-labs/storefront-api/assistant"
	"github.com/velora-labs/storefront-api/catalog"
	chatControllers "github.com/velora-labs/storefront-api/controllers/chat"
	productcontroller "github.com/velora-labs/storefront-api/controllers/product"
)

// SetupPublicRoutes registers the anonymous storefront surface.
func SetupPublicRoutes(r *gin.Engine, db *gorm.DB, svc *catalog.Service, orc *assistant.Orchestrator) {
	r.GET("/products", productcontroller.GetProducts(svc))       // GET /products
	r.GET("/products/:id", productcontroller.GetProductByID(db)) // GET /products/:id
	r.GET("/categories", productcontroller.GetAllCategories(db)) // GET /categories

	r.POST("/chat", chatControllers.Chat(orc)) // POST /chat
}
