package productcontroller

import (
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/velora-labs/storefront-api/models"
)

// feedURL is a var so tests can point the seeder at a stub server.
var feedURL = "https://dummyjson.com/products?limit=0"

var feedClient = &http.Client{Timeout: 30 * time.Second}

type feedProduct struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Category    string   `json:"category"`
	Thumbnail   string   `json:"thumbnail"`
	Images      []string `json:"images"`
}

type feedResponse struct {
	Products []feedProduct `json:"products"`
}

// The four category slugs the storefront recognizes. Feed categories
// outside this set fall back to beauty.
var localCategories = map[string]string{
	"beauty":     "Beauty",
	"fragrances": "Fragrances",
	"furniture":  "Furniture",
	"groceries":  "Groceries",
}

func mapFeedCategory(raw string) string {
	if _, ok := localCategories[raw]; ok {
		return raw
	}
	return "beauty"
}

func normalizeImageURL(p feedProduct) string {
	if p.Thumbnail != "" {
		return p.Thumbnail
	}
	if len(p.Images) > 0 && p.Images[0] != "" {
		return p.Images[0]
	}
	return fmt.Sprintf("https://dummyjson.com/image/i/products/%d/1.jpg", rand.Intn(40)+1)
}

func ensureCategories(db *gorm.DB) (map[string]uint, error) {
	out := make(map[string]uint, len(localCategories))
	for slug, name := range localCategories {
		category := models.Category{Slug: slug, Name: name}
		if err := db.Where(models.Category{Slug: slug}).FirstOrCreate(&category).Error; err != nil {
			return nil, err
		}
		out[slug] = category.ID
	}
	return out, nil
}

// GET /admin/seed
//
// Idempotent-destructive: wipes the product table and reloads it from the
// external feed, mapping feed categories onto the local slugs.
func SeedProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		categoryIDs, err := ensureCategories(db)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to prepare categories"})
			return
		}

		if err := db.Where("id > 0").Delete(&models.Product{}).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear products"})
			return
		}

		req, err := http.NewRequestWithContext(c.Request.Context(), http.MethodGet, feedURL, nil)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Fetch failed"})
			return
		}
		req.Header.Set("Accept", "application/json")

		resp, err := feedClient.Do(req)
		if err != nil {
			log.Printf("❌ Product feed fetch failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Fetch failed"})
			return
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Fetch failed: %d", resp.StatusCode)})
			return
		}

		var feed feedResponse
		if err := json.NewDecoder(resp.Body).Decode(&feed); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid feed payload"})
			return
		}

		count := 0
		for _, p := range feed.Products {
			product := models.Product{
				Name:        p.Title,
				Description: p.Description,
				Price:       p.Price,
				ImageURL:    normalizeImageURL(p),
				CategoryID:  categoryIDs[mapFeedCategory(p.Category)],
			}
			if err := db.Create(&product).Error; err != nil {
				log.Printf("❌ Failed to insert seeded product %q: %v", p.Title, err)
				continue
			}
			count++
		}

		log.Printf("✅ Seeded %d products from feed", count)
		c.JSON(http.StatusOK, gin.H{"success": true, "count": count})
	}
}
