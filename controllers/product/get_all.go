package productcontroller

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/velora-labs/storefront-api/catalog"
)

const (
	defaultMinPrice = 0
	defaultMaxPrice = 2500
)

// GET /products
//
// Browse listing: newest first, price bounds defaulting to 0-2500, exact
// category slug, free-text match on the product name. The q parameter is
// independent of the category filter.
func GetProducts(svc *catalog.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		filter := catalog.Filter{Sort: catalog.ByRecencyDesc}

		minPrice, err := strconv.ParseFloat(c.DefaultQuery("minPrice", "0"), 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid minPrice"})
			return
		}
		maxPrice, err := strconv.ParseFloat(c.DefaultQuery("maxPrice", "2500"), 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid maxPrice"})
			return
		}
		if minPrice > defaultMinPrice {
			filter.MinPrice = &minPrice
		}
		if maxPrice < defaultMaxPrice {
			filter.MaxPrice = &maxPrice
		}

		filter.CategorySlug = c.Query("category")
		filter.SearchTerm = strings.TrimSpace(c.Query("q"))

		res := svc.Products(filter)
		if res.Error {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"products": res.Products, "count": res.Count})
	}
}
