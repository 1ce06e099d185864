package productcontroller

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/velora-labs/storefront-api/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Category{}, &models.Product{}))
	return db
}

func TestMapFeedCategory(t *testing.T) {
	require.Equal(t, "fragrances", mapFeedCategory("fragrances"))
	require.Equal(t, "groceries", mapFeedCategory("groceries"))
	require.Equal(t, "beauty", mapFeedCategory("smartphones"))
	require.Equal(t, "beauty", mapFeedCategory(""))
}

func TestNormalizeImageURL(t *testing.T) {
	require.Equal(t, "https://a/thumb.jpg", normalizeImageURL(feedProduct{
		Thumbnail: "https://a/thumb.jpg",
		Images:    []string{"https://a/1.jpg"},
	}))
	require.Equal(t, "https://a/1.jpg", normalizeImageURL(feedProduct{
		Images: []string{"https://a/1.jpg"},
	}))

	placeholder := normalizeImageURL(feedProduct{})
	require.True(t, strings.HasPrefix(placeholder, "https://dummyjson.com/image/i/products/"))
	require.True(t, strings.HasSuffix(placeholder, "/1.jpg"))
}

func TestSeedProductsFromFeed(t *testing.T) {
	feed := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"products":[
			{"title":"Red Lipstick","description":"Classic red","price":12.99,"category":"beauty","thumbnail":"https://a/t1.jpg"},
			{"title":"Gaming Laptop","description":"Fast","price":999,"category":"laptops","images":["https://a/l1.jpg"]},
			{"title":"Dining Table","description":"Oak","price":450,"category":"furniture","thumbnail":"https://a/t3.jpg"}
		]}`))
	}))
	defer feed.Close()

	oldURL := feedURL
	feedURL = feed.URL
	defer func() { feedURL = oldURL }()

	db := newTestDB(t)

	// A stale product that must be wiped.
	require.NoError(t, db.Create(&models.Product{Name: "Old Stock", Price: 1}).Error)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/admin/seed", SeedProducts(db))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/seed", nil))

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"count":3`)

	var products []models.Product
	require.NoError(t, db.Preload("Category").Find(&products).Error)
	require.Len(t, products, 3)

	bySlug := map[string]string{}
	for _, p := range products {
		require.NotEqual(t, "Old Stock", p.Name)
		bySlug[p.Name] = p.Category.Slug
	}
	require.Equal(t, "beauty", bySlug["Red Lipstick"])
	// Unrecognized feed category falls back to beauty.
	require.Equal(t, "beauty", bySlug["Gaming Laptop"])
	require.Equal(t, "furniture", bySlug["Dining Table"])
}

func TestSeedProductsFeedFailure(t *testing.T) {
	feed := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer feed.Close()

	oldURL := feedURL
	feedURL = feed.URL
	defer func() { feedURL = oldURL }()

	db := newTestDB(t)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/admin/seed", SeedProducts(db))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/seed", nil))

	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.Contains(t, w.Body.String(), "Fetch failed: 502")
}
