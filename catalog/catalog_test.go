package catalog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/velora-labs/storefront-api/models"
)

func newTestService(t *testing.T) *Service {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Category{}, &models.Product{}))

	categories := []models.Category{
		{Name: "Beauty", Slug: "beauty"},
		{Name: "Fragrances", Slug: "fragrances"},
		{Name: "Furniture", Slug: "furniture"},
		{Name: "Groceries", Slug: "groceries"},
	}
	require.NoError(t, db.Create(&categories).Error)

	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	products := []models.Product{
		{Name: "Rose Lipstick", Description: "Matte red lipstick", Price: 120, CategoryID: categories[0].ID, CreatedAt: base},
		{Name: "Velvet Mascara", Description: "Waterproof mascara", Price: 350, CategoryID: categories[0].ID, CreatedAt: base.Add(time.Hour)},
		{Name: "Oak Bookshelf", Description: "Five shelf bookcase", Price: 1800, CategoryID: categories[2].ID, CreatedAt: base.Add(2 * time.Hour)},
		{Name: "Citrus Cologne", Description: "Fresh summer scent", Price: 650, CategoryID: categories[1].ID, CreatedAt: base.Add(3 * time.Hour)},
		{Name: "Olive Oil", Description: "Extra virgin, cold pressed", Price: 25, CategoryID: categories[3].ID, CreatedAt: base.Add(4 * time.Hour)},
	}
	require.NoError(t, db.Create(&products).Error)

	return NewService(db)
}

func TestProductsPriceRangeInclusive(t *testing.T) {
	svc := newTestService(t)

	lo, hi := 120.0, 650.0
	res := svc.Products(Filter{MinPrice: &lo, MaxPrice: &hi})

	require.False(t, res.Error)
	require.Equal(t, 3, res.Count)
	for _, p := range res.Products {
		require.GreaterOrEqual(t, p.Price, lo)
		require.LessOrEqual(t, p.Price, hi)
	}
}

func TestProductsCategorySlugExactMatch(t *testing.T) {
	svc := newTestService(t)

	res := svc.Products(Filter{CategorySlug: "beauty"})

	require.False(t, res.Error)
	require.Equal(t, 2, res.Count)
	for _, p := range res.Products {
		require.Equal(t, "beauty", p.Category.Slug)
	}

	require.Zero(t, svc.Products(Filter{CategorySlug: "toys"}).Count)
}

func TestProductsSearchCaseInsensitive(t *testing.T) {
	svc := newTestService(t)

	res := svc.Products(Filter{SearchTerm: "LIPSTICK"})
	require.Equal(t, 1, res.Count)
	require.Equal(t, "Rose Lipstick", res.Products[0].Name)
}

func TestProductsSearchDescriptionsOnlyOnToolPath(t *testing.T) {
	svc := newTestService(t)

	// "waterproof" appears only in a description.
	require.Zero(t, svc.Products(Filter{SearchTerm: "waterproof"}).Count)

	res := svc.Products(Filter{SearchTerm: "waterproof", SearchDescriptions: true})
	require.Equal(t, 1, res.Count)
	require.Equal(t, "Velvet Mascara", res.Products[0].Name)
}

func TestProductsByPriceAscOrdering(t *testing.T) {
	svc := newTestService(t)

	res := svc.Products(Filter{Sort: ByPriceAsc})
	require.False(t, res.Error)
	for i := 1; i < len(res.Products); i++ {
		require.LessOrEqual(t, res.Products[i-1].Price, res.Products[i].Price)
	}
}

func TestProductsByRecencyDescOrdering(t *testing.T) {
	svc := newTestService(t)

	res := svc.Products(Filter{Sort: ByRecencyDesc})
	require.False(t, res.Error)
	require.Equal(t, "Olive Oil", res.Products[0].Name)
	for i := 1; i < len(res.Products); i++ {
		require.False(t, res.Products[i-1].CreatedAt.Before(res.Products[i].CreatedAt))
	}
}

func TestEffectiveLimitDefaults(t *testing.T) {
	require.Equal(t, DefaultToolLimit, effectiveLimit(Filter{Sort: ByPriceAsc}))
	require.Equal(t, MaxBrowseLimit, effectiveLimit(Filter{Sort: ByRecencyDesc}))
	require.Equal(t, 5, effectiveLimit(Filter{Limit: 5}))
	require.Equal(t, MaxBrowseLimit, effectiveLimit(Filter{Limit: 10000}))
}
