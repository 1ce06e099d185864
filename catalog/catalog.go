package catalog

import (
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/velora-labs/storefront-api/models"
)

// SortMode selects the default ordering of a query. The chat tools list
// cheapest first; the browse page lists newest first.
type SortMode int

const (
	ByPriceAsc SortMode = iota
	ByRecencyDesc
)

const (
	DefaultToolLimit = 20
	MaxBrowseLimit   = 500
)

type Filter struct {
	CategorySlug string
	MinPrice     *float64
	MaxPrice     *float64
	SearchTerm   string
	Limit        int
	Sort         SortMode
	// SearchDescriptions widens the free-text match from name-only to
	// name-or-description. The chat tool path sets it; the browse page
	// matches names only.
	SearchDescriptions bool
}

type QueryResult struct {
	Products []models.Product `json:"products"`
	Count    int              `json:"count"`
	Message  string           `json:"message"`
	Error    bool             `json:"error"`
}

// Finder is the read-only catalog surface the chat tools dispatch against.
type Finder interface {
	Products(f Filter) QueryResult
	Compare(productIDs []string) CompareResult
}

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// Products runs a filtered catalog query. Failures never escape as errors:
// the result carries an empty set with Error set and a readable message.
func (s *Service) Products(f Filter) QueryResult {
	query := s.db.Model(&models.Product{}).Preload("Category")

	if f.CategorySlug != "" {
		query = query.
			Joins("JOIN categories ON categories.id = products.category_id").
			Where("categories.slug = ?", f.CategorySlug)
	}
	if f.MinPrice != nil {
		query = query.Where("price >= ?", *f.MinPrice)
	}
	if f.MaxPrice != nil {
		query = query.Where("price <= ?", *f.MaxPrice)
	}
	if term := strings.TrimSpace(f.SearchTerm); term != "" {
		pattern := "%" + strings.ToLower(term) + "%"
		if f.SearchDescriptions {
			query = query.Where("LOWER(products.name) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern)
		} else {
			query = query.Where("LOWER(products.name) LIKE ?", pattern)
		}
	}

	switch f.Sort {
	case ByRecencyDesc:
		query = query.Order("created_at DESC")
	default:
		query = query.Order("price ASC")
	}

	query = query.Limit(effectiveLimit(f))

	var products []models.Product
	if err := query.Find(&products).Error; err != nil {
		return QueryResult{Products: []models.Product{}, Message: err.Error(), Error: true}
	}

	return QueryResult{
		Products: products,
		Count:    len(products),
		Message:  fmt.Sprintf("%d products found", len(products)),
	}
}

func effectiveLimit(f Filter) int {
	switch {
	case f.Limit <= 0 && f.Sort == ByRecencyDesc:
		return MaxBrowseLimit
	case f.Limit <= 0:
		return DefaultToolLimit
	case f.Limit > MaxBrowseLimit:
		return MaxBrowseLimit
	}
	return f.Limit
}
