package catalog

import (
	"math"
	"strconv"
	"strings"

	"github.com/velora-labs/storefront-api/models"
)

type Comparison struct {
	Cheaper         models.Product `json:"cheaper"`
	Expensive       models.Product `json:"expensive"`
	PriceDifference float64        `json:"price_difference"`
}

type CompareResult struct {
	Products   []models.Product `json:"products"`
	Comparison *Comparison      `json:"comparison"`
	Message    string           `json:"message"`
	Error      bool             `json:"error"`
}

// Compare fetches the first two requested products and derives which is
// cheaper, which more expensive, and the absolute price gap. With equal
// prices the strict comparisons leave both roles on the first product;
// that is intentional, not an error.
func (s *Service) Compare(productIDs []string) CompareResult {
	if len(productIDs) > 2 {
		productIDs = productIDs[:2]
	}

	ids := make([]uint, 0, 2)
	for _, raw := range productIDs {
		id, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 64)
		if err != nil {
			continue
		}
		ids = append(ids, uint(id))
	}

	var fetched []models.Product
	if len(ids) == 2 {
		if err := s.db.Preload("Category").Where("id IN ?", ids).Limit(2).Find(&fetched).Error; err != nil {
			return CompareResult{Products: []models.Product{}, Message: err.Error(), Error: true}
		}
	}

	// Keep the caller's ordering: "first" below means first requested.
	products := make([]models.Product, 0, 2)
	for _, id := range ids {
		for _, p := range fetched {
			if p.ID == id {
				products = append(products, p)
				break
			}
		}
	}
	if len(products) < 2 {
		return CompareResult{
			Products: []models.Product{},
			Message:  "Need exactly 2 valid product IDs to compare",
			Error:    true,
		}
	}

	first, second := products[0], products[1]
	cheaper, expensive := first, first
	if second.Price < first.Price {
		cheaper = second
	}
	if second.Price > first.Price {
		expensive = second
	}

	return CompareResult{
		Products: products,
		Comparison: &Comparison{
			Cheaper:         cheaper,
			Expensive:       expensive,
			PriceDifference: math.Abs(first.Price - second.Price),
		},
		Message: "Comparison complete",
	}
}
