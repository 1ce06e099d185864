package assistant

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/velora-labs/storefront-api/catalog"
	"github.com/velora-labs/storefront-api/models"
)

// fakeFinder records the filters and ids it was called with.
type fakeFinder struct {
	lastFilter  *catalog.Filter
	lastIDs     []string
	queryResult catalog.QueryResult
	compare     catalog.CompareResult
}

func (f *fakeFinder) Products(filter catalog.Filter) catalog.QueryResult {
	f.lastFilter = &filter
	return f.queryResult
}

func (f *fakeFinder) Compare(ids []string) catalog.CompareResult {
	f.lastIDs = ids
	return f.compare
}

func TestExecuteGetProductsMapsArgs(t *testing.T) {
	finder := &fakeFinder{queryResult: catalog.QueryResult{
		Products: []models.Product{{ID: 7, Name: "Rose Lipstick", Price: 120}},
		Count:    1,
		Message:  "1 products found",
	}}
	tb := NewToolbox(finder)

	out := tb.Execute("getProducts", map[string]any{
		"categorySlug": "beauty",
		"maxPrice":     500.0,
		"limit":        5.0,
	})

	require.NotNil(t, finder.lastFilter)
	require.Equal(t, "beauty", finder.lastFilter.CategorySlug)
	require.NotNil(t, finder.lastFilter.MaxPrice)
	require.Equal(t, 500.0, *finder.lastFilter.MaxPrice)
	require.Nil(t, finder.lastFilter.MinPrice)
	require.Equal(t, 5, finder.lastFilter.Limit)
	require.Equal(t, catalog.ByPriceAsc, finder.lastFilter.Sort)
	require.True(t, finder.lastFilter.SearchDescriptions)

	require.Equal(t, float64(1), out["count"])
	require.NotEmpty(t, out["products"])
}

func TestExecuteCompareProductsCoercesIDs(t *testing.T) {
	finder := &fakeFinder{compare: catalog.CompareResult{Message: "Comparison complete"}}
	tb := NewToolbox(finder)

	tb.Execute("compareProducts", map[string]any{
		"productIds": []any{"1", 2.0},
	})

	require.Equal(t, []string{"1", "2"}, finder.lastIDs)
}

func TestExecuteUnknownTool(t *testing.T) {
	tb := NewToolbox(&fakeFinder{})

	out := tb.Execute("deleteAllOrders", map[string]any{})

	require.Equal(t, map[string]any{"error": "Unknown tool function"}, out)
}
