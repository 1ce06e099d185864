package assistant

import (
	"encoding/json"
	"strconv"

	"github.com/google/generative-ai-go/genai"

	"github.com/velora-labs/storefront-api/catalog"
)

// Toolbox dispatches the model's function calls onto the read-only catalog
// surface. It never returns an error to the orchestrator: bad calls come
// back as error payloads the model can read.
type Toolbox struct {
	finder catalog.Finder
}

func NewToolbox(finder catalog.Finder) *Toolbox {
	return &Toolbox{finder: finder}
}

// Declarations describes the callable tools the model may request.
func (t *Toolbox) Declarations() []*genai.Tool {
	return []*genai.Tool{{
		FunctionDeclarations: []*genai.FunctionDeclaration{
			{
				Name:        "getProducts",
				Description: "Fetch real products from the catalog by category, price range or search term.",
				Parameters: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"categorySlug": {Type: genai.TypeString, Description: "beauty, fragrances, furniture, groceries"},
						"minPrice":     {Type: genai.TypeNumber},
						"maxPrice":     {Type: genai.TypeNumber},
						"searchTerm":   {Type: genai.TypeString},
						"limit":        {Type: genai.TypeInteger},
					},
				},
			},
			{
				Name:        "compareProducts",
				Description: "Compare 2 products by ID. Returns both products, the cheaper one, the more expensive one and the price difference.",
				Parameters: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"productIds": {
							Type:        genai.TypeArray,
							Items:       &genai.Schema{Type: genai.TypeString},
							Description: `Exactly 2 product IDs as strings, e.g. ["1", "2"]`,
						},
					},
					Required: []string{"productIds"},
				},
			},
		},
	}}
}

// Execute runs the named tool and shapes its result for a FunctionResponse
// part. Unknown names resolve to an error payload, never a panic.
func (t *Toolbox) Execute(name string, args map[string]any) map[string]any {
	switch name {
	case "getProducts":
		return asMap(t.finder.Products(filterFromArgs(args)))
	case "compareProducts":
		return asMap(t.finder.Compare(idsFromArgs(args)))
	default:
		return map[string]any{"error": "Unknown tool function"}
	}
}

func filterFromArgs(args map[string]any) catalog.Filter {
	f := catalog.Filter{Sort: catalog.ByPriceAsc, SearchDescriptions: true}
	if v, ok := args["categorySlug"].(string); ok {
		f.CategorySlug = v
	}
	if v, ok := args["minPrice"].(float64); ok {
		f.MinPrice = &v
	}
	if v, ok := args["maxPrice"].(float64); ok {
		f.MaxPrice = &v
	}
	if v, ok := args["searchTerm"].(string); ok {
		f.SearchTerm = v
	}
	if v, ok := args["limit"].(float64); ok {
		f.Limit = int(v)
	}
	return f
}

func idsFromArgs(args map[string]any) []string {
	raw, _ := args["productIds"].([]any)
	ids := make([]string, 0, len(raw))
	for _, v := range raw {
		switch id := v.(type) {
		case string:
			ids = append(ids, id)
		case float64:
			ids = append(ids, strconv.FormatFloat(id, 'f', -1, 64))
		}
	}
	return ids
}

// asMap converts a tool result into the generic map shape FunctionResponse
// requires, going through JSON so field tags stay authoritative.
func asMap(v any) map[string]any {
	raw, err := json.Marshal(v)
	if err != nil {
		return map[string]any{"error": err.Error()}
	}
	out := map[string]any{}
	if err := json.Unmarshal(raw, &out); err != nil {
		return map[string]any{"error": err.Error()}
	}
	return out
}
