package graphql

// Enum maps GraphQL enum names to stored values.
type Enum struct {
	values map[string]string
	names  map[string]string
}

func newEnum(values map[string]string) Enum {
	names := make(map[string]string, len(values))
	for name, v := range values {
		names[v] = name
	}
	return Enum{values: values, names: names}
}

// Value returns the stored value for an enum name.
func (e Enum) Value(name string) (string, bool) {
	v, ok := e.values[name]
	return v, ok
}

// Values maps a list of names, dropping unknown ones.
func (e Enum) Values(names []string) []string {
	out := make([]string, 0, len(names))
	for _, n := range names {
		if v, ok := e.values[n]; ok {
			out = append(out, v)
		}
	}
	return out
}

// Name returns the enum name for a stored value, or nil when unknown.
func (e Enum) Name(value string) *string {
	n, ok := e.names[value]
	if !ok {
		return nil
	}
	return &n
}

var (
	ProductTypes = newEnum(map[string]string{
		"SIMPLE":    "simple",
		"VARIABLE":  "variable",
		"GROUPED":   "grouped",
		"EXTERNAL":  "external",
		"VARIATION": "variation",
	})
	CatalogVisibility = newEnum(map[string]string{
		"VISIBLE": "visible",
		"CATALOG": "catalog",
		"SEARCH":  "search",
		"HIDDEN":  "hidden",
	})
	TaxStatus = newEnum(map[string]string{
		"TAXABLE":  "taxable",
		"SHIPPING": "shipping",
		"NONE":     "none",
	})
	TaxClass = newEnum(map[string]string{
		"STANDARD":     "",
		"REDUCED_RATE": "reduced-rate",
		"ZERO_RATE":    "zero-rate",
	})
	StockStatus = newEnum(map[string]string{
		"IN_STOCK":     "instock",
		"OUT_OF_STOCK": "outofstock",
		"ON_BACKORDER": "onbackorder",
	})
	Backorders = newEnum(map[string]string{
		"NO":     "no",
		"NOTIFY": "notify",
		"YES":    "yes",
	})
	DiscountType = newEnum(map[string]string{
		"PERCENT":       "percent",
		"FIXED_CART":    "fixed_cart",
		"FIXED_PRODUCT": "fixed_product",
	})
	OrderStatus = newEnum(map[string]string{
		"PENDING":    "pending",
		"PROCESSING": "processing",
		"ON_HOLD":    "on-hold",
		"COMPLETED":  "completed",
		"CANCELLED":  "cancelled",
		"REFUNDED":   "refunded",
		"FAILED":     "failed",
	})
	MediaSize = newEnum(map[string]string{
		"THUMBNAIL":    "thumbnail",
		"MEDIUM":       "medium",
		"MEDIUM_LARGE": "medium_large",
		"LARGE":        "large",
	})
)
