package product

import (
	"strconv"
	"time"
)

var priceColumns = []string{"regular_price", "sale_price", "price"}

var saleDateColumns = []string{"date_on_sale_from", "date_on_sale_to"}

// collectPrice validates price cells and derives the active price: the sale
// price when one is set, otherwise the regular price.
func collectPrice(rec *record) []string {
	var warnings []string
	prices := make(map[string]float64, len(priceColumns))
	for _, col := range priceColumns {
		v, ok := rec.cells[col]
		if !ok {
			continue
		}
		fv, err := strconv.ParseFloat(v, 64)
		if err != nil || fv < 0 {
			warnings = append(warnings, rec.warnf("invalid %s %q", col, v))
			delete(rec.cells, col)
			continue
		}
		prices[col] = fv
	}

	regular, hasRegular := prices["regular_price"]
	sale, hasSale := prices["sale_price"]
	if hasRegular && hasSale && sale >= regular {
		warnings = append(warnings, rec.warnf("sale price %v not below regular price %v, ignoring", sale, regular))
		delete(rec.cells, "sale_price")
		hasSale = false
	}
	if _, ok := prices["price"]; !ok {
		switch {
		case hasSale:
			rec.cells["price"] = rec.cells["sale_price"]
		case hasRegular:
			rec.cells["price"] = rec.cells["regular_price"]
		}
	}

	for _, col := range saleDateColumns {
		v, ok := rec.cells[col]
		if !ok {
			continue
		}
		if _, err := time.Parse(dateLayout, v); err != nil {
			warnings = append(warnings, rec.warnf("invalid %s %q, want YYYY-MM-DD", col, v))
			delete(rec.cells, col)
		}
	}
	return warnings
}
