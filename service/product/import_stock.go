package product

import (
	"strconv"

	productEntity "woocommerce.GO/model/entity/product"
)

var backorderValues = map[string]bool{"no": true, "notify": true, "yes": true}

var stockStatusValues = map[string]bool{
	productEntity.StockInStock: true, productEntity.StockOutOfStock: true, productEntity.StockOnBackorder: true,
}

// collectStock validates stock cells. A quantity turns stock management on
// and, unless a status is given, sets it the way a stock update would.
func collectStock(rec *record) []string {
	var warnings []string
	if v, ok := rec.cells["backorders"]; ok && !backorderValues[v] {
		warnings = append(warnings, rec.warnf("invalid backorders %q", v))
		delete(rec.cells, "backorders")
	}
	if v, ok := rec.cells["stock_status"]; ok && !stockStatusValues[v] {
		warnings = append(warnings, rec.warnf("invalid stock_status %q", v))
		delete(rec.cells, "stock_status")
	}

	v, ok := rec.cells["stock_quantity"]
	if !ok {
		return warnings
	}
	qty, err := strconv.Atoi(v)
	if err != nil {
		warnings = append(warnings, rec.warnf("invalid stock_quantity %q", v))
		delete(rec.cells, "stock_quantity")
		return warnings
	}
	if _, ok := rec.cells["manage_stock"]; !ok {
		rec.cells["manage_stock"] = "1"
	}
	if _, ok := rec.cells["stock_status"]; !ok {
		status := productEntity.StockInStock
		if qty <= 0 {
			status = productEntity.StockOutOfStock
			if b, ok := rec.cells["backorders"]; ok && b != "no" {
				status = productEntity.StockOnBackorder
			}
		}
		rec.cells["stock_status"] = status
	}
	return warnings
}
