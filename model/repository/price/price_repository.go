package price

import (
	"database/sql"

	"gorm.io/gorm"

	productEntity "woocommerce.GO/model/entity/product"
)

type PriceRepository struct {
	db    *gorm.DB
	sqlDB *sql.DB
}

func NewPriceRepository(db *gorm.DB) (*PriceRepository, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	return &PriceRepository{db: db, sqlDB: sqlDB}, nil
}

// GetPriceBySKU returns the active price, i.e. the stored price column.
// Uses raw SQL for minimal overhead
func (r *PriceRepository) GetPriceBySKU(sku string) (float64, bool) {
	const query = `SELECT price FROM wc_products WHERE sku = ? AND price IS NOT NULL LIMIT 1`
	var price sql.NullFloat64
	if err := r.sqlDB.QueryRow(query, sku).Scan(&price); err != nil || !price.Valid {
		return 0, false
	}
	return price.Float64, true
}

// PriceResult holds the price columns of one SKU.
type PriceResult struct {
	SKU          string   `json:"sku"`
	Price        *float64 `json:"price"`
	RegularPrice *float64 `json:"regular_price"`
	SalePrice    *float64 `json:"sale_price"`
}

// GetPricesBySKU returns every price column for sku using GORM.
func (r *PriceRepository) GetPricesBySKU(sku string) (*PriceResult, error) {
	var p productEntity.Product
	err := r.db.Select("sku, price, regular_price, sale_price").Where("sku = ?", sku).Take(&p).Error
	if err != nil {
		return nil, err
	}
	return &PriceResult{SKU: p.SKU, Price: p.Price, RegularPrice: p.RegularPrice, SalePrice: p.SalePrice}, nil
}

// PriceRange returns the lowest and highest price of parentID's children
// for the given column (price, regular_price or sale_price).
func (r *PriceRepository) PriceRange(parentID uint, column string) (min, max float64, ok bool) {
	switch column {
	case "price", "regular_price", "sale_price":
	default:
		return 0, 0, false
	}
	query := `SELECT MIN(` + column + `), MAX(` + column + `) FROM wc_products
		WHERE parent_id = ? AND status = 'publish' AND ` + column + ` IS NOT NULL`
	var lo, hi sql.NullFloat64
	if err := r.sqlDB.QueryRow(query, parentID).Scan(&lo, &hi); err != nil || !lo.Valid {
		return 0, 0, false
	}
	return lo.Float64, hi.Float64, true
}
