package inventory

import (
	"database/sql"
	"fmt"

	"gorm.io/gorm"

	productEntity "woocommerce.GO/model/entity/product"
)

type InventoryRepository struct {
	db    *gorm.DB
	sqlDB *sql.DB
}

func NewInventoryRepository(db *gorm.DB) (*InventoryRepository, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	return &InventoryRepository{db: db, sqlDB: sqlDB}, nil
}

// StockLevel is the stock state of one SKU.
type StockLevel struct {
	SKU         string `json:"sku"`
	Quantity    *int   `json:"quantity"`
	StockStatus string `json:"stock_status"`
	ManageStock bool   `json:"manage_stock"`
}

// GetQuantityBySKU returns the managed stock quantity for SKU.
// Uses raw SQL for minimal overhead
func (r *InventoryRepository) GetQuantityBySKU(sku string) (int, bool) {
	const query = `SELECT stock_quantity FROM wc_products WHERE sku = ? AND manage_stock = ? LIMIT 1`
	var qty sql.NullInt64
	if err := r.sqlDB.QueryRow(query, sku, true).Scan(&qty); err != nil || !qty.Valid {
		return 0, false
	}
	return int(qty.Int64), true
}

// GetStockBySKU returns the full stock state using GORM.
func (r *InventoryRepository) GetStockBySKU(sku string) (*StockLevel, error) {
	var p productEntity.Product
	err := r.db.Select("sku, stock_quantity, stock_status, manage_stock").Where("sku = ?", sku).Take(&p).Error
	if err != nil {
		return nil, err
	}
	return &StockLevel{SKU: p.SKU, Quantity: p.StockQuantity, StockStatus: p.StockStatus, ManageStock: p.ManageStock}, nil
}

// BatchGetQuantities fetches managed quantities for multiple SKUs in one query
func (r *InventoryRepository) BatchGetQuantities(skus []string) (map[string]int, error) {
	if len(skus) == 0 {
		return nil, nil
	}

	result := make(map[string]int, len(skus))
	rows, err := r.db.Model(&productEntity.Product{}).
		Select("sku, stock_quantity").
		Where("sku IN ? AND manage_stock = ? AND stock_quantity IS NOT NULL", skus, true).
		Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var sku string
		var qty int
		if err := rows.Scan(&sku, &qty); err != nil {
			continue
		}
		result[sku] = qty
	}
	return result, rows.Err()
}

// SetQuantityBySKU turns on stock management for sku and stores qty. The
// stock status follows the quantity unless backorders are allowed.
func (r *InventoryRepository) SetQuantityBySKU(sku string, qty int) error {
	var p productEntity.Product
	if err := r.db.Select("id, backorders").Where("sku = ?", sku).Take(&p).Error; err != nil {
		return fmt.Errorf("sku %q: %w", sku, err)
	}
	status := productEntity.StockInStock
	if qty <= 0 {
		status = productEntity.StockOutOfStock
		if p.Backorders != "no" {
			status = productEntity.StockOnBackorder
		}
	}
	return r.db.Model(&productEntity.Product{}).Where("id = ?", p.ID).Updates(map[string]interface{}{
		"manage_stock":   true,
		"stock_quantity": qty,
		"stock_status":   status,
	}).Error
}

// BulkSetQuantities applies every update in one transaction. Unknown SKUs are
// returned and skipped.
func (r *InventoryRepository) BulkSetQuantities(updates map[string]int) (missing []string, err error) {
	err = r.db.Transaction(func(tx *gorm.DB) error {
		txRepo := &InventoryRepository{db: tx, sqlDB: r.sqlDB}
		for sku, qty := range updates {
			if err := txRepo.SetQuantityBySKU(sku, qty); err != nil {
				if isNotFound(err) {
					missing = append(missing, sku)
					continue
				}
				return err
			}
		}
		return nil
	})
	return missing, err
}
