// Package product imports catalog rows from CSV into wc_products.
package product

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"gorm.io/gorm"

	productEntity "woocommerce.GO/model/entity/product"
)

// ImportOptions configures a product import run.
type ImportOptions struct {
	BatchSize int
	// MediaDir is where image column paths are resolved. Empty disables images.
	MediaDir string
}

// ImportResult holds counters and timing from an import run.
type ImportResult struct {
	TotalRows   int
	Created     int
	Updated     int
	Skipped     int
	Media       int
	Warnings    []string
	ProcessTime time.Duration
	DBTime      time.Duration
	TotalTime   time.Duration
}

// record is the non-empty cells of one product, keyed by column.
type record struct {
	line  int
	sku   string
	cells map[string]string
}

func (r *record) warnf(format string, args ...interface{}) string {
	return fmt.Sprintf("line %d (sku=%s): ", r.line, r.sku) + fmt.Sprintf(format, args...)
}

// ImportProducts reads CSV data from r and upserts products by sku. Empty
// cells leave the stored value unchanged.
func ImportProducts(db *gorm.DB, r io.Reader, opts ImportOptions) (*ImportResult, error) {
	startTotal := time.Now()

	if opts.BatchSize <= 0 {
		opts.BatchSize = 500
	}

	// Parse CSV header
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	headers, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read CSV header: %w", err)
	}
	skuCol := -1
	for i := range headers {
		headers[i] = strings.ToLower(strings.TrimSpace(headers[i]))
		if headers[i] == "sku" {
			skuCol = i
		}
	}
	if skuCol < 0 {
		return nil, fmt.Errorf("CSV must contain a 'sku' column")
	}

	result := &ImportResult{}

	// Warn about unknown columns
	known := knownColumns()
	for _, h := range headers {
		if !known[h] {
			result.Warnings = append(result.Warnings, fmt.Sprintf("column %q: unknown, skipping", h))
		}
	}

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read CSV rows: %w", err)
	}
	result.TotalRows = len(rows)

	startProcess := time.Now()
	records, skipped, warnings := collectRecords(rows, headers, skuCol, known)
	result.Skipped = skipped
	result.Warnings = append(result.Warnings, warnings...)
	for _, rec := range records {
		result.Warnings = append(result.Warnings, collectPrice(rec)...)
		result.Warnings = append(result.Warnings, collectStock(rec)...)
		result.Warnings = append(result.Warnings, collectProduct(rec)...)
	}
	result.ProcessTime = time.Since(startProcess)

	startDB := time.Now()
	err = db.Transaction(func(tx *gorm.DB) error {
		skus := make([]string, 0, len(records))
		for _, rec := range records {
			skus = append(skus, rec.sku)
		}
		skuToID, err := lookupSKUs(tx, skus, opts.BatchSize)
		if err != nil {
			return err
		}

		created, err := insertNewProducts(tx, records, skuToID, opts.BatchSize)
		if err != nil {
			return err
		}
		result.Created = len(created)

		media, warnings, err := flushGallery(tx, records, opts.MediaDir)
		if err != nil {
			return err
		}
		result.Media = media
		result.Warnings = append(result.Warnings, warnings...)
		result.Warnings = append(result.Warnings, resolveParents(records, skuToID)...)

		for _, rec := range records {
			p, cols, err := decodeRecord(rec)
			if err != nil {
				result.Warnings = append(result.Warnings, rec.warnf("%v", err))
				result.Skipped++
				continue
			}
			if !created[rec.sku] {
				result.Updated++
			}
			if len(cols) == 0 {
				continue
			}
			err = tx.Model(&productEntity.Product{}).Where("id = ?", skuToID[rec.sku]).
				Select(append(cols, "updated_at")).Updates(p).Error
			if err != nil {
				return fmt.Errorf("sku %s: %w", rec.sku, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	result.DBTime = time.Since(startDB)
	result.TotalTime = time.Since(startTotal)

	return result, nil
}

// collectRecords turns CSV rows into records. A sku seen twice is merged,
// later cells winning.
func collectRecords(rows [][]string, headers []string, skuCol int, known map[string]bool) ([]*record, int, []string) {
	var (
		records  []*record
		warnings []string
		skipped  int
	)
	bySKU := make(map[string]*record, len(rows))
	for ri, row := range rows {
		line := ri + 2
		sku := ""
		if skuCol < len(row) {
			sku = strings.TrimSpace(row[skuCol])
		}
		if sku == "" {
			warnings = append(warnings, fmt.Sprintf("line %d: missing sku, skipping", line))
			skipped++
			continue
		}
		rec, dup := bySKU[sku]
		if dup {
			warnings = append(warnings, fmt.Sprintf("line %d (sku=%s): duplicate of line %d, merged", line, sku, rec.line))
			skipped++
		} else {
			rec = &record{line: line, sku: sku, cells: make(map[string]string)}
			bySKU[sku] = rec
			records = append(records, rec)
		}
		for ci, h := range headers {
			if ci == skuCol || ci >= len(row) || !known[h] {
				continue
			}
			if v := strings.TrimSpace(row[ci]); v != "" {
				rec.cells[h] = v
			}
		}
	}
	return records, skipped, warnings
}

// lookupSKUs batch-queries existing SKUs and returns sku->id map.
func lookupSKUs(db *gorm.DB, skus []string, batchSize int) (map[string]uint, error) {
	m := make(map[string]uint, len(skus))
	for i := 0; i < len(skus); i += batchSize {
		end := i + batchSize
		if end > len(skus) {
			end = len(skus)
		}
		var chunk []productEntity.Product
		err := db.Select("id, sku").Where("sku IN ?", skus[i:end]).Find(&chunk).Error
		if err != nil {
			return nil, fmt.Errorf("lookup skus: %w", err)
		}
		for _, p := range chunk {
			m[p.SKU] = p.ID
		}
	}
	return m, nil
}

// insertNewProducts creates a row for each new sku and updates skuToID in
// place. Other columns are written by the update pass.
func insertNewProducts(db *gorm.DB, records []*record, skuToID map[string]uint, batchSize int) (map[string]bool, error) {
	var newProducts []productEntity.Product
	for _, rec := range records {
		if _, exists := skuToID[rec.sku]; exists {
			continue
		}
		p := productEntity.Product{SKU: rec.sku, Slug: rec.cells["slug"], Name: rec.cells["name"], Type: rec.cells["type"]}
		if p.Slug == "" {
			p.Slug = Slugify(rec.sku)
		}
		if p.Type == "" {
			p.Type = productEntity.TypeSimple
		}
		newProducts = append(newProducts, p)
	}

	created := make(map[string]bool, len(newProducts))
	if len(newProducts) == 0 {
		return created, nil
	}
	if err := db.Session(&gorm.Session{SkipHooks: true}).CreateInBatches(&newProducts, batchSize).Error; err != nil {
		return nil, fmt.Errorf("insert products: %w", err)
	}
	for _, p := range newProducts {
		skuToID[p.SKU] = p.ID
		created[p.SKU] = true
	}
	return created, nil
}

// resolveParents turns parent_sku into parent_id.
func resolveParents(records []*record, skuToID map[string]uint) []string {
	var warnings []string
	for _, rec := range records {
		parent, ok := rec.cells[colParentSKU]
		if !ok {
			continue
		}
		delete(rec.cells, colParentSKU)
		id, found := skuToID[parent]
		if !found {
			warnings = append(warnings, rec.warnf("parent sku %q not found", parent))
			continue
		}
		if parent == rec.sku {
			warnings = append(warnings, rec.warnf("product cannot be its own parent"))
			continue
		}
		rec.cells["parent_id"] = fmt.Sprint(id)
	}
	return warnings
}
