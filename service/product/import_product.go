package product

import (
	"reflect"
	"strings"
	"unicode"

	"github.com/mitchellh/mapstructure"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	productEntity "woocommerce.GO/model/entity/product"
)

const colParentSKU = "parent_sku"

const dateLayout = "2006-01-02"

// Columns set by the importer itself, never by a CSV cell.
var reservedColumns = map[string]bool{
	"id": true, "sku": true, "downloads": true, "created_at": true, "updated_at": true,
}

var productColumns = func() map[string]bool {
	cols := make(map[string]bool)
	t := reflect.TypeOf(productEntity.Product{})
	for i := 0; i < t.NumField(); i++ {
		name := strings.Split(t.Field(i).Tag.Get("json"), ",")[0]
		if name != "" && name != "-" && !reservedColumns[name] {
			cols[name] = true
		}
	}
	return cols
}()

var allowedValues = map[string]map[string]bool{
	"type": {
		productEntity.TypeSimple: true, productEntity.TypeVariable: true, productEntity.TypeGrouped: true,
		productEntity.TypeExternal: true, productEntity.TypeVariation: true,
	},
	"status":             {"publish": true, "draft": true, "pending": true, "private": true},
	"catalog_visibility": {"visible": true, "catalog": true, "search": true, "hidden": true},
	"tax_status":         {"taxable": true, "shipping": true, "none": true},
}

// knownColumns returns all column names handled by any module.
func knownColumns() map[string]bool {
	known := map[string]bool{"sku": true, colParentSKU: true}
	for col := range productColumns {
		known[col] = true
	}
	for col := range galleryColumns {
		known[col] = true
	}
	return known
}

// collectProduct drops enum cells with values the store does not know.
func collectProduct(rec *record) []string {
	var warnings []string
	for col, allowed := range allowedValues {
		v, ok := rec.cells[col]
		if !ok {
			continue
		}
		v = strings.ToLower(v)
		if !allowed[v] {
			warnings = append(warnings, rec.warnf("invalid %s %q", col, v))
			delete(rec.cells, col)
			continue
		}
		rec.cells[col] = v
	}
	return warnings
}

// decodeRecord converts the record's cells into a Product and the list of
// columns they cover.
func decodeRecord(rec *record) (*productEntity.Product, []string, error) {
	input := make(map[string]interface{}, len(rec.cells))
	var cols []string
	for col, v := range rec.cells {
		if !productColumns[col] {
			continue
		}
		input[col] = v
		cols = append(cols, col)
	}

	var p productEntity.Product
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		WeaklyTypedInput: true,
		DecodeHook:       mapstructure.StringToTimeHookFunc(dateLayout),
		Result:           &p,
	})
	if err != nil {
		return nil, nil, err
	}
	if err := dec.Decode(input); err != nil {
		return nil, nil, err
	}
	return &p, cols, nil
}

// Slugify lowercases s, strips accents and joins words with '-'.
func Slugify(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	if out, _, err := transform.String(t, s); err == nil {
		s = out
	}
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(s) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
