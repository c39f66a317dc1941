package price

import (
	"testing"

	"woocommerce.GO/config"
	productEntity "woocommerce.GO/model/entity/product"
)

func fp(v float64) *float64 { return &v }

func TestPriceRepository(t *testing.T) {
	db, err := config.NewSQLiteDB(":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&productEntity.Product{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	rows := []productEntity.Product{
		{ID: 1, Slug: "parent", SKU: "P", Type: "variable", Status: "publish"},
		{ID: 2, ParentID: 1, Slug: "v1", SKU: "V1", Status: "publish", Price: fp(10), RegularPrice: fp(12)},
		{ID: 3, ParentID: 1, Slug: "v2", SKU: "V2", Status: "publish", Price: fp(18), RegularPrice: fp(18)},
		{ID: 4, ParentID: 1, Slug: "v3", SKU: "V3", Status: "draft", Price: fp(1)},
	}
	if err := db.Create(&rows).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}
	repo, err := NewPriceRepository(db)
	if err != nil {
		t.Fatalf("NewPriceRepository: %v", err)
	}

	if p, ok := repo.GetPriceBySKU("V1"); !ok || p != 10 {
		t.Errorf("GetPriceBySKU(V1) = %v, %v", p, ok)
	}
	if _, ok := repo.GetPriceBySKU("P"); ok {
		t.Error("parent without price should report false")
	}
	lo, hi, ok := repo.PriceRange(1, "price")
	if !ok || lo != 10 || hi != 18 {
		t.Errorf("PriceRange = %v, %v, %v; want 10, 18, true", lo, hi, ok)
	}
	if _, _, ok := repo.PriceRange(1, "sale_price"); ok {
		t.Error("no sale prices: want false")
	}
	if _, _, ok := repo.PriceRange(1, "id; DROP TABLE x"); ok {
		t.Error("unknown column must be rejected")
	}
}
