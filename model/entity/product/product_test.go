package product

import (
	"testing"
	"time"
)

func fp(v float64) *float64 { return &v }

func TestProduct_TableName(t *testing.T) {
	if got := (Product{}).TableName(); got != "wc_products" {
		t.Errorf("TableName() = %q, want wc_products", got)
	}
}

func TestIsOnSale(t *testing.T) {
	now := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	past, future := now.Add(-time.Hour), now.Add(time.Hour)

	cases := []struct {
		name string
		p    Product
		want bool
	}{
		{"no sale price", Product{RegularPrice: fp(10)}, false},
		{"sale below regular", Product{RegularPrice: fp(10), SalePrice: fp(8)}, true},
		{"sale equal regular", Product{RegularPrice: fp(10), SalePrice: fp(10)}, false},
		{"not started", Product{RegularPrice: fp(10), SalePrice: fp(8), DateOnSaleFrom: &future}, false},
		{"ended", Product{RegularPrice: fp(10), SalePrice: fp(8), DateOnSaleTo: &past}, false},
		{"within window", Product{RegularPrice: fp(10), SalePrice: fp(8), DateOnSaleFrom: &past, DateOnSaleTo: &future}, true},
	}
	for _, c := range cases {
		if got := c.p.IsOnSale(now); got != c.want {
			t.Errorf("%s: IsOnSale = %v, want %v", c.name, got, c.want)
		}
	}
}

func TestAddToCartText(t *testing.T) {
	simple := Product{Type: TypeSimple, Status: "publish", Price: fp(5), StockStatus: StockInStock, Name: "Cap"}
	if got := simple.AddToCartText(); got != "Add to cart" {
		t.Errorf("simple = %q", got)
	}
	if got := simple.AddToCartDescription(); got != "Add “Cap” to your cart" {
		t.Errorf("simple description = %q", got)
	}

	oos := simple
	oos.StockStatus = StockOutOfStock
	if got := oos.AddToCartText(); got != "Read more" {
		t.Errorf("out of stock = %q", got)
	}

	ext := Product{Type: TypeExternal, ButtonText: "Buy on partner site"}
	if got := ext.AddToCartText(); got != "Buy on partner site" {
		t.Errorf("external = %q", got)
	}
	if ext.IsPurchasable() {
		t.Error("external products are not purchasable")
	}

	variable := Product{Type: TypeVariable, Status: "publish", Name: "Tee"}
	if got := variable.AddToCartText(); got != "Read more" {
		t.Errorf("unpriced variable = %q", got)
	}
	variable.Price = fp(10)
	if got := variable.AddToCartText(); got != "Select options" {
		t.Errorf("priced variable = %q", got)
	}

	grouped := Product{Type: TypeGrouped}
	if got := grouped.AddToCartText(); got != "View products" {
		t.Errorf("grouped = %q", got)
	}
}

func TestShippingFlags(t *testing.T) {
	p := Product{TaxStatus: "taxable"}
	if !p.NeedsShipping() || !p.IsShippingTaxable() {
		t.Error("physical taxable product should need taxable shipping")
	}
	p.Virtual = true
	if p.NeedsShipping() || p.IsShippingTaxable() {
		t.Error("virtual product should not need shipping")
	}
	p = Product{Backorders: "notify"}
	if !p.BackordersAllowed() {
		t.Error("notify allows backorders")
	}
}
