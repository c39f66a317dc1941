package product

import (
	"fmt"
	"time"
)

// IsOnSale reports whether the sale price is active at now.
func (p *Product) IsOnSale(now time.Time) bool {
	if p.SalePrice == nil || p.RegularPrice == nil || *p.SalePrice >= *p.RegularPrice {
		return false
	}
	if p.DateOnSaleFrom != nil && p.DateOnSaleFrom.After(now) {
		return false
	}
	if p.DateOnSaleTo != nil && p.DateOnSaleTo.Before(now) {
		return false
	}
	return true
}

func (p *Product) IsInStock() bool {
	return p.StockStatus != StockOutOfStock
}

// IsPurchasable: published, priced, and not an external or grouped product.
// A variable product is priced when Price holds its cheapest variation.
func (p *Product) IsPurchasable() bool {
	switch p.Type {
	case TypeExternal, TypeGrouped:
		return false
	}
	return p.Status == "publish" && p.Price != nil
}

func (p *Product) BackordersAllowed() bool {
	return p.Backorders == "yes" || p.Backorders == "notify"
}

func (p *Product) NeedsShipping() bool {
	return !p.Virtual
}

func (p *Product) IsShippingTaxable() bool {
	return p.NeedsShipping() && (p.TaxStatus == "taxable" || p.TaxStatus == "shipping")
}

func (p *Product) AddToCartText() string {
	switch p.Type {
	case TypeExternal:
		if p.ButtonText != "" {
			return p.ButtonText
		}
		return "Buy product"
	case TypeGrouped:
		return "View products"
	case TypeVariable:
		if p.IsPurchasable() {
			return "Select options"
		}
		return "Read more"
	}
	if p.IsPurchasable() && p.IsInStock() {
		return "Add to cart"
	}
	return "Read more"
}

func (p *Product) AddToCartDescription() string {
	switch p.Type {
	case TypeExternal:
		return p.AddToCartText()
	case TypeGrouped:
		return fmt.Sprintf("View products in the “%s” group", p.Name)
	case TypeVariable:
		if p.IsPurchasable() {
			return fmt.Sprintf("Select options for “%s”", p.Name)
		}
	default:
		if p.IsPurchasable() && p.IsInStock() {
			return fmt.Sprintf("Add “%s” to your cart", p.Name)
		}
	}
	return fmt.Sprintf("Read more about “%s”", p.Name)
}
