package coupon

import (
	"time"

	"gorm.io/datatypes"
)

// Discount types.
const (
	DiscountPercent      = "percent"
	DiscountFixedCart    = "fixed_cart"
	DiscountFixedProduct = "fixed_product"
)

// Coupon represents the wc_coupons table. Code is stored lowercased.
type Coupon struct {
	ID                 uint       `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	ParentID           uint       `gorm:"column:parent_id;not null;default:0;index" json:"parent_id"`
	Code               string     `gorm:"column:code;type:varchar(100);not null;uniqueIndex" json:"code"`
	Status             string     `gorm:"column:status;type:varchar(20);not null;default:'publish'" json:"status"`
	Description        string     `gorm:"column:description;type:text" json:"description"`
	DiscountType       string     `gorm:"column:discount_type;type:varchar(20);not null;default:'fixed_cart'" json:"discount_type"`
	Amount             float64    `gorm:"column:amount;type:decimal(19,4);not null;default:0" json:"amount"`
	DateExpires        *time.Time `gorm:"column:date_expires" json:"date_expires"`
	UsageCount         int        `gorm:"column:usage_count;not null;default:0" json:"usage_count"`
	IndividualUse      bool       `gorm:"column:individual_use;not null;default:false" json:"individual_use"`
	UsageLimit         *int       `gorm:"column:usage_limit" json:"usage_limit"`
	UsageLimitPerUser  *int       `gorm:"column:usage_limit_per_user" json:"usage_limit_per_user"`
	LimitUsageToXItems *int       `gorm:"column:limit_usage_to_x_items" json:"limit_usage_to_x_items"`
	FreeShipping       bool       `gorm:"column:free_shipping;not null;default:false" json:"free_shipping"`
	ExcludeSaleItems   bool       `gorm:"column:exclude_sale_items;not null;default:false" json:"exclude_sale_items"`
	MinimumAmount      *float64   `gorm:"column:minimum_amount;type:decimal(19,4)" json:"minimum_amount"`
	MaximumAmount      *float64   `gorm:"column:maximum_amount;type:decimal(19,4)" json:"maximum_amount"`

	ProductIDs         datatypes.JSONType[[]uint]   `gorm:"column:product_ids" json:"product_ids"`
	ExcludedProductIDs datatypes.JSONType[[]uint]   `gorm:"column:excluded_product_ids" json:"excluded_product_ids"`
	EmailRestrictions  datatypes.JSONType[[]string] `gorm:"column:email_restrictions" json:"email_restrictions"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Coupon) TableName() string {
	return "wc_coupons"
}

// Expired reports whether the coupon's expiry date is before now.
func (c *Coupon) Expired(now time.Time) bool {
	return c.DateExpires != nil && c.DateExpires.Before(now)
}

// UsageExhausted reports whether the usage limit has been reached.
func (c *Coupon) UsageExhausted() bool {
	return c.UsageLimit != nil && *c.UsageLimit > 0 && c.UsageCount >= *c.UsageLimit
}
