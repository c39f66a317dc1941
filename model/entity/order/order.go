package order

import (
	"time"

	"gorm.io/datatypes"

	"woocommerce.GO/model/entity"
)

// Order item types.
const (
	ItemLineItem = "line_item"
	ItemCoupon   = "coupon"
)

// Order represents the wc_orders table.
type Order struct {
	ID                 uint       `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	ParentID           uint       `gorm:"column:parent_id;not null;default:0;index" json:"parent_id"`
	OrderKey           string     `gorm:"column:order_key;type:varchar(64);not null;uniqueIndex" json:"order_key"`
	CustomerID         uint       `gorm:"column:customer_id;not null;default:0;index" json:"customer_id"`
	Status             string     `gorm:"column:status;type:varchar(20);not null;default:'pending'" json:"status"`
	Currency           string     `gorm:"column:currency;type:varchar(3);not null;default:'USD'" json:"currency"`
	CustomerNote       string     `gorm:"column:customer_note;type:text" json:"customer_note"`
	PaymentMethod      string     `gorm:"column:payment_method;type:varchar(100)" json:"payment_method"`
	PaymentMethodTitle string     `gorm:"column:payment_method_title;type:varchar(255)" json:"payment_method_title"`
	DatePaid           *time.Time `gorm:"column:date_paid" json:"date_paid"`
	DateCompleted      *time.Time `gorm:"column:date_completed" json:"date_completed"`
	Total              float64    `gorm:"column:total;type:decimal(19,4);not null;default:0" json:"total"`
	Subtotal           float64    `gorm:"column:subtotal;type:decimal(19,4);not null;default:0" json:"subtotal"`
	DiscountTotal      float64    `gorm:"column:discount_total;type:decimal(19,4);not null;default:0" json:"discount_total"`
	ShippingTotal      float64    `gorm:"column:shipping_total;type:decimal(19,4);not null;default:0" json:"shipping_total"`
	TotalTax           float64    `gorm:"column:total_tax;type:decimal(19,4);not null;default:0" json:"total_tax"`

	Billing  datatypes.JSONType[entity.Address] `gorm:"column:billing" json:"billing"`
	Shipping datatypes.JSONType[entity.Address] `gorm:"column:shipping" json:"shipping"`

	Items []Item `gorm:"foreignKey:OrderID" json:"items"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Order) TableName() string {
	return "wc_orders"
}

// Item is a line item or coupon line of an order.
type Item struct {
	ID          uint    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	OrderID     uint    `gorm:"column:order_id;not null;index" json:"order_id"`
	Type        string  `gorm:"column:type;type:varchar(20);not null;default:'line_item'" json:"type"`
	Name        string  `gorm:"column:name;type:varchar(255)" json:"name"`
	ProductID   uint    `gorm:"column:product_id;not null;default:0" json:"product_id"`
	VariationID uint    `gorm:"column:variation_id;not null;default:0" json:"variation_id"`
	Quantity    int     `gorm:"column:quantity;not null;default:0" json:"quantity"`
	Subtotal    float64 `gorm:"column:subtotal;type:decimal(19,4);not null;default:0" json:"subtotal"`
	Total       float64 `gorm:"column:total;type:decimal(19,4);not null;default:0" json:"total"`
	TotalTax    float64 `gorm:"column:total_tax;type:decimal(19,4);not null;default:0" json:"total_tax"`
	Code        string  `gorm:"column:code;type:varchar(100)" json:"code"`
	Discount    float64 `gorm:"column:discount;type:decimal(19,4);not null;default:0" json:"discount"`
}

func (Item) TableName() string {
	return "wc_order_items"
}

// LineItems returns the product lines.
func (o *Order) LineItems() []Item {
	return o.itemsOfType(ItemLineItem)
}

// CouponLines returns the coupon lines.
func (o *Order) CouponLines() []Item {
	return o.itemsOfType(ItemCoupon)
}

func (o *Order) itemsOfType(t string) []Item {
	var out []Item
	for _, it := range o.Items {
		if it.Type == t {
			out = append(out, it)
		}
	}
	return out
}
