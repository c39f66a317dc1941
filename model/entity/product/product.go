package product

import (
	"time"

	"gorm.io/datatypes"
)

// Product types.
const (
	TypeSimple    = "simple"
	TypeVariable  = "variable"
	TypeGrouped   = "grouped"
	TypeExternal  = "external"
	TypeVariation = "variation"
)

// Stock statuses.
const (
	StockInStock     = "instock"
	StockOutOfStock  = "outofstock"
	StockOnBackorder = "onbackorder"
)

// Product represents the wc_products table.
type Product struct {
	ID                uint       `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	ParentID          uint       `gorm:"column:parent_id;not null;default:0;index" json:"parent_id"`
	Slug              string     `gorm:"column:slug;type:varchar(200);not null;uniqueIndex" json:"slug"`
	SKU               string     `gorm:"column:sku;type:varchar(100);index" json:"sku"`
	Name              string     `gorm:"column:name;type:varchar(255)" json:"name"`
	Type              string     `gorm:"column:type;type:varchar(20);not null;default:'simple'" json:"type"`
	Status            string     `gorm:"column:status;type:varchar(20);not null;default:'publish'" json:"status"`
	Featured          bool       `gorm:"column:featured;not null;default:false" json:"featured"`
	CatalogVisibility string     `gorm:"column:catalog_visibility;type:varchar(20);not null;default:'visible'" json:"catalog_visibility"`
	Description       string     `gorm:"column:description;type:text" json:"description"`
	ShortDescription  string     `gorm:"column:short_description;type:text" json:"short_description"`
	Price             *float64   `gorm:"column:price;type:decimal(19,4)" json:"price"`
	RegularPrice      *float64   `gorm:"column:regular_price;type:decimal(19,4)" json:"regular_price"`
	SalePrice         *float64   `gorm:"column:sale_price;type:decimal(19,4)" json:"sale_price"`
	DateOnSaleFrom    *time.Time `gorm:"column:date_on_sale_from" json:"date_on_sale_from"`
	DateOnSaleTo      *time.Time `gorm:"column:date_on_sale_to" json:"date_on_sale_to"`
	TotalSales        int        `gorm:"column:total_sales;not null;default:0" json:"total_sales"`
	TaxStatus         string     `gorm:"column:tax_status;type:varchar(20);not null;default:'taxable'" json:"tax_status"`
	TaxClass          string     `gorm:"column:tax_class;type:varchar(40);not null;default:''" json:"tax_class"`
	ManageStock       bool       `gorm:"column:manage_stock;not null;default:false" json:"manage_stock"`
	StockQuantity     *int       `gorm:"column:stock_quantity" json:"stock_quantity"`
	StockStatus       string     `gorm:"column:stock_status;type:varchar(20);not null;default:'instock'" json:"stock_status"`
	Backorders        string     `gorm:"column:backorders;type:varchar(10);not null;default:'no'" json:"backorders"`
	SoldIndividually  bool       `gorm:"column:sold_individually;not null;default:false" json:"sold_individually"`
	Weight            string     `gorm:"column:weight;type:varchar(20)" json:"weight"`
	Length            string     `gorm:"column:length;type:varchar(20)" json:"length"`
	Width             string     `gorm:"column:width;type:varchar(20)" json:"width"`
	Height            string     `gorm:"column:height;type:varchar(20)" json:"height"`
	ReviewsAllowed    bool       `gorm:"column:reviews_allowed;not null;default:true" json:"reviews_allowed"`
	PurchaseNote      string     `gorm:"column:purchase_note;type:text" json:"purchase_note"`
	MenuOrder         int        `gorm:"column:menu_order;not null;default:0" json:"menu_order"`
	Virtual           bool       `gorm:"column:virtual;not null;default:false" json:"virtual"`
	Downloadable      bool       `gorm:"column:downloadable;not null;default:false" json:"downloadable"`
	DownloadLimit     int        `gorm:"column:download_limit;not null;default:-1" json:"download_limit"`
	DownloadExpiry    int        `gorm:"column:download_expiry;not null;default:-1" json:"download_expiry"`
	AverageRating     float64    `gorm:"column:average_rating;type:decimal(3,2);not null;default:0" json:"average_rating"`
	ReviewCount       int        `gorm:"column:review_count;not null;default:0" json:"review_count"`
	ImageID           uint       `gorm:"column:image_id;not null;default:0" json:"image_id"`
	ShippingClassID   uint       `gorm:"column:shipping_class_id;not null;default:0" json:"shipping_class_id"`
	ExternalURL       string     `gorm:"column:external_url;type:varchar(2048)" json:"external_url"`
	ButtonText        string     `gorm:"column:button_text;type:varchar(255)" json:"button_text"`

	Downloads datatypes.JSONType[[]Download] `gorm:"column:downloads" json:"downloads"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Product) TableName() string {
	return "wc_products"
}

// Download is one downloadable file of a product.
type Download struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	File string `json:"file"`
}
