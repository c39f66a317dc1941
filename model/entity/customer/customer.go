package customer

import (
	"strings"
	"time"

	"gorm.io/datatypes"

	"woocommerce.GO/model/entity"
)

// Customer represents the wc_customers table.
type Customer struct {
	ID               uint   `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Email            string `gorm:"column:email;type:varchar(100);not null;uniqueIndex" json:"email"`
	Username         string `gorm:"column:username;type:varchar(60);not null;uniqueIndex" json:"username"`
	PasswordHash     string `gorm:"column:password_hash;type:varchar(255);not null;default:''" json:"-"`
	FirstName        string `gorm:"column:first_name;type:varchar(100)" json:"first_name"`
	LastName         string `gorm:"column:last_name;type:varchar(100)" json:"last_name"`
	DisplayName      string `gorm:"column:display_name;type:varchar(250)" json:"display_name"`
	Role             string `gorm:"column:role;type:varchar(32);not null;default:'customer'" json:"role"`
	IsPayingCustomer bool   `gorm:"column:is_paying_customer;not null;default:false" json:"is_paying_customer"`

	Billing  datatypes.JSONType[entity.Address] `gorm:"column:billing" json:"billing"`
	Shipping datatypes.JSONType[entity.Address] `gorm:"column:shipping" json:"shipping"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Customer) TableName() string {
	return "wc_customers"
}

// Name returns the display name, falling back to first and last name, then username.
func (c *Customer) Name() string {
	if c.DisplayName != "" {
		return c.DisplayName
	}
	if n := strings.TrimSpace(c.FirstName + " " + c.LastName); n != "" {
		return n
	}
	return c.Username
}
