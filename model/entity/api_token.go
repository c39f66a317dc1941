package entity

import "time"

// APIToken is a bearer token. CustomerID is set for customer sessions; staff
// tokens carry a Role and no customer.
type APIToken struct {
	ID         uint       `gorm:"column:id;primaryKey;autoIncrement"`
	Token      string     `gorm:"column:token;type:varchar(64);not null;uniqueIndex"`
	CustomerID *uint      `gorm:"column:customer_id;index"`
	Role       string     `gorm:"column:role;type:varchar(32);not null;default:'customer'"`
	Revoked    bool       `gorm:"column:revoked;not null;default:false"`
	ExpiresAt  *time.Time `gorm:"column:expires_at"`
	CreatedAt  time.Time  `gorm:"column:created_at;autoCreateTime"`
}

func (APIToken) TableName() string {
	return "wc_api_tokens"
}
