// Package session keeps cart sessions keyed by the token clients send in the
// woocommerce-session header.
package session

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// HeaderName carries "Session <token>" on requests and the issued token on
// responses.
const HeaderName = "woocommerce-session"

// Cart is the session state the schema reads and the cart mutations write.
type Cart struct {
	Key            string    `json:"key"`
	CustomerID     uint      `json:"customer_id"`
	AppliedCoupons []string  `json:"applied_coupons"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// HasCoupon reports whether code is applied. Codes are compared lowercased.
func (c *Cart) HasCoupon(code string) bool {
	code = strings.ToLower(code)
	for _, applied := range c.AppliedCoupons {
		if applied == code {
			return true
		}
	}
	return false
}

// ApplyCoupon adds code unless it is already applied.
func (c *Cart) ApplyCoupon(code string) bool {
	code = strings.ToLower(code)
	if c.HasCoupon(code) {
		return false
	}
	c.AppliedCoupons = append(c.AppliedCoupons, code)
	return true
}

// RemoveCoupons drops codes and returns the ones that were applied.
func (c *Cart) RemoveCoupons(codes []string) []string {
	drop := make(map[string]bool, len(codes))
	for _, code := range codes {
		drop[strings.ToLower(code)] = true
	}
	var kept, removed []string
	for _, applied := range c.AppliedCoupons {
		if drop[applied] {
			removed = append(removed, applied)
			continue
		}
		kept = append(kept, applied)
	}
	c.AppliedCoupons = kept
	return removed
}

// Store persists carts.
type Store interface {
	// Load returns nil, nil for unknown or expired tokens.
	Load(ctx context.Context, token string) (*Cart, error)
	Save(ctx context.Context, cart *Cart) error
	Delete(ctx context.Context, token string) error
}

// NewToken returns a fresh session token.
func NewToken() string {
	return uuid.NewString()
}

// ParseHeader extracts the token from "Session <token>".
func ParseHeader(v string) string {
	v = strings.TrimSpace(v)
	if len(v) > 8 && strings.EqualFold(v[:8], "session ") {
		return strings.TrimSpace(v[8:])
	}
	return ""
}

// NewStore returns a redis store when rdb is set, otherwise an in-memory one.
func NewStore(rdb *redis.Client, ttl time.Duration) Store {
	if rdb != nil {
		return NewRedisStore(rdb, ttl)
	}
	return NewMemoryStore(ttl)
}
