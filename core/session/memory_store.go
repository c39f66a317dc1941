package session

import (
	"context"
	"fmt"
	"time"

	"woocommerce.GO/core/cache"
	"woocommerce.GO/core/metrics"
)

// MemoryStore keeps carts in an in-process cache. Expired carts are dropped
// lazily on Load and in bulk by Purge.
type MemoryStore struct {
	c   *cache.Cache
	ttl time.Duration
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{c: cache.NewCache(), ttl: ttl}
}

func (s *MemoryStore) Load(_ context.Context, token string) (*Cart, error) {
	v, ok := s.c.Get(token)
	if !ok {
		return nil, nil
	}
	s.c.Touch(token, s.ttl)
	cart := *v.(*Cart)
	cart.AppliedCoupons = append([]string(nil), cart.AppliedCoupons...)
	return &cart, nil
}

func (s *MemoryStore) Save(_ context.Context, cart *Cart) error {
	cart.UpdatedAt = time.Now()
	stored := *cart
	stored.AppliedCoupons = append([]string(nil), cart.AppliedCoupons...)
	var tags []string
	if cart.CustomerID > 0 {
		tags = []string{fmt.Sprintf("customer:%d", cart.CustomerID)}
	}
	s.c.Set(cart.Key, &stored, s.ttl, tags)
	metrics.ActiveSessions.Set(float64(s.c.Len()))
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, token string) error {
	s.c.Delete(token)
	return nil
}

// DeleteCustomer drops every cart owned by customerID.
func (s *MemoryStore) DeleteCustomer(customerID uint) {
	s.c.DeleteByTag(fmt.Sprintf("customer:%d", customerID))
}

// Purge removes expired carts and returns how many were removed.
func (s *MemoryStore) Purge() int {
	n := s.c.PurgeExpired()
	metrics.ActiveSessions.Set(float64(s.c.Len()))
	return n
}
