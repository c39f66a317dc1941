package session

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/redis/go-redis/v9"
)

func TestParseHeader(t *testing.T) {
	cases := map[string]string{
		"Session abc-123": "abc-123",
		"session   xyz ":  "xyz",
		"Bearer abc":      "",
		"":                "",
		"Session ":        "",
	}
	for in, want := range cases {
		if got := ParseHeader(in); got != want {
			t.Errorf("ParseHeader(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestCart_Coupons(t *testing.T) {
	c := &Cart{}
	if !c.ApplyCoupon("SUMMER") || c.ApplyCoupon("summer") {
		t.Fatal("ApplyCoupon should add once, case-insensitively")
	}
	c.ApplyCoupon("free")
	removed := c.RemoveCoupons([]string{"Summer", "missing"})
	if diff := cmp.Diff([]string{"summer"}, removed); diff != "" {
		t.Errorf("removed (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"free"}, c.AppliedCoupons); diff != "" {
		t.Errorf("applied (-want +got):\n%s", diff)
	}
}

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(time.Hour)

	if cart, err := s.Load(ctx, "nope"); cart != nil || err != nil {
		t.Fatalf("Load unknown = %v, %v; want nil, nil", cart, err)
	}

	token := NewToken()
	cart := &Cart{Key: token, CustomerID: 4, AppliedCoupons: []string{"a"}}
	if err := s.Save(ctx, cart); err != nil {
		t.Fatalf("Save: %v", err)
	}
	// Mutating the caller's copy must not change the stored cart.
	cart.AppliedCoupons[0] = "changed"

	got, err := s.Load(ctx, token)
	if err != nil || got == nil {
		t.Fatalf("Load = %v, %v", got, err)
	}
	if diff := cmp.Diff([]string{"a"}, got.AppliedCoupons); diff != "" {
		t.Errorf("stored coupons (-want +got):\n%s", diff)
	}

	s.DeleteCustomer(4)
	if got, _ := s.Load(ctx, token); got != nil {
		t.Error("DeleteCustomer should drop the cart")
	}
}

func TestMemoryStore_Purge(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(time.Millisecond)
	_ = s.Save(ctx, &Cart{Key: "old"})
	time.Sleep(5 * time.Millisecond)
	if n := s.Purge(); n != 1 {
		t.Errorf("Purge = %d, want 1", n)
	}
}

func TestRedisStore(t *testing.T) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set")
	}
	ctx := context.Background()
	s := NewRedisStore(redis.NewClient(&redis.Options{Addr: addr}), time.Minute)
	token := NewToken()
	if err := s.Save(ctx, &Cart{Key: token, AppliedCoupons: []string{"x"}}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	defer s.Delete(ctx, token)
	got, err := s.Load(ctx, token)
	if err != nil || got == nil || !got.HasCoupon("x") {
		t.Fatalf("Load = %+v, %v", got, err)
	}
}
