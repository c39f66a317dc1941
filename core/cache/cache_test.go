package cache

import (
	"testing"
	"time"
)

// clock is a settable time source.
type clock struct{ t time.Time }

func (c *clock) now() time.Time { return c.t }

func newTestCache() (*Cache, *clock) {
	clk := &clock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	c := NewCache()
	c.now = clk.now
	return c, clk
}

func TestGetInstance(t *testing.T) {
	inst := GetInstance()
	if inst == nil {
		t.Fatal("GetInstance returned nil")
	}
	if GetInstance() != inst {
		t.Error("GetInstance should return same instance")
	}
}

func TestInstancesAreIndependent(t *testing.T) {
	a, b := NewCache(), NewCache()
	a.Set("k", 1, 0, nil)
	if _, ok := b.Get("k"); ok {
		t.Error("value leaked between caches")
	}
}

func TestSet_Get_Delete(t *testing.T) {
	c, _ := newTestCache()
	c.Set("k", "val", 0, nil)
	if got, ok := c.Get("k"); !ok || got != "val" {
		t.Fatalf("Get = %v, %v; want val, true", got, ok)
	}
	c.Delete("k")
	if _, ok := c.Get("k"); ok {
		t.Error("Delete: key should be gone")
	}
	if _, ok := c.Get("missing"); ok {
		t.Error("Get missing key: want false")
	}
}

func TestTTL(t *testing.T) {
	c, clk := newTestCache()
	c.Set("short", 1, time.Minute, nil)
	c.Set("forever", 2, 0, nil)

	clk.t = clk.t.Add(30 * time.Second)
	if _, ok := c.Get("short"); !ok {
		t.Fatal("short expired too early")
	}
	if !c.Touch("short", time.Minute) {
		t.Fatal("Touch: want true")
	}
	clk.t = clk.t.Add(45 * time.Second)
	if _, ok := c.Get("short"); !ok {
		t.Fatal("Touch did not extend expiry")
	}
	clk.t = clk.t.Add(time.Hour)
	if _, ok := c.Get("short"); ok {
		t.Error("short should be expired")
	}
	if _, ok := c.Get("forever"); !ok {
		t.Error("zero ttl should never expire")
	}
}

func TestPurgeExpired(t *testing.T) {
	c, clk := newTestCache()
	c.Set("a", 1, time.Second, nil)
	c.Set("b", 2, time.Second, nil)
	c.Set("c", 3, time.Hour, nil)
	clk.t = clk.t.Add(time.Minute)

	if n := c.PurgeExpired(); n != 2 {
		t.Errorf("PurgeExpired = %d, want 2", n)
	}
	if n := c.Len(); n != 1 {
		t.Errorf("Len = %d, want 1", n)
	}
}

func TestGetOrDefault(t *testing.T) {
	c, _ := newTestCache()
	if got := c.GetOrDefault("k", "def"); got != "def" {
		t.Errorf("GetOrDefault missing = %v, want def", got)
	}
	c.Set("k", "stored", 0, nil)
	if got := c.GetOrDefault("k", "def"); got != "stored" {
		t.Errorf("GetOrDefault found = %v, want stored", got)
	}
}

func TestSetN_GetN_DeleteN(t *testing.T) {
	c, _ := newTestCache()
	c.SetN([]interface{}{"a", "b"}, "composite-val", 0, nil)
	got, ok := c.GetN("a", "b")
	if !ok || got != "composite-val" {
		t.Errorf("GetN = %v, %v; want composite-val, true", got, ok)
	}
	c.DeleteN("a", "b")
	if _, ok := c.GetN("a", "b"); ok {
		t.Error("DeleteN: key should be gone")
	}
}

func TestTags(t *testing.T) {
	c, _ := newTestCache()
	c.Set("k1", "v1", 0, []string{"t1"})
	c.Set("k2", "v2", 0, []string{"t1"})
	c.Set("k3", "v3", 0, []string{"t2"})

	if keys := c.GetKeysByTag("t1"); len(keys) != 2 {
		t.Errorf("GetKeysByTag = %d keys, want 2", len(keys))
	}
	c.DeleteByTag("t1")
	if _, ok := c.Get("k1"); ok {
		t.Error("DeleteByTag: k1 should be gone")
	}
	if _, ok := c.Get("k3"); !ok {
		t.Error("DeleteByTag removed an untagged key")
	}

	c.Delete("k3")
	if keys := c.GetKeysByTag("t2"); len(keys) != 0 {
		t.Errorf("GetKeysByTag after Delete = %d keys, want 0", len(keys))
	}
}
