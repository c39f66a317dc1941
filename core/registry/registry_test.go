package registry

import "testing"

func TestRegistry_SetGet(t *testing.T) {
	r := New()
	if _, ok := r.GetGlobal("missing"); ok {
		t.Fatal("GetGlobal missing: want false")
	}
	r.SetGlobal("k", 42)
	v, ok := r.GetGlobal("k")
	if !ok || v != 42 {
		t.Errorf("GetGlobal = %v, %v; want 42, true", v, ok)
	}
}

func TestRegistry_Lock(t *testing.T) {
	r := New()
	if r.IsLocked("k") {
		t.Fatal("new key should be unlocked")
	}
	r.Lock("k")
	if !r.IsLocked("k") {
		t.Error("Lock: want locked")
	}
	r.UnlockForTesting("k")
	if r.IsLocked("k") {
		t.Error("UnlockForTesting: want unlocked")
	}
}
