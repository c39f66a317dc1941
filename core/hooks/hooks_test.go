package hooks

import (
	"context"
	"testing"
)

func TestFilter_ApplyInOrder(t *testing.T) {
	f := New[string]("test_order")
	defer f.Reset()

	f.Add(func(_ context.Context, v string, _ Env, _ ...interface{}) string { return v + "b" })
	f.AddWithPriority(5, func(_ context.Context, v string, _ Env, _ ...interface{}) string { return v + "a" })
	f.Add(func(_ context.Context, v string, _ Env, _ ...interface{}) string { return v + "c" })

	if got := f.Apply(context.Background(), "", Env{}); got != "abc" {
		t.Errorf("Apply = %q, want abc", got)
	}
}

func TestFilter_NoFilters(t *testing.T) {
	f := New[int]("test_empty")
	defer f.Reset()
	if got := f.Apply(context.Background(), 7, Env{}); got != 7 {
		t.Errorf("Apply = %d, want 7", got)
	}
}

func TestFilter_EnvAndExtra(t *testing.T) {
	f := New[[]string]("test_env")
	defer f.Reset()
	f.Add(func(_ context.Context, v []string, env Env, extra ...interface{}) []string {
		return append(v, env.FieldName, extra[0].(string))
	})
	got := f.Apply(context.Background(), nil, Env{FieldName: "coupons"}, "x")
	if len(got) != 2 || got[0] != "coupons" || got[1] != "x" {
		t.Errorf("Apply = %v, want [coupons x]", got)
	}
}

func TestFilter_AddAfterApplyPanics(t *testing.T) {
	f := New[int]("test_locked")
	defer f.Reset()
	f.Apply(context.Background(), 1, Env{})
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic when adding to a locked filter")
		}
	}()
	f.Add(func(_ context.Context, v int, _ Env, _ ...interface{}) int { return v })
}
