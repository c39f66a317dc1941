// Package hooks provides named, typed filters. A filter receives a value and
// returns the (possibly modified) value; filters run in registration order.
// Custom packages add filters from init(); the chain is locked on first Apply.
package hooks

import (
	"context"
	"sort"
	"sync"

	"woocommerce.GO/core/registry"
)

// Env describes the GraphQL call a filter runs for.
type Env struct {
	Source    interface{}
	Args      map[string]interface{}
	FieldName string
	PostType  string
}

// FilterFunc transforms v. extra carries hook-specific inputs (e.g. the raw
// where args for input-field filters).
type FilterFunc[T any] func(ctx context.Context, v T, env Env, extra ...interface{}) T

type entry[T any] struct {
	priority int
	seq      int
	fn       FilterFunc[T]
}

// Filter is a named chain of FilterFuncs.
type Filter[T any] struct {
	name string
	mu   sync.Mutex
	seq  int
}

// New declares a filter. Declare once, at package level.
func New[T any](name string) *Filter[T] {
	return &Filter[T]{name: name}
}

func (f *Filter[T]) Name() string { return f.name }

func (f *Filter[T]) key() string { return registry.KeyPrefixHook + f.name }

func (f *Filter[T]) entries() []entry[T] {
	if v, ok := registry.GlobalRegistry.GetGlobal(f.key()); ok && v != nil {
		return v.([]entry[T])
	}
	return nil
}

// Add registers fn with priority 10.
func (f *Filter[T]) Add(fn FilterFunc[T]) {
	f.AddWithPriority(10, fn)
}

// AddWithPriority registers fn; lower priorities run first. Panics if locked.
func (f *Filter[T]) AddWithPriority(priority int, fn FilterFunc[T]) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if registry.GlobalRegistry.IsLocked(f.key()) {
		panic("hooks: " + f.name + " locked (add filters only during init)")
	}
	f.seq++
	list := append(f.entries(), entry[T]{priority: priority, seq: f.seq, fn: fn})
	sort.SliceStable(list, func(i, j int) bool {
		if list[i].priority != list[j].priority {
			return list[i].priority < list[j].priority
		}
		return list[i].seq < list[j].seq
	})
	registry.GlobalRegistry.SetGlobal(f.key(), list)
}

// Apply runs the chain over v.
func (f *Filter[T]) Apply(ctx context.Context, v T, env Env, extra ...interface{}) T {
	if !registry.GlobalRegistry.IsLocked(f.key()) {
		registry.GlobalRegistry.Lock(f.key())
	}
	for _, e := range f.entries() {
		v = e.fn(ctx, v, env, extra...)
	}
	return v
}

// Reset drops every filter and unlocks the chain. Tests only.
func (f *Filter[T]) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	registry.GlobalRegistry.UnlockForTesting(f.key())
	registry.GlobalRegistry.SetGlobal(f.key(), []entry[T](nil))
}
