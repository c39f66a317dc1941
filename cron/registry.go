package cron

import (
	"sort"
	"strings"
	"sync"

	"woocommerce.GO/core/registry"
)

// Job is a named schedule entry. Run receives the extra CLI arguments when
// started by hand and none when fired by the scheduler.
type Job struct {
	Name     string
	Schedule string
	Run      func(...string)
}

var mu sync.Mutex

func table() map[string]Job {
	if v, ok := registry.GlobalRegistry.GetGlobal(registry.KeyRegistryCron); ok && v != nil {
		return v.(map[string]Job)
	}
	return map[string]Job{}
}

// Register adds a job under its lower-cased name. It panics on a duplicate
// name or once the scheduler has read the table.
func Register(name, schedule string, run func(...string)) {
	mu.Lock()
	defer mu.Unlock()
	if registry.GlobalRegistry.IsLocked(registry.KeyRegistryCron) {
		panic("cron: job " + name + " registered after the scheduler started")
	}
	key := strings.ToLower(name)
	t := table()
	if _, dup := t[key]; dup {
		panic("cron: duplicate job " + key)
	}
	t[key] = Job{Name: key, Schedule: schedule, Run: run}
	registry.GlobalRegistry.SetGlobal(registry.KeyRegistryCron, t)
}

// Unregister drops a job and reopens the table. Tests only.
func Unregister(name string) {
	mu.Lock()
	defer mu.Unlock()
	t := table()
	delete(t, strings.ToLower(name))
	registry.GlobalRegistry.SetGlobal(registry.KeyRegistryCron, t)
	registry.GlobalRegistry.UnlockForTesting(registry.KeyRegistryCron)
}

// Lookup finds a job by case-insensitive name.
func Lookup(name string) (Job, bool) {
	mu.Lock()
	defer mu.Unlock()
	j, ok := table()[strings.ToLower(name)]
	return j, ok
}

// Jobs snapshots the table in name order and freezes it.
func Jobs() []Job {
	mu.Lock()
	defer mu.Unlock()
	registry.GlobalRegistry.Lock(registry.KeyRegistryCron)
	t := table()
	out := make([]Job, 0, len(t))
	for _, j := range t {
		out = append(out, j)
	}
	sort.Slice(out, func(i, k int) bool { return out[i].Name < out[k].Name })
	return out
}
