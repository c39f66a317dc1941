// Package cache is an in-process TTL key/value store with tag groups. It
// backs the cart session store when no redis server is configured.
package cache

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

// Cache is a thread-safe key/value store. The zero value is not usable; use
// NewCache or GetInstance.
type Cache struct {
	m sync.Map
	// tagIndex maps tag to a set of keys
	tagIndex sync.Map // map[string]*sync.Map
	now      func() time.Time
}

var (
	once     sync.Once
	instance *Cache
)

// GetInstance returns the process-wide cache.
func GetInstance() *Cache {
	once.Do(func() {
		instance = NewCache()
	})
	return instance
}

func NewCache() *Cache {
	return &Cache{now: time.Now}
}

// cacheItem holds a value and its expiration time.
type cacheItem struct {
	Value     interface{}
	ExpiresAt int64 // Unix nanoseconds; 0 means no expiration
}

func (i cacheItem) expired(now int64) bool {
	return i.ExpiresAt > 0 && now > i.ExpiresAt
}

// Set stores value under key. A zero ttl never expires.
func (c *Cache) Set(key, value interface{}, ttl time.Duration, tags []string) {
	var expiresAt int64
	if ttl > 0 {
		expiresAt = c.now().Add(ttl).UnixNano()
	}
	c.m.Store(key, cacheItem{Value: value, ExpiresAt: expiresAt})
	if len(tags) > 0 {
		c.TagKey(key, tags)
	}
}

// Get returns the value for key unless it is missing or expired.
func (c *Cache) Get(key interface{}) (interface{}, bool) {
	v, ok := c.m.Load(key)
	if !ok {
		return nil, false
	}
	item := v.(cacheItem)
	if item.expired(c.now().UnixNano()) {
		c.Delete(key)
		return nil, false
	}
	return item.Value, true
}

// GetOrDefault returns the value for key, or def.
func (c *Cache) GetOrDefault(key, def interface{}) interface{} {
	if v, ok := c.Get(key); ok {
		return v
	}
	return def
}

// Touch pushes key's expiry ttl into the future. Reports whether key exists.
func (c *Cache) Touch(key interface{}, ttl time.Duration) bool {
	v, ok := c.Get(key)
	if !ok {
		return false
	}
	c.m.Store(key, cacheItem{Value: v, ExpiresAt: c.now().Add(ttl).UnixNano()})
	return true
}

// Delete removes key and drops it from every tag.
func (c *Cache) Delete(key interface{}) {
	c.m.Delete(key)
	c.tagIndex.Range(func(_, val interface{}) bool {
		val.(*sync.Map).Delete(key)
		return true
	})
}

func (c *Cache) DeleteMany(keys ...interface{}) {
	for _, key := range keys {
		c.Delete(key)
	}
}

func makeCompositeKey(keys ...interface{}) string {
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%v", k)
	}
	return strings.Join(parts, "|")
}

// SetN stores value under the composite of keys.
func (c *Cache) SetN(keys []interface{}, value interface{}, ttl time.Duration, tags []string) {
	c.Set(makeCompositeKey(keys...), value, ttl, tags)
}

func (c *Cache) GetN(keys ...interface{}) (interface{}, bool) {
	return c.Get(makeCompositeKey(keys...))
}

func (c *Cache) DeleteN(keys ...interface{}) {
	c.Delete(makeCompositeKey(keys...))
}

// PurgeExpired removes every expired entry and returns how many it removed.
func (c *Cache) PurgeExpired() int {
	now := c.now().UnixNano()
	var expired []interface{}
	c.m.Range(func(key, v interface{}) bool {
		if v.(cacheItem).expired(now) {
			expired = append(expired, key)
		}
		return true
	})
	c.DeleteMany(expired...)
	return len(expired)
}

// Len counts live entries.
func (c *Cache) Len() int {
	now := c.now().UnixNano()
	n := 0
	c.m.Range(func(_, v interface{}) bool {
		if !v.(cacheItem).expired(now) {
			n++
		}
		return true
	})
	return n
}

// TagKey assigns tags to key.
func (c *Cache) TagKey(key interface{}, tags []string) {
	for _, tag := range tags {
		val, _ := c.tagIndex.LoadOrStore(tag, &sync.Map{})
		val.(*sync.Map).Store(key, struct{}{})
	}
}

func (c *Cache) GetKeysByTag(tag string) []interface{} {
	var keys []interface{}
	if val, ok := c.tagIndex.Load(tag); ok {
		val.(*sync.Map).Range(func(key, _ interface{}) bool {
			keys = append(keys, key)
			return true
		})
	}
	return keys
}

// DeleteByTag deletes every entry assigned to tag.
func (c *Cache) DeleteByTag(tag string) {
	if val, ok := c.tagIndex.Load(tag); ok {
		val.(*sync.Map).Range(func(key, _ interface{}) bool {
			c.m.Delete(key)
			return true
		})
		c.tagIndex.Delete(tag)
	}
}
